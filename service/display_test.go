package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commission-calculator/domain"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "120,000.00", FormatCurrency(120_000))
	assert.Equal(t, "0.00", FormatCurrency(0))
	assert.Equal(t, "1,234,567.89", FormatCurrency(1_234_567.891))
	assert.Equal(t, "-3,500.00", FormatCurrency(-3_500))
	assert.Equal(t, "999.50", FormatCurrency(999.5))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "N/A", FormatPercent(nil))
	assert.Equal(t, "38.7", FormatPercent(ptr(32_500.0/84_000.0*100)))
	assert.Equal(t, "0.0", FormatPercent(ptr(0)))
	assert.Equal(t, "-12.5", FormatPercent(ptr(-12.5)))
}

func TestPresent(t *testing.T) {
	summary := Present(Compare(domain.Inputs{
		SalePrice:             400_000,
		CommissionRatePercent: 3,
		YearlyClosings:        10,
		Split:                 domain.Preset(30),
	}))

	assert.Equal(t, Summary{
		SplitLabel:         "Broker Split (30%)",
		TotalCommission:    "120,000.00",
		PercentageBroker:   "36,000.00",
		PercentageTakeHome: "84,000.00",
		TransactionFees:    "3,500.00",
		FlatTakeHome:       "116,500.00",
		AnnualDifference:   "32,500.00",
		PercentIncrease:    "38.7",
	}, summary)
}

func TestPresent_HighValueAndUndefined(t *testing.T) {
	summary := Present(Compare(domain.Inputs{
		SalePrice:             800_000,
		CommissionRatePercent: 3,
		YearlyClosings:        1,
		Split:                 domain.Custom(ptr(100)),
	}))

	assert.Equal(t, HighValueNotice, summary.HighValueNotice)
	assert.Equal(t, "N/A", summary.PercentIncrease)
	assert.Equal(t, "Broker Split (100%)", summary.SplitLabel)
}

func TestFormatCurrency_BeyondInt64(t *testing.T) {
	assert.Equal(t, "10,000,000,000,000,000,000.00", FormatCurrency(1e19))
	assert.Equal(t, "1,000,000,000,000,000,000,000.00", FormatCurrency(1e21))
	assert.Equal(t, "-1,000,000,000,000,000,000,000.00", FormatCurrency(-1e21))
	assert.Equal(t, "-0.50", FormatCurrency(-0.5))
}

func TestFormatCurrency_NonFinite(t *testing.T) {
	assert.Equal(t, NotAvailable, FormatCurrency(math.Inf(1)))
	assert.Equal(t, NotAvailable, FormatCurrency(math.Inf(-1)))
	assert.Equal(t, NotAvailable, FormatCurrency(math.NaN()))
	assert.Equal(t, NotAvailable, FormatPercent(ptr(math.NaN())))
}

func TestPresent_OverflowingInputs(t *testing.T) {
	result := Compare(domain.Inputs{
		SalePrice:             1e308,
		CommissionRatePercent: 100,
		YearlyClosings:        10,
		Split:                 domain.Preset(50),
	})

	var summary Summary
	require.NotPanics(t, func() { summary = Present(result) })

	assert.Equal(t, NotAvailable, summary.TotalCommission)
	assert.Equal(t, NotAvailable, summary.PercentageTakeHome)
	assert.Equal(t, NotAvailable, summary.AnnualDifference)
	assert.Equal(t, NotAvailable, summary.PercentIncrease)
	assert.Equal(t, "3,500.00", summary.TransactionFees)
}

func TestPresent_TotalsAboveInt64KeepSign(t *testing.T) {
	summary := Present(Compare(domain.Inputs{
		SalePrice:             1e19,
		CommissionRatePercent: 100,
		YearlyClosings:        1,
		Split:                 domain.Preset(50),
	}))

	assert.Equal(t, "10,000,000,000,000,000,000.00", summary.TotalCommission)
	assert.NotContains(t, summary.FlatTakeHome, "-")
}
