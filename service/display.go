package service

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"commission-calculator/domain"
)

// Summary is a ComparisonResult rendered for display.
type Summary struct {
	SplitLabel         string `json:"split_label"`
	TotalCommission    string `json:"total_commission"`
	PercentageBroker   string `json:"percentage_broker"`
	PercentageTakeHome string `json:"percentage_take_home"`
	TransactionFees    string `json:"transaction_fees"`
	FlatTakeHome       string `json:"flat_take_home"`
	AnnualDifference   string `json:"annual_difference"`
	PercentIncrease    string `json:"percent_increase"`
	HighValueNotice    string `json:"high_value_notice,omitempty"`
}

// FormatCurrency renders an amount with two decimals and thousands
// separators, e.g. 120000 -> "120,000.00". Amounts that overflowed render
// as "N/A".
func FormatCurrency(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NotAvailable
	}

	fixed := decimal.NewFromFloat(v).StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	whole, ok := new(big.Int).SetString(intPart, 10)
	if !ok {
		return NotAvailable
	}
	return sign + humanize.BigComma(whole) + "." + fracPart
}

// FormatPercent renders a percentage with one decimal, or "N/A" when the
// ratio is undefined.
func FormatPercent(p *float64) string {
	if p == nil || math.IsNaN(*p) || math.IsInf(*p, 0) {
		return NotAvailable
	}
	return decimal.NewFromFloat(*p).StringFixed(1)
}

// Present renders every figure of result for display.
func Present(result domain.ComparisonResult) Summary {
	s := Summary{
		SplitLabel:         fmt.Sprintf("Broker Split (%g%%)", result.SplitPercent),
		TotalCommission:    FormatCurrency(result.Percentage.TotalCommission),
		PercentageBroker:   FormatCurrency(result.Percentage.BrokerAmount),
		PercentageTakeHome: FormatCurrency(result.Percentage.AgentAmount),
		TransactionFees:    FormatCurrency(result.Flat.TransactionFee),
		FlatTakeHome:       FormatCurrency(result.Flat.AgentAmount),
		AnnualDifference:   FormatCurrency(result.AnnualDifference),
		PercentIncrease:    FormatPercent(result.PercentIncrease),
	}
	if result.HighValue {
		s.HighValueNotice = HighValueNotice
	}
	return s
}
