package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/samber/lo"

	"commission-calculator/domain"
)

var ErrInvalidSplit = errors.New("invalid split selection")

// PerTransactionFee returns the flat brokerage fee charged per closing. It is
// a step function of the sale price, not proportional to it.
func PerTransactionFee(salePrice float64) float64 {
	if IsHighValue(salePrice) {
		return HighValueTransactionFee
	}
	return StandardTransactionFee
}

// IsHighValue reports whether salePrice falls in the elevated fee band.
func IsHighValue(salePrice float64) bool {
	return salePrice >= HighValueMinPrice && salePrice <= HighValueMaxPrice
}

// ResolveSplitPercent returns the broker percentage for a split selection.
// An empty custom value, or no selection at all, resolves to 0.
func ResolveSplitPercent(choice domain.SplitChoice) float64 {
	if choice.Percent == nil {
		return 0
	}
	return *choice.Percent
}

// ValidateSplit rejects selections that cannot have come from the split
// options: unknown variants and presets outside PresetSplits. Numeric range
// is never checked.
func ValidateSplit(choice domain.SplitChoice) error {
	switch choice.Kind {
	case "", domain.SplitCustom:
		return nil
	case domain.SplitPreset:
		if choice.Percent == nil {
			return fmt.Errorf("%w: preset without percent", ErrInvalidSplit)
		}
		if !lo.Contains(PresetSplits, *choice.Percent) {
			return fmt.Errorf("%w: %v is not a preset split", ErrInvalidSplit, *choice.Percent)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown split type %q", ErrInvalidSplit, choice.Kind)
	}
}

// ComputeBreakdown computes the annual payout for one model. The aggregated
// transaction fee is reported under both models.
func ComputeBreakdown(
	input domain.Inputs,
	mode domain.PayoutModel,
) domain.CommissionBreakdown {

	closings := float64(input.YearlyClosings)
	total := input.SalePrice * (input.CommissionRatePercent / 100) * closings
	fee := PerTransactionFee(input.SalePrice) * closings

	var broker float64
	if mode == domain.ModelFlat {
		broker = fee
	} else {
		broker = total * (ResolveSplitPercent(input.Split) / 100)
	}

	return domain.CommissionBreakdown{
		TotalCommission: total,
		BrokerAmount:    broker,
		AgentAmount:     total - broker,
		TransactionFee:  fee,
	}
}

// Compare computes both payout models and the difference in agent take-home.
func Compare(input domain.Inputs) domain.ComparisonResult {
	pct := ComputeBreakdown(input, domain.ModelPercentage)
	flat := ComputeBreakdown(input, domain.ModelFlat)
	diff := flat.AgentAmount - pct.AgentAmount

	return domain.ComparisonResult{
		Percentage:       pct,
		Flat:             flat,
		AnnualDifference: diff,
		PercentIncrease:  percentIncrease(diff, pct.AgentAmount),
		SplitPercent:     ResolveSplitPercent(input.Split),
		HighValue:        IsHighValue(input.SalePrice),
	}
}

func percentIncrease(diff, base float64) *float64 {
	if base == 0 {
		return nil
	}
	ratio := diff / base * 100
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return nil
	}
	return &ratio
}

// SplitOptions lists the selectable splits, presets first, custom last.
func SplitOptions() []domain.SplitOption {
	options := lo.Map(PresetSplits, func(p float64, _ int) domain.SplitOption {
		return domain.SplitOption{
			Label:  fmt.Sprintf("%g/%g Split", 100-p, p),
			Choice: domain.Preset(p),
		}
	})
	return append(options, domain.SplitOption{
		Label:  "Custom Split",
		Choice: domain.Custom(nil),
	})
}
