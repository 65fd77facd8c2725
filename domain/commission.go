package domain

import (
	"encoding/json"
	"fmt"
	"math"
)

type SplitKind string

const (
	SplitPreset SplitKind = "preset"
	SplitCustom SplitKind = "custom"
)

// SplitChoice is the broker's share under the percentage model: either one of
// the fixed presets or a user-supplied custom value, which may be absent.
type SplitChoice struct {
	Kind    SplitKind
	Percent *float64
}

// Preset builds a preset split for the given broker percentage.
func Preset(percent float64) SplitChoice {
	return SplitChoice{Kind: SplitPreset, Percent: &percent}
}

// Custom builds a custom split; nil means the user left the field empty.
func Custom(percent *float64) SplitChoice {
	return SplitChoice{Kind: SplitCustom, Percent: percent}
}

type splitChoiceJSON struct {
	Type    SplitKind `json:"type"`
	Percent *float64  `json:"percent,omitempty"`
}

func (c SplitChoice) MarshalJSON() ([]byte, error) {
	return json.Marshal(splitChoiceJSON{Type: c.Kind, Percent: c.Percent})
}

func (c *SplitChoice) UnmarshalJSON(data []byte) error {
	var raw splitChoiceJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.Type {
	case SplitPreset, SplitCustom:
	default:
		return fmt.Errorf("unknown split type %q", raw.Type)
	}
	c.Kind = raw.Type
	c.Percent = raw.Percent
	return nil
}

type PayoutModel string

const (
	ModelPercentage PayoutModel = "percentage"
	ModelFlat       PayoutModel = "flat"
)

type Inputs struct {
	SalePrice             float64     `json:"sale_price"`
	CommissionRatePercent float64     `json:"commission_rate_percent"`
	YearlyClosings        int         `json:"yearly_closings"`
	Split                 SplitChoice `json:"split"`
}

// CommissionBreakdown holds annual amounts for YearlyClosings transactions.
type CommissionBreakdown struct {
	TotalCommission float64 `json:"total_commission"`
	BrokerAmount    float64 `json:"broker_amount"`
	AgentAmount     float64 `json:"agent_amount"`
	TransactionFee  float64 `json:"transaction_fee"`
}

// MarshalJSON encodes amounts that overflowed to Inf or NaN as null.
func (b CommissionBreakdown) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		TotalCommission *float64 `json:"total_commission"`
		BrokerAmount    *float64 `json:"broker_amount"`
		AgentAmount     *float64 `json:"agent_amount"`
		TransactionFee  *float64 `json:"transaction_fee"`
	}{
		TotalCommission: finiteOrNil(b.TotalCommission),
		BrokerAmount:    finiteOrNil(b.BrokerAmount),
		AgentAmount:     finiteOrNil(b.AgentAmount),
		TransactionFee:  finiteOrNil(b.TransactionFee),
	})
}

func (b CommissionBreakdown) Finite() bool {
	return isFinite(b.TotalCommission) && isFinite(b.BrokerAmount) &&
		isFinite(b.AgentAmount) && isFinite(b.TransactionFee)
}

type ComparisonResult struct {
	Percentage       CommissionBreakdown `json:"percentage"`
	Flat             CommissionBreakdown `json:"flat"`
	AnnualDifference float64             `json:"annual_difference"`

	// PercentIncrease is nil when the ratio is undefined (percentage-model
	// take-home of zero).
	PercentIncrease *float64 `json:"percent_increase"`
	SplitPercent    float64  `json:"split_percent"`
	HighValue       bool     `json:"high_value"`
}

func (r ComparisonResult) MarshalJSON() ([]byte, error) {
	type plain ComparisonResult
	return json.Marshal(struct {
		plain
		AnnualDifference *float64 `json:"annual_difference"`
	}{
		plain:            plain(r),
		AnnualDifference: finiteOrNil(r.AnnualDifference),
	})
}

// Finite reports whether every amount in r is a real number. Results that
// overflowed are returned to callers but never cached or stored.
func (r ComparisonResult) Finite() bool {
	return r.Percentage.Finite() && r.Flat.Finite() && isFinite(r.AnnualDifference)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finiteOrNil(v float64) *float64 {
	if !isFinite(v) {
		return nil
	}
	return &v
}

type SplitOption struct {
	Label  string      `json:"label"`
	Choice SplitChoice `json:"choice"`
}
