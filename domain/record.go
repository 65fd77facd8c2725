package domain

import "time"

// ComparisonRecord is a computed comparison kept in the history.
type ComparisonRecord struct {
	ID        string           `json:"id"`
	Inputs    Inputs           `json:"inputs"`
	Result    ComparisonResult `json:"result"`
	CreatedAt time.Time        `json:"created_at"`
}
