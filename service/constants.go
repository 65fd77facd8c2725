package service

const (
	StandardTransactionFee  = 350.0
	HighValueTransactionFee = 700.0

	// Bounds of the high-value band, inclusive at both ends.
	HighValueMinPrice = 600_000.0
	HighValueMaxPrice = 1_200_000.0

	HighValueNotice  = "Note: Sales Price is a High Value Property"
	NotAvailable     = "N/A"

	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// PresetSplits are the broker shares offered under the percentage model, in
// display order.
var PresetSplits = []float64{50, 40, 30, 20, 15}
