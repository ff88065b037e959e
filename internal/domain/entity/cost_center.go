package entity

// CostCenter is an accounting code expenditure is attributed to.
type CostCenter struct {
	ID   int64
	Code string // unique short identifier, e.g. "FAC-1200"
	Name string
}
