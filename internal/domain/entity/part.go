package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Part is a stocked item in the facilities storeroom.
// UnitCost is the default cost used for charge-outs; deliveries may override it per line.
type Part struct {
	ID          int64
	PartNumber  string // display code, unique
	Name        string
	Description string
	UnitCost    decimal.Decimal
	OnHand      int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
