package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is one immutable line item of a recorded sale batch.
//
// ProductName, PurchasePrice and SalePrice are copied from the product at the
// moment of sale. The snapshot keeps the record self-contained: later edits
// or deletion of the product never change an existing sale, and profit is
// always computed from these fields, never from the live product.
// ProductID is a weak reference and may point to a deleted product.
type Sale struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"productId"`
	ProductName   string          `json:"productName"`
	Quantity      int             `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	Total         decimal.Decimal `json:"total"` // SalePrice * Quantity at sale time
	Date          time.Time       `json:"date"`
}

// Profit returns (SalePrice - PurchasePrice) * Quantity from the snapshot.
func (s Sale) Profit() decimal.Decimal {
	return s.SalePrice.Sub(s.PurchasePrice).Mul(decimal.NewFromInt(int64(s.Quantity)))
}
