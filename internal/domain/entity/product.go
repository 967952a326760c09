package entity

import "github.com/shopspring/decimal"

// Product is one catalog entry of the shop. Quantity is the units currently
// in stock; it only changes through sale recording or an explicit edit.
// JSON field names match the persisted collection layout.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Quantity      int             `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"` // cost per unit
	SalePrice     decimal.Decimal `json:"salePrice"`     // charged per unit
}
