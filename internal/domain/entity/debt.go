package entity

import "github.com/shopspring/decimal"

// Debt is an outstanding amount owed by a customer. Debts have no
// relationship to products or sales; there is no uniqueness constraint on
// the debtor identity.
type Debt struct {
	ID               string          `json:"id"`
	FirstName        string          `json:"firstName"`
	LastName         string          `json:"lastName"`
	ItemsDescription string          `json:"itemsDescription"`
	Amount           decimal.Decimal `json:"amount"`
	ContactNumber    string          `json:"contactNumber,omitempty"`
	Note             string          `json:"note"`
}
