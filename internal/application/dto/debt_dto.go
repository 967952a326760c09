package dto

// CreateDebtRequest input to register a customer debt.
type CreateDebtRequest struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	ItemsDescription string `json:"itemsDescription"`
	Amount           Money  `json:"amount"`
	ContactNumber    string `json:"contactNumber"`
	Note             string `json:"note"`
}

// UpdateDebtRequest input to edit a debt. Nil fields keep their value.
type UpdateDebtRequest struct {
	FirstName        *string `json:"firstName"`
	LastName         *string `json:"lastName"`
	ItemsDescription *string `json:"itemsDescription"`
	Amount           *Money  `json:"amount"`
	ContactNumber    *string `json:"contactNumber"`
	Note             *string `json:"note"`
}

// DebtResponse one debt as served to the UI.
type DebtResponse struct {
	ID               string `json:"id"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	ItemsDescription string `json:"itemsDescription"`
	Amount           Money  `json:"amount"`
	ContactNumber    string `json:"contactNumber,omitempty"`
	Note             string `json:"note"`
}

// DebtListResponse the debt book in insertion order.
type DebtListResponse struct {
	Items []DebtResponse `json:"items"`
}
