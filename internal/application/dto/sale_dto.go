package dto

import "time"

// SaleLineRequest one {productId, quantity} line of a sale batch.
type SaleLineRequest struct {
	ProductID string   `json:"productId"`
	Quantity  Quantity `json:"quantity"`
}

// RecordSaleRequest a sale batch, applied all-or-nothing.
type RecordSaleRequest struct {
	Items []SaleLineRequest `json:"items"`
}

// SaleResponse one recorded sale line with its price snapshot.
type SaleResponse struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"productId"`
	ProductName   string    `json:"productName"`
	Quantity      int       `json:"quantity"`
	PurchasePrice Money     `json:"purchasePrice"`
	SalePrice     Money     `json:"salePrice"`
	Total         Money     `json:"total"`
	Date          time.Time `json:"date"`
}

// RecordSaleResponse the sale records created by one batch.
type RecordSaleResponse struct {
	Sales []SaleResponse `json:"sales"`
}

// SaleListResponse the sale history in insertion order.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
}
