package dto

// CreateProductRequest input to add a product to the catalog.
type CreateProductRequest struct {
	Name          string   `json:"name"`
	Quantity      Quantity `json:"quantity"`
	PurchasePrice Money    `json:"purchasePrice"`
	SalePrice     Money    `json:"salePrice"`
}

// UpdateProductRequest input to edit a product. Nil fields keep their value.
type UpdateProductRequest struct {
	Name          *string   `json:"name"`
	Quantity      *Quantity `json:"quantity"`
	PurchasePrice *Money    `json:"purchasePrice"`
	SalePrice     *Money    `json:"salePrice"`
}

// ProductResponse one product as served to the UI.
type ProductResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Quantity      int    `json:"quantity"`
	PurchasePrice Money  `json:"purchasePrice"`
	SalePrice     Money  `json:"salePrice"`
}

// ProductListResponse the full catalog in insertion order.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}
