package usecase

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hamedsh/dokandar-api/internal/application/dto"
	"github.com/hamedsh/dokandar-api/internal/domain"
	"github.com/hamedsh/dokandar-api/internal/domain/entity"
	"github.com/hamedsh/dokandar-api/internal/domain/repository"
	"github.com/hamedsh/dokandar-api/pkg/persian"
)

// ProductUseCase CRUD over the catalog. The name-uniqueness rule lives here,
// in front of the ledger: two names are duplicates when they compare equal
// after persian.NormalizeName.
type ProductUseCase struct {
	products repository.ProductRepository
}

// NewProductUseCase builds the use case.
func NewProductUseCase(products repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{products: products}
}

// Create adds a product with a fresh ID.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if err := validateProduct(name, int(in.Quantity), in.PurchasePrice.Decimal, in.SalePrice.Decimal); err != nil {
		return nil, err
	}
	if uc.nameTaken(name, "") {
		return nil, domain.ErrDuplicateName
	}
	product := entity.Product{
		ID:            uuid.New().String(),
		Name:          name,
		Quantity:      int(in.Quantity),
		PurchasePrice: in.PurchasePrice.Decimal,
		SalePrice:     in.SalePrice.Decimal,
	}
	if err := uc.products.AddProduct(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update edits the product with the given ID. Nil request fields keep their
// current value. Sales recorded before the edit keep their snapshots.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, ok := uc.find(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = strings.TrimSpace(*in.Name)
	}
	if in.Quantity != nil {
		product.Quantity = int(*in.Quantity)
	}
	if in.PurchasePrice != nil {
		product.PurchasePrice = in.PurchasePrice.Decimal
	}
	if in.SalePrice != nil {
		product.SalePrice = in.SalePrice.Decimal
	}
	if err := validateProduct(product.Name, product.Quantity, product.PurchasePrice, product.SalePrice); err != nil {
		return nil, err
	}
	if uc.nameTaken(product.Name, product.ID) {
		return nil, domain.ErrDuplicateName
	}
	if err := uc.products.UpdateProduct(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete removes a product. Historical sales keep their snapshot fields.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.products.DeleteProduct(id)
}

// List returns the catalog in insertion order.
func (uc *ProductUseCase) List() *dto.ProductListResponse {
	products := uc.products.Products()
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items}
}

func (uc *ProductUseCase) find(id string) (entity.Product, bool) {
	for _, p := range uc.products.Products() {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

// nameTaken reports whether another product already uses the normalized
// name. exceptID skips the product being edited.
func (uc *ProductUseCase) nameTaken(name, exceptID string) bool {
	normalized := persian.NormalizeName(name)
	for _, p := range uc.products.Products() {
		if p.ID != exceptID && persian.NormalizeName(p.Name) == normalized {
			return true
		}
	}
	return false
}

func validateProduct(name string, quantity int, purchase, sale decimal.Decimal) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	case quantity < 0:
		return fmt.Errorf("%w: quantity must not be negative", domain.ErrInvalidInput)
	case !purchase.IsPositive():
		return fmt.Errorf("%w: purchase price must be positive", domain.ErrInvalidInput)
	case !sale.IsPositive():
		return fmt.Errorf("%w: sale price must be positive", domain.ErrInvalidInput)
	}
	return nil
}

func toProductResponse(p entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Quantity:      p.Quantity,
		PurchasePrice: dto.NewMoney(p.PurchasePrice),
		SalePrice:     dto.NewMoney(p.SalePrice),
	}
}
