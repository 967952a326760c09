package repository

import "github.com/hamedsh/dokandar-api/internal/domain/entity"

// SaleLine is one {productId, quantity} entry within a sale batch.
type SaleLine struct {
	ProductID string
	Quantity  int
}

// ProductRepository maintains the product collection. Products returns items
// in insertion order; mutations persist before returning.
type ProductRepository interface {
	Products() []entity.Product
	AddProduct(p entity.Product) error
	UpdateProduct(p entity.Product) error
	DeleteProduct(id string) error
}

// SaleRepository maintains the sale collection. RecordSale is the only way
// sales come into existence; there is no update or delete.
//
// RecordSale applies the whole batch or nothing: it validates every line
// against one snapshot of the product collection (cumulative demand per
// product, duplicate lines accumulate), then decrements stock and appends an
// immutable Sale per line, snapshotting name and prices as they stood before
// the decrement. Failures are domain.ErrNoItems, domain.ErrProductNotFound or
// domain.ErrInsufficientStock and leave both collections untouched.
type SaleRepository interface {
	Sales() []entity.Sale
	RecordSale(lines []SaleLine) ([]entity.Sale, error)
}

// DebtRepository maintains the debt collection. Same CRUD shape as products,
// no cross-entity invariants.
type DebtRepository interface {
	Debts() []entity.Debt
	AddDebt(d entity.Debt) error
	UpdateDebt(d entity.Debt) error
	DeleteDebt(id string) error
}

// Ledger is the unified interface over the three collections. Consumers that
// only need one entity should depend on the smaller interfaces.
type Ledger interface {
	ProductRepository
	SaleRepository
	DebtRepository

	// ClearAll empties all three collections and persists the empty state
	// for each. Calling it twice is a no-op the second time.
	ClearAll() error
}
