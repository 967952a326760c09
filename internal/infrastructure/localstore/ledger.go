package localstore

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hamedsh/dokandar-api/internal/domain"
	"github.com/hamedsh/dokandar-api/internal/domain/entity"
	"github.com/hamedsh/dokandar-api/internal/domain/repository"
	"github.com/hamedsh/dokandar-api/pkg/logger"
)

// Collection keys in the store.
const (
	keyProducts = "products"
	keySales    = "sales"
	keyDebts    = "debts"
)

// collectionVersion is the persisted envelope version. An unknown version
// degrades to the empty collection, same as a corrupt document.
const collectionVersion = 1

// envelope is the versioned on-disk shape of one collection.
type envelope[T any] struct {
	Version int `json:"version"`
	Items   []T `json:"items"`
}

// Ledger owns the three collections and implements repository.Ledger.
//
// The logical model is a single operator, but the HTTP adapter makes the
// process concurrent, so one mutex serializes every operation; within the
// lock each operation is one atomic transition between consistent states.
// Every mutation persists before the new state becomes visible: mutations
// build the next slice, write it through the store, then swap it in, so a
// storage failure leaves memory and disk on the previous state.
type Ledger struct {
	mu    sync.RWMutex
	store Store
	log   *logger.Logger

	products []entity.Product
	sales    []entity.Sale
	debts    []entity.Debt
}

// Open loads the three collections from the store. A missing, corrupt or
// unknown-version document degrades to the empty collection with a warning;
// opening never fails on bad data.
func Open(store Store, log *logger.Logger) *Ledger {
	return &Ledger{
		store:    store,
		log:      log,
		products: loadCollection[entity.Product](store, log, keyProducts),
		sales:    loadCollection[entity.Sale](store, log, keySales),
		debts:    loadCollection[entity.Debt](store, log, keyDebts),
	}
}

func loadCollection[T any](store Store, log *logger.Logger, key string) []T {
	var env envelope[T]
	err := store.Read(key, &env)
	switch {
	case errors.Is(err, ErrKeyNotFound):
		return nil
	case err != nil:
		log.Warn().Err(err).Str("collection", key).Msg("stored collection unreadable, starting empty")
		return nil
	case env.Version != collectionVersion:
		log.Warn().Int("version", env.Version).Str("collection", key).Msg("unknown collection version, starting empty")
		return nil
	}
	return env.Items
}

func (l *Ledger) persist(key string, items any) error {
	type versioned struct {
		Version int `json:"version"`
		Items   any `json:"items"`
	}
	if err := l.store.Write(key, versioned{Version: collectionVersion, Items: items}); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

// ── Products ─────────────────────────────────────────────────────────────────

// Products returns the product collection in insertion order.
func (l *Ledger) Products() []entity.Product {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.products)
}

// AddProduct appends p and persists. The caller supplies the ID; no
// uniqueness check happens here (name uniqueness is validated upstream).
func (l *Ledger) AddProduct(p entity.Product) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	next := append(slices.Clone(l.products), p)
	if err := l.persist(keyProducts, next); err != nil {
		return err
	}
	l.products = next
	return nil
}

// UpdateProduct replaces the product with matching ID and persists.
// Historical sales keep their snapshots. Missing ID is domain.ErrNotFound.
func (l *Ledger) UpdateProduct(p entity.Product) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := slices.IndexFunc(l.products, func(e entity.Product) bool { return e.ID == p.ID })
	if i < 0 {
		return domain.ErrNotFound
	}
	next := slices.Clone(l.products)
	next[i] = p
	if err := l.persist(keyProducts, next); err != nil {
		return err
	}
	l.products = next
	return nil
}

// DeleteProduct removes the product with matching ID and persists. Sales
// referencing it stay valid through their snapshot fields.
func (l *Ledger) DeleteProduct(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := slices.IndexFunc(l.products, func(e entity.Product) bool { return e.ID == id })
	if i < 0 {
		return domain.ErrNotFound
	}
	next := slices.Delete(slices.Clone(l.products), i, i+1)
	if err := l.persist(keyProducts, next); err != nil {
		return err
	}
	l.products = next
	return nil
}

// ── Sales ────────────────────────────────────────────────────────────────────

// Sales returns the sale collection in insertion order.
func (l *Ledger) Sales() []entity.Sale {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.sales)
}

// RecordSale applies a sale batch all-or-nothing.
//
// Validate phase: every line resolves against one snapshot of the product
// collection. Demand accumulates per product across the batch, so duplicate
// lines for the same product cannot oversell together what no single line
// oversells alone. Apply phase: per line in order, decrement stock and append
// a Sale snapshotting name and prices as they stood before the decrement.
// Products and sales persist as two writes; a failed write leaves both
// collections on their pre-call state.
func (l *Ledger) RecordSale(lines []repository.SaleLine) ([]entity.Sale, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(lines) == 0 {
		return nil, domain.ErrNoItems
	}

	// Validate against the current snapshot, tracking cumulative demand.
	demand := make(map[string]int, len(lines))
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity %d for product %s", domain.ErrInvalidInput, line.Quantity, line.ProductID)
		}
		i := slices.IndexFunc(l.products, func(e entity.Product) bool { return e.ID == line.ProductID })
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", domain.ErrProductNotFound, line.ProductID)
		}
		demand[line.ProductID] += line.Quantity
		if demand[line.ProductID] > l.products[i].Quantity {
			return nil, fmt.Errorf("%w: %s", domain.ErrInsufficientStock, l.products[i].Name)
		}
	}

	// Apply on a copy; nothing becomes visible until both writes succeed.
	now := time.Now()
	nextProducts := slices.Clone(l.products)
	created := make([]entity.Sale, 0, len(lines))
	for _, line := range lines {
		i := slices.IndexFunc(nextProducts, func(e entity.Product) bool { return e.ID == line.ProductID })
		p := nextProducts[i]
		created = append(created, entity.Sale{
			ID:            uuid.New().String(),
			ProductID:     p.ID,
			ProductName:   p.Name,
			Quantity:      line.Quantity,
			PurchasePrice: p.PurchasePrice,
			SalePrice:     p.SalePrice,
			Total:         p.SalePrice.Mul(decimal.NewFromInt(int64(line.Quantity))),
			Date:          now,
		})
		p.Quantity -= line.Quantity
		nextProducts[i] = p
	}
	nextSales := append(slices.Clone(l.sales), created...)

	if err := l.persist(keyProducts, nextProducts); err != nil {
		return nil, err
	}
	if err := l.persist(keySales, nextSales); err != nil {
		// Roll the product document back so disk and memory stay aligned.
		if rbErr := l.persist(keyProducts, l.products); rbErr != nil {
			l.log.Error().Err(rbErr).Msg("rollback of product collection failed")
		}
		return nil, err
	}
	l.products = nextProducts
	l.sales = nextSales
	return created, nil
}

// ── Debts ────────────────────────────────────────────────────────────────────

// Debts returns the debt collection in insertion order.
func (l *Ledger) Debts() []entity.Debt {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.debts)
}

// AddDebt appends d and persists.
func (l *Ledger) AddDebt(d entity.Debt) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	next := append(slices.Clone(l.debts), d)
	if err := l.persist(keyDebts, next); err != nil {
		return err
	}
	l.debts = next
	return nil
}

// UpdateDebt replaces the debt with matching ID and persists. Missing ID is
// domain.ErrNotFound.
func (l *Ledger) UpdateDebt(d entity.Debt) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := slices.IndexFunc(l.debts, func(e entity.Debt) bool { return e.ID == d.ID })
	if i < 0 {
		return domain.ErrNotFound
	}
	next := slices.Clone(l.debts)
	next[i] = d
	if err := l.persist(keyDebts, next); err != nil {
		return err
	}
	l.debts = next
	return nil
}

// DeleteDebt removes the debt with matching ID and persists.
func (l *Ledger) DeleteDebt(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := slices.IndexFunc(l.debts, func(e entity.Debt) bool { return e.ID == id })
	if i < 0 {
		return domain.ErrNotFound
	}
	next := slices.Delete(slices.Clone(l.debts), i, i+1)
	if err := l.persist(keyDebts, next); err != nil {
		return err
	}
	l.debts = next
	return nil
}

// ── Maintenance ──────────────────────────────────────────────────────────────

// ClearAll empties the three collections and persists the empty state for
// each key. Running it on an already-empty ledger changes nothing.
func (l *Ledger) ClearAll() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, key := range []string{keyProducts, keySales, keyDebts} {
		if err := l.persist(key, []any{}); err != nil {
			return err
		}
	}
	l.products = nil
	l.sales = nil
	l.debts = nil
	return nil
}

var _ repository.Ledger = (*Ledger)(nil)
