// Package analytics computes the derived read views of the dashboard and
// reports pages. Everything here is a pure function over the current
// collections, recomputed on every call, never cached and never persisted.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/hamedsh/dokandar-api/internal/application/dto"
	"github.com/hamedsh/dokandar-api/internal/domain/entity"
	"github.com/hamedsh/dokandar-api/internal/domain/repository"
)

var hundred = decimal.NewFromInt(100)

// SummaryUseCase builds the dashboard and reports summaries.
type SummaryUseCase struct {
	products repository.ProductRepository
	sales    repository.SaleRepository
}

// NewSummaryUseCase builds the use case.
func NewSummaryUseCase(products repository.ProductRepository, sales repository.SaleRepository) *SummaryUseCase {
	return &SummaryUseCase{products: products, sales: sales}
}

// Dashboard computes the headline figures. Realized revenue and profit come
// from sale snapshots, so they survive product edits and deletions.
func (uc *SummaryUseCase) Dashboard() *dto.DashboardSummary {
	products := uc.products.Products()
	sales := uc.sales.Sales()

	inventoryCost := decimal.Zero
	potentialRevenue := decimal.Zero
	totalUnits := 0
	for _, p := range products {
		qty := decimal.NewFromInt(int64(p.Quantity))
		inventoryCost = inventoryCost.Add(p.PurchasePrice.Mul(qty))
		potentialRevenue = potentialRevenue.Add(p.SalePrice.Mul(qty))
		totalUnits += p.Quantity
	}

	realizedRevenue := decimal.Zero
	realizedProfit := decimal.Zero
	for _, s := range sales {
		realizedRevenue = realizedRevenue.Add(s.Total)
		realizedProfit = realizedProfit.Add(s.Profit())
	}

	return &dto.DashboardSummary{
		InventoryCost:      dto.NewMoney(inventoryCost),
		PotentialRevenue:   dto.NewMoney(potentialRevenue),
		ProductVariants:    len(products),
		TotalUnits:         totalUnits,
		RealizedRevenue:    dto.NewMoney(realizedRevenue),
		RealizedProfit:     dto.NewMoney(realizedProfit),
		BestSellingProduct: uc.bestBy(products, sales, func(s entity.Sale) decimal.Decimal {
			return decimal.NewFromInt(int64(s.Quantity))
		}),
		TopProfitProduct: uc.bestBy(products, sales, entity.Sale.Profit),
	}
}

// Reports computes potential profit, margin and the per-product revenue
// slices of the reports chart.
func (uc *SummaryUseCase) Reports() *dto.ReportsSummary {
	products := uc.products.Products()

	inventoryCost := decimal.Zero
	potentialRevenue := decimal.Zero
	slices := make([]dto.RevenueSlice, 0, len(products))
	for _, p := range products {
		qty := decimal.NewFromInt(int64(p.Quantity))
		revenue := p.SalePrice.Mul(qty)
		inventoryCost = inventoryCost.Add(p.PurchasePrice.Mul(qty))
		potentialRevenue = potentialRevenue.Add(revenue)
		slices = append(slices, dto.RevenueSlice{Name: p.Name, Value: dto.NewMoney(revenue)})
	}

	potentialProfit := potentialRevenue.Sub(inventoryCost)
	margin := decimal.Zero
	if potentialRevenue.IsPositive() {
		margin = potentialProfit.Div(potentialRevenue).Mul(hundred).Round(2)
	}

	return &dto.ReportsSummary{
		PotentialProfit:  dto.NewMoney(potentialProfit),
		PotentialRevenue: dto.NewMoney(potentialRevenue),
		ProfitMargin:     dto.NewMoney(margin),
		RevenueByProduct: slices,
	}
}

// bestBy groups sales by productId and returns the name of the product with
// the largest aggregate. Grouping follows sale insertion order and only a
// strictly greater aggregate displaces the leader, so ties resolve to the
// first-encountered product. The live product name is preferred; the sale
// snapshot name covers deleted products. Empty history yields "".
func (uc *SummaryUseCase) bestBy(products []entity.Product, sales []entity.Sale, value func(entity.Sale) decimal.Decimal) string {
	if len(sales) == 0 {
		return ""
	}
	totals := make(map[string]decimal.Decimal, len(sales))
	var order []string
	for _, s := range sales {
		if _, seen := totals[s.ProductID]; !seen {
			order = append(order, s.ProductID)
			totals[s.ProductID] = decimal.Zero
		}
		totals[s.ProductID] = totals[s.ProductID].Add(value(s))
	}

	bestID := order[0]
	for _, id := range order[1:] {
		if totals[id].GreaterThan(totals[bestID]) {
			bestID = id
		}
	}

	for _, p := range products {
		if p.ID == bestID {
			return p.Name
		}
	}
	for _, s := range sales {
		if s.ProductID == bestID {
			return s.ProductName
		}
	}
	return ""
}
