package usecase

import (
	"github.com/hamedsh/dokandar-api/internal/application/dto"
	"github.com/hamedsh/dokandar-api/internal/domain"
	"github.com/hamedsh/dokandar-api/internal/domain/entity"
	"github.com/hamedsh/dokandar-api/internal/domain/repository"
)

// SaleUseCase records sale batches and serves the sale history.
type SaleUseCase struct {
	sales repository.SaleRepository
}

// NewSaleUseCase builds the use case.
func NewSaleUseCase(sales repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{sales: sales}
}

// Record applies a sale batch all-or-nothing. Lines without a positive
// quantity are dropped before the ledger sees the batch; a batch with
// nothing left fails with domain.ErrNoItems.
func (uc *SaleUseCase) Record(in dto.RecordSaleRequest) (*dto.RecordSaleResponse, error) {
	lines := make([]repository.SaleLine, 0, len(in.Items))
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			continue
		}
		lines = append(lines, repository.SaleLine{ProductID: item.ProductID, Quantity: int(item.Quantity)})
	}
	if len(lines) == 0 {
		return nil, domain.ErrNoItems
	}
	created, err := uc.sales.RecordSale(lines)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(created))
	for _, s := range created {
		out = append(out, toSaleResponse(s))
	}
	return &dto.RecordSaleResponse{Sales: out}, nil
}

// List returns the sale history in insertion order.
func (uc *SaleUseCase) List() *dto.SaleListResponse {
	sales := uc.sales.Sales()
	items := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		items = append(items, toSaleResponse(s))
	}
	return &dto.SaleListResponse{Items: items}
}

func toSaleResponse(s entity.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:            s.ID,
		ProductID:     s.ProductID,
		ProductName:   s.ProductName,
		Quantity:      s.Quantity,
		PurchasePrice: dto.NewMoney(s.PurchasePrice),
		SalePrice:     dto.NewMoney(s.SalePrice),
		Total:         dto.NewMoney(s.Total),
		Date:          s.Date,
	}
}
