package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamedsh/dokandar-api/internal/application/dto"
	"github.com/hamedsh/dokandar-api/internal/application/usecase"
	"github.com/hamedsh/dokandar-api/internal/domain"
)

func TestSaleRecord_Succeeds(t *testing.T) {
	ledger := newLedger(t)
	products := usecase.NewProductUseCase(ledger)
	sales := usecase.NewSaleUseCase(ledger)

	p, err := products.Create(createReq(t, "Rice", 5, "10", "15"))
	require.NoError(t, err)

	out, err := sales.Record(dto.RecordSaleRequest{Items: []dto.SaleLineRequest{
		{ProductID: p.ID, Quantity: 2},
	}})
	require.NoError(t, err)
	require.Len(t, out.Sales, 1)
	assert.Equal(t, "Rice", out.Sales[0].ProductName)
	assert.Equal(t, "30", out.Sales[0].Total.String())

	assert.Equal(t, 3, products.List().Items[0].Quantity)
	assert.Len(t, sales.List().Items, 1)
}

func TestSaleRecord_DropsNonPositiveLines(t *testing.T) {
	ledger := newLedger(t)
	products := usecase.NewProductUseCase(ledger)
	sales := usecase.NewSaleUseCase(ledger)

	p, err := products.Create(createReq(t, "Rice", 5, "10", "15"))
	require.NoError(t, err)

	// Zero and negative lines vanish; the valid line still applies.
	out, err := sales.Record(dto.RecordSaleRequest{Items: []dto.SaleLineRequest{
		{ProductID: p.ID, Quantity: 0},
		{ProductID: "ignored", Quantity: -3},
		{ProductID: p.ID, Quantity: 1},
	}})
	require.NoError(t, err)
	assert.Len(t, out.Sales, 1)
	assert.Equal(t, 4, products.List().Items[0].Quantity)
}

func TestSaleRecord_NoItems(t *testing.T) {
	ledger := newLedger(t)
	sales := usecase.NewSaleUseCase(ledger)

	// Empty batch.
	_, err := sales.Record(dto.RecordSaleRequest{})
	assert.ErrorIs(t, err, domain.ErrNoItems)

	// All lines non-positive.
	_, err = sales.Record(dto.RecordSaleRequest{Items: []dto.SaleLineRequest{
		{ProductID: "p", Quantity: 0},
		{ProductID: "p", Quantity: -1},
	}})
	assert.ErrorIs(t, err, domain.ErrNoItems)
}

func TestSaleRecord_ErrorsPassThrough(t *testing.T) {
	ledger := newLedger(t)
	products := usecase.NewProductUseCase(ledger)
	sales := usecase.NewSaleUseCase(ledger)

	p, err := products.Create(createReq(t, "Rice", 5, "10", "15"))
	require.NoError(t, err)

	_, err = sales.Record(dto.RecordSaleRequest{Items: []dto.SaleLineRequest{
		{ProductID: "ghost", Quantity: 1},
	}})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = sales.Record(dto.RecordSaleRequest{Items: []dto.SaleLineRequest{
		{ProductID: p.ID, Quantity: 3},
		{ProductID: p.ID, Quantity: 3},
	}})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, sales.List().Items)
}
