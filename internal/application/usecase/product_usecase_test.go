package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamedsh/dokandar-api/internal/application/dto"
	"github.com/hamedsh/dokandar-api/internal/application/usecase"
	"github.com/hamedsh/dokandar-api/internal/domain"
	"github.com/hamedsh/dokandar-api/internal/infrastructure/localstore"
	"github.com/hamedsh/dokandar-api/pkg/logger"
	"github.com/hamedsh/dokandar-api/pkg/persian"
)

func newLedger(t *testing.T) *localstore.Ledger {
	t.Helper()
	return localstore.Open(localstore.NewMemoryStore(), logger.Nop())
}

func money(t *testing.T, s string) dto.Money {
	t.Helper()
	d, err := persian.ParseAmount(s)
	require.NoError(t, err)
	return dto.NewMoney(d)
}

func createReq(t *testing.T, name string, qty int, purchase, sale string) dto.CreateProductRequest {
	t.Helper()
	return dto.CreateProductRequest{
		Name:          name,
		Quantity:      dto.Quantity(qty),
		PurchasePrice: money(t, purchase),
		SalePrice:     money(t, sale),
	}
}

func TestProductCreate_AssignsIDAndTrimsName(t *testing.T) {
	uc := usecase.NewProductUseCase(newLedger(t))

	out, err := uc.Create(createReq(t, "  Green Tea  ", 10, "100", "150"))
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Green Tea", out.Name)
	assert.Equal(t, 10, out.Quantity)

	list := uc.List()
	require.Len(t, list.Items, 1)
}

func TestProductCreate_Validation(t *testing.T) {
	uc := usecase.NewProductUseCase(newLedger(t))

	cases := map[string]dto.CreateProductRequest{
		"empty name":        createReq(t, "   ", 1, "10", "15"),
		"negative quantity": createReq(t, "X", -1, "10", "15"),
		"zero purchase":     createReq(t, "X", 1, "0", "15"),
		"zero sale":         createReq(t, "X", 1, "10", "0"),
	}
	for name, in := range cases {
		_, err := uc.Create(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, name)
	}
}

func TestProductCreate_DuplicateNormalizedName(t *testing.T) {
	uc := usecase.NewProductUseCase(newLedger(t))

	_, err := uc.Create(createReq(t, "Apple", 1, "10", "15"))
	require.NoError(t, err)

	// Different case and surrounding whitespace still collides.
	_, err = uc.Create(createReq(t, " apple ", 1, "10", "15"))
	assert.ErrorIs(t, err, domain.ErrDuplicateName)

	// Arabic vs Persian letter forms collide too.
	_, err = uc.Create(createReq(t, "كتاب", 1, "10", "15"))
	require.NoError(t, err)
	_, err = uc.Create(createReq(t, "کتاب", 1, "10", "15"))
	assert.ErrorIs(t, err, domain.ErrDuplicateName)
}

func TestProductUpdate_PartialFields(t *testing.T) {
	uc := usecase.NewProductUseCase(newLedger(t))
	created, err := uc.Create(createReq(t, "Apple", 5, "10", "15"))
	require.NoError(t, err)

	newSale := money(t, "20")
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{SalePrice: &newSale})
	require.NoError(t, err)
	assert.Equal(t, "Apple", out.Name)
	assert.Equal(t, 5, out.Quantity)
	assert.Equal(t, "20", out.SalePrice.String())
	assert.Equal(t, "10", out.PurchasePrice.String())
}

func TestProductUpdate_KeepOwnNameIsNotADuplicate(t *testing.T) {
	uc := usecase.NewProductUseCase(newLedger(t))
	created, err := uc.Create(createReq(t, "Apple", 5, "10", "15"))
	require.NoError(t, err)

	name := "APPLE"
	_, err = uc.Update(created.ID, dto.UpdateProductRequest{Name: &name})
	assert.NoError(t, err, "renaming to a variant of its own name must pass")
}

func TestProductUpdate_DuplicateAgainstOtherProduct(t *testing.T) {
	uc := usecase.NewProductUseCase(newLedger(t))
	_, err := uc.Create(createReq(t, "Apple", 5, "10", "15"))
	require.NoError(t, err)
	other, err := uc.Create(createReq(t, "Orange", 5, "10", "15"))
	require.NoError(t, err)

	name := "apple"
	_, err = uc.Update(other.ID, dto.UpdateProductRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrDuplicateName)
}

func TestProductUpdate_MissingID(t *testing.T) {
	uc := usecase.NewProductUseCase(newLedger(t))
	_, err := uc.Update("ghost", dto.UpdateProductRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete_MissingID(t *testing.T) {
	uc := usecase.NewProductUseCase(newLedger(t))
	assert.ErrorIs(t, uc.Delete("ghost"), domain.ErrNotFound)
}
