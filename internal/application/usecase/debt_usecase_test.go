package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamedsh/dokandar-api/internal/application/dto"
	"github.com/hamedsh/dokandar-api/internal/application/usecase"
	"github.com/hamedsh/dokandar-api/internal/domain"
)

func TestDebtCreateUpdateDelete(t *testing.T) {
	uc := usecase.NewDebtUseCase(newLedger(t))

	created, err := uc.Create(dto.CreateDebtRequest{
		FirstName:        " Sara ",
		LastName:         "Ahmadi",
		ItemsDescription: "two bags of rice",
		Amount:           money(t, "250"),
		ContactNumber:    "0912",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Sara", created.FirstName)

	amount := money(t, "100")
	updated, err := uc.Update(created.ID, dto.UpdateDebtRequest{Amount: &amount})
	require.NoError(t, err)
	assert.Equal(t, "100", updated.Amount.String())
	assert.Equal(t, "Sara", updated.FirstName, "unset fields keep their value")

	require.NoError(t, uc.Delete(created.ID))
	assert.Empty(t, uc.List().Items)
}

func TestDebtCreate_Validation(t *testing.T) {
	uc := usecase.NewDebtUseCase(newLedger(t))

	_, err := uc.Create(dto.CreateDebtRequest{LastName: "Ahmadi"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateDebtRequest{FirstName: "Sara"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateDebtRequest{FirstName: "Sara", LastName: "Ahmadi", Amount: money(t, "-5")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Zero amount is allowed (a settled debt kept for the record).
	_, err = uc.Create(dto.CreateDebtRequest{FirstName: "Sara", LastName: "Ahmadi", Amount: money(t, "0")})
	assert.NoError(t, err)
}

func TestDebtUpdate_MissingID(t *testing.T) {
	uc := usecase.NewDebtUseCase(newLedger(t))
	_, err := uc.Update("ghost", dto.UpdateDebtRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSettingsClearAllData(t *testing.T) {
	ledger := newLedger(t)
	products := usecase.NewProductUseCase(ledger)
	debts := usecase.NewDebtUseCase(ledger)
	settings := usecase.NewSettingsUseCase(ledger)

	_, err := products.Create(createReq(t, "Rice", 5, "10", "15"))
	require.NoError(t, err)
	_, err = debts.Create(dto.CreateDebtRequest{FirstName: "Sara", LastName: "Ahmadi"})
	require.NoError(t, err)

	require.NoError(t, settings.ClearAllData())
	assert.Empty(t, products.List().Items)
	assert.Empty(t, debts.List().Items)

	// Idempotent.
	assert.NoError(t, settings.ClearAllData())
}
