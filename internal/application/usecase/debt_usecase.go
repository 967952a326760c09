package usecase

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/hamedsh/dokandar-api/internal/application/dto"
	"github.com/hamedsh/dokandar-api/internal/domain"
	"github.com/hamedsh/dokandar-api/internal/domain/entity"
	"github.com/hamedsh/dokandar-api/internal/domain/repository"
)

// DebtUseCase CRUD over the debt book. No cross-entity invariants.
type DebtUseCase struct {
	debts repository.DebtRepository
}

// NewDebtUseCase builds the use case.
func NewDebtUseCase(debts repository.DebtRepository) *DebtUseCase {
	return &DebtUseCase{debts: debts}
}

// Create registers a debt with a fresh ID.
func (uc *DebtUseCase) Create(in dto.CreateDebtRequest) (*dto.DebtResponse, error) {
	debt := entity.Debt{
		ID:               uuid.New().String(),
		FirstName:        strings.TrimSpace(in.FirstName),
		LastName:         strings.TrimSpace(in.LastName),
		ItemsDescription: in.ItemsDescription,
		Amount:           in.Amount.Decimal,
		ContactNumber:    in.ContactNumber,
		Note:             in.Note,
	}
	if err := validateDebt(debt); err != nil {
		return nil, err
	}
	if err := uc.debts.AddDebt(debt); err != nil {
		return nil, err
	}
	return toDebtResponse(debt), nil
}

// Update edits the debt with the given ID. Nil request fields keep their
// current value.
func (uc *DebtUseCase) Update(id string, in dto.UpdateDebtRequest) (*dto.DebtResponse, error) {
	debt, ok := uc.find(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	if in.FirstName != nil {
		debt.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		debt.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.ItemsDescription != nil {
		debt.ItemsDescription = *in.ItemsDescription
	}
	if in.Amount != nil {
		debt.Amount = in.Amount.Decimal
	}
	if in.ContactNumber != nil {
		debt.ContactNumber = *in.ContactNumber
	}
	if in.Note != nil {
		debt.Note = *in.Note
	}
	if err := validateDebt(debt); err != nil {
		return nil, err
	}
	if err := uc.debts.UpdateDebt(debt); err != nil {
		return nil, err
	}
	return toDebtResponse(debt), nil
}

// Delete removes a debt.
func (uc *DebtUseCase) Delete(id string) error {
	return uc.debts.DeleteDebt(id)
}

// List returns the debt book in insertion order.
func (uc *DebtUseCase) List() *dto.DebtListResponse {
	debts := uc.debts.Debts()
	items := make([]dto.DebtResponse, 0, len(debts))
	for _, d := range debts {
		items = append(items, *toDebtResponse(d))
	}
	return &dto.DebtListResponse{Items: items}
}

func (uc *DebtUseCase) find(id string) (entity.Debt, bool) {
	for _, d := range uc.debts.Debts() {
		if d.ID == id {
			return d, true
		}
	}
	return entity.Debt{}, false
}

func validateDebt(d entity.Debt) error {
	switch {
	case d.FirstName == "":
		return fmt.Errorf("%w: first name is required", domain.ErrInvalidInput)
	case d.LastName == "":
		return fmt.Errorf("%w: last name is required", domain.ErrInvalidInput)
	case d.Amount.IsNegative():
		return fmt.Errorf("%w: amount must not be negative", domain.ErrInvalidInput)
	}
	return nil
}

func toDebtResponse(d entity.Debt) *dto.DebtResponse {
	return &dto.DebtResponse{
		ID:               d.ID,
		FirstName:        d.FirstName,
		LastName:         d.LastName,
		ItemsDescription: d.ItemsDescription,
		Amount:           dto.NewMoney(d.Amount),
		ContactNumber:    d.ContactNumber,
		Note:             d.Note,
	}
}
