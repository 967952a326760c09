package usecase

import "github.com/hamedsh/dokandar-api/internal/domain/repository"

// SettingsUseCase maintenance operations of the settings page.
type SettingsUseCase struct {
	ledger repository.Ledger
}

// NewSettingsUseCase builds the use case.
func NewSettingsUseCase(ledger repository.Ledger) *SettingsUseCase {
	return &SettingsUseCase{ledger: ledger}
}

// ClearAllData empties products, sales and debts and persists the empty
// state. Idempotent.
func (uc *SettingsUseCase) ClearAllData() error {
	return uc.ledger.ClearAll()
}
