package repository

import "github.com/spec-kit/garage-assistant/internal/domain"

// CostRepository exposes provider cost sheets in catalogue order.
type CostRepository interface {
	Get(provider string) (domain.ProviderCostSheet, bool)
	List() []domain.ProviderCostSheet
}

type costRepository struct {
	sheets []domain.ProviderCostSheet
}

// NewCostRepository wraps the given sheets.
func NewCostRepository(sheets []domain.ProviderCostSheet) CostRepository {
	return &costRepository{sheets: sheets}
}

func (r *costRepository) Get(provider string) (domain.ProviderCostSheet, bool) {
	for _, s := range r.sheets {
		if s.Provider == provider {
			return s, true
		}
	}
	return domain.ProviderCostSheet{}, false
}

func (r *costRepository) List() []domain.ProviderCostSheet {
	out := make([]domain.ProviderCostSheet, len(r.sheets))
	copy(out, r.sheets)
	return out
}
