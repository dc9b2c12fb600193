package repository

import "github.com/spec-kit/garage-assistant/internal/domain"

// Store bundles the read-only knowledge tables. It is built once at startup
// and never written afterwards, so it is safe for concurrent readers.
type Store struct {
	Tickets    TicketRepository
	Activities ActivityRepository
	Costs      CostRepository
	Company    domain.CompanyProfile
}

// NewSeededStore returns the built-in reference data.
func NewSeededStore() *Store {
	return &Store{
		Tickets:    NewTicketRepository(seedTickets()),
		Activities: NewActivityRepository(seedActivities()),
		Costs:      NewCostRepository(seedCostSheets()),
		Company:    seedCompany(),
	}
}
