package repository

import (
	"strings"

	"github.com/spec-kit/garage-assistant/internal/domain"
)

// TicketRepository exposes read-only ticket lookups.
type TicketRepository interface {
	GetByID(id string) (domain.Ticket, bool)
	List() []domain.Ticket
	ListByStatus(status string) []domain.Ticket
	ListByPriority(priority domain.Priority) []domain.Ticket
	FindByTerm(term string) (domain.Ticket, bool)
}

type ticketRepository struct {
	tickets []domain.Ticket
	byID    map[string]int
}

// NewTicketRepository indexes the given tickets by id. Later duplicates are ignored.
func NewTicketRepository(tickets []domain.Ticket) TicketRepository {
	r := &ticketRepository{byID: make(map[string]int, len(tickets))}
	for _, t := range tickets {
		if _, dup := r.byID[t.ID]; dup {
			continue
		}
		r.byID[t.ID] = len(r.tickets)
		r.tickets = append(r.tickets, t)
	}
	return r
}

func (r *ticketRepository) GetByID(id string) (domain.Ticket, bool) {
	idx, ok := r.byID[id]
	if !ok {
		return domain.Ticket{}, false
	}
	return r.tickets[idx], true
}

func (r *ticketRepository) List() []domain.Ticket {
	out := make([]domain.Ticket, len(r.tickets))
	copy(out, r.tickets)
	return out
}

func (r *ticketRepository) ListByStatus(status string) []domain.Ticket {
	return r.filter(func(t domain.Ticket) bool {
		return strings.EqualFold(string(t.Status), status)
	})
}

func (r *ticketRepository) ListByPriority(priority domain.Priority) []domain.Ticket {
	return r.filter(func(t domain.Ticket) bool {
		return strings.EqualFold(string(t.Priority), string(priority))
	})
}

// FindByTerm returns the first ticket whose subject or description contains term.
func (r *ticketRepository) FindByTerm(term string) (domain.Ticket, bool) {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return domain.Ticket{}, false
	}
	for _, t := range r.tickets {
		if strings.Contains(strings.ToLower(t.Subject), needle) || strings.Contains(strings.ToLower(t.Description), needle) {
			return t, true
		}
	}
	return domain.Ticket{}, false
}

func (r *ticketRepository) filter(keep func(domain.Ticket) bool) []domain.Ticket {
	var out []domain.Ticket
	for _, t := range r.tickets {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
