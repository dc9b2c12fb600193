package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/garage-assistant/internal/domain"
)

func TestTicketRepository_GetByID(t *testing.T) {
	store := NewSeededStore()

	for _, want := range store.Tickets.List() {
		got, ok := store.Tickets.GetByID(want.ID)
		require.True(t, ok, want.ID)
		assert.Equal(t, want, got)
	}

	_, ok := store.Tickets.GetByID("TKT-999")
	assert.False(t, ok)
}

func TestTicketRepository_IDsUnique(t *testing.T) {
	repo := NewTicketRepository([]domain.Ticket{
		{ID: "TKT-1", Subject: "first"},
		{ID: "TKT-1", Subject: "second"},
	})
	require.Len(t, repo.List(), 1)
	got, _ := repo.GetByID("TKT-1")
	assert.Equal(t, "first", got.Subject)
}

func TestTicketRepository_ListByPriority(t *testing.T) {
	store := NewSeededStore()
	all := store.Tickets.List()

	for _, p := range domain.Priorities {
		want := 0
		for _, tk := range all {
			if tk.Priority == p {
				want++
			}
		}
		got := store.Tickets.ListByPriority(p)
		assert.Len(t, got, want, string(p))
		for _, tk := range got {
			assert.Equal(t, p, tk.Priority)
		}
	}
}

func TestTicketRepository_ListByStatusCaseInsensitive(t *testing.T) {
	store := NewSeededStore()
	assert.Len(t, store.Tickets.ListByStatus("open"), 5)
	assert.Len(t, store.Tickets.ListByStatus("In Progress"), 3)
	assert.Empty(t, store.Tickets.ListByStatus("Closed"))
}

func TestTicketRepository_FindByTerm(t *testing.T) {
	store := NewSeededStore()

	got, ok := store.Tickets.FindByTerm("wifi")
	require.True(t, ok)
	assert.Equal(t, "TKT-001", got.ID)

	got, ok = store.Tickets.FindByTerm("drains quickly")
	require.True(t, ok)
	assert.Equal(t, "TKT-005", got.ID)

	_, ok = store.Tickets.FindByTerm("  ")
	assert.False(t, ok)
}

func TestActivityRepository(t *testing.T) {
	store := NewSeededStore()

	assert.Len(t, store.Activities.ListByStatus(domain.ActivityStatusToDo), 3)
	assert.Len(t, store.Activities.ListByEmployee("priya"), 3)

	act, ok := store.Activities.FindByTask("landing page")
	require.True(t, ok)
	assert.Equal(t, "Tamizh", act.Employee)

	act, ok = store.Activities.FindByTask("design landing page")
	require.True(t, ok)
	assert.Equal(t, "ACT-002", act.ID)

	_, ok = store.Activities.FindByTask("quantum teleporter")
	assert.False(t, ok)
}

func TestCostRepository(t *testing.T) {
	store := NewSeededStore()

	sheets := store.Costs.List()
	require.Len(t, sheets, 7)
	assert.Equal(t, "AWS", sheets[0].Provider)
	assert.Equal(t, "Heroku", sheets[6].Provider)

	aws, ok := store.Costs.Get("AWS")
	require.True(t, ok)
	assert.Equal(t, "$200-300", aws.TotalMonthlyEstimate)
	assert.Len(t, aws.ServicesInCategory("Storage"), 2)

	price, ok := aws.Services[0].Price("price_per_month")
	require.True(t, ok)
	assert.Equal(t, "$30.40", price)

	_, ok = store.Costs.Get("Oracle")
	assert.False(t, ok)
}
