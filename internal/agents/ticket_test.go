package agents

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/garage-assistant/internal/domain"
	"github.com/spec-kit/garage-assistant/internal/llm/llmtest"
)

func TestTicketResponder_ByID(t *testing.T) {
	r := NewTicketResponder(testDeps())

	got := r.Handle(context.Background(), "Show me ticket tkt-001")
	assert.Equal(t, strings.Join([]string{
		"Ticket Details: TKT-001",
		"Raised By: Muthamizh (Coach)",
		"Category: IT Support",
		"Subject: Laptop not connecting to WiFi",
		"Description: Unable to connect to office WiFi network. Getting authentication error.",
		"Status: Open",
		"Priority: High",
		"Created: 2025-12-05 10:30:00",
	}, "\n"), got)

	assert.Equal(t, "Ticket TKT-999 not found in the system.", r.Handle(context.Background(), "what about TKT-999"))
}

func TestTicketResponder_PriorityCountMatchesRows(t *testing.T) {
	deps := testDeps()
	r := NewTicketResponder(deps)

	for _, p := range domain.Priorities {
		got := r.Handle(context.Background(), "list "+strings.ToLower(string(p))+" priority tickets")
		lines := strings.Split(got, "\n")
		want := len(deps.Store.Tickets.ListByPriority(p))
		require.NotZero(t, want)
		assert.Contains(t, lines[0], string(p)+" Priority Tickets (")
		assert.Len(t, lines, want+1, got)
	}
}

func TestTicketResponder_Status(t *testing.T) {
	r := NewTicketResponder(testDeps())

	got := r.Handle(context.Background(), "which tickets are pending?")
	assert.True(t, strings.HasPrefix(got, "Open Tickets (5):"), got)

	got = r.Handle(context.Background(), "tickets in progress")
	assert.True(t, strings.HasPrefix(got, "In Progress Tickets (3):"), got)
}

func TestTicketResponder_OverviewTruncated(t *testing.T) {
	r := NewTicketResponder(testDeps())

	got := r.Handle(context.Background(), "show tickets")
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "Tickets Overview (Total: 10)", lines[0])
	assert.Equal(t, TruncationNotice, lines[10])

	full := r.Handle(context.Background(), "show tickets with full details")
	assert.NotContains(t, full, TruncationNotice)
	assert.Contains(t, full, "[TKT-010]")
	assert.Contains(t, full, "RESOLVED (2):")
}

func TestTicketResponder_Idempotent(t *testing.T) {
	r := NewTicketResponder(testDeps())
	first := r.Handle(context.Background(), "show tickets")
	assert.Equal(t, first, r.Handle(context.Background(), "show tickets"))
}

func TestTicketResponder_WhoRaisedRephrased(t *testing.T) {
	deps := testDeps()
	deps.Classifier = llmtest.ClassifyAs(Intent{QueryType: "filter_by_person", QuestionType: "who"})
	gen := llmtest.Fixed("Muthamizh raised the WiFi ticket.")
	deps.Generator = gen
	r := NewTicketResponder(deps)

	got := r.Handle(context.Background(), "Who raised the WiFi ticket?")
	assert.Equal(t, "Muthamizh raised the WiFi ticket.", got)

	prompts := gen.Prompts()
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], `User asked: "Who raised the WiFi ticket?"`)
	assert.Contains(t, prompts[0], "Muthamizh (Coach) raised the ticket 'Laptop not connecting to WiFi'")
}

func TestTicketResponder_RephraseFailureKeepsRawText(t *testing.T) {
	deps := testDeps()
	deps.Classifier = llmtest.ClassifyAs(Intent{QueryType: "filter_by_person", FilterValue: "VPN", QuestionType: "who"})
	r := NewTicketResponder(deps)

	got := r.Handle(context.Background(), "who opened the vpn ticket")
	assert.Equal(t, "Keerthana (Coach) raised the ticket 'VPN connection drops frequently' (ID: TKT-007, Status: Open, Priority: High)", got)
}
