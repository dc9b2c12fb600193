package agents

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/spec-kit/garage-assistant/internal/domain"
)

var (
	ticketIDPattern       = regexp.MustCompile(`(?i)\b(TKT-\d+)\b`)
	ticketPriorityPattern = regexp.MustCompile(`(?i)\b(high|medium|low)\s*priority`)
	ticketStatusPattern   = regexp.MustCompile(`(?i)\b(open|pending|in progress|resolved|closed)\b`)
	ticketWhoPattern      = regexp.MustCompile(`(?i)\bwho\s+(?:raised|created|opened|submitted)\b`)
	ticketWhoTermPattern  = regexp.MustCompile(`(?i)\bwho\s+(?:raised|created|opened|submitted)\s+(?:the\s+|a\s+|an\s+)?(.+?)(?:\s+tickets?)?\s*\??\s*$`)
)

var ticketRephraseFor = []string{"who", "what", "when", "count"}

const ticketRephraseGuidance = `- If they asked "who", tell them the person's name
- If they asked "how many", give the count
- If they asked "what", describe the item
- If they asked "when", give the date/time
- If they asked about status, tell them the status clearly`

// TicketResponder answers questions about support tickets.
type TicketResponder struct {
	base
	rules []rule
}

// NewTicketResponder builds the responder and its rule cascade.
func NewTicketResponder(deps Deps) *TicketResponder {
	r := &TicketResponder{base: newBase(domain.AgentTicket, deps)}
	r.rules = []rule{
		{name: "ticket_id", match: regexMatch(ticketIDPattern), render: r.renderByID},
		{name: "priority", match: regexMatch(ticketPriorityPattern), render: r.renderByPriority},
		{name: "status", match: regexMatch(ticketStatusPattern), render: r.renderByStatus},
		{name: "who_raised", match: matchWhoRaised, render: r.renderWhoRaised},
		{name: "overview", match: always, render: r.renderOverview},
	}
	return r
}

func (r *TicketResponder) Handle(ctx context.Context, userInput string) string {
	intent := r.classify(ctx, ticketIntentPrompt(userInput), DefaultIntent)
	_, rendered := evaluate(r.rules, query{input: userInput, intent: intent})
	return r.finish(ctx, userInput, rendered, intent, ticketRephraseFor, ticketRephraseGuidance)
}

// matchWhoRaised prefers the classifier's filter value and falls back to the
// words between the verb and "ticket".
func matchWhoRaised(q query) ([]string, bool) {
	if !ticketWhoPattern.MatchString(q.input) {
		return nil, false
	}
	if term := strings.TrimSpace(q.intent.FilterValue); term != "" {
		return []string{term}, true
	}
	if m := ticketWhoTermPattern.FindStringSubmatch(q.input); m != nil {
		if term := strings.TrimSpace(m[1]); term != "" {
			return []string{term}, true
		}
	}
	return nil, false
}

func (r *TicketResponder) renderByID(_ query, c []string) string {
	id := strings.ToUpper(c[0])
	t, ok := r.Store.Tickets.GetByID(id)
	if !ok {
		return fmt.Sprintf("Ticket %s not found in the system.", id)
	}
	return FormatTicketDetails(t)
}

// FormatTicketDetails renders every field of a ticket, one per line.
func FormatTicketDetails(t domain.Ticket) string {
	return strings.Join([]string{
		"Ticket Details: " + t.ID,
		"Raised By: " + t.RaisedBy,
		"Category: " + t.Category,
		"Subject: " + t.Subject,
		"Description: " + t.Description,
		"Status: " + string(t.Status),
		"Priority: " + string(t.Priority),
		"Created: " + t.CreatedAt,
	}, "\n")
}

func (r *TicketResponder) renderByPriority(_ query, c []string) string {
	priority, _ := domain.ParsePriority(c[0])
	filtered := r.Store.Tickets.ListByPriority(priority)
	if len(filtered) == 0 {
		return fmt.Sprintf("No tickets found with priority: %s", priority)
	}
	out := []string{fmt.Sprintf("%s Priority Tickets (%d):", priority, len(filtered))}
	for _, t := range filtered {
		out = append(out, fmt.Sprintf("[%s] %s | Raised By: %s | Status: %s | Created: %s",
			t.ID, t.Subject, t.RaisedBy, t.Status, t.CreatedAt))
	}
	return strings.Join(out, "\n")
}

func (r *TicketResponder) renderByStatus(_ query, c []string) string {
	status := titleWords(c[0])
	if status == "Pending" {
		status = string(domain.TicketStatusOpen)
	}
	filtered := r.Store.Tickets.ListByStatus(status)
	if len(filtered) == 0 {
		return fmt.Sprintf("No tickets found with status: %s", status)
	}
	out := []string{fmt.Sprintf("%s Tickets (%d):", status, len(filtered))}
	for _, t := range filtered {
		out = append(out, fmt.Sprintf("[%s] %s | Raised By: %s | Priority: %s | Created: %s",
			t.ID, t.Subject, t.RaisedBy, t.Priority, t.CreatedAt))
	}
	return strings.Join(out, "\n")
}

func (r *TicketResponder) renderWhoRaised(_ query, c []string) string {
	t, ok := r.Store.Tickets.FindByTerm(c[0])
	if !ok {
		return fmt.Sprintf("No ticket found matching '%s'", c[0])
	}
	return fmt.Sprintf("%s raised the ticket '%s' (ID: %s, Status: %s, Priority: %s)",
		t.RaisedBy, t.Subject, t.ID, t.Status, t.Priority)
}

func (r *TicketResponder) renderOverview(query, []string) string {
	all := r.Store.Tickets.List()
	out := []string{fmt.Sprintf("Tickets Overview (Total: %d)", len(all))}
	headers := map[domain.TicketStatus]string{
		domain.TicketStatusOpen:       "OPEN/PENDING",
		domain.TicketStatusInProgress: "IN PROGRESS",
		domain.TicketStatusResolved:   "RESOLVED",
	}
	for _, status := range domain.TicketStatuses {
		group := r.Store.Tickets.ListByStatus(string(status))
		out = append(out, fmt.Sprintf("%s (%d):", headers[status], len(group)))
		for _, t := range group {
			if status == domain.TicketStatusResolved {
				out = append(out, fmt.Sprintf("[%s] %s", t.ID, t.Subject))
				continue
			}
			out = append(out, fmt.Sprintf("[%s] %s | Priority: %s", t.ID, t.Subject, t.Priority))
		}
	}
	return strings.Join(out, "\n")
}

func ticketIntentPrompt(userInput string) string {
	return fmt.Sprintf(`Analyze this ticket query and extract the intent in JSON format:

User query: "%s"

Available ticket data fields: ticket_id, raised_by, category, subject, description, status (Open/In Progress/Resolved), priority (High/Medium/Low), created_at

Return JSON with:
- "query_type": "specific_ticket" | "filter_by_status" | "filter_by_priority" | "filter_by_person" | "count" | "overview"
- "filter_value": the specific value if filtering (e.g., "High", "Open", person name, or ticket ID)
- "question_type": "who" | "what" | "how_many" | "when" | "list" | "details"

Examples:
"Show TKT-001" -> {"query_type": "specific_ticket", "filter_value": "TKT-001", "question_type": "details"}
"How many high priority tickets?" -> {"query_type": "filter_by_priority", "filter_value": "High", "question_type": "count"}
"Who raised the WiFi ticket?" -> {"query_type": "filter_by_person", "filter_value": "WiFi", "question_type": "who"}
"Show open tickets" -> {"query_type": "filter_by_status", "filter_value": "Open", "question_type": "list"}
`, userInput)
}
