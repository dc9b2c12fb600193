package domain

import "strings"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "Open"
	TicketStatusInProgress TicketStatus = "In Progress"
	TicketStatusResolved   TicketStatus = "Resolved"
)

// TicketStatuses lists statuses in board order.
var TicketStatuses = []TicketStatus{TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved}

// Priority enumerates urgency shared by tickets and activities.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Priorities lists priorities from most to least urgent.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// ParsePriority matches a priority label case-insensitively.
func ParsePriority(s string) (Priority, bool) {
	for _, p := range Priorities {
		if strings.EqualFold(string(p), strings.TrimSpace(s)) {
			return p, true
		}
	}
	return "", false
}

// Ticket is a support request raised by a coach, player or parent.
type Ticket struct {
	ID          string       `yaml:"ticket_id"`
	RaisedBy    string       `yaml:"raised_by"`
	Category    string       `yaml:"category"`
	Subject     string       `yaml:"subject"`
	Description string       `yaml:"description"`
	Status      TicketStatus `yaml:"status"`
	Priority    Priority     `yaml:"priority"`
	CreatedAt   string       `yaml:"created_at"`
}
