package agents

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/spec-kit/garage-assistant/internal/domain"
)

var (
	activityWhoPattern      = regexp.MustCompile(`(?i)\bwho\s+(?:is\s+)?(?:assigned|working|responsible|doing|handling)\s+(?:for\s+|on\s+|to\s+)?["']?(.+?)["']?\s*(?:\?|$)`)
	activityEmployeePattern = regexp.MustCompile(`(?i)\b(?:for|by) ([A-Za-z ]+)`)
	activityStatusPattern   = regexp.MustCompile(`(?i)\b(to do|todo|pending|in progress|completed|done)\b`)
)

var activityStatusSynonyms = map[string]domain.ActivityStatus{
	"to do":       domain.ActivityStatusToDo,
	"todo":        domain.ActivityStatusToDo,
	"pending":     domain.ActivityStatusToDo,
	"in progress": domain.ActivityStatusInProgress,
	"completed":   domain.ActivityStatusCompleted,
	"done":        domain.ActivityStatusCompleted,
}

var activityRephraseFor = []string{"who", "what", "when", "count", "status_check"}

const activityRephraseGuidance = `- If they asked "who", tell them the person's name and what they're doing
- If they asked "how many", give the count number
- If they asked "what status", tell them the current status
- If they asked "when", give the due date
- Keep it conversational and direct`

// ActivityResponder answers kanban questions about employee work.
type ActivityResponder struct {
	base
	rules []rule
}

// NewActivityResponder builds the responder and its rule cascade.
func NewActivityResponder(deps Deps) *ActivityResponder {
	r := &ActivityResponder{base: newBase(domain.AgentActivity, deps)}
	r.rules = []rule{
		{name: "who_assigned", match: regexMatch(activityWhoPattern), render: r.renderWhoAssigned},
		{name: "employee", match: regexMatch(activityEmployeePattern), render: r.renderByEmployee},
		{name: "status", match: regexMatch(activityStatusPattern), render: r.renderByStatus},
		{name: "kanban", match: always, render: r.renderKanban},
	}
	return r
}

func (r *ActivityResponder) Handle(ctx context.Context, userInput string) string {
	intent := r.classify(ctx, activityIntentPrompt(userInput), DefaultIntent)
	_, rendered := evaluate(r.rules, query{input: userInput, intent: intent})
	return r.finish(ctx, userInput, rendered, intent, activityRephraseFor, activityRephraseGuidance)
}

func (r *ActivityResponder) renderWhoAssigned(_ query, c []string) string {
	task := strings.ToLower(strings.TrimSpace(c[0]))
	a, ok := r.Store.Activities.FindByTask(task)
	if !ok {
		return fmt.Sprintf("No activity found matching '%s'", task)
	}
	return fmt.Sprintf("%s is assigned to '%s' (Status: %s, Priority: %s, Progress: %s)",
		a.Employee, a.Task, a.Status, a.Priority, a.Progress)
}

func (r *ActivityResponder) renderByEmployee(_ query, c []string) string {
	name := strings.TrimSpace(c[0])
	filtered := r.Store.Activities.ListByEmployee(name)
	if len(filtered) == 0 {
		return fmt.Sprintf("No activities found for employee: %s", name)
	}
	out := []string{fmt.Sprintf("Activities for %s (%d tasks):", name, len(filtered))}
	for _, a := range filtered {
		out = append(out, fmt.Sprintf("[%s] %s | Status: %s | Priority: %s | Progress: %s | Due: %s",
			a.ID, a.Task, a.Status, a.Priority, a.Progress, a.DueDate))
	}
	return strings.Join(out, "\n")
}

func (r *ActivityResponder) renderByStatus(_ query, c []string) string {
	status := activityStatusSynonyms[strings.ToLower(c[0])]
	filtered := r.Store.Activities.ListByStatus(status)
	if len(filtered) == 0 {
		return fmt.Sprintf("No activities found with status: %s", status)
	}
	out := []string{fmt.Sprintf("Activities - %s (%d tasks):", status, len(filtered))}
	for _, a := range filtered {
		out = append(out, fmt.Sprintf("[%s] %s | Employee: %s | Priority: %s | Progress: %s | Due: %s",
			a.ID, a.Task, a.Employee, a.Priority, a.Progress, a.DueDate))
	}
	return strings.Join(out, "\n")
}

func (r *ActivityResponder) renderKanban(query, []string) string {
	todo := r.Store.Activities.ListByStatus(domain.ActivityStatusToDo)
	doing := r.Store.Activities.ListByStatus(domain.ActivityStatusInProgress)
	done := r.Store.Activities.ListByStatus(domain.ActivityStatusCompleted)

	out := []string{
		fmt.Sprintf("Activity Kanban Board (Total: %d tasks)", len(r.Store.Activities.List())),
		"",
		fmt.Sprintf("TO DO / PENDING (%d):", len(todo)),
	}
	for _, a := range todo {
		out = append(out, fmt.Sprintf("  [%s] %s | Employee: %s | Priority: %s | Due: %s", a.ID, a.Task, a.Employee, a.Priority, a.DueDate))
	}
	out = append(out, "", fmt.Sprintf("IN PROGRESS (%d):", len(doing)))
	for _, a := range doing {
		out = append(out, fmt.Sprintf("  [%s] %s | Employee: %s | Progress: %s | Priority: %s", a.ID, a.Task, a.Employee, a.Progress, a.Priority))
	}
	out = append(out, "", fmt.Sprintf("COMPLETED (%d):", len(done)))
	for _, a := range done {
		out = append(out, fmt.Sprintf("  [%s] %s | Employee: %s | Completed: 100%%", a.ID, a.Task, a.Employee))
	}
	return strings.Join(out, "\n")
}

func activityIntentPrompt(userInput string) string {
	return fmt.Sprintf(`Analyze this activity/task query and extract the intent in JSON format:

User query: "%s"

Available activity fields: activity_id, task, employee, status (To Do/In Progress/Completed), priority (High/Medium/Low), progress, due_date

Return JSON with:
- "query_type": "who_assigned" | "filter_by_status" | "filter_by_employee" | "filter_by_priority" | "count" | "overview" | "task_details"
- "filter_value": the specific value if filtering
- "question_type": "who" | "what" | "how_many" | "when" | "list" | "details" | "status_check"

Examples:
"Who is assigned to design landing page?" -> {"query_type": "who_assigned", "filter_value": "design landing page", "question_type": "who"}
"Show completed tasks" -> {"query_type": "filter_by_status", "filter_value": "Completed", "question_type": "list"}
"What is John working on?" -> {"query_type": "filter_by_employee", "filter_value": "John", "question_type": "list"}
"How many tasks are pending?" -> {"query_type": "filter_by_status", "filter_value": "To Do", "question_type": "count"}
`, userInput)
}
