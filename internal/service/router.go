package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/garage-assistant/internal/domain"
	"github.com/spec-kit/garage-assistant/internal/llm"
)

// overviewPhrases select every data responder without asking the model.
var overviewPhrases = []string{
	"summary of everything", "everything happening", "complete summary", "full overview",
	"everything going on", "all updates", "comprehensive summary", "overall status",
	"whats happening", "what's happening", "status of everything", "complete update",
	"full status", "everything status", "overall summary",
}

// OverviewRoute is the fixed order used for overview requests. Chat is not part of it.
var OverviewRoute = []domain.AgentName{
	domain.AgentTicket,
	domain.AgentNews,
	domain.AgentActivity,
	domain.AgentInfrastructure,
}

// IsOverviewRequest reports whether text asks for a summary of everything.
func IsOverviewRequest(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range overviewPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

type routeDecision struct {
	Agents []string `json:"agents"`
}

// Router decides which responders handle a message.
type Router struct {
	classifier llm.Classifier
	logger     *zap.Logger
}

// NewRouter creates the router.
func NewRouter(classifier llm.Classifier, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{classifier: classifier, logger: logger}
}

// Route returns a non-empty, duplicate-free list of known responders in the
// order they should run.
func (r *Router) Route(ctx context.Context, text string) []domain.AgentName {
	if IsOverviewRequest(text) {
		r.logger.Info("complete overview requested; activating all data agents")
		return append([]domain.AgentName(nil), OverviewRoute...)
	}
	if r.classifier == nil {
		return []domain.AgentName{domain.AgentChat}
	}

	var decision routeDecision
	if err := r.classifier.Classify(ctx, routerPrompt(text), &decision); err != nil {
		r.logger.Warn("router classification failed; defaulting to chat", zap.Error(err))
		return []domain.AgentName{domain.AgentChat}
	}
	route := normalizeRoute(decision.Agents)
	r.logger.Debug("router decision", zap.Strings("raw", decision.Agents), zap.Any("route", route))
	return route
}

// normalizeRoute maps labels or keys to responder names. Unknown names become
// chat, repeats keep their first position, and an empty result becomes [chat].
func normalizeRoute(names []string) []domain.AgentName {
	seen := make(map[domain.AgentName]bool, len(names))
	out := make([]domain.AgentName, 0, len(names))
	for _, raw := range names {
		name := domain.AgentChat
		if info, ok := domain.LookupAgent(strings.TrimSpace(raw)); ok {
			name = info.Name
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	if len(out) == 0 {
		return []domain.AgentName{domain.AgentChat}
	}
	return out
}

func routerPrompt(text string) string {
	return fmt.Sprintf(`You are an intelligent router AI for Technology-Garage company assistant. Decide which agents should handle this input:

Available agents:
- TicketAnalyzerAgent: Handles ticket queries (employees, players, parents tickets)
- NewsAggregatorAgent: Fetches latest news articles
- ActivityTrackerAgent: Shows employee activities and task tracking
- InfrastructureCostMonitorAgent: Monitors cloud infrastructure costs (AWS, Azure, Google Cloud, Firebase, DigitalOcean, Vercel, Heroku)
- ChatAgent: General conversation and company information

User input: "%s"

Respond in JSON format with the agents that should handle this query:
{"agents": ["AgentName1", "AgentName2", ...]}

Examples:
- "Show me all tickets" -> {"agents": ["TicketAnalyzerAgent"]}
- "What's the latest news?" -> {"agents": ["NewsAggregatorAgent"]}
- "Show activities for John" -> {"agents": ["ActivityTrackerAgent"]}
- "AWS costs" or "infrastructure pricing" -> {"agents": ["InfrastructureCostMonitorAgent"]}
- "Tell me about the company" -> {"agents": ["ChatAgent"]}
- "What tickets are open and latest news" -> {"agents": ["TicketAnalyzerAgent", "NewsAggregatorAgent"]}
`, text)
}
