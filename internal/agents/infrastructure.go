package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/spec-kit/garage-assistant/internal/domain"
)

// providerAliases is checked in order; the first alias found in the text wins.
var providerAliases = []struct {
	alias    string
	provider string
}{
	{"aws", "AWS"},
	{"amazon", "AWS"},
	{"azure", "Azure"},
	{"microsoft", "Azure"},
	{"google", "Google Cloud"},
	{"gcp", "Google Cloud"},
	{"firebase", "Firebase"},
	{"digitalocean", "DigitalOcean"},
	{"ocean", "DigitalOcean"},
	{"vercel", "Vercel"},
	{"heroku", "Heroku"},
}

var infraRephraseFor = []string{"how_much", "what", "which", "compare"}

const infraRephraseGuidance = `- If they asked "how much", give the specific cost/estimate
- If they asked "which is cheaper", compare and state which one
- If they asked "what services", list the key services
- Keep it conversational and direct`

// InfrastructureResponder answers cloud cost questions.
type InfrastructureResponder struct {
	base
	rules []rule
}

// NewInfrastructureResponder builds the responder and its rule cascade.
func NewInfrastructureResponder(deps Deps) *InfrastructureResponder {
	r := &InfrastructureResponder{base: newBase(domain.AgentInfrastructure, deps)}
	r.rules = []rule{
		{name: "provider", match: r.matchProvider, render: r.renderProvider},
		{name: "compare", match: matchCompare, render: r.renderComparison},
		{name: "overview", match: always, render: r.renderOverview},
	}
	return r
}

func (r *InfrastructureResponder) Handle(ctx context.Context, userInput string) string {
	intent := r.classify(ctx, infraIntentPrompt(userInput), DefaultIntent)
	_, rendered := evaluate(r.rules, query{input: userInput, intent: intent})
	return r.finish(ctx, userInput, rendered, intent, infraRephraseFor, infraRephraseGuidance)
}

// DetectProvider maps the first known alias in text to its provider name.
func DetectProvider(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, a := range providerAliases {
		if strings.Contains(lower, a.alias) {
			return a.provider, true
		}
	}
	return "", false
}

func (r *InfrastructureResponder) matchProvider(q query) ([]string, bool) {
	provider, ok := DetectProvider(q.input)
	if !ok {
		return nil, false
	}
	if _, known := r.Store.Costs.Get(provider); !known {
		return nil, false
	}
	return []string{provider}, true
}

func matchCompare(q query) ([]string, bool) {
	lower := strings.ToLower(q.input)
	return nil, strings.Contains(lower, "compare") || strings.Contains(lower, "comparison")
}

func (r *InfrastructureResponder) renderProvider(_ query, c []string) string {
	sheet, _ := r.Store.Costs.Get(c[0])
	out := []string{
		sheet.Provider + " Infrastructure Cost Analysis",
		rule70("="),
		"",
		"ESTIMATED MONTHLY SPENDING: " + sheet.TotalMonthlyEstimate,
		fmt.Sprintf("Number of Services: %d", len(sheet.Services)),
		"",
		"COST BREAKDOWN BY SERVICE:",
		rule70("-"),
	}
	for _, s := range sheet.Services {
		out = append(out,
			"",
			fmt.Sprintf("[%s] %s", s.Category, s.Name),
			"Region: "+orNA(s.Region),
			"Specifications: "+orNA(s.Specs),
			"Cost Structure:",
		)
		for _, price := range s.Prices {
			out = append(out, fmt.Sprintf("  - %s: %s", priceLabel(price.Dimension), price.Value))
		}
		out = append(out, rule70("-"))
	}
	out = append(out,
		"",
		"COST TRAFFIC SUMMARY:",
		fmt.Sprintf("Compute Resources: %d service(s)", len(sheet.ServicesInCategory("Compute"))),
		fmt.Sprintf("Storage Resources: %d service(s)", len(sheet.ServicesInCategory("Storage"))),
		fmt.Sprintf("Database Resources: %d service(s)", len(sheet.ServicesInCategory("Database"))),
	)
	return strings.Join(out, "\n")
}

func (r *InfrastructureResponder) renderComparison(query, []string) string {
	out := []string{
		"Cloud Infrastructure Cost Comparison",
		rule70("="),
		"",
		"PROVIDER COST OVERVIEW:",
		rule70("-"),
	}
	for _, sheet := range r.Store.Costs.List() {
		out = append(out,
			"",
			sheet.Provider,
			"Monthly Spending Estimate: "+sheet.TotalMonthlyEstimate,
			fmt.Sprintf("Services Tracked: %d", len(sheet.Services)),
		)
		if compute := sheet.ServicesInCategory("Compute"); len(compute) > 0 {
			cost, ok := compute[0].Price("price_per_month")
			if !ok {
				cost, ok = compute[0].Price("price_per_hour")
			}
			if !ok {
				cost = "N/A"
			}
			out = append(out, "Compute Cost: "+cost)
		}
		if database := sheet.ServicesInCategory("Database"); len(database) > 0 {
			cost, ok := database[0].Price("price_per_month")
			if !ok {
				cost = "Varies"
			}
			out = append(out, "Database Cost: "+cost)
		}
		out = append(out, rule70("-"))
	}
	return strings.Join(out, "\n")
}

func (r *InfrastructureResponder) renderOverview(query, []string) string {
	out := []string{
		"Infrastructure Cost Monitor - All Providers Overview",
		rule70("="),
		"",
		"AVAILABLE CLOUD PROVIDERS:",
		rule70("-"),
	}
	for _, sheet := range r.Store.Costs.List() {
		out = append(out,
			"",
			sheet.Provider,
			"Monthly Spending Estimate: "+sheet.TotalMonthlyEstimate,
			fmt.Sprintf("Services Monitored: %d", len(sheet.Services)),
			"Service Categories: "+strings.Join(categories(sheet), ", "),
			rule70("-"),
		)
	}
	out = append(out, "", "Tip: Specify a provider (e.g., 'AWS costs') for detailed breakdown or ask for 'comparison'")
	return strings.Join(out, "\n")
}

// categories lists distinct categories in first-seen order.
func categories(sheet domain.ProviderCostSheet) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range sheet.Services {
		if !seen[s.Category] {
			seen[s.Category] = true
			out = append(out, s.Category)
		}
	}
	return out
}

// priceLabel turns "price_per_gb_month" into "Per Gb Month".
func priceLabel(dimension string) string {
	label := strings.ReplaceAll(dimension, "_", " ")
	label = strings.ReplaceAll(label, "price ", "")
	return labelTitle(label)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func infraIntentPrompt(userInput string) string {
	return fmt.Sprintf(`Analyze this infrastructure cost query and extract the intent in JSON format:

User query: "%s"

Available providers: AWS, Azure, Google Cloud, Firebase, DigitalOcean, Vercel, Heroku

Return JSON with:
- "query_type": "specific_provider" | "compare_all" | "overview" | "cheapest" | "most_expensive"
- "provider": specific provider name if mentioned
- "question_type": "how_much" | "what" | "which" | "compare" | "list" | "breakdown"

Examples:
"How much does AWS cost?" -> {"query_type": "specific_provider", "provider": "AWS", "question_type": "how_much"}
"Which is cheaper, AWS or Azure?" -> {"query_type": "compare_all", "provider": "", "question_type": "which"}
"Show me Firebase pricing" -> {"query_type": "specific_provider", "provider": "Firebase", "question_type": "breakdown"}
`, userInput)
}
