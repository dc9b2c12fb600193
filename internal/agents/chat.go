package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/garage-assistant/internal/domain"
)

var companyKeywords = []string{"company", "technology-garage", "about", "services", "team", "mission", "vision"}

var chatDefaultIntent = Intent{QueryType: "general_question"}

// ChatResponder handles greetings, general questions and company information.
type ChatResponder struct {
	base
}

// NewChatResponder builds the responder.
func NewChatResponder(deps Deps) *ChatResponder {
	return &ChatResponder{base: newBase(domain.AgentChat, deps)}
}

// IsCompanyQuestion reports whether the chat should answer from the company profile.
func IsCompanyQuestion(userInput string, intent Intent) bool {
	if intent.QueryType == "company_info" {
		return true
	}
	lower := strings.ToLower(userInput)
	for _, kw := range companyKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func (r *ChatResponder) Handle(ctx context.Context, userInput string) string {
	intent := r.classify(ctx, chatIntentPrompt(userInput), chatDefaultIntent)

	var prompt string
	if IsCompanyQuestion(userInput, intent) {
		profile, err := json.MarshalIndent(r.Store.Company, "", "  ")
		if err != nil {
			return fmt.Sprintf("Chat error: %v", err)
		}
		prompt = fmt.Sprintf(`You are a helpful assistant for %s company.

Company Information:
%s

User question: %s

Provide a direct, specific answer to their question based on the company information above.
If they ask about something specific (e.g., location, services, team size), answer that directly.
Be friendly, professional, and concise.`, r.Store.Company.Name, profile, userInput)
	} else {
		prompt = fmt.Sprintf(`You are a helpful assistant for %s, a technology solutions company.
You can help with general questions and conversations.

User: %s

Provide a helpful, friendly, and natural response.
If it's a greeting, respond warmly.
If they need help, guide them on what you can assist with.`, r.Store.Company.Name, userInput)
	}

	if r.Generator == nil {
		return "Chat error: no generator configured"
	}
	text, err := r.Generator.Generate(ctx, prompt)
	if err != nil {
		r.Logger.Warn("chat generation failed", zap.Error(err))
		return fmt.Sprintf("Chat error: %v", err)
	}
	return text
}

func chatIntentPrompt(userInput string) string {
	return fmt.Sprintf(`Analyze this general query and extract the intent in JSON format:

User query: "%s"

Return JSON with:
- "query_type": "company_info" | "greeting" | "help" | "general_question" | "goodbye"
- "specific_topic": what they're asking about (e.g., "services", "team", "mission", "location", etc.)
- "question_type": "what" | "who" | "where" | "when" | "how" | "why" | "greeting"

Examples:
"What services do you offer?" -> {"query_type": "company_info", "specific_topic": "services", "question_type": "what"}
"Hello" -> {"query_type": "greeting", "specific_topic": "", "question_type": "greeting"}
"Where is Technology-Garage located?" -> {"query_type": "company_info", "specific_topic": "location", "question_type": "where"}
`, userInput)
}
