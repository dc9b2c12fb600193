package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/garage-assistant/internal/agents"
	"github.com/spec-kit/garage-assistant/internal/domain"
	"github.com/spec-kit/garage-assistant/internal/llm"
)

// NothingToSummarize is returned when no responder produced output.
const NothingToSummarize = "No responses to summarize."

// Summarizer folds responder outputs into the final answer.
type Summarizer struct {
	generator llm.Generator
	logger    *zap.Logger
	maxLines  int
}

// NewSummarizer creates the summarizer. maxLines <= 0 uses agents.DefaultMaxLines.
func NewSummarizer(generator llm.Generator, logger *zap.Logger, maxLines int) *Summarizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxLines <= 0 {
		maxLines = agents.DefaultMaxLines
	}
	return &Summarizer{generator: generator, logger: logger, maxLines: maxLines}
}

// Summarize passes a single response through untouched and asks the generator
// to merge several. Overview requests get the executive template, which is
// always held to the line budget; standard merges keep their full length when
// the user asked for details.
func (s *Summarizer) Summarize(ctx context.Context, state *domain.RequestState) string {
	contributors := state.Contributors()
	switch len(contributors) {
	case 0:
		return NothingToSummarize
	case 1:
		return state.Responses[contributors[0]]
	}

	sections := make([]string, 0, len(contributors))
	for _, name := range contributors {
		sections = append(sections, fmt.Sprintf("=== %s ===\n%s", sectionTitle(name), state.Responses[name]))
	}
	responses := strings.Join(sections, "\n\n")

	overview := IsOverviewRequest(state.UserInput)
	prompt := standardSummaryPrompt(responses)
	if overview {
		prompt = executiveSummaryPrompt(state.UserInput, responses)
	}

	if s.generator == nil {
		return "Error creating summary: no generator configured"
	}
	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.logger.Warn("summary generation failed", zap.Error(err))
		return fmt.Sprintf("Error creating summary: %v", err)
	}
	text = strings.TrimSpace(text)
	if overview || !agents.WantsDetails(state.UserInput, "everything") {
		text = agents.Truncate(text, s.maxLines)
	}
	return text
}

// sectionTitle turns "ticket_analyzer" into "TICKET ANALYZER".
func sectionTitle(name domain.AgentName) string {
	return strings.ToUpper(strings.ReplaceAll(string(name), "_", " "))
}

func executiveSummaryPrompt(userInput, responses string) string {
	return fmt.Sprintf(`You are an intelligent business analyst for Technology-Garage company.

The user asked: "%s"

Here are reports from all departments:

%s

Create a CONCISE executive summary (max 10 lines) that covers:
1. **Key Priorities & Issues** - Most critical blockers
2. **Current Status** - Overall health snapshot
3. **Notable Updates** - Top 1-2 recent developments
4. **Quick Recommendations** - Top 1-2 immediate actions

Format as bullet points. Be ultra-concise - assume busy executive reading in 30 seconds.
NO long paragraphs. Each section: max 1-2 lines.
`, userInput, responses)
}

func standardSummaryPrompt(responses string) string {
	return fmt.Sprintf(`You are a helpful assistant. Create a single, clear, and concise summary from these agent responses.
Include at least one key point from EVERY agent's response.
Do NOT repeat agent names in the summary.
Keep it within 10 lines maximum.

%s
`, responses)
}
