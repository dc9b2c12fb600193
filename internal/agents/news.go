package agents

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/garage-assistant/internal/domain"
)

const defaultNewsTopic = "technology"

// newsTopicPatterns are tried in order; group 1 is the topic.
var newsTopicPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(AI|ML|machine learning|deep learning|cloud|crypto|blockchain|tech|technology|quantum|robotics|5G|IoT)\s+news\b`),
	regexp.MustCompile(`(?i)news\s+on\s+([A-Za-z0-9\s]+?)(?:\?|$)`),
	regexp.MustCompile(`(?i)news\s+(?:about|for)\s+([A-Za-z0-9\s]+?)(?:\?|$)`),
	regexp.MustCompile(`(?i)(?:latest|recent)\s+news\s+(?:about|on)\s+([A-Za-z0-9\s]+?)(?:\?|$)`),
	regexp.MustCompile(`(?i)about\s+(AI|ML|machine learning|deep learning|cloud|crypto|blockchain|tech|technology|quantum|robotics|5G|IoT|[A-Za-z0-9\s]+?)\s+news`),
}

// NewsResponder writes a news digest for a topic. It has no feed: the
// articles are composed by the generator.
type NewsResponder struct {
	base
}

// NewNewsResponder builds the responder.
func NewNewsResponder(deps Deps) *NewsResponder {
	return &NewsResponder{base: newBase(domain.AgentNews, deps)}
}

// ExtractNewsTopic returns the topic named in text, or "technology".
func ExtractNewsTopic(text string) string {
	for _, re := range newsTopicPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			if topic := strings.TrimSpace(m[1]); topic != "" {
				return topic
			}
		}
	}
	return defaultNewsTopic
}

func (r *NewsResponder) Handle(ctx context.Context, userInput string) string {
	topic := ExtractNewsTopic(userInput)
	if r.Generator == nil {
		return "Error fetching news: no generator configured"
	}
	prompt := fmt.Sprintf(`You are a news summarizer. Provide a professional news summary about '%s' as if reporting current events for the date %s.

Create 5 realistic news articles with:
- Clear article titles
- 2-3 sentence summaries each
- Credible source names (Reuters, TechCrunch, Bloomberg, etc.)
- Recent dates (this week, yesterday, etc.)

Format cleanly with numbered articles. Do NOT include any disclaimers about live news access or training data cutoffs. Write as a professional news aggregator would.`,
		topic, r.Now().Format("2006-01-02"))

	text, err := r.Generator.Generate(ctx, prompt)
	if err != nil {
		r.Logger.Warn("news generation failed", zap.String("topic", topic), zap.Error(err))
		return fmt.Sprintf("Error fetching news: %v", err)
	}
	return fmt.Sprintf("Latest News about '%s':\n%s\n\n%s", topic, rule70("="), text)
}
