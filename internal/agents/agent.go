// Package agents implements the responders: ticket, activity, infrastructure
// cost, news and chat. Each turns user text plus the knowledge store into a
// formatted answer, optionally rephrased by the language model.
package agents

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/garage-assistant/internal/domain"
	"github.com/spec-kit/garage-assistant/internal/llm"
	"github.com/spec-kit/garage-assistant/internal/repository"
)

// Responder answers one domain of questions.
type Responder interface {
	Name() domain.AgentName
	Handle(ctx context.Context, userInput string) string
}

// Intent is the classifier's guess about the shape of a question. Responders
// read the fields relevant to them.
type Intent struct {
	QueryType     string `json:"query_type"`
	FilterValue   string `json:"filter_value"`
	Provider      string `json:"provider"`
	SpecificTopic string `json:"specific_topic"`
	QuestionType  string `json:"question_type"`
}

// DefaultIntent is used whenever classification fails.
var DefaultIntent = Intent{QueryType: "overview", QuestionType: "list"}

// Deps are shared by every responder.
type Deps struct {
	Store      *repository.Store
	Classifier llm.Classifier
	Generator  llm.Generator
	Logger     *zap.Logger
	MaxLines   int
	Now        func() time.Time
}

type base struct {
	Deps
	name domain.AgentName
}

func newBase(name domain.AgentName, deps Deps) base {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.MaxLines <= 0 {
		deps.MaxLines = DefaultMaxLines
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return base{Deps: deps, name: name}
}

func (b base) Name() domain.AgentName { return b.name }

// classify asks the classifier once and falls back to def on any failure.
func (b base) classify(ctx context.Context, prompt string, def Intent) Intent {
	if b.Classifier == nil {
		return def
	}
	var intent Intent
	if err := b.Classifier.Classify(ctx, prompt, &intent); err != nil {
		b.Logger.Warn("intent classification failed; using default",
			zap.String("agent", string(b.name)), zap.Error(err))
		return def
	}
	if intent.QueryType == "" {
		intent.QueryType = def.QueryType
	}
	if intent.QuestionType == "" {
		intent.QuestionType = def.QuestionType
	}
	return intent
}

// finish applies the line budget and, for natural-language questions, asks the
// generator to answer directly from the rendered data.
func (b base) finish(ctx context.Context, userInput, rendered string, intent Intent, rephraseFor []string, guidance string) string {
	out := rendered
	if !WantsDetails(userInput) {
		out = Truncate(out, b.MaxLines)
	}
	if out == "" || !contains(rephraseFor, intent.QuestionType) {
		return out
	}
	return b.rephrase(ctx, userInput, out, guidance)
}

func (b base) rephrase(ctx context.Context, userInput, raw, guidance string) string {
	if b.Generator == nil {
		return raw
	}
	prompt := fmt.Sprintf(`User asked: "%s"

Raw data response:
%s

Provide a direct, natural answer to the user's specific question. Be concise and precise.
%s`, userInput, raw, guidance)
	text, err := b.Generator.Generate(ctx, prompt)
	if err != nil {
		b.Logger.Warn("rephrase failed; keeping raw answer",
			zap.String("agent", string(b.name)), zap.Error(err))
		return raw
	}
	return text
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
