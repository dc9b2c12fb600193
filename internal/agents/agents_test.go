package agents

import (
	"time"

	"github.com/spec-kit/garage-assistant/internal/llm/llmtest"
	"github.com/spec-kit/garage-assistant/internal/repository"
)

// testDeps wires a seeded store with a classifier that always fails, so
// responders fall back to their default intent and skip rephrasing.
func testDeps() Deps {
	return Deps{
		Store:      repository.NewSeededStore(),
		Classifier: llmtest.FailingClassifier(),
		Generator:  llmtest.Failing(),
		Now:        func() time.Time { return time.Date(2025, 12, 5, 9, 0, 0, 0, time.UTC) },
	}
}
