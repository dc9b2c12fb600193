// Package llm holds the two language-model capabilities the assistant depends on:
// free-text generation and structured intent classification.
package llm

import (
	"context"
	"errors"
)

var (
	// ErrNotConfigured is returned when no provider credentials are available.
	ErrNotConfigured = errors.New("llm provider not configured")
	// ErrEmptyResponse is returned when the provider answers with no text.
	ErrEmptyResponse = errors.New("llm returned empty response")
	// ErrMalformedJSON is returned when a classification cannot be decoded.
	ErrMalformedJSON = errors.New("llm returned malformed json")
)

// Generator turns a prompt into free text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Classifier turns a prompt into a JSON object decoded into out.
type Classifier interface {
	Classify(ctx context.Context, prompt string, out any) error
}

// Unavailable is a Generator that always fails with ErrNotConfigured. It keeps
// the service answering from local fallbacks when no API key is set.
type Unavailable struct{}

func (Unavailable) Generate(context.Context, string) (string, error) {
	return "", ErrNotConfigured
}
