// Package llmtest provides deterministic stand-ins for the llm capabilities.
package llmtest

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
)

// ErrStub is the default failure returned by failing fakes.
var ErrStub = errors.New("stub llm failure")

// Generator returns a fixed response or error and records every prompt.
type Generator struct {
	Response string
	Err      error

	mu      sync.Mutex
	prompts []string
}

// Fixed returns a Generator that always answers response.
func Fixed(response string) *Generator {
	return &Generator{Response: response}
}

// Failing returns a Generator that always fails.
func Failing() *Generator {
	return &Generator{Err: ErrStub}
}

func (g *Generator) Generate(_ context.Context, prompt string) (string, error) {
	g.mu.Lock()
	g.prompts = append(g.prompts, prompt)
	g.mu.Unlock()
	if g.Err != nil {
		return "", g.Err
	}
	return g.Response, nil
}

// Prompts returns the prompts seen so far.
func (g *Generator) Prompts() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]string, len(g.prompts))
	copy(out, g.prompts)
	return out
}

// Calls reports how many prompts were received.
func (g *Generator) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.prompts)
}

// Rule answers with Response when a prompt contains Contains.
type Rule struct {
	Contains string
	Response string
	Err      error
}

// Routed picks its answer by the first rule whose substring appears in the prompt.
// Prompts that match no rule fail with ErrStub.
type Routed struct {
	Rules []Rule

	mu      sync.Mutex
	prompts []string
}

func (r *Routed) Generate(_ context.Context, prompt string) (string, error) {
	r.mu.Lock()
	r.prompts = append(r.prompts, prompt)
	r.mu.Unlock()
	for _, rule := range r.Rules {
		if strings.Contains(prompt, rule.Contains) {
			return rule.Response, rule.Err
		}
	}
	return "", ErrStub
}

// Prompts returns the prompts seen so far.
func (r *Routed) Prompts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.prompts))
	copy(out, r.prompts)
	return out
}

// Classifier decodes a fixed JSON document into every request.
type Classifier struct {
	JSON string
	Err  error

	mu    sync.Mutex
	calls int
}

// ClassifyAs returns a Classifier answering with v encoded as JSON.
func ClassifyAs(v any) *Classifier {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return &Classifier{JSON: string(raw)}
}

// FailingClassifier always fails.
func FailingClassifier() *Classifier {
	return &Classifier{Err: ErrStub}
}

func (c *Classifier) Classify(_ context.Context, _ string, out any) error {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	if c.Err != nil {
		return c.Err
	}
	return json.Unmarshal([]byte(c.JSON), out)
}

// Calls reports how many classifications were requested.
func (c *Classifier) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}
