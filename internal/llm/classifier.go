package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// JSONClassifier asks a Generator for JSON and decodes it.
type JSONClassifier struct {
	gen Generator
}

// NewJSONClassifier wraps gen.
func NewJSONClassifier(gen Generator) *JSONClassifier {
	return &JSONClassifier{gen: gen}
}

// Classify generates a response for prompt and decodes the first JSON object in it.
// Slightly broken JSON (trailing commas, single quotes, missing braces) is repaired
// once before giving up.
func (c *JSONClassifier) Classify(ctx context.Context, prompt string, out any) error {
	text, err := c.gen.Generate(ctx, prompt)
	if err != nil {
		return err
	}
	return DecodeJSON(text, out)
}

// DecodeJSON extracts a JSON object from model output and unmarshals it into out.
func DecodeJSON(text string, out any) error {
	raw := extractObject(stripCodeFence(text))
	if raw == "" {
		return fmt.Errorf("%w: no object in %q", ErrMalformedJSON, truncate(text, 200))
	}
	if err := json.Unmarshal([]byte(raw), out); err == nil {
		return nil
	}
	repaired, err := jsonrepair.JSONRepair(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	if err := json.Unmarshal([]byte(repaired), out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	return nil
}

func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// extractObject returns text from the first '{' to the last '}', or to the end
// when the object was cut off.
func extractObject(text string) string {
	start := strings.Index(text, "{")
	if start < 0 {
		return ""
	}
	end := strings.LastIndex(text, "}")
	if end < start {
		return text[start:]
	}
	return text[start : end+1]
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
