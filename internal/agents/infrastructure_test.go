package agents

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/garage-assistant/internal/llm/llmtest"
)

func TestDetectProvider(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"How much is Amazon costing us", "AWS", true},
		{"gcp spend", "Google Cloud", true},
		{"Microsoft bill", "Azure", true},
		{"digital ocean droplets", "DigitalOcean", true},
		{"heroku dynos", "Heroku", true},
		{"what do we spend on the cloud", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := DetectProvider(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInfrastructureResponder_ProviderBreakdown(t *testing.T) {
	r := NewInfrastructureResponder(testDeps())

	got := r.Handle(context.Background(), "AWS cost details")
	lines := strings.Split(got, "\n")
	assert.Equal(t, "AWS Infrastructure Cost Analysis", lines[0])
	assert.Equal(t, strings.Repeat("=", 70), lines[1])
	assert.Contains(t, got, "ESTIMATED MONTHLY SPENDING: $200-300")
	assert.Contains(t, got, "[Compute] EC2 t3.medium\nRegion: us-east-1\nSpecifications: 2 vCPU, 4 GB RAM\nCost Structure:\n  - Per Hour: $0.0416\n  - Per Month: $30.40")
	assert.Contains(t, got, "  - For 100Gb: $2.30")
	assert.Contains(t, got, "Storage Resources: 2 service(s)")
	assert.NotContains(t, got, TruncationNotice)

	short := r.Handle(context.Background(), "AWS costs")
	assert.Len(t, strings.Split(short, "\n"), 11)
}

func TestInfrastructureResponder_ProviderWinsOverCompare(t *testing.T) {
	r := NewInfrastructureResponder(testDeps())
	got := r.Handle(context.Background(), "compare azure")
	assert.True(t, strings.HasPrefix(got, "Azure Infrastructure Cost Analysis"), got)
}

func TestInfrastructureResponder_Comparison(t *testing.T) {
	r := NewInfrastructureResponder(testDeps())

	got := r.Handle(context.Background(), "full cost comparison across clouds")
	lines := strings.Split(got, "\n")
	require.Greater(t, len(lines), 10)
	assert.Equal(t, "Cloud Infrastructure Cost Comparison", lines[0])
	assert.Equal(t, "PROVIDER COST OVERVIEW:", lines[3])
	assert.Contains(t, got, "AWS\nMonthly Spending Estimate: $200-300")
	assert.Contains(t, got, "Compute Cost: $30.40")
	assert.Contains(t, got, "Database Cost: $54.77")
}

func TestInfrastructureResponder_Overview(t *testing.T) {
	r := NewInfrastructureResponder(testDeps())

	got := r.Handle(context.Background(), "complete infrastructure spend")
	assert.True(t, strings.HasPrefix(got, "Infrastructure Cost Monitor - All Providers Overview"))
	assert.Contains(t, got, "Service Categories: Compute, Database, Storage, Serverless, CDN, Cache, DNS, Networking")
	assert.True(t, strings.HasSuffix(got, "Tip: Specify a provider (e.g., 'AWS costs') for detailed breakdown or ask for 'comparison'"))
}

func TestInfrastructureResponder_Rephrase(t *testing.T) {
	deps := testDeps()
	deps.Classifier = llmtest.ClassifyAs(Intent{QueryType: "specific_provider", Provider: "AWS", QuestionType: "how_much"})
	deps.Generator = llmtest.Fixed("AWS runs about $200-300 a month.")
	r := NewInfrastructureResponder(deps)

	assert.Equal(t, "AWS runs about $200-300 a month.", r.Handle(context.Background(), "How much does AWS cost?"))
}
