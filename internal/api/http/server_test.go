package http

import (
	"context"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/spec-kit/garage-assistant/internal/agents"
	"github.com/spec-kit/garage-assistant/internal/api/dto"
	"github.com/spec-kit/garage-assistant/internal/api/http/handlers"
	"github.com/spec-kit/garage-assistant/internal/domain"
	"github.com/spec-kit/garage-assistant/internal/events"
	"github.com/spec-kit/garage-assistant/internal/llm/llmtest"
	"github.com/spec-kit/garage-assistant/internal/observability"
	"github.com/spec-kit/garage-assistant/internal/persistence"
	"github.com/spec-kit/garage-assistant/internal/repository"
	"github.com/spec-kit/garage-assistant/internal/service"
	"github.com/spec-kit/garage-assistant/internal/worker"
)

type panicResponder struct{}

func (panicResponder) Name() domain.AgentName { return domain.AgentChat }

func (panicResponder) Handle(context.Context, string) string { panic("boom") }

func newTestApp(t *testing.T, registry *agents.Registry, routeTo ...string) *fiber.App {
	t.Helper()
	return newTestAppWithLimiter(t, registry, nil, routeTo...)
}

func newTestAppWithLimiter(t *testing.T, registry *agents.Registry, limiter *rate.Limiter, routeTo ...string) *fiber.App {
	t.Helper()
	logger := zap.NewNop()
	metrics := observability.NewMetrics()
	classifier := llmtest.ClassifyAs(map[string][]string{"agents": routeTo})
	generator := llmtest.Fixed("generated")

	if registry == nil {
		registry = agents.NewDefaultRegistry(agents.Deps{
			Store:      repository.NewSeededStore(),
			Classifier: classifier,
			Generator:  generator,
		})
	}
	dispatcher := events.NewInMemoryDispatcher()
	slot := persistence.NewMemorySlot()
	worker.StartPipelineWorker(dispatcher, worker.NewPipelineWorker(slot, metrics, logger))

	loop := service.NewDispatchLoop(service.DispatchDependencies{
		Router:     service.NewRouter(classifier, logger),
		Registry:   registry,
		Summarizer: service.NewSummarizer(generator, logger, 0),
		Dispatcher: dispatcher,
		Logger:     logger,
	})

	app := fiber.New()
	RegisterMiddlewares(app, logger, metrics, MiddlewareConfig{
		Timeout:        5 * time.Second,
		AllowedOrigins: []string{"http://localhost:3000"},
	})
	RegisterRoutes(app, RouteConfig{
		Health:   handlers.NewHealthHandler("garage-assistant", "test", nil, false),
		Chat:     handlers.NewChatHandler(service.NewChatService(loop, logger)),
		Agents:   handlers.NewAgentsHandler(domain.Agents),
		Terminal: handlers.NewTerminalHandler(slot),
		Metrics:  handlers.NewMetricsHandler(metrics),

		ChatLimiter: limiter,
	})
	return app
}

func postChat(t *testing.T, app *fiber.App, body string) *nethttp.Response {
	t.Helper()
	req := httptest.NewRequest(nethttp.MethodPost, "/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *nethttp.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

type errorBody struct {
	Error struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func TestChat_TicketLookup(t *testing.T) {
	app := newTestApp(t, nil, "TicketAnalyzerAgent")

	resp := postChat(t, app, `{"message":"Show TKT-001"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decode[dto.ChatResponse](t, resp)

	assert.Contains(t, body.Response, "Raised By: Muthamizh (Coach)")
	assert.Equal(t, "ticket_analyzer", body.QueryType)
	assert.Regexp(t, `^\d+\.\d{2}s$`, body.ExecutionTime)
	assert.Equal(t, body.Response, body.AgentResponses["ticket_analyzer"])
	assert.Equal(t, resp.Header.Get(observability.RequestIDHeader), body.RequestID)

	out, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/terminal-output", nil))
	require.NoError(t, err)
	text, err := io.ReadAll(out.Body)
	require.NoError(t, err)
	assert.Equal(t, body.Response, string(text))
	assert.True(t, strings.HasPrefix(out.Header.Get(fiber.HeaderContentType), "text/plain"))
}

func TestChat_MultipleResponders(t *testing.T) {
	app := newTestApp(t, nil, "TicketAnalyzerAgent", "InfrastructureCostMonitorAgent")

	body := decode[dto.ChatResponse](t, postChat(t, app, `{"message":"open tickets and AWS costs"}`))
	assert.Equal(t, "ticket_analyzer, infrastructure_cost_monitor", body.QueryType)
	assert.Equal(t, "generated", body.Response)
	assert.Len(t, body.AgentResponses, 2)
	assert.Contains(t, body.AgentResponses["infrastructure_cost_monitor"], "ESTIMATED MONTHLY SPENDING: $200-300")
}

func TestChat_Validation(t *testing.T) {
	app := newTestApp(t, nil)

	for _, payload := range []string{`{"message":"   "}`, `{}`, `not json`} {
		resp := postChat(t, app, payload)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, payload)
		assert.Equal(t, "VALIDATION_FAILED", decode[errorBody](t, resp).Error.Code, payload)
	}
}

func TestChat_PipelineFailure(t *testing.T) {
	app := newTestApp(t, agents.NewRegistry(panicResponder{}), "ChatAgent")

	resp := postChat(t, app, `{"message":"hello"}`)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	body := decode[errorBody](t, resp)
	assert.Equal(t, "PROCESSING_FAILED", body.Error.Code)
	assert.Equal(t, "Error processing message: boom", body.Error.Message)
}

func TestHealthAndAgents(t *testing.T) {
	app := newTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/health", nil))
	require.NoError(t, err)
	health := decode[map[string]any](t, resp)
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, "garage-assistant", health["service"])

	resp, err = app.Test(httptest.NewRequest(nethttp.MethodGet, "/health/ready", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	ready := decode[map[string]any](t, resp)
	assert.Equal(t, map[string]any{"redis": "disabled", "llm": "not configured"}, ready["dependencies"])

	resp, err = app.Test(httptest.NewRequest(nethttp.MethodGet, "/agents", nil))
	require.NoError(t, err)
	list := decode[dto.AgentsResponse](t, resp)
	require.Len(t, list.Agents, 5)
	assert.Equal(t, "TicketAnalyzerAgent", list.Agents[0].Name)
	assert.Equal(t, "ChatAgent", list.Agents[4].Name)
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestApp(t, nil, "ChatAgent")
	postChat(t, app, `{"message":"hello"}`)

	resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	snap := decode[observability.MetricsSnapshot](t, resp)
	assert.Equal(t, int64(1), snap.Requests["/chat|POST|200"])
	assert.Equal(t, int64(1), snap.Responders["chat"])
}

func TestCORSPreflight(t *testing.T) {
	app := newTestApp(t, nil)

	req := httptest.NewRequest(nethttp.MethodOptions, "/chat", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestChat_RateLimited(t *testing.T) {
	assert.Nil(t, NewChatLimiter(0, 5))

	app := newTestAppWithLimiter(t, nil, NewChatLimiter(0.001, 1), "ChatAgent")

	require.Equal(t, fiber.StatusOK, postChat(t, app, `{"message":"hello"}`).StatusCode)

	resp := postChat(t, app, `{"message":"hello again"}`)
	require.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "RATE_LIMITED", decode[errorBody](t, resp).Error.Code)
}
