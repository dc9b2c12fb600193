// Package bootstrap assembles the query pipeline from configuration. The
// HTTP server and the command line tool share it.
package bootstrap

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/garage-assistant/internal/agents"
	"github.com/spec-kit/garage-assistant/internal/config"
	"github.com/spec-kit/garage-assistant/internal/events"
	"github.com/spec-kit/garage-assistant/internal/llm"
	"github.com/spec-kit/garage-assistant/internal/observability"
	"github.com/spec-kit/garage-assistant/internal/persistence"
	"github.com/spec-kit/garage-assistant/internal/repository"
	"github.com/spec-kit/garage-assistant/internal/service"
	"github.com/spec-kit/garage-assistant/internal/worker"
)

// Pipeline holds everything a caller needs to serve chat requests.
type Pipeline struct {
	Store    *repository.Store
	Registry *agents.Registry
	Chat     *service.ChatService
	Slot     persistence.OutputSlot
	Metrics  *observability.Metrics
	Redis    *persistence.Redis
	LLMReady bool
}

// Options overrides collaborators. Zero fields are built from config.
type Options struct {
	Generator  llm.Generator
	Classifier llm.Classifier
}

// Build wires store, responders, dispatch loop and pipeline worker.
func Build(cfg *config.Config, logger *zap.Logger, opts Options) (*Pipeline, error) {
	store, err := repository.NewStore(cfg.Knowledge.Path)
	if err != nil {
		return nil, fmt.Errorf("load knowledge store: %w", err)
	}

	generator := opts.Generator
	if generator == nil {
		generator, err = llm.NewGenerator(cfg.LLM, logger)
		if err != nil {
			return nil, fmt.Errorf("init llm provider: %w", err)
		}
	}
	classifier := opts.Classifier
	if classifier == nil {
		classifier = llm.NewJSONClassifier(generator)
	}

	registry := agents.NewDefaultRegistry(agents.Deps{
		Store:      store,
		Classifier: classifier,
		Generator:  generator,
		Logger:     logger,
		MaxLines:   cfg.Agents.MaxLines,
	})

	redis := persistence.NewRedis(cfg.Redis, logger)
	slot := persistence.NewOutputSlot(redis, cfg.Redis.OutputKey)
	metrics := observability.NewMetrics()

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartPipelineWorker(dispatcher, worker.NewPipelineWorker(slot, metrics, logger))

	loop := service.NewDispatchLoop(service.DispatchDependencies{
		Router:     service.NewRouter(classifier, logger),
		Registry:   registry,
		Summarizer: service.NewSummarizer(generator, logger, cfg.Agents.MaxLines),
		Dispatcher: dispatcher,
		Logger:     logger,
	})

	return &Pipeline{
		Store:    store,
		Registry: registry,
		Chat:     service.NewChatService(loop, logger),
		Slot:     slot,
		Metrics:  metrics,
		Redis:    redis,
		LLMReady: cfg.LLM.APIKey() != "",
	}, nil
}

// Close releases external connections.
func (p *Pipeline) Close() {
	p.Redis.Close()
}
