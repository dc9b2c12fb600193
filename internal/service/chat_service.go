package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/garage-assistant/internal/domain"
	apperrors "github.com/spec-kit/garage-assistant/pkg/util"
)

// ChatService runs one message through the pipeline.
type ChatService struct {
	loop   *DispatchLoop
	logger *zap.Logger
}

// ChatResult is the outcome of a processed message.
type ChatResult struct {
	RequestID    string
	Response     string
	Contributors []domain.AgentName
	Responses    map[domain.AgentName]string
	Duration     time.Duration
}

// NewChatService creates the service.
func NewChatService(loop *DispatchLoop, logger *zap.Logger) *ChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatService{loop: loop, logger: logger}
}

// Process validates the message and runs it to completion under requestID,
// generating one when empty. Pipeline failures are returned as processing
// errors; nothing partial is returned with them.
func (s *ChatService) Process(ctx context.Context, requestID, message string) (result *ChatResult, err error) {
	if strings.TrimSpace(message) == "" {
		return nil, apperrors.NewValidationError("message is required", map[string]any{"field": "message"})
	}

	started := time.Now()
	if requestID == "" {
		requestID = uuid.NewString()
	}
	state := domain.NewRequestState(requestID, message)
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("pipeline panicked", zap.String("request_id", state.ID), zap.Any("panic", r))
			result, err = nil, apperrors.NewProcessingError(fmt.Errorf("%v", r))
		}
	}()
	if runErr := s.loop.Run(ctx, state); runErr != nil {
		s.logger.Error("pipeline failed", zap.String("request_id", state.ID), zap.Error(runErr))
		return nil, apperrors.NewProcessingError(runErr)
	}

	result = &ChatResult{
		RequestID:    state.ID,
		Response:     state.FinalText(),
		Contributors: state.Contributors(),
		Responses:    state.Responses,
		Duration:     time.Since(started),
	}
	s.logger.Info("message processed",
		zap.String("request_id", result.RequestID),
		zap.Any("agents", result.Contributors),
		zap.Duration("duration", result.Duration))
	return result, nil
}
