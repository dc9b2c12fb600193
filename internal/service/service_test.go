package service

import (
	"context"
	"sync"

	"github.com/spec-kit/garage-assistant/internal/domain"
)

// callLog records the order responders were invoked in.
type callLog struct {
	mu    sync.Mutex
	names []domain.AgentName
}

func (l *callLog) add(name domain.AgentName) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.names = append(l.names, name)
}

func (l *callLog) list() []domain.AgentName {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]domain.AgentName(nil), l.names...)
}

type fakeResponder struct {
	name  domain.AgentName
	reply string
	log   *callLog
	panic any
}

func (f *fakeResponder) Name() domain.AgentName { return f.name }

func (f *fakeResponder) Handle(_ context.Context, _ string) string {
	if f.log != nil {
		f.log.add(f.name)
	}
	if f.panic != nil {
		panic(f.panic)
	}
	return f.reply
}
