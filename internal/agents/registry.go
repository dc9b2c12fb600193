package agents

import "github.com/spec-kit/garage-assistant/internal/domain"

// Registry maps responder names to implementations.
type Registry struct {
	byName map[domain.AgentName]Responder
}

// NewRegistry indexes responders by Name.
func NewRegistry(responders ...Responder) *Registry {
	r := &Registry{byName: make(map[domain.AgentName]Responder, len(responders))}
	for _, resp := range responders {
		r.byName[resp.Name()] = resp
	}
	return r
}

// NewDefaultRegistry builds all five responders over deps.
func NewDefaultRegistry(deps Deps) *Registry {
	return NewRegistry(
		NewTicketResponder(deps),
		NewNewsResponder(deps),
		NewActivityResponder(deps),
		NewInfrastructureResponder(deps),
		NewChatResponder(deps),
	)
}

// Resolve returns the responder registered under name. Unknown names resolve
// to the chat responder, so the returned name may differ from the one asked for.
// ok is false only when neither exists.
func (r *Registry) Resolve(name domain.AgentName) (Responder, bool) {
	if resp, ok := r.byName[name]; ok {
		return resp, true
	}
	resp, ok := r.byName[domain.AgentChat]
	return resp, ok
}
