package domain

// MessageRole tags a transcript entry.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message is one transcript entry.
type Message struct {
	Role    MessageRole
	Content string
}

// RequestState is the per-request bag threaded through the dispatch loop.
// It is created at request entry and discarded once the response is written.
type RequestState struct {
	ID        string
	UserInput string
	Pending   []AgentName
	Responses map[AgentName]string
	Messages  []Message

	order []AgentName
}

// NewRequestState seeds the transcript with the user message.
func NewRequestState(id, userInput string) *RequestState {
	return &RequestState{
		ID:        id,
		UserInput: userInput,
		Responses: make(map[AgentName]string),
		Messages:  []Message{{Role: RoleUser, Content: userInput}},
	}
}

// Next pops the head of the pending queue.
func (s *RequestState) Next() (AgentName, bool) {
	if len(s.Pending) == 0 {
		return "", false
	}
	head := s.Pending[0]
	s.Pending = s.Pending[1:]
	return head, true
}

// Record stores a responder's output and appends it to the transcript.
func (s *RequestState) Record(name AgentName, text string) {
	if _, seen := s.Responses[name]; !seen {
		s.order = append(s.order, name)
	}
	s.Responses[name] = text
	s.Messages = append(s.Messages, Message{Role: RoleAssistant, Content: text})
}

// Contributors returns responder names in the order they first produced output.
func (s *RequestState) Contributors() []AgentName {
	out := make([]AgentName, len(s.order))
	copy(out, s.order)
	return out
}

// Finish appends the final answer to the transcript.
func (s *RequestState) Finish(text string) {
	s.Messages = append(s.Messages, Message{Role: RoleAssistant, Content: text})
}

// FinalText is the last transcript entry.
func (s *RequestState) FinalText() string {
	if len(s.Messages) == 0 {
		return ""
	}
	return s.Messages[len(s.Messages)-1].Content
}
