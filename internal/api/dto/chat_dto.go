package dto

// ChatRequest payload.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the answer to one message. QueryType lists the responders
// that ran, comma separated, and AgentResponses holds each one's raw output.
type ChatResponse struct {
	Response       string            `json:"response"`
	QueryType      string            `json:"query_type"`
	ExecutionTime  string            `json:"execution_time"`
	AgentResponses map[string]string `json:"agent_responses"`
	RequestID      string            `json:"request_id"`
}

// AgentSummary describes one responder.
type AgentSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AgentsResponse lists the responders.
type AgentsResponse struct {
	Agents []AgentSummary `json:"agents"`
}
