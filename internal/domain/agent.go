package domain

// AgentName identifies a responder. It is the key used in agent_responses.
type AgentName string

const (
	AgentTicket         AgentName = "ticket_analyzer"
	AgentNews           AgentName = "news_aggregator"
	AgentActivity       AgentName = "activity_tracker"
	AgentInfrastructure AgentName = "infrastructure_cost_monitor"
	AgentChat           AgentName = "chat"
)

// AgentInfo describes a responder for routing prompts and the /agents listing.
type AgentInfo struct {
	Name        AgentName
	Label       string
	Description string
}

// Agents lists every responder in catalogue order.
var Agents = []AgentInfo{
	{Name: AgentTicket, Label: "TicketAnalyzerAgent", Description: "Handles tickets raised by employees, players, or parents"},
	{Name: AgentNews, Label: "NewsAggregatorAgent", Description: "Summarises the latest news articles for a topic"},
	{Name: AgentActivity, Label: "ActivityTrackerAgent", Description: "Tracks employee activities like a Kanban board"},
	{Name: AgentInfrastructure, Label: "InfrastructureCostMonitorAgent", Description: "Monitors cloud infrastructure costs (AWS, Azure, GCP, Firebase, etc.)"},
	{Name: AgentChat, Label: "ChatAgent", Description: "General conversation and company information"},
}

// LookupAgent resolves either a routing label or a responder key.
func LookupAgent(name string) (AgentInfo, bool) {
	for _, a := range Agents {
		if a.Label == name || string(a.Name) == name {
			return a, true
		}
	}
	return AgentInfo{}, false
}
