package domain

// CompanyProfile is the descriptive reference record used by the chat responder.
type CompanyProfile struct {
	Name             string           `json:"name" yaml:"name"`
	Founded          string           `json:"founded" yaml:"founded"`
	Headquarters     string           `json:"headquarters" yaml:"headquarters"`
	Description      string           `json:"description" yaml:"description"`
	Services         []string         `json:"services" yaml:"services"`
	TeamSize         string           `json:"team_size" yaml:"team_size"`
	IndustriesServed []string         `json:"industries_served" yaml:"industries_served"`
	Vision           string           `json:"vision" yaml:"vision"`
	Mission          string           `json:"mission" yaml:"mission"`
	Values           []string         `json:"values" yaml:"values"`
	Clients          []string         `json:"clients" yaml:"clients"`
	LearningApproach LearningApproach `json:"learning_approach" yaml:"learning_approach"`
}

// LearningApproach groups the coaching metrics of the profile.
type LearningApproach struct {
	GamificationElements []string `json:"gamification_elements" yaml:"gamification_elements"`
	CoachingStyle        string   `json:"coaching_style" yaml:"coaching_style"`
	SkillTracks          []string `json:"skill_tracks" yaml:"skill_tracks"`
	SuccessMetrics       string   `json:"success_metrics" yaml:"success_metrics"`
}
