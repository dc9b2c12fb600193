package domain

// PriceField is one billing dimension of a service, e.g. price_per_hour.
type PriceField struct {
	Dimension string `yaml:"dimension"`
	Value     string `yaml:"value"`
}

// ServiceLineItem is a single priced cloud service.
type ServiceLineItem struct {
	Name     string       `yaml:"name"`
	Category string       `yaml:"category"`
	Prices   []PriceField `yaml:"prices"`
	Specs    string       `yaml:"specs"`
	Region   string       `yaml:"region"`
}

// Price returns the value for a dimension and whether it was present.
func (s ServiceLineItem) Price(dimension string) (string, bool) {
	for _, p := range s.Prices {
		if p.Dimension == dimension {
			return p.Value, true
		}
	}
	return "", false
}

// ProviderCostSheet lists the services tracked for one provider.
type ProviderCostSheet struct {
	Provider             string            `yaml:"provider"`
	Services             []ServiceLineItem `yaml:"services"`
	TotalMonthlyEstimate string            `yaml:"total_monthly_estimate"`
}

// ServicesInCategory returns the services carrying the category label.
func (p ProviderCostSheet) ServicesInCategory(category string) []ServiceLineItem {
	var out []ServiceLineItem
	for _, s := range p.Services {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}
