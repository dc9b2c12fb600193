package repository

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/spec-kit/garage-assistant/internal/domain"
)

// KnowledgeFile is the YAML layout of a knowledge store.
type KnowledgeFile struct {
	Tickets        []domain.Ticket            `yaml:"tickets"`
	Activities     []domain.Activity          `yaml:"activities"`
	Company        domain.CompanyProfile      `yaml:"company"`
	Infrastructure []domain.ProviderCostSheet `yaml:"infrastructure"`
}

// NewStore builds the store from path, or from the built-in data when path is empty.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return NewSeededStore(), nil
	}
	return LoadStoreFile(path)
}

// LoadStoreFile reads a YAML knowledge file.
func LoadStoreFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge file: %w", err)
	}
	var kf KnowledgeFile
	if err := yaml.Unmarshal(data, &kf); err != nil {
		return nil, fmt.Errorf("parse knowledge yaml: %w", err)
	}
	if err := kf.validate(); err != nil {
		return nil, fmt.Errorf("knowledge file %s: %w", path, err)
	}
	return &Store{
		Tickets:    NewTicketRepository(kf.Tickets),
		Activities: NewActivityRepository(kf.Activities),
		Costs:      NewCostRepository(kf.Infrastructure),
		Company:    kf.Company,
	}, nil
}

// ExportStore renders a store in the layout LoadStoreFile reads.
func ExportStore(s *Store) ([]byte, error) {
	kf := KnowledgeFile{
		Tickets:        s.Tickets.List(),
		Activities:     s.Activities.List(),
		Company:        s.Company,
		Infrastructure: s.Costs.List(),
	}
	out, err := yaml.Marshal(&kf)
	if err != nil {
		return nil, fmt.Errorf("marshal knowledge yaml: %w", err)
	}
	return out, nil
}

func (kf *KnowledgeFile) validate() error {
	for _, t := range kf.Tickets {
		if t.ID == "" {
			return fmt.Errorf("ticket without ticket_id")
		}
		if !knownTicketStatus(t.Status) {
			return fmt.Errorf("ticket %s: unknown status %q", t.ID, t.Status)
		}
		if _, ok := domain.ParsePriority(string(t.Priority)); !ok {
			return fmt.Errorf("ticket %s: unknown priority %q", t.ID, t.Priority)
		}
	}
	for _, a := range kf.Activities {
		if a.ID == "" {
			return fmt.Errorf("activity without activity_id")
		}
		if !knownActivityStatus(a.Status) {
			return fmt.Errorf("activity %s: unknown status %q", a.ID, a.Status)
		}
	}
	for _, p := range kf.Infrastructure {
		if p.Provider == "" {
			return fmt.Errorf("cost sheet without provider")
		}
	}
	return nil
}

func knownTicketStatus(s domain.TicketStatus) bool {
	for _, known := range domain.TicketStatuses {
		if s == known {
			return true
		}
	}
	return false
}

func knownActivityStatus(s domain.ActivityStatus) bool {
	for _, known := range domain.ActivityStatuses {
		if s == known {
			return true
		}
	}
	return false
}
