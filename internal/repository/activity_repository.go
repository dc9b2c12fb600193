package repository

import (
	"strings"

	"github.com/spec-kit/garage-assistant/internal/domain"
)

// ActivityRepository exposes read-only kanban lookups.
type ActivityRepository interface {
	List() []domain.Activity
	ListByStatus(status domain.ActivityStatus) []domain.Activity
	ListByEmployee(name string) []domain.Activity
	FindByTask(term string) (domain.Activity, bool)
}

type activityRepository struct {
	activities []domain.Activity
}

// NewActivityRepository keeps the first activity seen for each id.
func NewActivityRepository(activities []domain.Activity) ActivityRepository {
	seen := make(map[string]bool, len(activities))
	r := &activityRepository{}
	for _, a := range activities {
		if seen[a.ID] {
			continue
		}
		seen[a.ID] = true
		r.activities = append(r.activities, a)
	}
	return r
}

func (r *activityRepository) List() []domain.Activity {
	out := make([]domain.Activity, len(r.activities))
	copy(out, r.activities)
	return out
}

func (r *activityRepository) ListByStatus(status domain.ActivityStatus) []domain.Activity {
	var out []domain.Activity
	for _, a := range r.activities {
		if a.Status == status {
			out = append(out, a)
		}
	}
	return out
}

// ListByEmployee matches name as a case-insensitive substring of the employee.
func (r *activityRepository) ListByEmployee(name string) []domain.Activity {
	needle := strings.ToLower(strings.TrimSpace(name))
	var out []domain.Activity
	for _, a := range r.activities {
		if strings.Contains(strings.ToLower(a.Employee), needle) {
			out = append(out, a)
		}
	}
	return out
}

// FindByTask returns the first activity whose task contains term. When no task
// contains it verbatim, the first task containing every word of term is used.
func (r *activityRepository) FindByTask(term string) (domain.Activity, bool) {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return domain.Activity{}, false
	}
	for _, a := range r.activities {
		if strings.Contains(strings.ToLower(a.Task), needle) {
			return a, true
		}
	}
	words := strings.Fields(needle)
	for _, a := range r.activities {
		task := strings.ToLower(a.Task)
		all := true
		for _, w := range words {
			if !strings.Contains(task, w) {
				all = false
				break
			}
		}
		if all {
			return a, true
		}
	}
	return domain.Activity{}, false
}
