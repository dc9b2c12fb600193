package domain

// ActivityStatus is a kanban column.
type ActivityStatus string

const (
	ActivityStatusToDo       ActivityStatus = "To Do"
	ActivityStatusInProgress ActivityStatus = "In Progress"
	ActivityStatusCompleted  ActivityStatus = "Completed"
)

// ActivityStatuses lists the kanban columns left to right.
var ActivityStatuses = []ActivityStatus{ActivityStatusToDo, ActivityStatusInProgress, ActivityStatusCompleted}

// Activity is a unit of tracked employee work.
type Activity struct {
	ID        string         `yaml:"activity_id"`
	Employee  string         `yaml:"employee"`
	Task      string         `yaml:"task"`
	Status    ActivityStatus `yaml:"status"`
	Priority  Priority       `yaml:"priority"`
	StartDate string         `yaml:"start_date"`
	DueDate   string         `yaml:"due_date"`
	Progress  string         `yaml:"progress"`
}
