package models

import (
	"fmt"
	"strings"
	"time"
)

// DueDateLayout is the only accepted due date format (YYYY-MM-DD).
const DueDateLayout = "2006-01-02"

const completedMark = "✔ "

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Priorities lists the priorities in the order the form offers them.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// ParsePriority matches a priority name case-insensitively.
func ParsePriority(s string) (Priority, error) {
	for _, p := range Priorities {
		if strings.EqualFold(strings.TrimSpace(s), string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownPriority, s)
}

func (p Priority) String() string {
	return string(p)
}

type Task struct {
	ID        int64
	Title     string
	Priority  Priority
	DueDate   string
	Completed bool
}

// TaskSummary is one row of the ordered task list.
type TaskSummary struct {
	ID        int64
	Title     string
	Completed bool
}

// Label returns the text shown for the row in a list.
func (s TaskSummary) Label() string {
	if s.Completed {
		return completedMark + s.Title
	}
	return s.Title
}

// Form holds the editable fields of a task.
type Form struct {
	Title     string
	Priority  Priority
	DueDate   string
	Completed bool
}

// NewForm returns a blank form: empty title, medium priority, no due date.
func NewForm() Form {
	return Form{Priority: PriorityMedium}
}

// FormFromTask copies the editable fields of t.
func FormFromTask(t *Task) Form {
	return Form{
		Title:     t.Title,
		Priority:  t.Priority,
		DueDate:   t.DueDate,
		Completed: t.Completed,
	}
}

// Validate trims the title and checks the title and due date.
// It returns the normalized form.
func (f Form) Validate() (Form, error) {
	f.Title = strings.TrimSpace(f.Title)
	f.DueDate = strings.TrimSpace(f.DueDate)

	if f.Title == "" {
		return f, fmt.Errorf("%w: task title is required", ErrValidation)
	}
	if f.Priority == "" {
		f.Priority = PriorityMedium
	}
	p, err := ParsePriority(string(f.Priority))
	if err != nil {
		return f, err
	}
	f.Priority = p
	if err := ValidateDueDate(f.DueDate); err != nil {
		return f, err
	}
	return f, nil
}

// ValidateDueDate accepts an empty string or a real calendar date in DueDateLayout.
func ValidateDueDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse(DueDateLayout, s); err != nil {
		return fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrFormat, s)
	}
	return nil
}
