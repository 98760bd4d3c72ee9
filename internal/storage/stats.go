package storage

import (
	"TaskManager/internal/models"
	"fmt"
	"time"
)

type TaskStats struct {
	TotalTasks     int `db:"total"`
	CompletedTasks int `db:"completed"`
	OpenTasks      int `db:"open"`
	HighOpen       int `db:"high_open"`
	MediumOpen     int `db:"medium_open"`
	LowOpen        int `db:"low_open"`
	OverdueTasks   int `db:"overdue"`
}

// CompletionRate is the completed share in percent, 0 for an empty list.
func (s *TaskStats) CompletionRate() float64 {
	if s.TotalTasks == 0 {
		return 0
	}
	return float64(s.CompletedTasks) / float64(s.TotalTasks) * 100
}

// GetTaskStats counts tasks. Open tasks with a due date before today are overdue.
func (d *Database) GetTaskStats(today time.Time) (*TaskStats, error) {
	stats := &TaskStats{}

	query := `
        SELECT
            COUNT(*) AS total,
            COALESCE(SUM(CASE WHEN completed = 1 THEN 1 ELSE 0 END), 0) AS completed,
            COALESCE(SUM(CASE WHEN COALESCE(completed, 0) = 0 THEN 1 ELSE 0 END), 0) AS open,
            COALESCE(SUM(CASE WHEN COALESCE(completed, 0) = 0 AND priority = ? THEN 1 ELSE 0 END), 0) AS high_open,
            COALESCE(SUM(CASE WHEN COALESCE(completed, 0) = 0 AND priority = ? THEN 1 ELSE 0 END), 0) AS medium_open,
            COALESCE(SUM(CASE WHEN COALESCE(completed, 0) = 0 AND priority = ? THEN 1 ELSE 0 END), 0) AS low_open,
            COALESCE(SUM(CASE WHEN COALESCE(completed, 0) = 0 AND due_date <> '' AND due_date < ? THEN 1 ELSE 0 END), 0) AS overdue
        FROM tasks
    `

	err := d.db.Get(stats, query,
		string(models.PriorityHigh),
		string(models.PriorityMedium),
		string(models.PriorityLow),
		today.Format(models.DueDateLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("task stats: %w", err)
	}
	return stats, nil
}
