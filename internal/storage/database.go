package storage

import (
	"TaskManager/internal/models"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

const (
	createTasksTable = `
        CREATE TABLE IF NOT EXISTS tasks (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            title TEXT NOT NULL,
            priority TEXT,
            due_date TEXT,
            completed INTEGER
        )`

	listOrderedQuery = `
        SELECT id, title, COALESCE(completed, 0) AS completed
        FROM tasks
        ORDER BY completed, id DESC`

	getTaskQuery = `
        SELECT id, title, priority, due_date, COALESCE(completed, 0) AS completed
        FROM tasks
        WHERE id = ?`
)

type Database struct {
	db     *sqlx.DB
	logger *zap.Logger
}

type taskRow struct {
	ID        int64          `db:"id"`
	Title     string         `db:"title"`
	Priority  sql.NullString `db:"priority"`
	DueDate   sql.NullString `db:"due_date"`
	Completed int            `db:"completed"`
}

type summaryRow struct {
	ID        int64  `db:"id"`
	Title     string `db:"title"`
	Completed int    `db:"completed"`
}

// NewDatabase opens (creating if needed) the SQLite file at path and makes sure
// the tasks table exists. A leading ~ is expanded to the home directory.
func NewDatabase(path string, logger *zap.Logger) (*Database, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, path[1:])
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	// One UI thread, one connection.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	database := &Database{db: db, logger: logger}
	if err := database.Init(); err != nil {
		db.Close()
		return nil, err
	}
	logger.Info("database ready", zap.String("path", path))
	return database, nil
}

// Init creates the tasks table if it is missing. Safe to call repeatedly.
func (d *Database) Init() error {
	if _, err := d.db.Exec(createTasksTable); err != nil {
		return fmt.Errorf("create tasks table: %w", err)
	}
	return nil
}

func (d *Database) Close() error {
	return d.db.Close()
}

// InsertTask stores a new task and returns the id assigned to it.
func (d *Database) InsertTask(task *models.Task) (int64, error) {
	if strings.TrimSpace(task.Title) == "" {
		return 0, fmt.Errorf("%w: task title is required", models.ErrValidation)
	}

	result, err := d.db.Exec(`
        INSERT INTO tasks (title, priority, due_date, completed)
        VALUES (?, ?, ?, ?)
    `, task.Title, string(task.Priority), task.DueDate, boolToInt(task.Completed))
	if err != nil {
		return 0, fmt.Errorf("insert task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	d.logger.Debug("task inserted", zap.Int64("id", id), zap.String("title", task.Title))
	return id, nil
}

// UpdateTask overwrites the row with task.ID. A missing row is not an error.
func (d *Database) UpdateTask(task *models.Task) error {
	result, err := d.db.Exec(`
        UPDATE tasks
        SET title = ?, priority = ?, due_date = ?, completed = ?
        WHERE id = ?
    `, task.Title, string(task.Priority), task.DueDate, boolToInt(task.Completed), task.ID)
	if err != nil {
		return fmt.Errorf("update task %d: %w", task.ID, err)
	}

	n, _ := result.RowsAffected()
	d.logger.Debug("task updated", zap.Int64("id", task.ID), zap.Int64("rows", n))
	return nil
}

// DeleteTask removes the row with id. A missing row is not an error.
func (d *Database) DeleteTask(id int64) error {
	result, err := d.db.Exec("DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}

	n, _ := result.RowsAffected()
	d.logger.Debug("task deleted", zap.Int64("id", id), zap.Int64("rows", n))
	return nil
}

// ListOrdered returns every task, incomplete ones first, newest first within
// each group. List positions shown to the user index into this order.
func (d *Database) ListOrdered() ([]models.TaskSummary, error) {
	var rows []summaryRow
	if err := d.db.Select(&rows, listOrderedQuery); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	tasks := make([]models.TaskSummary, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, models.TaskSummary{
			ID:        row.ID,
			Title:     row.Title,
			Completed: row.Completed != 0,
		})
	}
	return tasks, nil
}

func (d *Database) GetTask(id int64) (*models.Task, error) {
	var row taskRow
	if err := d.db.Get(&row, getTaskQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", models.ErrNotFound, id)
		}
		return nil, fmt.Errorf("get task %d: %w", id, err)
	}
	return mapTaskRow(row), nil
}

func mapTaskRow(row taskRow) *models.Task {
	task := &models.Task{
		ID:        row.ID,
		Title:     row.Title,
		Priority:  models.PriorityMedium,
		Completed: row.Completed != 0,
	}
	if row.Priority.Valid && row.Priority.String != "" {
		task.Priority = models.Priority(row.Priority.String)
	}
	if row.DueDate.Valid {
		task.DueDate = row.DueDate.String
	}
	return task
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
