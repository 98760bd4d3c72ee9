// Package session holds the transient state behind the task window: which task
// is selected and what the form currently contains. Every presentation layer
// drives it through Select, New, Save and Delete.
package session

import (
	"TaskManager/internal/models"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// Store is the persistence the session needs. *storage.Database implements it.
type Store interface {
	InsertTask(task *models.Task) (int64, error)
	UpdateTask(task *models.Task) error
	DeleteTask(id int64) error
	ListOrdered() ([]models.TaskSummary, error)
	GetTask(id int64) (*models.Task, error)
}

// MsgConfirmDelete is the message id of the delete prompt.
const MsgConfirmDelete = "confirm_delete"

// Confirmer asks the user a yes/no question, identified by a translation
// message id, and reports the answer through onResult. GUI toolkits may call
// onResult after Confirm returns.
type Confirmer interface {
	Confirm(messageID string, onResult func(bool))
}

// Notifier shows a blocking notice for an error raised by a user action.
type Notifier interface {
	NotifyError(err error)
}

// SelectionMode decides how a list position is turned into a task id.
type SelectionMode string

const (
	// SelectionLive re-reads the ordered list when a row is selected.
	SelectionLive SelectionMode = "live"
	// SelectionSnapshot uses the list as it was at the last Reload.
	SelectionSnapshot SelectionMode = "snapshot"
)

// ParseSelectionMode maps a config value to a mode; empty means live.
func ParseSelectionMode(s string) (SelectionMode, error) {
	switch SelectionMode(s) {
	case "", SelectionLive:
		return SelectionLive, nil
	case SelectionSnapshot:
		return SelectionSnapshot, nil
	}
	return "", fmt.Errorf("unknown selection mode %q", s)
}

type Option func(*Session)

func WithSelectionMode(mode SelectionMode) Option {
	return func(s *Session) { s.mode = mode }
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

type Session struct {
	store    Store
	confirm  Confirmer
	notifier Notifier
	mode     SelectionMode
	logger   *zap.Logger

	selectedID *int64
	form       models.Form
	tasks      []models.TaskSummary
}

// New creates a session in the unselected state and loads the task list.
// The notifier may be nil; store and confirm may not.
func New(store Store, confirm Confirmer, notifier Notifier, opts ...Option) (*Session, error) {
	if store == nil {
		return nil, errors.New("session: nil store")
	}
	if confirm == nil {
		return nil, errors.New("session: nil confirmer")
	}

	s := &Session{
		store:    store,
		confirm:  confirm,
		notifier: notifier,
		mode:     SelectionLive,
		logger:   zap.NewNop(),
		form:     models.NewForm(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Tasks returns a copy of the ordered list as of the last reload.
func (s *Session) Tasks() []models.TaskSummary {
	return slices.Clone(s.tasks)
}

// Form returns the current form snapshot.
func (s *Session) Form() models.Form {
	return s.form
}

// SelectedID returns the selected task id, if any.
func (s *Session) SelectedID() (int64, bool) {
	if s.selectedID == nil {
		return 0, false
	}
	return *s.selectedID, true
}

// Reload re-reads the ordered task list from the store.
func (s *Session) Reload() error {
	tasks, err := s.store.ListOrdered()
	if err != nil {
		return err
	}
	s.tasks = tasks
	return nil
}

// Select targets the task at position in the ordered list and loads it into
// the form. On error the selection and form are left untouched.
func (s *Session) Select(position int) error {
	rows := s.tasks
	if s.mode == SelectionLive {
		fresh, err := s.store.ListOrdered()
		if err != nil {
			return s.fail("select", err)
		}
		rows = fresh
	}

	if position < 0 || position >= len(rows) {
		return s.fail("select", fmt.Errorf("%w: %d of %d", models.ErrPosition, position, len(rows)))
	}
	id := rows[position].ID

	task, err := s.store.GetTask(id)
	if err != nil {
		return s.fail("select", err)
	}

	s.selectedID = &id
	s.form = models.FormFromTask(task)
	s.logger.Debug("task selected", zap.Int("position", position), zap.Int64("id", id))
	return nil
}

// New clears the selection and resets the form to defaults.
func (s *Session) New() {
	s.selectedID = nil
	s.form = models.NewForm()
}

// Save validates form and writes it: an update when a task is selected, an
// insert otherwise. Afterwards the list is reloaded and the session reset.
func (s *Session) Save(form models.Form) error {
	form, err := form.Validate()
	if err != nil {
		return s.fail("save", err)
	}

	task := &models.Task{
		Title:     form.Title,
		Priority:  form.Priority,
		DueDate:   form.DueDate,
		Completed: form.Completed,
	}

	if s.selectedID != nil {
		task.ID = *s.selectedID
		if err := s.store.UpdateTask(task); err != nil {
			return s.fail("save", err)
		}
		s.logger.Info("task updated", zap.Int64("id", task.ID))
	} else {
		id, err := s.store.InsertTask(task)
		if err != nil {
			return s.fail("save", err)
		}
		s.logger.Info("task created", zap.Int64("id", id))
	}

	return s.finish()
}

// Delete asks for confirmation and removes the selected task. It does nothing
// when no task is selected. The returned error covers the confirmed delete
// only when the Confirmer answers synchronously.
func (s *Session) Delete() error {
	if s.selectedID == nil {
		return nil
	}
	id := *s.selectedID

	var result error
	s.confirm.Confirm(MsgConfirmDelete, func(ok bool) {
		if !ok {
			return
		}
		if err := s.store.DeleteTask(id); err != nil {
			result = s.fail("delete", err)
			return
		}
		s.logger.Info("task deleted", zap.Int64("id", id))
		result = s.finish()
	})
	return result
}

func (s *Session) finish() error {
	if err := s.Reload(); err != nil {
		return s.fail("reload", err)
	}
	s.New()
	return nil
}

func (s *Session) fail(action string, err error) error {
	s.logger.Warn("action failed", zap.String("action", action), zap.Error(err))
	if s.notifier != nil {
		s.notifier.NotifyError(err)
	}
	return err
}
