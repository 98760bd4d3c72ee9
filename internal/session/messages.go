package session

import (
	"TaskManager/internal/models"
	"errors"
)

// MessageID maps an error returned by the session to the translation id of the
// notice shown to the user.
func MessageID(err error) string {
	switch {
	case errors.Is(err, models.ErrFormat):
		return "error_invalid_date"
	case errors.Is(err, models.ErrNotFound):
		return "error_not_found"
	case errors.Is(err, models.ErrPosition):
		return "error_position"
	case errors.Is(err, models.ErrValidation):
		if errors.Is(err, models.ErrUnknownPriority) {
			return "error_unknown_priority"
		}
		return "error_title_required"
	default:
		return "error_storage"
	}
}
