package models

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation error")
	ErrFormat     = errors.New("format error")
	ErrNotFound   = errors.New("task not found")
	ErrPosition   = errors.New("list position out of range")

	ErrUnknownPriority = fmt.Errorf("unknown priority: %w", ErrValidation)
)
