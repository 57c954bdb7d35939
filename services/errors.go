package services

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrConflict          = errors.New("already exists")
	ErrInvalidMenuItem   = errors.New("invalid menu item")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ValidationError is a missing/malformed input field.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validation(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// LimitReachedError carries the tariff context so the UI can render an
// upsell instead of a generic failure.
type LimitReachedError struct {
	LimitType    string `json:"limit_type"` // "tables" | "categories"
	CurrentCount int    `json:"current_count"`
	Limit        int    `json:"limit"`
	Plan         string `json:"plan"`
}

func (e *LimitReachedError) Error() string {
	return fmt.Sprintf("limit_reached: %s %d/%d on plan %s", e.LimitType, e.CurrentCount, e.Limit, e.Plan)
}
