package Workflow

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"Eventy/Models"
)

var (
	// ErrForbidden means the acting role is not the one required for the
	// attempted transition.
	ErrForbidden = errors.New("action not allowed for this role")
	// ErrInvalidRole means a role outside the closed set reached the engine.
	ErrInvalidRole = errors.New("invalid role")
	// ErrConflict is surfaced when a version-checked save detects that the
	// record changed underneath the actor.
	ErrConflict = Models.ErrConflict
)

// ValidationError carries per-field messages for a rejected input. The engine
// returns it without touching the record, so the caller can correct and retry.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, "; ")
}
