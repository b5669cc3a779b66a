package accordion

import "errors"

// ErrDuplicateSection reports two section specs sharing the same ID.
var ErrDuplicateSection = errors.New("duplicate section id")

// ValidationError represents a construction-time contract violation in a
// section spec, such as a missing title or nil content.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}
