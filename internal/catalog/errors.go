package catalog

import "fmt"

// NotFoundError reports that a requested entity id does not exist.
type NotFoundError struct {
	Kind string // "student", "course", "unit", "lesson", "block"
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s found with ID %d", e.Kind, e.ID)
}
