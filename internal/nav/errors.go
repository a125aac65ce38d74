package nav

import "fmt"

// PreconditionError is returned when an operation needs an ancestor
// selection that is not there, e.g. selecting a block before a lesson.
type PreconditionError struct {
	Missing Level
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("no %s selected", e.Missing)
}
