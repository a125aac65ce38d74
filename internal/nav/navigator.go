package nav

import (
	"github.com/abhisek/teachmate/internal/catalog"
	"github.com/abhisek/teachmate/internal/progress"
)

// Navigator is the selection state machine for a teaching session. It is
// the only component that mutates progress rows while driving the
// student → unit → lesson → block walk: selecting a lesson or block
// lazily opens its progress record.
//
// One Navigator serves one operator; it is not safe for concurrent use.
type Navigator struct {
	catalog *catalog.Catalog
	records *progress.Records
	state   State
}

// Selection is the result of a successful select* call. Kind reports
// whether a lesson/block selection opened a fresh progress record or
// resumed an existing one; for student and unit selections it is always
// SessionNew.
type Selection struct {
	Kind  progress.SessionKind
	State State
}

// New creates a Navigator with an empty selection.
func New(c *catalog.Catalog, r *progress.Records) *Navigator {
	return &Navigator{catalog: c, records: r}
}

// State returns the current selection snapshot.
func (n *Navigator) State() State { return n.state }

// SelectStudent makes the given student current and derives the current
// course from their enrollment. Any deeper selection is cleared, even
// when re-selecting the same student.
func (n *Navigator) SelectStudent(id int64) (Selection, error) {
	st, err := n.catalog.Student(id)
	if err != nil {
		return Selection{}, err
	}
	co, err := n.catalog.Course(st.CourseID)
	if err != nil {
		return Selection{}, err
	}

	next := n.state.clearFrom(LevelHome)
	next.Student = st
	next.Course = co
	n.state = next
	return Selection{Kind: progress.SessionNew, State: next}, nil
}

// SelectUnit makes the given unit current. Requires a selected student.
func (n *Navigator) SelectUnit(id int64) (Selection, error) {
	if n.state.Student == nil {
		return Selection{}, &PreconditionError{Missing: LevelStudent}
	}
	u, err := n.catalog.Unit(id)
	if err != nil {
		return Selection{}, err
	}

	next := n.state.clearFrom(LevelStudent)
	next.Unit = u
	n.state = next
	return Selection{Kind: progress.SessionNew, State: next}, nil
}

// SelectLesson makes the given lesson current and opens its progress
// record for the current student, creating the row on first visit.
// Requires a selected unit.
func (n *Navigator) SelectLesson(id int64) (Selection, error) {
	if n.state.Unit == nil {
		return Selection{}, &PreconditionError{Missing: LevelUnit}
	}
	l, err := n.catalog.Lesson(id)
	if err != nil {
		return Selection{}, err
	}
	rec, kind, err := n.records.OpenLessonRecord(n.state.Student.ID, l.ID)
	if err != nil {
		return Selection{}, err
	}

	next := n.state.clearFrom(LevelUnit)
	next.Lesson = l
	next.LessonRecord = rec
	n.state = next
	return Selection{Kind: kind, State: next}, nil
}

// SelectBlock makes the given block current and opens its progress
// record under the current lesson record. Requires a selected lesson.
func (n *Navigator) SelectBlock(id int64) (Selection, error) {
	if n.state.LessonRecord == nil {
		return Selection{}, &PreconditionError{Missing: LevelLesson}
	}
	b, err := n.catalog.Block(id)
	if err != nil {
		return Selection{}, err
	}
	rec, kind, err := n.records.OpenBlockRecord(n.state.LessonRecord.ID, b.ID)
	if err != nil {
		return Selection{}, err
	}

	next := n.state.clearFrom(LevelLesson)
	next.Block = b
	next.BlockRecord = rec
	n.state = next
	return Selection{Kind: kind, State: next}, nil
}

// UpdateBlockNotes applies a partial note update to the current block's
// record. Requires a selected block.
func (n *Navigator) UpdateBlockNotes(fields progress.NoteFields) (*progress.BlockRecord, error) {
	if n.state.BlockRecord == nil {
		return nil, &PreconditionError{Missing: LevelBlock}
	}
	rec, err := n.records.UpdateBlockNotes(n.state.LessonRecord.ID, n.state.Block.ID, fields)
	if err != nil {
		return nil, err
	}
	next := n.state
	next.BlockRecord = rec
	n.state = next
	return rec, nil
}

// CompleteLesson marks the current lesson's record completed as of
// today, optionally overwriting score and feedback. Score range is the
// caller's concern. Requires a selected lesson.
func (n *Navigator) CompleteLesson(score *int, feedback *string) (*progress.LessonRecord, error) {
	if n.state.LessonRecord == nil {
		return nil, &PreconditionError{Missing: LevelLesson}
	}
	rec, err := n.records.CompleteLesson(n.state.LessonRecord.ID, score, feedback)
	if err != nil {
		return nil, err
	}
	next := n.state
	next.LessonRecord = rec
	n.state = next
	return rec, nil
}

// SessionNotes gathers the non-empty notes written across the current
// lesson session's blocks, in block order. Requires a selected lesson.
func (n *Navigator) SessionNotes() ([]string, error) {
	if n.state.LessonRecord == nil {
		return nil, &PreconditionError{Missing: LevelLesson}
	}
	recs, err := n.records.BlockRecordsForLessonRecord(n.state.LessonRecord.ID)
	if err != nil {
		return nil, err
	}

	var notes []string
	for _, rec := range recs {
		for _, p := range []*string{rec.StudentSpeechNotes, rec.TeacherNotes, rec.StudentQuestions} {
			if p != nil && *p != "" {
				notes = append(notes, *p)
			}
		}
	}
	return notes, nil
}

// ResetToLevel jumps the selection back up to the given level, clearing
// everything below it. The target must be Home or a currently populated
// level.
func (n *Navigator) ResetToLevel(level Level) error {
	if !n.canResetTo(level) {
		return &PreconditionError{Missing: level}
	}
	n.state = n.state.clearFrom(level)
	return nil
}

// ResetTargets lists the levels ResetToLevel currently accepts, top
// down. Home is always navigable.
func (n *Navigator) ResetTargets() []Level {
	targets := []Level{LevelHome}
	if n.state.Student != nil {
		targets = append(targets, LevelStudent)
	}
	if n.state.Unit != nil {
		targets = append(targets, LevelUnit)
	}
	if n.state.Lesson != nil {
		targets = append(targets, LevelLesson)
	}
	return targets
}

func (n *Navigator) canResetTo(level Level) bool {
	switch level {
	case LevelHome:
		return true
	case LevelStudent:
		return n.state.Student != nil
	case LevelUnit:
		return n.state.Unit != nil
	case LevelLesson:
		return n.state.Lesson != nil
	default:
		return false
	}
}
