package nav

import (
	"github.com/abhisek/teachmate/internal/catalog"
	"github.com/abhisek/teachmate/internal/progress"
)

// Level identifies one rung of the selection hierarchy.
type Level string

const (
	LevelHome    Level = "home"
	LevelStudent Level = "student"
	LevelUnit    Level = "unit"
	LevelLesson  Level = "lesson"
	LevelBlock   Level = "block"
)

// State is the current selection, deepest level last. It is an immutable
// value: every transition builds a fresh State and the Navigator swaps it
// in wholesale, so a failed transition can never leave the selection
// half-updated.
//
// Each deeper level implies all the ones above it: Unit is only ever set
// when Student and Course are, LessonRecord only when Lesson is, and so
// on. clearFrom is the single place that enforces this shape.
type State struct {
	Student      *catalog.Student
	Course       *catalog.Course
	Unit         *catalog.Unit
	Lesson       *catalog.Lesson
	Block        *catalog.Block
	LessonRecord *progress.LessonRecord
	BlockRecord  *progress.BlockRecord
}

// clearFrom returns a copy of s with every level below the given one
// cleared. Selecting an entity and breadcrumb navigation both go through
// here, so "what counts as a descendant" has exactly one definition.
func (s State) clearFrom(level Level) State {
	switch level {
	case LevelHome:
		return State{}
	case LevelStudent:
		return State{Student: s.Student, Course: s.Course}
	case LevelUnit:
		return State{Student: s.Student, Course: s.Course, Unit: s.Unit}
	case LevelLesson:
		return State{
			Student:      s.Student,
			Course:       s.Course,
			Unit:         s.Unit,
			Lesson:       s.Lesson,
			LessonRecord: s.LessonRecord,
		}
	default:
		return s
	}
}

// Deepest reports the deepest populated level.
func (s State) Deepest() Level {
	switch {
	case s.Block != nil:
		return LevelBlock
	case s.Lesson != nil:
		return LevelLesson
	case s.Unit != nil:
		return LevelUnit
	case s.Student != nil:
		return LevelStudent
	default:
		return LevelHome
	}
}
