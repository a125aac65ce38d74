package catalog

import (
	"errors"
	"testing"

	"github.com/abhisek/teachmate/internal/store"
)

func seededCatalog(t *testing.T) (*Catalog, *store.Store) {
	t.Helper()
	s, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	stmts := []struct {
		q    string
		args []any
	}{
		{`INSERT INTO courses (id, name, description) VALUES (1, 'General English A2', 'Elementary course')`, nil},
		{`INSERT INTO courses (id, name, description) VALUES (2, 'Business English B1', 'Intermediate course')`, nil},
		{`INSERT INTO units (id, course_id, unit_number, title, description) VALUES (5, 1, 1, 'Daily Routines', 'Present simple in context')`, nil},
		{`INSERT INTO units (id, course_id, unit_number, title, description) VALUES (6, 1, 2, 'Food and Drink', NULL)`, nil},
		{`INSERT INTO lessons (id, unit_id, lesson_number, title, grammar_focus, vocabulary_focus, context)
		  VALUES (12, 5, 1, 'My Morning', 'Present simple', 'Household verbs', 'A typical weekday morning')`, nil},
		{`INSERT INTO lessons (id, unit_id, lesson_number, title, grammar_focus, vocabulary_focus, context)
		  VALUES (13, 5, 2, 'Weekend Plans', 'Going to future', 'Leisure activities', NULL)`, nil},
		{`INSERT INTO blocks (id, lesson_id, block_number, title, activity_type, description, content)
		  VALUES (30, 12, 1, 'Warm-up questions', 'speaking', 'Open questions about mornings', 'What time do you wake up?')`, nil},
		{`INSERT INTO blocks (id, lesson_id, block_number, title, activity_type, description, content)
		  VALUES (31, 12, 2, 'Routine verbs', 'vocabulary', NULL, NULL)`, nil},
		{`INSERT INTO enrolled_students (id, name, email, course_id) VALUES (1, 'Ana Silva', 'ana@example.com', 1)`, nil},
		{`INSERT INTO enrolled_students (id, name, email, course_id) VALUES (2, 'Boris Ivanov', 'boris@example.com', 2)`, nil},
		{`INSERT INTO grammar_rules (lesson_id, rule, example) VALUES (12, 'He/she/it takes -s', 'She wakes up at seven.')`, nil},
		{`INSERT INTO vocabulary (lesson_id, word_or_phrase, definition, example_usage) VALUES (12, 'to get up', 'to leave your bed', 'I get up at six.')`, nil},
	}
	for _, st := range stmts {
		if _, err := s.Exec(st.q, st.args...); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	return New(s), s
}

func TestStudentResolvesWithCourse(t *testing.T) {
	c, _ := seededCatalog(t)

	st, err := c.Student(1)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if st.Name != "Ana Silva" {
		t.Errorf("name = %q, want %q", st.Name, "Ana Silva")
	}
	if st.CourseID != 1 {
		t.Errorf("course id = %d, want 1", st.CourseID)
	}
	if st.CourseName != "General English A2" {
		t.Errorf("course name = %q, want %q", st.CourseName, "General English A2")
	}
}

func TestResolveMissingReturnsNotFound(t *testing.T) {
	c, _ := seededCatalog(t)

	tests := []struct {
		kind string
		call func() error
	}{
		{"student", func() error { _, err := c.Student(999); return err }},
		{"course", func() error { _, err := c.Course(999); return err }},
		{"unit", func() error { _, err := c.Unit(999); return err }},
		{"lesson", func() error { _, err := c.Lesson(999); return err }},
		{"block", func() error { _, err := c.Block(999); return err }},
	}

	for _, tt := range tests {
		err := tt.call()
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Errorf("%s: got %v, want *NotFoundError", tt.kind, err)
			continue
		}
		if nf.Kind != tt.kind {
			t.Errorf("kind = %q, want %q", nf.Kind, tt.kind)
		}
		if nf.ID != 999 {
			t.Errorf("id = %d, want 999", nf.ID)
		}
	}
}

func TestUnitsForCourseOrdered(t *testing.T) {
	c, _ := seededCatalog(t)

	units, err := c.UnitsForCourse(1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(units) != 2 {
		t.Fatalf("got %d units, want 2", len(units))
	}
	if units[0].UnitNumber != 1 || units[1].UnitNumber != 2 {
		t.Errorf("units out of order: %d, %d", units[0].UnitNumber, units[1].UnitNumber)
	}
	if units[1].Description != nil {
		t.Errorf("unit 6 description = %v, want nil", *units[1].Description)
	}
}

func TestLessonsForUnitCarriesStatus(t *testing.T) {
	c, s := seededCatalog(t)

	// Lesson 12 completed by student 1, lesson 13 untouched.
	if _, err := s.Exec(
		`INSERT INTO lesson_records (student_id, lesson_id, completion_date) VALUES (1, 12, '2026-08-30')`); err != nil {
		t.Fatalf("seed record: %v", err)
	}

	lessons, err := c.LessonsForUnit(5, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lessons) != 2 {
		t.Fatalf("got %d lessons, want 2", len(lessons))
	}
	if lessons[0].Status != "Completed" {
		t.Errorf("lesson 12 status = %q, want Completed", lessons[0].Status)
	}
	if lessons[1].Status != "Not Started" {
		t.Errorf("lesson 13 status = %q, want Not Started", lessons[1].Status)
	}

	// A different student sees everything as not started.
	lessons, err = c.LessonsForUnit(5, 2)
	if err != nil {
		t.Fatalf("list for other student: %v", err)
	}
	if lessons[0].Status != "Not Started" {
		t.Errorf("other student sees %q, want Not Started", lessons[0].Status)
	}
}

func TestBlocksForLessonCarriesOpenedStatus(t *testing.T) {
	c, s := seededCatalog(t)

	if _, err := s.Exec(`INSERT INTO lesson_records (id, student_id, lesson_id) VALUES (100, 1, 12)`); err != nil {
		t.Fatalf("seed lesson record: %v", err)
	}
	if _, err := s.Exec(
		`INSERT INTO block_records (lesson_record_id, block_id, created_at) VALUES (100, 30, '2026-08-30 10:00:00')`); err != nil {
		t.Fatalf("seed block record: %v", err)
	}

	blocks, err := c.BlocksForLesson(12, 100)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
	if blocks[0].Status != "Opened" {
		t.Errorf("block 30 status = %q, want Opened", blocks[0].Status)
	}
	if blocks[1].Status != "Not Started" {
		t.Errorf("block 31 status = %q, want Not Started", blocks[1].Status)
	}
}

func TestSearch(t *testing.T) {
	c, _ := seededCatalog(t)

	students, err := c.SearchStudents("ana")
	if err != nil {
		t.Fatalf("search students: %v", err)
	}
	if len(students) != 1 || students[0].Name != "Ana Silva" {
		t.Fatalf("search students = %v, want Ana Silva only", students)
	}

	lessons, err := c.SearchLessons("present")
	if err != nil {
		t.Fatalf("search lessons: %v", err)
	}
	if len(lessons) != 1 || lessons[0].ID != 12 {
		t.Fatalf("search lessons = %v, want lesson 12 only", lessons)
	}

	none, err := c.SearchLessons("subjunctive")
	if err != nil {
		t.Fatalf("search lessons: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("got %d results for no-match term", len(none))
	}
}
