package nav

import (
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/teachmate/internal/catalog"
	"github.com/abhisek/teachmate/internal/progress"
	"github.com/abhisek/teachmate/internal/store"
)

func seededNavigator(t *testing.T) *Navigator {
	t.Helper()
	s, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	seed := []string{
		`INSERT INTO courses (id, name, description) VALUES (1, 'General English A2', 'Elementary course')`,
		`INSERT INTO courses (id, name, description) VALUES (2, 'Business English B1', 'Workplace communication')`,
		`INSERT INTO units (id, course_id, unit_number, title) VALUES (5, 1, 1, 'Daily Routines')`,
		`INSERT INTO units (id, course_id, unit_number, title) VALUES (6, 1, 2, 'Food and Drink')`,
		`INSERT INTO lessons (id, unit_id, lesson_number, title, grammar_focus) VALUES (12, 5, 1, 'My Morning', 'Present simple')`,
		`INSERT INTO lessons (id, unit_id, lesson_number, title) VALUES (13, 5, 2, 'Weekend Plans')`,
		`INSERT INTO blocks (id, lesson_id, block_number, title, activity_type) VALUES (30, 12, 1, 'Warm-up questions', 'speaking')`,
		`INSERT INTO blocks (id, lesson_id, block_number, title) VALUES (31, 12, 2, 'Routine verbs')`,
		`INSERT INTO enrolled_students (id, name, email, course_id) VALUES (1, 'Ana Silva', 'ana@example.com', 1)`,
		`INSERT INTO enrolled_students (id, name, email, course_id) VALUES (2, 'Boris Ivanov', 'boris@example.com', 2)`,
	}
	for _, q := range seed {
		if _, err := s.Exec(q); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return New(catalog.New(s), progress.New(s))
}

// drillToBlock walks student 1 → unit 5 → lesson 12 → block 30.
func drillToBlock(t *testing.T, n *Navigator) {
	t.Helper()
	for _, step := range []func() (Selection, error){
		func() (Selection, error) { return n.SelectStudent(1) },
		func() (Selection, error) { return n.SelectUnit(5) },
		func() (Selection, error) { return n.SelectLesson(12) },
		func() (Selection, error) { return n.SelectBlock(30) },
	} {
		if _, err := step(); err != nil {
			t.Fatalf("drill down: %v", err)
		}
	}
}

func TestSelectStudentDerivesCourse(t *testing.T) {
	n := seededNavigator(t)

	sel, err := n.SelectStudent(1)
	if err != nil {
		t.Fatalf("select student: %v", err)
	}
	if sel.State.Student == nil || sel.State.Student.Name != "Ana Silva" {
		t.Errorf("student = %+v", sel.State.Student)
	}
	if sel.State.Course == nil || sel.State.Course.Name != "General English A2" {
		t.Errorf("course = %+v", sel.State.Course)
	}
	if sel.Kind != progress.SessionNew {
		t.Errorf("kind = %v, want SessionNew", sel.Kind)
	}
}

func TestSelectStudentClearsDescendants(t *testing.T) {
	n := seededNavigator(t)
	drillToBlock(t, n)

	if _, err := n.SelectStudent(2); err != nil {
		t.Fatalf("re-select student: %v", err)
	}

	st := n.State()
	if st.Unit != nil || st.Lesson != nil || st.Block != nil {
		t.Errorf("descendants survived student switch: %+v", st)
	}
	if st.LessonRecord != nil || st.BlockRecord != nil {
		t.Errorf("records survived student switch: %+v", st)
	}
	if st.Course == nil || st.Course.Name != "Business English B1" {
		t.Errorf("course not rederived: %+v", st.Course)
	}
}

func TestSelectLessonOpensRecordIdempotently(t *testing.T) {
	n := seededNavigator(t)
	if _, err := n.SelectStudent(1); err != nil {
		t.Fatalf("select student: %v", err)
	}
	if _, err := n.SelectUnit(5); err != nil {
		t.Fatalf("select unit: %v", err)
	}

	first, err := n.SelectLesson(12)
	if err != nil {
		t.Fatalf("first select lesson: %v", err)
	}
	if first.Kind != progress.SessionNew {
		t.Errorf("first kind = %v, want SessionNew", first.Kind)
	}
	if first.State.LessonRecord == nil {
		t.Fatal("no lesson record attached")
	}
	if first.State.LessonRecord.CompletionDate != nil {
		t.Errorf("fresh record already completed: %v", *first.State.LessonRecord.CompletionDate)
	}

	second, err := n.SelectLesson(12)
	if err != nil {
		t.Fatalf("second select lesson: %v", err)
	}
	if second.Kind != progress.SessionResumed {
		t.Errorf("second kind = %v, want SessionResumed", second.Kind)
	}
	if second.State.LessonRecord.ID != first.State.LessonRecord.ID {
		t.Errorf("record id changed: %d then %d",
			first.State.LessonRecord.ID, second.State.LessonRecord.ID)
	}
}

func TestPreconditions(t *testing.T) {
	tests := []struct {
		name    string
		op      func(n *Navigator) error
		missing Level
	}{
		{"unit without student", func(n *Navigator) error {
			_, err := n.SelectUnit(5)
			return err
		}, LevelStudent},
		{"lesson without unit", func(n *Navigator) error {
			_, err := n.SelectLesson(12)
			return err
		}, LevelUnit},
		{"block without lesson", func(n *Navigator) error {
			_, err := n.SelectBlock(30)
			return err
		}, LevelLesson},
		{"notes without block", func(n *Navigator) error {
			text := "x"
			_, err := n.UpdateBlockNotes(progress.NoteFields{TeacherNotes: &text})
			return err
		}, LevelBlock},
		{"complete without lesson", func(n *Navigator) error {
			_, err := n.CompleteLesson(nil, nil)
			return err
		}, LevelLesson},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := seededNavigator(t)
			err := tt.op(n)
			var pe *PreconditionError
			if !errors.As(err, &pe) {
				t.Fatalf("got %v, want PreconditionError", err)
			}
			if pe.Missing != tt.missing {
				t.Errorf("missing = %v, want %v", pe.Missing, tt.missing)
			}
		})
	}
}

func TestSelectMissingEntityLeavesStateUnchanged(t *testing.T) {
	n := seededNavigator(t)
	if _, err := n.SelectStudent(1); err != nil {
		t.Fatalf("select student: %v", err)
	}
	if _, err := n.SelectUnit(5); err != nil {
		t.Fatalf("select unit: %v", err)
	}
	before := n.State()

	_, err := n.SelectUnit(999)
	var nf *catalog.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("got %v, want NotFoundError", err)
	}

	after := n.State()
	if after.Student.ID != before.Student.ID || after.Course.ID != before.Course.ID {
		t.Error("student/course changed on failed selection")
	}
	if after.Unit == nil || after.Unit.ID != 5 {
		t.Errorf("unit = %+v, want prior unit 5", after.Unit)
	}
}

func TestFullTeachingScenario(t *testing.T) {
	n := seededNavigator(t)
	drillToBlock(t, n)

	st := n.State()
	if st.LessonRecord == nil || st.LessonRecord.CompletionDate != nil {
		t.Fatalf("lesson record = %+v, want uncompleted record", st.LessonRecord)
	}
	if st.BlockRecord == nil {
		t.Fatal("no block record attached")
	}
	if st.BlockRecord.StudentSpeechNotes != nil || st.BlockRecord.TeacherNotes != nil {
		t.Errorf("fresh block record has notes: %+v", st.BlockRecord)
	}

	score := 85
	feedback := "Great job"
	rec, err := n.CompleteLesson(&score, &feedback)
	if err != nil {
		t.Fatalf("complete lesson: %v", err)
	}
	if rec.CompletionDate == nil {
		t.Error("completion_date not set")
	}
	if rec.Score == nil || *rec.Score != 85 {
		t.Errorf("score = %v, want 85", rec.Score)
	}
	if n.State().LessonRecord.Score == nil {
		t.Error("state snapshot not refreshed after completion")
	}
}

func TestUpdateBlockNotesRefreshesState(t *testing.T) {
	n := seededNavigator(t)
	drillToBlock(t, n)

	notes := "confuses in/on with times of day"
	rec, err := n.UpdateBlockNotes(progress.NoteFields{StudentSpeechNotes: &notes})
	if err != nil {
		t.Fatalf("update notes: %v", err)
	}
	if rec.StudentSpeechNotes == nil || *rec.StudentSpeechNotes != notes {
		t.Errorf("speech notes = %v", rec.StudentSpeechNotes)
	}
	if n.State().BlockRecord.StudentSpeechNotes == nil {
		t.Error("state snapshot not refreshed after note update")
	}
}

func TestResetToLevel(t *testing.T) {
	n := seededNavigator(t)
	drillToBlock(t, n)

	if err := n.ResetToLevel(LevelUnit); err != nil {
		t.Fatalf("reset to unit: %v", err)
	}
	st := n.State()
	if st.Unit == nil || st.Student == nil {
		t.Errorf("ancestors cleared by reset: %+v", st)
	}
	if st.Lesson != nil || st.Block != nil || st.LessonRecord != nil || st.BlockRecord != nil {
		t.Errorf("descendants survived reset: %+v", st)
	}

	// Lesson is gone now, so it stops being a valid target.
	err := n.ResetToLevel(LevelLesson)
	var pe *PreconditionError
	if !errors.As(err, &pe) {
		t.Fatalf("got %v, want PreconditionError", err)
	}

	if err := n.ResetToLevel(LevelHome); err != nil {
		t.Fatalf("reset to home: %v", err)
	}
	if n.State() != (State{}) {
		t.Errorf("state not empty after home reset: %+v", n.State())
	}
}

func TestResetTargetsFollowState(t *testing.T) {
	n := seededNavigator(t)

	got := n.ResetTargets()
	if len(got) != 1 || got[0] != LevelHome {
		t.Errorf("empty-state targets = %v, want [home]", got)
	}

	drillToBlock(t, n)
	got = n.ResetTargets()
	want := []Level{LevelHome, LevelStudent, LevelUnit, LevelLesson}
	if len(got) != len(want) {
		t.Fatalf("targets = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("targets[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBreadcrumbs(t *testing.T) {
	n := seededNavigator(t)

	crumbs := n.Breadcrumbs()
	if len(crumbs) != 1 || crumbs[0].Label != "Home" {
		t.Errorf("empty-state crumbs = %v", crumbs)
	}

	drillToBlock(t, n)
	crumbs = n.Breadcrumbs()
	wantLabels := []string{
		"Home",
		"Ana Silva (General English A2)",
		"Unit 1: Daily Routines",
		"Lesson 1: My Morning",
		"Block 1: Warm-up questions",
	}
	if len(crumbs) != len(wantLabels) {
		t.Fatalf("got %d crumbs, want %d: %v", len(crumbs), len(wantLabels), crumbs)
	}
	for i, want := range wantLabels {
		if crumbs[i].Label != want {
			t.Errorf("crumb %d = %q, want %q", i, crumbs[i].Label, want)
		}
	}
}

func TestSessionNotes(t *testing.T) {
	n := seededNavigator(t)

	_, err := n.SessionNotes()
	var pe *PreconditionError
	if !errors.As(err, &pe) {
		t.Fatalf("got %v, want PreconditionError", err)
	}

	drillToBlock(t, n)
	speech := "mixed up 'do' and 'make'"
	if _, err := n.UpdateBlockNotes(progress.NoteFields{StudentSpeechNotes: &speech}); err != nil {
		t.Fatalf("update notes on block 30: %v", err)
	}
	if _, err := n.SelectBlock(31); err != nil {
		t.Fatalf("select block 31: %v", err)
	}
	question := "when do I use 'usually' vs 'normally'?"
	if _, err := n.UpdateBlockNotes(progress.NoteFields{StudentQuestions: &question}); err != nil {
		t.Fatalf("update notes on block 31: %v", err)
	}

	notes, err := n.SessionNotes()
	if err != nil {
		t.Fatalf("session notes: %v", err)
	}
	want := []string{speech, question}
	if len(notes) != len(want) {
		t.Fatalf("notes = %v, want %v", notes, want)
	}
	for i := range want {
		if notes[i] != want[i] {
			t.Errorf("notes[%d] = %q, want %q", i, notes[i], want[i])
		}
	}
}

func TestContextSummary(t *testing.T) {
	n := seededNavigator(t)

	if got := n.State().ContextSummary(); got != "No context available." {
		t.Errorf("empty summary = %q", got)
	}

	drillToBlock(t, n)
	got := n.State().ContextSummary()
	for _, want := range []string{
		"Student: Ana Silva",
		"Email: ana@example.com",
		"Course: General English A2",
		"Unit: 1 - Daily Routines",
		"Lesson: 1 - My Morning",
		"Grammar Focus: Present simple",
		"Block: 1 - Warm-up questions",
		"Activity Type: speaking",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
}
