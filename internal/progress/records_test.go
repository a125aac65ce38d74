package progress

import (
	"errors"
	"testing"
	"time"

	"github.com/abhisek/teachmate/internal/store"
)

func seededRecords(t *testing.T) *Records {
	t.Helper()
	s, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	seed := []string{
		`INSERT INTO courses (id, name) VALUES (1, 'General English A2')`,
		`INSERT INTO units (id, course_id, unit_number, title) VALUES (5, 1, 1, 'Daily Routines')`,
		`INSERT INTO lessons (id, unit_id, lesson_number, title) VALUES (12, 5, 1, 'My Morning')`,
		`INSERT INTO blocks (id, lesson_id, block_number, title) VALUES (30, 12, 1, 'Warm-up questions')`,
		`INSERT INTO blocks (id, lesson_id, block_number, title) VALUES (31, 12, 2, 'Routine verbs')`,
		`INSERT INTO enrolled_students (id, name, email, course_id) VALUES (1, 'Ana Silva', 'ana@example.com', 1)`,
	}
	for _, q := range seed {
		if _, err := s.Exec(q); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return New(s)
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestOpenLessonRecordCreatesBlank(t *testing.T) {
	r := seededRecords(t)

	rec, kind, err := r.OpenLessonRecord(1, 12)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if kind != SessionNew {
		t.Errorf("kind = %v, want SessionNew", kind)
	}
	if rec.ID == 0 {
		t.Error("expected generated id")
	}
	if rec.CompletionDate != nil || rec.Score != nil || rec.Feedback != nil {
		t.Errorf("new record not blank: %+v", rec)
	}
}

func TestOpenLessonRecordIdempotent(t *testing.T) {
	r := seededRecords(t)

	first, kind, err := r.OpenLessonRecord(1, 12)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if kind != SessionNew {
		t.Fatalf("first open kind = %v, want SessionNew", kind)
	}

	second, kind, err := r.OpenLessonRecord(1, 12)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	if kind != SessionResumed {
		t.Errorf("second open kind = %v, want SessionResumed", kind)
	}
	if second.ID != first.ID {
		t.Errorf("record id changed: %d then %d", first.ID, second.ID)
	}

	all, err := r.RecordsForStudent(1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("got %d records for (1, 12), want exactly 1", len(all))
	}
}

func TestOpenBlockRecordStampsCreatedAt(t *testing.T) {
	r := seededRecords(t)
	fixed := time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC)
	r.now = func() time.Time { return fixed }

	lr, _, err := r.OpenLessonRecord(1, 12)
	if err != nil {
		t.Fatalf("open lesson: %v", err)
	}

	br, kind, err := r.OpenBlockRecord(lr.ID, 30)
	if err != nil {
		t.Fatalf("open block: %v", err)
	}
	if kind != SessionNew {
		t.Errorf("kind = %v, want SessionNew", kind)
	}
	if !br.CreatedAt.Equal(fixed) {
		t.Errorf("created_at = %v, want %v", br.CreatedAt, fixed)
	}
	if br.StudentSpeechNotes != nil || br.TeacherNotes != nil || br.StudentQuestions != nil {
		t.Errorf("new block record not blank: %+v", br)
	}
	if br.ModifiedAt != nil {
		t.Errorf("modified_at = %v, want nil", br.ModifiedAt)
	}

	// Reopening keeps the original timestamp.
	r.now = func() time.Time { return fixed.Add(time.Hour) }
	again, kind, err := r.OpenBlockRecord(lr.ID, 30)
	if err != nil {
		t.Fatalf("reopen block: %v", err)
	}
	if kind != SessionResumed {
		t.Errorf("reopen kind = %v, want SessionResumed", kind)
	}
	if !again.CreatedAt.Equal(fixed) {
		t.Errorf("created_at changed on reopen: %v", again.CreatedAt)
	}
}

func TestUpdateBlockNotesPartial(t *testing.T) {
	r := seededRecords(t)

	lr, _, err := r.OpenLessonRecord(1, 12)
	if err != nil {
		t.Fatalf("open lesson: %v", err)
	}
	if _, _, err := r.OpenBlockRecord(lr.ID, 30); err != nil {
		t.Fatalf("open block: %v", err)
	}

	if _, err := r.UpdateBlockNotes(lr.ID, 30, NoteFields{
		StudentSpeechNotes: strPtr("mixes up third person -s"),
	}); err != nil {
		t.Fatalf("first update: %v", err)
	}

	rec, err := r.UpdateBlockNotes(lr.ID, 30, NoteFields{
		TeacherNotes: strPtr("drill wake/get up next time"),
	})
	if err != nil {
		t.Fatalf("second update: %v", err)
	}

	if rec.StudentSpeechNotes == nil || *rec.StudentSpeechNotes != "mixes up third person -s" {
		t.Errorf("speech notes clobbered: %v", rec.StudentSpeechNotes)
	}
	if rec.TeacherNotes == nil || *rec.TeacherNotes != "drill wake/get up next time" {
		t.Errorf("teacher notes = %v", rec.TeacherNotes)
	}
	if rec.StudentQuestions != nil {
		t.Errorf("questions = %v, want nil", rec.StudentQuestions)
	}
	if rec.ModifiedAt == nil {
		t.Error("expected modified_at to be stamped")
	}
}

func TestUpdateBlockNotesNoFields(t *testing.T) {
	r := seededRecords(t)

	lr, _, err := r.OpenLessonRecord(1, 12)
	if err != nil {
		t.Fatalf("open lesson: %v", err)
	}
	if _, _, err := r.OpenBlockRecord(lr.ID, 30); err != nil {
		t.Fatalf("open block: %v", err)
	}

	_, err = r.UpdateBlockNotes(lr.ID, 30, NoteFields{})
	if !errors.Is(err, ErrNoFields) {
		t.Fatalf("got %v, want ErrNoFields", err)
	}
}

func TestUpdateBlockNotesMissingRecord(t *testing.T) {
	r := seededRecords(t)

	_, err := r.UpdateBlockNotes(999, 30, NoteFields{TeacherNotes: strPtr("x")})
	if !errors.Is(err, ErrRecordGone) {
		t.Fatalf("got %v, want ErrRecordGone", err)
	}
}

func TestCompleteLesson(t *testing.T) {
	r := seededRecords(t)
	fixed := time.Date(2026, 8, 31, 17, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return fixed }

	lr, _, err := r.OpenLessonRecord(1, 12)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	rec, err := r.CompleteLesson(lr.ID, intPtr(85), strPtr("Great job"))
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if rec.CompletionDate == nil || *rec.CompletionDate != "2026-08-31" {
		t.Errorf("completion_date = %v, want 2026-08-31", rec.CompletionDate)
	}
	if rec.Score == nil || *rec.Score != 85 {
		t.Errorf("score = %v, want 85", rec.Score)
	}
	if rec.Feedback == nil || *rec.Feedback != "Great job" {
		t.Errorf("feedback = %v", rec.Feedback)
	}

	// Re-completing without score keeps the previous score but refreshes
	// the date. There is no undo.
	r.now = func() time.Time { return fixed.AddDate(0, 0, 3) }
	rec, err = r.CompleteLesson(lr.ID, nil, nil)
	if err != nil {
		t.Fatalf("re-complete: %v", err)
	}
	if rec.CompletionDate == nil || *rec.CompletionDate != "2026-09-03" {
		t.Errorf("refreshed completion_date = %v, want 2026-09-03", rec.CompletionDate)
	}
	if rec.Score == nil || *rec.Score != 85 {
		t.Errorf("score after re-complete = %v, want 85", rec.Score)
	}
}

func TestCompleteLessonMissingRecord(t *testing.T) {
	r := seededRecords(t)

	_, err := r.CompleteLesson(999, nil, nil)
	if !errors.Is(err, ErrRecordGone) {
		t.Fatalf("got %v, want ErrRecordGone", err)
	}
}
