package progress

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/teachmate/internal/store"
)

// ErrNoFields is returned by UpdateBlockNotes when no field was provided.
var ErrNoFields = errors.New("no updates provided")

// ErrRecordGone is returned when a progress record expected to exist has
// disappeared between selection and mutation.
var ErrRecordGone = errors.New("record not found")

// Records owns all lesson_records and block_records mutations. Nothing
// else in the program writes those tables.
type Records struct {
	store *store.Store
	now   func() time.Time
}

// New creates a Records manager backed by the given store.
func New(s *store.Store) *Records {
	return &Records{store: s, now: time.Now}
}

// OpenLessonRecord finds or creates the lesson record for (studentID,
// lessonID). The insert is a single ON CONFLICT DO NOTHING statement, so
// concurrent opens of the same pair cannot produce duplicate rows.
func (r *Records) OpenLessonRecord(studentID, lessonID int64) (*LessonRecord, SessionKind, error) {
	n, err := r.store.Exec(
		`INSERT INTO lesson_records (student_id, lesson_id) VALUES (?, ?)
		 ON CONFLICT (student_id, lesson_id) DO NOTHING`,
		studentID, lessonID)
	if err != nil {
		return nil, 0, fmt.Errorf("create lesson record: %w", err)
	}

	rec, err := r.LessonRecord(studentID, lessonID)
	if err != nil {
		return nil, 0, err
	}

	kind := SessionResumed
	if n == 1 {
		kind = SessionNew
	}
	return rec, kind, nil
}

// LessonRecord returns the record for (studentID, lessonID), or
// ErrRecordGone if none exists.
func (r *Records) LessonRecord(studentID, lessonID int64) (*LessonRecord, error) {
	var rec LessonRecord
	err := r.store.Get(&rec,
		`SELECT id, student_id, lesson_id, completion_date, score, feedback
		 FROM lesson_records WHERE student_id = ? AND lesson_id = ?`,
		studentID, lessonID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecordGone
	}
	if err != nil {
		return nil, fmt.Errorf("load lesson record: %w", err)
	}
	return &rec, nil
}

// OpenBlockRecord finds or creates the block record for (lessonRecordID,
// blockID), stamping created_at when the row is new.
func (r *Records) OpenBlockRecord(lessonRecordID, blockID int64) (*BlockRecord, SessionKind, error) {
	n, err := r.store.Exec(
		`INSERT INTO block_records (lesson_record_id, block_id, created_at) VALUES (?, ?, ?)
		 ON CONFLICT (lesson_record_id, block_id) DO NOTHING`,
		lessonRecordID, blockID, r.now().UTC())
	if err != nil {
		return nil, 0, fmt.Errorf("create block record: %w", err)
	}

	rec, err := r.BlockRecord(lessonRecordID, blockID)
	if err != nil {
		return nil, 0, err
	}

	kind := SessionResumed
	if n == 1 {
		kind = SessionNew
	}
	return rec, kind, nil
}

// BlockRecord returns the record for (lessonRecordID, blockID), or
// ErrRecordGone if none exists.
func (r *Records) BlockRecord(lessonRecordID, blockID int64) (*BlockRecord, error) {
	var rec BlockRecord
	err := r.store.Get(&rec,
		`SELECT id, lesson_record_id, block_id, student_speech_notes, teacher_notes,
		        student_questions, created_at, modified_at
		 FROM block_records WHERE lesson_record_id = ? AND block_id = ?`,
		lessonRecordID, blockID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecordGone
	}
	if err != nil {
		return nil, fmt.Errorf("load block record: %w", err)
	}
	return &rec, nil
}

// UpdateBlockNotes applies a partial note update to the block record for
// (lessonRecordID, blockID) and stamps modified_at. The record is
// re-fetched first to guard against it having disappeared; ErrNoFields is
// returned when fields is empty, and either way no write happens on error.
func (r *Records) UpdateBlockNotes(lessonRecordID, blockID int64, fields NoteFields) (*BlockRecord, error) {
	if fields.Empty() {
		return nil, ErrNoFields
	}

	if _, err := r.BlockRecord(lessonRecordID, blockID); err != nil {
		return nil, err
	}

	setParts := []string{}
	args := []any{}
	if fields.StudentSpeechNotes != nil {
		setParts = append(setParts, "student_speech_notes = ?")
		args = append(args, *fields.StudentSpeechNotes)
	}
	if fields.TeacherNotes != nil {
		setParts = append(setParts, "teacher_notes = ?")
		args = append(args, *fields.TeacherNotes)
	}
	if fields.StudentQuestions != nil {
		setParts = append(setParts, "student_questions = ?")
		args = append(args, *fields.StudentQuestions)
	}
	setParts = append(setParts, "modified_at = ?")
	args = append(args, r.now().UTC())
	args = append(args, lessonRecordID, blockID)

	query := fmt.Sprintf(
		`UPDATE block_records SET %s WHERE lesson_record_id = ? AND block_id = ?`,
		strings.Join(setParts, ", "))
	if _, err := r.store.Exec(query, args...); err != nil {
		return nil, fmt.Errorf("update block notes: %w", err)
	}

	return r.BlockRecord(lessonRecordID, blockID)
}

// CompleteLesson marks the lesson record complete as of today, optionally
// overwriting score and feedback. Completion is monotonic: re-completing
// refreshes the date and overwrites whatever was passed, there is no undo.
// Score range is the caller's responsibility.
func (r *Records) CompleteLesson(recordID int64, score *int, feedback *string) (*LessonRecord, error) {
	setParts := []string{"completion_date = ?"}
	args := []any{r.now().Format("2006-01-02")}
	if score != nil {
		setParts = append(setParts, "score = ?")
		args = append(args, *score)
	}
	if feedback != nil {
		setParts = append(setParts, "feedback = ?")
		args = append(args, *feedback)
	}
	args = append(args, recordID)

	query := fmt.Sprintf(`UPDATE lesson_records SET %s WHERE id = ?`, strings.Join(setParts, ", "))
	n, err := r.store.Exec(query, args...)
	if err != nil {
		return nil, fmt.Errorf("complete lesson: %w", err)
	}
	if n == 0 {
		return nil, ErrRecordGone
	}

	var rec LessonRecord
	err = r.store.Get(&rec,
		`SELECT id, student_id, lesson_id, completion_date, score, feedback
		 FROM lesson_records WHERE id = ?`, recordID)
	if err != nil {
		return nil, fmt.Errorf("reload lesson record: %w", err)
	}
	return &rec, nil
}

// RecordsForStudent returns all lesson records of a student, oldest id
// first. Used by the progress exporters.
func (r *Records) RecordsForStudent(studentID int64) ([]LessonRecord, error) {
	var out []LessonRecord
	err := r.store.Select(&out,
		`SELECT id, student_id, lesson_id, completion_date, score, feedback
		 FROM lesson_records WHERE student_id = ? ORDER BY id`, studentID)
	if err != nil {
		return nil, fmt.Errorf("list records for student %d: %w", studentID, err)
	}
	return out, nil
}

// BlockRecordsForLessonRecord returns all block records of one lesson
// session in block order.
func (r *Records) BlockRecordsForLessonRecord(lessonRecordID int64) ([]BlockRecord, error) {
	var out []BlockRecord
	err := r.store.Select(&out,
		`SELECT br.id, br.lesson_record_id, br.block_id, br.student_speech_notes,
		        br.teacher_notes, br.student_questions, br.created_at, br.modified_at
		 FROM block_records br
		 JOIN blocks b ON br.block_id = b.id
		 WHERE br.lesson_record_id = ?
		 ORDER BY b.block_number`, lessonRecordID)
	if err != nil {
		return nil, fmt.Errorf("list block records for session %d: %w", lessonRecordID, err)
	}
	return out, nil
}
