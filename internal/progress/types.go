package progress

import "time"

// LessonRecord tracks one student's interaction with one lesson.
// Unique per (student_id, lesson_id); created lazily the first time the
// lesson is opened for that student and never deleted by normal flow.
type LessonRecord struct {
	ID             int64   `db:"id"`
	StudentID      int64   `db:"student_id"`
	LessonID       int64   `db:"lesson_id"`
	CompletionDate *string `db:"completion_date"` // YYYY-MM-DD, nil until completed
	Score          *int    `db:"score"`
	Feedback       *string `db:"feedback"`
}

// Completed reports whether the lesson has been marked complete.
func (r *LessonRecord) Completed() bool {
	return r.CompletionDate != nil
}

// BlockRecord tracks notes for one block inside a lesson session.
// Unique per (lesson_record_id, block_id).
type BlockRecord struct {
	ID                 int64      `db:"id"`
	LessonRecordID     int64      `db:"lesson_record_id"`
	BlockID            int64      `db:"block_id"`
	StudentSpeechNotes *string    `db:"student_speech_notes"`
	TeacherNotes       *string    `db:"teacher_notes"`
	StudentQuestions   *string    `db:"student_questions"`
	CreatedAt          time.Time  `db:"created_at"`
	ModifiedAt         *time.Time `db:"modified_at"`
}

// SessionKind distinguishes a freshly created progress record from one
// that already existed when the lesson or block was opened.
type SessionKind int

const (
	// SessionNew means the progress record was created by this open.
	SessionNew SessionKind = iota
	// SessionResumed means the record pre-existed ("previously started").
	SessionResumed
)

func (k SessionKind) String() string {
	if k == SessionNew {
		return "new session"
	}
	return "previously started"
}

// NoteFields carries a partial block-note update. Nil fields are left
// untouched.
type NoteFields struct {
	StudentSpeechNotes *string
	TeacherNotes       *string
	StudentQuestions   *string
}

// Empty reports whether no field is set.
func (f NoteFields) Empty() bool {
	return f.StudentSpeechNotes == nil && f.TeacherNotes == nil && f.StudentQuestions == nil
}
