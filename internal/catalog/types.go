package catalog

// Immutable curriculum snapshots. These are read straight out of the store
// and never mutated by this program; progress state lives in lesson_records
// and block_records (see internal/progress).

// Course is a top-level curriculum container.
type Course struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
}

// Unit belongs to exactly one course.
type Unit struct {
	ID          int64   `db:"id"`
	CourseID    int64   `db:"course_id"`
	UnitNumber  int     `db:"unit_number"`
	Title       string  `db:"title"`
	Description *string `db:"description"`
}

// Lesson belongs to exactly one unit.
type Lesson struct {
	ID              int64   `db:"id"`
	UnitID          int64   `db:"unit_id"`
	LessonNumber    int     `db:"lesson_number"`
	Title           string  `db:"title"`
	GrammarFocus    *string `db:"grammar_focus"`
	VocabularyFocus *string `db:"vocabulary_focus"`
	Context         *string `db:"context"`
}

// Block is one activity inside a lesson.
type Block struct {
	ID           int64   `db:"id"`
	LessonID     int64   `db:"lesson_id"`
	BlockNumber  int     `db:"block_number"`
	Title        string  `db:"title"`
	ActivityType *string `db:"activity_type"`
	Description  *string `db:"description"`
	Content      *string `db:"content"`
}

// Student is an enrolled student. CourseName is joined in at resolve time
// so selecting a student also yields the course context.
type Student struct {
	ID         int64  `db:"id"`
	Name       string `db:"name"`
	Email      string `db:"email"`
	CourseID   int64  `db:"course_id"`
	CourseName string `db:"course_name"`
}

// GrammarRule is supplementary lesson material.
type GrammarRule struct {
	ID       int64   `db:"id"`
	LessonID int64   `db:"lesson_id"`
	Rule     string  `db:"rule"`
	Example  *string `db:"example"`
}

// VocabularyEntry is one word or phrase taught in a lesson.
type VocabularyEntry struct {
	ID           int64   `db:"id"`
	LessonID     int64   `db:"lesson_id"`
	WordOrPhrase string  `db:"word_or_phrase"`
	Definition   *string `db:"definition"`
	ExampleUsage *string `db:"example_usage"`
}

// Resource is an external material linked to a lesson.
type Resource struct {
	ID           int64   `db:"id"`
	LessonID     int64   `db:"lesson_id"`
	ResourceType string  `db:"resource_type"`
	Description  *string `db:"description"`
	URLOrPath    string  `db:"url_or_path"`
}

// LessonListing is a lesson row decorated with the given student's
// completion status for list views.
type LessonListing struct {
	Lesson
	Status string `db:"status"` // "Completed" or "Not Started"
}

// BlockListing is a block row decorated with whether the block has been
// opened in the active lesson session.
type BlockListing struct {
	Block
	Status string `db:"status"` // "Opened" or "Not Started"
}
