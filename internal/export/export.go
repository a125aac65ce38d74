package export

import (
	"fmt"

	"github.com/abhisek/teachmate/internal/catalog"
	"github.com/abhisek/teachmate/internal/store"
)

// ProgressRow is one lesson record joined up through its curriculum
// ancestry, ready for report rendering.
type ProgressRow struct {
	CourseName     string  `db:"course_name"`
	UnitNumber     int     `db:"unit_number"`
	UnitTitle      string  `db:"unit_title"`
	LessonNumber   int     `db:"lesson_number"`
	LessonTitle    string  `db:"lesson_title"`
	CompletionDate *string `db:"completion_date"`
	Score          *int    `db:"score"`
	Feedback       *string `db:"feedback"`
}

// Exporter renders student progress reports.
type Exporter struct {
	store   *store.Store
	catalog *catalog.Catalog
}

// New creates an Exporter backed by the given store.
func New(s *store.Store) *Exporter {
	return &Exporter{store: s, catalog: catalog.New(s)}
}

// ProgressForStudent returns every lesson record for the student, ordered
// by course, unit and lesson number.
func (e *Exporter) ProgressForStudent(studentID int64) (*catalog.Student, []ProgressRow, error) {
	st, err := e.catalog.Student(studentID)
	if err != nil {
		return nil, nil, err
	}

	var rows []ProgressRow
	err = e.store.Select(&rows,
		`SELECT co.name AS course_name,
		        u.unit_number, u.title AS unit_title,
		        l.lesson_number, l.title AS lesson_title,
		        lr.completion_date, lr.score, lr.feedback
		 FROM lesson_records lr
		 JOIN lessons l ON lr.lesson_id = l.id
		 JOIN units u ON l.unit_id = u.id
		 JOIN courses co ON u.course_id = co.id
		 WHERE lr.student_id = ?
		 ORDER BY co.name, u.unit_number, l.lesson_number`, studentID)
	if err != nil {
		return nil, nil, fmt.Errorf("progress for student %d: %w", studentID, err)
	}
	return st, rows, nil
}
