package catalog

import "fmt"

// Students returns all enrolled students ordered by name.
func (c *Catalog) Students() ([]Student, error) {
	var out []Student
	err := c.store.Select(&out,
		`SELECT es.id, es.name, es.email, es.course_id, co.name AS course_name
		 FROM enrolled_students es
		 JOIN courses co ON es.course_id = co.id
		 ORDER BY es.name`)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return out, nil
}

// UnitsForCourse returns the units of a course in curriculum order.
func (c *Catalog) UnitsForCourse(courseID int64) ([]Unit, error) {
	var out []Unit
	err := c.store.Select(&out,
		`SELECT id, course_id, unit_number, title, description
		 FROM units WHERE course_id = ? ORDER BY unit_number`, courseID)
	if err != nil {
		return nil, fmt.Errorf("list units for course %d: %w", courseID, err)
	}
	return out, nil
}

// LessonsForUnit returns the lessons of a unit with the given student's
// completion status per lesson.
func (c *Catalog) LessonsForUnit(unitID, studentID int64) ([]LessonListing, error) {
	var out []LessonListing
	err := c.store.Select(&out,
		`SELECT l.id, l.unit_id, l.lesson_number, l.title,
		        l.grammar_focus, l.vocabulary_focus, l.context,
		        CASE WHEN lr.completion_date IS NOT NULL THEN 'Completed' ELSE 'Not Started' END AS status
		 FROM lessons l
		 LEFT JOIN lesson_records lr ON l.id = lr.lesson_id AND lr.student_id = ?
		 WHERE l.unit_id = ?
		 ORDER BY l.lesson_number`, studentID, unitID)
	if err != nil {
		return nil, fmt.Errorf("list lessons for unit %d: %w", unitID, err)
	}
	return out, nil
}

// BlocksForLesson returns the blocks of a lesson with their opened status
// inside the given lesson session.
func (c *Catalog) BlocksForLesson(lessonID, lessonRecordID int64) ([]BlockListing, error) {
	var out []BlockListing
	err := c.store.Select(&out,
		`SELECT b.id, b.lesson_id, b.block_number, b.title,
		        b.activity_type, b.description, b.content,
		        CASE WHEN br.id IS NOT NULL THEN 'Opened' ELSE 'Not Started' END AS status
		 FROM blocks b
		 LEFT JOIN block_records br ON b.id = br.block_id AND br.lesson_record_id = ?
		 WHERE b.lesson_id = ?
		 ORDER BY b.block_number`, lessonRecordID, lessonID)
	if err != nil {
		return nil, fmt.Errorf("list blocks for lesson %d: %w", lessonID, err)
	}
	return out, nil
}

// GrammarRulesForLesson returns the grammar rules attached to a lesson.
func (c *Catalog) GrammarRulesForLesson(lessonID int64) ([]GrammarRule, error) {
	var out []GrammarRule
	err := c.store.Select(&out,
		`SELECT id, lesson_id, rule, example FROM grammar_rules WHERE lesson_id = ?`, lessonID)
	if err != nil {
		return nil, fmt.Errorf("list grammar rules for lesson %d: %w", lessonID, err)
	}
	return out, nil
}

// VocabularyForLesson returns the vocabulary list attached to a lesson.
func (c *Catalog) VocabularyForLesson(lessonID int64) ([]VocabularyEntry, error) {
	var out []VocabularyEntry
	err := c.store.Select(&out,
		`SELECT id, lesson_id, word_or_phrase, definition, example_usage
		 FROM vocabulary WHERE lesson_id = ?`, lessonID)
	if err != nil {
		return nil, fmt.Errorf("list vocabulary for lesson %d: %w", lessonID, err)
	}
	return out, nil
}

// ResourcesForLesson returns the external resources attached to a lesson.
func (c *Catalog) ResourcesForLesson(lessonID int64) ([]Resource, error) {
	var out []Resource
	err := c.store.Select(&out,
		`SELECT id, lesson_id, resource_type, description, url_or_path
		 FROM resources WHERE lesson_id = ?`, lessonID)
	if err != nil {
		return nil, fmt.Errorf("list resources for lesson %d: %w", lessonID, err)
	}
	return out, nil
}

// SearchStudents matches students by name or email substring.
func (c *Catalog) SearchStudents(term string) ([]Student, error) {
	like := "%" + term + "%"
	var out []Student
	err := c.store.Select(&out,
		`SELECT es.id, es.name, es.email, es.course_id, co.name AS course_name
		 FROM enrolled_students es
		 JOIN courses co ON es.course_id = co.id
		 WHERE es.name LIKE ? OR es.email LIKE ?
		 ORDER BY es.name`, like, like)
	if err != nil {
		return nil, fmt.Errorf("search students %q: %w", term, err)
	}
	return out, nil
}

// SearchLessons matches lessons by title, grammar focus or vocabulary focus.
func (c *Catalog) SearchLessons(term string) ([]Lesson, error) {
	like := "%" + term + "%"
	var out []Lesson
	err := c.store.Select(&out,
		`SELECT id, unit_id, lesson_number, title, grammar_focus, vocabulary_focus, context
		 FROM lessons
		 WHERE title LIKE ? OR grammar_focus LIKE ? OR vocabulary_focus LIKE ?
		 ORDER BY unit_id, lesson_number`, like, like, like)
	if err != nil {
		return nil, fmt.Errorf("search lessons %q: %w", term, err)
	}
	return out, nil
}
