package catalog

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/abhisek/teachmate/internal/store"
)

// Catalog resolves and lists curriculum entities. Resolvers are single
// primary-key lookups with no side effects; a missing id yields
// *NotFoundError, any other store failure is wrapped and propagated.
type Catalog struct {
	store *store.Store
}

// New creates a Catalog backed by the given store.
func New(s *store.Store) *Catalog {
	return &Catalog{store: s}
}

// Student resolves a student by id, joined to the enrolling course.
func (c *Catalog) Student(id int64) (*Student, error) {
	var s Student
	err := c.store.Get(&s,
		`SELECT es.id, es.name, es.email, es.course_id, co.name AS course_name
		 FROM enrolled_students es
		 JOIN courses co ON es.course_id = co.id
		 WHERE es.id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &NotFoundError{Kind: "student", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("resolve student %d: %w", id, err)
	}
	return &s, nil
}

// Course resolves a course by id.
func (c *Catalog) Course(id int64) (*Course, error) {
	var co Course
	err := c.store.Get(&co,
		`SELECT id, name, description FROM courses WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &NotFoundError{Kind: "course", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("resolve course %d: %w", id, err)
	}
	return &co, nil
}

// Unit resolves a unit by id.
func (c *Catalog) Unit(id int64) (*Unit, error) {
	var u Unit
	err := c.store.Get(&u,
		`SELECT id, course_id, unit_number, title, description
		 FROM units WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &NotFoundError{Kind: "unit", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("resolve unit %d: %w", id, err)
	}
	return &u, nil
}

// Lesson resolves a lesson by id.
func (c *Catalog) Lesson(id int64) (*Lesson, error) {
	var l Lesson
	err := c.store.Get(&l,
		`SELECT id, unit_id, lesson_number, title, grammar_focus, vocabulary_focus, context
		 FROM lessons WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &NotFoundError{Kind: "lesson", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("resolve lesson %d: %w", id, err)
	}
	return &l, nil
}

// Block resolves a block by id.
func (c *Catalog) Block(id int64) (*Block, error) {
	var b Block
	err := c.store.Get(&b,
		`SELECT id, lesson_id, block_number, title, activity_type, description, content
		 FROM blocks WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &NotFoundError{Kind: "block", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("resolve block %d: %w", id, err)
	}
	return &b, nil
}
