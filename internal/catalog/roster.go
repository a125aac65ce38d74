package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidEmail is returned when an enrollment email fails the shape
// check.
var ErrInvalidEmail = errors.New("invalid email address")

// ErrEmptyName is returned when an enrollment name is blank.
var ErrEmptyName = errors.New("name must not be empty")

func checkEmail(email string) error {
	at := strings.Index(email, "@")
	if at < 1 || !strings.Contains(email[at:], ".") {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return nil
}

// EnrollStudent adds a student to the roster. The course must exist and
// the email must be unique.
func (c *Catalog) EnrollStudent(name, email string, courseID int64) (*Student, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if err := checkEmail(email); err != nil {
		return nil, err
	}
	if _, err := c.Course(courseID); err != nil {
		return nil, err
	}

	id, err := c.store.ExecID(
		`INSERT INTO enrolled_students (name, email, course_id) VALUES (?, ?, ?)`,
		name, email, courseID)
	if err != nil {
		return nil, fmt.Errorf("enroll student: %w", err)
	}
	return c.Student(id)
}

// StudentUpdate carries a partial roster update. Nil fields are left
// untouched.
type StudentUpdate struct {
	Name     *string
	Email    *string
	CourseID *int64
}

// UpdateStudent applies a partial update to a roster entry.
func (c *Catalog) UpdateStudent(id int64, upd StudentUpdate) (*Student, error) {
	if _, err := c.Student(id); err != nil {
		return nil, err
	}

	setParts := []string{}
	args := []any{}
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return nil, ErrEmptyName
		}
		setParts = append(setParts, "name = ?")
		args = append(args, name)
	}
	if upd.Email != nil {
		if err := checkEmail(*upd.Email); err != nil {
			return nil, err
		}
		setParts = append(setParts, "email = ?")
		args = append(args, *upd.Email)
	}
	if upd.CourseID != nil {
		if _, err := c.Course(*upd.CourseID); err != nil {
			return nil, err
		}
		setParts = append(setParts, "course_id = ?")
		args = append(args, *upd.CourseID)
	}
	if len(setParts) == 0 {
		return c.Student(id)
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE enrolled_students SET %s WHERE id = ?`, strings.Join(setParts, ", "))
	if _, err := c.store.Exec(query, args...); err != nil {
		return nil, fmt.Errorf("update student: %w", err)
	}
	return c.Student(id)
}

// RemoveStudent deletes a roster entry together with all of the
// student's progress records.
func (c *Catalog) RemoveStudent(id int64) error {
	if _, err := c.Student(id); err != nil {
		return err
	}

	if _, err := c.store.Exec(
		`DELETE FROM block_records WHERE lesson_record_id IN
		 (SELECT id FROM lesson_records WHERE student_id = ?)`, id); err != nil {
		return fmt.Errorf("remove block records: %w", err)
	}
	if _, err := c.store.Exec(`DELETE FROM lesson_records WHERE student_id = ?`, id); err != nil {
		return fmt.Errorf("remove lesson records: %w", err)
	}
	if _, err := c.store.Exec(`DELETE FROM enrolled_students WHERE id = ?`, id); err != nil {
		return fmt.Errorf("remove student: %w", err)
	}
	return nil
}

// Courses lists all courses ordered by id, for enrollment prompts.
func (c *Catalog) Courses() ([]Course, error) {
	var out []Course
	if err := c.store.Select(&out, `SELECT id, name, description FROM courses ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return out, nil
}
