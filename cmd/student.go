package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/teachmate/internal/catalog"
	"github.com/abhisek/teachmate/internal/progress"
	"github.com/abhisek/teachmate/internal/store"
	"github.com/spf13/cobra"
)

var studentCmd = &cobra.Command{
	Use:   "student",
	Short: "Manage the student roster",
}

var studentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List enrolled students",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, closeFn, err := openCatalog(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		students, err := cat.Students()
		if err != nil {
			return err
		}
		if len(students) == 0 {
			fmt.Println("No students enrolled.")
			return nil
		}

		fmt.Printf("%-5s  %-24s  %-30s  %s\n", "ID", "Name", "Email", "Course")
		fmt.Println(strings.Repeat("─", 90))
		for _, s := range students {
			fmt.Printf("%-5d  %-24s  %-30s  %s\n", s.ID, s.Name, s.Email, s.CourseName)
		}
		return nil
	},
}

var studentAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Enroll a student in a course",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		courseID, _ := cmd.Flags().GetInt64("course")

		cat, closeFn, err := openCatalog(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		st, err := cat.EnrollStudent(name, email, courseID)
		if err != nil {
			return err
		}
		fmt.Printf("Enrolled %s (id %d) in %s.\n", st.Name, st.ID, st.CourseName)
		return nil
	},
}

var studentUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a student's name, email, or course",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q: %w", args[0], err)
		}

		var upd catalog.StudentUpdate
		if cmd.Flags().Changed("name") {
			v, _ := cmd.Flags().GetString("name")
			upd.Name = &v
		}
		if cmd.Flags().Changed("email") {
			v, _ := cmd.Flags().GetString("email")
			upd.Email = &v
		}
		if cmd.Flags().Changed("course") {
			v, _ := cmd.Flags().GetInt64("course")
			upd.CourseID = &v
		}

		cat, closeFn, err := openCatalog(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		st, err := cat.UpdateStudent(id, upd)
		if err != nil {
			return err
		}
		fmt.Printf("Updated %s (id %d), %s, %s.\n", st.Name, st.ID, st.Email, st.CourseName)
		return nil
	},
}

var studentRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a student and all their progress records",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q: %w", args[0], err)
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("removing a student deletes their progress records; re-run with --yes to confirm")
		}

		cat, closeFn, err := openCatalog(cmd)
		if err != nil {
			return err
		}
		defer closeFn()

		if err := cat.RemoveStudent(id); err != nil {
			return err
		}
		fmt.Printf("Removed student %d.\n", id)
		return nil
	},
}

var studentRecordCmd = &cobra.Command{
	Use:   "record <student-id> <lesson-id>",
	Short: "Mark a lesson complete for a student",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		studentID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid student id %q: %w", args[0], err)
		}
		lessonID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid lesson id %q: %w", args[1], err)
		}

		var score *int
		if cmd.Flags().Changed("score") {
			v, _ := cmd.Flags().GetInt("score")
			if v < 0 || v > 100 {
				return fmt.Errorf("score must be between 0 and 100, got %d", v)
			}
			score = &v
		}
		var feedback *string
		if cmd.Flags().Changed("feedback") {
			v, _ := cmd.Flags().GetString("feedback")
			feedback = &v
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		records := progress.New(st)
		rec, _, err := records.OpenLessonRecord(studentID, lessonID)
		if err != nil {
			return err
		}
		rec, err = records.CompleteLesson(rec.ID, score, feedback)
		if err != nil {
			return err
		}

		fmt.Printf("Lesson %d completed for student %d on %s", lessonID, studentID, *rec.CompletionDate)
		if rec.Score != nil {
			fmt.Printf(" with score %d", *rec.Score)
		}
		fmt.Println(".")
		return nil
	},
}

// openCatalog opens the store and wraps it in a catalog. The returned
// func closes the store.
func openCatalog(cmd *cobra.Command) (*catalog.Catalog, func(), error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	return catalog.New(st), func() { st.Close() }, nil
}

func init() {
	studentAddCmd.Flags().String("name", "", "Student name (required)")
	studentAddCmd.Flags().String("email", "", "Student email (required)")
	studentAddCmd.Flags().Int64("course", 0, "Course ID to enroll in (required)")
	_ = studentAddCmd.MarkFlagRequired("name")
	_ = studentAddCmd.MarkFlagRequired("email")
	_ = studentAddCmd.MarkFlagRequired("course")

	studentUpdateCmd.Flags().String("name", "", "New name")
	studentUpdateCmd.Flags().String("email", "", "New email")
	studentUpdateCmd.Flags().Int64("course", 0, "New course ID")

	studentRemoveCmd.Flags().Bool("yes", false, "Confirm removal")

	studentRecordCmd.Flags().Int("score", 0, "Score from 0 to 100")
	studentRecordCmd.Flags().String("feedback", "", "Feedback for the lesson")

	studentCmd.AddCommand(studentListCmd)
	studentCmd.AddCommand(studentAddCmd)
	studentCmd.AddCommand(studentUpdateCmd)
	studentCmd.AddCommand(studentRemoveCmd)
	studentCmd.AddCommand(studentRecordCmd)
}
