package cmd

import (
	"fmt"

	"github.com/abhisek/teachmate/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete progress records",
	Long: `Delete lesson and block records, either for one student (--student)
or for everyone (--all). Curriculum and roster data are untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		studentID, _ := cmd.Flags().GetInt64("student")
		all, _ := cmd.Flags().GetBool("all")
		yes, _ := cmd.Flags().GetBool("yes")

		if all == (studentID != 0) {
			return fmt.Errorf("use exactly one of --student or --all")
		}
		if !yes {
			return fmt.Errorf("this permanently deletes progress records; re-run with --yes to confirm")
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

		if all {
			if _, err := st.Exec(`DELETE FROM block_records`); err != nil {
				return fmt.Errorf("delete block records: %w", err)
			}
			n, err := st.Exec(`DELETE FROM lesson_records`)
			if err != nil {
				return fmt.Errorf("delete lesson records: %w", err)
			}
			fmt.Printf("Deleted all progress (%d lesson records).\n", n)
			return nil
		}

		if _, err := st.Exec(
			`DELETE FROM block_records WHERE lesson_record_id IN
			 (SELECT id FROM lesson_records WHERE student_id = ?)`, studentID); err != nil {
			return fmt.Errorf("delete block records: %w", err)
		}
		n, err := st.Exec(`DELETE FROM lesson_records WHERE student_id = ?`, studentID)
		if err != nil {
			return fmt.Errorf("delete lesson records: %w", err)
		}
		fmt.Printf("Deleted %d lesson records for student %d.\n", n, studentID)
		return nil
	},
}

func init() {
	resetCmd.Flags().Int64("student", 0, "Student ID to reset")
	resetCmd.Flags().Bool("all", false, "Reset all students")
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
