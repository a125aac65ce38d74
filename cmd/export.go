package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/abhisek/teachmate/internal/export"
	"github.com/abhisek/teachmate/internal/store"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <student-id>",
	Short: "Export a student's progress as markdown and XLSX",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid student id %q: %w", args[0], err)
		}
		outDir, _ := cmd.Flags().GetString("out")
		format, _ := cmd.Flags().GetString("format")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		exporter := export.New(st)
		student, rows, err := exporter.ProgressForStudent(id)
		if err != nil {
			return err
		}

		switch format {
		case "all":
			path, err := export.SaveReports(outDir, student, rows)
			if err != nil {
				return err
			}
			fmt.Printf("Exported %s's progress to %s\n", student.Name, filepath.Dir(path))
		case "md":
			path := filepath.Join(outDir, "progress_"+args[0]+".md")
			if err := export.WriteMarkdown(path, student, rows); err != nil {
				return err
			}
			fmt.Printf("Exported %s's progress to %s\n", student.Name, path)
		case "xlsx":
			path := filepath.Join(outDir, "progress_"+args[0]+".xlsx")
			if err := export.WriteWorkbook(path, student, rows); err != nil {
				return err
			}
			fmt.Printf("Exported %s's progress to %s\n", student.Name, path)
		default:
			return fmt.Errorf("invalid format %q: must be all, md, or xlsx", format)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().String("out", ".", "Output directory")
	exportCmd.Flags().String("format", "all", "Output format: all, md, or xlsx")
}
