package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/teachmate/internal/catalog"
)

var workbookHeader = []string{"Unit", "Unit Title", "Lesson", "Lesson Title", "Completed", "Score", "Feedback"}

// WriteWorkbook writes the student's progress as an XLSX workbook with
// one sheet per course.
func WriteWorkbook(path string, st *catalog.Student, rows []ProgressRow) error {
	f := excelize.NewFile()
	defer f.Close()

	byCourse := map[string][]ProgressRow{}
	var courses []string
	for _, r := range rows {
		if _, seen := byCourse[r.CourseName]; !seen {
			courses = append(courses, r.CourseName)
		}
		byCourse[r.CourseName] = append(byCourse[r.CourseName], r)
	}
	if len(courses) == 0 {
		courses = []string{st.CourseName}
	}

	for _, course := range courses {
		sheet := sheetName(course)
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("create sheet %q: %w", sheet, err)
		}
		for col, h := range workbookHeader {
			cell, err := excelize.CoordinatesToCellName(col+1, 1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, h); err != nil {
				return fmt.Errorf("write header: %w", err)
			}
		}
		for i, r := range byCourse[course] {
			values := []any{
				r.UnitNumber, r.UnitTitle,
				r.LessonNumber, r.LessonTitle,
				strValue(r.CompletionDate),
				scoreValue(r.Score),
				strValue(r.Feedback),
			}
			for col, v := range values {
				cell, err := excelize.CoordinatesToCellName(col+1, i+2)
				if err != nil {
					return err
				}
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return fmt.Errorf("write row %d: %w", i+1, err)
				}
			}
		}
	}

	// Drop the default sheet so only course sheets remain.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("delete default sheet: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// sheetName trims a course name to Excel's 31-character sheet name limit.
func sheetName(course string) string {
	if len(course) <= 31 {
		return course
	}
	return course[:31]
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func scoreValue(n *int) any {
	if n == nil {
		return ""
	}
	return *n
}
