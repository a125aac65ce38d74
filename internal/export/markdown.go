package export

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/abhisek/teachmate/internal/catalog"
)

// RenderMarkdown formats a student's progress as a markdown report.
func RenderMarkdown(st *catalog.Student, rows []ProgressRow) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Progress Report: %s\n\n", st.Name)
	fmt.Fprintf(&b, "**Email:** %s  \n", st.Email)
	fmt.Fprintf(&b, "**Course:** %s  \n", st.CourseName)
	fmt.Fprintf(&b, "**Generated:** %s  \n\n", time.Now().Format("2006-01-02"))

	if len(rows) == 0 {
		b.WriteString("No lessons started yet.\n")
		return b.String()
	}

	var completed int
	for _, r := range rows {
		if r.CompletionDate != nil {
			completed++
		}
	}
	fmt.Fprintf(&b, "%d lessons started, %d completed.\n\n", len(rows), completed)

	b.WriteString("| Unit | Lesson | Completed | Score | Feedback |\n")
	b.WriteString("|------|--------|-----------|-------|----------|\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "| %d. %s | %d. %s | %s | %s | %s |\n",
			r.UnitNumber, r.UnitTitle,
			r.LessonNumber, r.LessonTitle,
			orDash(r.CompletionDate),
			scoreOrDash(r.Score),
			orDash(r.Feedback),
		)
	}
	return b.String()
}

// WriteMarkdown renders the report and writes it to path.
func WriteMarkdown(path string, st *catalog.Student, rows []ProgressRow) error {
	if err := os.WriteFile(path, []byte(RenderMarkdown(st, rows)), 0o644); err != nil {
		return fmt.Errorf("write markdown report: %w", err)
	}
	return nil
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "—"
	}
	return *s
}

func scoreOrDash(n *int) string {
	if n == nil {
		return "—"
	}
	return fmt.Sprintf("%d", *n)
}
