package homework

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultSaveDir returns the directory homework files are written to
// when no explicit output directory is given.
func DefaultSaveDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, "Documents", "teachmate"), nil
}

// SaveMarkdown renders the assignment and writes it into dir with a
// slugged, uuid-suffixed filename. Returns the full path written.
func SaveMarkdown(hw *Homework, input HomeworkInput, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	name := fmt.Sprintf("homework_%s_%s.md", slug(input.StudentName), uuid.NewString()[:8])
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, []byte(RenderMarkdown(hw, input)), 0o644); err != nil {
		return "", fmt.Errorf("write homework file: %w", err)
	}
	return path, nil
}

// RenderMarkdown formats the assignment as a markdown document.
func RenderMarkdown(hw *Homework, input HomeworkInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", hw.Title)
	fmt.Fprintf(&b, "**Student:** %s  \n", input.StudentName)
	fmt.Fprintf(&b, "**Course:** %s  \n", input.CourseName)
	fmt.Fprintf(&b, "**Lesson:** %s  \n", input.LessonTitle)
	fmt.Fprintf(&b, "**Date:** %s  \n", time.Now().Format("2006-01-02"))
	if hw.EstimatedMinutes > 0 {
		fmt.Fprintf(&b, "**Estimated time:** %d minutes  \n", hw.EstimatedMinutes)
	}
	b.WriteString("\n")

	if len(hw.WarmUp) > 0 {
		b.WriteString("## Warm-up\n\n")
		for i, q := range hw.WarmUp {
			fmt.Fprintf(&b, "%d. %s\n", i+1, q)
		}
		b.WriteString("\n")
	}

	writeExercises(&b, "Grammar", hw.GrammarExercises)
	writeExercises(&b, "Vocabulary", hw.VocabularyExercises)

	if hw.WritingTask != "" {
		b.WriteString("## Writing\n\n")
		b.WriteString(hw.WritingTask)
		b.WriteString("\n")
	}

	return b.String()
}

func writeExercises(b *strings.Builder, heading string, exercises []Exercise) {
	if len(exercises) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", heading)
	for _, ex := range exercises {
		fmt.Fprintf(b, "%s\n\n", ex.Instructions)
		for i, item := range ex.Items {
			fmt.Fprintf(b, "%d. %s\n", i+1, item)
		}
		b.WriteString("\n")
	}
}

// slug lowercases a name and replaces runs of non-alphanumerics with
// underscores, for use in filenames.
func slug(s string) string {
	var b strings.Builder
	lastUnderscore := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteRune('_')
				lastUnderscore = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}
