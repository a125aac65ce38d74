package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abhisek/teachmate/internal/catalog"
)

// SaveReports writes both the markdown and workbook report for a student
// into dir, creating it if needed. It returns the workbook path.
func SaveReports(dir string, st *catalog.Student, rows []ProgressRow) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	base := "progress_" + fileSlug(st.Name)
	mdPath := filepath.Join(dir, base+".md")
	if err := WriteMarkdown(mdPath, st, rows); err != nil {
		return "", err
	}

	xlsxPath := filepath.Join(dir, base+".xlsx")
	if err := WriteWorkbook(xlsxPath, st, rows); err != nil {
		return "", err
	}
	return xlsxPath, nil
}

func fileSlug(name string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore && b.Len() > 0 {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}
