package students

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/teachmate/internal/catalog"
	"github.com/abhisek/teachmate/internal/nav"
	"github.com/abhisek/teachmate/internal/router"
	"github.com/abhisek/teachmate/internal/screen"
	"github.com/abhisek/teachmate/internal/ui/theme"
)

// StudentsScreen lists enrolled students and selects one into the
// navigator. Selecting a student clears any deeper selection, so the
// screen simply pops back home afterwards.
type StudentsScreen struct {
	nav     *nav.Navigator
	catalog *catalog.Catalog

	students []catalog.Student
	cursor   int
	err      error
}

var _ screen.Screen = (*StudentsScreen)(nil)

// New creates the student picker.
func New(n *nav.Navigator, cat *catalog.Catalog) *StudentsScreen {
	s := &StudentsScreen{nav: n, catalog: cat}
	s.students, s.err = cat.Students()
	return s
}

func (s *StudentsScreen) Init() tea.Cmd {
	return nil
}

func (s *StudentsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.students)-1 {
			s.cursor++
		}
	case "enter":
		if len(s.students) == 0 {
			return s, nil
		}
		if _, err := s.nav.SelectStudent(s.students[s.cursor].ID); err != nil {
			s.err = err
			return s, nil
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	return s, nil
}

func (s *StudentsScreen) View(width, height int) string {
	var sections []string
	sections = append(sections, theme.Title.Width(width).Render("Select Student"))

	if s.err != nil {
		sections = append(sections, theme.ErrorText.Render("  "+s.err.Error()))
		return strings.Join(sections, "\n\n")
	}
	if len(s.students) == 0 {
		sections = append(sections, theme.Hint.Render("  No students enrolled yet. Add one with `teachmate student add`."))
		return strings.Join(sections, "\n\n")
	}

	var b strings.Builder
	for i, st := range s.students {
		line := fmt.Sprintf("%s  %s", st.Name, theme.Subtitle.Render("— "+st.CourseName))
		if i == s.cursor {
			b.WriteString(theme.Selected.Render("  ▸ "+line) + "\n")
		} else {
			b.WriteString(theme.Unselected.Render("    "+line) + "\n")
		}
	}
	sections = append(sections, b.String())

	return strings.Join(sections, "\n\n")
}

func (s *StudentsScreen) Title() string {
	return "Students"
}
