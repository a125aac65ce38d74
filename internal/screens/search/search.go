package search

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/teachmate/internal/catalog"
	"github.com/abhisek/teachmate/internal/nav"
	"github.com/abhisek/teachmate/internal/router"
	"github.com/abhisek/teachmate/internal/screen"
	"github.com/abhisek/teachmate/internal/ui/components"
	"github.com/abhisek/teachmate/internal/ui/theme"
)

// SearchScreen finds students and lessons by name. A matched student can
// be selected directly; lesson matches show where the lesson lives.
type SearchScreen struct {
	nav     *nav.Navigator
	catalog *catalog.Catalog

	input    components.TextInput
	searched bool
	students []catalog.Student
	lessons  []catalog.Lesson

	browsing bool
	cursor   int
	status   string
}

var _ screen.Screen = (*SearchScreen)(nil)

// New creates the search screen.
func New(n *nav.Navigator, cat *catalog.Catalog) *SearchScreen {
	return &SearchScreen{
		nav:     n,
		catalog: cat,
		input:   components.NewTextInput("Student or lesson name", false, 100),
	}
}

func (s *SearchScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *SearchScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.browsing {
		return s.updateBrowsing(kmsg)
	}

	if kmsg.String() == "enter" {
		s.runSearch()
		if len(s.students) > 0 {
			s.browsing = true
			s.cursor = 0
			s.input.Model.Blur()
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SearchScreen) updateBrowsing(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
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
		if _, err := s.nav.SelectStudent(s.students[s.cursor].ID); err != nil {
			s.status = err.Error()
			return s, nil
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "esc", "/":
		s.browsing = false
		return s, s.input.Model.Focus()
	}
	return s, nil
}

func (s *SearchScreen) runSearch() {
	term := strings.TrimSpace(s.input.Value())
	if term == "" {
		s.status = "Type something to search for."
		return
	}

	var err error
	if s.students, err = s.catalog.SearchStudents(term); err != nil {
		s.status = err.Error()
		return
	}
	if s.lessons, err = s.catalog.SearchLessons(term); err != nil {
		s.status = err.Error()
		return
	}
	s.searched = true
	s.status = ""
}

func (s *SearchScreen) View(width, height int) string {
	var sections []string
	sections = append(sections, theme.Title.Width(width).Render("Search"))
	sections = append(sections, "  "+s.input.View())

	if s.status != "" {
		sections = append(sections, theme.Hint.Render("  "+s.status))
	}

	if s.searched {
		sections = append(sections, s.renderResults())
	}

	return strings.Join(sections, "\n\n")
}

func (s *SearchScreen) renderResults() string {
	var b strings.Builder

	b.WriteString(theme.Selected.Render("Students") + "\n")
	if len(s.students) == 0 {
		b.WriteString(theme.Hint.Render("  No matches.") + "\n")
	}
	for i, st := range s.students {
		line := fmt.Sprintf("%s  %s", st.Name, theme.Subtitle.Render("— "+st.CourseName))
		if s.browsing && i == s.cursor {
			b.WriteString(theme.Selected.Render("  ▸ "+line) + "\n")
		} else {
			b.WriteString(theme.Unselected.Render("    "+line) + "\n")
		}
	}

	b.WriteString("\n" + theme.Selected.Render("Lessons") + "\n")
	if len(s.lessons) == 0 {
		b.WriteString(theme.Hint.Render("  No matches.") + "\n")
	}
	for _, l := range s.lessons {
		b.WriteString(theme.Unselected.Render(fmt.Sprintf("    Lesson %d: %s", l.LessonNumber, l.Title)) + "\n")
	}

	if s.browsing {
		b.WriteString("\n" + theme.Hint.Render("  enter selects the student · / back to typing"))
	}
	return b.String()
}

// HandlesEsc claims esc while browsing results so it returns to the
// query input instead of leaving the screen.
func (s *SearchScreen) HandlesEsc() bool {
	return s.browsing
}

func (s *SearchScreen) Title() string {
	return "Search"
}
