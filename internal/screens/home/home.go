package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/teachmate/internal/catalog"
	"github.com/abhisek/teachmate/internal/export"
	"github.com/abhisek/teachmate/internal/homework"
	"github.com/abhisek/teachmate/internal/nav"
	"github.com/abhisek/teachmate/internal/router"
	"github.com/abhisek/teachmate/internal/screen"
	"github.com/abhisek/teachmate/internal/screens/blocks"
	"github.com/abhisek/teachmate/internal/screens/navigate"
	"github.com/abhisek/teachmate/internal/screens/search"
	"github.com/abhisek/teachmate/internal/screens/students"
	"github.com/abhisek/teachmate/internal/screens/units"
	"github.com/abhisek/teachmate/internal/ui/components"
	"github.com/abhisek/teachmate/internal/ui/theme"
)

// HomeScreen is the main menu. Items are gated on the current selection:
// you cannot browse units before choosing a student, or resume a lesson
// before opening one.
type HomeScreen struct {
	nav      *nav.Navigator
	catalog  *catalog.Catalog
	homework *homework.Service
	exporter *export.Exporter

	menu   components.Menu
	status string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen.
func New(n *nav.Navigator, cat *catalog.Catalog, hw *homework.Service, exp *export.Exporter) *HomeScreen {
	h := &HomeScreen{nav: n, catalog: cat, homework: hw, exporter: exp}
	h.menu = components.NewMenu(h.buildItems())
	return h
}

func (h *HomeScreen) buildItems() []components.MenuItem {
	st := h.nav.State()

	return []components.MenuItem{
		{Label: "Select Student", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: students.New(h.nav, h.catalog)}
			}
		}},
		{Label: "Browse Units", Disabled: st.Student == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: units.New(h.nav, h.catalog, h.homework)}
			}
		}},
		{Label: "Resume Lesson", Disabled: st.LessonRecord == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: blocks.New(h.nav, h.catalog, h.homework)}
			}
		}},
		{Label: "Search", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: search.New(h.nav, h.catalog)}
			}
		}},
		{Label: "Jump Back", Disabled: st.Student == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: navigate.New(h.nav)}
			}
		}},
		{Label: "Export Progress", Disabled: st.Student == nil, Action: func() tea.Cmd {
			return h.exportProgress()
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
}

type exportDoneMsg struct {
	path string
	err  error
}

func (h *HomeScreen) exportProgress() tea.Cmd {
	studentID := h.nav.State().Student.ID
	return func() tea.Msg {
		st, rows, err := h.exporter.ProgressForStudent(studentID)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		dir, err := homework.DefaultSaveDir()
		if err != nil {
			return exportDoneMsg{err: err}
		}
		path, err := export.SaveReports(dir, st, rows)
		return exportDoneMsg{path: path, err: err}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	// The selection may have changed while a child screen was on top, so
	// re-gate the menu before handling input.
	selected := h.menu.Selected
	h.menu = components.NewMenu(h.buildItems())
	if selected < len(h.menu.Items) && !h.menu.Items[selected].Disabled {
		h.menu.Selected = selected
	}

	if done, ok := msg.(exportDoneMsg); ok {
		if done.err != nil {
			h.status = "Export failed: " + done.err.Error()
		} else {
			h.status = "Progress exported to " + done.path
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render("Teaching Session"))
	sections = append(sections, h.renderSelection(width))
	sections = append(sections, h.menu.View())

	if h.status != "" {
		sections = append(sections, theme.Hint.Render("  "+h.status))
	}

	return strings.Join(sections, "\n\n")
}

func (h *HomeScreen) renderSelection(width int) string {
	st := h.nav.State()
	if st.Student == nil {
		return theme.Hint.Render("  No student selected yet.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Student  %s\n", st.Student.Name)
	fmt.Fprintf(&b, "Course   %s", st.Course.Name)
	if st.Unit != nil {
		fmt.Fprintf(&b, "\nUnit     %d. %s", st.Unit.UnitNumber, st.Unit.Title)
	}
	if st.Lesson != nil {
		fmt.Fprintf(&b, "\nLesson   %d. %s", st.Lesson.LessonNumber, st.Lesson.Title)
		if st.LessonRecord != nil && st.LessonRecord.Completed() {
			b.WriteString("  " + theme.Completed.Render("✓ completed"))
		}
	}
	if st.Block != nil {
		fmt.Fprintf(&b, "\nBlock    %d. %s", st.Block.BlockNumber, st.Block.Title)
	}

	card := theme.Card.Render(b.String())
	return lipgloss.NewStyle().PaddingLeft(2).Render(card)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
