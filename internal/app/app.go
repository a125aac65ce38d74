package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/teachmate/internal/catalog"
	"github.com/abhisek/teachmate/internal/export"
	"github.com/abhisek/teachmate/internal/homework"
	"github.com/abhisek/teachmate/internal/nav"
	"github.com/abhisek/teachmate/internal/router"
	"github.com/abhisek/teachmate/internal/screen"
	"github.com/abhisek/teachmate/internal/screens/home"
	"github.com/abhisek/teachmate/internal/screens/welcome"
	"github.com/abhisek/teachmate/internal/ui/layout"
)

// Options carries the wired services the TUI runs on. Homework may be
// nil when no LLM provider is configured; AI features then report
// themselves unavailable instead of failing.
type Options struct {
	Navigator *nav.Navigator
	Catalog   *catalog.Catalog
	Homework  *homework.Service
	Exporter  *export.Exporter
}

// escHandler lets a screen claim the esc key (e.g. while a text input
// is mid-edit) instead of having the router pop it.
type escHandler interface {
	HandlesEsc() bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	welcomeScreen := welcome.New(func() screen.Screen {
		return home.New(opts.Navigator, opts.Catalog, opts.Homework, opts.Exporter)
	})
	return AppModel{
		opts:   opts,
		router: router.New(welcomeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(escHandler); ok && h.HandlesEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	studentName := ""
	if st := m.opts.Navigator.State().Student; st != nil {
		studentName = st.Name
	}
	header := layout.RenderHeader(title, studentName, m.width)

	crumbs := m.opts.Navigator.Breadcrumbs()
	labels := make([]string, len(crumbs))
	for i, c := range crumbs {
		labels[i] = c.Label
	}
	breadcrumbs := layout.RenderBreadcrumbs(labels)

	var footerHints []layout.KeyHint
	if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	footer := layout.RenderFooter(breadcrumbs, footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
