package navigate

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/teachmate/internal/nav"
	"github.com/abhisek/teachmate/internal/router"
	"github.com/abhisek/teachmate/internal/screen"
	"github.com/abhisek/teachmate/internal/ui/theme"
)

// NavigateScreen jumps the selection back to an earlier breadcrumb
// level, clearing everything below it.
type NavigateScreen struct {
	nav *nav.Navigator

	targets []nav.Level
	cursor  int
	status  string
}

var _ screen.Screen = (*NavigateScreen)(nil)

// New creates the jump-back screen from the current selection.
func New(n *nav.Navigator) *NavigateScreen {
	return &NavigateScreen{nav: n, targets: n.ResetTargets()}
}

func (s *NavigateScreen) Init() tea.Cmd {
	return nil
}

func (s *NavigateScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
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
		if s.cursor < len(s.targets)-1 {
			s.cursor++
		}
	case "enter":
		if err := s.nav.ResetToLevel(s.targets[s.cursor]); err != nil {
			s.status = err.Error()
			return s, nil
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	return s, nil
}

func (s *NavigateScreen) View(width, height int) string {
	var sections []string
	sections = append(sections, theme.Title.Width(width).Render("Jump Back"))

	labels := s.labels()

	var b strings.Builder
	for i, label := range labels {
		if i == s.cursor {
			b.WriteString(theme.Selected.Render("  ▸ "+label) + "\n")
		} else {
			b.WriteString(theme.Unselected.Render("    "+label) + "\n")
		}
	}
	sections = append(sections, b.String())

	sections = append(sections, theme.Hint.Render("  Jumping to a level clears everything selected below it."))
	if s.status != "" {
		sections = append(sections, theme.ErrorText.Render("  "+s.status))
	}

	return strings.Join(sections, "\n\n")
}

// labels pairs each reset target with its breadcrumb label so the menu
// reads "Unit 5: Food" rather than the bare level name.
func (s *NavigateScreen) labels() []string {
	byLevel := map[nav.Level]string{}
	for _, c := range s.nav.Breadcrumbs() {
		byLevel[c.Level] = c.Label
	}

	out := make([]string, 0, len(s.targets))
	for _, t := range s.targets {
		if label, ok := byLevel[t]; ok {
			out = append(out, label)
		} else {
			out = append(out, string(t))
		}
	}
	return out
}

func (s *NavigateScreen) Title() string {
	return "Navigate"
}
