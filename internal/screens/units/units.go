package units

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/teachmate/internal/catalog"
	"github.com/abhisek/teachmate/internal/homework"
	"github.com/abhisek/teachmate/internal/nav"
	"github.com/abhisek/teachmate/internal/router"
	"github.com/abhisek/teachmate/internal/screen"
	"github.com/abhisek/teachmate/internal/screens/lessons"
	"github.com/abhisek/teachmate/internal/ui/theme"
)

// UnitsScreen lists the units of the selected student's course.
type UnitsScreen struct {
	nav      *nav.Navigator
	catalog  *catalog.Catalog
	homework *homework.Service

	units  []catalog.Unit
	cursor int
	err    error
}

var _ screen.Screen = (*UnitsScreen)(nil)

// New creates the unit browser for the current course selection.
func New(n *nav.Navigator, cat *catalog.Catalog, hw *homework.Service) *UnitsScreen {
	u := &UnitsScreen{nav: n, catalog: cat, homework: hw}
	st := n.State()
	if st.Course == nil {
		u.err = &nav.PreconditionError{Missing: nav.LevelStudent}
		return u
	}
	u.units, u.err = cat.UnitsForCourse(st.Course.ID)
	return u
}

func (u *UnitsScreen) Init() tea.Cmd {
	return nil
}

func (u *UnitsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return u, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if u.cursor > 0 {
			u.cursor--
		}
	case "down", "j":
		if u.cursor < len(u.units)-1 {
			u.cursor++
		}
	case "enter":
		if len(u.units) == 0 {
			return u, nil
		}
		if _, err := u.nav.SelectUnit(u.units[u.cursor].ID); err != nil {
			u.err = err
			return u, nil
		}
		return u, func() tea.Msg {
			return router.PushScreenMsg{Screen: lessons.New(u.nav, u.catalog, u.homework)}
		}
	}

	return u, nil
}

func (u *UnitsScreen) View(width, height int) string {
	st := u.nav.State()

	var sections []string
	title := "Units"
	if st.Course != nil {
		title = st.Course.Name
	}
	sections = append(sections, theme.Title.Width(width).Render(title))

	if u.err != nil {
		sections = append(sections, theme.ErrorText.Render("  "+u.err.Error()))
		return strings.Join(sections, "\n\n")
	}
	if len(u.units) == 0 {
		sections = append(sections, theme.Hint.Render("  This course has no units yet."))
		return strings.Join(sections, "\n\n")
	}

	var b strings.Builder
	for i, unit := range u.units {
		line := fmt.Sprintf("Unit %d: %s", unit.UnitNumber, unit.Title)
		if i == u.cursor {
			b.WriteString(theme.Selected.Render("  ▸ "+line) + "\n")
			if unit.Description != nil && *unit.Description != "" {
				b.WriteString(theme.Hint.Render("      "+*unit.Description) + "\n")
			}
		} else {
			b.WriteString(theme.Unselected.Render("    "+line) + "\n")
		}
	}
	sections = append(sections, b.String())

	return strings.Join(sections, "\n\n")
}

func (u *UnitsScreen) Title() string {
	return "Units"
}
