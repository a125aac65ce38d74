package lessons

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/teachmate/internal/catalog"
	"github.com/abhisek/teachmate/internal/homework"
	"github.com/abhisek/teachmate/internal/nav"
	"github.com/abhisek/teachmate/internal/router"
	"github.com/abhisek/teachmate/internal/screen"
	"github.com/abhisek/teachmate/internal/screens/lessondetail"
	"github.com/abhisek/teachmate/internal/ui/components"
	"github.com/abhisek/teachmate/internal/ui/theme"
)

// LessonsScreen lists the lessons of the selected unit, decorated with
// the current student's completion status. Opening a lesson creates or
// resumes its progress record.
type LessonsScreen struct {
	nav      *nav.Navigator
	catalog  *catalog.Catalog
	homework *homework.Service

	lessons []catalog.LessonListing
	cursor  int
	err     error
}

var _ screen.Screen = (*LessonsScreen)(nil)

// New creates the lesson browser for the current unit selection.
func New(n *nav.Navigator, cat *catalog.Catalog, hw *homework.Service) *LessonsScreen {
	l := &LessonsScreen{nav: n, catalog: cat, homework: hw}
	st := n.State()
	if st.Unit == nil || st.Student == nil {
		l.err = &nav.PreconditionError{Missing: nav.LevelUnit}
		return l
	}
	l.lessons, l.err = cat.LessonsForUnit(st.Unit.ID, st.Student.ID)
	return l
}

func (l *LessonsScreen) Init() tea.Cmd {
	return nil
}

func (l *LessonsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if l.cursor > 0 {
			l.cursor--
		}
	case "down", "j":
		if l.cursor < len(l.lessons)-1 {
			l.cursor++
		}
	case "enter":
		if len(l.lessons) == 0 {
			return l, nil
		}
		sel, err := l.nav.SelectLesson(l.lessons[l.cursor].ID)
		if err != nil {
			l.err = err
			return l, nil
		}
		return l, func() tea.Msg {
			return router.PushScreenMsg{Screen: lessondetail.New(l.nav, l.catalog, l.homework, sel.Kind)}
		}
	}

	return l, nil
}

func (l *LessonsScreen) View(width, height int) string {
	st := l.nav.State()

	var sections []string
	title := "Lessons"
	if st.Unit != nil {
		title = fmt.Sprintf("Unit %d: %s", st.Unit.UnitNumber, st.Unit.Title)
	}
	sections = append(sections, theme.Title.Width(width).Render(title))

	if l.err != nil {
		sections = append(sections, theme.ErrorText.Render("  "+l.err.Error()))
		return strings.Join(sections, "\n\n")
	}
	if len(l.lessons) == 0 {
		sections = append(sections, theme.Hint.Render("  This unit has no lessons yet."))
		return strings.Join(sections, "\n\n")
	}

	var b strings.Builder
	for i, lesson := range l.lessons {
		status := theme.NotStarted.Render("· " + lesson.Status)
		if lesson.Status == "Completed" {
			status = theme.Completed.Render("✓ Completed")
		}
		line := fmt.Sprintf("Lesson %d: %s  %s", lesson.LessonNumber, lesson.Title, status)
		if i == l.cursor {
			b.WriteString(theme.Selected.Render("  ▸ ") + theme.Selected.Render(line) + "\n")
		} else {
			b.WriteString("    " + theme.Unselected.Render(line) + "\n")
		}
	}
	sections = append(sections, b.String())

	barWidth := width - 8
	if barWidth > 48 {
		barWidth = 48
	}
	bar := components.NewProgressBar("Unit progress", l.completionRatio(), true, barWidth)
	sections = append(sections, "  "+bar.View())

	return strings.Join(sections, "\n\n")
}

func (l *LessonsScreen) completionRatio() float64 {
	if len(l.lessons) == 0 {
		return 0
	}
	done := 0
	for _, lesson := range l.lessons {
		if lesson.Status == "Completed" {
			done++
		}
	}
	return float64(done) / float64(len(l.lessons))
}

func (l *LessonsScreen) Title() string {
	return "Lessons"
}
