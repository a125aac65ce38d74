package lessondetail

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/teachmate/internal/catalog"
	"github.com/abhisek/teachmate/internal/homework"
	"github.com/abhisek/teachmate/internal/nav"
	"github.com/abhisek/teachmate/internal/progress"
	"github.com/abhisek/teachmate/internal/router"
	"github.com/abhisek/teachmate/internal/screen"
	"github.com/abhisek/teachmate/internal/screens/blocks"
	"github.com/abhisek/teachmate/internal/screens/complete"
	homeworkscreen "github.com/abhisek/teachmate/internal/screens/homework"
	"github.com/abhisek/teachmate/internal/ui/components"
	"github.com/abhisek/teachmate/internal/ui/theme"
)

// LessonDetailScreen shows the opened lesson's focus areas and teaching
// materials, and branches into blocks, completion, or homework.
type LessonDetailScreen struct {
	nav      *nav.Navigator
	catalog  *catalog.Catalog
	homework *homework.Service
	kind     progress.SessionKind

	grammar    []catalog.GrammarRule
	vocabulary []catalog.VocabularyEntry
	resources  []catalog.Resource

	menu components.Menu
	err  error
}

var _ screen.Screen = (*LessonDetailScreen)(nil)

// New creates the detail screen for the currently opened lesson. kind is
// whether this open created the progress record or resumed one.
func New(n *nav.Navigator, cat *catalog.Catalog, hw *homework.Service, kind progress.SessionKind) *LessonDetailScreen {
	d := &LessonDetailScreen{nav: n, catalog: cat, homework: hw, kind: kind}

	st := n.State()
	if st.Lesson == nil {
		d.err = &nav.PreconditionError{Missing: nav.LevelLesson}
		return d
	}

	lessonID := st.Lesson.ID
	if d.grammar, d.err = cat.GrammarRulesForLesson(lessonID); d.err != nil {
		return d
	}
	if d.vocabulary, d.err = cat.VocabularyForLesson(lessonID); d.err != nil {
		return d
	}
	if d.resources, d.err = cat.ResourcesForLesson(lessonID); d.err != nil {
		return d
	}

	d.menu = components.NewMenu([]components.MenuItem{
		{Label: "Work Through Blocks", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: blocks.New(d.nav, d.catalog, d.homework)}
			}
		}},
		{Label: "Mark Lesson Complete", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: complete.New(d.nav)}
			}
		}},
		{Label: "Generate Homework", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: homeworkscreen.New(d.nav, d.homework)}
			}
		}},
	})
	return d
}

func (d *LessonDetailScreen) Init() tea.Cmd {
	return nil
}

func (d *LessonDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if d.err != nil {
		return d, nil
	}
	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

func (d *LessonDetailScreen) View(width, height int) string {
	if d.err != nil {
		return theme.ErrorText.Render("  " + d.err.Error())
	}

	st := d.nav.State()
	lesson := st.Lesson

	var sections []string
	sections = append(sections, theme.Title.Width(width).Render(
		fmt.Sprintf("Lesson %d: %s", lesson.LessonNumber, lesson.Title)))
	sections = append(sections, theme.Subtitle.Width(width).Render(d.sessionBanner()))
	sections = append(sections, d.renderInfo())
	sections = append(sections, d.menu.View())

	return strings.Join(sections, "\n\n")
}

func (d *LessonDetailScreen) sessionBanner() string {
	st := d.nav.State()
	if st.LessonRecord != nil && st.LessonRecord.Completed() {
		label := "Completed " + *st.LessonRecord.CompletionDate
		if st.LessonRecord.Score != nil {
			label += fmt.Sprintf(" · score %d", *st.LessonRecord.Score)
		}
		return label
	}
	if d.kind == progress.SessionNew {
		return "New session"
	}
	return "Previously started — resuming"
}

func (d *LessonDetailScreen) renderInfo() string {
	st := d.nav.State()
	lesson := st.Lesson

	var b strings.Builder
	if lesson.Context != nil && *lesson.Context != "" {
		b.WriteString(theme.Body.Render(*lesson.Context) + "\n\n")
	}
	if lesson.GrammarFocus != nil && *lesson.GrammarFocus != "" {
		b.WriteString("Grammar focus     " + *lesson.GrammarFocus + "\n")
	}
	if lesson.VocabularyFocus != nil && *lesson.VocabularyFocus != "" {
		b.WriteString("Vocabulary focus  " + *lesson.VocabularyFocus + "\n")
	}

	if len(d.grammar) > 0 {
		b.WriteString("\n" + theme.Selected.Render("Grammar rules") + "\n")
		for _, g := range d.grammar {
			b.WriteString("  • " + g.Rule)
			if g.Example != nil && *g.Example != "" {
				b.WriteString(theme.Hint.Render("  e.g. " + *g.Example))
			}
			b.WriteString("\n")
		}
	}
	if len(d.vocabulary) > 0 {
		b.WriteString("\n" + theme.Selected.Render("Vocabulary") + "\n")
		for _, v := range d.vocabulary {
			b.WriteString("  • " + v.WordOrPhrase)
			if v.Definition != nil && *v.Definition != "" {
				b.WriteString(" — " + *v.Definition)
			}
			b.WriteString("\n")
		}
	}
	if len(d.resources) > 0 {
		b.WriteString("\n" + theme.Selected.Render("Resources") + "\n")
		for _, r := range d.resources {
			b.WriteString(fmt.Sprintf("  • [%s] %s\n", r.ResourceType, r.URLOrPath))
		}
	}

	card := theme.Card.Render(strings.TrimRight(b.String(), "\n"))
	return lipgloss.NewStyle().PaddingLeft(2).Render(card)
}

func (d *LessonDetailScreen) Title() string {
	return "Lesson"
}
