package complete

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/teachmate/internal/nav"
	"github.com/abhisek/teachmate/internal/router"
	"github.com/abhisek/teachmate/internal/screen"
	"github.com/abhisek/teachmate/internal/ui/components"
	"github.com/abhisek/teachmate/internal/ui/theme"
)

// CompleteScreen marks the opened lesson complete, with an optional
// score (0-100) and feedback line. Both fields may be left blank.
type CompleteScreen struct {
	nav *nav.Navigator

	score    components.TextInput
	feedback components.TextInput
	save     components.Button
	focus    int // 0 = score, 1 = feedback, 2 = save

	status string
	err    error
}

var _ screen.Screen = (*CompleteScreen)(nil)

// New creates the completion form for the active lesson session.
func New(n *nav.Navigator) *CompleteScreen {
	c := &CompleteScreen{nav: n}
	if n.State().LessonRecord == nil {
		c.err = &nav.PreconditionError{Missing: nav.LevelLesson}
		return c
	}

	c.score = components.NewTextInput("0-100, blank to skip", true, 3)
	c.feedback = components.NewTextInput("How did it go?", false, 300)
	c.feedback.Model.Blur()
	c.save = components.NewButton("Save", false, nil)

	rec := n.State().LessonRecord
	if rec.Score != nil {
		c.score.Model.SetValue(fmt.Sprintf("%d", *rec.Score))
	}
	if rec.Feedback != nil {
		c.feedback.Model.SetValue(*rec.Feedback)
	}
	return c
}

func (c *CompleteScreen) Init() tea.Cmd {
	if c.err != nil {
		return nil
	}
	return c.score.Init()
}

func (c *CompleteScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if c.err != nil {
		return c, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab":
			c.setFocus((c.focus + 1) % 3)
			return c, nil
		case "shift+tab":
			c.setFocus((c.focus + 2) % 3)
			return c, nil
		case "enter":
			if c.focus < 2 {
				c.setFocus(c.focus + 1)
				return c, nil
			}
			return c.submit()
		}
	}

	var cmd tea.Cmd
	switch c.focus {
	case 0:
		c.score, cmd = c.score.Update(msg)
	case 1:
		c.feedback, cmd = c.feedback.Update(msg)
	}
	return c, cmd
}

func (c *CompleteScreen) setFocus(focus int) {
	c.focus = focus
	c.score.Model.Blur()
	c.feedback.Model.Blur()
	c.save.Active = false
	switch focus {
	case 0:
		c.score.Model.Focus()
	case 1:
		c.feedback.Model.Focus()
	case 2:
		c.save.Active = true
	}
}

func (c *CompleteScreen) submit() (screen.Screen, tea.Cmd) {
	var score *int
	if v := strings.TrimSpace(c.score.Value()); v != "" {
		n, err := c.score.NumericValue()
		if err != nil || n < 0 || n > 100 {
			c.status = "Score must be between 0 and 100."
			return c, nil
		}
		score = &n
	}

	var feedback *string
	if v := strings.TrimSpace(c.feedback.Value()); v != "" {
		feedback = &v
	}

	if _, err := c.nav.CompleteLesson(score, feedback); err != nil {
		c.status = "Could not complete lesson: " + err.Error()
		return c, nil
	}
	return c, func() tea.Msg { return router.PopScreenMsg{} }
}

func (c *CompleteScreen) View(width, height int) string {
	if c.err != nil {
		return theme.ErrorText.Render("  " + c.err.Error())
	}

	st := c.nav.State()

	var sections []string
	sections = append(sections, theme.Title.Width(width).Render(
		fmt.Sprintf("Complete Lesson %d: %s", st.Lesson.LessonNumber, st.Lesson.Title)))

	if st.LessonRecord.Completed() {
		sections = append(sections, theme.Subtitle.Width(width).Render(
			"Already completed "+*st.LessonRecord.CompletionDate+" — saving again refreshes the date."))
	}

	var form strings.Builder
	form.WriteString(c.fieldLabel("Score", 0) + "\n  " + c.score.View() + "\n\n")
	form.WriteString(c.fieldLabel("Feedback", 1) + "\n  " + c.feedback.View() + "\n\n")
	form.WriteString("  " + c.save.View() + "\n")
	sections = append(sections, form.String())

	sections = append(sections, theme.Hint.Render("  tab switches fields · enter on Save records completion · esc cancels"))

	if c.status != "" {
		sections = append(sections, theme.ErrorText.Render("  "+c.status))
	}

	return strings.Join(sections, "\n\n")
}

func (c *CompleteScreen) fieldLabel(label string, idx int) string {
	if c.focus == idx {
		return theme.Selected.Render("  " + label)
	}
	return theme.Unselected.Render("  " + label)
}

func (c *CompleteScreen) Title() string {
	return "Complete Lesson"
}
