package homework

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/teachmate/internal/homework"
	"github.com/abhisek/teachmate/internal/nav"
	"github.com/abhisek/teachmate/internal/screen"
	"github.com/abhisek/teachmate/internal/ui/theme"
)

// HomeworkScreen generates a personalized homework assignment for the
// opened lesson and saves it as markdown.
type HomeworkScreen struct {
	nav     *nav.Navigator
	service *homework.Service

	generating bool
	hw         *homework.Homework
	input      homework.HomeworkInput
	savedPath  string
	status     string
	err        error
}

var _ screen.Screen = (*HomeworkScreen)(nil)

// New creates the homework screen for the active lesson session.
func New(n *nav.Navigator, svc *homework.Service) *HomeworkScreen {
	h := &HomeworkScreen{nav: n, service: svc}
	if n.State().Lesson == nil {
		h.err = &nav.PreconditionError{Missing: nav.LevelLesson}
	}
	if svc == nil {
		h.err = fmt.Errorf("AI assistance is not configured (set TEACHMATE_LLM_PROVIDER)")
	}
	return h
}

type generatedMsg struct {
	hw  *homework.Homework
	err error
}

func (h *HomeworkScreen) Init() tea.Cmd {
	if h.err != nil {
		return nil
	}
	h.generating = true
	return h.generateCmd()
}

func (h *HomeworkScreen) generateCmd() tea.Cmd {
	st := h.nav.State()

	input := homework.HomeworkInput{
		StudentName: st.Student.Name,
		CourseName:  st.Course.Name,
		LessonTitle: st.Lesson.Title,
	}
	if st.Lesson.GrammarFocus != nil {
		input.GrammarFocus = *st.Lesson.GrammarFocus
	}
	if st.Lesson.VocabularyFocus != nil {
		input.VocabularyFocus = *st.Lesson.VocabularyFocus
	}
	if st.Lesson.Context != nil {
		input.LessonContext = *st.Lesson.Context
	}
	if st.LessonRecord != nil {
		input.Score = st.LessonRecord.Score
		if st.LessonRecord.Feedback != nil {
			input.Feedback = *st.LessonRecord.Feedback
		}
	}
	if notes, err := h.nav.SessionNotes(); err == nil {
		input.RecentNotes = notes
	}
	h.input = input

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
		defer cancel()
		hw, err := h.service.GenerateHomework(ctx, input)
		return generatedMsg{hw: hw, err: err}
	}
}

func (h *HomeworkScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if gm, ok := msg.(generatedMsg); ok {
		h.generating = false
		if gm.err != nil {
			h.status = "Generation failed: " + gm.err.Error()
		} else {
			h.hw = gm.hw
			h.status = "Press s to save as markdown, r to regenerate."
		}
		return h, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || h.err != nil {
		return h, nil
	}

	switch kmsg.String() {
	case "s":
		if h.hw == nil {
			return h, nil
		}
		dir, err := homework.DefaultSaveDir()
		if err != nil {
			h.status = "Save failed: " + err.Error()
			return h, nil
		}
		path, err := homework.SaveMarkdown(h.hw, h.input, dir)
		if err != nil {
			h.status = "Save failed: " + err.Error()
			return h, nil
		}
		h.savedPath = path
		h.status = "Saved to " + path
	case "r":
		if h.generating {
			return h, nil
		}
		h.hw = nil
		h.generating = true
		h.status = ""
		return h, h.generateCmd()
	}

	return h, nil
}

func (h *HomeworkScreen) View(width, height int) string {
	var sections []string
	sections = append(sections, theme.Title.Width(width).Render("Homework"))

	if h.err != nil {
		sections = append(sections, theme.ErrorText.Render("  "+h.err.Error()))
		return strings.Join(sections, "\n\n")
	}
	if h.generating {
		sections = append(sections, theme.Hint.Render("  Generating homework for "+h.nav.State().Student.Name+"..."))
		return strings.Join(sections, "\n\n")
	}

	if h.hw != nil {
		sections = append(sections, h.renderHomework())
	}
	if h.status != "" {
		sections = append(sections, theme.Hint.Render("  "+h.status))
	}

	return strings.Join(sections, "\n\n")
}

func (h *HomeworkScreen) renderHomework() string {
	hw := h.hw

	var b strings.Builder
	b.WriteString(theme.Selected.Render(hw.Title) + "\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("~%d minutes", hw.EstimatedMinutes)) + "\n")

	if len(hw.WarmUp) > 0 {
		b.WriteString("\n" + theme.Selected.Render("Warm-up") + "\n")
		for _, w := range hw.WarmUp {
			b.WriteString("  • " + w + "\n")
		}
	}
	writeExercises(&b, "Grammar", hw.GrammarExercises)
	writeExercises(&b, "Vocabulary", hw.VocabularyExercises)
	if hw.WritingTask != "" {
		b.WriteString("\n" + theme.Selected.Render("Writing task") + "\n")
		b.WriteString("  " + hw.WritingTask + "\n")
	}

	return lipgloss.NewStyle().PaddingLeft(2).Render(theme.Card.Render(strings.TrimRight(b.String(), "\n")))
}

func writeExercises(b *strings.Builder, heading string, exercises []homework.Exercise) {
	if len(exercises) == 0 {
		return
	}
	b.WriteString("\n" + theme.Selected.Render(heading) + "\n")
	for _, ex := range exercises {
		b.WriteString("  " + ex.Instructions + "\n")
		for i, item := range ex.Items {
			b.WriteString(fmt.Sprintf("    %d. %s\n", i+1, item))
		}
	}
}

func (h *HomeworkScreen) Title() string {
	return "Homework"
}
