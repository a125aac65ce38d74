package blockdetail

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/teachmate/internal/homework"
	"github.com/abhisek/teachmate/internal/nav"
	"github.com/abhisek/teachmate/internal/progress"
	"github.com/abhisek/teachmate/internal/screen"
	"github.com/abhisek/teachmate/internal/ui/components"
	"github.com/abhisek/teachmate/internal/ui/theme"
)

// noteField identifies which of the three block note fields is being
// edited.
type noteField int

const (
	fieldSpeech noteField = iota
	fieldTeacher
	fieldQuestions
)

func (f noteField) label() string {
	switch f {
	case fieldSpeech:
		return "Student Speech Notes"
	case fieldTeacher:
		return "Teacher Notes"
	default:
		return "Student Questions"
	}
}

// BlockDetailScreen shows one activity block's content and lets the
// teacher update session notes, optionally with an AI-drafted starting
// point.
type BlockDetailScreen struct {
	nav      *nav.Navigator
	homework *homework.Service

	editing    bool
	field      noteField
	input      components.TextInput
	suggesting bool
	suggestion *homework.NoteSuggestion
	cursor     int
	status     string
	err        error
}

var _ screen.Screen = (*BlockDetailScreen)(nil)

// New creates the detail screen for the currently opened block.
func New(n *nav.Navigator, hw *homework.Service) *BlockDetailScreen {
	d := &BlockDetailScreen{nav: n, homework: hw}
	if n.State().BlockRecord == nil {
		d.err = &nav.PreconditionError{Missing: nav.LevelBlock}
	}
	return d
}

func (d *BlockDetailScreen) Init() tea.Cmd {
	return nil
}

type suggestionMsg struct {
	suggestion *homework.NoteSuggestion
	err        error
}

func (d *BlockDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if d.err != nil {
		return d, nil
	}

	if sm, ok := msg.(suggestionMsg); ok {
		d.suggesting = false
		if sm.err != nil {
			d.status = "Suggestion failed: " + sm.err.Error()
		} else {
			d.suggestion = sm.suggestion
			d.status = "Suggestion ready — press a to apply it to teacher notes."
		}
		return d, nil
	}

	if d.editing {
		return d.updateEditing(msg)
	}
	return d.updateViewing(msg)
}

func (d *BlockDetailScreen) updateViewing(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if d.cursor > 0 {
			d.cursor--
		}
	case "down", "j":
		if d.cursor < 2 {
			d.cursor++
		}
	case "enter", "e":
		d.startEditing(noteField(d.cursor))
		return d, d.input.Init()
	case "s":
		if d.homework == nil {
			d.status = "AI assistance is not configured."
			return d, nil
		}
		if d.suggesting {
			return d, nil
		}
		d.suggesting = true
		d.status = "Drafting notes..."
		return d, d.suggestCmd()
	case "a":
		if d.suggestion == nil {
			return d, nil
		}
		notes := d.suggestion.TeacherNotes
		if _, err := d.nav.UpdateBlockNotes(progress.NoteFields{TeacherNotes: &notes}); err != nil {
			d.status = "Save failed: " + err.Error()
		} else {
			d.status = "Teacher notes updated from suggestion."
			d.suggestion = nil
		}
	}

	return d, nil
}

func (d *BlockDetailScreen) startEditing(f noteField) {
	d.editing = true
	d.field = f
	d.input = components.NewTextInput("Type your notes", false, 500)
	d.input.Model.SetValue(currentValue(d.nav.State().BlockRecord, f))
	d.input.Model.CursorEnd()
	d.status = ""
}

func currentValue(rec *progress.BlockRecord, f noteField) string {
	var p *string
	switch f {
	case fieldSpeech:
		p = rec.StudentSpeechNotes
	case fieldTeacher:
		p = rec.TeacherNotes
	default:
		p = rec.StudentQuestions
	}
	if p == nil {
		return ""
	}
	return *p
}

func (d *BlockDetailScreen) updateEditing(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			value := d.input.Value()
			fields := progress.NoteFields{}
			switch d.field {
			case fieldSpeech:
				fields.StudentSpeechNotes = &value
			case fieldTeacher:
				fields.TeacherNotes = &value
			default:
				fields.StudentQuestions = &value
			}
			d.editing = false
			if _, err := d.nav.UpdateBlockNotes(fields); err != nil {
				d.status = "Save failed: " + err.Error()
			} else {
				d.status = d.field.label() + " saved."
			}
			return d, nil
		case "esc":
			d.editing = false
			d.status = "Edit cancelled."
			return d, nil
		}
	}

	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func (d *BlockDetailScreen) suggestCmd() tea.Cmd {
	summary := d.nav.State().ContextSummary()
	observations := currentValue(d.nav.State().BlockRecord, fieldSpeech)
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		sug, err := d.homework.SuggestNotes(ctx, homework.NotesInput{
			ContextSummary: summary,
			Observations:   observations,
		})
		return suggestionMsg{suggestion: sug, err: err}
	}
}

func (d *BlockDetailScreen) View(width, height int) string {
	if d.err != nil {
		return theme.ErrorText.Render("  " + d.err.Error())
	}

	st := d.nav.State()
	block := st.Block
	rec := st.BlockRecord

	var sections []string
	sections = append(sections, theme.Title.Width(width).Render(
		fmt.Sprintf("Block %d: %s", block.BlockNumber, block.Title)))

	var info strings.Builder
	if block.ActivityType != nil && *block.ActivityType != "" {
		info.WriteString("Activity  " + *block.ActivityType + "\n")
	}
	if block.Content != nil && *block.Content != "" {
		info.WriteString(theme.Body.Render(*block.Content) + "\n")
	}
	info.WriteString(theme.Hint.Render("Session opened " + rec.CreatedAt.Local().Format("2006-01-02 15:04")))
	sections = append(sections, lipgloss.NewStyle().PaddingLeft(2).Render(theme.Card.Render(strings.TrimRight(info.String(), "\n"))))

	if d.editing {
		sections = append(sections,
			"  "+theme.Selected.Render(d.field.label())+"\n  "+d.input.View()+"\n  "+
				theme.Hint.Render("enter to save, esc to cancel"))
	} else {
		sections = append(sections, d.renderNotes())
		sections = append(sections, theme.Hint.Render("  enter/e edit · s suggest with AI"))
	}

	if d.suggestion != nil {
		sections = append(sections, d.renderSuggestion(width))
	}
	if d.status != "" {
		sections = append(sections, theme.Hint.Render("  "+d.status))
	}

	return strings.Join(sections, "\n\n")
}

func (d *BlockDetailScreen) renderNotes() string {
	rec := d.nav.State().BlockRecord

	var b strings.Builder
	for i := 0; i < 3; i++ {
		f := noteField(i)
		value := currentValue(rec, f)
		if value == "" {
			value = theme.NotStarted.Render("(empty)")
		}
		line := fmt.Sprintf("%-22s %s", f.label(), value)
		if i == d.cursor {
			b.WriteString(theme.Selected.Render("  ▸ "+line) + "\n")
		} else {
			b.WriteString(theme.Unselected.Render("    "+line) + "\n")
		}
	}
	return b.String()
}

func (d *BlockDetailScreen) renderSuggestion(width int) string {
	var b strings.Builder
	b.WriteString(theme.Selected.Render("Suggested teacher notes") + "\n")
	b.WriteString(theme.Body.Render(d.suggestion.TeacherNotes) + "\n")
	if len(d.suggestion.FollowUpQuestions) > 0 {
		b.WriteString("\n" + theme.Selected.Render("Follow-up questions") + "\n")
		for _, q := range d.suggestion.FollowUpQuestions {
			b.WriteString("  • " + q + "\n")
		}
	}
	return lipgloss.NewStyle().PaddingLeft(2).Render(theme.Card.Render(strings.TrimRight(b.String(), "\n")))
}

// HandlesEsc claims esc while a note edit is in progress so it cancels
// the edit instead of leaving the screen.
func (d *BlockDetailScreen) HandlesEsc() bool {
	return d.editing
}

func (d *BlockDetailScreen) Title() string {
	return "Block"
}
