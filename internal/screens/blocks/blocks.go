package blocks

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/teachmate/internal/catalog"
	"github.com/abhisek/teachmate/internal/homework"
	"github.com/abhisek/teachmate/internal/nav"
	"github.com/abhisek/teachmate/internal/router"
	"github.com/abhisek/teachmate/internal/screen"
	"github.com/abhisek/teachmate/internal/screens/blockdetail"
	"github.com/abhisek/teachmate/internal/ui/theme"
)

// BlocksScreen lists the activity blocks of the opened lesson, marking
// which ones already have a note record in this session.
type BlocksScreen struct {
	nav      *nav.Navigator
	catalog  *catalog.Catalog
	homework *homework.Service

	blocks []catalog.BlockListing
	cursor int
	err    error
}

var _ screen.Screen = (*BlocksScreen)(nil)

// New creates the block browser for the active lesson session.
func New(n *nav.Navigator, cat *catalog.Catalog, hw *homework.Service) *BlocksScreen {
	b := &BlocksScreen{nav: n, catalog: cat, homework: hw}
	st := n.State()
	if st.Lesson == nil || st.LessonRecord == nil {
		b.err = &nav.PreconditionError{Missing: nav.LevelLesson}
		return b
	}
	b.blocks, b.err = cat.BlocksForLesson(st.Lesson.ID, st.LessonRecord.ID)
	return b
}

func (b *BlocksScreen) Init() tea.Cmd {
	return nil
}

func (b *BlocksScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if b.cursor > 0 {
			b.cursor--
		}
	case "down", "j":
		if b.cursor < len(b.blocks)-1 {
			b.cursor++
		}
	case "enter":
		if len(b.blocks) == 0 {
			return b, nil
		}
		if _, err := b.nav.SelectBlock(b.blocks[b.cursor].ID); err != nil {
			b.err = err
			return b, nil
		}
		return b, func() tea.Msg {
			return router.PushScreenMsg{Screen: blockdetail.New(b.nav, b.homework)}
		}
	}

	return b, nil
}

func (b *BlocksScreen) View(width, height int) string {
	st := b.nav.State()

	var sections []string
	title := "Blocks"
	if st.Lesson != nil {
		title = fmt.Sprintf("Lesson %d: %s", st.Lesson.LessonNumber, st.Lesson.Title)
	}
	sections = append(sections, theme.Title.Width(width).Render(title))

	if b.err != nil {
		sections = append(sections, theme.ErrorText.Render("  "+b.err.Error()))
		return strings.Join(sections, "\n\n")
	}
	if len(b.blocks) == 0 {
		sections = append(sections, theme.Hint.Render("  This lesson has no blocks yet."))
		return strings.Join(sections, "\n\n")
	}

	var list strings.Builder
	for i, blk := range b.blocks {
		status := theme.NotStarted.Render("· not started")
		if blk.Status == "Opened" {
			status = theme.Completed.Render("✎ opened")
		}
		line := fmt.Sprintf("Block %d: %s  %s", blk.BlockNumber, blk.Title, status)
		if blk.ActivityType != nil && *blk.ActivityType != "" {
			line = fmt.Sprintf("Block %d: %s (%s)  %s", blk.BlockNumber, blk.Title, *blk.ActivityType, status)
		}
		if i == b.cursor {
			list.WriteString(theme.Selected.Render("  ▸ ") + theme.Selected.Render(line) + "\n")
		} else {
			list.WriteString("    " + theme.Unselected.Render(line) + "\n")
		}
	}
	sections = append(sections, list.String())

	return strings.Join(sections, "\n\n")
}

func (b *BlocksScreen) Title() string {
	return "Blocks"
}
