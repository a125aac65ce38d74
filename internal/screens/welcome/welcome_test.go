package welcome

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/teachmate/internal/router"
	"github.com/abhisek/teachmate/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

func TestPromptAppearsAfterDelay(t *testing.T) {
	w := New(func() screen.Screen { return &stubScreen{} })

	if strings.Contains(w.View(80, 24), "Press any key") {
		t.Error("prompt should be hidden before the delay elapses")
	}

	for i := 0; i < 6; i++ {
		w.Update(tickMsg{})
	}

	if !strings.Contains(w.View(80, 24), "Press any key") {
		t.Error("prompt should be visible after the delay")
	}
}

func TestKeyPressTransitionsToHome(t *testing.T) {
	home := &stubScreen{}
	w := New(func() screen.Screen { return home })

	_, cmd := w.Update(tea.KeyPressMsg{})
	if cmd == nil {
		t.Fatal("expected a transition command")
	}

	msg := cmd()
	replace, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if replace.Screen != home {
		t.Error("expected transition to the factory-produced screen")
	}
}

func TestTransitionHappensOnce(t *testing.T) {
	w := New(func() screen.Screen { return &stubScreen{} })

	_, first := w.Update(tea.KeyPressMsg{})
	if first == nil {
		t.Fatal("expected a transition command on first key press")
	}
	_, second := w.Update(tea.KeyPressMsg{})
	if second != nil {
		t.Error("expected no command on repeated key press")
	}
}
