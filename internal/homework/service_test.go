package homework

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhisek/teachmate/internal/llm"
)

func validHomeworkJSON() json.RawMessage {
	return json.RawMessage(`{
		"title": "Present Simple Review",
		"warm_up": [
			"What time do you usually wake up?",
			"What do you do first in the morning?"
		],
		"grammar_exercises": [
			{
				"instructions": "Complete each sentence with the correct form of the verb.",
				"items": [
					"She ___ (go) to work at 8am.",
					"He ___ (not/like) coffee.",
					"They ___ (have) lunch at noon."
				]
			}
		],
		"vocabulary_exercises": [
			{
				"instructions": "Use each routine verb in a sentence about your day.",
				"items": ["wake up", "get dressed", "commute"]
			}
		],
		"writing_task": "Write 3-5 sentences describing your typical morning.",
		"estimated_minutes": 25
	}`)
}

func sampleInput() HomeworkInput {
	return HomeworkInput{
		StudentName:  "Ana Silva",
		CourseName:   "General English A2",
		LessonTitle:  "My Morning",
		GrammarFocus: "Present simple",
		RecentNotes:  []string{"mixes up third person -s"},
	}
}

func TestGenerateHomework(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validHomeworkJSON()})
	svc := NewService(mock, DefaultConfig())

	hw, err := svc.GenerateHomework(t.Context(), sampleInput())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if hw.Title != "Present Simple Review" {
		t.Errorf("title = %q", hw.Title)
	}
	if len(hw.WarmUp) != 2 {
		t.Errorf("got %d warm-up questions, want 2", len(hw.WarmUp))
	}
	if len(hw.GrammarExercises) != 1 || len(hw.GrammarExercises[0].Items) != 3 {
		t.Errorf("grammar exercises = %+v", hw.GrammarExercises)
	}
	if hw.EstimatedMinutes != 25 {
		t.Errorf("estimated minutes = %d, want 25", hw.EstimatedMinutes)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "esl-homework" {
		t.Error("expected schema name 'esl-homework'")
	}
	if !strings.Contains(req.Messages[0].Content, "mixes up third person -s") {
		t.Error("teacher observations not included in prompt")
	}
}

func TestGenerateHomeworkProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.GenerateHomework(t.Context(), sampleInput()); err == nil {
		t.Fatal("expected error from provider")
	}
}

func TestSuggestNotes(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"teacher_notes": "Ana handled the warm-up confidently but dropped the third person -s throughout. Drill he/she forms with daily routine verbs next session.",
		"follow_up_questions": [
			"What does your sister do in the morning?",
			"When does your boss arrive at the office?"
		]
	}`)})
	svc := NewService(mock, DefaultConfig())

	sug, err := svc.SuggestNotes(t.Context(), NotesInput{
		ContextSummary: "Student: Ana Silva\nLesson: 1 - My Morning",
		Observations:   "dropped -s on he/she verbs",
	})
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if sug.TeacherNotes == "" {
		t.Error("expected drafted notes")
	}
	if len(sug.FollowUpQuestions) != 2 {
		t.Errorf("got %d follow-ups, want 2", len(sug.FollowUpQuestions))
	}

	req := mock.Calls[0]
	if !strings.Contains(req.Messages[0].Content, "Ana Silva") {
		t.Error("context summary not included in prompt")
	}
	if req.Schema == nil || req.Schema.Name != "teaching-notes" {
		t.Error("expected schema name 'teaching-notes'")
	}
}

func TestSaveMarkdown(t *testing.T) {
	hw := &Homework{
		Title:            "Present Simple Review",
		WarmUp:           []string{"What time do you wake up?"},
		GrammarExercises: []Exercise{{Instructions: "Fill the gap.", Items: []string{"She ___ (go) to work."}}},
		WritingTask:      "Describe your morning.",
		EstimatedMinutes: 25,
	}

	dir := t.TempDir()
	path, err := SaveMarkdown(hw, sampleInput(), dir)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	base := filepath.Base(path)
	if !strings.HasPrefix(base, "homework_ana_silva_") || !strings.HasSuffix(base, ".md") {
		t.Errorf("unexpected filename %q", base)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	content := string(data)
	for _, want := range []string{
		"# Present Simple Review",
		"**Student:** Ana Silva",
		"## Warm-up",
		"## Grammar",
		"## Writing",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("rendered markdown missing %q", want)
		}
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Ana Silva", "ana_silva"},
		{"  José  Álvarez ", "jos_lvarez"},
		{"O'Brien", "o_brien"},
		{"Mary-Jane Smith", "mary_jane_smith"},
	}
	for _, tt := range tests {
		if got := slug(tt.in); got != tt.want {
			t.Errorf("slug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
