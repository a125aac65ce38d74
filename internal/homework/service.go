package homework

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/teachmate/internal/llm"
)

// Service generates homework assignments and drafts teaching notes.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a homework generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type homeworkOutput struct {
	Title               string           `json:"title"`
	WarmUp              []string         `json:"warm_up"`
	GrammarExercises    []exerciseOutput `json:"grammar_exercises"`
	VocabularyExercises []exerciseOutput `json:"vocabulary_exercises"`
	WritingTask         string           `json:"writing_task"`
	EstimatedMinutes    int              `json:"estimated_minutes"`
}

type exerciseOutput struct {
	Instructions string   `json:"instructions"`
	Items        []string `json:"items"`
}

// GenerateHomework produces a personalized assignment for the given
// student and lesson context.
func (s *Service) GenerateHomework(ctx context.Context, input HomeworkInput) (*Homework, error) {
	ctx = llm.WithPurpose(ctx, "homework")

	req := llm.Request{
		System: homeworkSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildHomeworkUserMessage(input)},
		},
		Schema:      HomeworkSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("homework generation: %w", err)
	}

	var out homeworkOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse homework response: %w", err)
	}

	hw := &Homework{
		Title:            out.Title,
		WarmUp:           out.WarmUp,
		WritingTask:      out.WritingTask,
		EstimatedMinutes: out.EstimatedMinutes,
	}
	for _, e := range out.GrammarExercises {
		hw.GrammarExercises = append(hw.GrammarExercises, Exercise{
			Instructions: e.Instructions,
			Items:        e.Items,
		})
	}
	for _, e := range out.VocabularyExercises {
		hw.VocabularyExercises = append(hw.VocabularyExercises, Exercise{
			Instructions: e.Instructions,
			Items:        e.Items,
		})
	}
	return hw, nil
}

type notesOutput struct {
	TeacherNotes      string   `json:"teacher_notes"`
	FollowUpQuestions []string `json:"follow_up_questions"`
}

// SuggestNotes drafts teacher notes from rough observations and the
// current selection context.
func (s *Service) SuggestNotes(ctx context.Context, input NotesInput) (*NoteSuggestion, error) {
	ctx = llm.WithPurpose(ctx, "teaching-notes")

	req := llm.Request{
		System: notesSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildNotesUserMessage(input)},
		},
		Schema:      NotesSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("note drafting: %w", err)
	}

	var out notesOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse notes response: %w", err)
	}

	return &NoteSuggestion{
		TeacherNotes:      out.TeacherNotes,
		FollowUpQuestions: out.FollowUpQuestions,
	}, nil
}
