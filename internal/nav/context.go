package nav

import (
	"fmt"
	"strings"
)

// ContextSummary renders the current selection as a plain-text briefing
// for an assistant prompt. Only populated levels and non-empty fields
// appear, one per line.
func (s State) ContextSummary() string {
	var parts []string
	add := func(label, value string) {
		parts = append(parts, fmt.Sprintf("%s: %s", label, value))
	}
	addOpt := func(label string, value *string) {
		if value != nil && *value != "" {
			add(label, *value)
		}
	}

	if s.Student != nil {
		add("Student", s.Student.Name)
		add("Email", s.Student.Email)
	}
	if s.Course != nil {
		add("Course", s.Course.Name)
		if s.Course.Description != "" {
			add("Description", s.Course.Description)
		}
	}
	if s.Unit != nil {
		add("Unit", fmt.Sprintf("%d - %s", s.Unit.UnitNumber, s.Unit.Title))
		addOpt("Description", s.Unit.Description)
	}
	if s.Lesson != nil {
		add("Lesson", fmt.Sprintf("%d - %s", s.Lesson.LessonNumber, s.Lesson.Title))
		addOpt("Context", s.Lesson.Context)
		addOpt("Grammar Focus", s.Lesson.GrammarFocus)
		addOpt("Vocabulary Focus", s.Lesson.VocabularyFocus)
	}
	if s.Block != nil {
		add("Block", fmt.Sprintf("%d - %s", s.Block.BlockNumber, s.Block.Title))
		addOpt("Description", s.Block.Description)
		addOpt("Activity Type", s.Block.ActivityType)
		addOpt("Content", s.Block.Content)
	}
	if s.BlockRecord != nil {
		addOpt("Student Speech Notes", s.BlockRecord.StudentSpeechNotes)
		addOpt("Teacher Notes", s.BlockRecord.TeacherNotes)
		addOpt("Student Questions", s.BlockRecord.StudentQuestions)
	}

	if len(parts) == 0 {
		return "No context available."
	}
	return strings.Join(parts, "\n")
}
