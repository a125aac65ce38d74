package homework

import "github.com/abhisek/teachmate/internal/llm"

// HomeworkSchema defines the JSON schema for homework generation.
var HomeworkSchema = &llm.Schema{
	Name:        "esl-homework",
	Description: "A personalized ESL homework assignment with warm-up, grammar and vocabulary exercises, and a writing task",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short title for the assignment (3-8 words)",
			},
			"warm_up": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-3 short warm-up questions reviewing the lesson topic",
			},
			"grammar_exercises": map[string]any{
				"type":        "array",
				"items":       exerciseSchema,
				"description": "1-2 exercises targeting the lesson's grammar focus",
			},
			"vocabulary_exercises": map[string]any{
				"type":        "array",
				"items":       exerciseSchema,
				"description": "1-2 exercises targeting the lesson's vocabulary focus",
			},
			"writing_task": map[string]any{
				"type":        "string",
				"description": "One short writing prompt (3-5 sentences expected from the student)",
			},
			"estimated_minutes": map[string]any{
				"type":        "integer",
				"description": "Estimated completion time in minutes (15-45)",
			},
		},
		"required": []any{
			"title", "warm_up", "grammar_exercises",
			"vocabulary_exercises", "writing_task", "estimated_minutes",
		},
		"additionalProperties": false,
	},
}

var exerciseSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"instructions": map[string]any{
			"type":        "string",
			"description": "One-sentence instructions for the exercise",
		},
		"items": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "3-6 exercise items (sentences to complete, questions to answer)",
		},
	},
	"required":             []any{"instructions", "items"},
	"additionalProperties": false,
}

// NotesSchema defines the JSON schema for teacher note drafting.
var NotesSchema = &llm.Schema{
	Name:        "teaching-notes",
	Description: "Drafted teacher notes and follow-up questions for the current activity",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"teacher_notes": map[string]any{
				"type":        "string",
				"description": "2-4 sentences of professional teaching notes based on the observations",
			},
			"follow_up_questions": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-4 questions the teacher could ask next to probe the student's weak points",
			},
		},
		"required":             []any{"teacher_notes", "follow_up_questions"},
		"additionalProperties": false,
	},
}
