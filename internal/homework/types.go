package homework

// Homework is an LLM-generated homework assignment personalized to one
// student and lesson.
type Homework struct {
	Title               string
	WarmUp              []string
	GrammarExercises    []Exercise
	VocabularyExercises []Exercise
	WritingTask         string
	EstimatedMinutes    int
}

// Exercise is one instructed group of homework items.
type Exercise struct {
	Instructions string
	Items        []string
}

// HomeworkInput holds all context needed to generate homework.
type HomeworkInput struct {
	StudentName     string
	CourseName      string
	LessonTitle     string
	GrammarFocus    string
	VocabularyFocus string
	LessonContext   string

	// RecentNotes are teacher observations from the lesson's blocks,
	// used to target the student's actual weak points.
	RecentNotes []string

	// Score and Feedback come from the lesson record when the lesson
	// has been completed.
	Score    *int
	Feedback string
}

// NoteSuggestion is LLM-drafted assistance for the teacher's notes.
type NoteSuggestion struct {
	TeacherNotes      string
	FollowUpQuestions []string
}

// NotesInput holds the context for drafting teacher notes.
type NotesInput struct {
	// ContextSummary is the current-selection briefing, one field per
	// line, as produced by the navigation state.
	ContextSummary string

	// Observations is what the teacher noticed and wants expanded.
	Observations string
}
