package homework

import (
	"fmt"
	"strings"
)

const homeworkSystemPrompt = `You are an experienced ESL teacher preparing homework for an adult student. Assignments must be practical, level-appropriate, and anchored in the lesson the student just took.`

func buildHomeworkUserMessage(input HomeworkInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Student: %s\n", input.StudentName))
	b.WriteString(fmt.Sprintf("Course: %s\n", input.CourseName))
	b.WriteString(fmt.Sprintf("Lesson: %s\n", input.LessonTitle))
	if input.GrammarFocus != "" {
		b.WriteString(fmt.Sprintf("Grammar Focus: %s\n", input.GrammarFocus))
	}
	if input.VocabularyFocus != "" {
		b.WriteString(fmt.Sprintf("Vocabulary Focus: %s\n", input.VocabularyFocus))
	}
	if input.LessonContext != "" {
		b.WriteString(fmt.Sprintf("Lesson Context: %s\n", input.LessonContext))
	}
	if input.Score != nil {
		b.WriteString(fmt.Sprintf("Lesson Score: %d/100\n", *input.Score))
	}
	if input.Feedback != "" {
		b.WriteString(fmt.Sprintf("Lesson Feedback: %s\n", input.Feedback))
	}

	b.WriteString("\nTeacher Observations:\n")
	if len(input.RecentNotes) == 0 {
		b.WriteString("None\n")
	} else {
		for _, n := range input.RecentNotes {
			b.WriteString(fmt.Sprintf("- %s\n", n))
		}
	}

	b.WriteString(`
Instructions:
Create a homework assignment that:
1. Opens with 2-3 warm-up questions reviewing the lesson topic in the student's own context.
2. Includes 1-2 grammar exercises targeting the grammar focus, prioritizing mistakes from the teacher observations above.
3. Includes 1-2 vocabulary exercises using the lesson's vocabulary in realistic sentences.
4. Ends with one short writing task (the student should write 3-5 sentences).
5. Should take 15-45 minutes in total. Use plain text, no markdown formatting inside items.`)

	return b.String()
}

const notesSystemPrompt = `You are assisting an ESL teacher during a live lesson. Turn their rough observations into concise, professional teaching notes they can keep in the student's record.`

func buildNotesUserMessage(input NotesInput) string {
	var b strings.Builder

	if input.ContextSummary != "" {
		b.WriteString("Current Lesson Context:\n")
		b.WriteString(input.ContextSummary)
		b.WriteString("\n\n")
	}

	b.WriteString("Teacher's Observations:\n")
	if input.Observations == "" {
		b.WriteString("None provided\n")
	} else {
		b.WriteString(input.Observations)
		b.WriteString("\n")
	}

	b.WriteString(`
Instructions:
1. Write 2-4 sentences of teaching notes: what the student handled well, what needs work, and one concrete drill or correction to apply.
2. Suggest 2-4 follow-up questions the teacher could ask to probe the weak points.
Keep everything specific to the context above. Do not invent details that are not supported by the observations.`)

	return b.String()
}
