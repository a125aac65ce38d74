package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/abhisek/teachmate/internal/catalog"
	"github.com/abhisek/teachmate/internal/homework"
	"github.com/abhisek/teachmate/internal/llm"
	"github.com/abhisek/teachmate/internal/progress"
	"github.com/abhisek/teachmate/internal/store"
	"github.com/spf13/cobra"
)

var homeworkCmd = &cobra.Command{
	Use:   "homework <student-id> <lesson-id>",
	Short: "Generate a personalized homework assignment",
	Long: `Generate homework for a student and lesson using the configured LLM
provider, drawing on the lesson's focus areas and any notes taken during
the teaching session. The assignment is saved as a markdown file.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		studentID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid student id %q: %w", args[0], err)
		}
		lessonID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid lesson id %q: %w", args[1], err)
		}
		outDir, _ := cmd.Flags().GetString("out")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		cat := catalog.New(st)
		student, err := cat.Student(studentID)
		if err != nil {
			return err
		}
		lesson, err := cat.Lesson(lessonID)
		if err != nil {
			return err
		}

		input := homework.HomeworkInput{
			StudentName: student.Name,
			CourseName:  student.CourseName,
			LessonTitle: lesson.Title,
		}
		if lesson.GrammarFocus != nil {
			input.GrammarFocus = *lesson.GrammarFocus
		}
		if lesson.VocabularyFocus != nil {
			input.VocabularyFocus = *lesson.VocabularyFocus
		}
		if lesson.Context != nil {
			input.LessonContext = *lesson.Context
		}

		records := progress.New(st)
		rec, err := records.LessonRecord(studentID, lessonID)
		switch {
		case errors.Is(err, progress.ErrRecordGone):
			// No session yet; generate from the lesson alone.
		case err != nil:
			return err
		default:
			input.Score = rec.Score
			if rec.Feedback != nil {
				input.Feedback = *rec.Feedback
			}
			blockRecs, err := records.BlockRecordsForLessonRecord(rec.ID)
			if err != nil {
				return err
			}
			for _, br := range blockRecs {
				for _, p := range []*string{br.StudentSpeechNotes, br.TeacherNotes, br.StudentQuestions} {
					if p != nil && *p != "" {
						input.RecentNotes = append(input.RecentNotes, *p)
					}
				}
			}
		}

		ctx := cmd.Context()
		provider, err := llm.NewProviderFromEnv(ctx, st.RequestLog())
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}
		svc := homework.NewService(provider, homework.DefaultConfig())

		fmt.Printf("Generating homework for %s — %s...\n", student.Name, lesson.Title)
		hw, err := svc.GenerateHomework(ctx, input)
		if err != nil {
			return err
		}

		if outDir == "" {
			outDir, err = homework.DefaultSaveDir()
			if err != nil {
				return err
			}
		}
		path, err := homework.SaveMarkdown(hw, input, outDir)
		if err != nil {
			return err
		}
		fmt.Println("Saved to", path)
		return nil
	},
}

func init() {
	homeworkCmd.Flags().String("out", "", "Output directory (default ~/Documents/teachmate)")
}
