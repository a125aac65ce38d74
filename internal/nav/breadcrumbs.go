package nav

import "fmt"

// Crumb is one entry in the breadcrumb trail.
type Crumb struct {
	Level Level
	Label string
}

// Breadcrumbs derives the ordered trail for the current selection, from
// Home down to the deepest populated level. Purely a view over State.
func (s State) Breadcrumbs() []Crumb {
	crumbs := []Crumb{{Level: LevelHome, Label: "Home"}}
	if s.Student != nil {
		label := s.Student.Name
		if s.Course != nil {
			label = fmt.Sprintf("%s (%s)", s.Student.Name, s.Course.Name)
		}
		crumbs = append(crumbs, Crumb{Level: LevelStudent, Label: label})
	}
	if s.Unit != nil {
		crumbs = append(crumbs, Crumb{
			Level: LevelUnit,
			Label: fmt.Sprintf("Unit %d: %s", s.Unit.UnitNumber, s.Unit.Title),
		})
	}
	if s.Lesson != nil {
		crumbs = append(crumbs, Crumb{
			Level: LevelLesson,
			Label: fmt.Sprintf("Lesson %d: %s", s.Lesson.LessonNumber, s.Lesson.Title),
		})
	}
	if s.Block != nil {
		crumbs = append(crumbs, Crumb{
			Level: LevelBlock,
			Label: fmt.Sprintf("Block %d: %s", s.Block.BlockNumber, s.Block.Title),
		})
	}
	return crumbs
}

// Breadcrumbs returns the trail for the navigator's current state.
func (n *Navigator) Breadcrumbs() []Crumb {
	return n.state.Breadcrumbs()
}
