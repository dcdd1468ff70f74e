// Package lesson implements the Bernoulli lesson as an explicit state-update
// loop: frontends turn input into an Action, Dispatch applies it to a State
// and returns a Frame describing what to re-render.
package lesson

import (
	"fmt"
	"strings"

	"github.com/example/bernoulli/pkg/models"
)

// Controller owns the immutable lesson content and evaluates actions against it
type Controller struct {
	lesson *models.Lesson
}

// New creates a controller over validated lesson content
func New(lesson *models.Lesson) *Controller {
	return &Controller{lesson: lesson}
}

// Lesson returns the content the controller was built with
func (c *Controller) Lesson() *models.Lesson {
	return c.lesson
}

// NewState returns the state of a fresh session
func (c *Controller) NewState() State {
	return State{
		Speed:   DefaultSpeed,
		Answers: make([]int, len(c.lesson.Quiz)),
	}
}

// Dispatch applies a to s. On error s is returned unchanged with an empty frame.
func (c *Controller) Dispatch(s State, a Action) (State, Frame, error) {
	switch a := a.(type) {
	case SpeedChanged:
		s.Speed = ClampSpeed(a.Speed)
		return s, c.speedFrame(s), nil

	case QuizAnswerSelected:
		q, err := c.question(a.Item)
		if err != nil {
			return s, Frame{}, err
		}
		if a.Option < 0 || a.Option >= len(q.Options) {
			return s, Frame{}, fmt.Errorf("%w: %d for question %d", ErrUnknownOption, a.Option, a.Item)
		}
		s = s.withAnswer(a.Item, a.Option)
		return s, Frame{Quiz: []QuizView{{Index: a.Item, Item: q, Selected: a.Option}}}, nil

	case QuizChecked:
		selected := s.Answer(a.Item)
		result, err := c.EvaluateQuiz(a.Item, selected)
		if err != nil {
			return s, Frame{}, err
		}
		return s, Frame{Feedback: &QuizFeedback{Index: a.Item, Selected: selected, Result: result}}, nil

	case ReflectionStarted:
		s.AwaitingReflection = true
		return s, Frame{ReflectionPrompt: c.lesson.Reflection.Prompt}, nil

	case ReflectionSubmitted:
		if !EvaluateReflection(a.Text).Accepted {
			return s, Frame{Reflection: &ReflectionFeedback{Message: c.lesson.Reflection.Empty}}, nil
		}
		s.AwaitingReflection = false
		return s, Frame{Reflection: &ReflectionFeedback{Accepted: true, Message: c.lesson.Reflection.Accepted}}, nil

	case FocusStrandChanged:
		focus, err := c.Focus(a.Strand)
		if err != nil {
			return s, Frame{}, err
		}
		s.Strand = a.Strand
		return s, Frame{Focus: &focus}, nil

	case NameEntered:
		s.Name = strings.TrimSpace(a.Name)
		return s, Frame{Greeting: c.greeting(s)}, nil

	case AvatarChosen:
		if a.Avatar < 0 || a.Avatar >= len(c.lesson.Avatars) {
			return s, Frame{}, fmt.Errorf("%w: %d", ErrUnknownAvatar, a.Avatar)
		}
		s.Avatar = a.Avatar
		return s, Frame{Greeting: c.greeting(s)}, nil

	case StandardSelected:
		if a.Standard < 0 || a.Standard >= len(c.lesson.Standards) {
			return s, Frame{}, fmt.Errorf("%w: %d", ErrUnknownStandard, a.Standard)
		}
		s.Standard = a.Standard
		std := c.lesson.Standards[a.Standard]
		return s, Frame{Standard: &std}, nil

	case ComfortLevelChanged:
		if a.Level < 0 || a.Level >= len(c.lesson.Levels) {
			return s, Frame{}, fmt.Errorf("%w: %d", ErrUnknownLevel, a.Level)
		}
		s.Level = a.Level
		level := c.lesson.Levels[a.Level]
		return s, Frame{Level: &level}, nil

	case StudyPlanRequested:
		plan, err := c.StudyPlan(s.Level)
		if err != nil {
			return s, Frame{}, err
		}
		return s, Frame{Plan: &plan}, nil

	default:
		return s, Frame{}, fmt.Errorf("unsupported action %T", a)
	}
}

// Render returns a frame with every section, for the first display of a session
func (c *Controller) Render(s State) Frame {
	f := c.speedFrame(s)

	if g := c.greeting(s); g.Text() != "" {
		f.Greeting = g
	}
	if s.Standard >= 0 && s.Standard < len(c.lesson.Standards) {
		std := c.lesson.Standards[s.Standard]
		f.Standard = &std
	}
	for i, q := range c.lesson.Quiz {
		f.Quiz = append(f.Quiz, QuizView{Index: i, Item: q, Selected: s.Answer(i)})
	}
	if focus, err := c.Focus(s.Strand); err == nil {
		f.Focus = &focus
	}
	if s.Level >= 0 && s.Level < len(c.lesson.Levels) {
		level := c.lesson.Levels[s.Level]
		f.Level = &level
	}
	return f
}

func (c *Controller) speedFrame(s State) Frame {
	chart := RenderChart(s.Speed)
	return Frame{
		Chart:   &chart,
		Summary: &SpeedSummary{Speed: s.Speed, Pressure: Pressure(float64(s.Speed))},
	}
}

func (c *Controller) greeting(s State) *Greeting {
	g := &Greeting{Name: s.Name}
	if s.Avatar >= 0 && s.Avatar < len(c.lesson.Avatars) {
		g.Avatar = c.lesson.Avatars[s.Avatar]
	}
	return g
}
