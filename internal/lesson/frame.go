package lesson

import "github.com/example/bernoulli/pkg/models"

// Greeting is the personalized welcome line
type Greeting struct {
	Name   string
	Avatar string
}

// Text returns the greeting, or "" while no name is set
func (g Greeting) Text() string {
	if g.Name == "" {
		return ""
	}
	return "Welcome, " + g.Name + " the " + g.Avatar + "! Let's begin exploring fluid dynamics."
}

// Frame is a render description: the sections that need re-rendering after
// an action. Nil or empty fields are unchanged.
type Frame struct {
	Greeting         *Greeting
	Standard         *models.Standard
	Chart            *ChartSpec
	Summary          *SpeedSummary
	Quiz             []QuizView
	Feedback         *QuizFeedback
	ReflectionPrompt string
	Reflection       *ReflectionFeedback
	Focus            *FocusView
	Level            *models.ComfortLevel
	Plan             *PlanView
}

// Empty reports whether nothing needs re-rendering
func (f Frame) Empty() bool {
	return f.Greeting == nil && f.Standard == nil && f.Chart == nil && f.Summary == nil &&
		len(f.Quiz) == 0 && f.Feedback == nil && f.ReflectionPrompt == "" &&
		f.Reflection == nil && f.Focus == nil && f.Level == nil && f.Plan == nil
}
