package lesson

import (
	"errors"
	"fmt"

	"github.com/example/bernoulli/pkg/models"
)

var (
	// ErrUnknownStrand is returned for a strand index outside the curriculum
	ErrUnknownStrand = errors.New("unknown curriculum strand")
	// ErrUnknownLevel is returned for a comfort level index outside the plans
	ErrUnknownLevel = errors.New("unknown comfort level")
	// ErrUnknownAvatar is returned for an avatar index outside the choices
	ErrUnknownAvatar = errors.New("unknown avatar")
	// ErrUnknownStandard is returned for a standard index outside the alignment list
	ErrUnknownStandard = errors.New("unknown standard")
)

// FocusView is the tailored recommendation for a curriculum strand
type FocusView struct {
	Index    int
	Strand   models.Strand
	Emphasis models.Emphasis
	Practice []string
}

// Heading returns the focus callout text
func (f FocusView) Heading() string {
	return fmt.Sprintf("🎯 **Focus: %s** - %s", f.Strand.Focus, f.Strand.Blurb)
}

// PlanView is a generated study plan
type PlanView struct {
	Level models.ComfortLevel
	Plan  models.StudyPlan
}

// Focus returns the recommendation for strand
func (c *Controller) Focus(strand int) (FocusView, error) {
	if strand < 0 || strand >= len(c.lesson.Strands) {
		return FocusView{}, fmt.Errorf("%w: %d", ErrUnknownStrand, strand)
	}
	s := c.lesson.Strands[strand]
	return FocusView{
		Index:    strand,
		Strand:   s,
		Emphasis: s.Emphasis,
		Practice: s.Practice,
	}, nil
}

// StudyPlan returns the plan for comfort level
func (c *Controller) StudyPlan(level int) (PlanView, error) {
	if level < 0 || level >= len(c.lesson.Levels) {
		return PlanView{}, fmt.Errorf("%w: %d", ErrUnknownLevel, level)
	}
	l := c.lesson.Levels[level]
	return PlanView{Level: l, Plan: l.Plan}, nil
}
