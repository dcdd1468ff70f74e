package lesson

import (
	"errors"
	"fmt"

	"github.com/example/bernoulli/pkg/models"
)

var (
	// ErrUnknownQuestion is returned for a quiz item index outside the bank
	ErrUnknownQuestion = errors.New("unknown quiz question")
	// ErrUnknownOption is returned for an option index outside the item
	ErrUnknownOption = errors.New("unknown quiz option")
)

// QuizResult is the outcome of checking one answer
type QuizResult struct {
	IsCorrect   bool
	Explanation string
}

// Message returns the feedback line shown to the student
func (r QuizResult) Message() string {
	if r.IsCorrect {
		return "✅ Correct! " + r.Explanation
	}
	return "❌ Try again! " + r.Explanation
}

// QuizView is one question together with the currently selected option
type QuizView struct {
	Index    int
	Item     models.QuizItem
	Selected int
}

// QuizFeedback is rendered after a "check answer" press
type QuizFeedback struct {
	Index    int
	Selected int
	Result   QuizResult
}

// EvaluateQuiz checks option against the correct answer of question item
func (c *Controller) EvaluateQuiz(item, option int) (QuizResult, error) {
	q, err := c.question(item)
	if err != nil {
		return QuizResult{}, err
	}
	if option < 0 || option >= len(q.Options) {
		return QuizResult{}, fmt.Errorf("%w: %d for question %d", ErrUnknownOption, option, item)
	}

	return QuizResult{
		IsCorrect:   option == q.Correct,
		Explanation: q.Explanation,
	}, nil
}

func (c *Controller) question(item int) (models.QuizItem, error) {
	if item < 0 || item >= len(c.lesson.Quiz) {
		return models.QuizItem{}, fmt.Errorf("%w: %d", ErrUnknownQuestion, item)
	}
	return c.lesson.Quiz[item], nil
}
