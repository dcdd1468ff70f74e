// Package content loads and validates the static lesson content.
//
// The default lesson ships embedded in the binary. A YAML file with the same
// shape can replace it, and a quiz bank imported from a spreadsheet can
// replace the quiz alone.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/example/bernoulli/pkg/models"
	"gopkg.in/yaml.v3"
)

//go:embed lesson.yaml
var defaultLesson []byte

// ErrInvalid is returned when lesson content fails validation
var ErrInvalid = errors.New("invalid lesson content")

// Default returns the embedded lesson
func Default() (*models.Lesson, error) {
	return Parse(defaultLesson)
}

// Load reads lesson content from path, or the embedded lesson when path is empty
func Load(path string) (*models.Lesson, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates lesson YAML
func Parse(data []byte) (*models.Lesson, error) {
	var lesson models.Lesson
	if err := yaml.Unmarshal(data, &lesson); err != nil {
		return nil, fmt.Errorf("failed to decode content: %w", err)
	}

	if err := Validate(&lesson); err != nil {
		return nil, err
	}

	return &lesson, nil
}

// Marshal encodes lesson content back to YAML
func Marshal(lesson *models.Lesson) ([]byte, error) {
	return yaml.Marshal(lesson)
}

// WithQuiz returns a copy of lesson whose quiz is replaced by items
func WithQuiz(lesson *models.Lesson, items []models.QuizItem) (*models.Lesson, error) {
	out := *lesson
	out.Quiz = append([]models.QuizItem(nil), items...)
	if err := Validate(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Validate checks the invariants the controller relies on
func Validate(lesson *models.Lesson) error {
	var problems []string
	add := func(format string, args ...interface{}) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if len(lesson.Quiz) == 0 {
		add("quiz has no questions")
	}
	for i, q := range lesson.Quiz {
		if err := ValidateQuizItem(q); err != nil {
			add("question %d: %v", i+1, err)
		}
	}

	if len(lesson.Standards) == 0 {
		add("no standards")
	}
	if len(lesson.Avatars) == 0 {
		add("no avatars")
	}

	if len(lesson.Strands) == 0 {
		add("no strands")
	}
	seen := make(map[models.Emphasis]string)
	for i, s := range lesson.Strands {
		if s.Emphasis == "" {
			add("strand %d: empty emphasis", i+1)
		} else if other, ok := seen[s.Emphasis]; ok {
			add("strand %d: emphasis %q already used by %s", i+1, s.Emphasis, other)
		} else {
			seen[s.Emphasis] = s.Code
		}
		if len(s.Practice) == 0 {
			add("strand %d: no recommended practice", i+1)
		}
	}

	for i, c := range lesson.Resources {
		if c.Label == "" {
			add("resource category %d: empty label", i+1)
		}
		for j, r := range c.Resources {
			if r.Name == "" || r.URL == "" {
				add("resource %d.%d: name and url are required", i+1, j+1)
			}
		}
	}

	if len(lesson.Levels) == 0 {
		add("no comfort levels")
	}
	for i, l := range lesson.Levels {
		if len(l.Plan.Steps) == 0 {
			add("level %d: empty study plan", i+1)
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// ValidateQuizItem checks a single quiz item
func ValidateQuizItem(q models.QuizItem) error {
	if strings.TrimSpace(q.Prompt) == "" {
		return errors.New("empty prompt")
	}
	if len(q.Options) != models.QuizOptionCount {
		return fmt.Errorf("expected %d options, got %d", models.QuizOptionCount, len(q.Options))
	}
	for i, o := range q.Options {
		if strings.TrimSpace(o) == "" {
			return fmt.Errorf("option %d is empty", i+1)
		}
	}
	if q.Correct < 0 || q.Correct >= len(q.Options) {
		return fmt.Errorf("correct index %d out of range", q.Correct)
	}
	return nil
}
