package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/example/bernoulli/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	lesson, err := Default()
	require.NoError(t, err)

	assert.Len(t, lesson.Quiz, 3)
	assert.Len(t, lesson.Standards, 4)
	assert.Len(t, lesson.Strands, 4)
	assert.Len(t, lesson.Avatars, 4)
	assert.Len(t, lesson.Levels, 3)
	assert.Len(t, lesson.Resources, 5)

	assert.Equal(t, 1, lesson.Quiz[0].Correct)
	assert.Equal(t, "It decreases", lesson.Quiz[0].Options[1])
	assert.Equal(t, 2, lesson.Quiz[2].Correct)
	assert.Equal(t, "Inverse", lesson.Quiz[2].Options[2])
}

func TestDefault_StrandsMapToDistinctEmphasis(t *testing.T) {
	lesson, err := Default()
	require.NoError(t, err)

	want := []models.Emphasis{
		models.EmphasisEquationBuilding,
		models.EmphasisKeyFeatures,
		models.EmphasisGraphing,
		models.EmphasisSolvingEquations,
	}
	for i, s := range lesson.Strands {
		assert.Equal(t, want[i], s.Emphasis, s.Code)
		assert.NotEmpty(t, s.Practice, s.Code)
	}
}

func TestLoad(t *testing.T) {
	t.Run("empty path uses embedded lesson", func(t *testing.T) {
		lesson, err := Load("")
		require.NoError(t, err)
		assert.Contains(t, lesson.Title, "Bernoulli")
	})

	t.Run("file round trip", func(t *testing.T) {
		lesson, err := Default()
		require.NoError(t, err)
		lesson.Title = "Custom"

		data, err := Marshal(lesson)
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "lesson.yaml")
		require.NoError(t, os.WriteFile(path, data, 0644))

		loaded, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "Custom", loaded.Title)
		assert.Equal(t, lesson.Quiz, loaded.Quiz)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	base := func(t *testing.T) *models.Lesson {
		lesson, err := Default()
		require.NoError(t, err)
		return lesson
	}

	t.Run("duplicate emphasis", func(t *testing.T) {
		lesson := base(t)
		lesson.Strands[1].Emphasis = lesson.Strands[0].Emphasis
		assert.ErrorIs(t, Validate(lesson), ErrInvalid)
	})

	t.Run("strand without practice", func(t *testing.T) {
		lesson := base(t)
		lesson.Strands[3].Practice = nil
		assert.ErrorIs(t, Validate(lesson), ErrInvalid)
	})

	t.Run("quiz item with three options", func(t *testing.T) {
		lesson := base(t)
		lesson.Quiz[0].Options = lesson.Quiz[0].Options[:3]
		assert.ErrorIs(t, Validate(lesson), ErrInvalid)
	})

	t.Run("correct index out of range", func(t *testing.T) {
		lesson := base(t)
		lesson.Quiz[1].Correct = 4
		err := Validate(lesson)
		require.ErrorIs(t, err, ErrInvalid)
		assert.Contains(t, err.Error(), "question 2")
	})
}

func TestWithQuiz(t *testing.T) {
	lesson, err := Default()
	require.NoError(t, err)

	items := []models.QuizItem{{
		Prompt:      "What does v stand for?",
		Options:     []string{"Volume", "Speed", "Viscosity", "Vapor"},
		Correct:     1,
		Explanation: "v is the fluid speed.",
	}}

	replaced, err := WithQuiz(lesson, items)
	require.NoError(t, err)
	assert.Equal(t, items, replaced.Quiz)
	assert.Len(t, lesson.Quiz, 3, "original must not change")

	_, err = WithQuiz(lesson, nil)
	assert.ErrorIs(t, err, ErrInvalid)
}
