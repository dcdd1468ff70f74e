package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/bernoulli/internal/config"
	"github.com/example/bernoulli/internal/content"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setup(t *testing.T) *bytes.Buffer {
	t.Helper()
	logger = zap.NewNop()
	cfg = config.Default()
	t.Cleanup(func() {
		cfg = nil
		importOut, importTemplate = "", ""
	})
	return &bytes.Buffer{}
}

func newCmd(out *bytes.Buffer) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetOut(out)
	return cmd
}

const quizCSV = `Prompt,Option 1,Option 2,Option 3,Option 4,Correct,Explanation
What happens to pressure as speed rises?,Increases,Decreases,Same,Doubles,2,Pressure falls.
Which shape is the graph?,Line,Parabola,Circle,Hyperbola,B,It is quadratic.
Missing options,One,Two,,,1,
`

func TestRunChart(t *testing.T) {
	out := setup(t)
	chartOut = filepath.Join(t.TempDir(), "chart.png")
	chartSpeed = 12
	chartWidth, chartHeight = 320, 200
	defer func() { chartSpeed, chartWidth, chartHeight = 5, 0, 0 }()

	require.NoError(t, runChart(newCmd(out), nil))
	assert.Contains(t, out.String(), "v = 10 m/s, P = -400.00")

	f, err := os.Open(chartOut)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 320, img.Width)
	assert.Equal(t, 200, img.Height)
}

func TestRunImport(t *testing.T) {
	out := setup(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "quiz.csv")
	require.NoError(t, os.WriteFile(path, []byte(quizCSV), 0644))
	importOut = filepath.Join(dir, "lesson.yaml")

	require.NoError(t, runImport(newCmd(out), []string{path}))
	assert.Contains(t, out.String(), "Processed 3 rows: 2 questions, 1 errors")
	assert.Contains(t, out.String(), "Row 4")

	data, err := os.ReadFile(importOut)
	require.NoError(t, err)
	merged, err := content.Parse(data)
	require.NoError(t, err)
	require.Len(t, merged.Quiz, 2)
	assert.Equal(t, 1, merged.Quiz[0].Correct)
	assert.Equal(t, 1, merged.Quiz[1].Correct)
}

func TestRunImport_Template(t *testing.T) {
	out := setup(t)
	importTemplate = filepath.Join(t.TempDir(), "quiz.xlsx")

	require.NoError(t, runImport(newCmd(out), nil))
	assert.Contains(t, out.String(), "Wrote 3 questions")
	assert.FileExists(t, importTemplate)

	importTemplate = ""
	assert.Error(t, runImport(newCmd(out), nil))
}

func TestLoadLesson(t *testing.T) {
	setup(t)

	lesson, err := loadLesson(cfg)
	require.NoError(t, err)
	assert.Len(t, lesson.Quiz, 3)

	path := filepath.Join(t.TempDir(), "quiz.csv")
	require.NoError(t, os.WriteFile(path, []byte(quizCSV), 0644))
	cfg.QuizFile = path

	lesson, err = loadLesson(cfg)
	require.NoError(t, err)
	assert.Len(t, lesson.Quiz, 2)

	cfg.QuizFile = filepath.Join(t.TempDir(), "missing.csv")
	_, err = loadLesson(cfg)
	assert.Error(t, err)
}

func TestContentCmd(t *testing.T) {
	out := setup(t)
	cmd := newCmd(out)

	require.NoError(t, contentCmd.RunE(cmd, nil))
	lesson, err := content.Parse(out.Bytes())
	require.NoError(t, err)
	assert.Contains(t, lesson.Title, "Bernoulli")
}
