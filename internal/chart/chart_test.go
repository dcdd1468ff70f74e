package chart

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/example/bernoulli/internal/lesson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNewRenderer(t *testing.T) {
	r := NewRenderer(0, -1)
	assert.Equal(t, DefaultWidth, r.Width)
	assert.Equal(t, DefaultHeight, r.Height)

	r = NewRenderer(320, 200)
	assert.Equal(t, 320, r.Width)
	assert.Equal(t, 200, r.Height)
}

func TestRendererPNG(t *testing.T) {
	r := NewRenderer(640, 400)

	for _, v := range []int{0, 3, 5, 10} {
		data, err := r.PNG(lesson.RenderChart(v))
		require.NoError(t, err, "speed %d", v)

		cfg, err := png.DecodeConfig(bytes.NewReader(data))
		require.NoError(t, err, "speed %d", v)
		assert.Equal(t, 640, cfg.Width)
		assert.Equal(t, 400, cfg.Height)
	}
}

func TestClip(t *testing.T) {
	spec := lesson.RenderChart(0)
	xs, ys := clip(spec.Curve, spec.Y)

	require.Equal(t, len(xs), len(ys))
	assert.Less(t, len(xs), len(spec.Curve))
	assert.Equal(t, 0.0, xs[0])
	for _, y := range ys {
		assert.GreaterOrEqual(t, y, 0.0)
		assert.LessOrEqual(t, y, 100.0)
	}
}

func TestText(t *testing.T) {
	out := Text(lesson.RenderChart(2), 40, 10)
	lines := strings.Split(out, "\n")

	assert.Equal(t, "Simplified Model of Bernoulli's Principle", lines[0])
	assert.Len(t, lines, 1+10+3)
	assert.True(t, strings.HasPrefix(lines[1], "100 │"))
	assert.True(t, strings.HasPrefix(lines[10], "  0 │"))
	assert.Contains(t, out, string(markerRune))
	assert.Contains(t, out, string(curveRune))

	hidden := Text(lesson.RenderChart(8), 40, 10)
	assert.NotContains(t, hidden, string(markerRune), "marker below the axis is not drawn")

	assert.Empty(t, Text(lesson.RenderChart(2), 1, 1))
}
