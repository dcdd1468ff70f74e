package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/example/bernoulli/internal/content"
	"github.com/example/bernoulli/internal/lesson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	l, err := content.Default()
	require.NoError(t, err)
	return NewModel(lesson.New(l), WithMarkdown(plainMarkdown))
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	var model tea.Model = m
	for _, msg := range msgs {
		model, _ = model.Update(msg)
	}
	out, ok := model.(Model)
	require.True(t, ok)
	return out
}

func key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestIntro(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, SectionIntro, m.Section())
	l := m.ctrl.Lesson()

	view := m.View()
	assert.Contains(t, view, "fundamental concept in fluid dynamics")
	assert.Contains(t, view, "## 🎯 Objective")
	assert.Contains(t, view, "Common Core Alignment")
	for _, c := range l.Credit {
		assert.Contains(t, view, c)
	}
	assert.NotContains(t, view, "## Welcome")
}

func TestExploreSlider(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, lesson.DefaultSpeed, m.State().Speed)

	m = send(t, m, key(tea.KeyTab))
	require.Equal(t, SectionExplore, m.Section())

	m = send(t, m, key(tea.KeyRight), key(tea.KeyRight))
	assert.Equal(t, 7, m.State().Speed)
	assert.Contains(t, m.View(), "-145.00")

	m = send(t, m, runes("0"), key(tea.KeyLeft))
	assert.Equal(t, 0, m.State().Speed, "speed is clamped at the slider minimum")
	assert.Contains(t, m.View(), "100.00")
	assert.Contains(t, m.View(), "●")
}

func TestQuiz(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, key(tea.KeyTab), key(tea.KeyTab))
	require.Equal(t, SectionQuiz, m.Section())

	m = send(t, m, key(tea.KeyRight), key(tea.KeyEnter))
	assert.Equal(t, 1, m.State().Answer(0))
	assert.Contains(t, m.View(), "✅ Correct!")

	m = send(t, m, key(tea.KeyDown), key(tea.KeyDown), key(tea.KeyEnter))
	assert.Contains(t, m.View(), "❌ Try again!")

	m = send(t, m, runes("3"))
	assert.Equal(t, 2, m.State().Answer(2))
	assert.NotContains(t, m.View(), "❌ Try again!", "changing the answer clears its feedback")
}

func TestReflection(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, key(tea.KeyTab), key(tea.KeyTab), key(tea.KeyTab))
	require.Equal(t, SectionReflect, m.Section())
	assert.True(t, m.State().AwaitingReflection)

	m = send(t, m, key(tea.KeyCtrlS))
	assert.Contains(t, m.View(), "Please share your thoughts")
	assert.True(t, m.State().AwaitingReflection)

	m = send(t, m, runes("q"), key(tea.KeyCtrlS))
	assert.Contains(t, m.View(), "Excellent!")
	assert.False(t, m.State().AwaitingReflection)
}

func TestFocusAndPlan(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, key(tea.KeyShiftTab), key(tea.KeyShiftTab), key(tea.KeyShiftTab), key(tea.KeyShiftTab))
	require.Equal(t, SectionFocus, m.Section())

	m = send(t, m, key(tea.KeyDown), key(tea.KeyDown))
	assert.Equal(t, 2, m.State().Strand)
	view := m.View()
	assert.Contains(t, view, "Focus:")
	assert.Contains(t, view, "⭐")

	m = send(t, m, key(tea.KeyTab), key(tea.KeyTab))
	require.Equal(t, SectionPlan, m.Section())
	m = send(t, m, key(tea.KeyDown), key(tea.KeyEnter))
	assert.Equal(t, 1, m.State().Level)
	assert.Contains(t, m.View(), "Your Personalized Study Plan")

	m = send(t, m, key(tea.KeyDown))
	assert.NotContains(t, m.View(), "Your Personalized Study Plan", "a new level hides the old plan")
}

func TestResources(t *testing.T) {
	m := newTestModel(t)
	m.section = SectionResources
	l := m.ctrl.Lesson()

	assert.Contains(t, m.View(), l.Resources[0].Resources[0].Name)
	m = send(t, m, key(tea.KeyRight))
	assert.Contains(t, m.View(), l.Resources[1].Resources[0].Name)
	m = send(t, m, key(tea.KeyLeft), key(tea.KeyLeft))
	assert.Equal(t, len(l.Resources)-1, m.resourceTab)
}

func TestProfile(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, key(tea.KeyShiftTab))
	require.Equal(t, SectionProfile, m.Section())

	m = send(t, m, runes("Ada"), key(tea.KeyEnter))
	assert.Equal(t, "Ada", m.State().Name)
	assert.Contains(t, m.View(), "Welcome, Ada the 💧 Droplet!")

	m = send(t, m, key(tea.KeyDown), key(tea.KeyRight))
	assert.Equal(t, 1, m.State().Avatar)
	assert.Contains(t, m.View(), "Welcome, Ada the 💨 Vortex!")

	m = send(t, m, key(tea.KeyDown), key(tea.KeyLeft))
	assert.Equal(t, 3, m.State().Standard)
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	m = send(t, m, key(tea.KeyTab), key(tea.KeyTab), key(tea.KeyTab), runes("q"))
	assert.Equal(t, SectionReflect, m.Section())
	assert.Equal(t, "q", m.reflection.Value(), "q is text while typing a reflection")
}

func TestViewTabs(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	for s := Section(0); s < sectionCount; s++ {
		assert.True(t, strings.Contains(view, s.String()), s.String())
	}
}
