// Package tui runs the lesson as a bubbletea program. Each tab is a lesson
// section; key presses become lesson actions and the view is rebuilt from the
// resulting state.
package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/example/bernoulli/internal/lesson"
	"go.uber.org/zap"
)

// Section is a lesson tab
type Section int

const (
	SectionIntro Section = iota
	SectionExplore
	SectionQuiz
	SectionReflect
	SectionSummary
	SectionFocus
	SectionResources
	SectionPlan
	SectionProfile
	sectionCount
)

var sectionTitles = [...]string{
	SectionIntro:     "📖 Intro",
	SectionExplore:   "🔟 Explore",
	SectionQuiz:      "🎲 Quiz",
	SectionReflect:   "🧾 Reflect",
	SectionSummary:   "🎓 Summary",
	SectionFocus:     "🎯 Focus",
	SectionResources: "🌐 Resources",
	SectionPlan:      "📅 Plan",
	SectionProfile:   "👤 Profile",
}

func (s Section) String() string {
	return sectionTitles[s]
}

// Profile fields
const (
	fieldName = iota
	fieldAvatar
	fieldStandard
	fieldCount
)

// MarkdownFunc renders markdown for the terminal
type MarkdownFunc func(md string) (string, error)

// Model is the bubbletea model of the lesson
type Model struct {
	ctrl   *lesson.Controller
	state  lesson.State
	styles Styles
	logger *zap.Logger

	markdown MarkdownFunc

	section      Section
	quizCursor   int
	resourceTab  int
	profileField int

	reflection textarea.Model
	name       textinput.Model

	feedback        map[int]lesson.QuizFeedback
	reflectFeedback *lesson.ReflectionFeedback
	plan            *lesson.PlanView
	err             error

	width  int
	height int
}

// Option configures a Model
type Option func(*Model)

// WithMarkdown replaces the glamour renderer
func WithMarkdown(fn MarkdownFunc) Option {
	return func(m *Model) { m.markdown = fn }
}

// WithLogger sets the logger used for dispatch errors
func WithLogger(logger *zap.Logger) Option {
	return func(m *Model) { m.logger = logger }
}

// NewModel creates the lesson model with a fresh session
func NewModel(ctrl *lesson.Controller, opts ...Option) Model {
	ta := textarea.New()
	ta.Placeholder = "Describe a Bernoulli-like effect you have seen..."
	ta.SetWidth(80)
	ta.SetHeight(4)

	ti := textinput.New()
	ti.Placeholder = "Your name"
	ti.CharLimit = 40

	m := Model{
		ctrl:       ctrl,
		state:      ctrl.NewState(),
		styles:     DefaultStyles(),
		logger:     zap.NewNop(),
		reflection: ta,
		name:       ti,
		feedback:   make(map[int]lesson.QuizFeedback),
		width:      80,
		height:     30,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.markdown == nil {
		m.markdown = glamourMarkdown(80)
	}
	return m
}

func glamourMarkdown(width int) MarkdownFunc {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return plainMarkdown
	}
	return renderer.Render
}

func plainMarkdown(md string) (string, error) {
	return md, nil
}

// State returns the current lesson state
func (m Model) State() lesson.State {
	return m.state
}

// Section returns the active tab
func (m Model) Section() Section {
	return m.section
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.reflection.SetWidth(min(msg.Width-4, 100))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			return m.switchSection((m.section + 1) % sectionCount)
		case "shift+tab":
			return m.switchSection((m.section + sectionCount - 1) % sectionCount)
		case "q", "esc":
			if !m.typing() {
				return m, tea.Quit
			}
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// typing reports whether keys go to a text field
func (m Model) typing() bool {
	return m.section == SectionReflect || (m.section == SectionProfile && m.profileField == fieldName)
}

func (m Model) switchSection(s Section) (tea.Model, tea.Cmd) {
	m.section = s
	m.err = nil
	m.reflection.Blur()
	m.name.Blur()

	switch s {
	case SectionReflect:
		m.dispatch(lesson.ReflectionStarted{})
		return m, m.reflection.Focus()
	case SectionProfile:
		if m.profileField == fieldName {
			return m, m.name.Focus()
		}
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch m.section {
	case SectionExplore:
		switch key {
		case "left", "h":
			m.dispatch(lesson.SpeedChanged{Speed: m.state.Speed - 1})
		case "right", "l":
			m.dispatch(lesson.SpeedChanged{Speed: m.state.Speed + 1})
		default:
			if n, err := strconv.Atoi(key); err == nil {
				m.dispatch(lesson.SpeedChanged{Speed: n})
			}
		}

	case SectionQuiz:
		count := len(m.ctrl.Lesson().Quiz)
		switch key {
		case "up", "k":
			m.quizCursor = (m.quizCursor + count - 1) % count
		case "down", "j":
			m.quizCursor = (m.quizCursor + 1) % count
		case "left", "h", "right", "l":
			options := len(m.ctrl.Lesson().Quiz[m.quizCursor].Options)
			step := 1
			if key == "left" || key == "h" {
				step = options - 1
			}
			option := (m.state.Answer(m.quizCursor) + step) % options
			m.dispatch(lesson.QuizAnswerSelected{Item: m.quizCursor, Option: option})
		case "1", "2", "3", "4":
			option, _ := strconv.Atoi(key)
			m.dispatch(lesson.QuizAnswerSelected{Item: m.quizCursor, Option: option - 1})
		case "enter", " ":
			m.dispatch(lesson.QuizChecked{Item: m.quizCursor})
		}

	case SectionReflect:
		if key == "ctrl+s" {
			m.dispatch(lesson.ReflectionSubmitted{Text: m.reflection.Value()})
			if m.reflectFeedback != nil && m.reflectFeedback.Accepted {
				m.reflection.Reset()
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.reflection, cmd = m.reflection.Update(msg)
		return m, cmd

	case SectionFocus:
		count := len(m.ctrl.Lesson().Strands)
		switch key {
		case "up", "k":
			m.dispatch(lesson.FocusStrandChanged{Strand: (m.state.Strand + count - 1) % count})
		case "down", "j":
			m.dispatch(lesson.FocusStrandChanged{Strand: (m.state.Strand + 1) % count})
		}

	case SectionResources:
		count := len(m.ctrl.Lesson().Resources)
		if count == 0 {
			break
		}
		switch key {
		case "left", "h":
			m.resourceTab = (m.resourceTab + count - 1) % count
		case "right", "l":
			m.resourceTab = (m.resourceTab + 1) % count
		}

	case SectionPlan:
		count := len(m.ctrl.Lesson().Levels)
		switch key {
		case "up", "k":
			m.dispatch(lesson.ComfortLevelChanged{Level: (m.state.Level + count - 1) % count})
		case "down", "j":
			m.dispatch(lesson.ComfortLevelChanged{Level: (m.state.Level + 1) % count})
		case "enter", " ":
			m.dispatch(lesson.StudyPlanRequested{})
		}

	case SectionProfile:
		return m.handleProfileKey(msg)
	}

	return m, nil
}

func (m Model) handleProfileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "up", "down":
		if key == "up" {
			m.profileField = (m.profileField + fieldCount - 1) % fieldCount
		} else {
			m.profileField = (m.profileField + 1) % fieldCount
		}
		if m.profileField == fieldName {
			return m, m.name.Focus()
		}
		m.name.Blur()
		return m, nil
	}

	switch m.profileField {
	case fieldName:
		if key == "enter" {
			m.dispatch(lesson.NameEntered{Name: m.name.Value()})
			return m, nil
		}
		var cmd tea.Cmd
		m.name, cmd = m.name.Update(msg)
		return m, cmd

	case fieldAvatar:
		count := len(m.ctrl.Lesson().Avatars)
		switch key {
		case "left", "h":
			m.dispatch(lesson.AvatarChosen{Avatar: (m.state.Avatar + count - 1) % count})
		case "right", "l":
			m.dispatch(lesson.AvatarChosen{Avatar: (m.state.Avatar + 1) % count})
		}

	case fieldStandard:
		count := len(m.ctrl.Lesson().Standards)
		switch key {
		case "left", "h":
			m.dispatch(lesson.StandardSelected{Standard: (m.state.Standard + count - 1) % count})
		case "right", "l":
			m.dispatch(lesson.StandardSelected{Standard: (m.state.Standard + 1) % count})
		}
	}

	return m, nil
}

// dispatch runs one pass of the lesson loop and keeps the transient parts of
// the frame that the view cannot recompute from state
func (m *Model) dispatch(a lesson.Action) {
	next, frame, err := m.ctrl.Dispatch(m.state, a)
	if err != nil {
		m.logger.Error("dispatch failed", zap.Error(err))
		m.err = err
		return
	}
	m.err = nil

	if _, ok := a.(lesson.ComfortLevelChanged); ok && next.Level != m.state.Level {
		m.plan = nil
	}
	m.state = next

	if frame.Feedback != nil {
		m.feedback[frame.Feedback.Index] = *frame.Feedback
	}
	for _, q := range frame.Quiz {
		delete(m.feedback, q.Index)
	}
	if frame.ReflectionPrompt != "" {
		m.reflectFeedback = nil
	}
	if frame.Reflection != nil {
		m.reflectFeedback = frame.Reflection
	}
	if frame.Plan != nil {
		m.plan = frame.Plan
	}
}
