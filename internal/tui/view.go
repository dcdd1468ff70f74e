package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/example/bernoulli/internal/chart"
	"github.com/example/bernoulli/internal/lesson"
)

const (
	chartCols = 60
	chartRows = 15
)

var sectionHelp = [...]string{
	SectionIntro:     "",
	SectionExplore:   "←/→ change speed • 0-9 set speed",
	SectionQuiz:      "↑/↓ question • ←/→ or 1-4 choose • enter check",
	SectionReflect:   "type your answer • ctrl+s submit",
	SectionSummary:   "",
	SectionFocus:     "↑/↓ choose strand",
	SectionResources: "←/→ choose category",
	SectionPlan:      "↑/↓ comfort level • enter generate plan",
	SectionProfile:   "↑/↓ field • enter save name • ←/→ choose",
}

// View implements tea.Model
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Header.Render(m.ctrl.Lesson().Title))
	sb.WriteString("\n")
	if g := m.greeting(); g != "" {
		sb.WriteString(m.styles.Success.Render(g))
		sb.WriteString("\n")
	}
	sb.WriteString(m.tabs())
	sb.WriteString("\n\n")

	switch m.section {
	case SectionIntro:
		sb.WriteString(m.introView())
	case SectionExplore:
		sb.WriteString(m.exploreView())
	case SectionQuiz:
		sb.WriteString(m.quizView())
	case SectionReflect:
		sb.WriteString(m.reflectView())
	case SectionSummary:
		sb.WriteString(m.summaryView())
	case SectionFocus:
		sb.WriteString(m.focusView())
	case SectionResources:
		sb.WriteString(m.resourcesView())
	case SectionPlan:
		sb.WriteString(m.planView())
	case SectionProfile:
		sb.WriteString(m.profileView())
	}

	if m.err != nil {
		sb.WriteString("\n")
		sb.WriteString(m.styles.Error.Render("Error: " + m.err.Error()))
	}

	help := "tab/shift+tab section • ctrl+c quit"
	if !m.typing() {
		help = "tab/shift+tab section • q quit"
	}
	if h := sectionHelp[m.section]; h != "" {
		help = h + " • " + help
	}
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Help.Render(help))
	return sb.String()
}

func (m Model) tabs() string {
	tabs := make([]string, 0, sectionCount)
	for s := Section(0); s < sectionCount; s++ {
		style := m.styles.Tab
		if s == m.section {
			style = m.styles.ActiveTab
		}
		tabs = append(tabs, style.Render(s.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) greeting() string {
	avatars := m.ctrl.Lesson().Avatars
	g := lesson.Greeting{Name: m.state.Name}
	if m.state.Avatar < len(avatars) {
		g.Avatar = avatars[m.state.Avatar]
	}
	return g.Text()
}

func (m Model) render(md string) string {
	out, err := m.markdown(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

func (m Model) introView() string {
	l := m.ctrl.Lesson()

	var sb strings.Builder
	for _, c := range l.Credit {
		sb.WriteString(m.styles.Muted.Render(c))
		sb.WriteString("\n")
	}

	var md strings.Builder
	for _, s := range l.Intro {
		if s.Title != "Welcome" {
			md.WriteString("## " + s.Title + "\n\n")
		}
		md.WriteString(s.Body)
		md.WriteString("\n\n")
	}
	md.WriteString(l.Alignment)

	sb.WriteString("\n")
	sb.WriteString(m.render(md.String()))
	return sb.String()
}

func (m Model) exploreView() string {
	l := m.ctrl.Lesson()
	spec := lesson.RenderChart(m.state.Speed)
	summary := lesson.SpeedSummary{Speed: m.state.Speed, Pressure: lesson.Pressure(float64(m.state.Speed))}

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(l.Explorer.Title))
	sb.WriteString("\n")
	sb.WriteString(m.render(l.Explorer.Body))
	sb.WriteString("\n\n")
	sb.WriteString(m.slider())
	sb.WriteString("\n\n")

	sb.WriteString(m.styles.Chart.Render(chart.Text(spec, chartCols, chartRows)))
	sb.WriteString("\n")
	sb.WriteString(m.render(strings.Join(summary.Lines(), "\n\n")))
	return sb.String()
}

func (m Model) slider() string {
	var sb strings.Builder
	sb.WriteString("Fluid Speed (v) ")
	for v := lesson.MinSpeed; v <= lesson.MaxSpeed; v++ {
		if v == m.state.Speed {
			sb.WriteString(m.styles.Selected.Render(fmt.Sprintf("[%d]", v)))
		} else {
			sb.WriteString(m.styles.Muted.Render(fmt.Sprintf(" %d ", v)))
		}
	}
	return sb.String()
}

func (m Model) quizView() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("🎲 Quick Quiz"))
	sb.WriteString("\n")

	for i, q := range m.ctrl.Lesson().Quiz {
		cursor := "  "
		if i == m.quizCursor {
			cursor = "▸ "
		}
		sb.WriteString(fmt.Sprintf("%sQuestion %d: %s\n", cursor, i+1, q.Prompt))

		selected := m.state.Answer(i)
		for j, o := range q.Options {
			if j == selected {
				sb.WriteString("    " + m.styles.Selected.Render("🔘 "+o) + "\n")
			} else {
				sb.WriteString("    ⚪ " + o + "\n")
			}
		}

		if fb, ok := m.feedback[i]; ok {
			style := m.styles.Warning
			if fb.Result.IsCorrect {
				style = m.styles.Success
			}
			sb.WriteString("    " + style.Render(fb.Result.Message()) + "\n")
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (m Model) reflectView() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("🧾 Reflection"))
	sb.WriteString("\n")
	sb.WriteString(m.ctrl.Lesson().Reflection.Prompt)
	sb.WriteString("\n\n")
	sb.WriteString(m.reflection.View())

	if fb := m.reflectFeedback; fb != nil {
		sb.WriteString("\n")
		if fb.Accepted {
			sb.WriteString(m.styles.Success.Render(fb.Message + " 🎈"))
		} else {
			sb.WriteString(m.styles.Warning.Render("⚠️ " + fb.Message))
		}
	}
	return sb.String()
}

func (m Model) summaryView() string {
	l := m.ctrl.Lesson()

	var md strings.Builder
	md.WriteString("## " + l.Summary.Title + "\n\n")
	md.WriteString(l.Summary.Body)
	if m.state.Standard < len(l.Standards) {
		md.WriteString("\n\n**📋 Selected Standard:** " + l.Standards[m.state.Standard].Label())
	}
	if m.state.Strand < len(l.Strands) {
		md.WriteString("\n\n**🎯 Your Selected Focus:** " + l.Strands[m.state.Strand].Label())
	}
	md.WriteString("\n\n" + l.Footer)
	return m.render(md.String())
}

func (m Model) focusView() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("🎯 Learning Focus"))
	sb.WriteString("\n")

	for i, s := range m.ctrl.Lesson().Strands {
		if i == m.state.Strand {
			sb.WriteString(m.styles.Selected.Render("▸ " + s.Label()))
		} else {
			sb.WriteString("  " + s.Label())
		}
		sb.WriteString("\n")
	}

	focus, err := m.ctrl.Focus(m.state.Strand)
	if err != nil {
		return sb.String()
	}

	var md strings.Builder
	md.WriteString(focus.Heading())
	md.WriteString("\n\n**🎯 Recommended Practice:**\n\n")
	for _, p := range focus.Practice {
		md.WriteString("- ⭐ " + p + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(m.render(md.String()))
	return sb.String()
}

func (m Model) resourcesView() string {
	resources := m.ctrl.Lesson().Resources

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("🌐 Additional Resources for Bernoulli's Principle"))
	sb.WriteString("\n")
	if len(resources) == 0 {
		return sb.String()
	}

	tabs := make([]string, len(resources))
	for i, c := range resources {
		style := m.styles.Tab
		if i == m.resourceTab {
			style = m.styles.ActiveTab
		}
		tabs[i] = style.Render(c.Label)
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	sb.WriteString("\n\n")

	var md strings.Builder
	for _, r := range resources[m.resourceTab].Resources {
		md.WriteString(fmt.Sprintf("**[%s](%s)**\n\n📝 %s\n\n", r.Name, r.URL, r.Description))
	}
	sb.WriteString(m.render(md.String()))
	return sb.String()
}

func (m Model) planView() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("📅 Personalized Study Plan"))
	sb.WriteString("\n")
	sb.WriteString("Select your comfort level with Bernoulli's Principle:\n")

	for i, l := range m.ctrl.Lesson().Levels {
		if i == m.state.Level {
			sb.WriteString(m.styles.Selected.Render("🔘 " + l.Label()))
		} else {
			sb.WriteString("⚪ " + l.Label())
		}
		sb.WriteString("\n")
	}

	if m.plan != nil {
		var md strings.Builder
		md.WriteString("🎯 Your Personalized Study Plan:\n\n")
		md.WriteString("**" + m.plan.Plan.Title + "**\n\n")
		for _, step := range m.plan.Plan.Steps {
			md.WriteString("- " + step + "\n")
		}
		sb.WriteString("\n")
		sb.WriteString(m.render(md.String()))
	}
	return sb.String()
}

func (m Model) profileView() string {
	l := m.ctrl.Lesson()

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("👤 Learner Profile"))
	sb.WriteString("\n")

	label := func(field int, text string) string {
		if field == m.profileField {
			return m.styles.Selected.Render("▸ " + text)
		}
		return "  " + text
	}

	sb.WriteString(label(fieldName, "Name: "))
	sb.WriteString(m.name.View())
	sb.WriteString("\n")

	avatar := ""
	if m.state.Avatar < len(l.Avatars) {
		avatar = l.Avatars[m.state.Avatar]
	}
	sb.WriteString(label(fieldAvatar, "Avatar: ◀ "+avatar+" ▶"))
	sb.WriteString("\n")

	standard := ""
	if m.state.Standard < len(l.Standards) {
		standard = l.Standards[m.state.Standard].Label()
	}
	sb.WriteString(label(fieldStandard, "Common Core Standard: ◀ "+standard+" ▶"))
	return sb.String()
}
