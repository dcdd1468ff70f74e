package bot

import (
	"fmt"

	"github.com/example/bernoulli/internal/lesson"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MenuButton represents a button in the menu
type MenuButton struct {
	Text         string
	CallbackData string
}

// createKeyboard creates a keyboard from menu buttons
func createKeyboard(buttons [][]MenuButton) tgbotapi.InlineKeyboardMarkup {
	var keyboard [][]tgbotapi.InlineKeyboardButton
	for _, row := range buttons {
		var keyboardRow []tgbotapi.InlineKeyboardButton
		for _, button := range row {
			keyboardRow = append(keyboardRow, tgbotapi.NewInlineKeyboardButtonData(button.Text, button.CallbackData))
		}
		keyboard = append(keyboard, keyboardRow)
	}
	return tgbotapi.NewInlineKeyboardMarkup(keyboard...)
}

// MainMenuButtons lists the lesson sections
func MainMenuButtons() [][]MenuButton {
	return [][]MenuButton{
		{{Text: "🔟 Explorer", CallbackData: menuData(sectionExplore)}, {Text: "🎲 Quiz", CallbackData: menuData(sectionQuiz)}},
		{{Text: "🧾 Reflection", CallbackData: menuData(sectionReflect)}, {Text: "🎓 Summary", CallbackData: menuData(sectionSummary)}},
		{{Text: "🎯 Learning Focus", CallbackData: menuData(sectionFocus)}, {Text: "🌐 Resources", CallbackData: menuData(sectionResources)}},
		{{Text: "📅 Study Plan", CallbackData: menuData(sectionPlan)}, {Text: "👤 Avatar", CallbackData: menuData(sectionAvatar)}},
		{{Text: "📋 Common Core Standard", CallbackData: menuData(sectionStandard)}},
	}
}

// sliderButtons renders the speed slider: step buttons and every value
func sliderButtons(speed int) [][]MenuButton {
	label := func(v int) string {
		if v == speed {
			return fmt.Sprintf("• %d •", v)
		}
		return fmt.Sprint(v)
	}

	var low, high []MenuButton
	for v := lesson.MinSpeed; v <= lesson.MaxSpeed; v++ {
		b := MenuButton{Text: label(v), CallbackData: callbackData(callbackSpeed, v)}
		if v <= (lesson.MinSpeed+lesson.MaxSpeed)/2 {
			low = append(low, b)
		} else {
			high = append(high, b)
		}
	}

	return [][]MenuButton{
		{
			{Text: "◀️ Slower", CallbackData: callbackData(callbackSpeed, lesson.ClampSpeed(speed-1))},
			{Text: "Faster ▶️", CallbackData: callbackData(callbackSpeed, lesson.ClampSpeed(speed+1))},
		},
		low,
		high,
	}
}

// quizButtons renders a question's options as a radio group plus its check button
func quizButtons(view lesson.QuizView) [][]MenuButton {
	rows := make([][]MenuButton, 0, len(view.Item.Options)+1)
	for i, option := range view.Item.Options {
		mark := "⚪"
		if i == view.Selected {
			mark = "🔘"
		}
		rows = append(rows, []MenuButton{{
			Text:         mark + " " + option,
			CallbackData: callbackData(callbackQuiz, view.Index, i),
		}})
	}
	rows = append(rows, []MenuButton{{
		Text:         fmt.Sprintf("Check Answer %d", view.Index+1),
		CallbackData: callbackData(callbackCheck, view.Index),
	}})
	return rows
}

// choiceButtons renders one button per label, marking the selected one
func choiceButtons(kind string, labels []string, selected int) [][]MenuButton {
	rows := make([][]MenuButton, 0, len(labels))
	for i, l := range labels {
		if i == selected {
			l = "✅ " + l
		}
		rows = append(rows, []MenuButton{{Text: l, CallbackData: callbackData(kind, i)}})
	}
	return rows
}

func planButtons(levels []string, selected int) [][]MenuButton {
	rows := choiceButtons(callbackLevel, levels, selected)
	return append(rows, []MenuButton{{Text: "📅 Generate My Study Plan", CallbackData: callbackPlan}})
}
