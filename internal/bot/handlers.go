package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/example/bernoulli/internal/lesson"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const helpText = `📖 <b>Commands</b>

/start - Welcome text and the lesson menu
/menu - Show the lesson menu
/name &lt;name&gt; - Set your name for the greeting
/speed &lt;0-10&gt; - Set the fluid speed of the explorer
/reflect &lt;text&gt; - Answer the reflection question
/reset - Start the lesson over
/help - Show this help`

// HandleCommand handles a bot command
func (b *Bot) HandleCommand(ctx context.Context, message *tgbotapi.Message) error {
	chatID := message.Chat.ID
	args := strings.TrimSpace(message.CommandArguments())

	switch message.Command() {
	case "start":
		return b.handleStart(ctx, chatID)
	case "menu":
		return b.showMainMenu(chatID)
	case "help":
		return b.sendHTML(chatID, helpText, nil)
	case "name":
		if args == "" {
			return b.sendHTML(chatID, "Usage: /name &lt;your name&gt;", nil)
		}
		_, _, err := b.apply(ctx, chatID, lesson.NameEntered{Name: args}, nil)
		return err
	case "speed":
		speed, err := strconv.Atoi(args)
		if err != nil {
			return b.sendHTML(chatID, "Usage: /speed &lt;0-10&gt;", nil)
		}
		_, _, err = b.apply(ctx, chatID, lesson.SpeedChanged{Speed: speed}, nil)
		return err
	case "reset":
		return b.handleReset(ctx, chatID)
	case "reflect":
		_, _, err := b.apply(ctx, chatID, lesson.ReflectionSubmitted{Text: args}, nil)
		return err
	default:
		msg := tgbotapi.NewMessage(chatID, "Unknown command. Use /menu to show the lesson menu.")
		msg.ReplyMarkup = createKeyboard(MainMenuButtons())
		_, err := b.api.Send(msg)
		return err
	}
}

// HandleText handles a plain text message. It is a reflection answer when the
// chat opened the reflection prompt.
func (b *Bot) HandleText(ctx context.Context, message *tgbotapi.Message) error {
	chatID := message.Chat.ID

	state, err := b.loadState(ctx, chatID)
	if err != nil {
		return err
	}
	if state.AwaitingReflection {
		_, _, err := b.apply(ctx, chatID, lesson.ReflectionSubmitted{Text: message.Text}, nil)
		return err
	}

	msg := tgbotapi.NewMessage(chatID, "I don't understand. Use /menu to show the lesson menu.")
	msg.ReplyMarkup = createKeyboard(MainMenuButtons())
	_, err = b.api.Send(msg)
	return err
}

// HandleCallback handles an inline button press
func (b *Bot) HandleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) error {
	if _, err := b.api.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		b.logger.Warn("failed to answer callback", zap.String("callback_id", query.ID), zap.Error(err))
	}

	chatID := query.Message.Chat.ID
	cb, err := parseCallback(query.Data)
	if err != nil {
		return err
	}

	switch cb.Kind {
	case callbackMenu:
		return b.showSection(ctx, chatID, cb.Arg(0))
	case callbackPlan:
		_, _, err := b.apply(ctx, chatID, lesson.StudyPlanRequested{}, nil)
		return err
	case callbackResource:
		i, err := cb.Int(0)
		if err != nil {
			return err
		}
		return b.showResources(chatID, i)
	}

	action, err := callbackAction(cb)
	if err != nil {
		return err
	}

	state, changed, err := b.apply(ctx, chatID, action, query.Message)
	if err != nil || !changed {
		return err
	}
	return b.refreshChoices(chatID, query.Message, cb.Kind, state)
}

// callbackAction maps an argument-carrying callback to its lesson action
func callbackAction(cb callback) (lesson.Action, error) {
	n, err := cb.Int(0)
	if err != nil {
		return nil, err
	}

	switch cb.Kind {
	case callbackSpeed:
		return lesson.SpeedChanged{Speed: n}, nil
	case callbackQuiz:
		option, err := cb.Int(1)
		if err != nil {
			return nil, err
		}
		return lesson.QuizAnswerSelected{Item: n, Option: option}, nil
	case callbackCheck:
		return lesson.QuizChecked{Item: n}, nil
	case callbackStrand:
		return lesson.FocusStrandChanged{Strand: n}, nil
	case callbackLevel:
		return lesson.ComfortLevelChanged{Level: n}, nil
	case callbackAvatar:
		return lesson.AvatarChosen{Avatar: n}, nil
	case callbackStandard:
		return lesson.StandardSelected{Standard: n}, nil
	default:
		return nil, fmt.Errorf("unknown callback kind %q", cb.Kind)
	}
}

// refreshChoices moves the ✅ mark of a choice keyboard to the new selection
func (b *Bot) refreshChoices(chatID int64, source *tgbotapi.Message, kind string, state lesson.State) error {
	var rows [][]MenuButton
	switch kind {
	case callbackStrand:
		rows = choiceButtons(kind, b.strandLabels(), state.Strand)
	case callbackAvatar:
		rows = choiceButtons(kind, b.ctrl.Lesson().Avatars, state.Avatar)
	case callbackStandard:
		rows = choiceButtons(kind, b.standardLabels(), state.Standard)
	case callbackLevel:
		rows = planButtons(b.levelLabels(), state.Level)
	default:
		return nil
	}

	edit := tgbotapi.NewEditMessageReplyMarkup(chatID, source.MessageID, createKeyboard(rows))
	if err := b.edit(edit); err != nil {
		return fmt.Errorf("failed to update choices: %w", err)
	}
	return nil
}

func (b *Bot) handleStart(ctx context.Context, chatID int64) error {
	if _, err := b.loadState(ctx, chatID); err != nil {
		return err
	}
	if err := b.sendHTML(chatID, welcomeText(b.ctrl.Lesson()), nil); err != nil {
		return err
	}
	return b.showMainMenu(chatID)
}

// handleReset drops the chat's session so the next interaction starts fresh
func (b *Bot) handleReset(ctx context.Context, chatID int64) error {
	if err := b.store.Delete(ctx, chatID); err != nil {
		return err
	}
	markup := createKeyboard(MainMenuButtons())
	return b.sendHTML(chatID, "🔄 Lesson reset. Your speed, answers and choices are back to the start.", &markup)
}

// showMainMenu shows the lesson menu
func (b *Bot) showMainMenu(chatID int64) error {
	markup := createKeyboard(MainMenuButtons())
	return b.sendHTML(chatID, "📚 Lesson menu - choose a section:", &markup)
}

// showSection renders one menu section from the chat's current state
func (b *Bot) showSection(ctx context.Context, chatID int64, section string) error {
	if section == sectionReflect {
		_, _, err := b.apply(ctx, chatID, lesson.ReflectionStarted{}, nil)
		return err
	}

	state, err := b.loadState(ctx, chatID)
	if err != nil {
		return err
	}
	content := b.ctrl.Lesson()
	full := b.ctrl.Render(state)

	switch section {
	case sectionExplore:
		text := bold(content.Explorer.Title) + "\n\n" + toHTML(content.Explorer.Body)
		if err := b.sendHTML(chatID, text, nil); err != nil {
			return err
		}
		return b.renderFrame(chatID, lesson.Frame{Chart: full.Chart, Summary: full.Summary}, nil)

	case sectionQuiz:
		if err := b.sendHTML(chatID, "🎲 "+bold("Quick Quiz"), nil); err != nil {
			return err
		}
		return b.renderFrame(chatID, lesson.Frame{Quiz: full.Quiz}, nil)

	case sectionSummary:
		return b.sendHTML(chatID, summarySectionText(content, state), nil)

	case sectionFocus:
		markup := createKeyboard(choiceButtons(callbackStrand, b.strandLabels(), state.Strand))
		if err := b.sendHTML(chatID, "🎯 "+bold("Learning Focus")+"\nSelect a curriculum strand:", &markup); err != nil {
			return err
		}
		return b.renderFrame(chatID, lesson.Frame{Focus: full.Focus}, nil)

	case sectionResources:
		labels := make([]string, len(content.Resources))
		for i, c := range content.Resources {
			labels[i] = c.Label
		}
		markup := createKeyboard(choiceButtons(callbackResource, labels, -1))
		return b.sendHTML(chatID, "🌐 "+bold("Additional Resources for Bernoulli's Principle"), &markup)

	case sectionPlan:
		markup := createKeyboard(planButtons(b.levelLabels(), state.Level))
		return b.sendHTML(chatID, "📅 "+bold("Personalized Study Plan")+"\nSelect your comfort level with Bernoulli's Principle:", &markup)

	case sectionAvatar:
		markup := createKeyboard(choiceButtons(callbackAvatar, content.Avatars, state.Avatar))
		text := "👤 " + bold("Choose your learning avatar") + "\nThen tell me your name with /name."
		if g := full.Greeting; g != nil {
			text += "\n\n" + bold(g.Text())
		}
		return b.sendHTML(chatID, text, &markup)

	case sectionStandard:
		markup := createKeyboard(choiceButtons(callbackStandard, b.standardLabels(), state.Standard))
		return b.sendHTML(chatID, "📋 "+bold("Select a Common Core Standard"), &markup)

	default:
		return fmt.Errorf("unknown menu section %q", section)
	}
}

func (b *Bot) showResources(chatID int64, category int) error {
	resources := b.ctrl.Lesson().Resources
	if category < 0 || category >= len(resources) {
		return fmt.Errorf("unknown resource category %d", category)
	}
	return b.sendHTML(chatID, resourcesText(resources[category]), nil)
}

func (b *Bot) strandLabels() []string {
	strands := b.ctrl.Lesson().Strands
	labels := make([]string, len(strands))
	for i, s := range strands {
		labels[i] = s.Label()
	}
	return labels
}

func (b *Bot) standardLabels() []string {
	standards := b.ctrl.Lesson().Standards
	labels := make([]string, len(standards))
	for i, s := range standards {
		labels[i] = s.Label()
	}
	return labels
}

func (b *Bot) levelLabels() []string {
	levels := b.ctrl.Lesson().Levels
	labels := make([]string, len(levels))
	for i, l := range levels {
		labels[i] = l.Label()
	}
	return labels
}
