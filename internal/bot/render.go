package bot

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/example/bernoulli/internal/lesson"
	"github.com/example/bernoulli/pkg/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// renderFrame sends the sections of frame to a chat. When source is the
// message whose button produced the frame, slider moves replace its chart and
// a single radio change edits its keyboard instead of sending new messages.
func (b *Bot) renderFrame(chatID int64, frame lesson.Frame, source *tgbotapi.Message) error {
	if frame.Greeting != nil {
		if text := frame.Greeting.Text(); text != "" {
			if err := b.sendHTML(chatID, "✅ "+bold(text), nil); err != nil {
				return err
			}
		} else {
			text := fmt.Sprintf("Avatar set to %s. Tell me your name with /name to get a proper welcome.", bold(frame.Greeting.Avatar))
			if err := b.sendHTML(chatID, text, nil); err != nil {
				return err
			}
		}
	}

	if frame.Standard != nil {
		if err := b.sendHTML(chatID, "📋 Selected standard: "+bold(frame.Standard.Label()), nil); err != nil {
			return err
		}
	}

	if frame.Chart != nil && frame.Summary != nil {
		var photo *tgbotapi.Message
		if source != nil && len(source.Photo) > 0 {
			photo = source
		}
		if err := b.sendChart(chatID, *frame.Chart, *frame.Summary, photo); err != nil {
			return err
		}
	}

	for _, q := range frame.Quiz {
		markup := createKeyboard(quizButtons(q))
		if source != nil && len(frame.Quiz) == 1 {
			edit := tgbotapi.NewEditMessageReplyMarkup(chatID, source.MessageID, markup)
			if err := b.edit(edit); err != nil {
				return fmt.Errorf("failed to update quiz keyboard: %w", err)
			}
			continue
		}
		text := fmt.Sprintf("%s %s", bold(fmt.Sprintf("Question %d:", q.Index+1)), toHTML(q.Item.Prompt))
		if err := b.sendHTML(chatID, text, &markup); err != nil {
			return err
		}
	}

	if frame.Feedback != nil {
		if err := b.sendHTML(chatID, toHTML(frame.Feedback.Result.Message()), nil); err != nil {
			return err
		}
	}

	if frame.ReflectionPrompt != "" {
		text := "🧾 " + bold("Reflection") + "\n\n" + toHTML(frame.ReflectionPrompt) +
			"\n\nSend your answer as a message."
		if err := b.sendHTML(chatID, text, nil); err != nil {
			return err
		}
	}

	if frame.Reflection != nil {
		text := "⚠️ " + toHTML(frame.Reflection.Message)
		if frame.Reflection.Accepted {
			text = toHTML(frame.Reflection.Message) + " 🎈"
		}
		if err := b.sendHTML(chatID, text, nil); err != nil {
			return err
		}
	}

	if frame.Focus != nil {
		if err := b.sendHTML(chatID, focusText(*frame.Focus), nil); err != nil {
			return err
		}
	}

	if frame.Level != nil {
		text := "Comfort level: " + bold(frame.Level.Label()) + "\nPress 📅 Generate My Study Plan to see your plan."
		if err := b.sendHTML(chatID, text, nil); err != nil {
			return err
		}
	}

	if frame.Plan != nil {
		if err := b.sendHTML(chatID, planText(*frame.Plan), nil); err != nil {
			return err
		}
	}

	return nil
}

// sendChart renders the chart and sends it as a photo with the summary as
// caption, or replaces the photo of existing when set. If rendering fails the
// summary still goes out as text.
func (b *Bot) sendChart(chatID int64, spec lesson.ChartSpec, summary lesson.SpeedSummary, existing *tgbotapi.Message) error {
	caption := captionText(summary, b.config.MaxCaptionLength)
	markup := createKeyboard(sliderButtons(summary.Speed))

	png, err := b.charts.PNG(spec)
	if err != nil {
		b.logger.Error("chart rendering failed", zap.Int64("chat_id", chatID), zap.Error(err))
		return b.sendHTML(chatID, caption, &markup)
	}
	file := tgbotapi.FileBytes{Name: "bernoulli.png", Bytes: png}

	if existing != nil {
		media := tgbotapi.NewInputMediaPhoto(file)
		media.Caption = caption
		media.ParseMode = tgbotapi.ModeHTML
		edit := tgbotapi.EditMessageMediaConfig{
			BaseEdit: tgbotapi.BaseEdit{
				ChatID:      chatID,
				MessageID:   existing.MessageID,
				ReplyMarkup: &markup,
			},
			Media: media,
		}
		if err := b.edit(edit); err != nil {
			return fmt.Errorf("failed to update chart: %w", err)
		}
		return nil
	}

	photo := tgbotapi.NewPhoto(chatID, file)
	photo.Caption = caption
	photo.ParseMode = tgbotapi.ModeHTML
	photo.ReplyMarkup = markup
	if _, err := b.api.Send(photo); err != nil {
		return fmt.Errorf("failed to send chart: %w", err)
	}
	return nil
}

func (b *Bot) sendHTML(chatID int64, text string, markup *tgbotapi.InlineKeyboardMarkup) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	if markup != nil {
		msg.ReplyMarkup = *markup
	}
	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// captionText renders the speed summary as HTML of at most max runes. Whole
// lines are dropped from the end so no tag is cut.
func captionText(s lesson.SpeedSummary, max int) string {
	var lines []string
	size := 0
	for _, l := range s.Lines() {
		l = toHTML(l)
		n := utf8.RuneCountInString(l)
		if len(lines) > 0 {
			n++
		}
		if size+n > max {
			break
		}
		lines = append(lines, l)
		size += n
	}
	return strings.Join(lines, "\n")
}

func focusText(f lesson.FocusView) string {
	var sb strings.Builder
	sb.WriteString(toHTML(f.Heading()))
	sb.WriteString("\n\n")
	sb.WriteString(bold("🎯 Recommended Practice:"))
	for _, p := range f.Practice {
		sb.WriteString("\n⭐ ")
		sb.WriteString(bold(p))
	}
	return sb.String()
}

func planText(p lesson.PlanView) string {
	var sb strings.Builder
	sb.WriteString("🎯 Your Personalized Study Plan:\n\n")
	sb.WriteString(bold(p.Plan.Title))
	for _, step := range p.Plan.Steps {
		sb.WriteString("\n• ")
		sb.WriteString(toHTML(step))
	}
	return sb.String()
}

func resourcesText(c models.ResourceCategory) string {
	var sb strings.Builder
	sb.WriteString(bold(c.Label))
	for _, r := range c.Resources {
		sb.WriteString("\n\n")
		sb.WriteString(link(r.Name, r.URL))
		sb.WriteString("\n📝 ")
		sb.WriteString(toHTML(r.Description))
	}
	return sb.String()
}

func welcomeText(l *models.Lesson) string {
	var sb strings.Builder
	for _, c := range l.Credit {
		sb.WriteString(bold(c))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(bold(l.Title))
	for _, s := range l.Intro {
		sb.WriteString("\n\n")
		if s.Title != "Welcome" {
			sb.WriteString(bold(s.Title))
			sb.WriteString("\n")
		}
		sb.WriteString(toHTML(s.Body))
	}
	sb.WriteString("\n\n")
	sb.WriteString(toHTML(l.Alignment))
	return sb.String()
}

func summarySectionText(l *models.Lesson, s lesson.State) string {
	var sb strings.Builder
	sb.WriteString(bold(l.Summary.Title))
	sb.WriteString("\n\n")
	sb.WriteString(toHTML(l.Summary.Body))
	if s.Standard >= 0 && s.Standard < len(l.Standards) {
		sb.WriteString("\n\n")
		sb.WriteString(bold("📋 Selected Standard:"))
		sb.WriteString(" ")
		sb.WriteString(toHTML(l.Standards[s.Standard].Label()))
	}
	if s.Strand >= 0 && s.Strand < len(l.Strands) {
		sb.WriteString("\n\n")
		sb.WriteString(bold("🎯 Your Selected Focus:"))
		sb.WriteString(" ")
		sb.WriteString(toHTML(l.Strands[s.Strand].Label()))
	}
	sb.WriteString("\n")
	sb.WriteString(toHTML(l.Footer))
	return sb.String()
}
