// Package bot serves the lesson over Telegram. Inline keyboards stand in for
// the slider, radio groups and tabs; every update is turned into a lesson
// action and the resulting frame is rendered back as messages.
package bot

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/example/bernoulli/internal/database"
	"github.com/example/bernoulli/internal/lesson"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// API is the part of the Telegram Bot API client the bot uses.
// *tgbotapi.BotAPI implements it.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// SessionStore keeps the lesson state of each chat
type SessionStore interface {
	Get(ctx context.Context, chatID int64) (*lesson.State, error)
	Save(ctx context.Context, chatID int64, state lesson.State) error
	Delete(ctx context.Context, chatID int64) error
}

// ChartRenderer renders chart specs to PNG
type ChartRenderer interface {
	PNG(spec lesson.ChartSpec) ([]byte, error)
}

// Bot represents the Telegram bot application
type Bot struct {
	api    API
	ctrl   *lesson.Controller
	store  SessionStore
	charts ChartRenderer
	logger *zap.Logger
	config *BotConfig
}

// New creates a new bot instance
func New(api API, ctrl *lesson.Controller, store SessionStore, charts ChartRenderer, logger *zap.Logger, config *BotConfig) *Bot {
	if config == nil {
		config = DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bot{
		api:    api,
		ctrl:   ctrl,
		store:  store,
		charts: charts,
		logger: logger,
		config: config,
	}
}

// Start polls for updates and handles them one at a time until ctx is done
func (b *Bot) Start(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = b.config.UpdateTimeout

	updates := b.api.GetUpdatesChan(updateConfig)
	b.logger.Info("bot started", zap.Int("update_timeout", updateConfig.Timeout))

	for {
		select {
		case <-ctx.Done():
			b.Stop()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

// Stop stops receiving updates
func (b *Bot) Stop() {
	b.api.StopReceivingUpdates()
	b.logger.Info("bot stopped")
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	var (
		chatID int64
		err    error
	)

	switch {
	case update.Message != nil:
		chatID = update.Message.Chat.ID
		if update.Message.IsCommand() {
			err = b.HandleCommand(ctx, update.Message)
		} else {
			err = b.HandleText(ctx, update.Message)
		}
	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil:
		chatID = update.CallbackQuery.Message.Chat.ID
		err = b.HandleCallback(ctx, update.CallbackQuery)
	default:
		return
	}

	if err != nil {
		b.logger.Error("failed to handle update",
			zap.Int("update_id", update.UpdateID),
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		msg := tgbotapi.NewMessage(chatID, "Sorry, something went wrong. Use /menu to continue.")
		if _, sendErr := b.api.Send(msg); sendErr != nil {
			b.logger.Warn("failed to send error reply", zap.Error(sendErr))
		}
	}
}

// loadState returns the stored state of a chat, or a fresh one
func (b *Bot) loadState(ctx context.Context, chatID int64) (lesson.State, error) {
	state, err := b.store.Get(ctx, chatID)
	if errors.Is(err, database.ErrSessionNotFound) {
		return b.ctrl.NewState(), nil
	}
	if err != nil {
		return lesson.State{}, err
	}
	return *state, nil
}

// apply runs one pass of the lesson loop for a chat: load, dispatch, save,
// render. It reports whether the state changed. An unchanged state leaves the
// source message alone, since Telegram rejects edits that change nothing.
func (b *Bot) apply(ctx context.Context, chatID int64, action lesson.Action, source *tgbotapi.Message) (lesson.State, bool, error) {
	state, err := b.loadState(ctx, chatID)
	if err != nil {
		return state, false, err
	}

	next, frame, err := b.ctrl.Dispatch(state, action)
	if err != nil {
		return state, false, fmt.Errorf("dispatch %T: %w", action, err)
	}

	if err := b.store.Save(ctx, chatID, next); err != nil {
		return next, false, err
	}

	changed := !reflect.DeepEqual(state, next)
	if source != nil && !changed {
		frame.Quiz = nil
		frame.Chart = nil
		frame.Summary = nil
	}

	b.logger.Debug("action applied",
		zap.Int64("chat_id", chatID),
		zap.String("action", fmt.Sprintf("%T", action)),
		zap.Bool("changed", changed))
	return next, changed, b.renderFrame(chatID, frame, source)
}

// edit sends a message edit. An edit identical to the current message is not
// an error.
func (b *Bot) edit(c tgbotapi.Chattable) error {
	_, err := b.api.Request(c)
	if err != nil && strings.Contains(err.Error(), "message is not modified") {
		b.logger.Debug("edit skipped, message not modified")
		return nil
	}
	return err
}
