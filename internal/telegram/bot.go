// Package telegram is the chat front end: it long-polls Telegram, resolves
// the sender to a stored user and answers commands, menu buttons and inline
// callbacks with rendered schedules.
package telegram

import (
	"context"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"github.com/stemsi/schedule-bot/internal/model"
	"github.com/stemsi/schedule-bot/internal/schedule"
)

// API is the subset of *tgbotapi.BotAPI the bot uses.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// ScheduleViews renders schedules.
type ScheduleViews interface {
	Today(ctx context.Context, subgroup model.Subgroup) (string, error)
	Week(ctx context.Context, week model.WeekType, subgroup model.Subgroup, mode schedule.Mode) (string, error)
	CurrentWeek() model.WeekType
	NextWeek() model.WeekType
	InvalidateCache(ctx context.Context) (int, error)
}

// Users resolves and updates chat users.
type Users interface {
	EnsureUser(ctx context.Context, p model.Profile) (*model.User, error)
	SetSubgroup(ctx context.Context, userID int64, subgroup model.Subgroup) error
}

// Deps are the collaborators of a Bot.
type Deps struct {
	Schedule    ScheduleViews
	Users       Users
	States      StateStore
	PollTimeout int
	Log         zerolog.Logger
}

// Bot dispatches Telegram updates.
type Bot struct {
	api         API
	schedule    ScheduleViews
	users       Users
	states      StateStore
	pollTimeout int
	log         zerolog.Logger
}

const updateTimeout = 30 * time.Second

// NewBot creates a new Bot.
func NewBot(api API, deps Deps) *Bot {
	if deps.PollTimeout <= 0 {
		deps.PollTimeout = 60
	}
	return &Bot{
		api:         api,
		schedule:    deps.Schedule,
		users:       deps.Users,
		states:      deps.States,
		pollTimeout: deps.PollTimeout,
		log:         deps.Log.With().Str("component", "telegram_bot").Logger(),
	}
}

// Run long-polls updates until ctx is cancelled. Updates are handled one at
// a time in arrival order.
func (b *Bot) Run(ctx context.Context) error {
	if _, err := b.api.Request(tgbotapi.NewSetMyCommands(commandList...)); err != nil {
		b.log.Warn().Err(err).Msg("Failed to register command list")
	}

	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = b.pollTimeout
	updates := b.api.GetUpdatesChan(cfg)
	b.log.Info().Int("poll_timeout", b.pollTimeout).Msg("Polling for updates")

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.log.Info().Msg("Polling stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			uctx, cancel := context.WithTimeout(ctx, updateTimeout)
			if err := b.HandleUpdate(uctx, update); err != nil {
				b.log.Error().Err(err).Int("update_id", update.UpdateID).Msg("Update handling failed")
			}
			cancel()
		}
	}
}

// HandleUpdate resolves the sender and routes one update.
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) error {
	switch {
	case update.Message != nil && update.Message.From != nil:
		msg := update.Message
		user, err := b.users.EnsureUser(ctx, profileOf(msg.From))
		if err != nil {
			b.reply(msg.Chat.ID, msgServiceError, nil)
			return err
		}
		return b.handleMessage(ctx, msg, user)

	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil:
		cb := update.CallbackQuery
		// Stop the button spinner whatever happens next.
		defer func() { _, _ = b.api.Request(tgbotapi.NewCallback(cb.ID, "")) }()
		user, err := b.users.EnsureUser(ctx, profileOf(cb.From))
		if err != nil {
			b.reply(cb.Message.Chat.ID, msgServiceError, nil)
			return err
		}
		return b.handleCallback(ctx, cb, user)
	}
	return nil
}

func profileOf(u *tgbotapi.User) model.Profile {
	return model.Profile{
		ID:       u.ID,
		Username: u.UserName,
		FullName: strings.TrimSpace(u.FirstName + " " + u.LastName),
	}
}

// reply sends text split into Telegram-sized chunks. markup is attached to
// the last chunk.
func (b *Bot) reply(chatID int64, text string, markup interface{}) {
	b.send(chatID, text, "", markup)
}

func (b *Bot) replyHTML(chatID int64, text string, markup interface{}) {
	b.send(chatID, text, tgbotapi.ModeHTML, markup)
}

func (b *Bot) send(chatID int64, text, parseMode string, markup interface{}) {
	chunks := SplitMessage(text, MaxMessageLength)
	for i, chunk := range chunks {
		msg := tgbotapi.NewMessage(chatID, chunk)
		msg.ParseMode = parseMode
		if i == len(chunks)-1 && markup != nil {
			msg.ReplyMarkup = markup
		}
		if _, err := b.api.Send(msg); err != nil {
			b.log.Error().Err(err).Int64("chat_id", chatID).Msg("Send failed")
			return
		}
	}
}
