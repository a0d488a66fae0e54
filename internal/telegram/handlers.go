package telegram

import (
	"context"
	"fmt"
	"html"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stemsi/schedule-bot/internal/model"
	"github.com/stemsi/schedule-bot/internal/schedule"
)

const (
	msgChooseSubgroup = "Выберите вашу подгруппу:"
	msgSubgroupFirst  = "Сначала выберите подгруппу"
	msgServiceError   = "⚠️ Не удалось получить данные. Попробуйте позже."
	msgAdminOnly      = "Команда доступна только администраторам."
	msgUnknown        = "Не понимаю 🤔 Воспользуйтесь кнопками меню или командой /help."
)

const msgHelp = "Я показываю расписание занятий с учётом чётности недели и подгруппы.\n\n" +
	"/today — пары на сегодня\n" +
	"/current — моё расписание на текущую неделю\n" +
	"/next — моё расписание на следующую неделю\n" +
	"/week_even, /week_odd — моё расписание на чётную или нечётную неделю\n" +
	"/general_even, /general_odd — общее расписание группы\n" +
	"/settings — выбрать подгруппу"

// view is one schedule the user can ask for.
type view struct {
	today bool
	week  func(b *Bot) model.WeekType
	mode  schedule.Mode
}

func fixedWeek(w model.WeekType) func(*Bot) model.WeekType {
	return func(*Bot) model.WeekType { return w }
}

func currentWeek(b *Bot) model.WeekType { return b.schedule.CurrentWeek() }
func nextWeek(b *Bot) model.WeekType    { return b.schedule.NextWeek() }

var (
	todayView = view{today: true, mode: schedule.ModePersonal}

	commandViews = map[string]view{
		"today":        todayView,
		"week_even":    {week: fixedWeek(model.WeekEven), mode: schedule.ModePersonal},
		"week_odd":     {week: fixedWeek(model.WeekOdd), mode: schedule.ModePersonal},
		"general_even": {week: fixedWeek(model.WeekEven), mode: schedule.ModeGeneral},
		"general_odd":  {week: fixedWeek(model.WeekOdd), mode: schedule.ModeGeneral},
		"current":      {week: currentWeek, mode: schedule.ModePersonal},
		"next":         {week: nextWeek, mode: schedule.ModePersonal},
	}

	buttonViews = map[string]view{
		btnToday:       todayView,
		btnMyEven:      commandViews["week_even"],
		btnMyOdd:       commandViews["week_odd"],
		btnGeneralEven: commandViews["general_even"],
		btnGeneralOdd:  commandViews["general_odd"],
	}

	callbackViews = map[string]view{
		cbCurrent:        commandViews["current"],
		cbNext:           commandViews["next"],
		cbGeneralCurrent: {week: currentWeek, mode: schedule.ModeGeneral},
		cbGeneralNext:    {week: nextWeek, mode: schedule.ModeGeneral},
		cbToday:          todayView,
	}

	subgroupButtons = map[string]model.Subgroup{
		btnFirstGroup:  model.SubgroupFirst,
		btnSecondGroup: model.SubgroupSecond,
	}

	subgroupCallbacks = map[string]model.Subgroup{
		cbSubgroupFirst:  model.SubgroupFirst,
		cbSubgroupSecond: model.SubgroupSecond,
	}
)

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message, user *model.User) error {
	chatID := msg.Chat.ID

	if msg.IsCommand() {
		switch cmd := msg.Command(); cmd {
		case "start":
			return b.sendGreeting(chatID, user, profileOf(msg.From))
		case "help":
			b.reply(chatID, msgHelp, MainMenu())
			return nil
		case "settings":
			return b.askSubgroup(ctx, chatID, msgChooseSubgroup)
		case "reload":
			return b.reload(ctx, chatID, user)
		default:
			if v, ok := commandViews[cmd]; ok {
				return b.showView(ctx, chatID, user, v)
			}
			b.reply(chatID, msgUnknown, nil)
			return nil
		}
	}

	text := strings.TrimSpace(msg.Text)
	if text == btnChangeGroup {
		return b.askSubgroup(ctx, chatID, msgChooseSubgroup)
	}
	if sg, ok := subgroupButtons[text]; ok {
		state, err := b.states.Get(ctx, chatID)
		if err != nil {
			return err
		}
		if state == StateChooseSubgroup {
			return b.saveSubgroup(ctx, chatID, user, sg, MainMenu())
		}
	}
	if v, ok := buttonViews[text]; ok {
		return b.showView(ctx, chatID, user, v)
	}

	b.reply(chatID, msgUnknown, nil)
	return nil
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, user *model.User) error {
	chatID := cb.Message.Chat.ID

	if sg, ok := subgroupCallbacks[cb.Data]; ok {
		return b.saveSubgroup(ctx, chatID, user, sg, InlineMenu(true))
	}
	if cb.Data == cbChangeSubgroup {
		b.reply(chatID, msgChooseSubgroup, InlineMenu(false))
		return nil
	}
	if v, ok := callbackViews[cb.Data]; ok {
		return b.showView(ctx, chatID, user, v)
	}

	b.log.Debug().Str("data", cb.Data).Msg("Unknown callback")
	return nil
}

// sendGreeting addresses the sender by their current Telegram name; the stored
// one may lag behind while the profile update is queued.
func (b *Bot) sendGreeting(chatID int64, user *model.User, from model.Profile) error {
	name := from.FullName
	if name == "" {
		name = user.DisplayName()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Привет, <b>%s</b>!\n\n", html.EscapeString(name))
	if !user.Subgroup.Valid() {
		sb.WriteString("Это бот с расписанием 👋\nДля начала выбери свою подгруппу:")
		b.replyHTML(chatID, sb.String(), InlineMenu(false))
		return nil
	}
	fmt.Fprintf(&sb, "Твоя подгруппа: %d\n\nВыбери, что хочешь посмотреть:", user.Subgroup)
	b.replyHTML(chatID, sb.String(), InlineMenu(true))
	return nil
}

func (b *Bot) askSubgroup(ctx context.Context, chatID int64, prompt string) error {
	if err := b.states.Set(ctx, chatID, StateChooseSubgroup); err != nil {
		return err
	}
	b.reply(chatID, prompt, SubgroupMenu())
	return nil
}

func (b *Bot) saveSubgroup(ctx context.Context, chatID int64, user *model.User, sg model.Subgroup, markup interface{}) error {
	if err := b.users.SetSubgroup(ctx, user.ID, sg); err != nil {
		b.reply(chatID, msgServiceError, nil)
		return err
	}
	user.Subgroup = sg
	if err := b.states.Clear(ctx, chatID); err != nil {
		b.log.Warn().Err(err).Int64("chat_id", chatID).Msg("Failed to clear chat state")
	}
	b.reply(chatID, fmt.Sprintf("Подгруппа сохранена: %d", sg), markup)
	return nil
}

// showView renders v. Personal views need a chosen subgroup; without one the
// user is asked to pick it first.
func (b *Bot) showView(ctx context.Context, chatID int64, user *model.User, v view) error {
	if v.mode == schedule.ModePersonal && !user.Subgroup.Valid() {
		return b.askSubgroup(ctx, chatID, msgSubgroupFirst)
	}

	var (
		text string
		err  error
	)
	if v.today {
		text, err = b.schedule.Today(ctx, user.Subgroup)
	} else {
		text, err = b.schedule.Week(ctx, v.week(b), user.Subgroup, v.mode)
	}
	if err != nil {
		b.reply(chatID, msgServiceError, nil)
		return err
	}
	b.reply(chatID, text, nil)
	return nil
}

func (b *Bot) reload(ctx context.Context, chatID int64, user *model.User) error {
	if !user.IsAdmin {
		b.reply(chatID, msgAdminOnly, nil)
		return nil
	}
	n, err := b.schedule.InvalidateCache(ctx)
	if err != nil {
		b.reply(chatID, msgServiceError, nil)
		return err
	}
	b.log.Info().Int64("admin_id", user.ID).Int("keys", n).Msg("Schedule cache reloaded")
	b.reply(chatID, fmt.Sprintf("Кэш расписания очищен (%d).", n), nil)
	return nil
}
