package telegram

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// Reply keyboard buttons.
const (
	btnToday       = "📅 На сегодня"
	btnMyEven      = "📚 Моё расписание (чётная)"
	btnMyOdd       = "📚 Моё расписание (нечётная)"
	btnGeneralEven = "📋 Общее (чётная)"
	btnGeneralOdd  = "📋 Общее (нечётная)"
	btnChangeGroup = "⚙️ Изменить подгруппу"
	btnFirstGroup  = "1 подгруппа"
	btnSecondGroup = "2 подгруппа"
)

// Inline callback data.
const (
	cbSubgroupFirst  = "subgroup_1"
	cbSubgroupSecond = "subgroup_2"
	cbCurrent        = "schedule_current"
	cbNext           = "schedule_next"
	cbGeneralCurrent = "schedule_general_current"
	cbGeneralNext    = "schedule_general_next"
	cbToday          = "show_today_schedule"
	cbChangeSubgroup = "change_subgroup"
)

var commandList = []tgbotapi.BotCommand{
	{Command: "start", Description: "Главное меню"},
	{Command: "today", Description: "Расписание на сегодня"},
	{Command: "current", Description: "Моё расписание на текущую неделю"},
	{Command: "next", Description: "Моё расписание на следующую неделю"},
	{Command: "week_even", Description: "Моё расписание, чётная неделя"},
	{Command: "week_odd", Description: "Моё расписание, нечётная неделя"},
	{Command: "general_even", Description: "Общее расписание, чётная неделя"},
	{Command: "general_odd", Description: "Общее расписание, нечётная неделя"},
	{Command: "settings", Description: "Выбрать подгруппу"},
	{Command: "help", Description: "Справка"},
}

// MainMenu is the persistent reply keyboard.
func MainMenu() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnToday)),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnMyEven),
			tgbotapi.NewKeyboardButton(btnMyOdd),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnGeneralEven),
			tgbotapi.NewKeyboardButton(btnGeneralOdd),
		),
		tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(btnChangeGroup)),
	)
	kb.ResizeKeyboard = true
	return kb
}

// SubgroupMenu is the one-time keyboard shown while choosing a subgroup.
func SubgroupMenu() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewOneTimeReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnFirstGroup),
			tgbotapi.NewKeyboardButton(btnSecondGroup),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

// InlineMenu offers subgroup buttons until one is chosen, then the
// schedule shortcuts.
func InlineMenu(chosen bool) tgbotapi.InlineKeyboardMarkup {
	if !chosen {
		return tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(btnFirstGroup, cbSubgroupFirst),
				tgbotapi.NewInlineKeyboardButtonData(btnSecondGroup, cbSubgroupSecond),
			),
		)
	}
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📅 Текущая неделя", cbCurrent),
			tgbotapi.NewInlineKeyboardButtonData("📅 Следующая неделя", cbNext),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📋 Общее расписание (текущая)", cbGeneralCurrent),
			tgbotapi.NewInlineKeyboardButtonData("📋 Общее расписание (следующая)", cbGeneralNext),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Показать расписание на сегодня", cbToday),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnChangeGroup, cbChangeSubgroup),
		),
	)
}
