package telegram

import tele "gopkg.in/telebot.v3"

const cmdStart = "/start"

func (t *Telegram) initButtons() {
	menu.Inline(
		menu.Row(tasksBtn),
		menu.Row(eventsBtn),
		menu.Row(todayBtn))
}

var (
	menu      = &tele.ReplyMarkup{}
	tasksBtn  = menu.Data("Pending tasks", "tasks")
	eventsBtn = menu.Data("Upcoming events", "events")
	todayBtn  = menu.Data("Today's summary", "today")
)
