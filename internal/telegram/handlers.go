package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	tele "gopkg.in/telebot.v3"

	"organizer/pkg/models"
)

func (t *Telegram) initHandlers() {
	t.bot.Handle(cmdStart, t.startHandler)
	t.bot.Handle("/tasks", t.tasksHandler)
	t.bot.Handle("/addtask", t.addTaskHandler)
	t.bot.Handle("/events", t.eventsHandler)
	t.bot.Handle("/today", t.todayHandler)
	t.bot.Handle(&tasksBtn, t.tasksHandler)
	t.bot.Handle(&eventsBtn, t.eventsHandler)
	t.bot.Handle(&todayBtn, t.todayHandler)
}

func (t *Telegram) startHandler(ctx tele.Context) error {
	msg := `Personal organizer bot.
/tasks - pending tasks
/addtask <title> - add a task
/events - upcoming events
/today - today's summary`
	return ctx.Send(msg, menu)
}

func (t *Telegram) tasksHandler(ctx tele.Context) error {
	tasks, err := t.app.GetTasks(context.Background(), models.TaskFilter{Status: models.StatusPending})
	if err != nil {
		t.log.Errorf("err getting tasks: %v", err)
		return ctx.Send("Could not fetch tasks, try again later")
	}
	if len(tasks) == 0 {
		return ctx.Send("No pending tasks")
	}
	var b strings.Builder
	b.WriteString("Pending tasks:\n")
	for _, task := range tasks {
		fmt.Fprintf(&b, "- %s [%s]\n", task.Title, task.Priority)
	}
	return ctx.Send(b.String())
}

func (t *Telegram) addTaskHandler(ctx tele.Context) error {
	title := strings.TrimSpace(ctx.Message().Payload)
	if title == "" {
		return ctx.Send("Usage: /addtask <title>")
	}
	task, err := t.app.CreateTask(context.Background(), models.TaskRequest{Title: &title})
	if err != nil {
		t.log.Errorf("err creating task: %v", err)
		return ctx.Send("Could not create the task")
	}
	return ctx.Send(fmt.Sprintf("Added: %s", task.Title))
}

func (t *Telegram) eventsHandler(ctx tele.Context) error {
	now := time.Now().UTC()
	events, err := t.app.GetEvents(context.Background(), models.EventFilter{From: &now})
	if err != nil {
		t.log.Errorf("err getting events: %v", err)
		return ctx.Send("Could not fetch events, try again later")
	}
	if len(events) == 0 {
		return ctx.Send("No upcoming events")
	}
	var b strings.Builder
	b.WriteString("Upcoming events:\n")
	for _, event := range events {
		fmt.Fprintf(&b, "- %s at %s\n", event.Title, event.StartTime.Format("Jan 2 15:04"))
	}
	return ctx.Send(b.String())
}

func (t *Telegram) todayHandler(ctx tele.Context) error {
	summary, err := t.app.TodaySummary(context.Background())
	if err != nil {
		t.log.Errorf("err getting summary: %v", err)
		return ctx.Send("Could not fetch the summary, try again later")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d events, %d pending tasks\n", summary.Date, summary.EventCount, summary.PendingCount)
	for _, event := range summary.Events {
		fmt.Fprintf(&b, "- %s at %s\n", event.Title, event.StartTime.Format("15:04"))
	}
	for _, task := range summary.PendingTasks {
		fmt.Fprintf(&b, "- %s [%s]\n", task.Title, task.Priority)
	}
	return ctx.Send(b.String())
}
