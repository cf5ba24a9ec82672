package telegram

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	tele "gopkg.in/telebot.v3"

	"organizer/pkg/models"
)

type Telegram struct {
	log *logrus.Entry
	bot *tele.Bot
	app App
}

// Notifier pushes service notifications to a fixed chat.
type Notifier struct {
	log  *logrus.Entry
	bot  *tele.Bot
	chat *tele.Chat
}

type App interface {
	CreateTask(ctx context.Context, req models.TaskRequest) (models.Task, error)
	GetTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	GetEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error)
	TodaySummary(ctx context.Context) (models.Summary, error)
}

func NewNotifier(log *logrus.Logger, bot *tele.Bot, chatID int64) *Notifier {
	return &Notifier{
		log:  log.WithField("component", "notifier"),
		bot:  bot,
		chat: &tele.Chat{ID: chatID},
	}
}

func New(log *logrus.Logger, bot *tele.Bot, app App) (*Telegram, error) {
	t := Telegram{
		log: log.WithField("component", "telegram"),
		bot: bot,
		app: app,
	}
	t.initButtons()
	t.initHandlers()
	return &t, nil
}

func NewBot(token string) (*tele.Bot, error) {
	config := tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}
	b, err := tele.NewBot(config)
	if err != nil {
		return nil, fmt.Errorf("new bot failed: %w", err)
	}
	return b, nil
}

func (n *Notifier) Notify(_ context.Context, message string) error {
	if n.chat.ID == 0 {
		n.log.Infof("notification (no chat configured): %s", message)
		return nil
	}
	if _, err := n.bot.Send(n.chat, message); err != nil {
		return fmt.Errorf("tg send message failed: %w", err)
	}
	return nil
}

func (t *Telegram) Run(ctx context.Context) {
	go func() {
		<-ctx.Done()
		t.bot.Stop()
	}()
	t.log.Infof("Starting telegram bot as %v", t.bot.Me.Username)
	t.bot.Start()
}
