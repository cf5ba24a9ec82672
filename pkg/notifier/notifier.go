package notifier

import (
	"context"

	"github.com/sirupsen/logrus"
)

// DummyNotifier logs notifications instead of delivering them. Used by
// the bot-less binary and in tests.
type DummyNotifier struct {
	log *logrus.Entry
}

func NewDummyNotifier(log *logrus.Logger) *DummyNotifier {
	return &DummyNotifier{
		log: log.WithField("component", "notifier"),
	}
}

func (n *DummyNotifier) Notify(_ context.Context, message string) error {
	n.log.Infof("notification: %s", message)
	return nil
}
