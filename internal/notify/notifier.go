package notify

import (
	"context"

	"go.uber.org/zap"
)

// Message is one operator notification.
type Message struct {
	To   string
	Text string
}

type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}

// LogNotifier writes messages to the log. Used in development and when no
// delivery channel is configured.
type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(_ context.Context, msg Message) error {
	n.log.Info("notification", zap.String("to", msg.To), zap.String("text", msg.Text))
	return nil
}
