package notifier

import (
	"context"
	"log/slog"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

// LogNotifier writes messages to the log instead of sending them. Used when
// no mail account is configured.
type LogNotifier struct {
	log *slog.Logger
}

func NewLogNotifier(log *slog.Logger) *LogNotifier {
	return &LogNotifier{
		log: log.With(slog.String("component", "notifier/log")),
	}
}

func (n *LogNotifier) Send(_ context.Context, msg Message) error {
	n.log.Info("email not sent, mail is disabled",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("body", msg.Body),
	)

	return nil
}
