package notify

import (
	"context"
	"log/slog"

	"stayops/internal/app/policies"
)

// LogNotifier satisfies the notifier port by logging the notification.
// It stands in until the messaging transport for a deployment is configured.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n LogNotifier) Notify(_ context.Context, recipient, template string, payload map[string]string) error {
	if n.Logger != nil {
		n.Logger.Info("notification", "recipient", recipient, "template", template, "payload", payload)
	}
	return nil
}

var _ policies.Notifier = LogNotifier{}
