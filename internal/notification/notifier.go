package notification

import (
	"context"
	"log/slog"
)

const (
	// KindOTPCode is a one-time code delivery.
	KindOTPCode = "otp_code"
	// KindVerification is an admin verification queue event.
	KindVerification = "admin_verification"
)

// Message describes an outbound notification payload.
type Message struct {
	Kind        string
	Destination string
	Body        string
}

// Notifier delivers notifications to a downstream channel (SMS, push).
type Notifier interface {
	Send(ctx context.Context, message Message) error
}

// LoggerNotifier is the development delivery channel: it writes the message
// to the structured logger instead of sending anything.
type LoggerNotifier struct {
	logger *slog.Logger
}

// NewLoggerNotifier constructs a logging notifier.
func NewLoggerNotifier(logger *slog.Logger) *LoggerNotifier {
	return &LoggerNotifier{logger: logger}
}

// Send writes the message to the logger.
func (n *LoggerNotifier) Send(_ context.Context, message Message) error {
	if n == nil || n.logger == nil {
		return nil
	}
	n.logger.Info("notification", "kind", message.Kind, "destination", message.Destination, "body", message.Body)
	return nil
}
