package notification

import (
	"context"

	"go.uber.org/zap"
)

// LogTransport only logs messages. It is used when no email provider is
// configured and always succeeds.
type LogTransport struct {
	logger *zap.Logger
}

// NewLogTransport creates a log-only transport.
func NewLogTransport(logger *zap.Logger) *LogTransport {
	return &LogTransport{logger: logger}
}

// Name implements Transport.
func (t *LogTransport) Name() string { return TransportLog }

// Deliver implements Transport.
func (t *LogTransport) Deliver(_ context.Context, email Email) (string, error) {
	preview := email.Text
	if len(preview) > 100 {
		preview = preview[:100]
	}
	t.logger.Info("email not sent, no transport configured",
		zap.String("to", email.To),
		zap.String("subject", email.Subject),
		zap.String("preview", preview),
	)
	return "", nil
}
