package notification

import (
	"context"

	"go.uber.org/zap"

	"redcross/internal/config"
)

// Transport names reported in Result.Transport and metrics.
const (
	TransportResend = "resend-api"
	TransportSMTP   = "smtp"
	TransportLog    = "log"
)

// Email is a fully addressed message ready for a transport.
type Email struct {
	From    string
	To      string
	Subject string
	HTML    string
	Text    string
}

// Transport delivers a single email and returns the provider message id.
type Transport interface {
	Name() string
	Deliver(ctx context.Context, email Email) (string, error)
}

// NewTransport picks the transport for the process: the email API when an
// API key is configured, SMTP when host and credentials are configured,
// otherwise log-only.
func NewTransport(cfg config.EmailConfig, logger *zap.Logger) Transport {
	switch {
	case cfg.ResendAPIKey != "":
		logger.Info("email transport selected", zap.String("transport", TransportResend))
		return NewResendTransport(cfg.ResendAPIKey)
	case cfg.SMTPConfigured():
		logger.Info("email transport selected",
			zap.String("transport", TransportSMTP),
			zap.String("host", cfg.Host),
			zap.Int("port", cfg.Port),
			zap.Bool("secure", cfg.Secure),
		)
		return NewSMTPTransport(SMTPConfig{
			Host:     cfg.Host,
			Port:     cfg.Port,
			Secure:   cfg.Secure,
			Username: cfg.User,
			Password: cfg.Pass,
		})
	default:
		logger.Warn("email service not configured, emails will only be logged")
		return NewLogTransport(logger)
	}
}
