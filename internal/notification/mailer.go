package notification

import (
	"context"
	"fmt"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"redcross/internal/metrics"
)

// Result reports the outcome of one send. It is a value, never an error, so
// callers on fire-and-forget paths cannot fail because of delivery.
type Result struct {
	Success   bool   `json:"success"`
	Transport string `json:"transport"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Sender delivers a rendered template to one recipient.
type Sender interface {
	Send(ctx context.Context, to string, tpl Template) Result
}

// Mailer is the Sender backed by the transport chosen at startup.
type Mailer struct {
	transport Transport
	from      string
	breaker   *gobreaker.CircuitBreaker
	logger    *zap.Logger
}

// NewMailer creates a Mailer. breaker may be nil.
func NewMailer(transport Transport, from string, breaker *gobreaker.CircuitBreaker, logger *zap.Logger) *Mailer {
	return &Mailer{
		transport: transport,
		from:      from,
		breaker:   breaker,
		logger:    logger,
	}
}

// Send implements Sender.
func (m *Mailer) Send(ctx context.Context, to string, tpl Template) (res Result) {
	res.Transport = m.transport.Name()
	defer func() {
		if r := recover(); r != nil {
			res.Success = false
			res.Error = fmt.Sprintf("transport panic: %v", r)
		}
		outcome := metrics.ResultSuccess
		if !res.Success {
			outcome = metrics.ResultFailure
			m.logger.Error("email send failed",
				zap.String("transport", res.Transport),
				zap.String("to", to),
				zap.String("subject", tpl.Subject),
				zap.String("error", res.Error),
			)
		}
		metrics.NotificationsTotal.WithLabelValues(res.Transport, outcome).Inc()
	}()

	email := Email{
		From:    m.from,
		To:      to,
		Subject: tpl.Subject,
		HTML:    tpl.HTML,
		Text:    PlainText(tpl.HTML),
	}

	deliver := func() (interface{}, error) {
		return m.transport.Deliver(ctx, email)
	}

	var (
		out interface{}
		err error
	)
	if m.breaker != nil {
		out, err = m.breaker.Execute(deliver)
	} else {
		out, err = deliver()
	}
	if err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = true
	res.MessageID, _ = out.(string)
	m.logger.Info("email sent",
		zap.String("transport", res.Transport),
		zap.String("to", to),
		zap.String("subject", tpl.Subject),
		zap.String("message_id", res.MessageID),
	)
	return res
}
