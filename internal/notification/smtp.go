package notification

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"mime/multipart"
	"net"
	"net/mail"
	"net/smtp"
	"net/textproto"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// SMTPConfig configures SMTPTransport.
type SMTPConfig struct {
	Host     string
	Port     int
	Secure   bool // implicit TLS (port 465); otherwise STARTTLS when offered
	Username string
	Password string
	Timeout  time.Duration
}

// SMTPTransport sends email over SMTP.
type SMTPTransport struct {
	cfg SMTPConfig
}

// NewSMTPTransport creates an SMTP transport. A zero timeout means 10s.
func NewSMTPTransport(cfg SMTPConfig) *SMTPTransport {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &SMTPTransport{cfg: cfg}
}

// Name implements Transport.
func (t *SMTPTransport) Name() string { return TransportSMTP }

// Deliver implements Transport.
func (t *SMTPTransport) Deliver(ctx context.Context, email Email) (string, error) {
	from, err := envelopeAddress(email.From)
	if err != nil {
		return "", fmt.Errorf("parse sender: %w", err)
	}
	to, err := envelopeAddress(email.To)
	if err != nil {
		return "", fmt.Errorf("parse recipient: %w", err)
	}

	messageID := fmt.Sprintf("<%s@%s>", uuid.New().String(), t.cfg.Host)
	msg, err := buildMIMEMessage(email, messageID, time.Now())
	if err != nil {
		return "", err
	}

	conn, err := t.dial(ctx)
	if err != nil {
		return "", err
	}
	defer func() { _ = conn.Close() }()
	_ = conn.SetDeadline(time.Now().Add(t.cfg.Timeout))

	client, err := smtp.NewClient(conn, t.cfg.Host)
	if err != nil {
		return "", fmt.Errorf("create smtp client: %w", err)
	}
	defer func() { _ = client.Close() }()

	if !t.cfg.Secure {
		if ok, _ := client.Extension("STARTTLS"); ok {
			tlsConfig := &tls.Config{ServerName: t.cfg.Host, MinVersion: tls.VersionTLS12}
			if err := client.StartTLS(tlsConfig); err != nil {
				return "", fmt.Errorf("start tls: %w", err)
			}
		}
	}

	if t.cfg.Username != "" && t.cfg.Password != "" {
		auth := smtp.PlainAuth("", t.cfg.Username, t.cfg.Password, t.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return "", fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := client.Mail(from); err != nil {
		return "", fmt.Errorf("set sender: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return "", fmt.Errorf("set recipient: %w", err)
	}
	w, err := client.Data()
	if err != nil {
		return "", fmt.Errorf("start data: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return "", fmt.Errorf("write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close message: %w", err)
	}
	// The message is accepted once DATA is closed.
	_ = client.Quit()

	return messageID, nil
}

// envelopeAddress extracts the bare address from a header value such as
// "IRCS Tripura <ircstrp@gmail.com>".
func envelopeAddress(header string) (string, error) {
	addr, err := mail.ParseAddress(header)
	if err != nil {
		return "", err
	}
	return addr.Address, nil
}

func (t *SMTPTransport) dial(ctx context.Context) (net.Conn, error) {
	addr := net.JoinHostPort(t.cfg.Host, strconv.Itoa(t.cfg.Port))
	dialer := &net.Dialer{Timeout: t.cfg.Timeout}

	if t.cfg.Secure {
		tlsDialer := &tls.Dialer{
			NetDialer: dialer,
			Config:    &tls.Config{ServerName: t.cfg.Host, MinVersion: tls.VersionTLS12},
		}
		conn, err := tlsDialer.DialContext(ctx, "tcp", addr)
		if err != nil {
			return nil, fmt.Errorf("connect smtp %s: %w", addr, err)
		}
		return conn, nil
	}

	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("connect smtp %s: %w", addr, err)
	}
	return conn, nil
}

// buildMIMEMessage renders a multipart/alternative message with a text and
// an HTML part.
func buildMIMEMessage(email Email, messageID string, now time.Time) ([]byte, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	parts := []struct {
		contentType string
		content     string
	}{
		{"text/plain; charset=UTF-8", email.Text},
		{"text/html; charset=UTF-8", email.HTML},
	}
	for _, p := range parts {
		w, err := mw.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {p.contentType},
			"Content-Transfer-Encoding": {"8bit"},
		})
		if err != nil {
			return nil, fmt.Errorf("create mime part: %w", err)
		}
		if _, err := w.Write([]byte(p.content)); err != nil {
			return nil, fmt.Errorf("write mime part: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close mime writer: %w", err)
	}

	var msg bytes.Buffer
	headers := [][2]string{
		{"From", email.From},
		{"To", email.To},
		{"Subject", mime.QEncoding.Encode("utf-8", email.Subject)},
		{"Date", now.Format(time.RFC1123Z)},
		{"Message-ID", messageID},
		{"MIME-Version", "1.0"},
		{"Content-Type", "multipart/alternative; boundary=" + mw.Boundary()},
	}
	for _, h := range headers {
		fmt.Fprintf(&msg, "%s: %s\r\n", h[0], h[1])
	}
	msg.WriteString("\r\n")
	msg.Write(body.Bytes())
	return msg.Bytes(), nil
}
