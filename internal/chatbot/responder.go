// Package chatbot answers questions from the website chat widget. Each
// message is handled independently; no conversation state is kept.
package chatbot

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"redcross/internal/metrics"
)

// Reply sources.
const (
	SourceAI            = "ai"
	SourceKnowledgeBase = "knowledge_base"
	sourceRestricted    = "restricted"
)

// ErrModelUnavailable is returned when no LLM is configured.
var ErrModelUnavailable = errors.New("model not configured")

// Reply is the chatbot's answer to one message.
type Reply struct {
	Text       string
	Source     string
	Restricted bool
}

// Responder turns a user message into a Reply.
type Responder struct {
	llm     LLM
	breaker *gobreaker.CircuitBreaker
	timeout time.Duration
	logger  *zap.Logger
}

// NewResponder creates a Responder. llm and breaker may be nil; without an
// llm every in-scope message is answered from the knowledge base.
func NewResponder(llm LLM, breaker *gobreaker.CircuitBreaker, logger *zap.Logger) *Responder {
	return &Responder{
		llm:     llm,
		breaker: breaker,
		timeout: 15 * time.Second,
		logger:  logger,
	}
}

// Reply validates raw and answers it. Only validation errors are returned.
func (r *Responder) Reply(ctx context.Context, raw string) (Reply, error) {
	msg, err := ValidateMessage(raw)
	if err != nil {
		return Reply{}, err
	}

	if !InScope(msg) {
		metrics.ChatbotRepliesTotal.WithLabelValues(sourceRestricted).Inc()
		return Reply{Text: RedirectReply, Restricted: true}, nil
	}

	r.logger.Info("chatbot query", zap.String("message", truncate(msg, 50)))

	text, err := r.generate(ctx, msg)
	if err == nil {
		metrics.ChatbotRepliesTotal.WithLabelValues(SourceAI).Inc()
		return Reply{Text: text, Source: SourceAI}, nil
	}

	reply, topicName := CannedReply(msg)
	r.logger.Warn("model unavailable, using knowledge base",
		zap.String("topic", topicName),
		zap.Error(err),
	)
	metrics.ChatbotRepliesTotal.WithLabelValues(SourceKnowledgeBase).Inc()
	return Reply{Text: reply, Source: SourceKnowledgeBase}, nil
}

func (r *Responder) generate(ctx context.Context, msg string) (string, error) {
	if r.llm == nil {
		return "", ErrModelUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	call := func() (interface{}, error) {
		return r.llm.Generate(ctx, Prompt(msg))
	}
	var (
		out interface{}
		err error
	)
	if r.breaker != nil {
		out, err = r.breaker.Execute(call)
	} else {
		out, err = call()
	}
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(out.(string))
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}
