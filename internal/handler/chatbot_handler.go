package handler

import (
	"context"
	"net/http"
	"unicode"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	"redcross/internal/chatbot"
)

// ChatResponder answers chatbot messages.
type ChatResponder interface {
	Reply(ctx context.Context, raw string) (chatbot.Reply, error)
}

// ChatbotHandler handles the chatbot endpoint.
type ChatbotHandler struct {
	responder ChatResponder
}

// NewChatbotHandler creates a new chatbot handler.
func NewChatbotHandler(responder ChatResponder) *ChatbotHandler {
	return &ChatbotHandler{responder: responder}
}

// ChatRequest is one user message.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the chatbot's answer.
type ChatResponse struct {
	Success    bool   `json:"success"`
	Reply      string `json:"reply,omitempty"`
	Source     string `json:"source,omitempty"`
	Restricted bool   `json:"restricted,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Message godoc
// @Summary Ask the chatbot
// @Description Out-of-scope questions get a fixed redirect reply. Answers come from the model when available, otherwise from the built-in knowledge base.
// @Tags chatbot
// @Accept json
// @Produce json
// @Param request body ChatRequest true "User message"
// @Success 200 {object} ChatResponse
// @Failure 400 {object} ChatResponse
// @Failure 429 {object} errors.ErrorResponse
// @Router /chatbot/message [post]
func (h *ChatbotHandler) Message(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ChatResponse{Error: "Invalid request body"})
	}

	reply, err := h.responder.Reply(c.Request().Context(), req.Message)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ChatResponse{Error: capitalize(err.Error())})
	}
	return c.JSON(http.StatusOK, ChatResponse{
		Success:    true,
		Reply:      reply.Text,
		Source:     reply.Source,
		Restricted: reply.Restricted,
	})
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
