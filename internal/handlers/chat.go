package handlers

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/gofiber/fiber/v3"

	"portfoliochat/internal/metrics"
	"portfoliochat/internal/models"
	"portfoliochat/internal/responder"
)

// allowedMethods is sent in the Allow header of 405 responses.
const allowedMethods = "GET, POST"

// ChatHandler answers visitor questions.
type ChatHandler struct {
	responder *responder.Responder
	maxBody   int
}

// NewChatHandler creates a chat handler. POST bodies longer than maxBody bytes
// are rejected.
func NewChatHandler(r *responder.Responder, maxBody int) *ChatHandler {
	return &ChatHandler{responder: r, maxBody: maxBody}
}

// Ask handles GET and POST /api/chat.
func (h *ChatHandler) Ask(c fiber.Ctx) error {
	var message string
	switch c.Method() {
	case fiber.MethodGet:
		message = c.Query("message")
	case fiber.MethodPost:
		msg, err := h.messageFromBody(c)
		if err != nil {
			return err
		}
		message = msg
	default:
		c.Set(fiber.HeaderAllow, allowedMethods)
		return fiber.ErrMethodNotAllowed
	}

	answer := h.responder.Answer(message)
	metrics.RecordIntent(string(answer.Intent))
	return c.JSON(answer)
}

// messageFromBody extracts the message of a POST. An empty body counts as {};
// a body without a message field falls back to the query string.
func (h *ChatHandler) messageFromBody(c fiber.Ctx) (string, error) {
	body, err := h.readBody(c)
	if err != nil {
		return "", err
	}

	var req models.ChatRequest
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			return "", fiber.ErrBadRequest
		}
	}
	if req.Message != nil {
		return *req.Message, nil
	}
	return c.Query("message"), nil
}

// readBody returns the request body, reading at most one byte past maxBody
// from a streamed request before rejecting it.
func (h *ChatHandler) readBody(c fiber.Ctx) ([]byte, error) {
	if !c.Request().IsBodyStream() {
		body := c.Body()
		if len(body) > h.maxBody {
			return nil, fiber.ErrRequestEntityTooLarge
		}
		return body, nil
	}

	body, err := io.ReadAll(io.LimitReader(c.Request().BodyStream(), int64(h.maxBody)+1))
	if err != nil {
		return nil, fiber.ErrBadRequest
	}
	if len(body) > h.maxBody {
		// The rest of the body is left unread, so the connection cannot be reused.
		c.Response().Header.SetConnectionClose()
		return nil, fiber.ErrRequestEntityTooLarge
	}
	return body, nil
}
