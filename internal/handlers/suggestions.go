package handlers

import (
	"github.com/gofiber/fiber/v3"

	"portfoliochat/internal/responder"
)

// SuggestionsHandler serves the chat widget's opening state.
type SuggestionsHandler struct {
	suggestions responder.Suggestions
}

// NewSuggestionsHandler creates a suggestions handler.
func NewSuggestionsHandler(s responder.Suggestions) *SuggestionsHandler {
	return &SuggestionsHandler{suggestions: s}
}

// List returns the greeting and suggested prompts.
func (h *SuggestionsHandler) List(c fiber.Ctx) error {
	return c.JSON(h.suggestions)
}
