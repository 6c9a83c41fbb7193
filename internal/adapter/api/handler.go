package api

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"intent-relay/internal/domain/entity"
)

// Relay is the use case behind the chat endpoint.
type Relay interface {
	Execute(ctx context.Context, req entity.ChatRequest) (*entity.ChatResponse, error)
}

type ChatHandler struct {
	relay Relay
	log   *slog.Logger
}

func NewChatHandler(relay Relay, log *slog.Logger) *ChatHandler {
	return &ChatHandler{relay: relay, log: log}
}

func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	var req entity.ChatRequest
	// An empty body is a request without a message, not a malformed one.
	// The body is JSON whatever Content-Type the client sent.
	if body := c.Body(); len(body) > 0 {
		if err := c.App().Config().JSONDecoder(body, &req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(entity.ChatResponse{Message: "[bad-request] invalid request body"})
		}
	}

	resp, err := h.relay.Execute(c.UserContext(), req)
	if err != nil {
		// The delivery layer maps domain errors to HTTP status codes
		if entity.IsValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(entity.ChatResponse{Message: "[bad-request] " + err.Error()})
		}
		h.log.Error("chat request failed",
			slog.String("request_id", requestID(c)),
			slog.Bool("configuration", errors.Is(err, entity.ErrMissingConfiguration)),
			slog.Any("error", err))
		return c.Status(fiber.StatusInternalServerError).JSON(entity.ChatResponse{
			Message: "[server-error] " + entity.ErrorName(err) + ": " + err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// MethodNotAllowed answers any non-POST verb on a chat route without reading the body.
func MethodNotAllowed(c *fiber.Ctx) error {
	c.Set(fiber.HeaderAllow, fiber.MethodPost)
	return c.Status(fiber.StatusMethodNotAllowed).JSON(entity.ChatResponse{Message: "Method Not Allowed"})
}

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}
