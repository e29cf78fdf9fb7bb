package server

import (
	"connecthub/internal/models"
	"connecthub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetConversation handles GET /api/chat/:userId
func (s *Server) GetConversation(c *fiber.Ctx) error {
	ctx := c.Context()
	viewerID := currentUserID(c)

	otherID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	messages, err := s.chatService.ListConversation(ctx, viewerID, otherID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(messages)
}

// SendMessage handles POST /api/chat/:userId
func (s *Server) SendMessage(c *fiber.Ctx) error {
	ctx := c.Context()
	senderID := currentUserID(c)

	receiverID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	msg, err := s.chatService.Send(ctx, service.SendMessageInput{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    req.Content,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(msg)
}
