package service

import (
	"context"
	"strings"

	"connecthub/internal/models"
	"connecthub/internal/store"
)

// MaxMessageLen bounds direct message content length in characters.
const MaxMessageLen = 2000

type ChatService struct {
	messages store.MessageStore
	users    store.UserStore
}

type SendMessageInput struct {
	SenderID   uint
	ReceiverID uint
	Content    string
}

func NewChatService(messages store.MessageStore, users store.UserStore) *ChatService {
	return &ChatService{messages: messages, users: users}
}

// Send delivers a direct message. The receiver must exist and messaging
// yourself is rejected.
func (s *ChatService) Send(ctx context.Context, in SendMessageInput) (*models.ChatMessage, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(content) > MaxMessageLen {
		return nil, models.NewValidationError("Content too long (max 2000 characters)")
	}
	if in.SenderID == in.ReceiverID {
		return nil, models.NewInvalidOperationError("Cannot message yourself")
	}
	if _, err := s.users.GetByID(ctx, in.ReceiverID); err != nil {
		return nil, err
	}

	msg := &models.ChatMessage{
		SenderID:   in.SenderID,
		ReceiverID: in.ReceiverID,
		Content:    content,
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// ListConversation returns the viewer's thread with the other user,
// annotated with ownership and sender usernames for the viewer.
func (s *ChatService) ListConversation(ctx context.Context, viewerID, otherID uint) ([]models.ConversationMessage, error) {
	other, err := s.users.GetByID(ctx, otherID)
	if err != nil {
		return nil, err
	}
	viewer, err := s.users.GetByID(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	raw, err := s.messages.Conversation(ctx, viewerID, otherID)
	if err != nil {
		return nil, err
	}

	out := make([]models.ConversationMessage, 0, len(raw))
	for _, m := range raw {
		cm := models.ConversationMessage{
			ID:        m.ID,
			Content:   m.Content,
			SenderID:  m.SenderID,
			IsOwn:     m.SenderID == viewerID,
			CreatedAt: m.CreatedAt,
		}
		if cm.IsOwn {
			cm.SenderUsername = viewer.Username
		} else {
			cm.SenderUsername = other.Username
		}
		out = append(out, cm)
	}
	return out, nil
}
