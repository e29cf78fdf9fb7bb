package repository

import (
	"context"

	"connecthub/internal/cache"
	"connecthub/internal/models"
	"connecthub/internal/store"

	"gorm.io/gorm"
)

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository returns a GORM-backed store.MessageStore implementation.
func NewMessageRepository(db *gorm.DB) store.MessageStore {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, msg *models.ChatMessage) error {
	msg.Sender = nil
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateConversation(ctx, msg.SenderID, msg.ReceiverID)
	return nil
}

func (r *messageRepository) Conversation(ctx context.Context, userA, userB uint) ([]*models.ChatMessage, error) {
	var messages []*models.ChatMessage
	if err := r.db.WithContext(ctx).
		Preload("Sender").
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		Order("created_at ASC, id ASC").
		Find(&messages).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return messages, nil
}
