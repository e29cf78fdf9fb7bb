package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"connecthub/internal/models"
)

// MessageMemory is the in-memory MessageStore. Messages append in arrival
// order and are never mutated.
type MessageMemory struct {
	mu       sync.RWMutex
	nextID   uint
	messages []*models.ChatMessage
}

// NewMessageMemory returns an empty in-memory message store.
func NewMessageMemory() *MessageMemory {
	return &MessageMemory{}
}

func (s *MessageMemory) Create(_ context.Context, msg *models.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	msg.ID = s.nextID
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	stored := *msg
	stored.Sender = nil
	s.messages = append(s.messages, &stored)
	return nil
}

func (s *MessageMemory) Conversation(_ context.Context, userA, userB uint) ([]*models.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.ChatMessage, 0)
	for _, m := range s.messages {
		if (m.SenderID == userA && m.ReceiverID == userB) ||
			(m.SenderID == userB && m.ReceiverID == userA) {
			c := *m
			out = append(out, &c)
		}
	}
	// Append order already matches arrival; the stable sort orders by
	// creation time without disturbing ties.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
