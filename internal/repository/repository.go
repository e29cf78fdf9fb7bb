// Package repository implements the store contracts on top of GORM so the
// application can run against PostgreSQL (or SQLite in tests) instead of the
// in-memory backend.
package repository

import (
	"strings"

	"connecthub/internal/store"

	"gorm.io/gorm"
)

// NewGormStores returns a store bundle backed by the given database.
func NewGormStores(db *gorm.DB) *store.Stores {
	return &store.Stores{
		Users:    NewUserRepository(db),
		Follows:  NewFollowRepository(db),
		Posts:    NewPostRepository(db),
		Messages: NewMessageRepository(db),
	}
}

// isUniqueConstraintError checks if a DB error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	// PostgreSQL unique violation SQLSTATE 23505; SQLite reports
	// "UNIQUE constraint failed".
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}
