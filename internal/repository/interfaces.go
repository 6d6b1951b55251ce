package repository

import (
	"context"

	"scene-backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository is the persistence boundary for user records.
type UserRepository interface {
	// FindByEmail returns scene_errors.ErrNotFound when no user has the email.
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	// Insert stores the user and returns the store-assigned identifier.
	Insert(ctx context.Context, u *domain.User) (primitive.ObjectID, error)
}

// ChatRepository is the persistence boundary for chat records.
type ChatRepository interface {
	Insert(ctx context.Context, c *domain.Chat) error
	// FindByUser returns chats owned by userID in the store's natural order,
	// at most limit of them.
	FindByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]domain.Chat, error)
}
