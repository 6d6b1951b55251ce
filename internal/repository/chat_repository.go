package repository

import (
	"context"

	"scene-backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoChatRepository struct {
	col *mongo.Collection
}

func NewChatRepository(col *mongo.Collection) ChatRepository {
	return &MongoChatRepository{col: col}
}

func (r *MongoChatRepository) Insert(ctx context.Context, c *domain.Chat) error {
	res, err := r.col.InsertOne(ctx, c)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.ID = id
	}
	return nil
}

func (r *MongoChatRepository) FindByUser(ctx context.Context, userID primitive.ObjectID, limit int64) ([]domain.Chat, error) {
	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var chats []domain.Chat
	if err := cur.All(ctx, &chats); err != nil {
		return nil, err
	}
	return chats, nil
}
