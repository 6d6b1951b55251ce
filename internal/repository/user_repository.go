package repository

import (
	"context"
	"errors"
	"fmt"

	"scene-backend/internal/domain"
	scene_errors "scene-backend/pkg/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoUserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(col *mongo.Collection) UserRepository {
	return &MongoUserRepository{col: col}
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	var u domain.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.User{}, scene_errors.ErrNotFound
		}
		return domain.User{}, err
	}
	return u, nil
}

func (r *MongoUserRepository) Insert(ctx context.Context, u *domain.User) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	u.ID = id
	return id, nil
}
