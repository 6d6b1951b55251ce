package services

import (
	"context"
	"fmt"
	"time"

	"scene-backend/internal/domain"
	"scene-backend/internal/repository"
	scene_errors "scene-backend/pkg/errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// chatFetchLimit caps a single listing; chats beyond it are silently omitted.
const chatFetchLimit = 100

type ChatService struct {
	chats repository.ChatRepository
}

func NewChatService(chats repository.ChatRepository) *ChatService {
	return &ChatService{chats: chats}
}

type ChatSummary struct {
	ChatID    string         `json:"chat_id"`
	ChatName  string         `json:"chat_name"`
	CreatedAt time.Time      `json:"created_at"`
	Frames    []domain.Frame `json:"frames"`
}

// CreateChat stores a new chat record for userID and returns its chat id.
// userID must be a well-formed store identifier; whether a user with that
// identifier exists is not checked.
func (s *ChatService) CreateChat(ctx context.Context, userID, chatName string) (string, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a valid user id", scene_errors.ErrInvalidID, userID)
	}

	chat := &domain.Chat{
		ChatID:    uuid.NewString(),
		UserID:    oid,
		ChatName:  chatName,
		Frames:    []domain.Frame{},
		CreatedAt: time.Now().UTC(),
	}

	if err := s.chats.Insert(ctx, chat); err != nil {
		return "", err
	}
	return chat.ChatID, nil
}

// UserChats lists chats owned by userID, at most chatFetchLimit of them,
// in the store's natural order.
func (s *ChatService) UserChats(ctx context.Context, userID string) ([]ChatSummary, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a valid user id", scene_errors.ErrInvalidID, userID)
	}

	chats, err := s.chats.FindByUser(ctx, oid, chatFetchLimit)
	if err != nil {
		return nil, err
	}

	summaries := make([]ChatSummary, 0, len(chats))
	for _, c := range chats {
		frames := c.Frames
		if frames == nil {
			frames = []domain.Frame{}
		}
		summaries = append(summaries, ChatSummary{
			ChatID:    c.ChatID,
			ChatName:  c.ChatName,
			CreatedAt: c.CreatedAt,
			Frames:    frames,
		})
	}
	return summaries, nil
}
