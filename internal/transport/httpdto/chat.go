package httpdto

import "scene-backend/internal/services"

// CreateChatRequest is used for POST /chat/create
type CreateChatRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	ChatName string `json:"chat_name" binding:"required"`
}

// CreateChatResponse is returned after successful chat creation
type CreateChatResponse struct {
	Message string `json:"message"`
	ChatID  string `json:"chat_id"`
}

// UserChatsResponse is returned when listing a user's chats
type UserChatsResponse struct {
	Chats []services.ChatSummary `json:"chats"`
}
