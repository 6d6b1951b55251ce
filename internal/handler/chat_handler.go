package handler

import (
	"net/http"

	"scene-backend/internal/services"
	"scene-backend/internal/transport/httpdto"
	scene_errors "scene-backend/pkg/errors"
	"scene-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles chat HTTP endpoints.
type ChatHandler struct {
	service *services.ChatService
	logger  *logger.Logger
}

// NewChatHandler creates a chat handler.
func NewChatHandler(service *services.ChatService, l *logger.Logger) *ChatHandler {
	return &ChatHandler{service: service, logger: l}
}

// CreateChat handles chat creation. A malformed user id and a store
// failure both collapse into the same generic error.
func (h *ChatHandler) CreateChat(c *gin.Context) {
	var req httpdto.CreateChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, scene_errors.ErrInvalidInput, "Invalid request")
		return
	}

	h.logger.Infof("Creating chat for user %s with name %s", req.UserID, req.ChatName)

	chatID, err := h.service.CreateChat(c.Request.Context(), req.UserID, req.ChatName)
	if err != nil {
		// Malformed ids and store failures collapse to the same 500 here.
		h.logger.Errorf("Error creating chat: %s", err)
		writeError(c, err, "Error creating chat")
		return
	}

	c.JSON(http.StatusOK, httpdto.CreateChatResponse{
		Message: "Chat created successfully",
		ChatID:  chatID,
	})
}

// UserChats lists chats owned by the user in the path, capped at 100.
func (h *ChatHandler) UserChats(c *gin.Context) {
	userID := c.Param("user_id")

	chats, err := h.service.UserChats(c.Request.Context(), userID)
	if err != nil {
		h.logger.Errorf("Error fetching chats for user %s: %s", userID, err)
		writeError(c, err, "Failed to fetch chats")
		return
	}

	c.JSON(http.StatusOK, httpdto.UserChatsResponse{Chats: chats})
}
