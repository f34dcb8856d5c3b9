package handler

import (
	"errors"
	"net/http"
	"strconv"

	"roomhub/internal/http-api/dto"
	"roomhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageService service.MessageService
}

func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// RegisterRoutes registers message-related routes
func (h *MessageHandler) RegisterRoutes(router *gin.RouterGroup) {
	messages := router.Group("/messages")
	{
		messages.GET("", h.List)
		messages.POST("", h.Create)
	}
}

// List returns the most recent messages for a room, oldest first
// GET /api/messages?room_id=N
func (h *MessageHandler) List(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Query("room_id"), 10, 64)
	if err != nil || roomID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "room_id is required"})
		return
	}

	messages, err := h.messageService.Recent(roomID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// Create posts a message to a room on behalf of a verified member
// POST /api/messages
func (h *MessageHandler) Create(c *gin.Context) {
	var req dto.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.messageService.Post(req.RoomID, req.Name, req.Message, req.MemberToken)
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, message)
}
