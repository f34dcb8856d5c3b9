package dto

import (
	"time"

	"roomhub/internal/http-api/models"
)

// PostMessageRequest: payload for posting a message to a room
type PostMessageRequest struct {
	RoomID      int64  `json:"room_id" binding:"required"`
	Name        string `json:"name" binding:"required,max=40"`
	Message     string `json:"message" binding:"required,max=500"`
	MemberToken string `json:"member_token" binding:"required"`
}

// MessageResponse: one message as returned by the API
type MessageResponse struct {
	ID        int64     `json:"id"`
	RoomID    int64     `json:"room_id"`
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// FromModelToMessageResponse converts a Message model to MessageResponse DTO
func FromModelToMessageResponse(message *models.Message) *MessageResponse {
	return &MessageResponse{
		ID:        message.ID,
		RoomID:    message.RoomID,
		Name:      message.Name,
		Message:   message.Body,
		CreatedAt: message.CreatedAt,
	}
}
