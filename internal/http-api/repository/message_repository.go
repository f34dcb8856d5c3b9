package repository

import (
	"roomhub/internal/http-api/models"

	"gorm.io/gorm"
)

// MessageRepository defines the interface for message data operations.
type MessageRepository interface {
	Create(message *models.Message) error
	RecentByRoom(roomID int64, limit int) ([]models.Message, error)
}

// messageRepository is the GORM implementation of MessageRepository.
type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

// RecentByRoom returns up to limit messages, newest first. The service
// layer reverses the page into chronological order before returning it.
func (r *messageRepository) RecentByRoom(roomID int64, limit int) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.
		Where("room_id = ?", roomID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&messages).Error
	return messages, err
}
