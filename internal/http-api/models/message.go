package models

import "time"

type Message struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	RoomID    int64     `gorm:"not null;index:idx_messages_room_id" json:"room_id"`
	Name      string    `gorm:"size:40;not null" json:"name"`
	Body      string    `gorm:"size:500;not null" json:"message"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	// Associations
	Room *Room `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE;" json:"room,omitempty"`
}

func (Message) TableName() string {
	return "messages"
}
