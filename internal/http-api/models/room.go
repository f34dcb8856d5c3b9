package models

import "time"

// LobbyRoomName is the seeded public room that is exempt from expiration.
const LobbyRoomName = "Lobby"

type Room struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"uniqueIndex;size:60;not null" json:"name"`
	IsPrivate    bool      `gorm:"not null;default:false" json:"is_private"`
	PasswordHash *string   `gorm:"size:100" json:"-"` // nil for public rooms
	InviteCode   string    `gorm:"uniqueIndex;size:6;not null" json:"invite_code"`
	OwnerName    string    `gorm:"size:40;not null" json:"owner_name"`
	CreatedAt    time.Time `json:"created_at"`
	LastActiveAt time.Time `gorm:"index;not null" json:"last_active_at"`
}

func (Room) TableName() string {
	return "rooms"
}
