package models

import "time"

type Membership struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	RoomID     int64     `gorm:"not null;uniqueIndex:idx_memberships_room_member" json:"room_id"`
	MemberName string    `gorm:"size:40;not null;uniqueIndex:idx_memberships_room_member" json:"member_name"`
	Token      string    `gorm:"size:40;not null" json:"-"` // opaque secret, reissued on every join
	JoinedAt   time.Time `json:"joined_at"`
	LastSeenAt time.Time `json:"last_seen_at"`

	// Associations
	Room *Room `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE;" json:"room,omitempty"`
}

func (Membership) TableName() string {
	return "memberships"
}
