package dto

// Data Transfer Objects for room requests and responses

import (
	"time"

	"roomhub/internal/http-api/repository"
)

// CreateRoomRequest: payload for creating a room
type CreateRoomRequest struct {
	Name      string `json:"name" binding:"required,max=60"`
	OwnerName string `json:"owner_name" binding:"required,max=40"`
	IsPrivate bool   `json:"is_private"`
	Password  string `json:"password" binding:"omitempty,max=72"`
}

// CreateRoomResponse: response payload after successful room creation.
// The creator is enrolled as the first member, so the response already
// carries a usable member token.
type CreateRoomResponse struct {
	RoomID      int64  `json:"room_id"`
	RoomName    string `json:"room_name"`
	InviteCode  string `json:"invite_code"`
	OwnerName   string `json:"owner_name"`
	MemberToken string `json:"member_token"`
	IsOwner     bool   `json:"is_owner"`
}

// JoinRoomRequest: payload for joining a room by name, invite code or id
type JoinRoomRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	MemberName string `json:"member_name" binding:"required,max=40"`
	Password   string `json:"password" binding:"omitempty,max=72"`
}

// JoinRoomResponse: response payload after joining a room
type JoinRoomResponse struct {
	RoomID      int64  `json:"room_id"`
	RoomName    string `json:"room_name"`
	InviteCode  string `json:"invite_code"`
	OwnerName   string `json:"owner_name"`
	IsPrivate   bool   `json:"is_private"`
	MemberName  string `json:"member_name"`
	MemberToken string `json:"member_token"`
	IsOwner     bool   `json:"is_owner"` // display convenience, not a capability
}

// RotateInviteRequest: payload for rotating a room's invite code (owner only)
type RotateInviteRequest struct {
	MemberName  string `json:"member_name" binding:"required,max=40"`
	MemberToken string `json:"member_token" binding:"required"`
}

// RotateInviteResponse: response payload carrying the fresh invite code
type RotateInviteResponse struct {
	InviteCode string `json:"invite_code"`
}

// RotatePasswordRequest: payload for rotating a room's password (owner only)
type RotatePasswordRequest struct {
	MemberName  string `json:"member_name" binding:"required,max=40"`
	MemberToken string `json:"member_token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=4,max=72"`
}

// RoomSummary: one row of the room listing
type RoomSummary struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	IsPrivate    bool      `json:"is_private"`
	InviteCode   string    `json:"invite_code"`
	OwnerName    string    `json:"owner_name"`
	LastActiveAt time.Time `json:"last_active_at"`
	MemberCount  int64     `json:"member_count"`
}

// FromRoomWithMembers converts an annotated room row to a RoomSummary DTO
func FromRoomWithMembers(row *repository.RoomWithMembers) *RoomSummary {
	return &RoomSummary{
		ID:           row.ID,
		Name:         row.Name,
		IsPrivate:    row.IsPrivate,
		InviteCode:   row.InviteCode,
		OwnerName:    row.OwnerName,
		LastActiveAt: row.LastActiveAt,
		MemberCount:  row.MemberCount,
	}
}
