package service

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"roomhub/internal/auth"
	"roomhub/internal/http-api/dto"
	"roomhub/internal/http-api/models"
	"roomhub/internal/http-api/repository"

	"gorm.io/gorm"
)

// MinPasswordLength applies to private room passwords.
const MinPasswordLength = 4

// inviteAttempts bounds the retry loop when a freshly generated invite
// code collides with an existing room.
const inviteAttempts = 5

// RoomService is the room directory plus the access-control policy for
// every room-scoped operation.
type RoomService interface {
	EnsureLobby() error
	ExpireStale(now time.Time, ttlDays int) (int, error)
	Create(name, ownerName string, isPrivate bool, password string) (*dto.CreateRoomResponse, error)
	Find(identifier string) (*models.Room, error)
	List() ([]dto.RoomSummary, error)
	Join(identifier, memberName, password string) (*dto.JoinRoomResponse, error)
	RotateInvite(roomID int64, memberName, token string) (string, error)
	RotatePassword(roomID int64, memberName, token, newPassword string) error
}

type roomService struct {
	roomRepo repository.RoomRepository
	members  MembershipService
	now      func() time.Time
}

func NewRoomService(roomRepo repository.RoomRepository, members MembershipService) RoomService {
	return &roomService{
		roomRepo: roomRepo,
		members:  members,
		now:      time.Now,
	}
}

// EnsureLobby idempotently seeds the public Lobby room. The Lobby is
// exempt from expiration.
func (s *roomService) EnsureLobby() error {
	code, err := s.freshInviteCode()
	if err != nil {
		return err
	}
	room := &models.Room{
		Name:         models.LobbyRoomName,
		IsPrivate:    false,
		InviteCode:   code,
		OwnerName:    "system",
		LastActiveAt: s.now(),
	}
	return s.roomRepo.FirstOrCreate(room)
}

// ExpireStale removes every non-Lobby room whose last activity is
// older than ttlDays, together with its memberships and messages.
// Each room is one transaction; a failure on one room does not stop
// the sweep for the rest.
func (s *roomService) ExpireStale(now time.Time, ttlDays int) (int, error) {
	cutoff := now.Add(-time.Duration(ttlDays) * 24 * time.Hour)
	stale, err := s.roomRepo.StaleRooms(cutoff, models.LobbyRoomName)
	if err != nil {
		return 0, err
	}

	removed := 0
	var lastErr error
	for _, room := range stale {
		if err := s.roomRepo.DeleteWithDependents(room.ID); err != nil {
			lastErr = err
			continue
		}
		removed++
	}
	return removed, lastErr
}

// Create validates input, generates a unique invite code and inserts
// the room with its owner enrolled as the first member, atomically.
func (s *roomService) Create(name, ownerName string, isPrivate bool, password string) (*dto.CreateRoomResponse, error) {
	if isPrivate && len(password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	// Check the name first for a friendly error; the unique index is
	// the real guard against a concurrent create.
	if _, err := s.roomRepo.FindByName(name); err == nil {
		return nil, ErrNameTaken
	}

	code, err := s.freshInviteCode()
	if err != nil {
		return nil, err
	}

	var passwordHash *string
	if isPrivate {
		hash, err := auth.HashPassword(password)
		if err != nil {
			return nil, err
		}
		passwordHash = &hash
	}

	token, err := auth.GenerateToken(auth.MemberTokenLength)
	if err != nil {
		return nil, err
	}

	now := s.now()
	room := &models.Room{
		Name:         name,
		IsPrivate:    isPrivate,
		PasswordHash: passwordHash,
		InviteCode:   code,
		OwnerName:    ownerName,
		LastActiveAt: now,
	}
	owner := &models.Membership{
		MemberName: ownerName,
		Token:      token,
		JoinedAt:   now,
		LastSeenAt: now,
	}

	if err := s.roomRepo.CreateWithOwner(room, owner); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrNameTaken
		}
		return nil, err
	}

	return &dto.CreateRoomResponse{
		RoomID:      room.ID,
		RoomName:    room.Name,
		InviteCode:  room.InviteCode,
		OwnerName:   room.OwnerName,
		MemberToken: token,
		IsOwner:     true,
	}, nil
}

// Find resolves a room identifier in a fixed order: exact name match,
// then invite code (compared upper-case), then numeric id. Names,
// codes and ids are each unique in their own namespace; a room named
// like another room's invite code shadows that code here.
func (s *roomService) Find(identifier string) (*models.Room, error) {
	if room, err := s.roomRepo.FindByName(identifier); err == nil {
		return room, nil
	}

	code := strings.ToUpper(strings.TrimSpace(identifier))
	if room, err := s.roomRepo.FindByInviteCode(code); err == nil {
		return room, nil
	}

	if id, err := strconv.ParseInt(identifier, 10, 64); err == nil {
		if room, err := s.roomRepo.FindByID(id); err == nil {
			return room, nil
		}
	}

	return nil, ErrRoomNotFound
}

// List returns all rooms with member counts, most recently active first.
func (s *roomService) List() ([]dto.RoomSummary, error) {
	rows, err := s.roomRepo.ListWithMemberCounts()
	if err != nil {
		return nil, err
	}
	summaries := make([]dto.RoomSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, *dto.FromRoomWithMembers(&row))
	}
	return summaries, nil
}

// Join resolves the room, checks the password for private rooms,
// issues a fresh member token and refreshes room activity.
func (s *roomService) Join(identifier, memberName, password string) (*dto.JoinRoomResponse, error) {
	room, err := s.Find(identifier)
	if err != nil {
		return nil, err
	}

	if room.IsPrivate {
		// A private room without a stored hash rejects every attempt,
		// including the empty password.
		if room.PasswordHash == nil {
			return nil, ErrWrongPassword
		}
		if err := auth.VerifyPassword(*room.PasswordHash, password); err != nil {
			return nil, ErrWrongPassword
		}
	}

	token, err := s.members.Join(room.ID, memberName)
	if err != nil {
		return nil, err
	}
	if err := s.roomRepo.Touch(room.ID, s.now()); err != nil {
		return nil, err
	}

	return &dto.JoinRoomResponse{
		RoomID:      room.ID,
		RoomName:    room.Name,
		InviteCode:  room.InviteCode,
		OwnerName:   room.OwnerName,
		IsPrivate:   room.IsPrivate,
		MemberName:  memberName,
		MemberToken: token,
		IsOwner:     memberName == room.OwnerName,
	}, nil
}

// RotateInvite replaces the room's invite code. Owner-only: the caller
// must claim the stored owner name and that claim must verify against
// the membership ledger. The two failures are distinct so a client can
// tell "wrong identity" from "stale session".
func (s *roomService) RotateInvite(roomID int64, memberName, token string) (string, error) {
	room, err := s.authorizeOwner(roomID, memberName, token)
	if err != nil {
		return "", err
	}

	code, err := s.freshInviteCode()
	if err != nil {
		return "", err
	}
	if err := s.roomRepo.UpdateInvite(room.ID, code, s.now()); err != nil {
		return "", err
	}
	return code, nil
}

// RotatePassword sets a new password on the room and marks it private.
func (s *roomService) RotatePassword(roomID int64, memberName, token, newPassword string) error {
	if len(newPassword) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	room, err := s.authorizeOwner(roomID, memberName, token)
	if err != nil {
		return err
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.roomRepo.UpdatePassword(room.ID, true, &hash, s.now())
}

// authorizeOwner runs the two-step owner check: name equality against
// the stored owner, then token verification for that name.
func (s *roomService) authorizeOwner(roomID int64, memberName, token string) (*models.Room, error) {
	room, err := s.roomRepo.FindByID(roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	if memberName != room.OwnerName {
		return nil, ErrNotOwner
	}
	if err := s.members.Verify(room.ID, memberName, token); err != nil {
		return nil, err
	}
	return room, nil
}

// freshInviteCode generates invite codes until one does not collide
// with an existing room.
func (s *roomService) freshInviteCode() (string, error) {
	for i := 0; i < inviteAttempts; i++ {
		code, err := auth.GenerateInviteCode()
		if err != nil {
			return "", err
		}
		if _, err := s.roomRepo.FindByInviteCode(code); errors.Is(err, gorm.ErrRecordNotFound) {
			return code, nil
		}
	}
	return "", errors.New("could not generate a unique invite code")
}
