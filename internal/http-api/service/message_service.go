package service

import (
	"time"

	"roomhub/internal/http-api/dto"
	"roomhub/internal/http-api/models"
	"roomhub/internal/http-api/repository"
)

// HistoryLimit caps how many recent messages a listing returns.
const HistoryLimit = 100

// MessageService is the append-only message log for rooms.
type MessageService interface {
	Post(roomID int64, name, body, token string) (*dto.MessageResponse, error)
	Recent(roomID int64) ([]dto.MessageResponse, error)
}

type messageService struct {
	messageRepo repository.MessageRepository
	roomRepo    repository.RoomRepository
	members     MembershipService
	now         func() time.Time
}

func NewMessageService(
	messageRepo repository.MessageRepository,
	roomRepo repository.RoomRepository,
	members MembershipService,
) MessageService {
	return &messageService{
		messageRepo: messageRepo,
		roomRepo:    roomRepo,
		members:     members,
		now:         time.Now,
	}
}

// Post appends a message after the poster's (name, token) pair
// verifies for the room, then refreshes room activity. A failed
// verification writes nothing.
func (s *messageService) Post(roomID int64, name, body, token string) (*dto.MessageResponse, error) {
	if err := s.members.Verify(roomID, name, token); err != nil {
		return nil, err
	}

	message := &models.Message{
		RoomID:    roomID,
		Name:      name,
		Body:      body,
		CreatedAt: s.now(),
	}
	if err := s.messageRepo.Create(message); err != nil {
		return nil, err
	}
	if err := s.roomRepo.Touch(roomID, message.CreatedAt); err != nil {
		return nil, err
	}

	return dto.FromModelToMessageResponse(message), nil
}

// Recent returns the newest HistoryLimit messages for a room in
// chronological order, so a client can append them top-to-bottom. An
// unknown room simply yields an empty list.
func (s *messageService) Recent(roomID int64) ([]dto.MessageResponse, error) {
	messages, err := s.messageRepo.RecentByRoom(roomID, HistoryLimit)
	if err != nil {
		return nil, err
	}

	// The store hands back newest-first; flip to oldest-first.
	responses := make([]dto.MessageResponse, 0, len(messages))
	for i := len(messages) - 1; i >= 0; i-- {
		responses = append(responses, *dto.FromModelToMessageResponse(&messages[i]))
	}
	return responses, nil
}
