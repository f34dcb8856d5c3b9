package service

import (
	"errors"
	"time"

	"roomhub/internal/auth"
	"roomhub/internal/http-api/models"
	"roomhub/internal/http-api/repository"

	"gorm.io/gorm"
)

// MembershipService is the membership ledger: it issues per-(room,
// member name) tokens and verifies them on every authenticated action.
type MembershipService interface {
	Join(roomID int64, memberName string) (token string, err error)
	Verify(roomID int64, memberName, token string) error
}

type membershipService struct {
	membershipRepo repository.MembershipRepository
	now            func() time.Time
}

func NewMembershipService(membershipRepo repository.MembershipRepository) MembershipService {
	return &membershipService{
		membershipRepo: membershipRepo,
		now:            time.Now,
	}
}

// Join upserts the membership for (roomID, memberName) with a fresh
// token. Re-joining under the same name reissues the token, which
// invalidates the previous one: a single active session per member
// name is the intended semantic, not an accident of the upsert.
func (s *membershipService) Join(roomID int64, memberName string) (string, error) {
	token, err := auth.GenerateToken(auth.MemberTokenLength)
	if err != nil {
		return "", err
	}

	now := s.now()
	membership := &models.Membership{
		RoomID:     roomID,
		MemberName: memberName,
		Token:      token,
		JoinedAt:   now,
		LastSeenAt: now,
	}
	if err := s.membershipRepo.Upsert(membership); err != nil {
		return "", err
	}
	return token, nil
}

// Verify succeeds only if a membership row matches all three fields
// exactly. On success it refreshes last-seen, so every verified action
// doubles as a liveness heartbeat.
func (s *membershipService) Verify(roomID int64, memberName, token string) error {
	membership, err := s.membershipRepo.FindByCredentials(roomID, memberName, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidToken
		}
		return err
	}
	return s.membershipRepo.TouchSeen(membership.ID, s.now())
}
