package repository

import (
	"time"

	"roomhub/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MembershipRepository defines the interface for membership data operations.
type MembershipRepository interface {
	Upsert(membership *models.Membership) error
	FindByRoomAndName(roomID int64, memberName string) (*models.Membership, error)
	FindByCredentials(roomID int64, memberName, token string) (*models.Membership, error)
	TouchSeen(id int64, at time.Time) error
	CountByRoom(roomID int64) (int64, error)
}

// membershipRepository is the GORM implementation of MembershipRepository.
type membershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepository{db: db}
}

// Upsert inserts a membership or, if the (room, member name) pair
// already exists, replaces its token and refreshes both timestamps.
// The previous token stops verifying from that point on.
func (r *membershipRepository) Upsert(membership *models.Membership) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "room_id"}, {Name: "member_name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"token", "joined_at", "last_seen_at",
		}),
	}).Create(membership).Error
}

func (r *membershipRepository) FindByRoomAndName(roomID int64, memberName string) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.
		Where("room_id = ? AND member_name = ?", roomID, memberName).
		First(&membership).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// FindByCredentials matches all three fields exactly; a stale token
// from before a re-join will not match.
func (r *membershipRepository) FindByCredentials(roomID int64, memberName, token string) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.
		Where("room_id = ? AND member_name = ? AND token = ?", roomID, memberName, token).
		First(&membership).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

func (r *membershipRepository) TouchSeen(id int64, at time.Time) error {
	return r.db.Model(&models.Membership{}).
		Where("id = ?", id).
		Update("last_seen_at", at).Error
}

func (r *membershipRepository) CountByRoom(roomID int64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Membership{}).
		Where("room_id = ?", roomID).
		Count(&count).Error
	return count, err
}
