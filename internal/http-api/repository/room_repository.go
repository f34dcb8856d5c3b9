package repository

import (
	"time"

	"roomhub/internal/http-api/models"

	"gorm.io/gorm"
)

// RoomWithMembers is a room row annotated with its current member count.
type RoomWithMembers struct {
	models.Room
	MemberCount int64 `json:"member_count"`
}

// RoomRepository defines the interface for room data operations.
type RoomRepository interface {
	CreateWithOwner(room *models.Room, owner *models.Membership) error
	FindByID(id int64) (*models.Room, error)
	FindByName(name string) (*models.Room, error)
	FindByInviteCode(code string) (*models.Room, error)
	ListWithMemberCounts() ([]RoomWithMembers, error)
	Touch(id int64, at time.Time) error
	UpdateInvite(id int64, code string, at time.Time) error
	UpdatePassword(id int64, isPrivate bool, passwordHash *string, at time.Time) error
	StaleRooms(before time.Time, exemptName string) ([]models.Room, error)
	DeleteWithDependents(id int64) error
	FirstOrCreate(room *models.Room) error
}

// roomRepository is the GORM implementation of RoomRepository.
type roomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

// CreateWithOwner inserts the room and enrolls its owner as the first
// member in a single transaction, so a failed enrollment rolls the
// room back instead of leaving it ownerless.
func (r *roomRepository) CreateWithOwner(room *models.Room, owner *models.Membership) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(room).Error; err != nil {
			return err
		}
		owner.RoomID = room.ID
		return tx.Create(owner).Error
	})
}

func (r *roomRepository) FindByID(id int64) (*models.Room, error) {
	var room models.Room
	if err := r.db.First(&room, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) FindByName(name string) (*models.Room, error) {
	var room models.Room
	if err := r.db.Where("name = ?", name).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) FindByInviteCode(code string) (*models.Room, error) {
	var room models.Room
	if err := r.db.Where("invite_code = ?", code).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// ListWithMemberCounts returns all rooms ordered by most recent
// activity, each annotated with its member count.
func (r *roomRepository) ListWithMemberCounts() ([]RoomWithMembers, error) {
	var rooms []RoomWithMembers
	err := r.db.Model(&models.Room{}).
		Select("rooms.*, count(memberships.id) as member_count").
		Joins("LEFT JOIN memberships ON memberships.room_id = rooms.id").
		Group("rooms.id").
		Order("rooms.last_active_at DESC").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) Touch(id int64, at time.Time) error {
	return r.db.Model(&models.Room{}).
		Where("id = ?", id).
		Update("last_active_at", at).Error
}

func (r *roomRepository) UpdateInvite(id int64, code string, at time.Time) error {
	return r.db.Model(&models.Room{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"invite_code":    code,
			"last_active_at": at,
		}).Error
}

func (r *roomRepository) UpdatePassword(id int64, isPrivate bool, passwordHash *string, at time.Time) error {
	return r.db.Model(&models.Room{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_private":     isPrivate,
			"password_hash":  passwordHash,
			"last_active_at": at,
		}).Error
}

// StaleRooms returns rooms whose last activity is older than the
// cutoff, skipping the exempt seed room.
func (r *roomRepository) StaleRooms(before time.Time, exemptName string) ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.
		Where("last_active_at < ? AND name <> ?", before, exemptName).
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

// DeleteWithDependents removes a room together with its messages and
// memberships as one transaction. The foreign keys cascade as a
// backstop, but the explicit deletes keep the behavior identical on
// stores where the constraint is not enforced.
func (r *roomRepository) DeleteWithDependents(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", id).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		if err := tx.Where("room_id = ?", id).Delete(&models.Membership{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Room{}, id).Error
	})
}

func (r *roomRepository) FirstOrCreate(room *models.Room) error {
	return r.db.Where("name = ?", room.Name).FirstOrCreate(room).Error
}
