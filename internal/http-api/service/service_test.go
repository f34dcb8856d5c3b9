package service

import (
	"fmt"
	"testing"
	"time"

	"roomhub/database"
	"roomhub/internal/http-api/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// testClock is a controllable time source shared by all services in a
// test fixture.
type testClock struct {
	current time.Time
}

func (c *testClock) Now() time.Time {
	return c.current
}

func (c *testClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

type fixture struct {
	db       *gorm.DB
	clock    *testClock
	rooms    *roomService
	members  *membershipService
	messages *messageService

	roomRepo       repository.RoomRepository
	membershipRepo repository.MembershipRepository
	messageRepo    repository.MessageRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	// A named shared in-memory database, so every pooled connection
	// sees the same data within one test.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	clock := &testClock{current: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}

	roomRepo := repository.NewRoomRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	members := &membershipService{membershipRepo: membershipRepo, now: clock.Now}
	rooms := &roomService{roomRepo: roomRepo, members: members, now: clock.Now}
	messages := &messageService{
		messageRepo: messageRepo,
		roomRepo:    roomRepo,
		members:     members,
		now:         clock.Now,
	}

	return &fixture{
		db:             db,
		clock:          clock,
		rooms:          rooms,
		members:        members,
		messages:       messages,
		roomRepo:       roomRepo,
		membershipRepo: membershipRepo,
		messageRepo:    messageRepo,
	}
}
