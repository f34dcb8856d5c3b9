package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"roomhub/internal/http-api/dto"
	"roomhub/internal/http-api/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockMessageService mocks the MessageService interface
type MockMessageService struct {
	mock.Mock
}

func (m *MockMessageService) Post(roomID int64, name, body, token string) (*dto.MessageResponse, error) {
	args := m.Called(roomID, name, body, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MessageResponse), args.Error(1)
}

func (m *MockMessageService) Recent(roomID int64) ([]dto.MessageResponse, error) {
	args := m.Called(roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.MessageResponse), args.Error(1)
}

func TestListMessages_MissingRoomID(t *testing.T) {
	mockService := new(MockMessageService)
	h := NewMessageHandler(mockService)
	router := setupRouter()
	router.GET("/messages", h.List)

	req, _ := http.NewRequest("GET", "/messages", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Recent")
}

func TestListMessages_Success(t *testing.T) {
	mockService := new(MockMessageService)
	h := NewMessageHandler(mockService)
	router := setupRouter()
	router.GET("/messages", h.List)

	mockService.On("Recent", int64(3)).Return([]dto.MessageResponse{
		{ID: 1, RoomID: 3, Name: "Bob", Message: "hi", CreatedAt: time.Now()},
	}, nil)

	req, _ := http.NewRequest("GET", "/messages?room_id=3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []dto.MessageResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response, 1)
	assert.Equal(t, "Bob", response[0].Name)

	mockService.AssertExpectations(t)
}

func TestPostMessage_Unauthorized(t *testing.T) {
	mockService := new(MockMessageService)
	h := NewMessageHandler(mockService)
	router := setupRouter()
	router.POST("/messages", h.Create)

	mockService.On("Post", int64(3), "Bob", "hi", "stale").Return(nil, service.ErrInvalidToken)

	w := postJSON(router, "/messages", dto.PostMessageRequest{
		RoomID: 3, Name: "Bob", Message: "hi", MemberToken: "stale",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockService.AssertExpectations(t)
}

func TestPostMessage_Success(t *testing.T) {
	mockService := new(MockMessageService)
	h := NewMessageHandler(mockService)
	router := setupRouter()
	router.POST("/messages", h.Create)

	mockService.On("Post", int64(3), "Bob", "hi", "token").Return(&dto.MessageResponse{
		ID: 9, RoomID: 3, Name: "Bob", Message: "hi",
	}, nil)

	w := postJSON(router, "/messages", dto.PostMessageRequest{
		RoomID: 3, Name: "Bob", Message: "hi", MemberToken: "token",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var response dto.MessageResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, int64(9), response.ID)

	mockService.AssertExpectations(t)
}

func TestPostMessage_MissingFields(t *testing.T) {
	mockService := new(MockMessageService)
	h := NewMessageHandler(mockService)
	router := setupRouter()
	router.POST("/messages", h.Create)

	w := postJSON(router, "/messages", map[string]interface{}{"room_id": 3, "name": "Bob"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Post")
}
