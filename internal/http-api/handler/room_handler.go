package handler

import (
	"errors"
	"net/http"
	"strconv"

	"roomhub/internal/http-api/dto"
	"roomhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomService service.RoomService
}

func NewRoomHandler(roomService service.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

// RegisterRoutes registers room-related routes
func (h *RoomHandler) RegisterRoutes(router *gin.RouterGroup) {
	rooms := router.Group("/rooms")
	{
		rooms.GET("", h.List)
		rooms.POST("", h.Create)
		rooms.POST("/join", h.Join)
		rooms.POST("/:id/rotate-invite", h.RotateInvite)
		rooms.POST("/:id/rotate-password", h.RotatePassword)
	}
}

// List returns all rooms with member counts, most recently active first
// GET /api/rooms
func (h *RoomHandler) List(c *gin.Context) {
	rooms, err := h.roomService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// Create creates a room and enrolls the creator as owner
// POST /api/rooms
func (h *RoomHandler) Create(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room, err := h.roomService.Create(req.Name, req.OwnerName, req.IsPrivate, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordTooShort):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrNameTaken):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, room)
}

// Join joins a room by name, invite code or numeric id
// POST /api/rooms/join
func (h *RoomHandler) Join(c *gin.Context) {
	var req dto.JoinRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.roomService.Join(req.Identifier, req.MemberName, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrWrongPassword):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, member)
}

// RotateInvite replaces the room's invite code (owner only)
// POST /api/rooms/:id/rotate-invite
func (h *RoomHandler) RotateInvite(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room ID"})
		return
	}

	var req dto.RotateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	code, err := h.roomService.RotateInvite(roomID, req.MemberName, req.MemberToken)
	if err != nil {
		h.rotateError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RotateInviteResponse{InviteCode: code})
}

// RotatePassword sets a new password on the room (owner only)
// POST /api/rooms/:id/rotate-password
func (h *RoomHandler) RotatePassword(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room ID"})
		return
	}

	var req dto.RotatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.roomService.RotatePassword(roomID, req.MemberName, req.MemberToken, req.NewPassword); err != nil {
		h.rotateError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// rotateError maps owner-only operation failures. Wrong identity and
// stale session stay distinct on the wire.
func (h *RoomHandler) rotateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPasswordTooShort):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
