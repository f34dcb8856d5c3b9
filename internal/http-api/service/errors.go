package service

import "errors"

// Business-level errors; handlers map each kind to its own HTTP status
// so clients can tell bad input, missing rooms, wrong identity and
// stale sessions apart.
var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrNameTaken        = errors.New("room name already taken")
	ErrWrongPassword    = errors.New("wrong password")
	ErrPasswordTooShort = errors.New("password must be at least 4 characters")
	ErrNotOwner         = errors.New("only the room owner may do this")
	ErrInvalidToken     = errors.New("invalid member token")
)
