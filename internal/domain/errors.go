package domain

import (
	"errors"
	"fmt"
)

// Kind tags an expected failure so callers can tell causes apart.
type Kind string

const (
	KindUnknown           Kind = ""
	KindNotFound          Kind = "not_found"
	KindAlreadyExists     Kind = "already_exists"
	KindInvalidInput      Kind = "invalid_input"
	KindInvalidEmail      Kind = "invalid_email"
	KindInvalidRoomCount  Kind = "invalid_room_count"
	KindCapacityExhausted Kind = "capacity_exhausted"
	KindAllRoomsAvailable Kind = "all_rooms_available"
)

// Error is the result of a rejected store operation. Two errors match under
// errors.Is when their kinds are equal, so the sentinels below work as tags.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrNotFound          = &Error{Kind: KindNotFound, Msg: "not found"}
	ErrAlreadyExists     = &Error{Kind: KindAlreadyExists, Msg: "already exists"}
	ErrInvalidInput      = &Error{Kind: KindInvalidInput, Msg: "invalid input"}
	ErrInvalidEmail      = &Error{Kind: KindInvalidEmail, Msg: "a valid email is required"}
	ErrInvalidRoomCount  = &Error{Kind: KindInvalidRoomCount, Msg: "rooms must be a positive integer"}
	ErrCapacityExhausted = &Error{Kind: KindCapacityExhausted, Msg: "no rooms available"}
	ErrAllRoomsAvailable = &Error{Kind: KindAllRoomsAvailable, Msg: "all rooms already available"}
)

// ErrDocumentMissing is returned by a DocumentStore when the named document
// has never been written.
var ErrDocumentMissing = errors.New("document missing")

func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the tag carried by err, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
