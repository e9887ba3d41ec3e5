package chat

import "errors"

var (
	ErrEmptyMessage = errors.New("message is empty")
	ErrUnexpected   = errors.New("unexpected chat pipeline failure")
)
