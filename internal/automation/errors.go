package automation

import "errors"

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrConversationClosed   = errors.New("conversation is closed")
	ErrAlreadyOpen          = errors.New("conversation is already open")
	ErrInvalidMode          = errors.New("invalid conversation mode")
)
