package errors

import "fmt"

var (
	ErrChatNotFound  = fmt.Errorf("chat not found")
	ErrUserNotFound  = fmt.Errorf("user not found")
	ErrMalformedChat = fmt.Errorf("malformed chat")
	ErrEmptyWords    = fmt.Errorf("no words have been found")
)
