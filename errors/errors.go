package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	// Authorization
	ErrChatNotAllowed = fmt.Errorf("chat is not allowed")
	ErrNotAdmin       = fmt.Errorf("user is not the administrator")

	// Input
	ErrEmptyText     = fmt.Errorf("text is blank")
	ErrInvalidAction = fmt.Errorf("invalid callback action")

	// Session
	ErrInvalidTransition    = fmt.Errorf("invalid turn transition")
	ErrNothingToSave        = fmt.Errorf("no buffered messages to save")
	ErrConversationNotFound = fmt.Errorf("conversation not found")

	// Upstream
	ErrTranscode       = fmt.Errorf("audio transcoding failed")
	ErrTranscription   = fmt.Errorf("transcription failed")
	ErrEmptyCompletion = fmt.Errorf("completion returned no content")
	ErrCompletion      = fmt.Errorf("completion failed")
	ErrPersistence     = fmt.Errorf("persistence failed")
	ErrUserNotFound    = fmt.Errorf("user not found")
)
