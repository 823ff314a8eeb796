package app

import "errors"

var (
	// ErrSaveNotInitialized indicates a missing singleton (club or
	// clock): the save is corrupt or was never seeded.
	ErrSaveNotInitialized = errors.New("save not initialized")

	ErrFootballerNotFound   = errors.New("footballer not found")
	ErrStaffNotFound        = errors.New("staff member not found")
	ErrConversationNotFound = errors.New("conversation not found")

	// ErrGeneratorUnavailable indicates no text-generation backend is
	// configured or reachable.
	ErrGeneratorUnavailable = errors.New("text generation unavailable")
)
