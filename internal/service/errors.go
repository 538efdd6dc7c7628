package service

import "errors"

var (
	ErrValidation         = errors.New("all fields required")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrLogNotFound        = errors.New("not found")
	ErrUnknownModule      = errors.New("unknown module")
	// ErrGenerationFailed wraps every failure of the model call.
	ErrGenerationFailed = errors.New("generation failed")
)
