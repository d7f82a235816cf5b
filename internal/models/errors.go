package models

import "errors"

var (
	ErrEventNotFound  = errors.New("event not found")
	ErrUploadNotFound = errors.New("upload not found")
	ErrBlobNotFound   = errors.New("blob not found")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrValidation     = errors.New("validation error")

	// ErrStorage marks persistence failures; the underlying cause is
	// wrapped alongside it so errors.Is works on both.
	ErrStorage = errors.New("storage error")
)
