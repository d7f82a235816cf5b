package models

import (
	"time"
)

// Role is derived transiently from code verification and never persisted.
type Role string

const (
	RoleGuest Role = "guest"
	RoleAdmin Role = "admin"
)

// Event is the persisted record for one photo-sharing event, stored as
// config.json inside the event's directory. Immutable after creation
// except for whole-event deletion.
type Event struct {
	ID        string    `json:"event_id"`
	Alias     string    `json:"alias"`
	GuestCode string    `json:"guest_code"`
	AdminCode string    `json:"admin_code"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateEventRequest struct {
	Alias string `json:"alias" validate:"max=100"`
}

type VerifyCodeRequest struct {
	Code string `json:"code" validate:"required"`
}

type VerifyCodeResponse struct {
	Role Role `json:"role"`
}

type DeleteUploadRequest struct {
	AdminCode string `json:"admin_code" validate:"required"`
}
