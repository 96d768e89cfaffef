package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type TrainerView struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"display_name"`
	IsActive    bool      `json:"is_active"`
}

type ClientView struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
}

type PackageView struct {
	ID               uuid.UUID  `json:"id"`
	ClientID         uuid.UUID  `json:"client_id"`
	PackageType      string     `json:"package_type"`
	LessonsRemaining int        `json:"lessons_remaining"`
	PurchaseDate     time.Time  `json:"purchase_date"`
	ExpirationDate   *time.Time `json:"expiration_date,omitempty"`
	IsExpired        bool       `json:"is_expired"`
}

type BookingView struct {
	ID         uuid.UUID `json:"id"`
	ClientID   uuid.UUID `json:"client_id"`
	ClientName string    `json:"client_name"`
	TrainerID  uuid.UUID `json:"trainer_id"`
	PackageID  uuid.UUID `json:"package_id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	CreatedAt  time.Time `json:"created_at"`
}

type SlotView struct {
	ID                 uuid.UUID `json:"id"`
	TrainerID          uuid.UUID `json:"trainer_id"`
	Day                time.Time `json:"day"`
	StartTime          time.Time `json:"start_time"`
	EndTime            time.Time `json:"end_time"`
	Status             string    `json:"status"`
	ApplyToAllTrainers bool      `json:"apply_to_all_trainers"`
}

type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	TrainerID *uuid.UUID `json:"trainer_id,omitempty"`
	IsActive  bool       `json:"is_active"`
}
