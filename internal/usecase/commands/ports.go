package commands

import (
	"context"
	"time"

	"lesson-scheduler/internal/domain/booking"
	"lesson-scheduler/internal/infra/db"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types.

type ClientSnapshot struct {
	ID       uuid.UUID
	FullName string
}

type PackageSnapshot struct {
	ID               uuid.UUID
	ClientID         uuid.UUID
	PackageType      string
	LessonsRemaining int
	PurchaseDate     time.Time
	ExpirationDate   *time.Time
	IsExpired        bool
}

type SlotRecord struct {
	TrainerID          uuid.UUID
	Day                time.Time
	StartTime          time.Time
	EndTime            time.Time
	Status             string
	ApplyToAllTrainers bool
}

type ClientRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ClientSnapshot, error)
}

type PackageRepository interface {
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]PackageSnapshot, error)
	// Debit consumes one lesson inside the booking transaction. Fails when
	// the package has no lessons left.
	Debit(ctx context.Context, tx db.DBTX, packageID uuid.UUID) error
}

type SlotRepository interface {
	Create(ctx context.Context, tx db.DBTX, slot SlotRecord) (uuid.UUID, error)
}

// ScheduleJobRepository is the handoff to the external scheduling processor:
// recurrence rules are enqueued as opaque job payloads and expanded into slot
// records out of process.
type ScheduleJobRepository interface {
	Enqueue(ctx context.Context, tx db.DBTX, kind string, payload []byte, runAt time.Time) (uuid.UUID, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, trainerID uuid.UUID, req booking.Request) (uuid.UUID, error)
}
