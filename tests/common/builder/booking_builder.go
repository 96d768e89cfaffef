//go:build unit || e2e

package builder

import (
	"time"

	reqdto "lesson-scheduler/internal/handler/dto/request"
	"lesson-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	TrainerID  uuid.UUID
	ClientID   uuid.UUID
	ClientName string
	PackageID  uuid.UUID
	StartTime  time.Time
	EndTime    time.Time
}

func NewBookingBuilder() *BookingBuilder {
	start := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		TrainerID:  uuid.New(),
		ClientID:   uuid.New(),
		ClientName: "Test Client",
		PackageID:  uuid.New(),
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
	}
}

func (b *BookingBuilder) WithClientID(id uuid.UUID) *BookingBuilder {
	b.ClientID = id
	return b
}

func (b *BookingBuilder) WithTrainerID(id uuid.UUID) *BookingBuilder {
	b.TrainerID = id
	return b
}

func (b *BookingBuilder) BuildRequestDTO() reqdto.BookLessonRequest {
	return reqdto.BookLessonRequest{
		TrainerID: b.TrainerID,
		ClientID:  b.ClientID,
		StartTime: b.StartTime.Unix(),
		EndTime:   b.EndTime.Unix(),
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:         uuid.New(),
		ClientID:   b.ClientID,
		ClientName: b.ClientName,
		TrainerID:  b.TrainerID,
		PackageID:  b.PackageID,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		CreatedAt:  time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}
