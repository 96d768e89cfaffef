package response

import (
	"log/slog"
	"time"

	"lesson-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID         uuid.UUID `json:"id"`
	ClientID   uuid.UUID `json:"clientId"`
	ClientName string    `json:"clientName"`
	TrainerID  uuid.UUID `json:"trainerId"`
	PackageID  uuid.UUID `json:"packageId"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	if err := copier.Copy(&resp, view); err != nil {
		slog.Error("failed to convert booking view", "error", err)
	}
	return &resp
}
