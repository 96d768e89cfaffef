package booking

import (
	"time"

	"lesson-scheduler/internal/domain/recurrence"
	"lesson-scheduler/internal/domain/schedule"

	"github.com/google/uuid"
)

// CanSubmitSingle gates saving a one-off slot. Normalization already
// guarantees the interval, but the boundary re-checks it.
func CanSubmitSingle(draft *schedule.SingleSlotDraft) bool {
	if draft == nil {
		return false
	}
	return draft.End().After(draft.Start())
}

// CanSubmitRecurring gates applying a weekly pattern.
func CanSubmitRecurring(rule recurrence.Rule) bool {
	return rule.Validate() == nil
}

// CanBook gates the booking submit: client and package selected, a positive
// interval, and no booking currently in flight.
func CanBook(clientID, packageID uuid.UUID, start, end time.Time, inFlight bool) bool {
	if inFlight {
		return false
	}
	if clientID == uuid.Nil || packageID == uuid.Nil {
		return false
	}
	return end.After(start)
}
