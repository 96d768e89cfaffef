package response

import "github.com/google/uuid"

type SlotSavedResponse struct {
	SlotID uuid.UUID `json:"slotId"`
}

// RuleAcceptedResponse acknowledges that the rule was queued for expansion,
// not that slots exist yet.
type RuleAcceptedResponse struct {
	JobID uuid.UUID `json:"jobId"`
}
