package schedule

import "errors"

var ErrInvalidSlotStatus = errors.New("invalid slot status")

// SlotStatus marks a slot as bookable or blocked. Mutually exclusive and set
// once per slot-creation action.
type SlotStatus string

const (
	StatusOpen        SlotStatus = "open"
	StatusUnavailable SlotStatus = "unavailable"
)

func (s SlotStatus) String() string {
	return string(s)
}

func (s SlotStatus) IsValid() bool {
	switch s {
	case StatusOpen, StatusUnavailable:
		return true
	default:
		return false
	}
}

func NewSlotStatus(s string) (SlotStatus, error) {
	status := SlotStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidSlotStatus
	}
	return status, nil
}
