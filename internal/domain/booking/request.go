package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingClient    = errors.New("client is required")
	ErrMissingPackage   = errors.New("package is required")
	ErrInvalidInterval  = errors.New("end time must be after start time")
	ErrBookingInFlight  = errors.New("a booking is already in progress")
	ErrInvalidFlowState = errors.New("invalid booking flow state")
)

// Request is the outbound booking payload. Built once per successful
// validation, handed to the remote store, not retained.
type Request struct {
	clientID  uuid.UUID
	startTime time.Time
	endTime   time.Time
	packageID uuid.UUID
}

func NewRequest(clientID, packageID uuid.UUID, start, end time.Time) (Request, error) {
	if clientID == uuid.Nil {
		return Request{}, ErrMissingClient
	}
	if packageID == uuid.Nil {
		return Request{}, ErrMissingPackage
	}
	if !end.After(start) {
		return Request{}, ErrInvalidInterval
	}
	return Request{
		clientID:  clientID,
		startTime: start,
		endTime:   end,
		packageID: packageID,
	}, nil
}

func (r Request) ClientID() uuid.UUID  { return r.clientID }
func (r Request) StartTime() time.Time { return r.startTime }
func (r Request) EndTime() time.Time   { return r.endTime }
func (r Request) PackageID() uuid.UUID { return r.packageID }

// The wire contract carries epoch seconds.
func (r Request) StartEpochSeconds() int64 { return r.startTime.Unix() }
func (r Request) EndEpochSeconds() int64   { return r.endTime.Unix() }
