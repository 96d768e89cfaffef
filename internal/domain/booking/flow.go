package booking

import (
	"sync"
	"time"

	"lesson-scheduler/internal/domain/lessonpackage"

	"github.com/google/uuid"
)

type FlowState string

const (
	StateIdle            FlowState = "idle"
	StateClientSelected  FlowState = "client_selected"
	StatePackagesLoading FlowState = "packages_loading"
	StatePackagesReady   FlowState = "packages_ready"
	StatePackageSelected FlowState = "package_selected"
	StateBooking         FlowState = "booking"
	StateError           FlowState = "error"
)

// Flow is the booking sub-flow state machine. Package fetches are
// asynchronous; each client selection bumps a generation counter and results
// carrying a stale generation are discarded, so a fetch for a previously
// selected client can never overwrite the current one. The Booking state is
// a single-flight latch: it is entered at most once at a time and exited only
// by completion or dismissal.
type Flow struct {
	mu sync.Mutex

	state             FlowState
	clientID          uuid.UUID
	generation        uint64
	requestedType     lessonpackage.Type
	packages          []lessonpackage.LessonPackage
	selectedPackageID uuid.UUID
}

func NewFlow() *Flow {
	return &Flow{
		state:         StateIdle,
		requestedType: lessonpackage.TypePrivate,
	}
}

// SelectClient switches the flow to a client, discarding all package state
// from the previous selection. The returned generation token must accompany
// the package fetch results for this client.
func (f *Flow) SelectClient(clientID uuid.UUID) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateBooking {
		return f.generation // locked while a booking is in flight
	}

	f.clientID = clientID
	f.generation++
	f.packages = nil
	f.selectedPackageID = uuid.Nil
	f.state = StateClientSelected
	return f.generation
}

// BeginPackagesLoad marks the fetch for the given generation as started.
// Returns false for a stale generation.
func (f *Flow) BeginPackagesLoad(generation uint64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if generation != f.generation || f.state == StateBooking {
		return false
	}
	f.state = StatePackagesLoading
	return true
}

// ApplyPackages installs fetch results. The list replaces any previous one
// wholesale and the best package for the requested type is re-selected.
// Results for a stale generation are dropped and false is returned.
func (f *Flow) ApplyPackages(generation uint64, packages []lessonpackage.LessonPackage) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if generation != f.generation || f.state == StateBooking {
		return false
	}
	f.packages = packages
	f.reselectLocked()
	return true
}

// FailPackages records a fetch failure: the list is treated as empty and the
// flow stays retryable by reselecting the client.
func (f *Flow) FailPackages(generation uint64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if generation != f.generation || f.state == StateBooking {
		return false
	}
	f.packages = nil
	f.selectedPackageID = uuid.Nil
	f.state = StatePackagesReady
	return true
}

// SelectPackage pins an explicit package from the loaded list, overriding
// the policy's pick. Unknown IDs and in-flight bookings leave the current
// selection untouched.
func (f *Flow) SelectPackage(id uuid.UUID) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateBooking {
		return false
	}
	for _, p := range f.packages {
		if p.ID == id {
			f.selectedPackageID = id
			f.state = StatePackageSelected
			return true
		}
	}
	return false
}

// SetRequestedType changes the package type to debit and re-runs selection
// over the already-loaded set.
func (f *Flow) SetRequestedType(t lessonpackage.Type) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.requestedType = t
	if f.state == StatePackagesReady || f.state == StatePackageSelected {
		f.reselectLocked()
	}
}

// BeginBooking enters the single-flight Booking state.
func (f *Flow) BeginBooking(start, end time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateBooking {
		return ErrBookingInFlight
	}
	if !CanBook(f.clientID, f.selectedPackageID, start, end, false) {
		return ErrInvalidFlowState
	}
	f.state = StateBooking
	return nil
}

// CompleteBooking exits the Booking state: back to Idle on success, Error on
// failure. The single-flight latch is released either way.
func (f *Flow) CompleteBooking(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateBooking {
		return
	}
	if err != nil {
		f.state = StateError
		return
	}
	f.resetLocked()
}

// Dismiss clears an Error (or any non-booking state) back to Idle.
func (f *Flow) Dismiss() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateBooking {
		return
	}
	f.resetLocked()
}

func (f *Flow) CanBook(start, end time.Time) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return CanBook(f.clientID, f.selectedPackageID, start, end, f.state == StateBooking)
}

// BuildRequest assembles the outbound payload from the current selection.
func (f *Flow) BuildRequest(start, end time.Time) (Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return NewRequest(f.clientID, f.selectedPackageID, start, end)
}

func (f *Flow) State() FlowState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Flow) ClientID() uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.clientID
}

func (f *Flow) SelectedPackageID() uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.selectedPackageID
}

func (f *Flow) Packages() []lessonpackage.LessonPackage {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]lessonpackage.LessonPackage, len(f.packages))
	copy(out, f.packages)
	return out
}

func (f *Flow) reselectLocked() {
	if id, ok := lessonpackage.SelectBestPackage(f.requestedType, f.packages); ok {
		f.selectedPackageID = id
		f.state = StatePackageSelected
		return
	}
	f.selectedPackageID = uuid.Nil
	f.state = StatePackagesReady
}

func (f *Flow) resetLocked() {
	f.state = StateIdle
	f.clientID = uuid.Nil
	f.packages = nil
	f.selectedPackageID = uuid.Nil
}
