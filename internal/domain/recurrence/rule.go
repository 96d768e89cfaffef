package recurrence

import (
	"errors"
	"time"

	"lesson-scheduler/internal/domain/schedule"
)

var (
	ErrNoWeekdaySelected    = errors.New("select at least one day")
	ErrHourWindowInverted   = errors.New("end must be after start")
	ErrEndDatePrecedesStart = errors.New("end date precedes start date")
)

// SlotDurationMinutes is the fixed granularity of generated slots.
const SlotDurationMinutes = 60

// Rule is a weekly availability pattern: selected weekdays, a daily hour
// window, and a date range. It describes many slots without enumerating them;
// expansion into stored slot records belongs to the external scheduling
// worker consuming the job queue.
type Rule struct {
	weekdays           []time.Weekday
	dailyStartHour     int
	dailyEndHour       int
	startDate          time.Time
	endDate            *time.Time // nil = open-ended
	status             schedule.SlotStatus
	applyToAllTrainers bool
}

func (r Rule) Validate() error {
	if len(r.weekdays) == 0 {
		return ErrNoWeekdaySelected
	}
	if r.dailyEndHour <= r.dailyStartHour {
		return ErrHourWindowInverted
	}
	if r.endDate != nil && r.endDate.Before(r.startDate) {
		return ErrEndDatePrecedesStart
	}
	return nil
}

func (r Rule) Weekdays() []time.Weekday {
	out := make([]time.Weekday, len(r.weekdays))
	copy(out, r.weekdays)
	return out
}

func (r Rule) DailyStartHour() int                { return r.dailyStartHour }
func (r Rule) DailyEndHour() int                  { return r.dailyEndHour }
func (r Rule) StartDate() time.Time               { return r.startDate }
func (r Rule) EndDate() *time.Time                { return r.endDate }
func (r Rule) Status() schedule.SlotStatus        { return r.status }
func (r Rule) AppliesToAllTrainers() bool         { return r.applyToAllTrainers }
func (r Rule) SlotDurationMinutes() int           { return SlotDurationMinutes }
func (r Rule) IncludesWeekday(w time.Weekday) bool {
	for _, d := range r.weekdays {
		if d == w {
			return true
		}
	}
	return false
}
