package recurrence

import (
	"sort"
	"time"

	"lesson-scheduler/internal/domain/schedule"
)

const (
	defaultDailyStartHour = 9
	defaultDailyEndHour   = 17

	// Valid hour windows end at 23:00 latest, so a start hour past 22 can
	// never form a window; mutations clamp into these bounds.
	maxStartHour = 22
	maxEndHour   = 23
)

// Builder accumulates a weekly pattern from individual edits. Each hour
// mutation auto-repairs the window (pushing the opposite bound instead of
// rejecting), so a builder is always one Build call away from a rule whose
// hour window is valid.
type Builder struct {
	weekdays           map[time.Weekday]struct{}
	dailyStartHour     int
	dailyEndHour       int
	startDate          time.Time
	endDate            *time.Time
	ongoing            bool
	status             schedule.SlotStatus
	applyToAllTrainers bool
}

func NewBuilder(startDate time.Time) *Builder {
	y, m, d := startDate.Date()
	return &Builder{
		weekdays:       make(map[time.Weekday]struct{}),
		dailyStartHour: defaultDailyStartHour,
		dailyEndHour:   defaultDailyEndHour,
		startDate:      time.Date(y, m, d, 0, 0, 0, 0, startDate.Location()),
		status:         schedule.StatusOpen,
	}
}

// ToggleWeekday flips a weekday in the pattern. Values outside
// Sunday..Saturday are ignored.
func (b *Builder) ToggleWeekday(w time.Weekday) *Builder {
	if w < time.Sunday || w > time.Saturday {
		return b
	}
	if _, ok := b.weekdays[w]; ok {
		delete(b.weekdays, w)
	} else {
		b.weekdays[w] = struct{}{}
	}
	return b
}

// SetDailyStartHour moves the window's start. Raising it past the current end
// pushes the end up to keep the window open.
func (b *Builder) SetDailyStartHour(h int) *Builder {
	b.dailyStartHour = clampHour(h, 0, maxStartHour)
	if b.dailyEndHour <= b.dailyStartHour {
		b.dailyEndHour = b.dailyStartHour + 1
	}
	return b
}

// SetDailyEndHour moves the window's end. Lowering it to or below the current
// start pulls the start down, mirroring SetDailyStartHour.
func (b *Builder) SetDailyEndHour(h int) *Builder {
	b.dailyEndHour = clampHour(h, 1, maxEndHour)
	if b.dailyStartHour >= b.dailyEndHour {
		b.dailyStartHour = b.dailyEndHour - 1
	}
	return b
}

func (b *Builder) SetStartDate(d time.Time) *Builder {
	y, m, day := d.Date()
	b.startDate = time.Date(y, m, day, 0, 0, 0, 0, d.Location())
	return b
}

func (b *Builder) SetEndDate(d time.Time) *Builder {
	y, m, day := d.Date()
	end := time.Date(y, m, day, 0, 0, 0, 0, d.Location())
	b.endDate = &end
	b.ongoing = false
	return b
}

// SetOngoing marks the rule open-ended and discards any explicit end date.
func (b *Builder) SetOngoing() *Builder {
	b.endDate = nil
	b.ongoing = true
	return b
}

func (b *Builder) SetStatus(s schedule.SlotStatus) *Builder {
	b.status = s
	return b
}

func (b *Builder) SetApplyToAllTrainers(v bool) *Builder {
	b.applyToAllTrainers = v
	return b
}

// Validate reports whether the pattern as currently edited would build.
func (b *Builder) Validate() error {
	return b.snapshot().Validate()
}

// Build finalizes the rule. A rule that is neither ongoing nor given an
// explicit end date defaults to ending one calendar month after its start;
// the default is computed here, at submission time, not when editing began.
func (b *Builder) Build() (Rule, error) {
	rule := b.snapshot()
	if rule.endDate == nil && !b.ongoing {
		end := rule.startDate.AddDate(0, 1, 0)
		rule.endDate = &end
	}
	if err := rule.Validate(); err != nil {
		return Rule{}, err
	}
	return rule, nil
}

func (b *Builder) snapshot() Rule {
	days := make([]time.Weekday, 0, len(b.weekdays))
	for w := range b.weekdays {
		days = append(days, w)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })

	var end *time.Time
	if b.endDate != nil {
		e := *b.endDate
		end = &e
	}

	return Rule{
		weekdays:           days,
		dailyStartHour:     b.dailyStartHour,
		dailyEndHour:       b.dailyEndHour,
		startDate:          b.startDate,
		endDate:            end,
		status:             b.status,
		applyToAllTrainers: b.applyToAllTrainers,
	}
}

func clampHour(h, lo, hi int) int {
	if h < lo {
		return lo
	}
	if h > hi {
		return hi
	}
	return h
}
