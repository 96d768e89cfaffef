package schedule

import "time"

// SingleSlotDraft is the mutable working copy of a one-off slot while the
// trainer edits it. Every mutation re-normalizes, so start/end always sit on
// hour boundaries of the selected day and keep the minimum gap.
type SingleSlotDraft struct {
	day    time.Time
	start  time.Time
	end    time.Time
	status SlotStatus
}

// NewSingleSlotDraft seeds a draft from the (day, hour) pair the caller
// tapped: one slot starting at that hour.
func NewSingleSlotDraft(day time.Time, hour int, status SlotStatus) *SingleSlotDraft {
	y, m, d := day.Date()
	start := time.Date(y, m, d, hour, 0, 0, 0, day.Location())
	draft := &SingleSlotDraft{
		day:    time.Date(y, m, d, 0, 0, 0, 0, day.Location()),
		status: status,
	}
	draft.start, draft.end = Normalize(draft.day, start, start, true)
	return draft
}

func (s *SingleSlotDraft) SetDay(day time.Time) {
	y, m, d := day.Date()
	s.day = time.Date(y, m, d, 0, 0, 0, 0, day.Location())
	s.start, s.end = Normalize(s.day, s.start, s.end, true)
}

// SetStart moves the start; the end is pulled forward if the edit would
// undercut the minimum gap.
func (s *SingleSlotDraft) SetStart(start time.Time) {
	s.start, s.end = Normalize(s.day, start, s.end, true)
}

// SetEnd moves the end; an end below start+1h is clamped, never rejected.
func (s *SingleSlotDraft) SetEnd(end time.Time) {
	s.start, s.end = Normalize(s.day, s.start, end, true)
}

func (s *SingleSlotDraft) SetStatus(status SlotStatus) {
	s.status = status
}

func (s *SingleSlotDraft) Day() time.Time     { return s.day }
func (s *SingleSlotDraft) Start() time.Time   { return s.start }
func (s *SingleSlotDraft) End() time.Time     { return s.end }
func (s *SingleSlotDraft) Status() SlotStatus { return s.status }
