package schedule

import "time"

// MinSlotDuration is the smallest bookable interval. Slots always start on the
// hour and last at least this long.
const MinSlotDuration = time.Hour

// Normalize snaps a raw start/end pair onto valid slot boundaries.
//
// When anchorToDay is true the calendar date of both timestamps is replaced
// with day's date, keeping their time of day. Both ends are then truncated
// down to the start of their hour, and end is pushed forward to start+1h if
// the pair would undercut the minimum duration. Total and idempotent:
// normalizing an already-normalized pair returns it unchanged.
func Normalize(day, start, end time.Time, anchorToDay bool) (time.Time, time.Time) {
	if anchorToDay {
		start = anchor(day, start)
		end = anchor(day, end)
	}

	start = truncateToHour(start)
	end = truncateToHour(end)

	if minEnd := start.Add(MinSlotDuration); end.Before(minEnd) {
		end = minEnd
	}
	return start, end
}

func anchor(day, t time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), 0, t.Location())
}

func truncateToHour(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, t.Hour(), 0, 0, 0, t.Location())
}
