// Package scheduling holds the pure interval math behind inspector
// bookings: half-open overlap tests, conflict detection, and availability
// subtraction. Everything here is side-effect free; the usecase layer owns
// persistence and the reschedule counter.
package scheduling

import (
	"time"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/entities"
)

// Working-calendar defaults for availability computation.
const (
	DefaultWorkdayStartHour = 9
	DefaultWorkdayEndHour   = 17
)

// Interval is a half-open time window [Start, End).
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Valid reports whether the interval has positive length.
func (iv Interval) Valid() bool {
	return iv.End.After(iv.Start)
}

// Overlaps is the standard half-open test:
// a.Start < b.End AND a.End > b.Start. Back-to-back windows do not
// overlap.
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && a.End.After(b.Start)
}

// Conflicts returns every booking that blocks the candidate window for the
// given inspector. excludeID skips one booking, used when rescheduling a
// booking against its own slot. Bookings for other inspectors and
// non-blocking (cancelled/superseded) bookings are ignored.
func Conflicts(candidate Interval, inspectorID string, bookings []entities.Inspection, excludeID string) []entities.Inspection {
	var out []entities.Inspection
	for _, b := range bookings {
		if b.ID == excludeID || b.InspectorID != inspectorID || !b.Blocks() {
			continue
		}
		if Overlaps(candidate, Interval{Start: b.WindowStart, End: b.WindowEnd}) {
			out = append(out, b)
		}
	}
	return out
}

// WorkingWindow is the inspector's bookable window for one day.
type WorkingWindow struct {
	StartHour int
	EndHour   int
}

// DefaultWorkingWindow returns the 09:00-17:00 calendar.
func DefaultWorkingWindow() WorkingWindow {
	return WorkingWindow{StartHour: DefaultWorkdayStartHour, EndHour: DefaultWorkdayEndHour}
}

// AvailableSlots subtracts the inspector's blocking bookings from the
// working calendar of the given day and returns the duration-aligned open
// slots, earliest first. No returned slot overlaps any blocking booking.
func AvailableSlots(day time.Time, window WorkingWindow, duration time.Duration, inspectorID string, bookings []entities.Inspection) []Interval {
	if duration <= 0 {
		return nil
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), window.StartHour, 0, 0, 0, day.Location())
	dayEnd := time.Date(day.Year(), day.Month(), day.Day(), window.EndHour, 0, 0, 0, day.Location())

	var slots []Interval
	for start := dayStart; !start.Add(duration).After(dayEnd); start = start.Add(duration) {
		candidate := Interval{Start: start, End: start.Add(duration)}
		if len(Conflicts(candidate, inspectorID, bookings, "")) == 0 {
			slots = append(slots, candidate)
		}
	}
	return slots
}
