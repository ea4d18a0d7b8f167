package scheduling

import (
	"time"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/entities"
)

// expansionCap bounds runaway expansion of unbounded rules over large
// windows.
const expansionCap = 1000

// ExpandOccurrences projects a calendar event into the instances whose
// windows intersect [from, to). A non-recurring event yields at most its
// single occurrence. The base event is never mutated; expansion is a
// read-side projection.
func ExpandOccurrences(event entities.CalendarEvent, from, to time.Time) []entities.EventOccurrence {
	if !to.After(from) {
		return nil
	}

	duration := event.End.Sub(event.Start)
	if duration <= 0 {
		return nil
	}

	emit := func(out []entities.EventOccurrence, start time.Time) []entities.EventOccurrence {
		occ := Interval{Start: start, End: start.Add(duration)}
		if Overlaps(occ, Interval{Start: from, End: to}) {
			out = append(out, entities.EventOccurrence{
				EventID: event.ID,
				Title:   event.Title,
				Start:   occ.Start,
				End:     occ.End,
			})
		}
		return out
	}

	if event.Recurrence == nil {
		return emit(nil, event.Start)
	}

	rule := *event.Recurrence
	interval := rule.Interval
	if interval < 1 {
		interval = 1
	}

	var out []entities.EventOccurrence
	start := event.Start
	for i := 0; i < expansionCap; i++ {
		if rule.Count > 0 && i >= rule.Count {
			break
		}
		if rule.Until != nil && start.After(*rule.Until) {
			break
		}
		if !start.Before(to) {
			break
		}
		out = emit(out, start)
		start = advance(start, rule.Frequency, interval)
	}
	return out
}

func advance(t time.Time, freq entities.RecurrenceFrequency, interval int) time.Time {
	switch freq {
	case entities.RecurDaily:
		return t.AddDate(0, 0, interval)
	case entities.RecurWeekly:
		return t.AddDate(0, 0, 7*interval)
	case entities.RecurMonthly:
		return t.AddDate(0, interval, 0)
	}
	return t.AddDate(0, 0, interval)
}
