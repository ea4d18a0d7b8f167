package lifecycle

// ReschedulePolicy bounds how many times a booking may be rescheduled.
// The counter increments only on a successful reschedule; a rejected
// attempt never consumes the budget.
type ReschedulePolicy struct {
	Max int
}

// DefaultReschedulePolicy allows a single reschedule.
func DefaultReschedulePolicy() ReschedulePolicy {
	return ReschedulePolicy{Max: 1}
}

// Allows reports whether another reschedule fits under the limit.
func (p ReschedulePolicy) Allows(rescheduleCount int) bool {
	return rescheduleCount < p.Max
}
