package lifecycle

import (
	"errors"
	"fmt"
	"strings"
)

// RejectionKind is the machine-checkable classification of a refused
// operation. Handlers map kinds onto HTTP statuses; callers use them to
// decide whether a retry can succeed.

type RejectionKind string

const (
	RejectionValidation         RejectionKind = "validation"
	RejectionInvalidTransition  RejectionKind = "invalid_transition"
	RejectionPreconditionFailed RejectionKind = "precondition_failed"
	RejectionConflict           RejectionKind = "conflict"
	RejectionLimitReached       RejectionKind = "limit_reached"
	RejectionNotFound           RejectionKind = "not_found"
	RejectionForbidden          RejectionKind = "forbidden"
)

// Rejection is a typed refusal. A rejected operation never mutates the
// aggregate; the caller sees the prior, still-consistent state plus enough
// structured detail to decide on a retry.
type Rejection struct {
	Kind          RejectionKind `json:"kind"`
	Reason        string        `json:"reason"`
	CurrentStatus string        `json:"current_status,omitempty"`
	ValidNext     []string      `json:"valid_next,omitempty"`
	Missing       []string      `json:"missing,omitempty"`
	Conflicts     []string      `json:"conflicts,omitempty"`
}

func (r *Rejection) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", r.Kind, r.Reason)
	if r.CurrentStatus != "" {
		fmt.Fprintf(&b, " (current=%s", r.CurrentStatus)
		if len(r.ValidNext) > 0 {
			fmt.Fprintf(&b, " valid_next=%s", strings.Join(r.ValidNext, ","))
		}
		b.WriteString(")")
	}
	if len(r.Missing) > 0 {
		fmt.Fprintf(&b, " missing=%s", strings.Join(r.Missing, ","))
	}
	if len(r.Conflicts) > 0 {
		fmt.Fprintf(&b, " conflicts=%s", strings.Join(r.Conflicts, ","))
	}
	return b.String()
}

// AsRejection unwraps err into a *Rejection when one is present.
func AsRejection(err error) (*Rejection, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}

func newInvalidTransition(current string, target string, validNext []string) *Rejection {
	return &Rejection{
		Kind:          RejectionInvalidTransition,
		Reason:        fmt.Sprintf("cannot transition from %s to %s", current, target),
		CurrentStatus: current,
		ValidNext:     validNext,
	}
}

func newPrecondition(current string, reason string, missing ...string) *Rejection {
	return &Rejection{
		Kind:          RejectionPreconditionFailed,
		Reason:        reason,
		CurrentStatus: current,
		Missing:       missing,
	}
}

// NewConflict builds a conflict rejection listing the colliding resource
// ids (booking ids for scheduling, aggregate ids for stale writes).
func NewConflict(reason string, conflicts ...string) *Rejection {
	return &Rejection{Kind: RejectionConflict, Reason: reason, Conflicts: conflicts}
}

// NewLimitReached builds a policy-limit rejection, distinct from conflict
// so callers do not re-fetch-and-retry something that can never succeed.
func NewLimitReached(reason string) *Rejection {
	return &Rejection{Kind: RejectionLimitReached, Reason: reason}
}

// NewForbidden builds an ownership/role rejection.
func NewForbidden(reason string) *Rejection {
	return &Rejection{Kind: RejectionForbidden, Reason: reason}
}

// NewValidation builds an input-validation rejection.
func NewValidation(reason string) *Rejection {
	return &Rejection{Kind: RejectionValidation, Reason: reason}
}

// NewNotFound builds a missing-aggregate rejection.
func NewNotFound(reason string) *Rejection {
	return &Rejection{Kind: RejectionNotFound, Reason: reason}
}
