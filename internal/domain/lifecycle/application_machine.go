package lifecycle

import (
	"fmt"
	"time"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/entities"
)

// applicationTransitions is the full transition table of the application
// status machine: state -> allowed targets. Guards live on the operation
// methods; anything not listed here is rejected with the valid next states
// so callers can repair and retry.
var applicationTransitions = map[entities.ApplicationStatus][]entities.ApplicationStatus{
	entities.ApplicationStatusDraft: {
		entities.ApplicationStatusSubmitted,
		entities.ApplicationStatusCancelled,
	},
	entities.ApplicationStatusSubmitted: {
		entities.ApplicationStatusPendingPayment,
		entities.ApplicationStatusUnderReview,
		entities.ApplicationStatusCancelled,
	},
	entities.ApplicationStatusPendingPayment: {
		entities.ApplicationStatusPaymentConfirmed,
		entities.ApplicationStatusCancelled,
	},
	entities.ApplicationStatusPaymentConfirmed: {
		entities.ApplicationStatusUnderReview,
		entities.ApplicationStatusCancelled,
	},
	entities.ApplicationStatusUnderReview: {
		entities.ApplicationStatusApproved,
		entities.ApplicationStatusRejected,
		entities.ApplicationStatusPendingInspection,
		entities.ApplicationStatusCancelled,
	},
	entities.ApplicationStatusPendingInspection: {
		entities.ApplicationStatusApproved,
		entities.ApplicationStatusRejected,
		entities.ApplicationStatusCancelled,
	},
	entities.ApplicationStatusRejected: {
		entities.ApplicationStatusSubmitted,
		entities.ApplicationStatusCancelled,
	},
	entities.ApplicationStatusApproved:  {},
	entities.ApplicationStatusCancelled: {},
}

// ValidNext returns the allowed targets from a status, in table order.
func ValidNext(from entities.ApplicationStatus) []entities.ApplicationStatus {
	return applicationTransitions[from]
}

func canTransition(from, to entities.ApplicationStatus) bool {
	for _, t := range applicationTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

func validNextStrings(from entities.ApplicationStatus) []string {
	next := applicationTransitions[from]
	out := make([]string, len(next))
	for i, s := range next {
		out[i] = string(s)
	}
	return out
}

// Machine validates and applies application status transitions. All
// methods take the aggregate by value and return the mutated copy; on
// rejection the input is untouched and the error is a *Rejection.
type Machine struct {
	Fees      FeePolicy
	Checklist Checklist
	Clock     func() time.Time
}

// NewMachine returns a machine with the default policies and wall clock.
func NewMachine() *Machine {
	return &Machine{
		Fees:      DefaultFeePolicy(),
		Checklist: DefaultChecklist(),
		Clock:     time.Now,
	}
}

// transition applies one enumerated edge: status write plus exactly one
// appended history entry. Every accepted operation funnels through here.
func (m *Machine) transition(app entities.Application, target entities.ApplicationStatus, actor entities.Actor, reason string) (entities.Application, error) {
	current := app.CurrentStatus()
	if !canTransition(current, target) {
		return app, newInvalidTransition(string(current), string(target), validNextStrings(current))
	}

	now := m.Clock().UTC()
	app.Status = target
	app.StatusHistory = append(app.StatusHistory, entities.StatusHistoryEntry{
		Status:    target,
		Timestamp: now,
		Actor:     actor.ID,
		Reason:    reason,
	})
	app.UpdatedAt = now
	return app, nil
}

// AssessNextSubmission runs the fee policy against the count the next
// submit would produce, without mutating anything. Callers use it to
// obtain a payment reference before committing the transition.
func (m *Machine) AssessNextSubmission(app entities.Application) FeeAssessment {
	return m.Fees.Assess(app.SubmissionCount + 1)
}

// Submit performs draft->submitted or rejected->submitted, then
// auto-advances: to pending_payment when the escalation policy charges
// this submission (payment must carry the pre-built reference), otherwise
// to under_review. Increments SubmissionCount exactly once.
func (m *Machine) Submit(app entities.Application, actor entities.Actor, payment *entities.Payment) (entities.Application, error) {
	current := app.CurrentStatus()
	if !canTransition(current, entities.ApplicationStatusSubmitted) {
		return app, newInvalidTransition(string(current), string(entities.ApplicationStatusSubmitted), validNextStrings(current))
	}
	if !app.HasConsent() {
		return app, newPrecondition(string(current), "consent has not been recorded", "consent")
	}
	if missing := m.Checklist.MissingTypes(app.Category, app.Documents); len(missing) > 0 {
		types := make([]string, len(missing))
		for i, t := range missing {
			types[i] = string(t)
		}
		return app, newPrecondition(string(current), "required documents are missing", types...)
	}

	assessment := m.Fees.Assess(app.SubmissionCount + 1)
	if assessment.RequiresPayment {
		if payment == nil || payment.ReferenceNumber == "" {
			return app, newPrecondition(string(current), "this submission requires payment but no payment reference was generated", "payment_reference")
		}
		if payment.Amount != assessment.Amount || payment.Currency != assessment.Currency {
			return app, NewValidation(fmt.Sprintf("payment amount %s %.2f does not match the assessed fee %s %.2f",
				payment.Currency, payment.Amount, assessment.Currency, assessment.Amount))
		}
	}

	submitted, err := m.transition(app, entities.ApplicationStatusSubmitted, actor, "")
	if err != nil {
		return app, err
	}
	submitted.SubmissionCount++

	if !assessment.RequiresPayment {
		advanced, err := m.transition(submitted, entities.ApplicationStatusUnderReview, actor, "no fee due for this submission")
		if err != nil {
			return app, err
		}
		return advanced, nil
	}

	p := *payment
	p.Status = entities.PaymentStatusPending
	advanced, err := m.transition(submitted, entities.ApplicationStatusPendingPayment, actor,
		fmt.Sprintf("submission %d requires a fee of %s %.2f", submitted.SubmissionCount, assessment.Currency, assessment.Amount))
	if err != nil {
		return app, err
	}
	advanced.Payment = &p
	return advanced, nil
}

// AttachPaymentSlip records the uploaded slip reference while the
// application waits in pending_payment. Not a status transition.
func (m *Machine) AttachPaymentSlip(app entities.Application, slipRef string) (entities.Application, error) {
	current := app.CurrentStatus()
	if current != entities.ApplicationStatusPendingPayment {
		return app, newInvalidTransition(string(current), string(entities.ApplicationStatusPendingPayment), validNextStrings(current))
	}
	if app.Payment == nil {
		return app, newPrecondition(string(current), "no payment record on the application", "payment")
	}
	p := *app.Payment
	p.SlipRef = slipRef
	app.Payment = &p
	app.UpdatedAt = m.Clock().UTC()
	return app, nil
}

// ConfirmPayment is the officer verifying the slip: pending_payment ->
// payment_confirmed, then automatically on to under_review.
func (m *Machine) ConfirmPayment(app entities.Application, actor entities.Actor) (entities.Application, error) {
	current := app.CurrentStatus()
	if app.Payment == nil || app.Payment.SlipRef == "" {
		return app, newPrecondition(string(current), "no payment slip has been uploaded", "payment_slip")
	}

	confirmed, err := m.transition(app, entities.ApplicationStatusPaymentConfirmed, actor, "payment slip verified")
	if err != nil {
		return app, err
	}
	p := *confirmed.Payment
	p.Status = entities.PaymentStatusPaid
	confirmed.Payment = &p

	advanced, err := m.transition(confirmed, entities.ApplicationStatusUnderReview, actor, "")
	if err != nil {
		return app, err
	}
	return advanced, nil
}

// RejectPaymentSlip refuses the uploaded slip. The application stays in
// pending_payment with an updated note; this does not consume a
// resubmission and appends no history entry.
func (m *Machine) RejectPaymentSlip(app entities.Application, note string) (entities.Application, error) {
	current := app.CurrentStatus()
	if current != entities.ApplicationStatusPendingPayment {
		return app, newInvalidTransition(string(current), string(entities.ApplicationStatusPendingPayment), validNextStrings(current))
	}
	if app.Payment == nil {
		return app, newPrecondition(string(current), "no payment record on the application", "payment")
	}
	p := *app.Payment
	p.SlipRef = ""
	p.Note = note
	app.Payment = &p
	app.UpdatedAt = m.Clock().UTC()
	return app, nil
}

// ScheduleInspection moves the application to pending_inspection once an
// inspector booking exists.
func (m *Machine) ScheduleInspection(app entities.Application, actor entities.Actor) (entities.Application, error) {
	return m.transition(app, entities.ApplicationStatusPendingInspection, actor, "inspection scheduled")
}

// Approve is the officer's terminal acceptance.
func (m *Machine) Approve(app entities.Application, actor entities.Actor) (entities.Application, error) {
	return m.transition(app, entities.ApplicationStatusApproved, actor, "")
}

// Reject records the officer's refusal with its reason. The applicant may
// resubmit, which re-runs the escalation policy.
func (m *Machine) Reject(app entities.Application, actor entities.Actor, reason string) (entities.Application, error) {
	if reason == "" {
		return app, NewValidation("a rejection reason is required")
	}
	return m.transition(app, entities.ApplicationStatusRejected, actor, reason)
}

// Cancel terminates the application from any non-terminal state. No refund
// is issued regardless of payment status.
func (m *Machine) Cancel(app entities.Application, actor entities.Actor, reason string) (entities.Application, error) {
	return m.transition(app, entities.ApplicationStatusCancelled, actor, reason)
}
