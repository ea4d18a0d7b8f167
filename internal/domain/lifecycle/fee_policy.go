package lifecycle

// FeePolicy maps the running submission count to a payment requirement.
// Resubmission after rejection is free FreeSubmissions times; every
// submission past that requires the fixed fee before review proceeds. The
// defaults mirror the certification body's published fee schedule; they
// are parameters here, not scattered literals.
type FeePolicy struct {
	FreeSubmissions int
	Amount          float64
	Currency        string
}

// DefaultFeePolicy: first two submissions free, 5000 THB from the third on.
func DefaultFeePolicy() FeePolicy {
	return FeePolicy{FreeSubmissions: 2, Amount: 5000, Currency: "THB"}
}

// FeeAssessment is the policy outcome for one submit transition.
type FeeAssessment struct {
	RequiresPayment bool
	Amount          float64
	Currency        string
}

// Assess evaluates the policy for the post-increment submission count. The
// status machine consults it exactly once per submit transition.
func (p FeePolicy) Assess(submissionCount int) FeeAssessment {
	if submissionCount <= p.FreeSubmissions {
		return FeeAssessment{}
	}
	return FeeAssessment{RequiresPayment: true, Amount: p.Amount, Currency: p.Currency}
}
