package service

import (
	"github.com/commercehub/easy-checkout-api/models"
	"github.com/commercehub/easy-checkout-api/statemachine"
)

// ReconcileOutcome is the result of comparing a requested amount against the
// order amount reported by the provider after an operation
type ReconcileOutcome int

// All outcomes a charge or refund operation can produce
const (
	ChargedInFull ReconcileOutcome = iota
	ChargedPartially
	RefundedInFull
	RefundedPartially
)

var outcomes = [...]string{
	"charged-in-full",
	"charged-partially",
	"refunded-in-full",
	"refunded-partially",
}

// String representation of `ReconcileOutcome`
func (o ReconcileOutcome) String() string {
	return outcomes[o]
}

// TransitionActions is the state table driving reconciliation: given the
// transaction's current state and the operation outcome, it returns the
// transition actions to issue, in order. It performs no side effects.
//
// Charges always reopen a non-open transaction before marking it paid. A
// partial refund on an already partially-refunded transaction replays the
// reopen and pay-partially moves before refund-partially; the provider
// integration has always issued this sequence and downstream bookkeeping
// depends on it.
func TransitionActions(current models.TransactionState, outcome ReconcileOutcome) []string {
	switch outcome {
	case ChargedInFull:
		if current.IsOpen() {
			return []string{statemachine.ActionPay}
		}
		return []string{statemachine.ActionReopen, statemachine.ActionPay}
	case ChargedPartially:
		if current.IsOpen() {
			return []string{statemachine.ActionPayPartially}
		}
		return []string{statemachine.ActionReopen, statemachine.ActionPayPartially}
	case RefundedInFull:
		return []string{statemachine.ActionRefund}
	case RefundedPartially:
		if current == models.StateRefundedPartially {
			return []string{statemachine.ActionReopen, statemachine.ActionPayPartially, statemachine.ActionRefundPartially}
		}
		return []string{statemachine.ActionRefundPartially}
	default:
		return nil
	}
}
