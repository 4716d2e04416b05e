package models

// TransactionState is the technical name of a transaction's state-machine
// state, as held by the transaction store.
type TransactionState string

// All states a payment transaction can be in
const (
	StateOpen              TransactionState = "open"
	StatePaid              TransactionState = "paid"
	StatePaidPartially     TransactionState = "paid_partially"
	StateRefunded          TransactionState = "refunded"
	StateRefundedPartially TransactionState = "refunded_partially"
)

// IsOpen returns true if the transaction has been (re)opened
func (s TransactionState) IsOpen() bool {
	return s == StateOpen
}

// CanTransitionTo returns true if the state machine permits a move from s to
// target
func (s TransactionState) CanTransitionTo(target TransactionState) bool {
	if target == StateOpen {
		// reopen is allowed from everywhere but open itself
		return s != StateOpen
	}
	switch s {
	case StateOpen:
		return target == StatePaid || target == StatePaidPartially
	case StatePaid, StatePaidPartially:
		return target == StateRefunded || target == StateRefundedPartially
	case StateRefundedPartially:
		return target == StateRefunded || target == StateRefundedPartially
	case StateRefunded:
		return false
	default:
		return false
	}
}
