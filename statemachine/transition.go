// Package statemachine applies named state transitions to payment
// transactions. The reconciliation logic decides which transition to issue;
// this package owns recording it.
package statemachine

import (
	"fmt"

	"github.com/commercehub/easy-checkout-api/models"
)

// EntityOrderTransaction is the entity name transitions are recorded against
const EntityOrderTransaction = "order_transaction"

// Named transition actions
const (
	ActionReopen          = "reopen"
	ActionPay             = "pay"
	ActionPayPartially    = "pay_partially"
	ActionRefund          = "refund"
	ActionRefundPartially = "refund_partially"
)

//go:generate mockgen -source=transition.go -destination=mock_transition.go -package=statemachine

// TransitionHandler records a named transition against a transaction
type TransitionHandler interface {
	Transition(entityName, transactionID, actionName string) error
}

// PaymentDetailsUpdater merges provider bookkeeping (payment, charge and
// refund ids) into a transaction's stored details
type PaymentDetailsUpdater interface {
	UpdatePaymentDetails(transactionID string, fields map[string]interface{}) error
}

// TargetState returns the state a named action moves a transaction into
func TargetState(actionName string) (models.TransactionState, error) {
	switch actionName {
	case ActionReopen:
		return models.StateOpen, nil
	case ActionPay:
		return models.StatePaid, nil
	case ActionPayPartially:
		return models.StatePaidPartially, nil
	case ActionRefund:
		return models.StateRefunded, nil
	case ActionRefundPartially:
		return models.StateRefundedPartially, nil
	default:
		return "", fmt.Errorf("unknown transition action: %s", actionName)
	}
}
