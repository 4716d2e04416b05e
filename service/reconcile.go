package service

import (
	"fmt"

	"github.com/companieshouse/chs.go/log"
	"github.com/shopspring/decimal"

	"github.com/commercehub/easy-checkout-api/config"
	"github.com/commercehub/easy-checkout-api/easy"
	"github.com/commercehub/easy-checkout-api/models"
	"github.com/commercehub/easy-checkout-api/statemachine"
)

// ReconcileService drives charge and refund flows: it calls Easy, compares
// the requested amount against the provider's authoritative order amount and
// issues the resulting state transitions.
type ReconcileService struct {
	Client        easy.Client
	ChannelConfig config.ChannelConfig
	Transitions   statemachine.TransitionHandler
	Details       statemachine.PaymentDetailsUpdater
}

// ChargePayment charges an amount against the payment and transitions the
// order's transaction to paid or paid-partially. The payload sent to Easy is
// returned for auditing by the caller.
func (service *ReconcileService) ChargePayment(order *models.Order, channelID, paymentID string, amount decimal.Decimal) (*models.ReconciliationPayload, ResponseType, error) {
	transaction, err := order.FirstTransaction()
	if err != nil {
		return nil, InvalidData, err
	}

	clientConfig, err := clientConfigFor(service.ChannelConfig, channelID)
	if err != nil {
		return nil, Error, err
	}

	payload := ReconciliationPayload(order, amount)

	chargeID, err := service.Client.ChargePayment(clientConfig, paymentID, payload)
	if err != nil {
		return nil, Error, fmt.Errorf("error charging payment in Easy: [%v]", err)
	}

	payment, err := service.Client.GetPayment(clientConfig, paymentID)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting payment from Easy: [%v]", err)
	}

	outcome := ChargedPartially
	if MinorUnits(amount) == payment.OrderAmount() {
		outcome = ChargedInFull
	}

	if responseType, err := service.applyTransitions(transaction, outcome); err != nil {
		return nil, responseType, err
	}

	err = service.Details.UpdatePaymentDetails(transaction.ID, map[string]interface{}{
		"payment_id": paymentID,
		"charge_id":  chargeID,
	})
	if err != nil {
		return nil, Error, err
	}

	log.Info("payment charged", log.Data{
		"payment_id": paymentID,
		"charge_id":  chargeID,
		"amount":     payload.Amount,
		"outcome":    outcome.String(),
	})

	return payload, Success, nil
}

// RefundPayment refunds an amount against the payment's first charge and
// transitions the order's transaction to refunded or refunded-partially. The
// payload sent to Easy is returned for auditing by the caller.
func (service *ReconcileService) RefundPayment(order *models.Order, channelID, paymentID string, amount decimal.Decimal) (*models.ReconciliationPayload, ResponseType, error) {
	transaction, err := order.FirstTransaction()
	if err != nil {
		return nil, InvalidData, err
	}

	clientConfig, err := clientConfigFor(service.ChannelConfig, channelID)
	if err != nil {
		return nil, Error, err
	}

	payment, err := service.Client.GetPayment(clientConfig, paymentID)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting payment from Easy: [%v]", err)
	}

	chargeID := payment.FirstChargeID()
	if chargeID == "" {
		return nil, InvalidData, fmt.Errorf("payment [%s] has no charges to refund", paymentID)
	}

	payload := ReconciliationPayload(order, amount)

	refundID, err := service.Client.RefundPayment(clientConfig, chargeID, payload)
	if err != nil {
		return nil, Error, fmt.Errorf("error refunding payment in Easy: [%v]", err)
	}

	payment, err = service.Client.GetPayment(clientConfig, paymentID)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting payment from Easy: [%v]", err)
	}

	// the equal-amount branch takes priority regardless of current state
	outcome := RefundedPartially
	if MinorUnits(amount) == payment.OrderAmount() {
		outcome = RefundedInFull
	}

	if responseType, err := service.applyTransitions(transaction, outcome); err != nil {
		return nil, responseType, err
	}

	err = service.Details.UpdatePaymentDetails(transaction.ID, map[string]interface{}{
		"payment_id": paymentID,
		"refund_id":  refundID,
	})
	if err != nil {
		return nil, Error, err
	}

	log.Info("payment refunded", log.Data{
		"payment_id": paymentID,
		"charge_id":  chargeID,
		"refund_id":  refundID,
		"amount":     payload.Amount,
		"outcome":    outcome.String(),
	})

	return payload, Success, nil
}

// Transition failures are fatal: payment state cannot be assumed consistent
// if a transition is not recorded, so the operation aborts on the first
// failure.
func (service *ReconcileService) applyTransitions(transaction *models.OrderTransaction, outcome ReconcileOutcome) (ResponseType, error) {
	for _, action := range TransitionActions(transaction.State, outcome) {
		err := service.Transitions.Transition(statemachine.EntityOrderTransaction, transaction.ID, action)
		if err != nil {
			return Error, fmt.Errorf("error recording transition [%s] on transaction [%s]: [%v]", action, transaction.ID, err)
		}
	}
	return Success, nil
}
