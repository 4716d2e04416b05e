package service

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/commercehub/easy-checkout-api/config"
	"github.com/commercehub/easy-checkout-api/easy"
	"github.com/commercehub/easy-checkout-api/fixtures"
	"github.com/commercehub/easy-checkout-api/models"
	"github.com/commercehub/easy-checkout-api/statemachine"
)

type reconcileMocks struct {
	channelConfig *config.MockChannelConfig
	client        *easy.MockClient
	transitions   *statemachine.MockTransitionHandler
	details       *statemachine.MockPaymentDetailsUpdater
}

func newReconcileMocks(mockCtrl *gomock.Controller) (*ReconcileService, reconcileMocks) {
	mocks := reconcileMocks{
		channelConfig: config.NewMockChannelConfig(mockCtrl),
		client:        easy.NewMockClient(mockCtrl),
		transitions:   statemachine.NewMockTransitionHandler(mockCtrl),
		details:       statemachine.NewMockPaymentDetailsUpdater(mockCtrl),
	}
	service := &ReconcileService{
		Client:        mocks.client,
		ChannelConfig: mocks.channelConfig,
		Transitions:   mocks.transitions,
		Details:       mocks.details,
	}
	return service, mocks
}

func (m reconcileMocks) expectCredentials() {
	m.channelConfig.EXPECT().Environment(fixtures.ChannelID).Return("test", nil)
	m.channelConfig.EXPECT().SecretKey(fixtures.ChannelID).Return("secret-key", nil)
}

func TestUnitChargePayment(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	Convey("Order without transactions is invalid", t, func() {
		service, _ := newReconcileMocks(mockCtrl)
		order := fixtures.GetOrder(models.StateOpen)
		order.Transactions = nil

		payload, responseType, err := service.ChargePayment(order, fixtures.ChannelID, fixtures.PaymentID, decimal.NewFromInt(28))

		So(payload, ShouldBeNil)
		So(responseType, ShouldEqual, InvalidData)
		So(err.Error(), ShouldEqual, "order has no payment transactions")
	})

	Convey("Missing channel credentials fail before any API call", t, func() {
		service, mocks := newReconcileMocks(mockCtrl)
		mocks.channelConfig.EXPECT().Environment(fixtures.ChannelID).Return("", config.ErrMissingEnvironment)

		payload, responseType, err := service.ChargePayment(fixtures.GetOrder(models.StateOpen), fixtures.ChannelID, fixtures.PaymentID, decimal.NewFromInt(28))

		So(payload, ShouldBeNil)
		So(responseType, ShouldEqual, Error)
		So(err.Error(), ShouldEqual, "error getting environment: [no Easy environment configured]")
	})

	Convey("Provider charge error is surfaced without transitions", t, func() {
		service, mocks := newReconcileMocks(mockCtrl)
		mocks.expectCredentials()
		mocks.client.EXPECT().ChargePayment(testClientConfig, fixtures.PaymentID, gomock.Any()).
			Return("", errors.New("error status [402] back from Easy: [declined]"))

		payload, responseType, err := service.ChargePayment(fixtures.GetOrder(models.StateOpen), fixtures.ChannelID, fixtures.PaymentID, decimal.NewFromFloat(28.00))

		So(payload, ShouldBeNil)
		So(responseType, ShouldEqual, Error)
		So(err.Error(), ShouldEqual, "error charging payment in Easy: [error status [402] back from Easy: [declined]]")
	})

	Convey("Full charge on an open transaction pays exactly once", t, func() {
		service, mocks := newReconcileMocks(mockCtrl)
		mocks.expectCredentials()
		mocks.client.EXPECT().ChargePayment(testClientConfig, fixtures.PaymentID, gomock.Any()).Return(fixtures.ChargeID, nil)
		mocks.client.EXPECT().GetPayment(testClientConfig, fixtures.PaymentID).Return(fixtures.GetPayment(2800), nil)
		mocks.transitions.EXPECT().
			Transition(statemachine.EntityOrderTransaction, fixtures.TransactionID, statemachine.ActionPay).
			Return(nil)
		mocks.details.EXPECT().
			UpdatePaymentDetails(fixtures.TransactionID, map[string]interface{}{"payment_id": fixtures.PaymentID, "charge_id": fixtures.ChargeID}).
			Return(nil)

		payload, responseType, err := service.ChargePayment(fixtures.GetOrder(models.StateOpen), fixtures.ChannelID, fixtures.PaymentID, decimal.NewFromFloat(28.00))

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(payload.Amount, ShouldEqual, 2800)
		So(payload.OrderItems, ShouldHaveLength, 3)
	})

	Convey("Full charge on a paid transaction reopens first", t, func() {
		service, mocks := newReconcileMocks(mockCtrl)
		mocks.expectCredentials()
		mocks.client.EXPECT().ChargePayment(testClientConfig, fixtures.PaymentID, gomock.Any()).Return(fixtures.ChargeID, nil)
		mocks.client.EXPECT().GetPayment(testClientConfig, fixtures.PaymentID).Return(fixtures.GetPayment(2800), nil)
		gomock.InOrder(
			mocks.transitions.EXPECT().
				Transition(statemachine.EntityOrderTransaction, fixtures.TransactionID, statemachine.ActionReopen).
				Return(nil),
			mocks.transitions.EXPECT().
				Transition(statemachine.EntityOrderTransaction, fixtures.TransactionID, statemachine.ActionPay).
				Return(nil),
		)
		mocks.details.EXPECT().UpdatePaymentDetails(fixtures.TransactionID, gomock.Any()).Return(nil)

		_, responseType, err := service.ChargePayment(fixtures.GetOrder(models.StatePaid), fixtures.ChannelID, fixtures.PaymentID, decimal.NewFromFloat(28.00))

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
	})

	Convey("Partial charge pays partially with a placeholder payload", t, func() {
		service, mocks := newReconcileMocks(mockCtrl)
		mocks.expectCredentials()
		mocks.client.EXPECT().ChargePayment(testClientConfig, fixtures.PaymentID, gomock.Any()).Return(fixtures.ChargeID, nil)
		mocks.client.EXPECT().GetPayment(testClientConfig, fixtures.PaymentID).Return(fixtures.GetPayment(2800), nil)
		mocks.transitions.EXPECT().
			Transition(statemachine.EntityOrderTransaction, fixtures.TransactionID, statemachine.ActionPayPartially).
			Return(nil)
		mocks.details.EXPECT().UpdatePaymentDetails(fixtures.TransactionID, gomock.Any()).Return(nil)

		payload, responseType, err := service.ChargePayment(fixtures.GetOrder(models.StateOpen), fixtures.ChannelID, fixtures.PaymentID, decimal.NewFromFloat(14.00))

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(payload.Amount, ShouldEqual, 1400)
		So(payload.OrderItems, ShouldHaveLength, 1)
	})

	Convey("Transition failure aborts the charge", t, func() {
		service, mocks := newReconcileMocks(mockCtrl)
		mocks.expectCredentials()
		mocks.client.EXPECT().ChargePayment(testClientConfig, fixtures.PaymentID, gomock.Any()).Return(fixtures.ChargeID, nil)
		mocks.client.EXPECT().GetPayment(testClientConfig, fixtures.PaymentID).Return(fixtures.GetPayment(2800), nil)
		mocks.transitions.EXPECT().
			Transition(statemachine.EntityOrderTransaction, fixtures.TransactionID, statemachine.ActionPay).
			Return(errors.New("transaction [txn-1] not found"))

		payload, responseType, err := service.ChargePayment(fixtures.GetOrder(models.StateOpen), fixtures.ChannelID, fixtures.PaymentID, decimal.NewFromFloat(28.00))

		So(payload, ShouldBeNil)
		So(responseType, ShouldEqual, Error)
		So(err.Error(), ShouldEqual, "error recording transition [pay] on transaction [txn-1]: [transaction [txn-1] not found]")
	})
}

func TestUnitRefundPayment(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	Convey("Payment with no charges cannot be refunded", t, func() {
		service, mocks := newReconcileMocks(mockCtrl)
		mocks.expectCredentials()
		payment := fixtures.GetPayment(2800)
		payment.Charges = nil
		mocks.client.EXPECT().GetPayment(testClientConfig, fixtures.PaymentID).Return(payment, nil)

		payload, responseType, err := service.RefundPayment(fixtures.GetOrder(models.StatePaid), fixtures.ChannelID, fixtures.PaymentID, decimal.NewFromFloat(28.00))

		So(payload, ShouldBeNil)
		So(responseType, ShouldEqual, InvalidData)
		So(err.Error(), ShouldEqual, "payment [pay-1] has no charges to refund")
	})

	Convey("Full refund issues only the refund transition", t, func() {
		service, mocks := newReconcileMocks(mockCtrl)
		mocks.expectCredentials()
		mocks.client.EXPECT().GetPayment(testClientConfig, fixtures.PaymentID).Return(fixtures.GetPayment(2800), nil).Times(2)
		mocks.client.EXPECT().RefundPayment(testClientConfig, fixtures.ChargeID, gomock.Any()).Return("rfd-1", nil)
		mocks.transitions.EXPECT().
			Transition(statemachine.EntityOrderTransaction, fixtures.TransactionID, statemachine.ActionRefund).
			Return(nil)
		mocks.details.EXPECT().
			UpdatePaymentDetails(fixtures.TransactionID, map[string]interface{}{"payment_id": fixtures.PaymentID, "refund_id": "rfd-1"}).
			Return(nil)

		payload, responseType, err := service.RefundPayment(fixtures.GetOrder(models.StatePaid), fixtures.ChannelID, fixtures.PaymentID, decimal.NewFromFloat(28.00))

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(payload.Amount, ShouldEqual, 2800)
		So(payload.OrderItems, ShouldHaveLength, 3)
	})

	Convey("Full refund from refunded-partially takes the equal-amount branch only", t, func() {
		service, mocks := newReconcileMocks(mockCtrl)
		mocks.expectCredentials()
		mocks.client.EXPECT().GetPayment(testClientConfig, fixtures.PaymentID).Return(fixtures.GetPayment(2800), nil).Times(2)
		mocks.client.EXPECT().RefundPayment(testClientConfig, fixtures.ChargeID, gomock.Any()).Return("rfd-2", nil)
		mocks.transitions.EXPECT().
			Transition(statemachine.EntityOrderTransaction, fixtures.TransactionID, statemachine.ActionRefund).
			Return(nil)
		mocks.details.EXPECT().UpdatePaymentDetails(fixtures.TransactionID, gomock.Any()).Return(nil)

		_, responseType, err := service.RefundPayment(fixtures.GetOrder(models.StateRefundedPartially), fixtures.ChannelID, fixtures.PaymentID, decimal.NewFromFloat(28.00))

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
	})

	Convey("Partial refund from paid refunds partially", t, func() {
		service, mocks := newReconcileMocks(mockCtrl)
		mocks.expectCredentials()
		mocks.client.EXPECT().GetPayment(testClientConfig, fixtures.PaymentID).Return(fixtures.GetPayment(2800), nil).Times(2)
		mocks.client.EXPECT().RefundPayment(testClientConfig, fixtures.ChargeID, gomock.Any()).Return("rfd-3", nil)
		mocks.transitions.EXPECT().
			Transition(statemachine.EntityOrderTransaction, fixtures.TransactionID, statemachine.ActionRefundPartially).
			Return(nil)
		mocks.details.EXPECT().UpdatePaymentDetails(fixtures.TransactionID, gomock.Any()).Return(nil)

		payload, responseType, err := service.RefundPayment(fixtures.GetOrder(models.StatePaid), fixtures.ChannelID, fixtures.PaymentID, decimal.NewFromFloat(10.00))

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(payload.Amount, ShouldEqual, 1000)
		So(payload.OrderItems, ShouldHaveLength, 1)
	})

	Convey("Partial refund from refunded-partially replays the reopen detour", t, func() {
		service, mocks := newReconcileMocks(mockCtrl)
		mocks.expectCredentials()
		mocks.client.EXPECT().GetPayment(testClientConfig, fixtures.PaymentID).Return(fixtures.GetPayment(2800), nil).Times(2)
		mocks.client.EXPECT().RefundPayment(testClientConfig, fixtures.ChargeID, gomock.Any()).Return("rfd-4", nil)
		gomock.InOrder(
			mocks.transitions.EXPECT().
				Transition(statemachine.EntityOrderTransaction, fixtures.TransactionID, statemachine.ActionReopen).
				Return(nil),
			mocks.transitions.EXPECT().
				Transition(statemachine.EntityOrderTransaction, fixtures.TransactionID, statemachine.ActionPayPartially).
				Return(nil),
			mocks.transitions.EXPECT().
				Transition(statemachine.EntityOrderTransaction, fixtures.TransactionID, statemachine.ActionRefundPartially).
				Return(nil),
		)
		mocks.details.EXPECT().UpdatePaymentDetails(fixtures.TransactionID, gomock.Any()).Return(nil)

		_, responseType, err := service.RefundPayment(fixtures.GetOrder(models.StateRefundedPartially), fixtures.ChannelID, fixtures.PaymentID, decimal.NewFromFloat(5.00))

		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
	})

	Convey("Provider refund error is surfaced without transitions", t, func() {
		service, mocks := newReconcileMocks(mockCtrl)
		mocks.expectCredentials()
		mocks.client.EXPECT().GetPayment(testClientConfig, fixtures.PaymentID).Return(fixtures.GetPayment(2800), nil)
		mocks.client.EXPECT().RefundPayment(testClientConfig, fixtures.ChargeID, gomock.Any()).
			Return("", errors.New("error status [400] back from Easy: [amount too high]"))

		payload, responseType, err := service.RefundPayment(fixtures.GetOrder(models.StatePaid), fixtures.ChannelID, fixtures.PaymentID, decimal.NewFromFloat(50.00))

		So(payload, ShouldBeNil)
		So(responseType, ShouldEqual, Error)
		So(err.Error(), ShouldEqual, "error refunding payment in Easy: [error status [400] back from Easy: [amount too high]]")
	})
}
