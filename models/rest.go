package models

import "github.com/shopspring/decimal"

// IncomingCreatePaymentRequest is the data received in the body of a
// create-payment request
type IncomingCreatePaymentRequest struct {
	Context      SalesChannelContext `json:"context"`
	CheckoutType string              `json:"checkout_type"`
	Transaction  *PaymentTransaction `json:"transaction,omitempty"`
}

// IncomingReconcileRequest is the data received in the body of a charge or
// refund request
type IncomingReconcileRequest struct {
	Order          Order           `json:"order"`
	SalesChannelID string          `json:"sales_channel_id"`
	Amount         decimal.Decimal `json:"amount"`
}

// CreatePaymentResourceResponse is returned after a payment has been
// created. CheckoutJSURL is the provider script the storefront embeds to
// render the checkout for the payment.
type CreatePaymentResourceResponse struct {
	PaymentID     string `json:"payment_id"`
	CheckoutJSURL string `json:"checkout_js_url"`
}
