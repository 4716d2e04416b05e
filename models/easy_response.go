package models

// CreatePaymentResponse is the response expected back from Easy after a
// payment has been successfully created
type CreatePaymentResponse struct {
	PaymentID    string `json:"paymentId"`
	HostedPayURL string `json:"hostedPaymentPageUrl"`
}

// ChargeResponse is the response expected back from Easy after a charge
type ChargeResponse struct {
	ChargeID string `json:"chargeId"`
}

// RefundResponse is the response expected back from Easy after a refund
type RefundResponse struct {
	RefundID string `json:"refundId"`
}

// GetPaymentResponse wraps the payment resource returned by Easy
type GetPaymentResponse struct {
	Payment Payment `json:"payment"`
}

// Payment is the payment resource as reported by Easy
type Payment struct {
	PaymentID    string              `json:"paymentId"`
	OrderDetails PaymentOrderDetails `json:"orderDetails"`
	Summary      PaymentSummary      `json:"summary"`
	Charges      []PaymentCharge     `json:"charges"`
}

// PaymentOrderDetails is the order block of a payment resource. Amount is in
// integer minor units.
type PaymentOrderDetails struct {
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Reference string `json:"reference"`
}

// PaymentSummary is the amount summary of a payment resource
type PaymentSummary struct {
	ReservedAmount  int64 `json:"reservedAmount"`
	ChargedAmount   int64 `json:"chargedAmount"`
	RefundedAmount  int64 `json:"refundedAmount"`
	CancelledAmount int64 `json:"cancelledAmount"`
}

// PaymentCharge is a single charge recorded against a payment
type PaymentCharge struct {
	ChargeID string `json:"chargeId"`
	Amount   int64  `json:"amount"`
}

// OrderAmount returns the authoritative order amount reported by the provider
func (p *Payment) OrderAmount() int64 {
	return p.OrderDetails.Amount
}

// FirstChargeID returns the id of the first charge recorded against the
// payment, or an empty string when nothing has been charged
func (p *Payment) FirstChargeID() string {
	if len(p.Charges) == 0 {
		return ""
	}
	return p.Charges[0].ChargeID
}
