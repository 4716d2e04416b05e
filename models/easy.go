package models

// PaymentRequest is the request sent to Easy to create a payment. Field names
// and nesting are a compatibility contract with the provider and must not be
// altered.
type PaymentRequest struct {
	Order    OrderRequest    `json:"order"    validate:"required"`
	Checkout CheckoutRequest `json:"checkout" validate:"required"`
}

// OrderRequest holds the order block of a payment request
type OrderRequest struct {
	Items     []OrderItem `json:"items"     validate:"required,min=1,dive"`
	Amount    int64       `json:"amount"    validate:"gte=0"`
	Currency  string      `json:"currency"  validate:"required,len=3"`
	Reference string      `json:"reference" validate:"required"`
}

// OrderItem is a single order line in the provider's wire format. All amounts
// are integer minor units.
type OrderItem struct {
	Reference        string `json:"reference" validate:"required"`
	Name             string `json:"name"      validate:"required,max=128"`
	Quantity         int    `json:"quantity"  validate:"gte=1"`
	Unit             string `json:"unit"`
	UnitPrice        int64  `json:"unitPrice"`
	TaxRate          int64  `json:"taxRate"`
	TaxAmount        int64  `json:"taxAmount"`
	GrossTotalAmount int64  `json:"grossTotalAmount"`
	NetTotalAmount   int64  `json:"netTotalAmount"`
}

// CheckoutRequest holds the checkout options of a payment request. Charge is
// the literal string "true" when payments are captured immediately; the
// provider does not accept a boolean here.
type CheckoutRequest struct {
	ReturnURL                   string   `json:"returnUrl,omitempty"`
	TermsURL                    string   `json:"termsUrl" validate:"required"`
	Charge                      string   `json:"charge,omitempty"`
	MerchantHandlesConsumerData bool     `json:"merchantHandlesConsumerData"`
	IntegrationType             string   `json:"integrationType,omitempty"`
	URL                         string   `json:"url,omitempty"`
	Consumer                    Consumer `json:"consumer" validate:"required"`
}

// Consumer identifies the paying customer. Exactly one of Company or
// PrivatePerson is set, depending on whether the billing address carries a
// company name.
type Consumer struct {
	Email           string           `json:"email" validate:"required"`
	ShippingAddress ConsumerAddress  `json:"shippingAddress"`
	Company         *ConsumerCompany `json:"company,omitempty"`
	PrivatePerson   *ConsumerContact `json:"privatePerson,omitempty"`
}

// ConsumerAddress is the consumer's shipping address. Country is an ISO
// 3166-1 alpha-3 code.
type ConsumerAddress struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	PostalCode   string `json:"postalCode"`
	City         string `json:"city"`
	Country      string `json:"country"`
}

// ConsumerCompany is the company block of a business consumer
type ConsumerCompany struct {
	Name    string          `json:"name"`
	Contact ConsumerContact `json:"contact"`
}

// ConsumerContact is a first/last name pair
type ConsumerContact struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// ReconciliationPayload is the body sent to Easy for charge and refund
// operations
type ReconciliationPayload struct {
	Amount     int64       `json:"amount"`
	OrderItems []OrderItem `json:"orderItems"`
}
