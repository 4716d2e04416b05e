package models

// Address is a customer address as held by the shop
type Address struct {
	Street                string `json:"street"`
	AdditionalAddressLine string `json:"additional_address_line"`
	Zipcode               string `json:"zipcode"`
	City                  string `json:"city"`
	CountryISO3           string `json:"country_iso3"`
	Company               string `json:"company"`
}

// Customer is the paying customer with their active addresses
type Customer struct {
	Email           string  `json:"email"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	ShippingAddress Address `json:"shipping_address"`
	BillingAddress  Address `json:"billing_address"`
}

// SalesChannelContext carries the sales-channel scope a payment is created
// in: which channel, which session, which currency and customer.
type SalesChannelContext struct {
	SalesChannelID  string   `json:"sales_channel_id"`
	Token           string   `json:"token"`
	CurrencyISOCode string   `json:"currency_iso_code"`
	Customer        Customer `json:"customer"`
	Cart            *Cart    `json:"cart,omitempty"`
}

// PaymentTransaction is the in-flight transaction handed over after order
// creation. Absent when a payment is created against a live cart.
type PaymentTransaction struct {
	Order     Order  `json:"order"`
	ReturnURL string `json:"return_url"`
}
