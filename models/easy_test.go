package models

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// The provider matches payloads on exact key names, so these tests compare
// marshalled output byte-for-byte rather than field-by-field.

func paymentRequestFixture() *PaymentRequest {
	return &PaymentRequest{
		Order: OrderRequest{
			Items: []OrderItem{
				{
					Reference:        "product-1",
					Name:             "Leather Satchel",
					Quantity:         2,
					Unit:             "pcs",
					UnitPrice:        800,
					TaxRate:          1900,
					TaxAmount:        200,
					GrossTotalAmount: 2000,
					NetTotalAmount:   1800,
				},
			},
			Amount:    2000,
			Currency:  "EUR",
			Reference: "10042",
		},
		Checkout: CheckoutRequest{
			TermsURL:                    "https://shop.example/terms",
			MerchantHandlesConsumerData: true,
			Consumer: Consumer{
				Email: "jane.doe@example.com",
				ShippingAddress: ConsumerAddress{
					AddressLine1: "1 High Street",
					PostalCode:   "10117",
					City:         "Berlin",
					Country:      "DEU",
				},
			},
		},
	}
}

const orderJSON = `"order":{"items":[{"reference":"product-1","name":"Leather Satchel","quantity":2,"unit":"pcs","unitPrice":800,"taxRate":1900,"taxAmount":200,"grossTotalAmount":2000,"netTotalAmount":1800}],"amount":2000,"currency":"EUR","reference":"10042"}`

func TestUnitPaymentRequestWireFormat(t *testing.T) {

	Convey("Hosted charge-now payment for a business consumer", t, func() {
		request := paymentRequestFixture()
		request.Checkout.ReturnURL = "https://shop.example/return"
		request.Checkout.Charge = "true"
		request.Checkout.IntegrationType = "HostedPaymentPage"
		request.Checkout.Consumer.Company = &ConsumerCompany{
			Name:    "ACME GmbH",
			Contact: ConsumerContact{FirstName: "Jane", LastName: "Doe"},
		}

		body, err := json.Marshal(request)

		So(err, ShouldBeNil)
		So(string(body), ShouldEqual, `{`+orderJSON+`,`+
			`"checkout":{"returnUrl":"https://shop.example/return","termsUrl":"https://shop.example/terms","charge":"true","merchantHandlesConsumerData":true,"integrationType":"HostedPaymentPage",`+
			`"consumer":{"email":"jane.doe@example.com","shippingAddress":{"addressLine1":"1 High Street","addressLine2":"","postalCode":"10117","city":"Berlin","country":"DEU"},`+
			`"company":{"name":"ACME GmbH","contact":{"firstName":"Jane","lastName":"Doe"}}}}}`)
	})

	Convey("Embedded payment for a private person omits the unset keys", t, func() {
		request := paymentRequestFixture()
		request.Checkout.URL = "https://shop.example/checkout/finish"
		request.Checkout.Consumer.PrivatePerson = &ConsumerContact{FirstName: "Jane", LastName: "Doe"}

		body, err := json.Marshal(request)

		So(err, ShouldBeNil)
		So(string(body), ShouldEqual, `{`+orderJSON+`,`+
			`"checkout":{"termsUrl":"https://shop.example/terms","merchantHandlesConsumerData":true,"url":"https://shop.example/checkout/finish",`+
			`"consumer":{"email":"jane.doe@example.com","shippingAddress":{"addressLine1":"1 High Street","addressLine2":"","postalCode":"10117","city":"Berlin","country":"DEU"},`+
			`"privatePerson":{"firstName":"Jane","lastName":"Doe"}}}}`)
	})
}

func TestUnitReconciliationPayloadWireFormat(t *testing.T) {

	Convey("Charge and refund bodies use the orderItems key", t, func() {
		payload := &ReconciliationPayload{
			Amount: 2000,
			OrderItems: []OrderItem{
				{
					Reference:        "product-1",
					Name:             "Leather Satchel",
					Quantity:         2,
					Unit:             "pcs",
					UnitPrice:        800,
					TaxRate:          1900,
					TaxAmount:        200,
					GrossTotalAmount: 2000,
					NetTotalAmount:   1800,
				},
			},
		}

		body, err := json.Marshal(payload)

		So(err, ShouldBeNil)
		So(string(body), ShouldEqual, `{"amount":2000,"orderItems":[{"reference":"product-1","name":"Leather Satchel","quantity":2,"unit":"pcs","unitPrice":800,"taxRate":1900,"taxAmount":200,"grossTotalAmount":2000,"netTotalAmount":1800}]}`)
	})
}
