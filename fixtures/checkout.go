package fixtures

import (
	"github.com/shopspring/decimal"

	"github.com/commercehub/easy-checkout-api/models"
)

var TransactionID = "txn-1"
var OrderNumber = "10042"
var SessionToken = "session-token-abc"
var ChannelID = "channel-1"
var PaymentID = "pay-1"
var ChargeID = "chg-1"

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// GetCart returns a cart with two taxed line items and a shipping cost of
// 3.00: (unit 10.00, qty 2, tax 2.00, total 20.00) and (unit 5.00, qty 1,
// tax 0.50, total 5.00)
func GetCart() *models.Cart {
	return &models.Cart{
		Token: SessionToken,
		Items: []models.CartItem{
			{
				ID:       "cart-item-1",
				Label:    "Product One",
				Quantity: 2,
				Price: models.CalculatedPrice{
					UnitPrice:  dec("10.00"),
					TotalPrice: dec("20.00"),
					Taxes:      []models.CalculatedTax{{Rate: dec("19"), Amount: dec("2.00")}},
				},
			},
			{
				ID:       "cart-item-2",
				Label:    "Product Two",
				Quantity: 1,
				Price: models.CalculatedPrice{
					UnitPrice:  dec("5.00"),
					TotalPrice: dec("5.00"),
					Taxes:      []models.CalculatedTax{{Rate: dec("19"), Amount: dec("0.50")}},
				},
			},
		},
		ShippingCosts: models.CalculatedPrice{TotalPrice: dec("3.00")},
		Price:         models.CalculatedPrice{TotalPrice: dec("28.00")},
	}
}

// GetOrder returns a placed order carrying the same lines as GetCart, with an
// open transaction attached
func GetOrder(state models.TransactionState) *models.Order {
	return &models.Order{
		OrderNumber: OrderNumber,
		Items: []models.OrderLineItem{
			{
				ProductID:  "product-1",
				Label:      "Product One",
				Quantity:   2,
				UnitPrice:  dec("10.00"),
				TotalPrice: dec("20.00"),
				Taxes:      []models.CalculatedTax{{Rate: dec("19"), Amount: dec("2.00")}},
			},
			{
				ProductID:  "product-2",
				Label:      "Product Two",
				Quantity:   1,
				UnitPrice:  dec("5.00"),
				TotalPrice: dec("5.00"),
				Taxes:      []models.CalculatedTax{{Rate: dec("19"), Amount: dec("0.50")}},
			},
		},
		ShippingCosts: models.CalculatedPrice{TotalPrice: dec("3.00")},
		AmountTotal:   dec("28.00"),
		Transactions:  []models.OrderTransaction{{ID: TransactionID, State: state}},
	}
}

// GetSalesChannelContext returns a channel context for a private customer
// with the given cart attached
func GetSalesChannelContext(cart *models.Cart) *models.SalesChannelContext {
	return &models.SalesChannelContext{
		SalesChannelID:  ChannelID,
		Token:           SessionToken,
		CurrencyISOCode: "EUR",
		Customer: models.Customer{
			Email:     "jane.doe@example.com",
			FirstName: "Jane",
			LastName:  "Doe",
			ShippingAddress: models.Address{
				Street:      "1 High Street",
				Zipcode:     "10117",
				City:        "Berlin",
				CountryISO3: "DEU",
			},
			BillingAddress: models.Address{
				Street:      "1 High Street",
				Zipcode:     "10117",
				City:        "Berlin",
				CountryISO3: "DEU",
			},
		},
		Cart: cart,
	}
}

// GetPayment returns the Easy payment resource reporting the given order
// amount with one charge attached
func GetPayment(orderAmount int64) *models.Payment {
	return &models.Payment{
		PaymentID:    PaymentID,
		OrderDetails: models.PaymentOrderDetails{Amount: orderAmount, Currency: "EUR"},
		Summary:      models.PaymentSummary{ChargedAmount: orderAmount},
		Charges:      []models.PaymentCharge{{ChargeID: ChargeID, Amount: orderAmount}},
	}
}
