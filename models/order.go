package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrUnknownSource is returned when a payment source is neither a cart nor an
// order. Callers must fail fast rather than build an empty item list.
var ErrUnknownSource = errors.New("payment source is neither cart nor order")

// CalculatedTax is a single tax collection entry on a line item
type CalculatedTax struct {
	Rate   decimal.Decimal `json:"rate"`
	Amount decimal.Decimal `json:"amount"`
}

// CalculatedPrice is a computed price with its tax breakdown
type CalculatedPrice struct {
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Taxes      []CalculatedTax `json:"taxes"`
}

// SourceLineItem is the shape both cart and order lines are read through
type SourceLineItem struct {
	Reference  string
	Label      string
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
	Taxes      []CalculatedTax
}

// PaymentSource abstracts over the two line-item sources a payment can be
// built from: a live cart before order creation, or a placed order after.
type PaymentSource interface {
	LineItems() []SourceLineItem
	ShippingCost() CalculatedPrice
	TotalPrice() decimal.Decimal
}

// CartItem is a line in a live cart
type CartItem struct {
	ID       string          `json:"id"`
	Label    string          `json:"label"`
	Quantity int             `json:"quantity"`
	Price    CalculatedPrice `json:"price"`
}

// Cart is a live cart, referenced by its session token
type Cart struct {
	Token         string          `json:"token"`
	Items         []CartItem      `json:"items"`
	ShippingCosts CalculatedPrice `json:"shipping_costs"`
	Price         CalculatedPrice `json:"price"`
}

// LineItems returns the cart lines keyed by cart item id
func (c *Cart) LineItems() []SourceLineItem {
	items := make([]SourceLineItem, len(c.Items))
	for i, item := range c.Items {
		items[i] = SourceLineItem{
			Reference:  item.ID,
			Label:      item.Label,
			Quantity:   item.Quantity,
			UnitPrice:  item.Price.UnitPrice,
			TotalPrice: item.Price.TotalPrice,
			Taxes:      item.Price.Taxes,
		}
	}
	return items
}

// ShippingCost returns the cart's shipping cost
func (c *Cart) ShippingCost() CalculatedPrice {
	return c.ShippingCosts
}

// TotalPrice returns the cart total
func (c *Cart) TotalPrice() decimal.Decimal {
	return c.Price.TotalPrice
}

// OrderLineItem is a line in a placed order
type OrderLineItem struct {
	ProductID  string          `json:"product_id"`
	Label      string          `json:"label"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Taxes      []CalculatedTax `json:"taxes"`
}

// OrderTransaction is the payment transaction attached to an order. State is
// owned by the transaction store; this service only reads it.
type OrderTransaction struct {
	ID    string           `json:"id"`
	State TransactionState `json:"state"`
}

// Order is a placed order
type Order struct {
	OrderNumber   string             `json:"order_number"`
	Items         []OrderLineItem    `json:"items"`
	ShippingCosts CalculatedPrice    `json:"shipping_costs"`
	AmountTotal   decimal.Decimal    `json:"amount_total"`
	Transactions  []OrderTransaction `json:"transactions"`
}

// LineItems returns the order lines keyed by product id
func (o *Order) LineItems() []SourceLineItem {
	items := make([]SourceLineItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = SourceLineItem{
			Reference:  item.ProductID,
			Label:      item.Label,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
			Taxes:      item.Taxes,
		}
	}
	return items
}

// ShippingCost returns the order's shipping cost
func (o *Order) ShippingCost() CalculatedPrice {
	return o.ShippingCosts
}

// TotalPrice returns the order total
func (o *Order) TotalPrice() decimal.Decimal {
	return o.AmountTotal
}

// FirstTransaction returns the order's first payment transaction
func (o *Order) FirstTransaction() (*OrderTransaction, error) {
	if len(o.Transactions) == 0 {
		return nil, errors.New("order has no payment transactions")
	}
	return &o.Transactions[0], nil
}

// SourceFor resolves the payment source variant. Exactly one of cart and
// order is expected; anything else is ErrUnknownSource.
func SourceFor(cart *Cart, order *Order) (PaymentSource, error) {
	switch {
	case order != nil:
		return order, nil
	case cart != nil:
		return cart, nil
	default:
		return nil, ErrUnknownSource
	}
}
