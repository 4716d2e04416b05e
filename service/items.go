package service

import (
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/commercehub/easy-checkout-api/models"
)

const unitPcs = "pcs"

// ExtractItems converts a cart's or order's line items plus shipping into the
// provider's order-item format. The list is derived data and is recomputed on
// every call.
func ExtractItems(source models.PaymentSource) []models.OrderItem {
	var items []models.OrderItem

	for _, line := range source.LineItems() {
		taxRate, taxAmount := sumTaxes(line.Taxes)

		items = append(items, models.OrderItem{
			Reference:        line.Reference,
			Name:             Sanitize(line.Label),
			Quantity:         line.Quantity,
			Unit:             unitPcs,
			UnitPrice:        MinorUnits(line.UnitPrice.Sub(taxAmount)),
			TaxRate:          MinorUnits(taxRate),
			TaxAmount:        MinorUnits(taxAmount),
			GrossTotalAmount: MinorUnits(line.TotalPrice),
			NetTotalAmount:   MinorUnits(line.TotalPrice.Sub(taxAmount)),
		})
	}

	shipping := source.ShippingCost()
	if shipping.TotalPrice.GreaterThan(decimal.Zero) {
		items = append(items, shippingCostLine(shipping))
	}

	return items
}

// ReconciliationPayload builds the body for a charge or refund. When the
// amount matches the order total the full item list is reused; a partial
// amount gets a single placeholder item, since the provider only requires
// the total to match.
func ReconciliationPayload(order *models.Order, amount decimal.Decimal) *models.ReconciliationPayload {
	var items []models.OrderItem
	if amount.Equal(order.TotalPrice()) {
		items = ExtractItems(order)
	} else {
		items = placeholderItems(MinorUnits(amount))
	}

	return &models.ReconciliationPayload{
		Amount:     MinorUnits(amount),
		OrderItems: items,
	}
}

// Multiple tax lines on one item add their rates together; this mirrors how
// the provider reports combined taxes, so rates are summed rather than
// averaged.
func sumTaxes(taxes []models.CalculatedTax) (decimal.Decimal, decimal.Decimal) {
	taxRate := decimal.Zero
	taxAmount := decimal.Zero
	for _, tax := range taxes {
		taxRate = taxRate.Add(tax.Rate)
		taxAmount = taxAmount.Add(tax.Amount)
	}
	return taxRate, taxAmount
}

// Shipping tax is deliberately not broken out; the gross shipping total is
// sent as a single zero-tax line.
func shippingCostLine(cost models.CalculatedPrice) models.OrderItem {
	total := MinorUnits(cost.TotalPrice)
	return models.OrderItem{
		Reference:        "shipping",
		Name:             "Shipping",
		Quantity:         1,
		Unit:             unitPcs,
		UnitPrice:        total,
		TaxRate:          0,
		TaxAmount:        0,
		GrossTotalAmount: total,
		NetTotalAmount:   total,
	}
}

func placeholderItems(amount int64) []models.OrderItem {
	ref := fmt.Sprintf("item%d", rand.Intn(100)+1)
	return []models.OrderItem{{
		Reference:        ref,
		Name:             ref,
		Quantity:         1,
		Unit:             unitPcs,
		UnitPrice:        amount,
		TaxRate:          0,
		TaxAmount:        0,
		GrossTotalAmount: amount,
		NetTotalAmount:   amount,
	}}
}
