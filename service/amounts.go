package service

import "github.com/shopspring/decimal"

var oneHundred = decimal.NewFromInt(100)

// MinorUnits converts a decimal currency amount into integer minor units,
// rounding half away from zero. Every monetary value sent to Easy must pass
// through here; the provider only accepts integer amounts.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(oneHundred).Round(0).IntPart()
}
