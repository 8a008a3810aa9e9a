package dynfee

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

const (
	// float64 range, in powers of ten
	maxAmountMagnitude = 308
	minAmountMagnitude = -324
)

var (
	// ErrInvalidParams ...
	ErrInvalidParams = errors.New("invalid fee params")
	// ErrZeroNormalizedBalance is returned when one of the normalized balances
	// is zero and the dynamic fee would require a division by zero.
	ErrZeroNormalizedBalance = errors.New("normalized balance must not be zero")
	// ErrAmountOutOfRange is returned for amounts whose magnitude falls
	// outside the range of a float64.
	ErrAmountOutOfRange = errors.New("amount out of range")
)

// CheckAmount makes sure the order of magnitude of a non-zero amount is
// within float64 range. It never expands the amount's exponent.
func CheckAmount(amount decimal.Decimal) error {
	coefficient := amount.Coefficient()
	if coefficient.Sign() == 0 {
		return nil
	}

	digits := len(new(big.Int).Abs(coefficient).String())
	magnitude := int64(amount.Exponent()) + int64(digits) - 1
	if magnitude > maxAmountMagnitude || magnitude < minAmountMagnitude {
		return fmt.Errorf(
			"%w: order of magnitude %d not in [%d, %d]",
			ErrAmountOutOfRange, magnitude, minAmountMagnitude, maxAmountMagnitude,
		)
	}
	return nil
}

// Scale takes a human readable amount and returns it as 10^18 fixed point.
func Scale(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(BigOne)
}

// Unscale divides a 10^18-scaled value by BigOne, back to a human readable
// amount. The scaled fractional digits are preserved.
func (p Params) Unscale(amount decimal.Decimal) decimal.Decimal {
	return amount.DivRound(BigOne, p.DivisionPrecision+fixedPointDecimals)
}

// NormalizedBalance returns the xp of a coin given its scaled rate and
// balance: rate * balance / precision.
func (p Params) NormalizedBalance(rate, balance decimal.Decimal) decimal.Decimal {
	return rate.Mul(balance).DivRound(p.Precision, p.DivisionPrecision)
}

// DynamicFee calculates the fee for a swap between coins with normalized
// balances xpi and xpj. The result is 10^18-scaled.
//
// When the fee multiplier does not exceed the fee denominator the flat base
// fee is returned, otherwise:
//
//	fee_m * fee / (fee_m - FEE_DENOMINATOR) * 4 * xpi * xpj / (xpi * xpj)^2 + FEE_DENOMINATOR
func (p Params) DynamicFee(xpi, xpj decimal.Decimal) (decimal.Decimal, error) {
	if !p.IsDynamic() {
		return p.Fee, nil
	}

	xpProduct := xpi.Mul(xpj)
	if xpProduct.IsZero() {
		return decimal.Zero, ErrZeroNormalizedBalance
	}
	xps2 := xpProduct.Mul(xpProduct)

	amplifiedFee := p.FeeMultiplier.Mul(p.Fee).DivRound(
		p.FeeMultiplier.Sub(p.FeeDenominator), p.DivisionPrecision,
	)
	numerator := amplifiedFee.Mul(four).Mul(xpi).Mul(xpj)

	return numerator.DivRound(xps2, p.DivisionPrecision).Add(p.FeeDenominator), nil
}
