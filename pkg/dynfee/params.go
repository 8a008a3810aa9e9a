// Package dynfee implements the dynamic fee curve of a two coin stable pool
// together with the fixed-point helpers needed to feed it.
package dynfee

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	// DefaultDivisionPrecision is the number of decimal places kept by every
	// division of 10^18-scaled values.
	DefaultDivisionPrecision = 18
	// MaxDivisionPrecision bounds DivisionPrecision.
	MaxDivisionPrecision = 64

	fixedPointDecimals = 18
)

var (
	// BigOne is 10^18, the fixed-point unit used for rates, balances and fees.
	BigOne = decimal.New(1, fixedPointDecimals)

	four = decimal.NewFromInt(4)
)

// Params holds the fee curve constants. All values except DivisionPrecision
// are expressed in 10^18-scaled fixed point.
type Params struct {
	// Fee is the flat base fee.
	Fee decimal.Decimal
	// FeeMultiplier (fee_m) enables the dynamic curve when greater than
	// FeeDenominator.
	FeeMultiplier decimal.Decimal
	// Precision rescales the product of two scaled numbers.
	Precision decimal.Decimal
	// FeeDenominator is the scale of the fee, ie. 10^18 means 100%.
	FeeDenominator    decimal.Decimal
	DivisionPrecision int32
}

// DefaultParams returns the constants the calculator ships with.
func DefaultParams() Params {
	return Params{
		Fee:               decimal.NewFromInt(10000000),
		FeeMultiplier:     decimal.NewFromInt(200).Mul(BigOne),
		Precision:         BigOne,
		FeeDenominator:    BigOne,
		DivisionPrecision: DefaultDivisionPrecision,
	}
}

// Validate makes sure the params can be safely used to compute fees.
func (p Params) Validate() error {
	if !p.Precision.IsPositive() {
		return fmt.Errorf("%w: precision must be positive", ErrInvalidParams)
	}
	if !p.FeeDenominator.IsPositive() {
		return fmt.Errorf("%w: fee denominator must be positive", ErrInvalidParams)
	}
	if p.Fee.IsNegative() {
		return fmt.Errorf("%w: fee must not be negative", ErrInvalidParams)
	}
	if p.FeeMultiplier.IsNegative() {
		return fmt.Errorf("%w: fee multiplier must not be negative", ErrInvalidParams)
	}
	if p.DivisionPrecision < 0 || p.DivisionPrecision > MaxDivisionPrecision {
		return fmt.Errorf(
			"%w: division precision must be in range [0, %d]",
			ErrInvalidParams, MaxDivisionPrecision,
		)
	}
	for _, v := range []decimal.Decimal{p.Fee, p.FeeMultiplier, p.Precision, p.FeeDenominator} {
		if err := CheckAmount(v); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidParams, err)
		}
	}
	return nil
}

// IsDynamic returns whether the fee curve is enabled, that is when the fee
// multiplier exceeds the fee denominator.
func (p Params) IsDynamic() bool {
	return p.FeeMultiplier.GreaterThan(p.FeeDenominator)
}
