package application

import "github.com/shopspring/decimal"

// CoinInput is the human readable rate and balance of one pool coin, as
// entered by the user.
type CoinInput struct {
	Rate    decimal.Decimal
	Balance decimal.Decimal
}

// FeeResult contains the values printed at the end of a session. Xpi, Xpj
// and Fee are 10^18-scaled, HumanFee is Fee divided by the fee denominator.
type FeeResult struct {
	Xpi      decimal.Decimal
	Xpj      decimal.Decimal
	Fee      decimal.Decimal
	HumanFee decimal.Decimal
}
