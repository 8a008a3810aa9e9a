package application

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/dynfee/pkg/dynfee"
)

const (
	rateILabel    = "Enter rate for i (e.g., 0.95): "
	balanceILabel = "Enter balance for i (e.g., 500000): "
	rateJLabel    = "Enter rate for j (e.g., 1.05): "
	balanceJLabel = "Enter balance for j (e.g., 1300000): "
)

// Prompter reads a number from the user, asking again until the input is
// valid.
type Prompter interface {
	Decimal(label string) (decimal.Decimal, error)
}

// FeeCalculator normalizes the balances of the two coins of a pool and
// prints the resulting dynamic fee.
type FeeCalculator struct {
	params   dynfee.Params
	prompter Prompter
	out      io.Writer
}

// NewFeeCalculator returns a calculator using the given fee params. The
// prompter is needed only by interactive sessions and can be nil otherwise.
func NewFeeCalculator(
	params dynfee.Params, prompter Prompter, out io.Writer,
) (*FeeCalculator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &FeeCalculator{params, prompter, out}, nil
}

// RunInteractive asks for rate and balance of coin i, prints its normalized
// balance, does the same for coin j and finally prints the dynamic fee.
func (c *FeeCalculator) RunInteractive() (*FeeResult, error) {
	if c.prompter == nil {
		return nil, ErrMissingPrompter
	}

	xpi, err := c.promptNormalizedBalance("xpi", rateILabel, balanceILabel)
	if err != nil {
		return nil, err
	}
	xpj, err := c.promptNormalizedBalance("xpj", rateJLabel, balanceJLabel)
	if err != nil {
		return nil, err
	}

	return c.printFee(xpi, xpj)
}

// Calculate runs the same pipeline as RunInteractive for already known
// inputs.
func (c *FeeCalculator) Calculate(i, j CoinInput) (*FeeResult, error) {
	xpi, err := c.normalizedBalance("xpi", i)
	if err != nil {
		return nil, err
	}
	xpj, err := c.normalizedBalance("xpj", j)
	if err != nil {
		return nil, err
	}

	return c.printFee(xpi, xpj)
}

func (c *FeeCalculator) promptNormalizedBalance(
	name, rateLabel, balanceLabel string,
) (decimal.Decimal, error) {
	rate, err := c.prompter.Decimal(rateLabel)
	if err != nil {
		return decimal.Zero, err
	}
	balance, err := c.prompter.Decimal(balanceLabel)
	if err != nil {
		return decimal.Zero, err
	}

	return c.normalizedBalance(name, CoinInput{rate, balance})
}

func (c *FeeCalculator) normalizedBalance(
	name string, coin CoinInput,
) (decimal.Decimal, error) {
	xp := c.params.NormalizedBalance(
		dynfee.Scale(coin.Rate), dynfee.Scale(coin.Balance),
	)
	log.WithFields(log.Fields{
		"rate":    coin.Rate.String(),
		"balance": coin.Balance.String(),
		name:      xp.String(),
	}).Debug("normalized balance")

	if _, err := fmt.Fprintf(c.out, "%s: %s\n", name, xp); err != nil {
		return decimal.Zero, err
	}
	return xp, nil
}

func (c *FeeCalculator) printFee(xpi, xpj decimal.Decimal) (*FeeResult, error) {
	fee, err := c.params.DynamicFee(xpi, xpj)
	if err != nil {
		return nil, fmt.Errorf("computing dynamic fee: %w", err)
	}

	humanFee := c.params.Unscale(fee)
	log.WithFields(log.Fields{
		"dynamic": c.params.IsDynamic(),
		"fee":     fee.String(),
	}).Debug("dynamic fee")

	if _, err := fmt.Fprintf(c.out, "Dynamic Fee: %s\n", humanFee); err != nil {
		return nil, err
	}

	return &FeeResult{
		Xpi:      xpi,
		Xpj:      xpj,
		Fee:      fee,
		HumanFee: humanFee,
	}, nil
}
