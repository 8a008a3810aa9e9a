package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tdex-network/dynfee/internal/config"
	"github.com/tdex-network/dynfee/internal/core/application"
	"github.com/tdex-network/dynfee/internal/infrastructure/prompt"
	"github.com/urfave/cli/v2"
)

var calcCmd = cli.Command{
	Name:  "calc",
	Usage: "calculate the dynamic fee without prompting for inputs",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "rate-i",
			Usage:    "the rate of coin i, ie. 0.95",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "balance-i",
			Usage:    "the pool balance of coin i, ie. 500000",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "rate-j",
			Usage:    "the rate of coin j, ie. 1.05",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "balance-j",
			Usage:    "the pool balance of coin j, ie. 1300000",
			Required: true,
		},
	},
	Action: calcAction,
}

func calcAction(ctx *cli.Context) error {
	i, err := parseCoinInput(ctx, "rate-i", "balance-i")
	if err != nil {
		return err
	}
	j, err := parseCoinInput(ctx, "rate-j", "balance-j")
	if err != nil {
		return err
	}

	params, err := config.GetFeeParams()
	if err != nil {
		return err
	}
	svc, err := application.NewFeeCalculator(params, nil, ctx.App.Writer)
	if err != nil {
		return err
	}

	_, err = svc.Calculate(i, j)
	return err
}

func parseCoinInput(
	ctx *cli.Context, rateFlag, balanceFlag string,
) (application.CoinInput, error) {
	rate, err := parseFlag(ctx, rateFlag)
	if err != nil {
		return application.CoinInput{}, err
	}
	balance, err := parseFlag(ctx, balanceFlag)
	if err != nil {
		return application.CoinInput{}, err
	}
	return application.CoinInput{Rate: rate, Balance: balance}, nil
}

func parseFlag(ctx *cli.Context, name string) (decimal.Decimal, error) {
	value, err := prompt.ParseDecimal(ctx.String(name))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s: %w", name, err)
	}
	return value, nil
}
