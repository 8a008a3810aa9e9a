package main

import (
	"fmt"

	"github.com/tdex-network/dynfee/internal/config"
	"github.com/urfave/cli/v2"
)

var configCmd = cli.Command{
	Name:   "config",
	Usage:  "print the fee params in use, set them with DYNFEE_* env vars",
	Action: configAction,
}

func configAction(ctx *cli.Context) error {
	params, err := config.GetFeeParams()
	if err != nil {
		return err
	}

	out := ctx.App.Writer
	fmt.Fprintf(out, "fee: %s\n", params.Fee)
	fmt.Fprintf(out, "fee_multiplier: %s\n", params.FeeMultiplier)
	fmt.Fprintf(out, "precision: %s\n", params.Precision)
	fmt.Fprintf(out, "fee_denominator: %s\n", params.FeeDenominator)
	fmt.Fprintf(out, "division_precision: %d\n", params.DivisionPrecision)
	fmt.Fprintf(out, "dynamic: %t\n", params.IsDynamic())

	return nil
}
