package main

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/dynfee/internal/config"
	"github.com/tdex-network/dynfee/internal/core/application"
	"github.com/tdex-network/dynfee/internal/infrastructure/prompt"
	"github.com/urfave/cli/v2"
)

// Version is set at build time with -ldflags.
var Version = "dev"

func main() {
	app := newApp()

	err := app.Run(os.Args)
	if err != nil {
		fatal(err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Version = Version
	app.Name = "dynfee"
	app.Usage = "Calculate the dynamic fee of a two coins stable pool"
	app.Before = initConfig
	app.Action = interactiveAction
	app.Commands = append(
		app.Commands,
		&calcCmd,
		&configCmd,
	)

	return app
}

func initConfig(_ *cli.Context) error {
	if err := config.InitConfig(); err != nil {
		return err
	}
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))
	return nil
}

func interactiveAction(ctx *cli.Context) error {
	if ctx.NArg() > 0 {
		return &invalidUsageError{ctx, ctx.Args().First()}
	}

	params, err := config.GetFeeParams()
	if err != nil {
		return err
	}

	out := ctx.App.Writer
	svc, err := application.NewFeeCalculator(
		params, prompt.NewPrompter(ctx.App.Reader, out), out,
	)
	if err != nil {
		return err
	}

	_, err = svc.RunInteractive()
	return err
}

type invalidUsageError struct {
	ctx     *cli.Context
	command string
}

func (e *invalidUsageError) Error() string {
	return fmt.Sprintf("invalid usage of command %s", e.command)
}

func fatal(err error) {
	var e *invalidUsageError
	if errors.As(err, &e) {
		_ = cli.ShowAppHelp(e.ctx)
	} else {
		_, _ = fmt.Fprintf(os.Stderr, "[dynfee] %v\n", err)
	}
	os.Exit(1)
}
