// Package main is a command line client of the Ethereum validator keymanager API. It lists the
// validators a validator client manages, synchronizes their fee recipients and imports keystores.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	joonix "github.com/joonix/log"
	"github.com/prysmaticlabs/keymanager-cli/cmd"
	"github.com/prysmaticlabs/keymanager-cli/cmd/keymanager/feerecipient"
	"github.com/prysmaticlabs/keymanager-cli/cmd/keymanager/flags"
	"github.com/prysmaticlabs/keymanager-cli/cmd/keymanager/keystores"
	"github.com/prysmaticlabs/keymanager-cli/io/logs"
	"github.com/prysmaticlabs/keymanager-cli/monitoring/tracing"
	"github.com/prysmaticlabs/keymanager-cli/runtime/version"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

var log = logrus.WithField("prefix", "main")

var appFlags = []cli.Flag{
	flags.HostFlag,
	flags.AuthFlag,
	flags.TimeoutFlag,
	cmd.VerbosityFlag,
	cmd.LogFormat,
	cmd.LogFileName,
	cmd.ConfigFileFlag,
	cmd.DisableColorFlag,
	cmd.EnableTracingFlag,
	cmd.TracingProcessNameFlag,
	cmd.TracingEndpointFlag,
	cmd.TraceSampleFractionFlag,
}

func init() {
	appFlags = cmd.WrapFlags(appFlags)
}

func newApp() *cli.App {
	app := &cli.App{}
	app.Name = "keymanager"
	app.Usage = "A tool for interacting with the Ethereum keymanager API"
	app.Version = version.Version()
	app.Flags = appFlags
	app.Commands = append([]*cli.Command{feerecipient.Command}, keystores.Commands...)
	app.Before = before
	return app
}

func before(ctx *cli.Context) error {
	// Load any flags from file, if specified.
	if err := cmd.LoadFlagsFromConfig(ctx, appFlags); err != nil {
		return err
	}
	if err := configureLogging(ctx); err != nil {
		return err
	}
	return tracing.Setup(
		ctx.String(cmd.TracingProcessNameFlag.Name),
		ctx.String(cmd.TracingEndpointFlag.Name),
		ctx.Float64(cmd.TraceSampleFractionFlag.Name),
		ctx.Bool(cmd.EnableTracingFlag.Name),
	)
}

func configureLogging(ctx *cli.Context) error {
	level, err := logrus.ParseLevel(ctx.String(cmd.VerbosityFlag.Name))
	if err != nil {
		return err
	}
	logrus.SetLevel(level)

	format := ctx.String(cmd.LogFormat.Name)
	switch format {
	case "text":
		formatter := new(prefixed.TextFormatter)
		formatter.TimestampFormat = "2006-01-02 15:04:05"
		formatter.FullTimestamp = true
		// If persistent log files are written - we disable the log messages coloring because
		// the colors are ANSI codes and seen as Gibberish in the log files.
		formatter.DisableColors = ctx.String(cmd.LogFileName.Name) != "" || ctx.Bool(cmd.DisableColorFlag.Name)
		logrus.SetFormatter(formatter)
	case "fluentd":
		logrus.SetFormatter(joonix.NewFormatter())
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %s", format)
	}

	logFileName := ctx.String(cmd.LogFileName.Name)
	if logFileName != "" {
		if err := logs.ConfigurePersistentLogging(logFileName); err != nil {
			log.WithError(err).Error("Failed to configuring logging to disk.")
		}
	}
	return nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	app := newApp()
	err := app.RunContext(ctx, os.Args)
	cancel()
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
