package keystores

import (
	"fmt"

	"github.com/prysmaticlabs/keymanager-cli/cmd"
	"github.com/prysmaticlabs/keymanager-cli/cmd/keymanager/flags"
	"github.com/prysmaticlabs/keymanager-cli/cmd/keymanager/manager"
	"github.com/prysmaticlabs/keymanager-cli/validator/accounts"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"go.opencensus.io/trace"
)

var log = logrus.WithField("prefix", "keystores")

// Commands for managing the keystores of a validator client through its keymanager API.
var Commands = []*cli.Command{
	{
		Name:      "import-keystores",
		Category:  "keystores",
		Usage:     "Import keystore files to the validator client",
		ArgsUsage: "<keystore_passwd> <keystores...>",
		Description: "Imports the given keystore-*.json files. The password is reused for all keystores. " +
			"Keystores of validators the node already manages are skipped.",
		Flags: cmd.WrapFlags([]cli.Flag{
			flags.SlashingProtectionFlag,
		}),
		Before: func(cliCtx *cli.Context) error {
			if err := cmd.LoadFlagsFromConfig(cliCtx, cliCtx.Command.Flags); err != nil {
				return err
			}
			return flags.ValidateAPIConfig(cliCtx)
		},
		Action: importKeystores,
	},
	{
		Name:     "list-keystores",
		Category: "keystores",
		Usage:    "List the validators managed by the validator client",
		Before:   flags.ValidateAPIConfig,
		Action:   listKeystores,
	},
}

func importKeystores(cliCtx *cli.Context) error {
	ctx, span := trace.StartSpan(cliCtx.Context, "keystores.importKeystores")
	defer span.End()
	if cliCtx.Args().Len() < 2 {
		return fmt.Errorf("expected a keystore password and at least one keystore file, got %d arguments", cliCtx.Args().Len())
	}
	password := cliCtx.Args().First()
	paths := cliCtx.Args().Tail()
	log.WithField("keystores", len(paths)).Debug("Importing keystores")

	acm, err := manager.NewAccountsCLIManager(cliCtx,
		accounts.WithKeystorePassword(password),
		accounts.WithKeystorePaths(paths),
		accounts.WithSlashingProtectionFile(cliCtx.String(flags.SlashingProtectionFlag.Name)),
	)
	if err != nil {
		return err
	}
	return acm.ImportKeystores(ctx)
}

func listKeystores(cliCtx *cli.Context) error {
	ctx, span := trace.StartSpan(cliCtx.Context, "keystores.listKeystores")
	defer span.End()
	if cliCtx.Args().Present() {
		return fmt.Errorf("unexpected arguments: %v", cliCtx.Args().Slice())
	}
	acm, err := manager.NewAccountsCLIManager(cliCtx)
	if err != nil {
		return err
	}
	return acm.List(ctx)
}
