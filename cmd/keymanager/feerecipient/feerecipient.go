package feerecipient

import (
	"fmt"

	"github.com/prysmaticlabs/keymanager-cli/cmd/keymanager/flags"
	"github.com/prysmaticlabs/keymanager-cli/cmd/keymanager/manager"
	"github.com/prysmaticlabs/keymanager-cli/io/logs"
	"github.com/prysmaticlabs/keymanager-cli/validator/accounts"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"go.opencensus.io/trace"
)

var log = logrus.WithField("prefix", "feerecipient")

// Command synchronizes the fee recipients of a validator client with a JSON file.
var Command = &cli.Command{
	Name:      "set-fee-recipients",
	Category:  "fee recipients",
	Usage:     "Set fee recipients from a JSON file",
	ArgsUsage: "<file>",
	Description: `JSON file with fee recipients to update. Must be an array of objects that have keys
"validating_pubkey" and "ethaddress". Every validator in the file must be managed by the node,
otherwise no fee recipient is changed.`,
	Before: flags.ValidateAPIConfig,
	Action: setFeeRecipients,
}

func setFeeRecipients(cliCtx *cli.Context) error {
	ctx, span := trace.StartSpan(cliCtx.Context, "feerecipient.setFeeRecipients")
	defer span.End()
	if cliCtx.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one fee recipients file, got %d arguments", cliCtx.Args().Len())
	}
	path := cliCtx.Args().First()
	log.WithFields(logrus.Fields{
		"file": path,
		"host": logs.MaskCredentialsLogging(cliCtx.String(flags.HostFlag.Name)),
	}).Debug("Synchronizing fee recipients")

	acm, err := manager.NewAccountsCLIManager(cliCtx, accounts.WithFeeRecipientsFile(path))
	if err != nil {
		return err
	}
	return acm.SetFeeRecipients(ctx)
}
