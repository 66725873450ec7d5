// Package manager connects the account workflows to the keymanager API configured on the command line.
package manager

import (
	"github.com/prysmaticlabs/keymanager-cli/cmd"
	"github.com/prysmaticlabs/keymanager-cli/cmd/keymanager/flags"
	"github.com/prysmaticlabs/keymanager-cli/validator/accounts"
	"github.com/urfave/cli/v2"
)

// NewAccountsCLIManager builds an accounts manager for the API set by --host, --auth and
// --timeout. The manager reports to the app's writer.
func NewAccountsCLIManager(cliCtx *cli.Context, opts ...accounts.Option) (*accounts.AccountsCLIManager, error) {
	cfg, err := flags.APIConfigFromContext(cliCtx)
	if err != nil {
		return nil, err
	}
	c, err := cfg.NewClient()
	if err != nil {
		return nil, err
	}
	opts = append([]accounts.Option{
		accounts.WithKeymanagerAPI(c),
		accounts.WithOutput(cliCtx.App.Writer),
		accounts.WithColor(!cliCtx.Bool(cmd.DisableColorFlag.Name)),
	}, opts...)
	return accounts.NewCLIManager(opts...)
}
