package accounts

import (
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/keymanager-cli/api/client/keymanager/iface"
)

// NewCLIManager allows for managing validator accounts of a remote validator client via CLI commands.
func NewCLIManager(opts ...Option) (*AccountsCLIManager, error) {
	acc := &AccountsCLIManager{
		out: os.Stdout,
		au:  aurora.NewAurora(true),
	}
	for _, opt := range opts {
		if err := opt(acc); err != nil {
			return nil, err
		}
	}
	if acc.keymanagerAPI == nil {
		return nil, errors.New("no keymanager API client provided")
	}
	return acc, nil
}

// AccountsCLIManager defines a struct capable of performing various validator
// account operations against a keymanager API via the command line.
type AccountsCLIManager struct {
	keymanagerAPI          iface.KeymanagerAPI
	out                    io.Writer
	au                     aurora.Aurora
	feeRecipientsFile      string
	keystorePaths          []string
	keystorePassword       string
	slashingProtectionFile string
}
