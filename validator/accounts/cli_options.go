package accounts

import (
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/prysmaticlabs/keymanager-cli/api/client/keymanager/iface"
)

// Option type for configuring the accounts cli manager.
type Option func(acc *AccountsCLIManager) error

// WithKeymanagerAPI provides the client of the validator client's keymanager API.
func WithKeymanagerAPI(api iface.KeymanagerAPI) Option {
	return func(acc *AccountsCLIManager) error {
		acc.keymanagerAPI = api
		return nil
	}
}

// WithOutput sets where the report of an operation is written. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(acc *AccountsCLIManager) error {
		acc.out = w
		return nil
	}
}

// WithColor toggles terminal colors in the report.
func WithColor(enabled bool) Option {
	return func(acc *AccountsCLIManager) error {
		acc.au = aurora.NewAurora(enabled)
		return nil
	}
}

// WithFeeRecipientsFile provides the JSON file of desired fee recipients.
func WithFeeRecipientsFile(path string) Option {
	return func(acc *AccountsCLIManager) error {
		acc.feeRecipientsFile = path
		return nil
	}
}

// WithKeystorePaths provides the keystore files to import, in import order.
func WithKeystorePaths(paths []string) Option {
	return func(acc *AccountsCLIManager) error {
		acc.keystorePaths = paths
		return nil
	}
}

// WithKeystorePassword provides the password used for every imported keystore.
func WithKeystorePassword(password string) Option {
	return func(acc *AccountsCLIManager) error {
		acc.keystorePassword = password
		return nil
	}
}

// WithSlashingProtectionFile provides an EIP-3076 interchange file sent along with imports.
func WithSlashingProtectionFile(path string) Option {
	return func(acc *AccountsCLIManager) error {
		acc.slashingProtectionFile = path
		return nil
	}
}
