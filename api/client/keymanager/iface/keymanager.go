package iface

import (
	"context"

	"github.com/prysmaticlabs/keymanager-cli/api/client/keymanager"
)

// KeymanagerAPI is the subset of the keymanager API the account workflows depend on.
type KeymanagerAPI interface {
	ListKeystores(ctx context.Context) ([]*keymanager.Keystore, error)
	ImportKeystores(ctx context.Context, req *keymanager.ImportKeystoresRequest) (string, error)
	GetFeeRecipient(ctx context.Context, pubkey string) (string, error)
	SetFeeRecipient(ctx context.Context, pubkey, ethAddress string) error
}

var _ KeymanagerAPI = (*keymanager.Client)(nil)
