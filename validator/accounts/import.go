package accounts

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/keymanager-cli/api/client/keymanager"
	"github.com/prysmaticlabs/keymanager-cli/io/file"
	"github.com/sirupsen/logrus"
	"go.opencensus.io/trace"
)

// KeystoreFile is a keystore read from disk. Raw holds the file text exactly as read.
type KeystoreFile struct {
	Path   string
	Pubkey string
	Raw    string
}

// ReadKeystoreFile reads a keystore and extracts its pubkey, adding the 0x prefix
// keystores usually omit.
func ReadKeystoreFile(path string) (*KeystoreFile, error) {
	b, err := file.ReadFileAsBytes(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not read keystore file")
	}
	keystore := struct {
		Pubkey *string `json:"pubkey"`
	}{}
	if err := json.Unmarshal(b, &keystore); err != nil {
		return nil, errors.Wrapf(err, "%s is not a keystore JSON object", path)
	}
	if keystore.Pubkey == nil || *keystore.Pubkey == "" {
		return nil, fmt.Errorf("keystore %s has no pubkey", path)
	}
	pubkey, err := normalizePubkey(*keystore.Pubkey)
	if err != nil {
		return nil, errors.Wrapf(err, "keystore %s has an invalid pubkey", path)
	}
	return &KeystoreFile{
		Path:   path,
		Pubkey: pubkey,
		Raw:    string(b),
	}, nil
}

// ImportKeystores imports every keystore the connected node does not manage yet. Each
// keystore is decided on its own; already managed keystores are skipped.
func (acm *AccountsCLIManager) ImportKeystores(ctx context.Context) error {
	ctx, span := trace.StartSpan(ctx, "accounts.ImportKeystores")
	defer span.End()

	if len(acm.keystorePaths) == 0 {
		return errors.New("no keystore files provided")
	}
	var slashingProtection string
	if acm.slashingProtectionFile != "" {
		b, err := file.ReadFileAsBytes(acm.slashingProtectionFile)
		if err != nil {
			return errors.Wrap(err, "could not read slashing protection file")
		}
		slashingProtection = string(b)
	}

	managed, err := acm.managedKeystores(ctx)
	if err != nil {
		return err
	}

	imported := 0
	for _, p := range acm.keystorePaths {
		fmt.Fprintln(acm.out, thematicBreak)
		keystore, err := ReadKeystoreFile(p)
		if err != nil {
			return err
		}
		fmt.Fprintf(acm.out, "Importing %s...\n", acm.au.BrightGreen(keystore.Pubkey))
		if managed.Contains(keystore.Pubkey) {
			fmt.Fprintln(acm.out, "The node already manages this validating pubkey. Skipping this one.")
			continue
		}
		req := &keymanager.ImportKeystoresRequest{
			Keystores:          []string{keystore.Raw},
			Passwords:          []string{acm.keystorePassword},
			SlashingProtection: slashingProtection,
		}
		if _, err := acm.keymanagerAPI.ImportKeystores(ctx, req); err != nil {
			return errors.Wrapf(err, "could not import %s", keystore.Path)
		}
		imported++
		log.WithFields(logrus.Fields{
			"pubkey": keystore.Pubkey,
			"path":   keystore.Path,
		}).Debug("Imported keystore")
		fmt.Fprintln(acm.out, "Keystore imported")
	}

	fmt.Fprintln(acm.out, thematicBreak)
	fmt.Fprintln(acm.out, acm.au.Bold("Success. All keystores imported."))
	log.WithFields(logrus.Fields{
		"keystores": len(acm.keystorePaths),
		"imported":  imported,
	}).Info("Keystores imported")
	return nil
}
