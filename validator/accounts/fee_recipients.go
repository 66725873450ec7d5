package accounts

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/keymanager-cli/io/file"
	"github.com/sirupsen/logrus"
	"go.opencensus.io/trace"
)

// FeeRecipientEntry is the desired fee recipient of one validator.
type FeeRecipientEntry struct {
	ValidatingPubkey string `json:"validating_pubkey"`
	EthAddress       string `json:"ethaddress"`
}

// LoadFeeRecipients reads a JSON array of fee recipient entries. Pubkeys and addresses are
// returned in lower case.
func LoadFeeRecipients(path string) ([]*FeeRecipientEntry, error) {
	b, err := file.ReadFileAsBytes(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not read fee recipients file")
	}
	var entries []*FeeRecipientEntry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, errors.Wrapf(err, "%s is not a JSON array of fee recipient entries", path)
	}
	if entries == nil {
		return nil, fmt.Errorf("%s is not a JSON array of fee recipient entries", path)
	}
	for i, e := range entries {
		if e == nil {
			return nil, fmt.Errorf("entry %d of %s is null", i, path)
		}
		if e.ValidatingPubkey == "" {
			return nil, fmt.Errorf("entry %d of %s has no validating_pubkey", i, path)
		}
		if e.EthAddress == "" {
			return nil, fmt.Errorf("entry %d of %s has no ethaddress", i, path)
		}
		if e.ValidatingPubkey, err = canonicalHex(e.ValidatingPubkey); err != nil {
			return nil, errors.Wrapf(err, "entry %d of %s has an invalid validating_pubkey", i, path)
		}
		if e.EthAddress, err = canonicalHex(e.EthAddress); err != nil {
			return nil, errors.Wrapf(err, "entry %d of %s has an invalid ethaddress", i, path)
		}
	}
	return entries, nil
}

// SetFeeRecipients makes the fee recipients of the connected node match the fee recipients file.
// Every entry must reference a managed validator, otherwise nothing is changed. Entries already
// in sync are left untouched.
func (acm *AccountsCLIManager) SetFeeRecipients(ctx context.Context) error {
	ctx, span := trace.StartSpan(ctx, "accounts.SetFeeRecipients")
	defer span.End()

	entries, err := LoadFeeRecipients(acm.feeRecipientsFile)
	if err != nil {
		return err
	}
	managed, err := acm.managedKeystores(ctx)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if !managed.Contains(e.ValidatingPubkey) {
			return errors.Wrapf(ErrUnmanagedValidator, "validator %s", e.ValidatingPubkey)
		}
	}

	updated := 0
	for _, e := range entries {
		fmt.Fprintln(acm.out, thematicBreak)
		current, err := acm.keymanagerAPI.GetFeeRecipient(ctx, e.ValidatingPubkey)
		if err != nil {
			return err
		}
		current = strings.ToLower(current)
		fmt.Fprintf(acm.out, "Configuring %s...\n", acm.au.BrightGreen(e.ValidatingPubkey))
		if current == e.EthAddress {
			fmt.Fprintln(acm.out, "Fee recipient already in sync")
			continue
		}
		if err := acm.keymanagerAPI.SetFeeRecipient(ctx, e.ValidatingPubkey, e.EthAddress); err != nil {
			return err
		}
		updated++
		log.WithFields(logrus.Fields{
			"pubkey":   e.ValidatingPubkey,
			"previous": current,
			"current":  e.EthAddress,
		}).Debug("Updated fee recipient")
		fmt.Fprintf(acm.out, "Fee recipient updated. Previously %s. Now %s\n", current, acm.au.Yellow(e.EthAddress))
	}

	fmt.Fprintln(acm.out, thematicBreak)
	fmt.Fprintln(acm.out, acm.au.Bold("Success. All fee recipients synchronized."))
	log.WithFields(logrus.Fields{
		"entries": len(entries),
		"updated": updated,
	}).Info("Fee recipients synchronized")
	return nil
}
