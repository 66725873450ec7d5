package accounts

import (
	"context"
	"fmt"
	"strings"

	"go.opencensus.io/trace"
)

// ManagedKeystores is the set of validating pubkeys a validator client manages, in the
// order the keymanager API reported them. Pubkeys are stored lower case.
type ManagedKeystores struct {
	pubkeys []string
	set     map[string]struct{}
}

// NewManagedKeystores builds the set from the given pubkeys, dropping duplicates.
func NewManagedKeystores(pubkeys []string) *ManagedKeystores {
	m := &ManagedKeystores{
		pubkeys: make([]string, 0, len(pubkeys)),
		set:     make(map[string]struct{}, len(pubkeys)),
	}
	for _, p := range pubkeys {
		p = strings.ToLower(p)
		if _, ok := m.set[p]; ok {
			continue
		}
		m.set[p] = struct{}{}
		m.pubkeys = append(m.pubkeys, p)
	}
	return m
}

// Contains reports whether pubkey is managed. The comparison ignores case.
func (m *ManagedKeystores) Contains(pubkey string) bool {
	_, ok := m.set[strings.ToLower(pubkey)]
	return ok
}

// Pubkeys returns the managed pubkeys.
func (m *ManagedKeystores) Pubkeys() []string {
	return m.pubkeys
}

// Len is the number of managed pubkeys.
func (m *ManagedKeystores) Len() int {
	return len(m.pubkeys)
}

// List prints the validators the connected node manages.
func (acm *AccountsCLIManager) List(ctx context.Context) error {
	ctx, span := trace.StartSpan(ctx, "accounts.List")
	defer span.End()
	managed, err := acm.managedKeystores(ctx)
	if err != nil {
		return err
	}
	if managed.Len() == 0 {
		fmt.Fprintln(acm.out, "The node does not manage any validators")
	}
	return nil
}

// managedKeystores fetches the managed set and shows it to the user.
func (acm *AccountsCLIManager) managedKeystores(ctx context.Context) (*ManagedKeystores, error) {
	keystores, err := acm.keymanagerAPI.ListKeystores(ctx)
	if err != nil {
		return nil, err
	}
	pubkeys := make([]string, 0, len(keystores))
	for i, k := range keystores {
		if k == nil {
			return nil, fmt.Errorf("keystore %d of the list keystores response is null", i)
		}
		if k.ValidatingPubkey == "" {
			return nil, fmt.Errorf("keystore %d of the list keystores response has no validating_pubkey", i)
		}
		pubkeys = append(pubkeys, k.ValidatingPubkey)
	}
	managed := NewManagedKeystores(pubkeys)
	log.WithField("validators", managed.Len()).Debug("Fetched managed validators")

	fmt.Fprintln(acm.out, "The node manages the following validators:")
	for _, p := range managed.Pubkeys() {
		fmt.Fprintln(acm.out, acm.au.BrightGreen(p))
	}
	return managed, nil
}
