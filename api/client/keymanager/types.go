package keymanager

// Keystore describes one key entry reported by GET /eth/v1/keystores.
type Keystore struct {
	ValidatingPubkey string `json:"validating_pubkey"`
	DerivationPath   string `json:"derivation_path,omitempty"`
	Readonly         bool   `json:"readonly,omitempty"`
}

// ListKeystoresResponse is the body of GET /eth/v1/keystores.
type ListKeystoresResponse struct {
	Data []*Keystore `json:"data"`
}

// ImportKeystoresRequest is the body of POST /eth/v1/keystores. Keystores hold the
// verbatim keystore file text, one entry per password.
type ImportKeystoresRequest struct {
	Keystores          []string `json:"keystores"`
	Passwords          []string `json:"passwords"`
	SlashingProtection string   `json:"slashing_protection,omitempty"`
}

// FeeRecipient is the fee recipient configured for a single validator.
type FeeRecipient struct {
	Pubkey     string `json:"pubkey,omitempty"`
	EthAddress string `json:"ethaddress"`
}

// GetFeeRecipientByPubkeyResponse is the body of GET /eth/v1/validator/{pubkey}/feerecipient.
type GetFeeRecipientByPubkeyResponse struct {
	Data *FeeRecipient `json:"data"`
}

// SetFeeRecipientByPubkeyRequest is the body of POST /eth/v1/validator/{pubkey}/feerecipient.
type SetFeeRecipientByPubkeyRequest struct {
	EthAddress string `json:"ethaddress"`
}
