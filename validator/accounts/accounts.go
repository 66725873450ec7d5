package accounts

import (
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	// json decodes user input files. Keys must match exactly.
	json = jsoniter.Config{
		EscapeHTML:             true,
		SortMapKeys:            true,
		ValidateJsonRawMessage: true,
		CaseSensitive:          true,
	}.Froze()
	log = logrus.WithField("prefix", "accounts")
)

// thematicBreak separates the report of one entry from the next.
var thematicBreak = strings.Repeat("-", 70)

// ErrUnmanagedValidator is returned when an input file references a validator the
// connected node does not manage.
var ErrUnmanagedValidator = errors.New("validator is not managed by the connected node")

// canonicalHex returns the lower case, 0x prefixed form of a hex string.
func canonicalHex(s string) (string, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return "", err
	}
	return hexutil.Encode(b), nil
}

// normalizePubkey adds the 0x prefix keystore files commonly omit before
// canonicalizing the pubkey.
func normalizePubkey(pubkey string) (string, error) {
	if !strings.HasPrefix(pubkey, "0x") && !strings.HasPrefix(pubkey, "0X") {
		pubkey = "0x" + pubkey
	}
	return canonicalHex(pubkey)
}
