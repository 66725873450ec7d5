package keymanager

import (
	"context"
	"fmt"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/keymanager-cli/api/client"
	"github.com/sirupsen/logrus"
	"go.opencensus.io/trace"
)

const (
	keystoresPath    = "/eth/v1/keystores"
	feeRecipientPath = "/eth/v1/validator/%s/feerecipient"
)

var (
	json = jsoniter.ConfigCompatibleWithStandardLibrary
	log  = logrus.WithField("prefix", "keymanager")
)

// Client provides a collection of helper methods for calling the validator keymanager API endpoints.
type Client struct {
	*client.Client
}

// NewClient returns a new Client that includes functions for the keymanager API. It wraps the
// client.Client type, see that method for the list of options.
func NewClient(host string, opts ...client.ClientOpt) (*Client, error) {
	c, err := client.NewClient(host, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{c}, nil
}

// ListKeystores lists the keystores managed by the validator client.
func (c *Client) ListKeystores(ctx context.Context) ([]*Keystore, error) {
	ctx, span := trace.StartSpan(ctx, "keymanager.ListKeystores")
	defer span.End()
	resp := &ListKeystoresResponse{}
	if err := c.Get(ctx, keystoresPath, resp); err != nil {
		return nil, errors.Wrap(err, "could not list keystores")
	}
	if resp.Data == nil {
		return nil, errors.New("list keystores response has no data")
	}
	return resp.Data, nil
}

// ImportKeystores submits keystores to the validator client. The response text is returned
// without being interpreted.
func (c *Client) ImportKeystores(ctx context.Context, req *ImportKeystoresRequest) (string, error) {
	ctx, span := trace.StartSpan(ctx, "keymanager.ImportKeystores")
	defer span.End()
	if len(req.Keystores) != len(req.Passwords) {
		return "", fmt.Errorf("got %d keystores but %d passwords", len(req.Keystores), len(req.Passwords))
	}
	b, err := json.Marshal(req)
	if err != nil {
		return "", errors.Wrap(err, "could not marshal import keystores request")
	}
	resp, err := c.Post(ctx, keystoresPath, b)
	if err != nil {
		return "", errors.Wrap(err, "could not import keystores")
	}
	log.WithField("response", resp).Debug("Import keystores response")
	return resp, nil
}

// GetFeeRecipient returns the fee recipient address the validator client uses for pubkey.
func (c *Client) GetFeeRecipient(ctx context.Context, pubkey string) (string, error) {
	ctx, span := trace.StartSpan(ctx, "keymanager.GetFeeRecipient")
	defer span.End()
	resp := &GetFeeRecipientByPubkeyResponse{}
	if err := c.Get(ctx, feeRecipientPathFor(pubkey), resp); err != nil {
		return "", errors.Wrapf(err, "could not get fee recipient of %s", pubkey)
	}
	if resp.Data == nil {
		return "", fmt.Errorf("fee recipient response for %s has no data", pubkey)
	}
	if resp.Data.EthAddress == "" {
		return "", fmt.Errorf("fee recipient response for %s has no ethaddress", pubkey)
	}
	return resp.Data.EthAddress, nil
}

// SetFeeRecipient sets the fee recipient address of pubkey.
func (c *Client) SetFeeRecipient(ctx context.Context, pubkey, ethAddress string) error {
	ctx, span := trace.StartSpan(ctx, "keymanager.SetFeeRecipient")
	defer span.End()
	b, err := json.Marshal(&SetFeeRecipientByPubkeyRequest{EthAddress: ethAddress})
	if err != nil {
		return errors.Wrap(err, "could not marshal set fee recipient request")
	}
	resp, err := c.Post(ctx, feeRecipientPathFor(pubkey), b)
	if err != nil {
		return errors.Wrapf(err, "could not set fee recipient of %s", pubkey)
	}
	log.WithField("response", resp).Debug("Set fee recipient response")
	return nil
}

func feeRecipientPathFor(pubkey string) string {
	return fmt.Sprintf(feeRecipientPath, url.PathEscape(pubkey))
}
