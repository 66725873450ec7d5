package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/keymanager-cli/runtime/version"
	"github.com/sirupsen/logrus"
)

var (
	json = jsoniter.ConfigCompatibleWithStandardLibrary
	log  = logrus.WithField("prefix", "client")
)

// Client is a wrapper object around the HTTP client.
type Client struct {
	hc      *http.Client
	baseURL *url.URL
	token   string
}

// NewClient constructs a new client with the provided options (ex WithTimeout).
// `host` is the base host + port used to construct request urls. This value can be
// a URL string, or NewClient will assume an http endpoint if just `host:port` is used.
func NewClient(host string, opts ...ClientOpt) (*Client, error) {
	u, err := urlForHost(host)
	if err != nil {
		return nil, err
	}
	c := &Client{
		hc:      &http.Client{},
		baseURL: u,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// Token returns the bearer token sent with every request.
func (c *Client) Token() string {
	return c.token
}

// BaseURL returns the base url of the client
func (c *Client) BaseURL() *url.URL {
	return c.baseURL
}

func urlForHost(h string) (*url.URL, error) {
	// try to parse as url (being permissive)
	u, err := url.Parse(h)
	if err == nil && u.Host != "" {
		return u, nil
	}
	// try to parse as host:port
	host, port, err := net.SplitHostPort(h)
	if err != nil {
		return nil, ErrMalformedHostname
	}
	return &url.URL{Host: net.JoinHostPort(host, port), Scheme: "http"}, nil
}

// urlFor appends path to the base url. Any path already present on the base url is kept,
// so a host of `https://example.com/validator` resolves `/eth/v1/keystores` beneath it.
func (c *Client) urlFor(path string) string {
	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + path
	u.RawPath = ""
	return u.String()
}

// Get issues a GET request for path and decodes the JSON response body into v.
func (c *Client) Get(ctx context.Context, path string, v interface{}, opts ...ReqOption) error {
	b, err := c.do(ctx, http.MethodGet, path, nil, append([]ReqOption{withAccept("application/json")}, opts...)...)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return errors.Wrapf(err, "could not decode response from %s", path)
	}
	return nil
}

// Post sends body to path and returns the undecoded response text.
func (c *Client) Post(ctx context.Context, path string, body []byte, opts ...ReqOption) (string, error) {
	opts = append([]ReqOption{withAccept("*/*"), withContentType("application/json")}, opts...)
	b, err := c.do(ctx, http.MethodPost, path, body, opts...)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, opts ...ReqOption) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.urlFor(path), reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	req.Header.Set("User-Agent", version.BuildData())
	for _, o := range opts {
		o(req)
	}
	log.WithFields(logrus.Fields{
		"method": method,
		"path":   path,
	}).Debug("Sending request to keymanager API")
	r, err := c.hc.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s failed", method, path)
	}
	defer closeBody(r.Body)
	if r.StatusCode < http.StatusOK || r.StatusCode >= http.StatusMultipleChoices {
		return nil, Non200Err(r)
	}
	b, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, errors.Wrap(err, "error reading http response body")
	}
	return b, nil
}

func closeBody(body io.Closer) {
	if err := body.Close(); err != nil {
		log.WithError(err).Error("could not close response body")
	}
}
