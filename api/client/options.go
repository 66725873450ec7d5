package client

import (
	"net/http"
	"time"
)

type ReqOption func(*http.Request)

func withAccept(mediaType string) ReqOption {
	return func(req *http.Request) {
		req.Header.Set("Accept", mediaType)
	}
}

func withContentType(mediaType string) ReqOption {
	return func(req *http.Request) {
		req.Header.Set("Content-Type", mediaType)
	}
}

// ClientOpt is a functional option for the Client type (http.Client wrapper)
type ClientOpt func(*Client)

// WithTimeout sets the .Timeout attribute of the wrapped http.Client.
// A zero timeout leaves requests unbounded.
func WithTimeout(timeout time.Duration) ClientOpt {
	return func(c *Client) {
		c.hc.Timeout = timeout
	}
}

// WithCustomTransport replaces the underlying http's transport with a custom one.
func WithCustomTransport(t http.RoundTripper) ClientOpt {
	return func(c *Client) {
		c.hc.Transport = t
	}
}

// WithAuthToken sets the token sent as `Authorization: Bearer <token>` on every request.
func WithAuthToken(token string) ClientOpt {
	return func(c *Client) {
		c.token = token
	}
}
