package client

import (
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

// ErrMalformedHostname is used to indicate if a host name's format is incorrect.
var ErrMalformedHostname = errors.New("hostname must include port, separated by one colon, like example.com:3500")

// ErrNotOK is used to indicate when an HTTP request to the API failed with any non-2xx response code.
var ErrNotOK = errors.New("did not receive 2xx response from API")

// ErrNotFound specifically means that a '404 - NOT FOUND' response was received from the API.
var ErrNotFound = errors.Wrap(ErrNotOK, "recv 404 NotFound response from API")

// ErrUnauthorized means the API rejected the bearer token with a 401 or 403.
var ErrUnauthorized = errors.Wrap(ErrNotOK, "recv 401/403 response from API, check the auth token")

// apiError is the error body defined by the keymanager API.
type apiError struct {
	Message string `json:"message"`
}

// Non200Err is a function that parses an HTTP response to handle responses that are not 2xx with a formatted error.
func Non200Err(response *http.Response) error {
	bodyBytes, err := io.ReadAll(response.Body)
	var body string
	if err != nil {
		body = "(Unable to read response body.)"
	} else {
		ae := &apiError{}
		if jsonErr := json.Unmarshal(bodyBytes, ae); jsonErr == nil && ae.Message != "" {
			body = ae.Message
		} else {
			body = "response body:\n" + string(bodyBytes)
		}
	}
	msg := fmt.Sprintf("code=%d, url=%s, body=%s", response.StatusCode, response.Request.URL, body)
	switch response.StatusCode {
	case http.StatusNotFound:
		return errors.Wrap(ErrNotFound, msg)
	case http.StatusUnauthorized, http.StatusForbidden:
		return errors.Wrap(ErrUnauthorized, msg)
	default:
		return errors.Wrap(ErrNotOK, msg)
	}
}
