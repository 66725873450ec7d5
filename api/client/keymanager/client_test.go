package keymanager

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prysmaticlabs/keymanager-cli/api/client"
	"github.com/prysmaticlabs/keymanager-cli/testing/assert"
	"github.com/prysmaticlabs/keymanager-cli/testing/require"
)

func TestClient_ListKeystores(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/eth/v1/keystores", r.URL.Path)
		require.Equal(t, http.MethodGet, r.Method)
		_, err := w.Write([]byte(`{"data":[{"validating_pubkey":"0xAA","derivation_path":"m/12381/3600/0/0/0","readonly":false},{"validating_pubkey":"0xbb","readonly":true}]}`))
		require.NoError(t, err)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, client.WithAuthToken("token"))
	require.NoError(t, err)
	keystores, err := c.ListKeystores(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, len(keystores))
	assert.Equal(t, "0xAA", keystores[0].ValidatingPubkey)
	assert.Equal(t, "m/12381/3600/0/0/0", keystores[0].DerivationPath)
	assert.Equal(t, true, keystores[1].Readonly)
}

func TestClient_ListKeystores_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, err := w.Write([]byte(`{"message":"Unauthorized"}`))
		require.NoError(t, err)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)
	_, err = c.ListKeystores(context.Background())
	require.ErrorIs(t, err, client.ErrUnauthorized)
	require.ErrorContains(t, "could not list keystores", err)
}

func TestClient_ListKeystores_NoData(t *testing.T) {
	for _, body := range []string{`{}`, `{"data":null}`, `{"unexpected":true}`} {
		t.Run(body, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, err := w.Write([]byte(body))
				require.NoError(t, err)
			}))
			defer srv.Close()

			c, err := NewClient(srv.URL)
			require.NoError(t, err)
			_, err = c.ListKeystores(context.Background())
			require.ErrorContains(t, "list keystores response has no data", err)
		})
	}
}

func TestClient_ListKeystores_EmptyData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(`{"data":[]}`))
		require.NoError(t, err)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)
	keystores, err := c.ListKeystores(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, len(keystores))
}

func TestClient_GetFeeRecipient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/eth/v1/validator/0xaa/feerecipient", r.URL.Path)
		_, err := w.Write([]byte(`{"data":{"pubkey":"0xaa","ethaddress":"0xCC"}}`))
		require.NoError(t, err)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)
	addr, err := c.GetFeeRecipient(context.Background(), "0xaa")
	require.NoError(t, err)
	assert.Equal(t, "0xCC", addr)
}

func TestClient_GetFeeRecipient_NoData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(`{}`))
		require.NoError(t, err)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)
	_, err = c.GetFeeRecipient(context.Background(), "0xaa")
	require.ErrorContains(t, "fee recipient response for 0xaa has no data", err)
}

func TestClient_GetFeeRecipient_NoEthAddress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(`{"data":{}}`))
		require.NoError(t, err)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)
	_, err = c.GetFeeRecipient(context.Background(), "0xaa")
	require.ErrorContains(t, "fee recipient response for 0xaa has no ethaddress", err)
}

func TestClient_SetFeeRecipient(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/eth/v1/validator/0xaa/feerecipient", r.URL.Path)
		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		body = string(b)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	require.NoError(t, err)
	require.NoError(t, c.SetFeeRecipient(context.Background(), "0xaa", "0xbb"))
	assert.Equal(t, `{"ethaddress":"0xbb"}`, body)
}

func TestClient_ImportKeystores(t *testing.T) {
	raw := "{\n  \"pubkey\": \"abc123\",\n  \"crypto\": {}\n}\n"
	tests := []struct {
		name string
		req  *ImportKeystoresRequest
		want string
	}{
		{
			name: "keystores and passwords only",
			req:  &ImportKeystoresRequest{Keystores: []string{raw}, Passwords: []string{"pw"}},
			want: `{"keystores":["{\n  \"pubkey\": \"abc123\",\n  \"crypto\": {}\n}\n"],"passwords":["pw"]}`,
		},
		{
			name: "with slashing protection",
			req:  &ImportKeystoresRequest{Keystores: []string{raw}, Passwords: []string{"pw"}, SlashingProtection: `{"data":[]}`},
			want: `{"keystores":["{\n  \"pubkey\": \"abc123\",\n  \"crypto\": {}\n}\n"],"passwords":["pw"],"slashing_protection":"{\"data\":[]}"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/eth/v1/keystores", r.URL.Path)
				b, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				body = string(b)
				_, err = w.Write([]byte(`{"data":[{"status":"imported","message":""}]}`))
				require.NoError(t, err)
			}))
			defer srv.Close()

			c, err := NewClient(srv.URL)
			require.NoError(t, err)
			resp, err := c.ImportKeystores(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, body)
			assert.Equal(t, `{"data":[{"status":"imported","message":""}]}`, resp)
		})
	}
}

func TestClient_ImportKeystores_MismatchedPasswords(t *testing.T) {
	c, err := NewClient("127.0.0.1:1")
	require.NoError(t, err)
	_, err = c.ImportKeystores(context.Background(), &ImportKeystoresRequest{Keystores: []string{"{}"}})
	require.ErrorContains(t, "got 1 keystores but 0 passwords", err)
}
