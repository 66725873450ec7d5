package manager

import (
	"bytes"
	"context"
	"flag"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prysmaticlabs/keymanager-cli/cmd"
	"github.com/prysmaticlabs/keymanager-cli/cmd/keymanager/flags"
	"github.com/prysmaticlabs/keymanager-cli/testing/assert"
	"github.com/prysmaticlabs/keymanager-cli/testing/require"
	"github.com/urfave/cli/v2"
)

func TestNewAccountsCLIManager(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		_, err := w.Write([]byte(`{"data":[{"validating_pubkey":"0xAB"}]}`))
		require.NoError(t, err)
	}))
	defer srv.Close()

	out := &bytes.Buffer{}
	set := flag.NewFlagSet("test", 0)
	set.String(flags.HostFlag.Name, srv.URL, "")
	set.String(flags.AuthFlag.Name, "token", "")
	set.Bool(cmd.DisableColorFlag.Name, true, "")
	cliCtx := cli.NewContext(&cli.App{Writer: out}, set, nil)

	acm, err := NewAccountsCLIManager(cliCtx)
	require.NoError(t, err)
	require.NoError(t, acm.List(context.Background()))
	assert.Equal(t, "The node manages the following validators:\n0xab\n", out.String())
}

func TestNewAccountsCLIManager_MissingAuth(t *testing.T) {
	set := flag.NewFlagSet("test", 0)
	set.String(flags.HostFlag.Name, "http://127.0.0.1:5052", "")
	set.String(flags.AuthFlag.Name, "", "")
	cliCtx := cli.NewContext(&cli.App{}, set, nil)

	_, err := NewAccountsCLIManager(cliCtx)
	require.ErrorIs(t, err, flags.ErrMissingAPIConfig)
}
