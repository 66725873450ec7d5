package flags

import (
	"flag"
	"testing"
	"time"

	"github.com/prysmaticlabs/keymanager-cli/testing/assert"
	"github.com/prysmaticlabs/keymanager-cli/testing/require"
	"github.com/urfave/cli/v2"
)

func newContext(t *testing.T, host, auth string, timeout time.Duration) *cli.Context {
	set := flag.NewFlagSet("test", 0)
	set.String(HostFlag.Name, host, "")
	set.String(AuthFlag.Name, auth, "")
	set.Duration(TimeoutFlag.Name, timeout, "")
	return cli.NewContext(&cli.App{}, set, nil)
}

func TestAPIConfigFromContext(t *testing.T) {
	tests := []struct {
		name    string
		host    string
		auth    string
		timeout time.Duration
		wantErr string
	}{
		{name: "complete", host: "http://127.0.0.1:5052", auth: "token", timeout: 10 * time.Second},
		{name: "no timeout", host: "http://127.0.0.1:5052", auth: "token"},
		{name: "missing host", auth: "token", wantErr: "must provide keymanager API host and auth"},
		{name: "missing auth", host: "http://127.0.0.1:5052", wantErr: HostEnvVar},
		{name: "negative timeout", host: "http://127.0.0.1:5052", auth: "token", timeout: -time.Second, wantErr: "--timeout must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := APIConfigFromContext(newContext(t, tt.host, tt.auth, tt.timeout))
			if tt.wantErr != "" {
				require.ErrorContains(t, tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.host, cfg.Host)
			assert.Equal(t, tt.auth, cfg.AuthToken)
			assert.Equal(t, tt.timeout, cfg.Timeout)
		})
	}
}

func TestAPIConfig_NewClient(t *testing.T) {
	cfg := &APIConfig{Host: "http://127.0.0.1:5052/prefix", AuthToken: "token"}
	c, err := cfg.NewClient()
	require.NoError(t, err)
	assert.Equal(t, "token", c.Token())
	assert.Equal(t, "http://127.0.0.1:5052/prefix", c.BaseURL().String())

	cfg.Host = "localhost"
	_, err = cfg.NewClient()
	require.ErrorContains(t, "invalid --host", err)
}
