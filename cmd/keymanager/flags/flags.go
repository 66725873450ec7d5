// Package flags contains all configuration runtime flags for the keymanager API commands.
package flags

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/prysmaticlabs/keymanager-cli/api/client"
	"github.com/prysmaticlabs/keymanager-cli/api/client/keymanager"
	"github.com/urfave/cli/v2"
)

const (
	// HostEnvVar is read when --host is not given.
	HostEnvVar = "ETH_KEYMANAGER_API_HOST"
	// AuthEnvVar is read when --auth is not given.
	AuthEnvVar = "ETH_KEYMANAGER_API_AUTH"
)

var (
	// HostFlag is the base URL of the keymanager API.
	HostFlag = &cli.StringFlag{
		Name:    "host",
		Usage:   "hostname and port of keymanager API, e.g. http://127.0.0.1:5052",
		EnvVars: []string{HostEnvVar},
	}
	// AuthFlag is the bearer token of the keymanager API.
	AuthFlag = &cli.StringFlag{
		Name:    "auth",
		Usage:   "keymanager API auth key",
		EnvVars: []string{AuthEnvVar},
	}
	// TimeoutFlag bounds every request sent to the keymanager API.
	TimeoutFlag = &cli.DurationFlag{
		Name:  "timeout",
		Usage: "Timeout of a single keymanager API request, e.g. 30s. 0 waits indefinitely",
	}
	// SlashingProtectionFlag is an EIP-3076 slashing protection interchange file sent with imported keystores.
	SlashingProtectionFlag = &cli.StringFlag{
		Name:  "slashing-protection",
		Usage: "Path to an EIP-3076 slashing protection interchange JSON file to import along with the keystores",
	}
)

// ErrMissingAPIConfig is returned when the keymanager API host or auth token is not configured.
var ErrMissingAPIConfig = fmt.Errorf(
	"must provide keymanager API host and auth via command line options or environment variables (%s and %s)",
	HostEnvVar, AuthEnvVar,
)

// APIConfig holds the keymanager API connection settings of one invocation.
type APIConfig struct {
	Host      string
	AuthToken string
	Timeout   time.Duration
}

// APIConfigFromContext reads the keymanager API settings from the command line context.
func APIConfigFromContext(cliCtx *cli.Context) (*APIConfig, error) {
	cfg := &APIConfig{
		Host:      cliCtx.String(HostFlag.Name),
		AuthToken: cliCtx.String(AuthFlag.Name),
		Timeout:   cliCtx.Duration(TimeoutFlag.Name),
	}
	if cfg.Host == "" || cfg.AuthToken == "" {
		return nil, ErrMissingAPIConfig
	}
	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("--%s must not be negative", TimeoutFlag.Name)
	}
	return cfg, nil
}

// NewClient creates a keymanager API client from the configuration.
func (cfg *APIConfig) NewClient() (*keymanager.Client, error) {
	c, err := keymanager.NewClient(cfg.Host, client.WithAuthToken(cfg.AuthToken), client.WithTimeout(cfg.Timeout))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid --%s", HostFlag.Name)
	}
	return c, nil
}

// ValidateAPIConfig fails when the keymanager API settings are incomplete. It runs as a command's
// Before hook, so the command help is shown along with the error.
func ValidateAPIConfig(cliCtx *cli.Context) error {
	_, err := APIConfigFromContext(cliCtx)
	return err
}
