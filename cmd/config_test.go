package cmd

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prysmaticlabs/keymanager-cli/testing/assert"
	"github.com/prysmaticlabs/keymanager-cli/testing/require"
	"github.com/urfave/cli/v2"
)

func TestLoadFlagsFromConfig(t *testing.T) {
	app := cli.App{}
	set := flag.NewFlagSet("test", 0)
	context := cli.NewContext(&app, set, nil)

	require.NoError(t, os.WriteFile("flags_test.yaml", []byte("testflag: 100\ntestduration: 5s"), 0666))
	defer func() {
		require.NoError(t, os.Remove("flags_test.yaml"))
	}()

	require.NoError(t, set.Parse([]string{"test-command", "--" + ConfigFileFlag.Name, "flags_test.yaml"}))
	command := &cli.Command{
		Name: "test-command",
		Flags: WrapFlags([]cli.Flag{
			&cli.StringFlag{
				Name: ConfigFileFlag.Name,
			},
			&cli.IntFlag{
				Name:  "testflag",
				Value: 0,
			},
			&cli.DurationFlag{
				Name: "testduration",
			},
		}),
		Before: func(cliCtx *cli.Context) error {
			return LoadFlagsFromConfig(cliCtx, cliCtx.Command.Flags)
		},
		Action: func(cliCtx *cli.Context) error {
			assert.Equal(t, 100, cliCtx.Int("testflag"))
			assert.Equal(t, 5*time.Second, cliCtx.Duration("testduration"))
			return nil
		},
	}
	require.NoError(t, command.Run(context))
}

func TestLoadFlagsFromConfig_CommandLineWins(t *testing.T) {
	config := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(config, []byte("verbosity: debug\nlog-format: json\n"), 0600))

	var verbosity, format string
	app := &cli.App{
		Flags: WrapFlags([]cli.Flag{VerbosityFlag, LogFormat, ConfigFileFlag}),
		Before: func(cliCtx *cli.Context) error {
			return LoadFlagsFromConfig(cliCtx, cliCtx.App.Flags)
		},
		Action: func(cliCtx *cli.Context) error {
			verbosity = cliCtx.String(VerbosityFlag.Name)
			format = cliCtx.String(LogFormat.Name)
			return nil
		},
	}
	require.NoError(t, app.Run([]string{"test", "--config-file", config, "--verbosity", "warn"}))
	assert.Equal(t, "warn", verbosity)
	assert.Equal(t, "json", format)
}

func TestLoadFlagsFromConfig_MissingFile(t *testing.T) {
	app := &cli.App{
		Flags: WrapFlags([]cli.Flag{VerbosityFlag, ConfigFileFlag}),
		Before: func(cliCtx *cli.Context) error {
			return LoadFlagsFromConfig(cliCtx, cliCtx.App.Flags)
		},
		Action: func(*cli.Context) error { return nil },
	}
	err := app.Run([]string{"test", "--config-file", filepath.Join(t.TempDir(), "missing.yaml")})
	assert.NotNil(t, err)
}

func TestWrapFlags_UnknownTypePanics(t *testing.T) {
	defer func() {
		assert.NotNil(t, recover())
	}()
	WrapFlags([]cli.Flag{&cli.Int64SliceFlag{Name: "ints"}})
}
