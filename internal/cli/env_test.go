package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/machakos/malaria/internal/cli"
)

func TestBindEnvVars(t *testing.T) {
	tcs := map[string]struct {
		envVars       map[string]string
		wantLogLevel  string
		wantLogFormat string
		wantConfig    string
		args          []string
	}{
		"environment variables are bound when no args provided": {
			envVars: map[string]string{
				"MALARIA_LOG_LEVEL":  "debug",
				"MALARIA_LOG_FORMAT": "json",
				"MALARIA_CONFIG":     "/etc/malaria.yaml",
			},
			args:          []string{},
			wantLogLevel:  "debug",
			wantLogFormat: "json",
			wantConfig:    "/etc/malaria.yaml",
		},
		"command line args take precedence over environment variables": {
			envVars: map[string]string{
				"MALARIA_LOG_LEVEL":  "debug",
				"MALARIA_LOG_FORMAT": "json",
			},
			args:          []string{"--log-level", "error", "--log-format", "text"},
			wantLogLevel:  "error",
			wantLogFormat: "text",
		},
		"partial environment variable override": {
			envVars: map[string]string{
				"MALARIA_LOG_LEVEL": "warn",
			},
			args:          []string{"--log-format", "json"},
			wantLogLevel:  "warn",
			wantLogFormat: "json",
		},
		"no environment variables uses defaults": {
			envVars:       map[string]string{},
			args:          []string{},
			wantLogLevel:  "info",
			wantLogFormat: "text",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			for key, val := range tc.envVars {
				t.Setenv(key, val)
			}

			cmd := cli.NewRootCmd()
			cmd.SetArgs(tc.args)

			err := cmd.ParseFlags(tc.args)
			require.NoError(t, err)

			logLevel, err := cmd.Flags().GetString("log-level")
			require.NoError(t, err)
			assert.Equal(t, tc.wantLogLevel, logLevel)

			logFormat, err := cmd.Flags().GetString("log-format")
			require.NoError(t, err)
			assert.Equal(t, tc.wantLogFormat, logFormat)

			configPath, err := cmd.Flags().GetString("config")
			require.NoError(t, err)
			assert.Equal(t, tc.wantConfig, configPath)
		})
	}
}

func TestSubcommandEnvVars(t *testing.T) {
	t.Setenv("MALARIA_OUTPUT", "json")

	cmd := cli.NewRootCmd()

	diagnose, _, err := cmd.Find([]string{"diagnose"})
	require.NoError(t, err)

	output, err := diagnose.Flags().GetString("output")
	require.NoError(t, err)
	assert.Equal(t, "json", output)
}

// Test that flag usage strings are updated to include environment variable names.
func TestEnvironmentVariableUsageUpdate(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCmd()

	logLevelFlag := cmd.PersistentFlags().Lookup("log-level")
	require.NotNil(t, logLevelFlag)
	assert.Contains(t, logLevelFlag.Usage, "$MALARIA_LOG_LEVEL")

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Contains(t, configFlag.Usage, "$MALARIA_CONFIG")

	serve, _, err := cmd.Find([]string{"serve"})
	require.NoError(t, err)

	addrFlag := serve.Flags().Lookup("addr")
	require.NotNil(t, addrFlag)
	assert.Contains(t, addrFlag.Usage, "$MALARIA_ADDR")
}
