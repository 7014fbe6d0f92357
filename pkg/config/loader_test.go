package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/machakos/malaria/api/v1beta1/configs"
	"github.com/machakos/malaria/pkg/config"
	"github.com/machakos/malaria/pkg/extract"
	"github.com/machakos/malaria/pkg/symptom"
	"github.com/machakos/malaria/pkg/yaml"
)

const validConfig = `apiVersion: malaria.machakos.dev/v1beta1
kind: Configuration
keywords:
  fever: [homa]
  vomiting: [kutapika]
output:
  format: json
`

func createTempFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestNewLoaderFromFile(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		setupFile func(t *testing.T) string
		wantErr   bool
	}{
		"valid file": {
			setupFile: func(t *testing.T) string {
				t.Helper()

				return createTempFile(t, validConfig)
			},
		},
		"non-existent file": {
			setupFile: func(t *testing.T) string {
				t.Helper()

				return filepath.Join(t.TempDir(), "missing.yaml")
			},
			wantErr: true,
		},
		"directory instead of file": {
			setupFile: func(t *testing.T) string {
				t.Helper()

				return t.TempDir()
			},
			wantErr: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := config.NewLoaderFromFile(tc.setupFile(t), configs.New, configs.DefaultValidator())
			if tc.wantErr {
				require.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, got)
		})
	}
}

func TestLoader(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input       string
		wantErrPath string
		wantFormat  string
		wantErr     bool
	}{
		"valid": {
			input:      validConfig,
			wantFormat: "json",
		},
		"defaults": {
			input:      "apiVersion: malaria.machakos.dev/v1beta1\nkind: Configuration\n",
			wantFormat: "text",
		},
		"unknown symptom": {
			input:       "apiVersion: malaria.machakos.dev/v1beta1\nkind: Configuration\nkeywords:\n  sneezing: [achoo]\n",
			wantErr:     true,
			wantErrPath: "$.keywords",
		},
		"wrong api version": {
			input:       "apiVersion: v2\nkind: Configuration\n",
			wantErr:     true,
			wantErrPath: "$.apiVersion",
		},
		"malformed yaml": {
			input:   "apiVersion: [\n",
			wantErr: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			loader := config.NewLoaderFromBytes([]byte(tc.input), configs.New, configs.DefaultValidator())

			err := loader.Validate()
			if tc.wantErr {
				var yamlErr *yaml.Error
				require.ErrorAs(t, err, &yamlErr)
				assert.Equal(t, []byte(tc.input), yamlErr.Source)

				if tc.wantErrPath != "" {
					require.NotNil(t, yamlErr.Path)
					assert.Equal(t, tc.wantErrPath, yamlErr.Path.String())
				}

				return
			}

			require.NoError(t, err)

			cfg, err := loader.Load()
			require.NoError(t, err)
			assert.Equal(t, tc.wantFormat, cfg.Output.Format)
		})
	}
}

func TestLoader_WithValidator(t *testing.T) {
	t.Parallel()

	loader := config.NewLoaderFromBytes([]byte("kind: Anything\n"), configs.New, configs.DefaultValidator(),
		config.WithValidator(nil))

	require.NoError(t, loader.Validate())
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("file", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.Load(createTempFile(t, validConfig), true)
		require.NoError(t, err)
		assert.Equal(t, []string{"homa"}, cfg.Keywords["fever"])
		assert.Equal(t, ":8080", cfg.Server.Address)
	})

	t.Run("missing optional", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.Load(filepath.Join(t.TempDir(), "config.yaml"), false)
		require.NoError(t, err)
		assert.Equal(t, configs.New(), cfg)
	})

	t.Run("missing required", func(t *testing.T) {
		t.Parallel()

		_, err := config.Load(filepath.Join(t.TempDir(), "config.yaml"), true)
		require.ErrorContains(t, err, "read config")
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()

		_, err := config.Load(createTempFile(t, "apiVersion: v2\nkind: Configuration\n"), false)
		require.ErrorContains(t, err, "validate config")
	})
}

func TestDictionary(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(createTempFile(t, validConfig), true)
	require.NoError(t, err)

	dict, err := config.Dictionary(cfg)
	require.NoError(t, err)

	assert.Equal(t, append(extract.Default().Keywords(symptom.Fever), "homa"), dict.Keywords(symptom.Fever))

	det := extract.New(dict).Extract("Mtoto ana HOMA na kutapika")
	assert.Equal(t, []symptom.Symptom{symptom.Fever, symptom.Vomiting}, det.Symptoms.Present())
}
