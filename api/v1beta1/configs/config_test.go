package configs_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/machakos/malaria/api/v1beta1"
	"github.com/machakos/malaria/api/v1beta1/configs"
	"github.com/machakos/malaria/pkg/symptom"
	"github.com/machakos/malaria/pkg/yaml"
)

func TestNew(t *testing.T) {
	t.Parallel()

	cfg := configs.New()

	assert.Equal(t, v1beta1.APIVersion, cfg.GetAPIVersion())
	assert.Equal(t, configs.Kind, cfg.GetKind())
	assert.Empty(t, cfg.Keywords)
	assert.Equal(t, configs.FormatText, cfg.Output.Format)
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Empty(t, cfg.MCP.Address)
	require.NoError(t, cfg.Validate())
}

func TestConfig_EnsureDefaults(t *testing.T) {
	t.Parallel()

	cfg := &configs.Config{Output: &configs.OutputConfig{Format: configs.FormatJSON}}
	cfg.EnsureDefaults()

	assert.Equal(t, configs.FormatJSON, cfg.Output.Format)
	assert.NotNil(t, cfg.Keywords)
	assert.NotNil(t, cfg.Server)
	assert.NotNil(t, cfg.MCP)
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		cfg     *configs.Config
		wantErr string
	}{
		"valid keywords": {
			cfg: &configs.Config{Keywords: map[string][]string{"fever": {"homa"}}},
		},
		"unknown symptom": {
			cfg:     &configs.Config{Keywords: map[string][]string{"sneezing": {"achoo"}}},
			wantErr: `keywords: unknown symptom "sneezing"`,
		},
		"unknown format": {
			cfg:     &configs.Config{Output: &configs.OutputConfig{Format: "xml"}},
			wantErr: `output: unknown format "xml"`,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := tc.cfg.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)

				return
			}

			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestConfig_SymptomKeywords(t *testing.T) {
	t.Parallel()

	cfg := &configs.Config{Keywords: map[string][]string{"fever": {"homa"}}}
	got := cfg.SymptomKeywords()

	assert.Equal(t, map[symptom.Symptom][]string{symptom.Fever: {"homa"}}, got)

	got[symptom.Fever][0] = "changed"
	assert.Equal(t, "homa", cfg.Keywords["fever"][0])
}

func TestSchema(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		doc      string
		wantPath string
	}{
		"default file": {
			doc: string(configs.DefaultYAML()),
		},
		"extra keywords": {
			doc: "apiVersion: malaria.machakos.dev/v1beta1\nkind: Configuration\nkeywords:\n  fever: [homa]\n",
		},
		"unknown symptom key": {
			doc:      "apiVersion: malaria.machakos.dev/v1beta1\nkind: Configuration\nkeywords:\n  sneezing: [achoo]\n",
			wantPath: "$.keywords",
		},
		"empty phrase": {
			doc:      "apiVersion: malaria.machakos.dev/v1beta1\nkind: Configuration\nkeywords:\n  chills: [shaking, \"\"]\n",
			wantPath: "$.keywords.chills[1]",
		},
		"bad format": {
			doc:      "apiVersion: malaria.machakos.dev/v1beta1\nkind: Configuration\noutput:\n  format: xml\n",
			wantPath: "$.output.format",
		},
		"bad kind": {
			doc:      "apiVersion: malaria.machakos.dev/v1beta1\nkind: Policy\n",
			wantPath: "$.kind",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var data any
			require.NoError(t, yaml.NewDecoder(bytes.NewReader([]byte(tc.doc))).Decode(&data))

			err := configs.DefaultValidator().Validate(data)
			if tc.wantPath == "" {
				require.NoError(t, err)

				return
			}

			var yamlErr *yaml.Error
			require.ErrorAs(t, err, &yamlErr)
			assert.Equal(t, tc.wantPath, yamlErr.Path.String())
		})
	}
}

func TestConfig_MarshalYAML(t *testing.T) {
	t.Parallel()

	cfg := configs.New()
	cfg.Keywords["fever"] = []string{"homa"}

	b, err := cfg.MarshalYAML()
	require.NoError(t, err)

	out := string(b)
	assert.Contains(t, out, "apiVersion: malaria.machakos.dev/v1beta1\n")
	assert.Contains(t, out, "kind: Configuration\n")
	assert.Contains(t, out, "  fever:\n    - homa\n")
	assert.Contains(t, out, "format: text\n")
}

func TestWriteDefault(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "malaria", "config.yaml")
	require.NoError(t, configs.WriteDefault(path, false))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, configs.DefaultYAML(), got)
}

func TestGetPath(t *testing.T) { //nolint:paralleltest // Modifies environment.
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	assert.Equal(t, filepath.Join(dir, "malaria", "config.yaml"), configs.GetPath())
}
