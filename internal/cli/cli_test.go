package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/machakos/malaria/internal/cli"
	"github.com/machakos/malaria/pkg/diagnosis"
	"github.com/machakos/malaria/pkg/extract"
	"github.com/machakos/malaria/pkg/report"
	"github.com/machakos/malaria/pkg/symptom"
)

const swahiliConfig = `apiVersion: malaria.machakos.dev/v1beta1
kind: Configuration
keywords:
  fever: [homa]
  chills: [baridi]
`

// Commands replace the default logger, so these tests run serially.

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	cmd := cli.NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.ExecuteContext(t.Context())

	return out.String(), err
}

func TestDiagnoseCmd(t *testing.T) {
	cfg := writeConfig(t, swahiliConfig)

	tcs := map[string]struct {
		args      []string
		stdin     string
		wantLabel string
		wantRule  string
		wantErr   error
	}{
		"severe": {
			args:      []string{"diagnose", "coma"},
			wantLabel: diagnosis.LabelSevere,
			wantRule:  diagnosis.RuleSevere,
		},
		"names are normalized": {
			args:      []string{"diagnose", "Fever", "joint pain", "loss-of-appetite"},
			wantLabel: diagnosis.LabelModerateToHigh,
			wantRule:  diagnosis.RuleFeverMultiple,
		},
		"nothing": {
			args:      []string{"diagnose"},
			wantLabel: diagnosis.LabelUnlikely,
			wantRule:  diagnosis.RuleUnlikely,
		},
		"unknown symptom": {
			args:    []string{"diagnose", "fever", "chils"},
			wantErr: symptom.ErrUnknownSymptom,
		},
		"unknown symptom lenient": {
			args:      []string{"diagnose", "fever", "chils", "--lenient"},
			wantLabel: diagnosis.LabelPossibleFever,
			wantRule:  diagnosis.RuleFeverOnly,
		},
		"text": {
			args:      []string{"diagnose", "--text", "high fever and chills, sweating, very tired"},
			wantLabel: diagnosis.LabelHigh,
			wantRule:  diagnosis.RuleClassicTriad,
		},
		"text from stdin": {
			args:      []string{"diagnose", "--text", "-"},
			stdin:     "My child has a fever and has been vomiting",
			wantLabel: diagnosis.LabelPossibleGI,
			wantRule:  diagnosis.RuleFeverGI,
		},
		"configured keywords": {
			args:      []string{"diagnose", "--text", "homa na baridi"},
			wantLabel: diagnosis.LabelModerate,
			wantRule:  diagnosis.RuleFeverChills,
		},
		"unknown format": {
			args:    []string{"diagnose", "fever", "-o", "xml"},
			wantErr: report.ErrUnknownFormat,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			args := append([]string{"--config", cfg}, tc.args...)
			if tc.wantErr == nil {
				args = append(args, "-o", "json")
			}

			out, err := execute(t, tc.stdin, args...)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				return
			}

			require.NoError(t, err)

			var got report.Diagnosis
			require.NoError(t, json.Unmarshal([]byte(out), &got))
			assert.Equal(t, tc.wantLabel, got.Label)
			assert.Equal(t, tc.wantRule, got.Rule)
			assert.Equal(t, diagnosis.TierFor(tc.wantLabel), got.Tier)
			assert.Equal(t, diagnosis.Disclaimer, got.Disclaimer)
		})
	}
}

func TestDiagnoseCmdSuggestion(t *testing.T) {
	cfg := writeConfig(t, swahiliConfig)

	_, err := execute(t, "", "--config", cfg, "diagnose", "chils")
	require.ErrorIs(t, err, symptom.ErrUnknownSymptom)
	assert.Contains(t, err.Error(), "chills")
}

func TestDiagnoseCmdText(t *testing.T) {
	cfg := writeConfig(t, swahiliConfig)

	out, err := execute(t, "", "--config", cfg, "diagnose", "fever", "chills", "-o", "text")
	require.NoError(t, err)

	assert.Contains(t, out, diagnosis.LabelModerate)
	assert.Contains(t, out, "Reasoning")
	assert.Contains(t, out, "Disclaimer:")
}

func TestDiagnoseCmdConfiguredFormat(t *testing.T) {
	cfg := writeConfig(t, swahiliConfig+"output:\n  format: yaml\n")

	out, err := execute(t, "", "--config", cfg, "diagnose", "coma")
	require.NoError(t, err)
	assert.Contains(t, out, "label: High Probability of Severe Malaria\n")
}

func TestExtractCmd(t *testing.T) {
	cfg := writeConfig(t, swahiliConfig)

	tcs := map[string]struct {
		args  []string
		stdin string
		want  []string
	}{
		"args": {
			args: []string{"extract", "I", "have", "a", "high", "fever"},
			want: []string{"Symptoms detected from your description:", `Fever ("fever")`},
		},
		"configured keyword": {
			args: []string{"extract", "nina homa"},
			want: []string{`Fever ("homa")`},
		},
		"stdin": {
			args:  []string{"extract", "-"},
			stdin: "throwing up all night",
			want:  []string{`Vomiting ("throwing up")`},
		},
		"nothing": {
			args: []string{"extract", "nothing here"},
			want: []string{extract.NoneDetected},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			out, err := execute(t, tc.stdin, append([]string{"--config", cfg}, tc.args...)...)
			require.NoError(t, err)

			for _, want := range tc.want {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestExtractCmdRequiresText(t *testing.T) {
	cfg := writeConfig(t, swahiliConfig)

	_, err := execute(t, "", "--config", cfg, "extract")
	require.Error(t, err)
}

func TestSymptomsCmd(t *testing.T) {
	cfg := writeConfig(t, swahiliConfig)

	out, err := execute(t, "", "--config", cfg, "symptoms", "-o", "json")
	require.NoError(t, err)

	var got []report.SymptomInfo
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, len(symptom.All))
	assert.Equal(t, "fever", got[0].ID)
	assert.Equal(t, "homa", got[0].Keywords[len(got[0].Keywords)-1])
}

func TestConfigCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "malaria", "config.yaml")

	_, err := execute(t, "", "--config", path, "config", "write")
	require.NoError(t, err)
	require.FileExists(t, path)

	out, err := execute(t, "", "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "kind: Configuration")
	assert.Contains(t, out, "format: text")

	// Without force an existing file is kept.
	require.NoError(t, os.WriteFile(path, []byte(swahiliConfig), 0o600))

	_, err = execute(t, "", "--config", path, "config", "write")
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, swahiliConfig, string(b))

	_, err = execute(t, "", "--config", path, "config", "write", "--force")
	require.NoError(t, err)

	matches, err := filepath.Glob(path + ".*.old")
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestConfigSchemaCmd(t *testing.T) {
	out, err := execute(t, "", "config", "schema")
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &schema))
	assert.Contains(t, schema, "properties")
}

func TestMissingConfig(t *testing.T) {
	_, err := execute(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "diagnose", "fever")
	require.Error(t, err)
}

func TestInvalidConfig(t *testing.T) {
	cfg := writeConfig(t, swahiliConfig+"  sneezing: [achoo]\n")

	_, err := execute(t, "", "--config", cfg, "diagnose", "fever")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sneezing")
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	out, err := execute(t, "", "diagnose", "fever", "-o", "json")
	require.NoError(t, err)

	var got report.Diagnosis
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, diagnosis.LabelPossibleFever, got.Label)
}
