// Package configs provides the Configuration kind read from the user's
// config file.
package configs

//go:generate go run ../../../internal/schemagen -o configs.v1beta1.json

import (
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/invopop/jsonschema"

	_ "embed"

	"github.com/machakos/malaria/api"
	"github.com/machakos/malaria/api/v1beta1"
	"github.com/machakos/malaria/pkg/symptom"
	"github.com/machakos/malaria/pkg/yaml"
)

const (
	Kind = "Configuration"

	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"

	DefaultServerAddress = ":8080"

	schemaURL = "/configs.v1beta1.json"
)

var (
	//go:embed config.yaml
	defaultConfigYAML []byte

	// ValidKinds contains the valid kind values for configurations.
	ValidKinds = []string{Kind}

	// OutputFormats lists the accepted output.format values.
	OutputFormats = []string{FormatText, FormatJSON, FormatYAML}

	// DefaultValidator validates configuration against [Schema].
	DefaultValidator = sync.OnceValue(func() *yaml.Validator {
		return yaml.MustNewValidator(schemaURL, Schema())
	})

	_ v1beta1.Object = (*Config)(nil)
)

// Config is the malaria configuration file.
//
//nolint:recvcheck // Must satisfy the jsonschema interface.
type Config struct {
	v1beta1.TypeMeta `json:",inline"`

	// Keywords adds trigger phrases per symptom identifier.
	Keywords map[string][]string `json:"keywords,omitempty" jsonschema:"title=Keywords"`
	Output   *OutputConfig       `json:"output,omitempty" jsonschema:"title=Output"`
	Server   *ServerConfig       `json:"server,omitempty" jsonschema:"title=Server"`
	MCP      *MCPConfig          `json:"mcp,omitempty" jsonschema:"title=MCP"`
}

type OutputConfig struct {
	Format string `json:"format,omitempty" jsonschema:"title=Format,enum=text,enum=json,enum=yaml"`
}

type ServerConfig struct {
	Address string `json:"address,omitempty" jsonschema:"title=Address"`
}

type MCPConfig struct {
	// Address is empty for stdio.
	Address string `json:"address,omitempty" jsonschema:"title=Address"`
}

// New creates a [Config] with default values.
func New() *Config {
	c := &Config{
		TypeMeta: v1beta1.TypeMeta{
			APIVersion: v1beta1.APIVersion,
			Kind:       Kind,
		},
	}
	c.EnsureDefaults()

	return c
}

// EnsureDefaults initializes nil fields to their default values.
func (c *Config) EnsureDefaults() {
	if c.Keywords == nil {
		c.Keywords = map[string][]string{}
	}

	if c.Output == nil {
		c.Output = &OutputConfig{}
	}

	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}

	if c.Server == nil {
		c.Server = &ServerConfig{}
	}

	if c.Server.Address == "" {
		c.Server.Address = DefaultServerAddress
	}

	if c.MCP == nil {
		c.MCP = &MCPConfig{}
	}
}

// Validate checks the values the schema cannot express for a [Config]
// built in code.
func (c *Config) Validate() error {
	for k := range c.Keywords {
		if !symptom.Symptom(k).Valid() {
			return fmt.Errorf("keywords: %w %q", symptom.ErrUnknownSymptom, k)
		}
	}

	if c.Output != nil && c.Output.Format != "" && !slices.Contains(OutputFormats, c.Output.Format) {
		return fmt.Errorf("output: unknown format %q", c.Output.Format)
	}

	return nil
}

// SymptomKeywords returns Keywords keyed by [symptom.Symptom].
func (c *Config) SymptomKeywords() map[symptom.Symptom][]string {
	out := make(map[symptom.Symptom][]string, len(c.Keywords))
	for k, v := range c.Keywords {
		out[symptom.Symptom(k)] = slices.Clone(v)
	}

	return out
}

func (c Config) JSONSchemaExtend(jss *jsonschema.Schema) {
	v1beta1.ExtendSchemaWithEnums(jss, v1beta1.ValidAPIVersions, ValidKinds)

	minLen := uint64(1)
	phrases := &jsonschema.Schema{
		Type:  "array",
		Items: &jsonschema.Schema{Type: "string", MinLength: &minLen},
	}

	props := jsonschema.NewProperties()
	for _, s := range symptom.All {
		props.Set(s.String(), phrases)
	}

	jss.Properties.Set("keywords", &jsonschema.Schema{
		Type:                 "object",
		Title:                "Keywords",
		Description:          "Extra trigger phrases per symptom identifier.",
		Properties:           props,
		AdditionalProperties: jsonschema.FalseSchema,
	})
}

// MarshalYAML serializes the config to YAML.
func (c Config) MarshalYAML() ([]byte, error) {
	type alias Config

	b, err := api.MarshalYAML(alias(c))
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}

	return b, nil
}

// Schema returns the JSON schema for [Config].
func Schema() []byte {
	r := &jsonschema.Reflector{
		Anonymous:      true,
		DoNotReference: true,
	}

	b, err := json.MarshalIndent(r.Reflect(&Config{}), "", "  ")
	if err != nil {
		panic(fmt.Errorf("marshal config schema: %w", err))
	}

	return b
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return slices.Clone(defaultConfigYAML)
}

// WriteDefault writes the embedded default config.yaml to path.
func WriteDefault(path string, force bool) error {
	err := api.WriteDefaultFile(path, defaultConfigYAML, force, "configuration")
	if err != nil {
		return fmt.Errorf("write default config: %w", err)
	}

	return nil
}

// GetPath returns the path to the user's configuration file.
func GetPath() string {
	return api.GetConfigPath("config.yaml")
}
