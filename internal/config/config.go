// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Rules is the immutable rule set handed to the rule engine and security
// scanner at construction. Tests supply alternate rule sets directly instead
// of touching shared globals.
type Rules struct {
	// RequiredSections are the second-level heading titles that must appear
	// in the template (exact match after trimming).
	RequiredSections []string `json:"required_sections" yaml:"required_sections" validate:"min=1,dive,required"`

	// PlaceholderMarkers are case-insensitive substrings that exempt a
	// secret-shaped value from being flagged.
	PlaceholderMarkers []string `json:"placeholder_markers" yaml:"placeholder_markers" validate:"min=1,dive,required"`

	// RequiredCodeTags are fence tags that must each appear at least once.
	RequiredCodeTags []string `json:"required_code_tags" yaml:"required_code_tags" validate:"min=1,dive,required"`

	// ExampleCodeTags are the fence tags counted toward the code-example
	// completeness advisory.
	ExampleCodeTags []string `json:"example_code_tags" yaml:"example_code_tags"`

	// MinCodeExamples is the advisory threshold for total code examples.
	// Zero disables the advisory.
	MinCodeExamples int `json:"min_code_examples" yaml:"min_code_examples" validate:"gte=0"`

	// MinSectionWords is the advisory threshold below which a required
	// section body is reported as unusually short. Zero disables it.
	MinSectionWords int `json:"min_section_words" yaml:"min_section_words" validate:"gte=0"`

	// RequireTables enables the advisory for templates without any
	// markdown table rows.
	RequireTables bool `json:"require_tables" yaml:"require_tables"`
}

// Config represents the CLI configuration that can be loaded from a JSON or
// YAML file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	Template string `json:"template,omitempty" yaml:"template,omitempty"` // Path to the markdown template
	Output   string `json:"output,omitempty" yaml:"output,omitempty"`     // Path for the generated document
	Report   string `json:"report,omitempty" yaml:"report,omitempty"`     // Path for the validation report JSON
	Debug    bool   `json:"debug,omitempty" yaml:"debug,omitempty"`       // Print detailed finding information
	Rules    Rules  `json:"rules" yaml:"rules"`
}

// DefaultRules returns the built-in rule set for API documentation templates.
func DefaultRules() Rules {
	return Rules{
		RequiredSections: []string{
			"Overview",
			"Authentication",
			"Endpoints",
			"Request/Response Examples",
			"Error Codes",
		},
		PlaceholderMarkers: []string{"your_", "example", "placeholder", "xxx"},
		RequiredCodeTags:   []string{"http", "json"},
		ExampleCodeTags:    []string{"http", "json", "bash", "python"},
		MinCodeExamples:    5,
		MinSectionWords:    5,
		RequireTables:      true,
	}
}

// Load loads configuration from a JSON or YAML file, chosen by extension.
// Fields absent from the file keep their defaults, so a partial rules block
// does not wipe out the built-in rule set.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Config{Rules: DefaultRules()}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: this doesn't check for required paths since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c.Rules); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			return fmt.Errorf("config error: template file not found: %s", c.Template)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Report == "" {
		result.Report = defaults.Report
	}
	if len(result.Rules.RequiredSections) == 0 {
		result.Rules = defaults.Rules
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
