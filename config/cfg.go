package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

type DoubleQuoteString string

// MarshalYAML implements the yaml.Marshaler interface.
func (s DoubleQuoteString) MarshalYAML() (any, error) {
	node := yaml.Node{
		Kind:  yaml.ScalarNode,
		Style: yaml.DoubleQuotedStyle,
		Value: string(s),
	}
	return &node, nil
}

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	// PageDefaultsConfig supplies the document.Page fields a caller's
	// descriptor leaves unset (spec.md §3.2): physical geometry, margins,
	// row budget, and the default border lattice endpoints.
	PageDefaultsConfig struct {
		Orientation string     `yaml:"orientation" validate:"oneof=portrait landscape"`
		WidthIn     float64    `yaml:"width_in" validate:"gte=0"`
		HeightIn    float64    `yaml:"height_in" validate:"gte=0"`
		Margin      [6]float64 `yaml:"margin"`
		NRow        int        `yaml:"nrow" validate:"min=1"`
		ColWidthIn  float64    `yaml:"col_width_in" validate:"gte=0"`
		BorderFirst string     `yaml:"border_first" validate:"oneof=empty single double thick dot dash dot-dash hairline"`
		BorderLast  string     `yaml:"border_last" validate:"oneof=empty single double thick dot dash dot-dash hairline"`
		UseColor    bool       `yaml:"use_color"`
	}

	// FontsConfig points the strwidth oracle (C9) at its font-metrics
	// catalog and names the default RTF font slot / size new descriptors
	// fall back to when table_attr leaves font/size unset.
	FontsConfig struct {
		CatalogPath   string  `yaml:"catalog_path,omitempty" sanitize:"assure_file_access"`
		Default       string  `yaml:"default" validate:"required"`
		DefaultSizePt float64 `yaml:"default_size_pt" validate:"gt=0"`
	}

	// ColorsConfig names the RTF color table entries available to
	// table_attr's color fields when use_color is enabled (spec.md §6.2).
	ColorsConfig struct {
		Names []string `yaml:"names" validate:"dive,required"`
	}

	// OutputConfig controls output file naming and the external DOCX
	// converter assemble.AssembleDocx shells out to (spec.md §6.5).
	OutputConfig struct {
		NameTemplate          string `yaml:"output_name_template"`
		FileNameTransliterate bool   `yaml:"file_name_transliterate"`
		DocxConverterPath     string `yaml:"docx_converter_path,omitempty" sanitize:"assure_file_access"`
	}

	DocumentConfig struct {
		Page   PageDefaultsConfig `yaml:"page"`
		Fonts  FontsConfig        `yaml:"fonts"`
		Colors ColorsConfig       `yaml:"colors"`
		Output OutputConfig       `yaml:"output"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Document  DocumentConfig `yaml:"document"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above, alternative is to use struct
	// field name and reflection which I want to avoid for now
	OutputNameTemplateFieldName TemplateFieldName = "output_name_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, fmt.Errorf("failed to sanitize configuration: %w", err)
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, fmt.Errorf("failed to validate configuration: %w", err)
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration tamplate to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
