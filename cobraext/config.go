package cobraext

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MBEJunior/uniql"
)

// DefaultConfigFile is read when no --config path is given.
const DefaultConfigFile = ".uniql.yaml"

// Config holds CLI settings read from a YAML file.
type Config struct {
	// MaxDepth limits selection nesting. Zero uses uniql.DefaultMaxDepth.
	MaxDepth int `yaml:"max_depth"`
	// StrictPage rejects page numbers or sizes below 1.
	StrictPage bool `yaml:"strict_page"`
	// Format is the default output format of the parse command.
	Format string `yaml:"format"`
}

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() *Config {
	return &Config{Format: "json"}
}

// LoadConfig reads the YAML configuration at path. An empty path reads
// DefaultConfigFile if it exists and otherwise returns DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	defer f.Close()

	cfg, err := decodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func decodeConfig(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if _, err := parseOutputMode(cfg.Format); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParserConfig converts the settings into a parser configuration.
func (c *Config) ParserConfig() *uniql.ParserConfig {
	if c == nil {
		return nil
	}
	return &uniql.ParserConfig{
		MaxDepth:   c.MaxDepth,
		StrictPage: c.StrictPage,
	}
}
