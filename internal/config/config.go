package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	OpenAI struct {
		APIKey string `yaml:"apiKey"`
		Model  string `yaml:"model"`
	} `yaml:"openai"`

	SerpAPI struct {
		APIKey string `yaml:"apiKey"`
		Engine string `yaml:"engine"`
		Site   string `yaml:"site"`
	} `yaml:"serpapi"`

	GoogleMaps struct {
		APIKey string `yaml:"apiKey"`
	} `yaml:"googleMaps"`
}

// Load reads the yaml config file, applies environment overrides for
// secrets, and validates that every provider credential is present.
// A missing file is fine when the environment supplies everything.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// env-only deployment
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.OpenAI.APIKey = v
	}
	if v := os.Getenv("SERPAPI_KEY"); v != "" {
		c.SerpAPI.APIKey = v
	}
	if v := os.Getenv("GOOGLE_MAPS_API_KEY"); v != "" {
		c.GoogleMaps.APIKey = v
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 5000
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-4o"
	}
	if c.SerpAPI.Engine == "" {
		c.SerpAPI.Engine = "google"
	}
	if c.SerpAPI.Site == "" {
		c.SerpAPI.Site = "99acres.com"
	}
}

func (c *Config) validate() error {
	var missing []string
	if c.OpenAI.APIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	if c.SerpAPI.APIKey == "" {
		missing = append(missing, "SERPAPI_KEY")
	}
	if c.GoogleMaps.APIKey == "" {
		missing = append(missing, "GOOGLE_MAPS_API_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required API keys: %s", strings.Join(missing, ", "))
	}
	return nil
}
