package internal

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultAPIURL is used when no flag, env var, or config file sets one
const DefaultAPIURL = "http://localhost:8003"

// EnvAPIURL overrides the config file when set
const EnvAPIURL = "TICKETDESK_API_URL"

// Config holds the user's persistent settings from ~/.ticket-desk.yaml
type Config struct {
	APIURL              string  `yaml:"api_url,omitempty"`
	TopK                int     `yaml:"top_k,omitempty"`
	SimilarityThreshold float64 `yaml:"similarity_threshold,omitempty"`
}

// DefaultConfigPath returns the config file location in the user's home
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".ticket-desk.yaml"), nil
}

// LoadConfig reads the config file; a missing file yields a zero Config
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, &ConfigError{Path: path, Err: err}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	return &cfg, nil
}

// SaveConfig writes the config file
func SaveConfig(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return &ConfigError{Path: path, Err: err}
	}
	return os.WriteFile(path, data, 0644)
}

// ResolveAPIURL applies flag > env > config file > default precedence
func ResolveAPIURL(flagValue string, cfg *Config) string {
	if flagValue != "" {
		return strings.TrimRight(flagValue, "/")
	}
	if env := os.Getenv(EnvAPIURL); env != "" {
		return strings.TrimRight(env, "/")
	}
	if cfg != nil && cfg.APIURL != "" {
		return strings.TrimRight(cfg.APIURL, "/")
	}
	return DefaultAPIURL
}

// SearchTuning returns top_k and similarity threshold, falling back to defaults
func (c *Config) SearchTuning() (int, float64) {
	topK := c.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}
	threshold := c.SimilarityThreshold
	if threshold <= 0 {
		threshold = DefaultSimilarityThreshold
	}
	return topK, threshold
}
