// Package config manages pitchsmoke settings: a yaml config file for
// the workflow agent and endpoints, environment overrides with the
// PITCHSMOKE_ prefix, and a small cache file holding the most recent
// execution handle.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvAPIKey names the environment variable holding the workflow API
// key. The key never goes into the config file.
const EnvAPIKey = "PROMPTLAYER_API_KEY"

// Defaults
const (
	DefaultAgent        = "Master_Agent_V1"
	DefaultBaseURL      = "https://api.promptlayer.com"
	DefaultLocalBase    = "http://localhost:3000"
	DefaultPollInterval = 5
	DefaultPollAttempts = 30
)

type Config struct {
	Agent               string `mapstructure:"agent" yaml:"agent,omitempty"`
	BaseURL             string `mapstructure:"base_url" yaml:"base_url,omitempty"`
	LocalBase           string `mapstructure:"local_base" yaml:"local_base,omitempty"`
	PollIntervalSeconds int    `mapstructure:"poll_interval_seconds" yaml:"poll_interval_seconds,omitempty"`
	PollAttempts        int    `mapstructure:"poll_attempts" yaml:"poll_attempts,omitempty"`
}

var (
	configFile = ".pitchsmoke.yaml"
	cacheFile  = ".pitchsmoke/cache.yaml"
	v          *viper.Viper
)

func init() {
	v = newViper()
}

func newViper() *viper.Viper {
	nv := viper.New()
	nv.SetConfigFile(configFile)

	nv.SetDefault("agent", DefaultAgent)
	nv.SetDefault("base_url", DefaultBaseURL)
	nv.SetDefault("local_base", DefaultLocalBase)
	nv.SetDefault("poll_interval_seconds", DefaultPollInterval)
	nv.SetDefault("poll_attempts", DefaultPollAttempts)

	nv.SetEnvPrefix("PITCHSMOKE")
	nv.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	nv.AutomaticEnv()

	// Config file is optional
	_ = nv.ReadInConfig()

	return nv
}

// APIKey returns the workflow API key from the environment.
func APIKey() string {
	return os.Getenv(EnvAPIKey)
}

func Path() string {
	return configFile
}

func Load() (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func Get(key string) (string, error) {
	switch key {
	case "agent", "base_url", "local_base", "poll_interval_seconds", "poll_attempts":
		return v.GetString(key), nil
	default:
		return "", fmt.Errorf("unknown config key: %s", key)
	}
}

func Set(key, value string) error {
	cfg, err := Load()
	if err != nil {
		cfg = &Config{}
	}

	switch key {
	case "agent":
		cfg.Agent = value
	case "base_url":
		cfg.BaseURL = value
	case "local_base":
		cfg.LocalBase = value
	case "poll_interval_seconds":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("poll_interval_seconds must be a positive integer, got %q", value)
		}
		cfg.PollIntervalSeconds = n
	case "poll_attempts":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("poll_attempts must be a positive integer, got %q", value)
		}
		cfg.PollAttempts = n
	default:
		return fmt.Errorf("unknown config key: %s (valid: agent, base_url, local_base, poll_interval_seconds, poll_attempts)", key)
	}

	v.Set(key, value) // keep viper in sync
	return writeConfig(cfg)
}

func writeConfig(cfg *Config) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return os.WriteFile(configFile, buf.Bytes(), 0644)
}

func All() (map[string]string, error) {
	return map[string]string{
		"agent":                 v.GetString("agent"),
		"base_url":              v.GetString("base_url"),
		"local_base":            v.GetString("local_base"),
		"poll_interval_seconds": v.GetString("poll_interval_seconds"),
		"poll_attempts":         v.GetString("poll_attempts"),
	}, nil
}

// ExecutionCache remembers the most recent workflow execution so a
// timed-out run can be re-polled without restarting it.
type ExecutionCache struct {
	ExecutionID string `yaml:"execution_id"`
	Agent       string `yaml:"agent"`
}

// SaveExecution records the execution handle in the cache file.
func SaveExecution(cache ExecutionCache) error {
	cacheDir := filepath.Dir(cacheFile)
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(map[string]ExecutionCache{"execution": cache}); err != nil {
		return err
	}
	return os.WriteFile(cacheFile, buf.Bytes(), 0644)
}

// LoadExecution returns the cached execution handle.
func LoadExecution() (*ExecutionCache, error) {
	data, err := os.ReadFile(cacheFile)
	if err != nil {
		return nil, err
	}
	var cache struct {
		Execution ExecutionCache `yaml:"execution"`
	}
	if err := yaml.Unmarshal(data, &cache); err != nil {
		return nil, err
	}
	if cache.Execution.ExecutionID == "" {
		return nil, fmt.Errorf("cache file %s has no execution ID", cacheFile)
	}
	return &cache.Execution, nil
}

// ResetForTest resets viper for testing (only use in tests)
func ResetForTest(testPath string) {
	configFile = filepath.Join(testPath, ".pitchsmoke.yaml")
	cacheFile = filepath.Join(testPath, ".pitchsmoke", "cache.yaml")
	v = newViper()
}
