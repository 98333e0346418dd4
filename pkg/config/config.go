package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// StaticConfig represents the static configuration for the AKS MCP Server
type StaticConfig struct {
	// Server configuration
	Port       int    `mapstructure:"port" yaml:"port"`
	SSEBaseURL string `mapstructure:"sse_base_url" yaml:"sse_base_url"`

	// Logging configuration
	LogLevel int `mapstructure:"log_level" yaml:"log_level"`

	// External binary configuration
	AzPath     string `mapstructure:"az_path" yaml:"az_path"`
	K8sgptPath string `mapstructure:"k8sgpt_path" yaml:"k8sgpt_path"`

	// Security configuration
	ReadOnly           bool `mapstructure:"read_only" yaml:"read_only"`
	DisableDestructive bool `mapstructure:"disable_destructive" yaml:"disable_destructive"`

	// Toolset configuration
	Toolsets      []string `mapstructure:"toolsets" yaml:"toolsets"`
	EnabledTools  []string `mapstructure:"enabled_tools" yaml:"enabled_tools"`
	DisabledTools []string `mapstructure:"disabled_tools" yaml:"disabled_tools"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *StaticConfig {
	return &StaticConfig{
		Port:               0, // 0 means stdio mode
		LogLevel:           0,
		AzPath:             "az",
		K8sgptPath:         "k8sgpt",
		Toolsets:           []string{"aks", "k8sgpt", "weather", "config"},
		ReadOnly:           false,
		DisableDestructive: false,
	}
}

// Validate validates the configuration
func (c *StaticConfig) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 0 and 65535, got %d", c.Port)
	}

	if c.LogLevel < 0 || c.LogLevel > 9 {
		return fmt.Errorf("log_level must be between 0 and 9, got %d", c.LogLevel)
	}

	if c.SSEBaseURL != "" && !strings.HasPrefix(c.SSEBaseURL, "http://") && !strings.HasPrefix(c.SSEBaseURL, "https://") {
		return fmt.Errorf("sse_base_url must start with http:// or https://, got %s", c.SSEBaseURL)
	}

	if c.AzPath == "" {
		return fmt.Errorf("az_path must not be empty")
	}

	if c.K8sgptPath == "" {
		return fmt.Errorf("k8sgpt_path must not be empty")
	}

	validToolsets := map[string]bool{
		"aks":     true,
		"k8sgpt":  true,
		"weather": true,
		"config":  true,
	}
	for _, name := range c.Toolsets {
		if !validToolsets[strings.ToLower(name)] {
			return fmt.Errorf("unknown toolset %q (available: aks, k8sgpt, weather, config)", name)
		}
	}

	return nil
}

// GetPortString returns the listen address for HTTP mode, or an empty
// string in stdio mode.
func (c *StaticConfig) GetPortString() string {
	if c.Port == 0 {
		return ""
	}
	return fmt.Sprintf(":%d", c.Port)
}

// LoadConfig loads configuration from an optional YAML file and AKS_MCP_*
// environment variables, applying defaults for anything unset.
func LoadConfig(configPath string) (*StaticConfig, error) {
	defaults := DefaultConfig()

	v := viper.New()
	v.SetDefault("port", defaults.Port)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("az_path", defaults.AzPath)
	v.SetDefault("k8sgpt_path", defaults.K8sgptPath)
	v.SetDefault("read_only", defaults.ReadOnly)
	v.SetDefault("disable_destructive", defaults.DisableDestructive)
	v.SetDefault("toolsets", defaults.Toolsets)

	v.SetEnvPrefix("AKS_MCP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	config := &StaticConfig{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}
