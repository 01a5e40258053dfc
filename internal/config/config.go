package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingCredential is returned by Validate when a required credential is unset.
var ErrMissingCredential = errors.New("missing credential")

// Defaults for the analysis endpoint and messages.
const (
	DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-pro-latest:generateContent"
	DefaultPrompt   = "Analyze this image for signs of mental distress or unsafe conditions. Provide a detailed analysis and safety recommendations."
	DefaultMessage  = "Emergency support requested. Please check on the user."
	DefaultForumURL = "https://sjd.kerala.gov.in/scheme-info.php?scheme_id=IDky"
)

// AnalysisConfig configures the image-understanding endpoint.
type AnalysisConfig struct {
	Endpoint string        `mapstructure:"endpoint"`
	APIKey   string        `mapstructure:"api_key"`
	Prompt   string        `mapstructure:"prompt"`
	Timeout  time.Duration `mapstructure:"timeout"` // 0 = no timeout
}

// Validate checks that the analysis endpoint can be called.
func (c AnalysisConfig) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("%w: analysis.api_key (or SEFCTL_ANALYSIS_API_KEY)", ErrMissingCredential)
	}
	if strings.TrimSpace(c.Endpoint) == "" {
		return fmt.Errorf("%w: analysis.endpoint", ErrMissingCredential)
	}
	return nil
}

// SMSConfig holds the messaging provider credentials.
type SMSConfig struct {
	AccountSID string `mapstructure:"account_sid"`
	AuthToken  string `mapstructure:"auth_token"`
	From       string `mapstructure:"from"`
}

// Validate checks that SMS can be sent.
func (c SMSConfig) Validate() error {
	var missing []string
	if strings.TrimSpace(c.AccountSID) == "" {
		missing = append(missing, "sms.account_sid")
	}
	if strings.TrimSpace(c.AuthToken) == "" {
		missing = append(missing, "sms.auth_token")
	}
	// The original shipped "+" as its placeholder sender.
	if from := strings.TrimSpace(c.From); from == "" || from == "+" {
		missing = append(missing, "sms.from")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingCredential, strings.Join(missing, ", "))
	}
	return nil
}

// EmergencyConfig holds the seeded contacts and the alert message.
type EmergencyConfig struct {
	Contacts []string `mapstructure:"contacts"`
	Message  string   `mapstructure:"message"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	ChartRefresh time.Duration `mapstructure:"chart_refresh"`
	MaxWidth     int           `mapstructure:"max_width"`
	ForumURL     string        `mapstructure:"forum_url"`
}

// ThemeConfig holds theme preset and color overrides.
type ThemeConfig struct {
	Preset        string `mapstructure:"preset"`
	Primary       string `mapstructure:"primary"`
	Secondary     string `mapstructure:"secondary"`
	Accent        string `mapstructure:"accent"`
	Muted         string `mapstructure:"muted"`
	Danger        string `mapstructure:"danger"`
	Background    string `mapstructure:"background"`
	MarkdownStyle string `mapstructure:"markdown_style"`
}

// Config holds the application configuration.
type Config struct {
	Analysis  AnalysisConfig  `mapstructure:"analysis"`
	SMS       SMSConfig       `mapstructure:"sms"`
	Emergency EmergencyConfig `mapstructure:"emergency"`
	UI        UIConfig        `mapstructure:"ui"`
	Theme     ThemeConfig     `mapstructure:"theme"`
	ExportDir string          `mapstructure:"export_dir"`
	Editor    string          `mapstructure:"editor"`
}

// DefaultDataDir returns the default configuration directory (~/.sefctl/).
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".sefctl")
	}
	return filepath.Join(home, ".sefctl")
}

// Load reads configuration from a .env file, the config file, environment
// variables, and defaults.
func Load(configPath string) (*Config, error) {
	// .env is optional; variables already in the environment win.
	_ = godotenv.Load()

	v := viper.New()

	// Defaults
	v.SetDefault("analysis.endpoint", DefaultEndpoint)
	v.SetDefault("analysis.api_key", "")
	v.SetDefault("analysis.prompt", DefaultPrompt)
	v.SetDefault("analysis.timeout", "0s")
	v.SetDefault("sms.account_sid", "")
	v.SetDefault("sms.auth_token", "")
	v.SetDefault("sms.from", "")
	v.SetDefault("emergency.contacts", []string{})
	v.SetDefault("emergency.message", DefaultMessage)
	v.SetDefault("ui.chart_refresh", "60s")
	v.SetDefault("ui.max_width", 100)
	v.SetDefault("ui.forum_url", DefaultForumURL)
	v.SetDefault("theme.preset", "default-dark")
	v.SetDefault("export_dir", ".")
	v.SetDefault("editor", "")

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// XDG support
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "sefctl"))
		}
		v.AddConfigPath(DefaultDataDir())
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	// Environment variables: SEFCTL_ANALYSIS_API_KEY, SEFCTL_SMS_FROM, etc.
	v.SetEnvPrefix("SEFCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (ignore not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only return error if it's not a "file not found" error
			if configPath != "" {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if cfg.UI.ChartRefresh <= 0 {
		cfg.UI.ChartRefresh = time.Minute
	}

	return cfg, nil
}
