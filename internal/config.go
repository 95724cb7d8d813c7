package internal

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config represents the application configuration shared by both tools.
type Config struct {
	App    ApplicationConfig `yaml:"app"`
	Vision VisionConfig      `yaml:"vision"`
	Rename RenameConfig      `yaml:"rename"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Vision.Validate(); err != nil {
		return err
	}
	return c.Rename.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// VisionConfig holds the remote vision API configuration. The API key
// defaults to the ANTHROPIC_API_KEY environment variable.
type VisionConfig struct {
	APIKey    string `yaml:"api_key"`
	Model     string `yaml:"model"`
	MaxTokens int    `yaml:"max_tokens"`
	BaseURL   string `yaml:"base_url"`
}

// Validate validates the vision configuration.
func (c *VisionConfig) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("vision: api key is missing (set ANTHROPIC_API_KEY)")
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.Model, validation.Required),
		validation.Field(&c.MaxTokens, validation.Required, validation.Min(1)),
	)
}

// RenameConfig holds rename behavior configuration.
type RenameConfig struct {
	// Extensions lists supported image extensions, lowercase with dot.
	Extensions []string `yaml:"extensions"`
	// HistoryDir is the directory holding the per-tool audit logs.
	HistoryDir string `yaml:"history_dir"`
	// Days is the default batch-mode age window.
	Days int `yaml:"days"`
}

// Validate validates the rename configuration.
func (c *RenameConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Extensions, validation.Required),
		validation.Field(&c.HistoryDir, validation.Required),
		validation.Field(&c.Days, validation.Required, validation.Min(1)),
	)
}

// Supported reports whether ext (with leading dot, any case) is a
// supported image extension.
func (c *RenameConfig) Supported(ext string) bool {
	ext = strings.ToLower(ext)
	for _, e := range c.Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// HistoryPath returns the audit-log path for the named tool.
func (c *RenameConfig) HistoryPath(tool string) string {
	return filepath.Join(c.HistoryDir, tool+"-history.tsv")
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	historyDir := ".screenshot-renamer"
	if home, err := os.UserHomeDir(); err == nil {
		historyDir = filepath.Join(home, ".screenshot-renamer")
	}
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
		},
		Vision: VisionConfig{
			APIKey:    os.Getenv("ANTHROPIC_API_KEY"),
			Model:     "claude-sonnet-4-20250514",
			MaxTokens: 100,
		},
		Rename: RenameConfig{
			Extensions: []string{".jpg", ".jpeg", ".png", ".gif", ".webp"},
			HistoryDir: historyDir,
			Days:       7,
		},
	}
}
