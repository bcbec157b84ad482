package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/wannabe/internal/nav"
)

// EnvPrefix prefixes every environment override, e.g. WANNABE_STUDIO_UPLOAD_DELAY.
const EnvPrefix = "WANNABE"

// Config holds application configuration.
type Config struct {
	StartScreen string        `mapstructure:"start_screen"`
	Role        string        `mapstructure:"role"`
	Content     ContentConfig `mapstructure:"content"`
	Studio      StudioConfig  `mapstructure:"studio"`
	Journal     JournalConfig `mapstructure:"journal"`
	Log         LogConfig     `mapstructure:"log"`
}

// ContentConfig points at an alternative catalog file. Empty uses the
// built-in catalog.
type ContentConfig struct {
	Path string `mapstructure:"path"`
}

// StudioConfig tunes the Speakers Corner recorder.
type StudioConfig struct {
	UploadDelay time.Duration `mapstructure:"upload_delay"`
}

// JournalConfig holds activity journal settings.
type JournalConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Load reads configuration from defaults, an optional YAML file and the
// environment. path overrides the file location; otherwise WANNABE_CONFIG,
// then $XDG_CONFIG_HOME/wannabe/config.yaml are tried. A missing file is
// not an error.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("start_screen", nav.Onboarding.String())
	v.SetDefault("role", nav.Kid.String())
	v.SetDefault("content.path", "")
	v.SetDefault("studio.upload_delay", "1200ms")
	v.SetDefault("journal.enabled", true)
	v.SetDefault("journal.path", "")
	v.SetDefault("log.level", "")
	v.SetDefault("log.file", "")

	v.SetConfigType("yaml")
	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(configDir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values that the rest of the program parses.
func (c Config) Validate() error {
	if _, err := nav.ParseScreen(c.StartScreen); err != nil {
		return fmt.Errorf("start_screen: %w", err)
	}
	if c.StartScreen == nav.Lesson.String() {
		return fmt.Errorf("start_screen: %q needs a selected lesson", c.StartScreen)
	}
	if _, err := nav.ParseRole(c.Role); err != nil {
		return fmt.Errorf("role: %w", err)
	}
	if c.Log.Level != "" {
		if _, err := zapcore.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
			return fmt.Errorf("log.level: %w", err)
		}
	}
	if c.Studio.UploadDelay < 0 {
		return fmt.Errorf("studio.upload_delay must not be negative, got %s", c.Studio.UploadDelay)
	}
	return nil
}

// Screen returns the parsed start screen.
func (c Config) Screen() nav.Screen {
	s, _ := nav.ParseScreen(c.StartScreen)
	return s
}

// InitialRole returns the parsed role.
func (c Config) InitialRole() nav.Role {
	r, _ := nav.ParseRole(c.Role)
	return r
}

func configDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "wannabe")
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "wannabe")
}
