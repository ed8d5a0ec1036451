package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Window  WindowConfig
	Editor  EditorConfig
	Dialogs DialogsConfig
	Log     LogConfig
}

// WindowConfig holds the initial window geometry.
type WindowConfig struct {
	Width  float32
	Height float32
}

// EditorConfig holds text surface settings. Lines never wrap.
type EditorConfig struct {
	TextSize    float32 `mapstructure:"text_size"`
	DefaultName string  `mapstructure:"default_name"`
}

// DialogsConfig holds the extensions offered by open/save dialogs.
type DialogsConfig struct {
	Extensions []string
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string
	JSON  bool
	// FileStats records per-file access counts and I/O timings for the
	// shutdown summary.
	FileStats bool `mapstructure:"file_stats"`
}

const (
	MinWindowWidth  = 1013
	MinWindowHeight = 628
	MinTextSize     = 6
	DefaultTextSize = 14
)

// Load reads configuration from file and env. Env var overrides use prefix CNOTEPAD_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("CNOTEPAD_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "cnotepad"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CNOTEPAD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicit path that cannot be read is a real error; a missing default file is not.
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.normalize()
	return c, nil
}

// Default returns the built-in configuration without consulting file or env.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	c.normalize()
	return c
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 1013)
	v.SetDefault("window.height", 628)
	v.SetDefault("editor.text_size", DefaultTextSize)
	v.SetDefault("editor.default_name", "*new")
	v.SetDefault("dialogs.extensions", []string{".txt", ".py", ".pyw"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("log.file_stats", true)
}

func (c *Config) normalize() {
	c.Window.Width = max(c.Window.Width, MinWindowWidth)
	c.Window.Height = max(c.Window.Height, MinWindowHeight)
	if c.Editor.TextSize < MinTextSize {
		c.Editor.TextSize = DefaultTextSize
	}
	if strings.TrimSpace(c.Editor.DefaultName) == "" {
		c.Editor.DefaultName = "*new"
	}

	exts := c.Dialogs.Extensions[:0]
	for _, ext := range c.Dialogs.Extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, strings.ToLower(ext))
	}
	c.Dialogs.Extensions = exts
}
