// Package config loads leaflet settings from defaults, an optional YAML file,
// LEAFLET_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/iw2rmb/leaflet/history"
	"github.com/iw2rmb/leaflet/pages"
)

const (
	EnvPrefix = "LEAFLET"
	FileName  = "leaflet"
)

type Config struct {
	Editor EditorConfig `mapstructure:"editor"`
	Log    LogConfig    `mapstructure:"log"`
	Pages  []pages.Page `mapstructure:"pages"`

	// Set by --version; not read from files or the environment.
	ShowVersion bool `mapstructure:"-"`
	// The file settings were read from, if any.
	File string `mapstructure:"-"`
}

type EditorConfig struct {
	HistoryLimit int           `mapstructure:"history_limit"`
	MergeWindow  time.Duration `mapstructure:"merge_window"`
	Placeholder  string        `mapstructure:"placeholder"`
	ReadOnly     bool          `mapstructure:"read_only"`
	HideToolbar  bool          `mapstructure:"hide_toolbar"`
}

// History maps the editor settings onto history options.
func (c EditorConfig) History() history.Options {
	return history.Options{Limit: c.HistoryLimit, MergeWindow: c.MergeWindow}
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	// File receives log output. Empty disables logging.
	File string `mapstructure:"file"`
}

func (c LogConfig) ZapLevel() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.Level)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("editor.history_limit", history.DefaultLimit)
	v.SetDefault("editor.merge_window", history.DefaultMergeWindow)
	v.SetDefault("editor.placeholder", "")
	v.SetDefault("editor.read_only", false)
	v.SetDefault("editor.hide_toolbar", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}

// flagKeys binds flag names to config keys.
var flagKeys = map[string]string{
	"history-limit": "editor.history_limit",
	"merge-window":  "editor.merge_window",
	"placeholder":   "editor.placeholder",
	"read-only":     "editor.read_only",
	"hide-toolbar":  "editor.hide_toolbar",
	"log-level":     "log.level",
	"log-file":      "log.file",
}

// NewFlagSet declares the command-line flags Load understands.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringP("config", "c", "", "path to a YAML config file")
	fs.Bool("version", false, "print the version and exit")
	fs.Int("history-limit", history.DefaultLimit, "maximum undo steps (negative disables history)")
	fs.Duration("merge-window", history.DefaultMergeWindow, "typing pause that starts a new undo step")
	fs.String("placeholder", "", `text shown in an empty page ("-" for none)`)
	fs.Bool("read-only", false, "open pages read-only")
	fs.Bool("hide-toolbar", false, "hide the formatting toolbar")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
	fs.String("log-file", "", "write logs to this file")
	return fs
}

// Load parses args with fs and merges every configuration source.
func Load(fs *pflag.FlagSet, args []string) (Config, error) {
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for name, k := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(k, f); err != nil {
			return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	file, _ := fs.GetString("config")
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/leaflet")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	cfg.ShowVersion, _ = fs.GetBool("version")
	if len(cfg.Pages) == 0 {
		cfg.Pages = pages.Seed()
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := c.Log.ZapLevel(); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if _, err := pages.NewList(c.Pages); err != nil {
		return fmt.Errorf("pages: %w", err)
	}
	return nil
}
