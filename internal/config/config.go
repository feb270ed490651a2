// Package config defines the runtime configuration of the calculators site and
// loads it from an optional YAML file, a .env file, and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for the calculators site.
type Configuration struct {
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Logging LoggingConfig `yaml:"logging,omitempty" mapstructure:"logging"`
	Ads     AdsConfig     `yaml:"ads" mapstructure:"-"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Address         string        `yaml:"address" mapstructure:"address"`
	ReadTimeout     time.Duration `yaml:"readTimeout" mapstructure:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout" mapstructure:"writeTimeout"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout" mapstructure:"shutdownTimeout"`
	MaxFormSize     string        `yaml:"maxFormSize" mapstructure:"maxFormSize"`
}

// MaxFormSizeBytes returns the form body limit in bytes, or the default when
// the configured size does not parse.
func (s ServerConfig) MaxFormSizeBytes() int64 {
	size, err := ParseSize(s.MaxFormSize)
	if err != nil {
		return constants.DefaultMaxFormSizeBytes
	}
	return size
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" mapstructure:"level"`           // debug, info, warn, error
	Format     string `yaml:"format,omitempty" mapstructure:"format"`         // json, console
	OutputFile string `yaml:"outputFile,omitempty" mapstructure:"outputFile"` // optional file output
}

// AdsConfig describes the affiliate ad widget. The widget is only rendered
// when a partner id is configured.
type AdsConfig struct {
	PartnerID    int    `yaml:"partnerId,omitempty"`
	TrackingCode string `yaml:"trackingCode,omitempty"`
	Template     string `yaml:"template"`
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
}

// Enabled reports whether the ad widget should be rendered.
func (a AdsConfig) Enabled() bool {
	return a.PartnerID != 0
}

// Environment variables read for the ad widget.
const (
	EnvAdPartnerID    = "COUPANG_PARTNERS_ID"
	EnvAdTrackingCode = "COUPANG_TRACKING_CODE"
	EnvAdTemplate     = "COUPANG_TEMPLATE"
	EnvAdWidth        = "COUPANG_WIDTH"
	EnvAdHeight       = "COUPANG_HEIGHT"
)

// LoadConfiguration reads configPath when it exists, then applies CALC_*
// environment overrides. A missing file is not an error; every key has a
// default. Values from a .env file in the working directory are loaded into
// the environment first without replacing variables that are already set.
func LoadConfiguration(configPath string) (*Configuration, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file %s: %w", configPath, err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file %s: %w", configPath, err)
		}
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	configuration.Ads = LoadAds(os.Getenv)

	if err := configuration.Validate(); err != nil {
		return nil, err
	}
	return &configuration, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", constants.DefaultServerAddress)
	v.SetDefault("server.readTimeout", constants.DefaultReadTimeoutSeconds*time.Second)
	v.SetDefault("server.writeTimeout", constants.DefaultWriteTimeoutSeconds*time.Second)
	v.SetDefault("server.shutdownTimeout", constants.DefaultShutdownTimeoutSeconds*time.Second)
	v.SetDefault("server.maxFormSize", "64K")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.outputFile", "")
}

// Validate rejects settings the server cannot start with.
func (c *Configuration) Validate() error {
	if strings.TrimSpace(c.Server.Address) == "" {
		return errors.New("server.address must not be empty")
	}
	timeouts := map[string]time.Duration{
		"server.readTimeout":     c.Server.ReadTimeout,
		"server.writeTimeout":    c.Server.WriteTimeout,
		"server.shutdownTimeout": c.Server.ShutdownTimeout,
	}
	for key, d := range timeouts {
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %s", key, d)
		}
	}
	if _, err := ParseSize(c.Server.MaxFormSize); err != nil {
		return fmt.Errorf("server.maxFormSize: %w", err)
	}
	return nil
}

// LoadAds resolves the ad widget settings through getenv. An unparsable
// partner id leaves the widget disabled; invalid or non-positive sizes fall
// back to the defaults.
func LoadAds(getenv func(string) string) AdsConfig {
	ads := AdsConfig{
		TrackingCode: strings.TrimSpace(getenv(EnvAdTrackingCode)),
		Template:     strings.TrimSpace(getenv(EnvAdTemplate)),
		Width:        positiveIntOr(getenv(EnvAdWidth), constants.DefaultAdWidth),
		Height:       positiveIntOr(getenv(EnvAdHeight), constants.DefaultAdHeight),
	}
	if id, err := strconv.Atoi(strings.TrimSpace(getenv(EnvAdPartnerID))); err == nil {
		ads.PartnerID = id
	}
	if ads.Template == "" {
		ads.Template = constants.DefaultAdTemplate
	}
	return ads
}

func positiveIntOr(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
