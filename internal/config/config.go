// Package config loads audfx settings from defaults, an optional YAML file,
// AUDFX_* environment variables and command line flags, in increasing order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ik5/audfx/dsp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	EnvPrefix  = "AUDFX"
	ConfigName = "audfx"
)

// Config represents the application configuration
type Config struct {
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose"`
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`

	Denoise  DenoiseConfig  `mapstructure:"denoise" yaml:"denoise"`
	Compress CompressConfig `mapstructure:"compress" yaml:"compress"`
	Synth    SynthConfig    `mapstructure:"synth" yaml:"synth"`
	Playback PlaybackConfig `mapstructure:"playback" yaml:"playback"`
}

type DenoiseConfig struct {
	CutoffHz float64 `mapstructure:"cutoff_hz" yaml:"cutoff_hz"`
}

type CompressConfig struct {
	KeepPercent float64 `mapstructure:"keep_percent" yaml:"keep_percent"`
	Policy      string  `mapstructure:"policy" yaml:"policy"`
}

// SynthConfig holds tone generator settings. Duration is in seconds.
type SynthConfig struct {
	FrequencyHz float64 `mapstructure:"frequency_hz" yaml:"frequency_hz"`
	Duration    float64 `mapstructure:"duration" yaml:"duration"`
	SampleRate  int     `mapstructure:"sample_rate" yaml:"sample_rate"`
}

// PlaybackConfig controls how often the CLI refreshes the progress line.
type PlaybackConfig struct {
	PollInterval time.Duration `mapstructure:"poll_interval" yaml:"poll_interval"`
}

// SetDefaults sets default configuration values
func SetDefaults(v *viper.Viper) {
	v.SetDefault("verbose", false)
	v.SetDefault("log_level", "info")

	v.SetDefault("denoise.cutoff_hz", dsp.DefaultCutoffHz)

	v.SetDefault("compress.keep_percent", dsp.DefaultKeepPercent)
	v.SetDefault("compress.policy", dsp.HeadTruncate.String())

	v.SetDefault("synth.frequency_hz", 440.0)
	v.SetDefault("synth.duration", dsp.DefaultToneDuration)
	v.SetDefault("synth.sample_rate", dsp.DefaultToneRate)

	v.SetDefault("playback.poll_interval", "100ms")
}

// Setup wires search paths, environment variables and defaults into v and
// reads the config file. An explicit configFile must exist; otherwise a
// missing audfx.yaml is not an error.
func Setup(v *viper.Viper, configFile string) error {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", ConfigName))
		}
		v.AddConfigPath(filepath.Join("/etc", ConfigName))
		v.AddConfigPath("./configs")
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}

	return nil
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	if c.Denoise.CutoffHz < 0 {
		return fmt.Errorf("denoise cutoff must not be negative: %v", c.Denoise.CutoffHz)
	}

	if c.Compress.KeepPercent < 0 || c.Compress.KeepPercent > 100 {
		return fmt.Errorf("compress keep percent must be between 0 and 100: %v", c.Compress.KeepPercent)
	}

	if _, err := dsp.ParseTruncation(c.Compress.Policy); err != nil {
		return err
	}

	if c.Synth.SampleRate <= 0 {
		return fmt.Errorf("synth sample rate must be positive: %d", c.Synth.SampleRate)
	}

	if c.Synth.Duration < 0 {
		return fmt.Errorf("synth duration must not be negative: %v", c.Synth.Duration)
	}

	if c.Playback.PollInterval <= 0 {
		return fmt.Errorf("playback poll interval must be positive: %v", c.Playback.PollInterval)
	}

	return nil
}

// DSPParams returns the transform parameters for dsp.NewDefaultRegistry.
func (c *Config) DSPParams() dsp.Params {
	return dsp.Params{
		CutoffHz:    c.Denoise.CutoffHz,
		KeepPercent: c.Compress.KeepPercent,
	}
}

// Logger builds a logrus logger at the configured level. Verbose forces debug.
func (c *Config) Logger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	if c.Verbose {
		level = logrus.DebugLevel
	}

	l := logrus.New()
	l.SetLevel(level)
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	return l, nil
}
