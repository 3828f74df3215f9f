package main

import (
	"fmt"

	"github.com/ik5/audfx/internal/config"
	"github.com/ik5/audfx/player"
	"github.com/ik5/audfx/store"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// deps are the pieces tests replace.
type deps struct {
	openDevice func() (player.Device, error)
}

func defaultDeps() deps {
	return deps{
		openDevice: func() (player.Device, error) {
			return player.NewPortAudioDevice()
		},
	}
}

// app is the state shared by every subcommand of one invocation.
type app struct {
	deps

	v          *viper.Viper
	configFile string
	cfg        *config.Config
	log        *logrus.Logger
	store      *store.Store
}

// flagKeys maps command line flags to their configuration keys.
var flagKeys = map[string]string{
	"verbose":       "verbose",
	"log-level":     "log_level",
	"cutoff":        "denoise.cutoff_hz",
	"keep":          "compress.keep_percent",
	"policy":        "compress.policy",
	"freq":          "synth.frequency_hz",
	"duration":      "synth.duration",
	"rate":          "synth.sample_rate",
	"poll-interval": "playback.poll_interval",
}

func newRootCmd(d deps) *cobra.Command {
	a := &app{deps: d, v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "audfx",
		Short: "Spectral audio toolbox for mono PCM WAV files",
		Long: `audfx loads 16 or 32-bit PCM WAV files, applies FFT based transforms
and plays or saves the result.

Transforms:
- denoise: low-pass filter removing everything above a cutoff frequency
- compress: spectral truncation keeping a share of the coefficients
- synth: pure sine tone generator

Settings come from flags, AUDFX_* environment variables and audfx.yaml
($HOME/.config/audfx, /etc/audfx or ./configs).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initialize(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "",
		"config file (default is $HOME/.config/audfx/audfx.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false,
		"verbose output (debug logging)")
	rootCmd.PersistentFlags().String("log-level", "info",
		"log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newDenoiseCmd(a),
		newCompressCmd(a),
		newSynthCmd(a),
		newPlayCmd(a),
		newSpectrumCmd(a),
		newConfigCmd(a),
	)

	return rootCmd
}

// initialize loads configuration after flags are parsed and builds the logger.
func (a *app) initialize(cmd *cobra.Command) error {
	if err := config.Setup(a.v, a.configFile); err != nil {
		return err
	}

	if err := bindFlags(cmd, a.v); err != nil {
		return err
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, err := cfg.Logger()
	if err != nil {
		return err
	}
	log.SetOutput(cmd.ErrOrStderr())
	a.log = log

	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.WithField("file", used).Debug("Using config file")
	}

	a.store = store.New(store.WithLogger(a.log))

	return nil
}

// bindFlags binds each known cobra flag to its configuration key so a flag
// set on the command line overrides file and environment values.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var lastErr error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return
		}

		if err := v.BindPFlag(key, f); err != nil {
			lastErr = fmt.Errorf("binding --%s: %w", f.Name, err)
		}
	})

	return lastErr
}
