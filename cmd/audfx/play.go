package main

import (
	"fmt"
	"time"

	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/dsp"
	"github.com/ik5/audfx/player"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newPlayCmd(a *app) *cobra.Command {
	var (
		transform string
		seek      float64
	)

	cmd := &cobra.Command{
		Use:   "play <input.wav>",
		Short: "Play a file, optionally through a transform",
		Long: `Play a WAV file on the default output device, printing the elapsed time
and progress until it ends or Ctrl-C stops it.

--transform applies a named transform first: denoise, compress (head
policy, --keep from config) or compress-edge (edge policy at 50%).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.store.Load(args[0]); err != nil {
				return err
			}

			current := a.store.Optional()
			if transform != "" {
				reg := dsp.NewDefaultRegistry(a.cfg.DSPParams())

				out, err := reg.Apply(transform, current)
				if err != nil {
					return fmt.Errorf("%w (available: %v)", err, reg.Names())
				}
				current = out
			}

			sig, err := current.Value()
			if err != nil {
				return err
			}

			return a.play(cmd, sig, seek)
		},
	}

	cmd.Flags().StringVar(&transform, "transform", "", "transform to apply before playing")
	cmd.Flags().Float64Var(&seek, "seek", 0, "start position as a fraction of the length [0, 1]")
	cmd.Flags().Duration("poll-interval", 100*time.Millisecond, "progress refresh interval")

	return cmd
}

// play streams sig to the output device and reports progress every poll
// interval until the signal ends or the command context is cancelled.
func (a *app) play(cmd *cobra.Command, sig audio.Signal, seek float64) error {
	dev, err := a.openDevice()
	if err != nil {
		return err
	}

	p := player.New(dev, player.WithLogger(a.log))
	defer func() {
		if err := p.Close(); err != nil {
			a.log.WithError(err).Warn("Failed to close audio device")
		}
	}()

	if err := p.Play(sig); err != nil {
		return err
	}
	if seek > 0 {
		p.Seek(seek)
	}

	w := cmd.OutOrStdout()
	report := func() {
		fmt.Fprintf(w, "\r%s / %s  %5.1f%%", clock(p.Position()), clock(p.Duration()), min(p.Progress(), 100))
	}

	ticker := time.NewTicker(a.cfg.Playback.PollInterval)
	defer ticker.Stop()

	done := p.Done()
	for {
		select {
		case <-cmd.Context().Done():
			p.Stop()
			fmt.Fprintln(w)
			a.log.WithFields(logrus.Fields{
				"position": p.Position(),
			}).Info("Playback interrupted")
			return nil
		case <-done:
			report()
			fmt.Fprintln(w)
			return nil
		case <-ticker.C:
			report()
		}
	}
}

// clock formats d as mm:ss for time labels.
func clock(d time.Duration) string {
	s := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}
