package main

import (
	"fmt"
	"io"

	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/dsp"
	"github.com/spf13/cobra"
)

func newDenoiseCmd(a *app) *cobra.Command {
	var play bool

	cmd := &cobra.Command{
		Use:   "denoise <input.wav> <output.wav>",
		Short: "Remove every frequency above a cutoff",
		Long: `Low-pass filter the whole file in the frequency domain: every bin whose
absolute frequency exceeds the cutoff is zeroed. The result is written as
mono 16-bit PCM at the input sample rate.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sig, err := a.store.Load(args[0])
			if err != nil {
				return err
			}

			cutoff := a.cfg.Denoise.CutoffHz
			out := dsp.Denoise(sig, cutoff)

			return a.finish(cmd, "denoise", sig, out, args[1], play,
				fmt.Sprintf("cutoff %.0f Hz", cutoff))
		},
	}

	cmd.Flags().Float64("cutoff", dsp.DefaultCutoffHz, "cutoff frequency in Hz")
	cmd.Flags().BoolVar(&play, "play", false, "play the result after saving")

	return cmd
}

func newCompressCmd(a *app) *cobra.Command {
	var play bool

	cmd := &cobra.Command{
		Use:   "compress <input.wav> <output.wav>",
		Short: "Keep only a share of the spectral coefficients",
		Long: `Spectral truncation with k = floor(n * keep / 100).

Policies:
- head: keep coefficients [0, k), zero the rest
- edge: zero the middle band [k, n-k), keeping both ends of the spectrum`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, err := dsp.ParseTruncation(a.cfg.Compress.Policy)
			if err != nil {
				return err
			}

			sig, err := a.store.Load(args[0])
			if err != nil {
				return err
			}

			keep := a.cfg.Compress.KeepPercent
			out := dsp.CompressWith(sig, keep, policy)

			return a.finish(cmd, "compress", sig, out, args[1], play,
				fmt.Sprintf("keep %.0f%%, %s policy", keep, policy))
		},
	}

	cmd.Flags().Float64("keep", dsp.DefaultKeepPercent, "percentage of coefficients to keep")
	cmd.Flags().String("policy", dsp.HeadTruncate.String(), "truncation policy (head, edge)")
	cmd.Flags().BoolVar(&play, "play", false, "play the result after saving")

	return cmd
}

func newSynthCmd(a *app) *cobra.Command {
	var play bool

	cmd := &cobra.Command{
		Use:   "synth <output.wav>",
		Short: "Generate a 0.5 amplitude sine tone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := a.cfg.Synth

			sig, err := dsp.Synthesize(sc.FrequencyHz, sc.Duration, sc.SampleRate)
			if err != nil {
				return err
			}
			a.store.Set(sig)

			if err := a.store.Save(args[0], sig); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "synth: %.1f Hz for %v at %d Hz -> %s\n",
				sc.FrequencyHz, sig.Duration(), sig.SampleRate(), args[0])

			if play {
				return a.play(cmd, sig, 0)
			}

			return nil
		},
	}

	cmd.Flags().Float64("freq", 440, "tone frequency in Hz")
	cmd.Flags().Float64("duration", dsp.DefaultToneDuration, "tone duration in seconds")
	cmd.Flags().Int("rate", dsp.DefaultToneRate, "sample rate in Hz")
	cmd.Flags().BoolVar(&play, "play", false, "play the tone after saving")

	return cmd
}

// finish saves a transformed signal, prints a summary and optionally plays it.
func (a *app) finish(cmd *cobra.Command, name string, in, out audio.Signal, path string, play bool, detail string) error {
	if err := a.store.Save(path, out); err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), name, detail, in, out, path)

	if play {
		return a.play(cmd, out, 0)
	}

	return nil
}

func printSummary(w io.Writer, name, detail string, in, out audio.Signal, path string) {
	fmt.Fprintf(w, "%s (%s): %d samples at %d Hz, %s\n",
		name, detail, out.Len(), out.SampleRate(), clock(out.Duration()))
	fmt.Fprintf(w, "  energy %.4g -> %.4g\n", dsp.Energy(in), dsp.Energy(out))
	fmt.Fprintf(w, "  wrote %s\n", path)
}
