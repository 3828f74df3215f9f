package main

import (
	"fmt"

	"github.com/ik5/audfx/dsp"
	"github.com/spf13/cobra"
)

func newSpectrumCmd(a *app) *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "spectrum <input.wav>",
		Short: "List the strongest frequencies of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sig, err := a.store.Load(args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s: %d samples at %d Hz, %s, energy %.4g\n",
				args[0], sig.Len(), sig.SampleRate(), clock(sig.Duration()), dsp.Energy(sig))

			fmt.Fprintf(w, "%12s  %10s\n", "FREQ (Hz)", "AMPLITUDE")
			for _, b := range dsp.Peaks(dsp.Spectrum(sig), top) {
				fmt.Fprintf(w, "%12.1f  %10.4f\n", b.Frequency, b.Magnitude)
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&top, "top", "n", 10, "number of peaks to list")

	return cmd
}
