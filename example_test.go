// SPDX-License-Identifier: EPL-2.0

package audfx_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/audfx"
	"github.com/ik5/audfx/audio"
	"github.com/ik5/audfx/dsp"
)

// Example_saveAndLoad writes a short signal and reads it back as mono.
func Example_saveAndLoad() {
	dir, err := os.MkdirTemp("", "audfx-example")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "short.wav")
	sig, _ := audio.NewSignal([]float64{0, 0.25, 0.5, 0.25, 0}, 8000)

	if err := audfx.SaveFile(path, sig); err != nil {
		fmt.Println(err)
		return
	}

	loaded, err := audfx.LoadFile(path)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%d samples at %d Hz, %v\n", loaded.Len(), loaded.SampleRate(), loaded.Duration())
	// Output: 5 samples at 8000 Hz, 625µs
}

// Example_denoiseFile loads a file, low-pass filters it and saves the result.
func Example_denoiseFile() {
	dir, err := os.MkdirTemp("", "audfx-example")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	in := filepath.Join(dir, "tone.wav")
	tone, _ := dsp.Synthesize(440, 0.1, 44100)
	if err := audfx.SaveFile(in, tone); err != nil {
		fmt.Println(err)
		return
	}

	sig, err := audfx.LoadFile(in)
	if err != nil {
		fmt.Println(err)
		return
	}

	clean := dsp.Denoise(sig, dsp.DefaultCutoffHz)
	if err := audfx.SaveFile(filepath.Join(dir, "clean.wav"), clean); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("denoised %d samples at %d Hz, %v\n", clean.Len(), clean.SampleRate(), clean.Duration())
	// Output: denoised 4410 samples at 44100 Hz, 100ms
}
