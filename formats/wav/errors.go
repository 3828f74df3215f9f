package wav

import (
	"fmt"

	"github.com/ik5/audfx/audio"
)

var (
	ErrNotWavFile           = fmt.Errorf("not a WAV file: %w", audio.ErrIOFailure)
	ErrNotPCM               = fmt.Errorf("only uncompressed integer PCM supported: %w", audio.ErrUnsupportedFormat)
	ErrUnsupportedBitDepth  = fmt.Errorf("only PCM 16-bit and 32-bit supported: %w", audio.ErrUnsupportedFormat)
)
