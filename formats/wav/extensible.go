// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

const (
	formatIEEEFloat  = 3
	formatExtensible = 0xFFFE

	// Offset of the SubFormat GUID inside an extensible fmt chunk: the
	// 16-byte base header, cbSize, wValidBitsPerSample and dwChannelMask.
	subFormatOffset = 24
	extensibleSize  = subFormatOffset + 16
)

// guidTail is the part shared by every KSDATAFORMAT_SUBTYPE_* GUID derived
// from a WAVE format tag; the tag itself fills the first two bytes.
var guidTail = []byte{
	0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x80, 0x00,
	0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71,
}

// subFormatTag walks the RIFF chunks of rs to the fmt chunk and returns the
// format tag carried by its SubFormat GUID. The read position of rs is
// restored before returning.
func subFormatTag(rs io.ReadSeeker) (uint16, error) {
	pos, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	defer rs.Seek(pos, io.SeekStart)

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}

	p := riff.New(rs)
	if err := p.ParseHeaders(); err != nil {
		return 0, err
	}

	for {
		ch, err := p.NextChunk()
		if err != nil {
			return 0, fmt.Errorf("fmt chunk: %w", err)
		}

		if ch.ID != riff.FmtID {
			ch.Drain()
			continue
		}

		if ch.Size < extensibleSize {
			return 0, fmt.Errorf("extensible fmt chunk of %d bytes", ch.Size)
		}

		raw := make([]byte, extensibleSize)
		if _, err := io.ReadFull(ch.R, raw); err != nil {
			return 0, err
		}

		guid := raw[subFormatOffset:]
		if !bytes.Equal(guid[2:], guidTail) {
			return 0, fmt.Errorf("unknown sub-format GUID % x", guid)
		}

		return binary.LittleEndian.Uint16(guid), nil
	}
}
