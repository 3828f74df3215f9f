// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WritePCM writes interleaved integer samples as a PCM WAV file using the
// go-audio encoder.
func WritePCM(path string, sampleRate, channels, bitDepth int, interleaved []int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, bitDepth, channels, 1)
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           interleaved,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return err
	}

	return enc.Close()
}

// RawWAV builds a canonical 44-byte header WAV with an arbitrary format tag
// and bit depth, followed by data. It lets tests produce files the encoder
// refuses to write, such as IEEE float or 24-bit layouts.
func RawWAV(formatTag uint16, sampleRate, channels, bitsPerSample int, data []byte) []byte {
	return riffWAV(fmtBody(formatTag, sampleRate, channels, bitsPerSample), data)
}

// ExtensibleWAV builds a WAVE_FORMAT_EXTENSIBLE file whose 40-byte fmt chunk
// carries subFormat (1 for PCM, 3 for IEEE float) in its SubFormat GUID, the
// layout ffmpeg and sox write for 32-bit integer PCM.
func ExtensibleWAV(subFormat uint16, sampleRate, channels, bitsPerSample int, data []byte) []byte {
	body := bytes.NewBuffer(fmtBody(0xFFFE, sampleRate, channels, bitsPerSample))

	binary.Write(body, binary.LittleEndian, uint16(22))            // cbSize
	binary.Write(body, binary.LittleEndian, uint16(bitsPerSample)) // valid bits
	binary.Write(body, binary.LittleEndian, uint32(0))             // channel mask
	binary.Write(body, binary.LittleEndian, subFormat)
	body.Write([]byte{
		0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x80, 0x00,
		0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71,
	})

	return riffWAV(body.Bytes(), data)
}

func fmtBody(formatTag uint16, sampleRate, channels, bitsPerSample int) []byte {
	buf := new(bytes.Buffer)

	blockAlign := uint16(channels * bitsPerSample / 8)
	byteRate := uint32(sampleRate) * uint32(blockAlign)

	binary.Write(buf, binary.LittleEndian, formatTag)
	binary.Write(buf, binary.LittleEndian, uint16(channels))
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, uint16(bitsPerSample))

	return buf.Bytes()
}

func riffWAV(fmtChunk, data []byte) []byte {
	buf := new(bytes.Buffer)

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(4+8+len(fmtChunk)+8+len(data)))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(len(fmtChunk)))
	buf.Write(fmtChunk)

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, uint32(len(data)))
	buf.Write(data)

	return buf.Bytes()
}

// Int32Bytes encodes samples as little-endian 32-bit PCM.
func Int32Bytes(samples []int32) []byte {
	out := make([]byte, 4*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint32(out[4*i:], uint32(s))
	}

	return out
}

// Int16Bytes encodes samples as little-endian 16-bit PCM.
func Int16Bytes(samples []int16) []byte {
	out := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}

	return out
}
