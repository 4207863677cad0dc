package wave

import "fmt"

// FmtChunk stores the canonical 16 bytes of a WAV fmt chunk.
type FmtChunk struct {
	FormatTag      uint16
	NumChannels    uint16
	SampleRate     uint32
	AvgBytesPerSec uint32
	BlockAlign     uint16
	BitsPerSample  uint16
	// ExtraData holds the bytes declared past the canonical fields. They are
	// never interpreted; for parsed files the slice aliases the input.
	ExtraData []byte
}

func newPCMFmtChunk(numChans, sampleRate, bitDepth int) *FmtChunk {
	blockAlign := bitDepth * numChans / 8

	return &FmtChunk{
		FormatTag:      wavFormatPCM,
		NumChannels:    uint16(numChans),
		SampleRate:     uint32(sampleRate),
		AvgBytesPerSec: uint32(sampleRate * blockAlign),
		BlockAlign:     uint16(blockAlign),
		BitsPerSample:  uint16(bitDepth),
	}
}

func (f *FmtChunk) Clone() *FmtChunk {
	if f == nil {
		return nil
	}

	out := *f
	out.ExtraData = append([]byte(nil), f.ExtraData...)

	return &out
}

// Supported reports whether samples described by f can be decoded.
// The returned error wraps ErrUnsupportedFormat.
func (f *FmtChunk) Supported() error {
	if f == nil {
		return fmt.Errorf("%w: missing fmt chunk", ErrUnsupportedFormat)
	}

	switch f.FormatTag {
	case wavFormatPCM:
		if !isSupportedBitDepth(int(f.BitsPerSample)) {
			return fmt.Errorf("%w: %d-bit PCM", ErrUnsupportedFormat, f.BitsPerSample)
		}
	case wavFormatIEEEFloat:
		if f.BitsPerSample != 32 {
			return fmt.Errorf("%w: %d-bit IEEE float", ErrUnsupportedFormat, f.BitsPerSample)
		}
	default:
		return fmt.Errorf("%w: format tag %#04x", ErrUnsupportedFormat, f.FormatTag)
	}

	if f.NumChannels != 1 && f.NumChannels != 2 {
		return fmt.Errorf("%w: %d channels", ErrUnsupportedFormat, f.NumChannels)
	}

	return nil
}

// BitRate returns the declared bit rate in bits per second.
func (f *FmtChunk) BitRate() int {
	if f == nil {
		return 0
	}

	return int(f.SampleRate) * int(f.BitsPerSample) * int(f.NumChannels)
}

func (f *FmtChunk) String() string {
	if f == nil {
		return "<nil>"
	}

	kind := "PCM"
	if f.FormatTag == wavFormatIEEEFloat {
		kind = "IEEE float"
	} else if f.FormatTag != wavFormatPCM {
		kind = fmt.Sprintf("format %#04x", f.FormatTag)
	}

	return fmt.Sprintf("%d Hz @ %d bits %s, %d channel(s), %d avg bytes/sec",
		f.SampleRate, f.BitsPerSample, kind, f.NumChannels, f.AvgBytesPerSec)
}
