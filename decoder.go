package wave

import (
	"encoding/binary"
	"fmt"

	"github.com/go-audio/audio"
)

type sampleFormat struct {
	formatTag uint16
	bitDepth  int
}

// sampleDecoders convert the little-endian bytes of one sample into a signed,
// zero-centred value. 8-bit PCM is offset binary, the other PCM depths are
// two's complement.
var sampleDecoders = map[sampleFormat]func([]byte) int{
	{wavFormatPCM, 8}: func(b []byte) int {
		return sampleDepths[8].signed(int(b[0]))
	},
	{wavFormatPCM, 16}: func(b []byte) int {
		return sampleDepths[16].signed(int(binary.LittleEndian.Uint16(b)))
	},
	{wavFormatPCM, 24}: func(b []byte) int {
		return int(audio.Int24LETo32(b))
	},
	{wavFormatPCM, 32}: func(b []byte) int {
		return sampleDepths[32].signed(int(binary.LittleEndian.Uint32(b)))
	},
	{wavFormatIEEEFloat, 32}: func(b []byte) int {
		return float32BitsToSample(binary.LittleEndian.Uint32(b))
	},
}

// sampleDecodeFunc returns the decoder for the passed format tag and depth.
func sampleDecodeFunc(formatTag uint16, bitDepth int) (func([]byte) int, error) {
	decodeF, ok := sampleDecoders[sampleFormat{formatTag, bitDepth}]
	if !ok {
		return nil, fmt.Errorf("%w: format tag %d with %d bits", ErrUnsupportedFormat, formatTag, bitDepth)
	}

	return decodeF, nil
}

// Decode converts the raw data chunk bytes described by f into per-channel
// signed samples. Interleaved stereo slots alternate left and right.
//
// Trailing bytes that don't form a whole frame are ignored. Errors wrap
// ErrUnsupportedFormat.
func Decode(f *FmtChunk, data []byte) (*Audio, error) {
	if err := f.Supported(); err != nil {
		return nil, err
	}

	bitDepth := int(f.BitsPerSample)

	decodeF, err := sampleDecodeFunc(f.FormatTag, bitDepth)
	if err != nil {
		return nil, err
	}

	numChans := int(f.NumChannels)
	bPerSample := bytesPerSample(bitDepth)
	frameSize := bPerSample * numChans
	frames := len(data) / frameSize

	out := &Audio{
		Left:     make([]int, frames),
		BitDepth: bitDepth,
	}
	if numChans == 2 {
		out.Right = make([]int, frames)
	}

	for i := range frames {
		offset := i * frameSize
		out.Left[i] = decodeF(data[offset : offset+bPerSample])

		if numChans == 2 {
			offset += bPerSample
			out.Right[i] = decodeF(data[offset : offset+bPerSample])
		}
	}

	return out, nil
}

// Decode decodes the samples of the data chunk.
func (f *File) Decode() (*Audio, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: nil file", ErrMalformedFile)
	}

	return Decode(f.Format, f.Data)
}
