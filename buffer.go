package wave

import (
	"errors"
	"fmt"

	"github.com/go-audio/audio"
)

var errNilBuffer = errors.New("can't convert a nil buffer")

// IntBuffer returns the signed samples of a interleaved in an audio.IntBuffer.
func (a *Audio) IntBuffer(sampleRate int) *audio.IntBuffer {
	if a == nil {
		return nil
	}

	signed := a.ToSigned()
	numChans := signed.NumChannels()

	return &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChans,
			SampleRate:  sampleRate,
		},
		Data:           interleave(signed),
		SourceBitDepth: signed.BitDepth,
	}
}

// Float32Buffer returns the samples of a normalized to [-1, 1).
func (a *Audio) Float32Buffer(sampleRate int) *audio.Float32Buffer {
	if a == nil {
		return nil
	}

	signed := a.ToSigned()
	numChans := signed.NumChannels()
	bitDepth := signed.BitDepth

	data := interleave(signed)
	out := make([]float32, len(data))

	for i, v := range data {
		out[i] = normalizeSample(v, bitDepth)
	}

	return &audio.Float32Buffer{
		Format: &audio.Format{
			NumChannels: numChans,
			SampleRate:  sampleRate,
		},
		Data:           out,
		SourceBitDepth: bitDepth,
	}
}

// FromIntBuffer splits an interleaved mono or stereo buffer of signed
// samples. SourceBitDepth must be a supported depth.
func FromIntBuffer(buf *audio.IntBuffer) (*Audio, error) {
	if buf == nil || buf.Format == nil {
		return nil, errNilBuffer
	}

	if !isSupportedBitDepth(buf.SourceBitDepth) {
		return nil, fmt.Errorf("%w: %d-bit buffer", ErrUnsupportedFormat, buf.SourceBitDepth)
	}

	return deinterleave(buf.Data, buf.Format.NumChannels, buf.SourceBitDepth)
}

// FromFloat32Buffer splits an interleaved mono or stereo buffer of
// normalized samples and scales it to bitDepth.
func FromFloat32Buffer(buf *audio.Float32Buffer, bitDepth int) (*Audio, error) {
	if buf == nil || buf.Format == nil {
		return nil, errNilBuffer
	}

	if !isSupportedBitDepth(bitDepth) {
		return nil, fmt.Errorf("%w: %d-bit samples", ErrUnsupportedFormat, bitDepth)
	}

	ints := make([]int, len(buf.Data))
	for i, v := range buf.Data {
		ints[i] = float32ToSample(v, bitDepth)
	}

	return deinterleave(ints, buf.Format.NumChannels, bitDepth)
}

func interleave(a *Audio) []int {
	stereo := a.IsStereo()

	out := make([]int, 0, len(a.Left)+len(a.Right))
	for i := range a.Left {
		out = append(out, a.Left[i])

		if stereo {
			out = append(out, a.Right[i])
		}
	}

	return out
}

func deinterleave(data []int, numChans, bitDepth int) (*Audio, error) {
	if numChans != 1 && numChans != 2 {
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedFormat, numChans)
	}

	frames := len(data) / numChans

	out := &Audio{
		Left:     make([]int, frames),
		BitDepth: bitDepth,
	}
	if numChans == 2 {
		out.Right = make([]int, frames)
	}

	for i := range frames {
		out.Left[i] = data[i*numChans]

		if numChans == 2 {
			out.Right[i] = data[i*numChans+1]
		}
	}

	return out, nil
}
