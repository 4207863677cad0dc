package wave

import (
	"errors"
	"fmt"
)

var errNilAudio = errors.New("nil audio")

// sampleDepth describes how a supported bit depth maps between the signed
// sample domain and the unsigned bytes stored in a PCM data chunk.
type sampleDepth struct {
	bits int
	// offset is non-zero for depths stored with an offset binary encoding.
	offset int
	// full is the size of the value range, 1<<bits.
	full int64
}

var sampleDepths = map[int]sampleDepth{
	8:  {bits: 8, offset: 128, full: 1 << 8},
	16: {bits: 16, full: 1 << 16},
	24: {bits: 24, full: 1 << 24},
	32: {bits: 32, full: 1 << 32},
}

func isSupportedBitDepth(bitDepth int) bool {
	_, ok := sampleDepths[bitDepth]
	return ok
}

func (d sampleDepth) bytes() int {
	return d.bits / 8
}

// signed maps an unsigned stored value to the signed domain.
func (d sampleDepth) signed(v int) int {
	if d.offset != 0 {
		return v - d.offset
	}

	if int64(v) >= d.full/2 {
		return int(int64(v) - d.full)
	}

	return v
}

// unsigned maps a signed sample to the value stored in the data chunk.
func (d sampleDepth) unsigned(v int) int {
	if d.offset != 0 {
		return v + d.offset
	}

	if v < 0 {
		return int(int64(v) + d.full)
	}

	return v
}

// bitShift returns the shift turning a sample of sourceBits into one of
// targetBits: positive widens, negative narrows.
func bitShift(sourceBits, targetBits int) int {
	return targetBits - sourceBits
}

// shiftSample shifts v with 32-bit two's complement semantics. Right shifts
// are arithmetic so the sign survives narrowing.
func shiftSample(v int, shift int) int {
	switch {
	case shift > 0:
		return int(int32(v) << uint(shift))
	case shift < 0:
		return int(int32(v) >> uint(-shift))
	default:
		return v
	}
}

// ConvertBits rescales a to targetBits and returns the result in the unsigned
// domain expected by the data chunk of a targetBits PCM file.
//
// Narrowing drops the low order bits. Both channels are shifted
// independently by the direct distance between the two depths.
func ConvertBits(a *Audio, targetBits int) (*Audio, error) {
	if err := a.validate(); err != nil {
		return nil, err
	}

	src, ok := sampleDepths[a.BitDepth]
	if !ok {
		return nil, fmt.Errorf("%w: source bit depth %d", ErrUnsupportedFormat, a.BitDepth)
	}

	dst, ok := sampleDepths[targetBits]
	if !ok {
		return nil, fmt.Errorf("%w: target bit depth %d", ErrUnsupportedFormat, targetBits)
	}

	shift := bitShift(src.bits, dst.bits)
	unsigned := a.Unsigned

	out := a.withSamples(func(v int) int {
		if unsigned {
			v = src.signed(v)
		}

		return dst.unsigned(shiftSample(v, shift))
	})
	out.BitDepth = targetBits
	out.Unsigned = true

	return out, nil
}
