package wave

import (
	"fmt"
	"math"
)

// Resample converts a from sourceRate to targetRate by nearest index
// selection, without interpolation.
//
// The output holds floor(targetRate*durationMs/1000) samples per channel.
// A running index starts at 0 and is advanced by sourceRate/targetRate
// before every pick, so the first output sample is source[floor(ratio)].
// Picks past the end of the source yield silence. Equal rates return a copy.
func Resample(a *Audio, sourceRate, targetRate int, durationMs float64) (*Audio, error) {
	if err := a.validate(); err != nil {
		return nil, err
	}

	if sourceRate <= 0 || targetRate <= 0 {
		return nil, fmt.Errorf("%w: %d Hz -> %d Hz", ErrInvalidSampleRate, sourceRate, targetRate)
	}

	if sourceRate == targetRate {
		return a.Clone(), nil
	}

	indexes := resampleIndexes(sourceRate, targetRate, samplesNumFromDuration(durationMs, targetRate))

	silence := 0
	if depth, ok := sampleDepths[a.BitDepth]; ok && a.Unsigned {
		silence = depth.unsigned(0)
	}

	out := &Audio{
		Left:     pickSamples(a.Left, indexes, silence),
		BitDepth: a.BitDepth,
		Unsigned: a.Unsigned,
	}
	if a.IsStereo() {
		out.Right = pickSamples(a.Right, indexes, silence)
	}

	return out, nil
}

func resampleIndexes(sourceRate, targetRate, n int) []int {
	ratio := float64(sourceRate) / float64(targetRate)
	indexes := make([]int, n)

	var pos float64
	for i := range indexes {
		pos += ratio
		indexes[i] = int(math.Floor(pos))
	}

	return indexes
}

func pickSamples(src []int, indexes []int, silence int) []int {
	out := make([]int, len(indexes))
	for i, j := range indexes {
		if j < len(src) {
			out[i] = src[j]
		} else {
			out[i] = silence
		}
	}

	return out
}
