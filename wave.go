package wave

import (
	"errors"
	"math"
	"time"
)

var (
	// ErrMalformedFile is returned when the input is not a well formed
	// RIFF/WAVE container or a required chunk can't be located.
	ErrMalformedFile = errors.New("malformed wav file")
	// ErrUnsupportedFormat is returned when the fmt chunk describes an
	// encoding this package can't decode or encode.
	ErrUnsupportedFormat = errors.New("unsupported wav format")
	// ErrInvalidSampleRate is returned for sample rates that are not positive.
	ErrInvalidSampleRate = errors.New("invalid sample rate")
	// ErrChannelLengthMismatch indicates stereo audio whose channels differ in length.
	ErrChannelLengthMismatch = errors.New("left and right channel lengths differ")
)

const (
	wavFormatPCM       = 1
	wavFormatIEEEFloat = 3
)

func bytesPerSample(bitDepth int) int {
	return (bitDepth-1)/8 + 1
}

// durationMs mirrors the play time reported for a data chunk:
// 1000 * dataLen / avgBytesPerSec. A zero byte rate yields 0.
func durationMs(dataLen int, avgBytesPerSec uint32) float64 {
	if avgBytesPerSec == 0 {
		return 0
	}

	return 1000 * float64(dataLen) / float64(avgBytesPerSec)
}

func msToDuration(ms float64) time.Duration {
	return time.Duration(math.Round(ms * float64(time.Millisecond)))
}

func samplesNumFromDuration(ms float64, sampleRate int) int {
	n := math.Floor(float64(sampleRate) * ms / 1000)
	if n <= 0 || math.IsNaN(n) {
		return 0
	}

	return int(n)
}
