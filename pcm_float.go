package wave

import "math"

const (
	// IEEE float samples are scaled asymmetrically into the 32-bit range.
	scaleFloatPositive = 2147483647.0
	scaleFloatNegative = 2147483648.0

	int32Half  = 1 << 31
	int32Range = 1 << 32
)

var pcmScales = map[int]float64{
	8:  128.0,
	16: 32768.0,
	24: 8388608.0,
	32: 2147483648.0,
}

// float32BitsToSample turns the bit pattern of a little-endian IEEE float
// sample into a 32-bit integer sample.
//
// The scaled value goes through the same unsigned to signed remap as 32-bit
// PCM before it is truncated, so values above 1.0 wrap around. The final
// conversion truncates toward zero and wraps modulo 2^32; NaN and infinities
// become 0.
func float32BitsToSample(bits uint32) int {
	value := float64(math.Float32frombits(bits))
	if value >= 0 {
		value *= scaleFloatPositive
	} else {
		value *= scaleFloatNegative
	}

	if value >= int32Half {
		value -= int32Range
	}

	return int(wrapInt32(value))
}

func wrapInt32(value float64) int32 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}

	m := math.Mod(math.Trunc(value), int32Range)
	if m < 0 {
		m += int32Range
	}

	return int32(uint32(m))
}

func clampFloat32(value, min, max float32) float32 {
	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// normalizeSample maps a signed sample of bitDepth to [-1, 1).
func normalizeSample(sample int, bitDepth int) float32 {
	scale, ok := pcmScales[bitDepth]
	if !ok {
		return 0
	}

	return float32(float64(sample) / scale)
}

// float32ToSample maps a normalized value to a signed sample of bitDepth,
// rounding to the nearest step and clamping to the representable range.
func float32ToSample(value float32, bitDepth int) int {
	scale, ok := pcmScales[bitDepth]
	if !ok {
		return 0
	}

	value = clampFloat32(value, -1, 1)

	sample := min(int64(math.Round(float64(value)*scale)), int64(scale)-1)
	if sample < -int64(scale) {
		sample = -int64(scale)
	}

	return int(sample)
}
