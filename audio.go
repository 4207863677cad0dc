package wave

// Audio holds decoded samples split per channel.
//
// Samples are stored as int regardless of BitDepth, the same way
// audio.IntBuffer stores them. Right is empty for mono audio and has the same
// length as Left otherwise.
type Audio struct {
	Left  []int
	Right []int
	// BitDepth is the logical depth of the samples (8, 16, 24 or 32).
	BitDepth int
	// Unsigned is set when the samples hold the byte-level unsigned encoding
	// of BitDepth (offset-128 for 8-bit, wrapped negatives otherwise) rather
	// than signed, zero-centred values.
	Unsigned bool
}

// IsStereo reports whether the audio carries a right channel.
func (a *Audio) IsStereo() bool {
	return a != nil && len(a.Right) > 0
}

// NumChannels returns 1 for mono and 2 for stereo audio.
func (a *Audio) NumChannels() int {
	if a.IsStereo() {
		return 2
	}

	return 1
}

// NumFrames returns the number of samples per channel.
func (a *Audio) NumFrames() int {
	if a == nil {
		return 0
	}

	return len(a.Left)
}

func (a *Audio) Clone() *Audio {
	if a == nil {
		return nil
	}

	out := *a
	out.Left = cloneSamples(a.Left)
	out.Right = cloneSamples(a.Right)

	return &out
}

// ToSigned returns a copy of a in the signed, zero-centred domain.
func (a *Audio) ToSigned() *Audio {
	if a == nil || !a.Unsigned {
		return a.Clone()
	}

	depth, ok := sampleDepths[a.BitDepth]
	if !ok {
		return a.Clone()
	}

	out := a.withSamples(depth.signed)
	out.Unsigned = false

	return out
}

// ToUnsigned returns a copy of a in the unsigned byte-level domain.
func (a *Audio) ToUnsigned() *Audio {
	if a == nil || a.Unsigned {
		return a.Clone()
	}

	depth, ok := sampleDepths[a.BitDepth]
	if !ok {
		return a.Clone()
	}

	out := a.withSamples(depth.unsigned)
	out.Unsigned = true

	return out
}

func (a *Audio) withSamples(fn func(int) int) *Audio {
	out := *a
	out.Left = mapSamples(a.Left, fn)
	out.Right = mapSamples(a.Right, fn)

	return &out
}

func (a *Audio) validate() error {
	if a == nil {
		return errNilAudio
	}

	if len(a.Right) > 0 && len(a.Right) != len(a.Left) {
		return ErrChannelLengthMismatch
	}

	return nil
}

func cloneSamples(in []int) []int {
	if in == nil {
		return nil
	}

	return append(make([]int, 0, len(in)), in...)
}

func mapSamples(in []int, fn func(int) int) []int {
	if in == nil {
		return nil
	}

	out := make([]int, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}

	return out
}
