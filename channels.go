package wave

// ConvertChannels returns a copy of a laid out as stereo or mono.
//
// Mono audio becomes stereo by copying the left channel verbatim into the
// right one; stereo audio becomes mono by dropping the right channel. No
// samples are mixed. Stereo input with channels of different lengths is
// rejected with ErrChannelLengthMismatch.
func ConvertChannels(a *Audio, toStereo bool) (*Audio, error) {
	if err := a.validate(); err != nil {
		return nil, err
	}

	out := &Audio{
		Left:     cloneSamples(a.Left),
		BitDepth: a.BitDepth,
		Unsigned: a.Unsigned,
	}

	if !toStereo {
		return out, nil
	}

	if a.IsStereo() {
		out.Right = cloneSamples(a.Right)
	} else {
		out.Right = cloneSamples(a.Left)
	}

	return out, nil
}

// ToStereo is shorthand for ConvertChannels(a, true).
func (a *Audio) ToStereo() (*Audio, error) {
	return ConvertChannels(a, true)
}

// ToMono is shorthand for ConvertChannels(a, false).
func (a *Audio) ToMono() (*Audio, error) {
	return ConvertChannels(a, false)
}
