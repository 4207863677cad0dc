package wave

import "fmt"

// Options selects the layout of a converted file. Zero values keep the
// corresponding property of the source.
type Options struct {
	// BitDepth is 8, 16, 24 or 32.
	BitDepth int
	// Channels is 1 for mono or 2 for stereo.
	Channels int
	// SampleRate is the target rate in Hz.
	SampleRate int
}

// Convert parses b and re-encodes it as linear PCM using opts.
func Convert(b []byte, opts Options) ([]byte, error) {
	f, err := Parse(b)
	if err != nil {
		return nil, err
	}

	return f.Convert(opts)
}

// Convert decodes the file and re-encodes it using opts. Channels are
// converted first, then the sample rate, then the bit depth.
func (f *File) Convert(opts Options) ([]byte, error) {
	a, bitDepth, sampleRate, err := f.convertAudio(opts)
	if err != nil {
		return nil, err
	}

	return Encode(a, bitDepth, sampleRate)
}

func (f *File) convertAudio(opts Options) (*Audio, int, int, error) {
	a, err := f.Decode()
	if err != nil {
		return nil, 0, 0, err
	}

	switch opts.Channels {
	case 0:
	case 1, 2:
		a, err = ConvertChannels(a, opts.Channels == 2)
		if err != nil {
			return nil, 0, 0, err
		}
	default:
		return nil, 0, 0, fmt.Errorf("%w: %d channels", ErrUnsupportedFormat, opts.Channels)
	}

	sampleRate := int(f.Format.SampleRate)
	if opts.SampleRate != 0 && opts.SampleRate != sampleRate {
		a, err = Resample(a, sampleRate, opts.SampleRate, f.DurationMs())
		if err != nil {
			return nil, 0, 0, err
		}

		sampleRate = opts.SampleRate
	}

	bitDepth := a.BitDepth
	if opts.BitDepth != 0 {
		bitDepth = opts.BitDepth
	}

	a, err = ConvertBits(a, bitDepth)
	if err != nil {
		return nil, 0, 0, err
	}

	return a, bitDepth, sampleRate, nil
}
