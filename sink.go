package wave

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// MIMEType is the media type of the files produced by this package.
const MIMEType = "audio/wav"

// Sink receives encoded files, e.g. to store them or offer them for download.
type Sink interface {
	Save(name string, data []byte, mimeType string) error
}

// WaveformSink receives signed 16-bit channels for display.
// right is empty for mono audio.
type WaveformSink interface {
	Draw(left, right []int, dur time.Duration) error
}

// DirSink saves files into Dir, creating it when needed.
type DirSink struct {
	Dir string
}

func (s DirSink) Save(name string, data []byte, _ string) error {
	err := os.MkdirAll(s.Dir, 0o755)
	if err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", s.Dir, err)
	}

	path := filepath.Join(s.Dir, filepath.Base(name))

	err = os.WriteFile(path, data, 0o644)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// SaveTo converts the file with opts and hands the result to sink.
func (f *File) SaveTo(sink Sink, name string, opts Options) error {
	data, err := f.Convert(opts)
	if err != nil {
		return err
	}

	return sink.Save(name, data, MIMEType)
}

// DrawWaveform hands the channels of the file to sink as signed 16-bit
// samples, converting other depths first.
func (f *File) DrawWaveform(sink WaveformSink) error {
	a, err := f.Decode()
	if err != nil {
		return err
	}

	if a.BitDepth != 16 {
		a, err = ConvertBits(a, 16)
		if err != nil {
			return err
		}

		a = a.ToSigned()
	}

	return sink.Draw(a.Left, a.Right, f.Duration())
}
