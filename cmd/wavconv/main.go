// This tool converts a wav file to another bit depth, channel layout or
// sample rate and optionally renders its waveform as a PNG image.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/cwbudde/wave"
	"github.com/cwbudde/wave/internal/logging"
	"github.com/cwbudde/wave/waveform"
)

var errMissingInput = errors.New("you must set the -in flag")

func main() {
	err := run(os.Args[1:], os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string, logOut io.Writer) error {
	flagSet := flag.NewFlagSet("wavconv", flag.ContinueOnError)

	in := flagSet.String("in", "", "wav file to convert")
	outDir := flagSet.String("out", "out", "directory the converted file is saved to")
	name := flagSet.String("name", "", "name of the converted file (defaults to the input name)")
	bits := flagSet.Int("bits", 0, "target bit depth: 8, 16, 24 or 32 (0 keeps the source depth)")
	channels := flagSet.Int("channels", 0, "target channels: 1 or 2 (0 keeps the source layout)")
	rate := flagSet.Int("rate", 0, "target sample rate in Hz (0 keeps the source rate)")
	png := flagSet.String("waveform", "", "write a PNG waveform of the source to this path")
	verbose := flagSet.Bool("v", false, "log debug output")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if *in == "" {
		return errMissingInput
	}

	logger := logging.New(logOut, "wavconv", *verbose)

	data, err := os.ReadFile(*in)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", *in, err)
	}

	f, err := wave.Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", *in, err)
	}

	logger.Debugf("%s: %s, %s, %d skipped chunk(s)", *in, f.Format, f.Duration(), len(f.Chunks))

	if *png != "" {
		err = drawWaveform(f, *png)
		if err != nil {
			return err
		}

		logger.Infof("waveform written to %s", *png)
	}

	outName := *name
	if outName == "" {
		outName = filepath.Base(*in)
	}

	opts := wave.Options{BitDepth: *bits, Channels: *channels, SampleRate: *rate}
	logger.Debugf("converting with %+v", opts)

	err = f.SaveTo(wave.DirSink{Dir: *outDir}, outName, opts)
	if err != nil {
		return fmt.Errorf("failed to convert %s: %w", *in, err)
	}

	logger.Infof("converted %s to %s", *in, filepath.Join(*outDir, outName))

	return nil
}

func drawWaveform(f *wave.File, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer out.Close()

	err = f.DrawWaveform(waveform.New(out))
	if err != nil {
		return fmt.Errorf("failed to draw waveform: %w", err)
	}

	return out.Close()
}
