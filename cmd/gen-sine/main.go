package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/cwbudde/wave"
	"github.com/cwbudde/wave/internal/logging"
	"github.com/go-audio/audio"
)

func main() {
	err := run(os.Args[1:], os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string, logOut io.Writer) error {
	flagSet := flag.NewFlagSet("gen-sine", flag.ContinueOnError)

	output := flagSet.String("output", "output.wav", "filename to write to")
	frequency := flagSet.Float64("frequency", 440, "frequency in hertz to generate")
	length := flagSet.Float64("length", 5, "length in seconds of output file")
	sampleRate := flagSet.Int("rate", 48000, "sample rate in hertz")
	bitDepth := flagSet.Int("bits", 16, "bit depth (8, 16, 24 or 32)")
	verbose := flagSet.Bool("v", false, "log debug output")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	logger := logging.New(logOut, "gen-sine", *verbose)
	logger.Infof("generating a %f sec sine wav at %f hz", *length, *frequency)

	a, err := sine(*frequency, *length, *sampleRate, *bitDepth)
	if err != nil {
		return err
	}

	data, err := wave.Encode(a, *bitDepth, *sampleRate)
	if err != nil {
		return err
	}

	err = os.WriteFile(*output, data, 0o644)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", *output, err)
	}

	logger.Debugf("wrote %d bytes to %s", len(data), *output)

	return nil
}

func sine(frequency, length float64, sampleRate, bitDepth int) (*wave.Audio, error) {
	numSamples := int(float64(sampleRate) * length)

	buf := &audio.Float32Buffer{
		Format: &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:   make([]float32, numSamples),
	}

	for i := range buf.Data {
		fv := math.Sin(float64(i) / float64(sampleRate) * frequency * 2 * math.Pi)
		buf.Data[i] = float32(fv)
	}

	return wave.FromFloat32Buffer(buf, bitDepth)
}
