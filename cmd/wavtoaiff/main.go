// This tool converts a wav file into an aiff file with the same samples and
// stores it in the same folder as the source.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/cwbudde/wave"
	"github.com/go-audio/aiff"
)

var errMissingPath = errors.New("you must set the -path flag")

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	flagSet := flag.NewFlagSet("wavtoaiff", flag.ContinueOnError)

	path := flagSet.String("path", "", "The path to the wav file to convert to aiff")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if *path == "" {
		return errMissingPath
	}

	sourcePath, err := expandHome(*path)
	if err != nil {
		return err
	}

	outPath, err := convert(sourcePath)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Wav file converted to %s\n", outPath)

	return nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("failed to get the user home directory: %w", err)
	}

	return strings.Replace(path, "~", usr.HomeDir, 1), nil
}

func convert(sourcePath string) (string, error) {
	data, err := os.ReadFile(sourcePath)
	if err != nil {
		return "", fmt.Errorf("invalid path %s: %w", sourcePath, err)
	}

	f, err := wave.Parse(data)
	if err != nil {
		return "", err
	}

	a, err := f.Decode()
	if err != nil {
		return "", err
	}

	sampleRate := int(f.Format.SampleRate)

	outPath := sourcePath[:len(sourcePath)-len(filepath.Ext(sourcePath))] + ".aif"

	err = exportAiff(outPath, a, sampleRate)
	if err != nil {
		return "", err
	}

	return outPath, nil
}

// exportAiff writes a to outPath as AIFF. A partially written file is
// removed on failure.
func exportAiff(outPath string, a *wave.Audio, sampleRate int) (err error) {
	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}

	defer func() {
		closeErr := outFile.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("failed to close %s: %w", outPath, closeErr)
		}

		if err != nil {
			_ = os.Remove(outPath)
		}
	}()

	encoder := aiff.NewEncoder(outFile, sampleRate, a.BitDepth, a.NumChannels())

	err = encoder.Write(a.IntBuffer(sampleRate))
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	err = encoder.Close()
	if err != nil {
		return fmt.Errorf("failed to finalize %s: %w", outPath, err)
	}

	return nil
}
