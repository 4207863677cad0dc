// This tool prints the format, play time and chunk layout of a wav file.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cwbudde/wave"
)

const missingPathMessage = "You must pass the path of the file to inspect"

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingPath) {
		fmt.Println(missingPathMessage)
		os.Exit(1)
	}

	log.Fatal(err)
}

var errMissingPath = errors.New("missing path argument")

func run(args []string, out io.Writer) error {
	if len(args) < 1 {
		return errMissingPath
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	f, err := wave.Parse(data)
	if err != nil {
		return err
	}

	format := f.FormatChunk()

	fmt.Fprintf(out, "Format: %s\n", format)
	fmt.Fprintf(out, "Bit rate: %d bps\n", format.BitRate())
	fmt.Fprintf(out, "Data: %d bytes\n", f.DataLen())
	fmt.Fprintf(out, "Duration: %s\n", f.Duration())

	if err := format.Supported(); err != nil {
		fmt.Fprintf(out, "Decodable: no (%v)\n", err)
	} else {
		fmt.Fprintln(out, "Decodable: yes")
	}

	chunks := f.RawChunks()
	if len(chunks) == 0 {
		fmt.Fprintln(out, "No extra chunks present")
		return nil
	}

	fmt.Fprintln(out, "Chunks:")

	for _, c := range chunks {
		fmt.Fprintf(out, "\t[%d] %q:\t%d bytes\n", c.Order, c.ID[:], c.Size)
	}

	return nil
}
