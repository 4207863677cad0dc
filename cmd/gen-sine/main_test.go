package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
)

func TestRunGeneratesWavFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "sine.wav")

	err := run([]string{"-output", outPath, "-length", "0.01", "-frequency", "220", "-rate", "22050", "-bits", "24"}, io.Discard)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	fi, err := os.Stat(outPath)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}

	// 220 samples of 3 bytes after the 44-byte header
	if fi.Size() != 44+220*3 {
		t.Fatalf("unexpected wav file size: %d", fi.Size())
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("open generated file: %v", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		t.Fatalf("generated file is not a valid wav")
	}

	if dec.SampleRate != 22050 {
		t.Fatalf("sample rate=%d, want 22050", dec.SampleRate)
	}

	if dec.BitDepth != 24 {
		t.Fatalf("bit depth=%d, want 24", dec.BitDepth)
	}

	if dec.NumChans != 1 {
		t.Fatalf("channels=%d, want 1", dec.NumChans)
	}
}

func TestRunFlagParseError(t *testing.T) {
	err := run([]string{"-length", "not-a-number"}, io.Discard)
	if err == nil {
		t.Fatalf("expected failure for invalid flag value")
	}
}

func TestRunDefaultParams(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "default.wav")

	err := run([]string{"-output", outPath, "-length", "0.005"}, io.Discard)
	if err != nil {
		t.Fatalf("run with defaults failed: %v", err)
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("open generated file: %v", err)
	}
	defer f.Close()

	buf, err := wav.NewDecoder(f).FullPCMBuffer()
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	// 0.005 sec * 48000 Hz = 240 samples
	if len(buf.Data) != 240 {
		t.Fatalf("expected 240 samples, got %d", len(buf.Data))
	}
}

func TestRunUnsupportedBitDepth(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "bad.wav")

	err := run([]string{"-output", outPath, "-length", "0.001", "-bits", "12"}, io.Discard)
	if err == nil {
		t.Fatal("expected error for 12-bit output")
	}
}

func TestSinePeaks(t *testing.T) {
	// a quarter period lands exactly on the crest
	a, err := sine(1000, 0.001, 4000, 16)
	if err != nil {
		t.Fatalf("sine failed: %v", err)
	}

	want := []int{0, 32767, 0, -32768}
	if len(a.Left) != len(want) {
		t.Fatalf("expected %d samples, got %d", len(want), len(a.Left))
	}

	for i := range want {
		if a.Left[i] != want[i] {
			t.Fatalf("sample[%d]=%d, want %d", i, a.Left[i], want[i])
		}
	}
}

func TestRunInvalidOutputPath(t *testing.T) {
	err := run([]string{"-output", "/nonexistent/dir/file.wav", "-length", "0.001"}, io.Discard)
	if err == nil {
		t.Fatal("expected error for invalid output path")
	}
}

func TestRunLogs(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{name: "info", verbose: false, wantDebug: false},
		{name: "verbose", verbose: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outPath := filepath.Join(t.TempDir(), "sine.wav")
			args := []string{"-output", outPath, "-length", "0.001", "-frequency", "100"}

			if tt.verbose {
				args = append(args, "-v")
			}

			var logs bytes.Buffer

			err := run(args, &logs)
			if err != nil {
				t.Fatalf("run failed: %v", err)
			}

			if !bytes.Contains(logs.Bytes(), []byte("gen-sine INFO")) {
				t.Fatalf("expected a scoped info line, got %q", logs.String())
			}

			if !bytes.Contains(logs.Bytes(), []byte("generating a 0.001000 sec sine wav at 100.000000 hz")) {
				t.Fatalf("expected the generation message, got %q", logs.String())
			}

			if gotDebug := bytes.Contains(logs.Bytes(), []byte("wrote ")); gotDebug != tt.wantDebug {
				t.Fatalf("debug output=%t, want %t: %q", gotDebug, tt.wantDebug, logs.String())
			}
		})
	}
}
