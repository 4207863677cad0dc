package wave

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/go-audio/riff"
)

const (
	riffHeaderSize  = 12
	chunkHeaderSize = 8
	fmtChunkSize    = 16
)

// File is a parsed WAV container. Data and every RawChunk payload alias the
// buffer passed to Parse; nothing is copied until the samples are decoded.
type File struct {
	Format *FmtChunk
	// Data is the payload of the data chunk, bounded by its declared length.
	Data []byte
	// Chunks lists the chunks skipped while looking for fmt and data.
	Chunks []RawChunk
}

// Parse walks the RIFF chunks of b and locates the fmt and data chunks.
// Errors wrap ErrMalformedFile.
func Parse(b []byte) (*File, error) {
	if len(b) < riffHeaderSize {
		return nil, fmt.Errorf("%w: file too small (%d bytes)", ErrMalformedFile, len(b))
	}

	if !bytes.Equal(b[0:4], riff.RiffID[:]) {
		return nil, fmt.Errorf("%w: %q - %w", ErrMalformedFile, b[0:4], riff.ErrFmtNotSupported)
	}

	if !bytes.Equal(b[8:12], riff.WavFormatID[:]) {
		return nil, fmt.Errorf("%w: %q - %w", ErrMalformedFile, b[8:12], riff.ErrFmtNotSupported)
	}

	w := &chunkWalker{buf: b, pos: riffHeaderSize}
	f := &File{}

	for f.Format == nil {
		id, body, err := w.next(riff.FmtID)
		if err != nil {
			return nil, err
		}

		if id != riff.FmtID {
			f.skip(id, body, w.n-1)
			continue
		}

		f.Format, err = decodeFmtChunk(body)
		if err != nil {
			return nil, err
		}
	}

	for {
		id, body, err := w.next(riff.DataFormatID)
		if err != nil {
			return nil, err
		}

		if id == riff.DataFormatID {
			f.Data = body
			break
		}

		f.skip(id, body, w.n-1)
	}

	return f, nil
}

// DataLen returns the declared length of the data chunk.
func (f *File) DataLen() int {
	if f == nil {
		return 0
	}

	return len(f.Data)
}

// DurationMs returns the play time in milliseconds derived from the data
// chunk length and the declared average byte rate.
func (f *File) DurationMs() float64 {
	if f == nil || f.Format == nil {
		return 0
	}

	return durationMs(len(f.Data), f.Format.AvgBytesPerSec)
}

// Duration returns the play time of the file.
func (f *File) Duration() time.Duration {
	return msToDuration(f.DurationMs())
}

func (f *File) skip(id [4]byte, body []byte, order int) {
	f.Chunks = append(f.Chunks, RawChunk{
		ID:    id,
		Size:  uint32(len(body)),
		Data:  body,
		Order: order,
	})
}

type chunkWalker struct {
	buf []byte
	pos int
	n   int
}

// next returns the ID and payload of the chunk at the cursor and moves past
// it. want only feeds the error message.
func (w *chunkWalker) next(want [4]byte) ([4]byte, []byte, error) {
	var id [4]byte

	if len(w.buf)-w.pos < chunkHeaderSize {
		return id, nil, fmt.Errorf("%w: %q chunk not found", ErrMalformedFile, want)
	}

	copy(id[:], w.buf[w.pos:w.pos+4])
	size := binary.LittleEndian.Uint32(w.buf[w.pos+4 : w.pos+8])
	start := w.pos + chunkHeaderSize

	if uint64(size) > uint64(len(w.buf)-start) {
		return id, nil, fmt.Errorf("%w: chunk %q (#%d) declares %d bytes, %d available",
			ErrMalformedFile, id, w.n, size, len(w.buf)-start)
	}

	end := start + int(size)
	w.pos = end
	w.n++

	return id, w.buf[start:end:end], nil
}

func decodeFmtChunk(body []byte) (*FmtChunk, error) {
	if len(body) < fmtChunkSize {
		return nil, fmt.Errorf("%w: fmt chunk too short (%d bytes)", ErrMalformedFile, len(body))
	}

	le := binary.LittleEndian
	fmtChunk := &FmtChunk{
		FormatTag:      le.Uint16(body[0:2]),
		NumChannels:    le.Uint16(body[2:4]),
		SampleRate:     le.Uint32(body[4:8]),
		AvgBytesPerSec: le.Uint32(body[8:12]),
		BlockAlign:     le.Uint16(body[12:14]),
		BitsPerSample:  le.Uint16(body[14:16]),
	}

	if len(body) > fmtChunkSize {
		fmtChunk.ExtraData = body[fmtChunkSize:]
	}

	return fmtChunk, nil
}
