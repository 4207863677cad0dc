package wave

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/riff"
)

// riffHeaderOverhead is the part of the RIFF size not taken by samples:
// "WAVE", the fmt chunk header and body and the data chunk header.
const riffHeaderOverhead = 4 + chunkHeaderSize + fmtChunkSize + chunkHeaderSize

var (
	errAlreadyWroteHdr = errors.New("already wrote header")
	errNilEncoder      = errors.New("can't write a nil encoder")
	errNilWriter       = errors.New("can't write to a nil writer")
)

// Encoder serializes Audio into a linear PCM wav container.
// Each Encoder writes exactly one file.
type Encoder struct {
	w   io.Writer
	buf *bytes.Buffer

	SampleRate int
	BitDepth   int

	WrittenBytes int
	wroteHeader  bool
}

// NewEncoder creates an encoder writing PCM at sampleRate and bitDepth to w.
func NewEncoder(w io.Writer, sampleRate, bitDepth int) *Encoder {
	return &Encoder{
		w:          w,
		buf:        &bytes.Buffer{},
		SampleRate: sampleRate,
		BitDepth:   bitDepth,
	}
}

// Encode returns the wav file holding a at bitDepth and sampleRate. The
// channel count follows a: mono when Right is empty, stereo otherwise.
func Encode(a *Audio, bitDepth, sampleRate int) ([]byte, error) {
	out := &bytes.Buffer{}
	if a != nil && isSupportedBitDepth(bitDepth) {
		out.Grow(riffHeaderSize + riffHeaderOverhead - 4 + (len(a.Left)+len(a.Right))*bytesPerSample(bitDepth))
	}

	err := NewEncoder(out, sampleRate, bitDepth).Write(a)
	if err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// AddLE serializes and adds the passed value using little endian.
func (e *Encoder) AddLE(src any) error {
	e.WrittenBytes += binary.Size(src)

	err := binary.Write(e.buf, binary.LittleEndian, src)
	if err != nil {
		return fmt.Errorf("failed to write little endian: %w", err)
	}

	return nil
}

// Write encodes a as a complete wav file.
//
// Signed samples are stored in the unsigned encoding of the target depth.
// Audio at another bit depth is converted with ConvertBits first.
func (e *Encoder) Write(a *Audio) error {
	if e == nil {
		return errNilEncoder
	}

	if e.w == nil {
		return errNilWriter
	}

	if e.wroteHeader {
		return errAlreadyWroteHdr
	}

	if err := a.validate(); err != nil {
		return err
	}

	depth, ok := sampleDepths[e.BitDepth]
	if !ok {
		return fmt.Errorf("%w: can't encode %d-bit PCM", ErrUnsupportedFormat, e.BitDepth)
	}

	if e.SampleRate <= 0 {
		return fmt.Errorf("%w: %d Hz", ErrInvalidSampleRate, e.SampleRate)
	}

	if a.BitDepth != e.BitDepth {
		var err error

		a, err = ConvertBits(a, e.BitDepth)
		if err != nil {
			return err
		}
	}

	dataSize := (len(a.Left) + len(a.Right)) * depth.bytes()

	err := checkHeaderLimits(e.SampleRate, a.NumChannels()*depth.bytes(), dataSize)
	if err != nil {
		return err
	}

	err = e.writeHeader(newPCMFmtChunk(a.NumChannels(), e.SampleRate, e.BitDepth), dataSize)
	if err != nil {
		return err
	}

	e.addSamples(a, depth)

	n, err := e.w.Write(e.buf.Bytes())
	if err != nil {
		return fmt.Errorf("failed to write buffer (%d of %d bytes): %w", n, e.buf.Len(), err)
	}

	e.buf.Reset()

	return nil
}

// checkHeaderLimits fails when the byte rate or the RIFF size don't fit the
// 32-bit header fields.
func checkHeaderLimits(sampleRate, blockAlign, dataSize int) error {
	if uint64(sampleRate)*uint64(blockAlign) > math.MaxUint32 {
		return fmt.Errorf("%w: %d Hz overflows the byte rate field", ErrInvalidSampleRate, sampleRate)
	}

	if uint64(dataSize)+riffHeaderOverhead > math.MaxUint32 {
		return fmt.Errorf("%w: %d data bytes exceed the RIFF size limit", ErrUnsupportedFormat, dataSize)
	}

	return nil
}

func (e *Encoder) writeHeader(chunk *FmtChunk, dataSize int) error {
	e.wroteHeader = true
	e.buf.Grow(riffHeaderSize + riffHeaderOverhead - 4 + dataSize)

	// riff ID
	err := e.AddLE(riff.RiffID)
	if err != nil {
		return err
	}

	// file size: everything after this field
	err = e.AddLE(uint32(dataSize + riffHeaderOverhead))
	if err != nil {
		return err
	}

	// wave headers
	err = e.AddLE(riff.WavFormatID)
	if err != nil {
		return err
	}

	err = e.writeFmtChunk(chunk)
	if err != nil {
		return err
	}

	// sound header
	err = e.AddLE(riff.DataFormatID)
	if err != nil {
		return fmt.Errorf("error encoding sound header %w", err)
	}

	err = e.AddLE(uint32(dataSize))
	if err != nil {
		return fmt.Errorf("%w when writing wav data chunk size header", err)
	}

	return nil
}

func (e *Encoder) writeFmtChunk(chunk *FmtChunk) error {
	err := e.AddLE(riff.FmtID)
	if err != nil {
		return err
	}

	err = e.AddLE(uint32(fmtChunkSize))
	if err != nil {
		return err
	}

	err = e.AddLE(chunk.FormatTag)
	if err != nil {
		return err
	}

	err = e.AddLE(chunk.NumChannels)
	if err != nil {
		return fmt.Errorf("error encoding the number of channels - %w", err)
	}

	err = e.AddLE(chunk.SampleRate)
	if err != nil {
		return fmt.Errorf("error encoding the sample rate - %w", err)
	}

	err = e.AddLE(chunk.AvgBytesPerSec)
	if err != nil {
		return fmt.Errorf("error encoding the avg bytes per sec - %w", err)
	}

	err = e.AddLE(chunk.BlockAlign)
	if err != nil {
		return err
	}

	err = e.AddLE(chunk.BitsPerSample)
	if err != nil {
		return fmt.Errorf("error encoding bits per sample - %w", err)
	}

	return nil
}

// addSamples interleaves the frames of a into the buffer, left first.
func (e *Encoder) addSamples(a *Audio, depth sampleDepth) {
	stereo := a.IsStereo()
	size := depth.bytes()

	var scratch [4]byte

	put := func(v int) {
		if !a.Unsigned {
			v = depth.unsigned(v)
		}

		switch size {
		case 1:
			scratch[0] = byte(v)
		case 2:
			binary.LittleEndian.PutUint16(scratch[:], uint16(v))
		case 3:
			b := audio.Int32toInt24LEBytes(int32(v))
			copy(scratch[:], b[:])
		default:
			binary.LittleEndian.PutUint32(scratch[:], uint32(v))
		}

		e.buf.Write(scratch[:size])
		e.WrittenBytes += size
	}

	for i := range a.Left {
		put(a.Left[i])

		if stereo {
			put(a.Right[i])
		}
	}
}
