// Package wave parses, converts and encodes canonical WAV files.
//
// Parse locates the fmt and data chunks of a RIFF/WAVE buffer without
// copying the samples. Decode turns 8/16/24/32-bit linear PCM and 32-bit
// IEEE float data into per-channel signed samples. The converters change
// the layout of the decoded Audio:
//
//   - ConvertBits rescales between 8, 16, 24 and 32 bits
//   - ConvertChannels switches between mono and stereo
//   - Resample changes the sample rate by nearest index selection
//
// Encode writes the result back as a linear PCM file. Convert runs the whole
// pipeline on a byte slice.
//
// WAVE_FORMAT_EXTENSIBLE and every format tag other than PCM (1) and IEEE
// float (3) are rejected with ErrUnsupportedFormat.
package wave
