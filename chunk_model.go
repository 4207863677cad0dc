package wave

// RawChunk is a RIFF chunk the parser walked over without using it.
type RawChunk struct {
	ID [4]byte
	// Size is the declared chunk length.
	Size uint32
	// Data aliases the parsed buffer.
	Data []byte
	// Order is the index of the chunk within the RIFF body.
	Order int
}

func (c RawChunk) Clone() RawChunk {
	out := c
	out.Data = append([]byte(nil), c.Data...)

	return out
}

func cloneRawChunks(chunks []RawChunk) []RawChunk {
	if len(chunks) == 0 {
		return nil
	}

	out := make([]RawChunk, len(chunks))
	for i := range chunks {
		out[i] = chunks[i].Clone()
	}

	return out
}
