package wave

// FormatChunk returns a copy of the parsed fmt chunk, if available.
func (f *File) FormatChunk() *FmtChunk {
	if f == nil || f.Format == nil {
		return nil
	}

	return f.Format.Clone()
}

// RawChunks returns a copy of the chunks skipped while parsing.
func (f *File) RawChunks() []RawChunk {
	if f == nil {
		return nil
	}

	return cloneRawChunks(f.Chunks)
}
