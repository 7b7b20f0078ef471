package rangestream

import "io"

// ChunkStreamer streams a byte range from a forward-only source. It
// makes no seek assumption: bytes before the range offset are read and
// discarded in fixed-size chunks, which makes it suitable for sources
// such as decompressing archive members. This is the default strategy.
type ChunkStreamer struct {
	// ChunkSize is the size of the discard chunks and the upper bound
	// on a single body read. DefaultChunkSize is used if zero.
	ChunkSize int64
}

func (c ChunkStreamer) Stream(src io.Reader, offset, length int64) io.Reader {
	chunk := c.ChunkSize
	if chunk <= 0 {
		chunk = DefaultChunkSize
	}
	return &chunkReader{src: src, skip: offset, remaining: length, chunk: chunk}
}

// chunkReader is the single-pass body produced by ChunkStreamer. The
// skip to the range offset happens on the first read, so constructing
// the body performs no I/O. Once the length budget is spent or the
// source is exhausted it keeps returning io.EOF.
type chunkReader struct {
	src       io.Reader
	skip      int64
	remaining int64
	chunk     int64
	err       error
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	if err := r.discard(); err != nil {
		r.err = err
		return 0, err
	}
	if r.remaining <= 0 {
		r.err = io.EOF
		return 0, io.EOF
	}
	limit := int64(len(p))
	if limit > r.chunk {
		limit = r.chunk
	}
	if limit > r.remaining {
		limit = r.remaining
	}
	n, err := r.src.Read(p[:limit])
	r.remaining -= int64(n)
	if err != nil {
		// an exhausted source ends the body early
		r.err = err
	}
	return n, err
}

// discard emulates a seek by reading up to the range offset one chunk
// at a time, so that skipping far into a large source does not buffer
// more than one chunk.
func (r *chunkReader) discard() error {
	if r.skip <= 0 {
		return nil
	}
	buf := make([]byte, r.chunk)
	for r.skip > 0 {
		n := r.chunk
		if n > r.skip {
			n = r.skip
		}
		read, err := io.ReadFull(r.src, buf[:n])
		r.skip -= int64(read)
		if err != nil {
			if err == io.ErrUnexpectedEOF {
				err = io.EOF
			}
			return err
		}
	}
	return nil
}
