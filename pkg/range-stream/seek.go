package rangestream

import "io"

// SeekStreamer streams a byte range from a source that supports random
// positioning, such as an open file or an in-memory reader. The source
// is positioned at the range offset when Stream is called, and body
// reads are bounded so that no bytes at or past offset+length are ever
// returned; after that the body reports io.EOF. Transports that look
// for a file-like body can use the positioned source directly.
//
// A source that turns out not to be seekable falls back to chunked
// discarding.
type SeekStreamer struct {
	// ChunkSize is only used for the non-seekable fallback.
	ChunkSize int64
}

func (s SeekStreamer) Stream(src io.Reader, offset, length int64) io.Reader {
	seeker, ok := src.(io.Seeker)
	if !ok {
		return ChunkStreamer{ChunkSize: s.ChunkSize}.Stream(src, offset, length)
	}
	if _, err := seeker.Seek(offset, io.SeekStart); err != nil {
		return errReader{err}
	}
	return io.LimitReader(src, length)
}

// errReader surfaces a failed seek on the first body read, since
// Stream itself has no error return.
type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) {
	return 0, r.err
}
