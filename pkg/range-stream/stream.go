// Package rangestream turns a readable byte source and a byte range
// into a response body yielding exactly the bytes of that range.
//
// Two strategies are provided: ChunkStreamer works on forward-only
// sources by reading and discarding up to the range offset, and
// SeekStreamer positions seekable sources directly. Both deliver bytes
// lazily as the consumer drains the body, in source order, and stop
// early if the source is exhausted before the range is complete.
package rangestream

import "io"

// DefaultChunkSize is the read size used when skipping to the range
// offset on a source that cannot seek, 1 MiB unless configured
// otherwise on the streamer.
const DefaultChunkSize = 1 << 20

// Streamer produces a response body restricted to the byte range
// [offset, offset+length) of the given source. A fully drained body
// yields exactly the bytes of the source in that span, in order; it
// falls short only when the source itself is exhausted first. The
// source must be exclusive to the returned body until the body is
// fully drained or abandoned.
type Streamer interface {
	Stream(src io.Reader, offset, length int64) io.Reader
}
