// Package byteserve constructs HTTP responses for arbitrary readable
// byte sources: in-memory buffers, open files, archive members, or
// anything else implementing io.Reader. It handles content
// negotiation, timestamp-based conditional requests (304), and
// single-range byte serving (206/416) for both seekable and
// non-seekable sources.
//
// The package produces a plain Result value and has no opinion about
// the host framework; Result.Write is the adapter for net/http.
package byteserve

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	contenttype "github.com/byteserve/byteserve/pkg/content-type"
	rangestream "github.com/byteserve/byteserve/pkg/range-stream"
	"github.com/byteserve/byteserve/rfc9110"

	"github.com/rs/zerolog"
)

type Config struct {
	// ContentTypes is the extension lookup table for deriving
	// Content-Type and Content-Encoding. The default table is used if
	// nil. The table must not be mutated after this point.
	ContentTypes *contenttype.Table
	// Streamer produces the body for ranged responses. Chunked
	// streaming is the default, since it works for any source; use
	// rangestream.SeekStreamer when sources can seek.
	Streamer rangestream.Streamer
	// Logger to use. The global zerolog logger is used if nil.
	Logger *zerolog.Logger
}

// Sender builds responses. A single Sender serves any number of
// concurrent requests: all per-request state lives in the arguments
// and result of Send.
type Sender struct {
	table    *contenttype.Table
	streamer rangestream.Streamer
	log      zerolog.Logger
}

// New initializes a Sender from the given config.
func New(config Config) *Sender {
	var logger zerolog.Logger
	if config.Logger == nil {
		logger = zerolog.New(zerolog.NewConsoleWriter())
	} else {
		logger = *config.Logger
	}
	table := config.ContentTypes
	if table == nil {
		table = contenttype.Default()
	}
	streamer := config.Streamer
	if streamer == nil {
		streamer = rangestream.ChunkStreamer{}
	}
	return &Sender{
		table:    table,
		streamer: streamer,
		log:      logger,
	}
}

// Send builds the response for one request. src is the byte source for
// the body; it must be exclusive to this response, is read only when
// the result body is drained, and closing it stays with the caller.
//
// Send never fails: malformed request headers map to the corresponding
// response outcome (416 for a bad Range, an ignored condition for a
// bad If-Modified-Since). A negative size other than SizeUnknown is a
// programmer error and panics.
func (s *Sender) Send(src io.Reader, meta Metadata, req Request) Result {
	if meta.Size < 0 && meta.Size != SizeUnknown {
		panic(fmt.Sprintf("byteserve: negative content size %d", meta.Size))
	}

	resolved := s.table.Resolve(meta.Filename, meta.Ctype, meta.Charset, meta.Attachment)
	header := make(http.Header)
	if resolved.ContentType != "" {
		header.Set("Content-Type", resolved.ContentType)
	}
	if resolved.ContentEncoding != "" {
		header.Set("Content-Encoding", resolved.ContentEncoding)
	}
	if resolved.ContentDisposition != "" {
		header.Set("Content-Disposition", resolved.ContentDisposition)
	}

	if !meta.Timestamp.IsZero() {
		header.Set("Last-Modified", rfc9110.LastModified(meta.Timestamp))
		if rfc9110.Unmodified(req.IfModifiedSince, meta.Timestamp) {
			// no body and no Content-Length on a 304
			s.log.Trace().Str("filename", meta.Filename).Msg("Not modified")
			return Result{Status: http.StatusNotModified, Header: header}
		}
	}

	if meta.Size == SizeUnknown {
		// a range cannot be validated against an unknown total, so
		// any Range header is ignored and the full content served
		return Result{Status: http.StatusOK, Header: header, Body: src}
	}
	header.Set("Accept-Ranges", rfc9110.AcceptRangesBytes)

	if req.Range == "" {
		header.Set("Content-Length", strconv.FormatInt(meta.Size, 10))
		return Result{Status: http.StatusOK, Header: header, Body: src}
	}

	rng, ok := rfc9110.ParseRange(req.Range, meta.Size)
	if !ok {
		s.log.Debug().Str("range", req.Range).Int64("size", meta.Size).Msg("Rejecting range")
		reject := make(http.Header)
		reject.Set("Content-Range", rfc9110.UnsatisfiedRange(meta.Size))
		return Result{Status: http.StatusRequestedRangeNotSatisfiable, Header: reject}
	}

	header.Set("Content-Range", rng.ContentRange())
	header.Set("Content-Length", strconv.FormatInt(rng.Length, 10))
	return Result{
		Status: http.StatusPartialContent,
		Header: header,
		Body:   s.streamer.Stream(src, rng.Offset, rng.Length),
	}
}
