package byteserve

import "net/http"

// Request carries the client request header values that response
// construction consumes. Only these two headers influence the result.
type Request struct {
	// Range header value, e.g. "bytes=100-199". Only the single-range
	// form is supported.
	Range string
	// IfModifiedSince header value, an HTTP-date.
	IfModifiedSince string
}

// FromRequest extracts the consumed header values from an
// http.Request.
func FromRequest(r *http.Request) Request {
	return Request{
		Range:           r.Header.Get("Range"),
		IfModifiedSince: r.Header.Get("If-Modified-Since"),
	}
}
