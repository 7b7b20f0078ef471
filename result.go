package byteserve

import (
	"io"
	"net/http"
)

// Result is a constructed response: status code, response headers, and
// the body to send. Body is nil for responses without one (304 and
// 416). The body is pull-based; no bytes are read from the underlying
// source until the consumer starts draining it.
type Result struct {
	Status int
	Header http.Header
	Body   io.Reader
}

// Write sends the result over the given http.ResponseWriter. Closing
// the underlying source remains the caller's responsibility, also when
// the client goes away before the body is fully written.
func (res Result) Write(w http.ResponseWriter) error {
	copyHeadersTo(w.Header(), res.Header)
	w.WriteHeader(res.Status)
	if res.Body == nil {
		return nil
	}
	_, err := io.Copy(w, res.Body)
	return err
}

// copyHeadersTo copies the headers from one http.Header to another.
func copyHeadersTo(dst, src http.Header) {
	for name, values := range src {
		for _, value := range values {
			dst.Add(name, value)
		}
	}
}
