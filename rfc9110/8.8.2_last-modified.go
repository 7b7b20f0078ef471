package rfc9110

import (
	"net/http"
	"time"
)

// §  8.8.2.  Last-Modified
// §
// §     The "Last-Modified" header field in a response provides a timestamp
// §     indicating the date and time at which the origin server believes the
// §     selected representation was last modified, as determined at the
// §     conclusion of handling the request.
// §
// §       Last-Modified = HTTP-date
// §
// §     An example of its use is
// §
// §       Last-Modified: Tue, 15 Nov 1994 12:45:26 GMT

// LastModified formats the given modification time as an HTTP-date for
// use as a Last-Modified field value. HTTP-dates are always in GMT.
func LastModified(modtime time.Time) string {
	return modtime.UTC().Format(http.TimeFormat)
}
