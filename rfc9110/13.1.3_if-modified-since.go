package rfc9110

import (
	"net/http"
	"time"
)

// §  13.1.3.  If-Modified-Since
// §
// §     The "If-Modified-Since" header field makes a GET or HEAD request
// §     method conditional on the selected representation's modification date
// §     being more recent than the date provided in the field value.
// §     Transfer of the selected representation's data is avoided if that
// §     data has not changed.
// §
// §       If-Modified-Since = HTTP-date
// §
// §     An example of the field is as follows:
// §
// §       If-Modified-Since: Sat, 29 Oct 1994 19:43:31 GMT
// §
// §     A recipient MUST ignore If-Modified-Since if the request contains an
// §     If-None-Match header field; the condition in If-None-Match is
// §     considered to be a more accurate replacement for the condition in
// §     If-Modified-Since, and the two are only combined for the sake of
// §     interoperating with older intermediaries that might not implement
// §     If-None-Match.
// §
// §     A recipient MUST ignore the If-Modified-Since header field if the
// §     received field value is not a valid HTTP-date, the field value has
// §     more than one member, or if the request method is neither GET nor
// §     HEAD.

// Unmodified evaluates the If-Modified-Since condition for the given
// field value against the representation's modification time. It
// returns true when the condition fails, i.e. when the representation
// has not been modified since the date in the field value and a
// 304 (Not Modified) response is in order.
//
// An empty or unparsable field value means the condition is ignored,
// per the standard, and false is returned.
func Unmodified(ifModifiedSince string, modtime time.Time) bool {
	if ifModifiedSince == "" {
		return false
	}
	date, err := http.ParseTime(ifModifiedSince)
	if err != nil {
		return false
	}
	// §     1.  If the selected representation's last modification date is
	// §         earlier or equal to the date provided in the field value, the
	// §         condition is false.
	// §
	// §     2.  Otherwise, the condition is true.
	//
	// HTTP-dates carry one-second resolution, so sub-second precision
	// in the modification time must not defeat the comparison.
	return !modtime.Truncate(time.Second).After(date)
}
