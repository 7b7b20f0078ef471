// Package rfc9110 implements the parts of RFC 9110 (HTTP Semantics)
// needed for byte serving and timestamp-based conditional requests:
// Last-Modified (section 8.8.2), If-Modified-Since (section 13.1.3),
// byte ranges (section 14.1.2) and Content-Range (section 14.4).
//
// The relevant standard text is quoted in "§" comments next to the
// code implementing it. Files are named after the section they cover.
package rfc9110
