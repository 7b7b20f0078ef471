package rfc9110

// §  14.3.  Accept-Ranges
// §
// §     The "Accept-Ranges" field in a response indicates whether an upstream
// §     server supports range requests for the target resource.
// §
// §       Accept-Ranges     = acceptable-ranges
// §       acceptable-ranges = 1#range-unit
// §
// §     For example, a server that supports byte-range requests (Section
// §     14.1.2) can send the field
// §
// §       Accept-Ranges: bytes

// AcceptRangesBytes is the Accept-Ranges field value advertising
// support for byte-range requests.
const AcceptRangesBytes = "bytes"
