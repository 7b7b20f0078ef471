package byteserve

import "time"

// SizeUnknown as the Metadata size means the total size of the source
// is not known up front. Range requests cannot be validated against an
// unknown total and are ignored in that case.
const SizeUnknown int64 = -1

// Metadata describes the byte source of one response. It is supplied
// by the caller, read during response construction, and never mutated.
type Metadata struct {
	// Ctype is an explicit content type. When set it is used as the
	// Content-Type verbatim and disables any derivation from Filename,
	// including the charset parameter and the content encoding.
	Ctype string
	// Filename is used only for deriving the content headers. It does
	// not have to exist on any filesystem.
	Filename string
	// Charset of text content. "UTF-8" is used if empty.
	Charset string
	// Size is the total size of the source in bytes, or SizeUnknown.
	// Any other negative value is a programmer error.
	Size int64
	// Timestamp is the last modification time of the content. The
	// zero value means unknown, in which case no Last-Modified header
	// is sent and conditional requests are not evaluated.
	Timestamp time.Time
	// Attachment requests a Content-Disposition header so that
	// browsers download the content instead of displaying it.
	Attachment bool
}
