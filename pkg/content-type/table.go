// Package contenttype resolves the content negotiation headers of a
// response (Content-Type, Content-Encoding, Content-Disposition) from
// caller-supplied file metadata and an extension lookup table.
package contenttype

import (
	"fmt"
	"path"
	"strings"
)

// DefaultCharset is appended to text types when the caller does not
// specify a charset.
const DefaultCharset = "UTF-8"

// Headers holds the resolved content negotiation headers. Empty fields
// are omitted from the response.
type Headers struct {
	ContentType        string
	ContentEncoding    string
	ContentDisposition string
}

// Table maps filename extensions (with the leading dot) to MIME types
// and content encodings. A table is meant to be built once at startup
// and never mutated afterwards; under that condition lookups are safe
// for concurrent use without synchronization.
type Table struct {
	types     map[string]string
	encodings map[string]string
}

// NewTable creates a table from the given extension maps.
func NewTable(types, encodings map[string]string) *Table {
	t := &Table{
		types:     make(map[string]string, len(types)),
		encodings: make(map[string]string, len(encodings)),
	}
	for ext, mimeType := range types {
		t.types[ext] = mimeType
	}
	for ext, encoding := range encodings {
		t.encodings[ext] = encoding
	}
	return t
}

// Extend returns a new table with the given extension maps added on
// top of the receiver. Existing entries are overridden. The receiver
// is left untouched.
func (t *Table) Extend(types, encodings map[string]string) *Table {
	extended := NewTable(t.types, t.encodings)
	for ext, mimeType := range types {
		extended.types[ext] = mimeType
	}
	for ext, encoding := range encodings {
		extended.encodings[ext] = encoding
	}
	return extended
}

// Default returns a table with the common web types and compression
// encodings registered.
func Default() *Table {
	return NewTable(map[string]string{
		".html":  "text/html",
		".htm":   "text/html",
		".txt":   "text/plain",
		".md":    "text/markdown",
		".css":   "text/css",
		".csv":   "text/csv",
		".xml":   "text/xml",
		".js":    "application/javascript",
		".json":  "application/json",
		".pdf":   "application/pdf",
		".zip":   "application/zip",
		".tar":   "application/x-tar",
		".wasm":  "application/wasm",
		".png":   "image/png",
		".jpg":   "image/jpeg",
		".jpeg":  "image/jpeg",
		".gif":   "image/gif",
		".svg":   "image/svg+xml",
		".webp":  "image/webp",
		".ico":   "image/x-icon",
		".mp3":   "audio/mpeg",
		".ogg":   "audio/ogg",
		".mp4":   "video/mp4",
		".webm":  "video/webm",
		".woff":  "font/woff",
		".woff2": "font/woff2",
	}, map[string]string{
		".gz":  "gzip",
		".bz2": "bzip2",
		".br":  "br",
		".xz":  "xz",
		".zst": "zstd",
	})
}

// Resolve derives the content headers for a response.
//
// An explicit content type is used as the Content-Type verbatim and
// disables derivation from the filename entirely, including the
// charset parameter and the content encoding. Otherwise the filename's
// recognized trailing extensions are inspected rightmost first:
// compression extensions become the Content-Encoding, and the
// innermost recognized extension selects the MIME type. Text types get
// a charset parameter appended. Unknown extensions resolve to nothing;
// Resolve never fails.
func (t *Table) Resolve(filename, explicitType, charset string, attachment bool) Headers {
	var h Headers
	if explicitType != "" {
		h.ContentType = explicitType
	} else if filename != "" {
		mimeType, encoding := t.lookup(filename)
		h.ContentEncoding = encoding
		if mimeType != "" {
			if strings.HasPrefix(mimeType, "text/") {
				if charset == "" {
					charset = DefaultCharset
				}
				mimeType += "; charset=" + charset
			}
			h.ContentType = mimeType
		}
	}
	if attachment && filename != "" {
		h.ContentDisposition = fmt.Sprintf(`attachment; filename="%s"`, sanitizeFilename(filename))
	}
	return h
}

// lookup strips recognized trailing extensions rightmost first. Every
// compression extension on the way in contributes the encoding; the
// first non-encoding extension decides the type and ends the walk.
func (t *Table) lookup(filename string) (mimeType, encoding string) {
	rest := filename
	for {
		ext := path.Ext(rest)
		if ext == "" {
			return "", encoding
		}
		if enc, ok := t.encodings[ext]; ok {
			encoding = enc
			rest = strings.TrimSuffix(rest, ext)
			continue
		}
		return t.types[ext], encoding
	}
}

// sanitizeFilename prevents header injection through newlines and
// quotes in the Content-Disposition filename.
func sanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\n", "")
	filename = strings.ReplaceAll(filename, "\r", "")
	return strings.ReplaceAll(filename, `"`, "'")
}
