package rfc9110

import (
	"strconv"
	"strings"
)

// §  14.1.2.  Byte Ranges
// §
// §     The "bytes" range unit is used to express subranges of a
// §     representation data's octet sequence.  Each byte range request can
// §     specify a single range of bytes or a set of ranges within a single
// §     representation.
// §
// §       ranges-specifier = range-unit "=" range-set
// §       range-set        = 1#range-spec
// §       range-spec       = int-range
// §                        / suffix-range
// §                        / other-range
// §
// §     ...
// §
// §       int-range     = first-pos "-" [ last-pos ]
// §       first-pos     = 1*DIGIT
// §       last-pos      = 1*DIGIT
// §
// §     ...
// §
// §       suffix-range  = "-" suffix-length
// §       suffix-length = 1*DIGIT

// Range is a validated contiguous byte span of a representation whose
// complete length is Total: Offset is the position of the first byte
// of the span and Length the number of bytes in it.
type Range struct {
	Offset int64
	Length int64
	Total  int64
}

// ParseRange parses a Range field value against the known complete
// length of the representation. Only a set with a single range-spec is
// supported, i.e. "bytes=a-b", "bytes=a-" and "bytes=-n". It returns
// false for any other form, as well as for ranges that are not
// satisfiable for the given size; both cases call for a
// 416 (Range Not Satisfiable) response.
func ParseRange(header string, size int64) (Range, bool) {
	if !strings.HasPrefix(header, "bytes=") {
		return Range{}, false
	}
	spec := strings.TrimSpace(strings.TrimPrefix(header, "bytes="))
	if strings.Contains(spec, ",") {
		// multiple range-specs are not supported
		return Range{}, false
	}
	dash := strings.Index(spec, "-")
	if dash < 0 {
		return Range{}, false
	}
	first, last := spec[:dash], spec[dash+1:]

	r := Range{Total: size}
	switch {
	case first == "" && last != "":
		// §     A client can request the last N bytes of the selected
		// §     representation using a suffix-range.
		n, ok := parsePos(last)
		if !ok {
			return Range{}, false
		}
		r.Offset = size - n
		if r.Offset < 0 {
			r.Offset = 0
		}
		r.Length = size - r.Offset
	case first != "" && last == "":
		// §     If the last-pos value is absent, ... the byte range is
		// §     interpreted as the remainder of the representation
		start, ok := parsePos(first)
		if !ok {
			return Range{}, false
		}
		r.Offset = start
		r.Length = size - start
	case first != "" && last != "":
		start, ok := parsePos(first)
		if !ok {
			return Range{}, false
		}
		end, ok := parsePos(last)
		if !ok {
			return Range{}, false
		}
		r.Offset = start
		r.Length = end - start + 1
	default:
		return Range{}, false
	}
	return r, r.satisfiable()
}

// §     A byte-range-spec is invalid if the last-pos value is present and
// §     less than the first-pos.
// §
// §     ...  A valid bytes range-spec is
// §     satisfiable if it is either:
// §
// §     *  an int-range with a first-pos that is less than the current
// §        length of the selected representation or
// §
// §     *  a suffix-range with a non-zero suffix-length.
//
// The invariant is offset >= 0, length > 0, offset+length <= total.
// The last part is checked as length <= total-offset: positions near
// the int64 maximum would wrap the sum and slip past a direct
// comparison.
func (r Range) satisfiable() bool {
	return r.Offset >= 0 && r.Offset < r.Total &&
		r.Length > 0 && r.Length <= r.Total-r.Offset
}

// parsePos parses first-pos, last-pos, and suffix-length values, which
// are all 1*DIGIT (no sign allowed).
func parsePos(s string) (int64, bool) {
	n, err := strconv.ParseUint(s, 10, 63)
	if err != nil {
		return 0, false
	}
	return int64(n), true
}
