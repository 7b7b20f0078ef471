package rfc9110

import "fmt"

// §  14.4.  Content-Range
// §
// §     The "Content-Range" header field is sent in a single part of a
// §     multipart 206 (Partial Content) response to indicate the partial
// §     range of the selected representation enclosed as the message
// §     content, and in each part of a multipart 206 response to indicate
// §     the range enclosed in each body part, and in 416 (Range Not
// §     Satisfiable) responses to provide information about the selected
// §     representation.
// §
// §       Content-Range       = range-unit SP
// §                             ( range-resp / unsatisfied-range )
// §
// §       range-resp          = incl-range "/" ( complete-length / "*" )
// §       incl-range          = first-pos "-" last-pos
// §       unsatisfied-range   = "*/" complete-length
// §
// §       complete-length     = 1*DIGIT

// ContentRange formats the Content-Range field value sent with a
// 206 (Partial Content) response. The last-pos is inclusive.
func (r Range) ContentRange() string {
	return fmt.Sprintf("bytes %d-%d/%d", r.Offset, r.Offset+r.Length-1, r.Total)
}

// §     A server generating a 416 (Range Not Satisfiable) response to a
// §     byte-range request SHOULD send a Content-Range header field with an
// §     unsatisfied-range value, as in the following example:
// §
// §       Content-Range: bytes */1234

// UnsatisfiedRange formats the Content-Range field value sent with a
// 416 (Range Not Satisfiable) response for a representation of the
// given complete length.
func UnsatisfiedRange(size int64) string {
	return fmt.Sprintf("bytes */%d", size)
}
