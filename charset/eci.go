// Package charset provides the Extended Channel Interpretation mappings a
// Data Matrix symbol can switch into mid-stream, and the byte<->rune
// transcoding for each.
//
// Grounded on zxinggo's charset.ECI table (the ECI value/name catalog), cut
// down to the subset named in ISO/IEC 16022 Annex B for Data Matrix framing,
// and rewired from java.nio-style named encodings onto
// golang.org/x/text/encoding, the way the rest of the x/text-consuming
// examples in the corpus do their charmap work.
package charset

import (
	"errors"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// ErrUnsupportedECI is returned for an ECI value outside the set a Data
// Matrix symbol is allowed to switch to.
var ErrUnsupportedECI = errors.New("charset: unsupported ECI value")

// ECI names one Extended Channel Interpretation: the numeric value carried
// in the symbol's ECI codeword, and the encoding.Encoding that transcodes
// its byte stream to and from UTF-8.
type ECI struct {
	Value    int
	Name     string
	Encoding encoding.Encoding
}

// The six ECIs a Data Matrix symbol may switch into. 0 and 3 are both
// ISO-8859-1 (0 is the implicit default channel; 3 is the explicit form),
// so both values resolve to the same ECI.
var (
	ECIISO8859_1  = &ECI{3, "ISO8859_1", charmap.ISO8859_1}
	ECIISO8859_7  = &ECI{9, "ISO8859_7", charmap.ISO8859_7}
	ECIISO8859_9  = &ECI{11, "ISO8859_9", charmap.ISO8859_9}
	ECIISO8859_11 = &ECI{13, "ISO8859_11", charmap.Windows874} // ISO-8859-11 has no stdlib charmap; Windows-874 agrees on the Thai range it shares
	ECIUTF8       = &ECI{26, "UTF8", unicode.UTF8}
	ECIASCII      = &ECI{27, "ASCII", encoding.Replacement} // placeholder, replaced in init with a strict 7-bit codec
)

var valueToECI map[int]*ECI

func init() {
	ECIASCII.Encoding = asciiEncoding{}
	valueToECI = map[int]*ECI{
		0:  ECIISO8859_1,
		3:  ECIISO8859_1,
		9:  ECIISO8859_7,
		11: ECIISO8859_9,
		13: ECIISO8859_11,
		26: ECIUTF8,
		27: ECIASCII,
	}
}

// ByValue returns the ECI named by value, or ErrUnsupportedECI if the
// symbol framing named something outside Annex B's Data Matrix subset.
func ByValue(value int) (*ECI, error) {
	eci, ok := valueToECI[value]
	if !ok {
		return nil, ErrUnsupportedECI
	}
	return eci, nil
}

// Decode transcodes data (in the ECI's native byte encoding) to a Go string.
func (e *ECI) Decode(data []byte) (string, error) {
	out, err := e.Encoding.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Encode transcodes s into the ECI's native byte encoding.
func (e *ECI) Encode(s string) ([]byte, error) {
	return e.Encoding.NewEncoder().Bytes([]byte(s))
}
