package charset

import (
	"errors"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// errNonASCII is returned by the strict 7-bit codec when a byte or rune
// falls outside US-ASCII.
var errNonASCII = errors.New("charset: non-ASCII byte in US-ASCII channel")

// asciiEncoding is a strict 7-bit US-ASCII codec: golang.org/x/text ships
// charmaps for every ISO-8859 page but no standalone ASCII one, since plain
// ASCII is a subset every charmap already decodes correctly. Data Matrix's
// ECI 27 wants the strict form, rejecting bytes/runes >= 0x80 outright
// rather than silently passing them through as Latin-1 would.
type asciiEncoding struct{}

func (asciiEncoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: asciiDecoder{}}
}

func (asciiEncoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: asciiEncoder{}}
}

type asciiDecoder struct{ transform.NopResetter }

func (asciiDecoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		b := src[nSrc]
		if b >= 0x80 {
			return nDst, nSrc, errNonASCII
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = b
		nDst++
		nSrc++
	}
	return nDst, nSrc, nil
}

type asciiEncoder struct{ transform.NopResetter }

func (asciiEncoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		b := src[nSrc]
		if b >= 0x80 {
			return nDst, nSrc, errNonASCII
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = b
		nDst++
		nSrc++
	}
	return nDst, nSrc, nil
}
