package encmode

import "bytes"

var (
	macro05Prefix = []byte("[)>\x1E05\x1D")
	macro06Prefix = []byte("[)>\x1E06\x1D")
	macroSuffix   = []byte("\x1E\x04")
)

// DetectMacro checks whether data is a complete ISO/IEC 16022 Annex E
// macro-05/06 envelope, returning the macro latch codeword (Macro05 or
// Macro06) and the inner substring to encode in its place.
func DetectMacro(data []byte) (codeword byte, inner []byte, ok bool) {
	switch {
	case len(data) >= len(macro05Prefix)+len(macroSuffix) &&
		bytes.HasPrefix(data, macro05Prefix) && bytes.HasSuffix(data, macroSuffix):
		return Macro05, data[len(macro05Prefix) : len(data)-len(macroSuffix)], true
	case len(data) >= len(macro06Prefix)+len(macroSuffix) &&
		bytes.HasPrefix(data, macro06Prefix) && bytes.HasSuffix(data, macroSuffix):
		return Macro06, data[len(macro06Prefix) : len(data)-len(macroSuffix)], true
	default:
		return 0, nil, false
	}
}

// ExpandMacro reconstructs the full message a macro codeword and its
// decoded inner bytes stand for.
func ExpandMacro(codeword byte, inner []byte) ([]byte, bool) {
	var prefix []byte
	switch codeword {
	case Macro05:
		prefix = macro05Prefix
	case Macro06:
		prefix = macro06Prefix
	default:
		return nil, false
	}
	out := make([]byte, 0, len(prefix)+len(inner)+len(macroSuffix))
	out = append(out, prefix...)
	out = append(out, inner...)
	out = append(out, macroSuffix...)
	return out, true
}
