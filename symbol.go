package dmtx

import (
	"github.com/go-dmtx/dmtx/bitutil"
	"github.com/go-dmtx/dmtx/encmode"
	"github.com/go-dmtx/dmtx/symbolsize"
)

// DataMatrix is the result of a successful Encode: the chosen symbol size,
// the full codeword vector (data codewords followed by interleaved
// error-correction codewords), the data-codeword prefix alone, and the
// rendered module bitmap (no quiet zone — renderers must reserve one
// module of border themselves).
type DataMatrix struct {
	Size      symbolsize.Descriptor
	Codewords []byte
	Data      []byte
	Bitmap    *bitutil.BitMatrix
}

// Decoded is the result of a successful Decode: the raw decoded bytes
// (pre-ECI, as the mode codecs produced them), the macro codeword that
// prefixed the message (0 if none), and any ECI sections recorded along
// the way.
type Decoded struct {
	Bytes []byte
	Macro byte
	ECIs  []ECISection
}

// ECISection marks the byte offset in Decoded.Bytes at which the given
// ECI designator takes effect.
type ECISection = encmode.ECISection
