package encmode

// C40 and Text share their packing format (three base-40-ish values per two
// codewords) and differ only in which byte maps to which value. This file
// implements both via a shared generic encoder/decoder parameterized by the
// base-set mapping.

const (
	shift1         = 0
	shift2         = 1
	shift3         = 2
	c40UpperShift  = 30
)

// shift2Table maps a shift-2 value (0..=26) to its punctuation byte; shared
// by C40 and Text.
var shift2Table = [...]byte{
	'!', '"', '#', '$', '%', '&', '\'', '(', ')', '*', '+', ',', '-', '.', '/',
	':', ';', '<', '=', '>', '?', '@', '[', '\\', ']', '^', '_',
}

// lowToC40 appends the C40 values for ch (0..=127) to buf.
func lowToC40(buf []byte, ch byte) []byte {
	switch {
	case ch == ' ':
		return append(buf, 3)
	case ch >= '0' && ch <= '9':
		return append(buf, ch-'0'+4)
	case ch >= 'A' && ch <= 'Z':
		return append(buf, ch-'A'+14)
	case ch <= 31:
		return append(buf, shift1, ch)
	case ch >= 33 && ch <= 47:
		return append(buf, shift2, ch-33)
	case ch >= 58 && ch <= 64:
		return append(buf, shift2, ch-58+15)
	case ch >= 91 && ch <= 95:
		return append(buf, shift2, ch-91+22)
	default: // 96..=127
		return append(buf, shift3, ch-96)
	}
}

func swapCase(ch byte) byte {
	switch {
	case ch >= 'A' && ch <= 'Z':
		return ch - 'A' + 'a'
	case ch >= 'a' && ch <= 'z':
		return ch - 'a' + 'A'
	default:
		return ch
	}
}

// lowToText appends the Text values for ch (0..=127) to buf.
func lowToText(buf []byte, ch byte) []byte {
	return lowToC40(buf, swapCase(ch))
}

func c40InBaseSet(ch byte) bool {
	return ch == ' ' || (ch >= '0' && ch <= '9') || (ch >= 'A' && ch <= 'Z')
}

func textInBaseSet(ch byte) bool { return c40InBaseSet(swapCase(ch)) }

// ValSizeC40 reports how many C40 values ch expands to; used by the mode
// planner's cost model.
func ValSizeC40(ch byte) int {
	switch {
	case c40InBaseSet(ch):
		return 1
	case ch <= 127:
		return 2
	default:
		return 2 + ValSizeC40(ch-128)
	}
}

// ValSizeText reports how many Text values ch expands to.
func ValSizeText(ch byte) int {
	switch {
	case textInBaseSet(ch):
		return 1
	case ch <= 127:
		return 2
	default:
		return 2 + ValSizeText(ch-128)
	}
}

// writeThreeValues packs three C40/Text/X12 values (0..=39) into two
// codewords, per ISO/IEC 16022 §5.2.5.
func writeThreeValues(ctx *Context, c1, c2, c3 byte) {
	enc := 1600*uint16(c1) + 40*uint16(c2) + uint16(c3) + 1
	ctx.Push(byte(enc >> 8))
	ctx.Push(byte(enc & 0xFF))
}

func toVals(buf []byte, ch byte, lowWrite func([]byte, byte) []byte) []byte {
	if ch <= 127 {
		return lowWrite(buf, ch)
	}
	buf = append(buf, shift2, c40UpperShift)
	return lowWrite(buf, ch-128)
}

// encodeC40Like drives the shared C40/Text encoding loop: buffer values
// three at a time, pack and flush whenever three accumulate, and hand the
// leftover buffer (0-2 values) to handleEndC40Like at end of data or on a
// planned mode switch.
func encodeC40Like(ctx *Context, lowWrite func([]byte, byte) []byte) {
	var buf []byte
	var lastCh byte
	for {
		ch, ok := ctx.Eat()
		if !ok {
			break
		}
		// exactly two ASCII digits left and buffer empty: finish with a
		// single ASCII codeword (maybe preceded by UNLATCH) instead.
		if len(buf) == 0 && isASCIIDigit(ch) {
			if rest := ctx.Rest(); len(rest) == 1 && isASCIIDigit(rest[0]) {
				ctx.Backup(1)
				break
			}
		}
		buf = toVals(buf, ch, lowWrite)
		lastCh = ch
		for len(buf) >= 3 {
			writeThreeValues(ctx, buf[0], buf[1], buf[2])
			buf = buf[3:]
		}
		if ctx.MaybeSwitchMode(len(buf)) {
			break
		}
	}
	handleEndC40Like(ctx, lastCh, buf)
}

func handleEndC40Like(ctx *Context, lastCh byte, buf []byte) {
	modeSwitch := ctx.HasMoreCharacters()
	if !ctx.HasMoreCharacters() {
		sizeLeft, ok := ctx.SymbolSizeLeft(len(buf))
		if !ok {
			return
		}
		switch {
		case sizeLeft+len(buf) == 2 && len(buf) == 2:
			writeThreeValues(ctx, buf[0], buf[1], shift1)
			return
		case sizeLeft+len(buf) == 2 && len(buf) == 1:
			ctx.Push(Unlatch)
			ctx.SetMode(Ascii)
			ctx.Backup(1)
			return
		case sizeLeft+len(buf) == 1 && len(buf) == 1:
			if asciiEncodingSize([]byte{lastCh}) == 1 {
				ctx.SetMode(Ascii)
				ctx.Backup(1)
				return
			}
		}
	}
	if len(buf) > 0 {
		buf = append(buf, shift2)
		if len(buf) == 2 {
			buf = append(buf, c40UpperShift)
		}
		writeThreeValues(ctx, buf[0], buf[1], buf[2])
		if !modeSwitch {
			ctx.SetMode(Ascii)
		}
	}
	charsLeft := ctx.CharactersLeft()
	if charsLeft > 0 {
		if charsLeft == 2 && twoDigitsComing(ctx.Rest()) {
			spaceLeft, ok := ctx.SymbolSizeLeft(1)
			if !ok {
				return
			}
			ctx.SetMode(Ascii)
			if spaceLeft >= 1 {
				ctx.Push(Unlatch)
			}
			return
		}
		ctx.Push(Unlatch)
	} else if left, ok := ctx.SymbolSizeLeft(0); ok && left > 0 {
		ctx.Push(Unlatch)
		if !modeSwitch {
			ctx.SetMode(Ascii)
		}
	}
}

// EncodeC40 encodes input in C40 mode (ISO/IEC 16022 §5.2.5).
func EncodeC40(ctx *Context) { encodeC40Like(ctx, lowToC40) }

// EncodeText encodes input in Text mode (ISO/IEC 16022 §5.2.6).
func EncodeText(ctx *Context) { encodeC40Like(ctx, lowToText) }

// decodeC40Tuple unpacks two codewords into three 0..=39 values.
func decodeC40Tuple(a, b byte) (c1, c2, c3 byte) {
	full := (uint16(a)<<8 + uint16(b)) - 1
	tmp := full / 1600
	c1 = byte(tmp)
	full -= tmp * 1600
	tmp = full / 40
	c2 = byte(tmp)
	c3 = byte(full - tmp*40)
	return
}

// c40BaseTable and c40Shift3Table are the decode-side character sets for
// C40; textBaseTable and textShift3Table are Text's.
var (
	c40BaseTable   = [37]byte{' ', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9',
		'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N',
		'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z'}
	c40Shift3Table = [32]byte{'`', 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j',
		'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x',
		'y', 'z', '{', '|', '}', '~', 0x7f}

	textBaseTable   = [37]byte{' ', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9',
		'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n',
		'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z'}
	textShift3Table = [32]byte{'`', 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J',
		'K', 'L', 'M', 'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X',
		'Y', 'Z', '{', '|', '}', '~', 0x7f}
)

// decodeC40Like decodes codewords in C40 or Text mode, appending decoded
// bytes to out and returning the remaining (unconsumed) data. mapBase is
// indexed by (value-3) for base-set values 3..=39; mapShift3 is indexed by
// the shift-3 value 0..=31.
func decodeC40Like(data []byte, out *[]byte, mapBase *[37]byte, mapShift3 *[32]byte) ([]byte, error) {
	shift := 0
	upperShift := false
	for len(data) > 1 {
		first := data[0]
		if first == Unlatch {
			data = data[1:]
			break
		}
		c1, c2, c3 := decodeC40Tuple(first, data[1])
		data = data[2:]
		for _, ch := range [3]byte{c1, c2, c3} {
			switch shift {
			case 0:
				switch {
				case ch <= 2:
					shift = int(ch) + 1
				case ch >= 3 && ch <= 39:
					text := mapBase[ch-3]
					if upperShift {
						*out = append(*out, text+128)
						upperShift = false
					} else {
						*out = append(*out, text)
					}
				default:
					return nil, errUnexpectedCharacter
				}
			case 1:
				if ch > 31 {
					return nil, errUnexpectedCharacter
				}
				if upperShift {
					*out = append(*out, ch+128)
					upperShift = false
				} else {
					*out = append(*out, ch)
				}
				shift = 0
			case 2:
				switch {
				case ch <= 26:
					text := shift2Table[ch]
					if upperShift {
						*out = append(*out, text+128)
						upperShift = false
					} else {
						*out = append(*out, text)
					}
				case ch == 27:
					return nil, errUnexpectedCharacter // FNC1, not supported
				case ch == c40UpperShift:
					upperShift = true
				default:
					return nil, errUnexpectedCharacter
				}
				shift = 0
			default: // shift3
				if ch > 31 {
					return nil, errUnexpectedCharacter
				}
				text := mapShift3[ch]
				if upperShift {
					*out = append(*out, text+128)
					upperShift = false
				} else {
					*out = append(*out, text)
				}
				shift = 0
			}
		}
	}
	if len(data) > 0 && data[0] == Unlatch {
		data = data[1:]
	}
	return data, nil
}

// DecodeC40 decodes codewords in C40 mode, appending decoded bytes to out
// and returning the remaining (unconsumed) data.
func DecodeC40(data []byte, out *[]byte) ([]byte, error) {
	return decodeC40Like(data, out, &c40BaseTable, &c40Shift3Table)
}

// DecodeText decodes codewords in Text mode, appending decoded bytes to out
// and returning the remaining (unconsumed) data.
func DecodeText(data []byte, out *[]byte) ([]byte, error) {
	return decodeC40Like(data, out, &textBaseTable, &textShift3Table)
}
