package encmode

// IsNativeX12 reports whether ch belongs to X12's six-character native
// subset {CR, *, >, space, 0-9, A-Z}.
func IsNativeX12(ch byte) bool {
	return ch == 13 || ch == 42 || ch == 62 || ch == ' ' ||
		(ch >= '0' && ch <= '9') || (ch >= 'A' && ch <= 'Z')
}

func x12Val(ch byte) byte {
	switch {
	case ch == 13:
		return 0
	case ch == 42:
		return 1
	case ch == 62:
		return 2
	case ch == ' ':
		return 3
	case ch >= '0' && ch <= '9':
		return ch - '0' + 4
	default: // 'A'..='Z'
		return ch - 'A' + 14
	}
}

func x12Char(v byte) (byte, bool) {
	switch {
	case v == 0:
		return 13, true
	case v == 1:
		return 42, true
	case v == 2:
		return 62, true
	case v == 3:
		return ' ', true
	case v >= 4 && v <= 13:
		return '0' + (v - 4), true
	case v >= 14 && v <= 39:
		return 'A' + (v - 14), true
	default:
		return 0, false
	}
}

// EncodeX12 encodes input in X12 mode (ISO/IEC 16022 §5.2.7).
func EncodeX12(ctx *Context) {
	switched := false
	for ctx.CharactersLeft() >= 3 {
		a, _ := ctx.Eat()
		b, _ := ctx.Eat()
		c, _ := ctx.Eat()
		writeThreeValues(ctx, x12Val(a), x12Val(b), x12Val(c))
		if ctx.MaybeSwitchMode(0) {
			switched = true
			break
		}
	}

	// ISO/IEC 16022 §5.2.7.2: a single ASCII-encodable character left and
	// exactly one symbol word of room remaining may finish without UNLATCH.
	oneASCIIRemainMaybe := ctx.CharactersLeft() <= 2 && asciiEncodingSize(ctx.Rest()) == 1
	if oneASCIIRemainMaybe {
		if left, ok := ctx.SymbolSizeLeft(1); ok && left == 0 {
			ctx.SetMode(Ascii)
			return
		}
	}
	if left, ok := ctx.SymbolSizeLeft(0); ctx.HasMoreCharacters() || (ok && left > 0) {
		if !switched {
			ctx.SetMode(Ascii)
		}
		ctx.Push(Unlatch)
	}
}

// DecodeX12 decodes codewords in X12 mode, appending decoded bytes to out
// and returning the remaining (unconsumed) data.
func DecodeX12(data []byte, out *[]byte) ([]byte, error) {
	for len(data) > 1 {
		first := data[0]
		if first == Unlatch {
			data = data[1:]
			break
		}
		c1, c2, c3 := decodeC40Tuple(first, data[1])
		data = data[2:]
		for _, v := range [3]byte{c1, c2, c3} {
			ch, ok := x12Char(v)
			if !ok {
				return nil, errUnexpectedCharacter
			}
			*out = append(*out, ch)
		}
	}
	if len(data) > 0 && data[0] == Unlatch {
		data = data[1:]
	}
	return data, nil
}
