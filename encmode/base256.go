package encmode

// randomize255 applies the Base256 "255-state" randomizer: the byte at
// absolute codeword position pos (1-based) is replaced by
// (ch + 149*pos mod 255 + 1) mod 256, per ISO/IEC 16022 §5.2.9.2.
func randomize255(ch byte, pos int) byte {
	pseudoRandom := uint16((149*pos)%255 + 1)
	tmp := uint16(ch) + pseudoRandom
	if tmp <= 255 {
		return byte(tmp)
	}
	return byte(tmp - 256)
}

func derandomize255(ch byte, pos int) byte {
	pseudoRandom := int((149*pos)%255 + 1)
	tmp := int(ch) - pseudoRandom
	if tmp >= 0 {
		return byte(tmp)
	}
	return byte(tmp + 256)
}

// writeBase256Length finalizes the length header written at ctx.codewords
// index start, and randomizes every byte from start onward.
func writeBase256Length(ctx *Context, start int) {
	spaceLeft, ok := ctx.SymbolSizeLeft(0)
	if !ok {
		return
	}
	dataWritten := len(ctx.Codewords()) - start
	if ctx.HasMoreCharacters() || spaceLeft > 0 {
		dataCount := dataWritten - 1
		switch {
		case dataCount <= 249:
			ctx.Replace(start, byte(dataCount))
		case dataCount <= 1555:
			ctx.Replace(start, byte(dataCount/250+249))
			ctx.Insert(start+1, byte(dataCount%250))
			dataWritten++
		default:
			panic("encmode: base256 data too long, this is an encoding-plan bug")
		}
	}
	for i := 0; i < dataWritten; i++ {
		ch := ctx.Codewords()[start+i]
		ctx.Replace(start+i, randomize255(ch, start+i+1))
	}
}

// EncodeBase256 encodes input in Base256 mode (ISO/IEC 16022 §5.2.9): a
// length header followed by the raw bytes, all randomized in place once
// the run's extent is known.
func EncodeBase256(ctx *Context) {
	start := len(ctx.Codewords())
	ctx.Push(0) // length placeholder

	for {
		if ch, ok := ctx.Eat(); ok {
			ctx.Push(ch)
		}
		dataWritten := len(ctx.Codewords()) - start - 1
		if !ctx.HasMoreCharacters() || ctx.MaybeSwitchMode(dataWritten) {
			writeBase256Length(ctx, start)
			if !ctx.HasMoreCharacters() {
				ctx.SetMode(Ascii)
			}
			return
		}
	}
}

// DecodeBase256 decodes codewords in Base256 mode, appending decoded bytes
// to out and returning the remaining (unconsumed) data. pos0 is the
// 1-based absolute codeword position of data[0], needed for derandomizing.
func DecodeBase256(data []byte, pos0 int, out *[]byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, errUnexpectedEnd
	}
	ch1 := derandomize255(data[0], pos0)
	data = data[1:]
	pos := pos0 + 1

	var length int
	switch {
	case ch1 == 0:
		length = len(data)
	case ch1 < 250:
		length = int(ch1)
	default:
		if len(data) == 0 {
			return nil, errUnexpectedEnd
		}
		ch2 := derandomize255(data[0], pos)
		data = data[1:]
		pos++
		length = 250*(int(ch1)-249) + int(ch2)
	}

	if length > len(data) {
		return nil, errUnexpectedEnd
	}
	for i := 0; i < length; i++ {
		*out = append(*out, derandomize255(data[i], pos+i))
	}
	return data[length:], nil
}
