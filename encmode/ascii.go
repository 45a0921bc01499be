package encmode

func isASCIIDigit(b byte) bool { return b >= '0' && b <= '9' }

func twoDigitsComing(rest []byte) bool {
	return len(rest) >= 2 && isASCIIDigit(rest[0]) && isASCIIDigit(rest[1])
}

// EncodeASCII consumes input in Ascii mode, per ISO/IEC 16022 §5.2.3:
// digit pairs pack into a single codeword, bytes 0-127 shift up by one,
// bytes 128-255 emit an UpperShift codeword followed by the low 7 bits.
func EncodeASCII(ctx *Context) {
	for {
		twoDigits := twoDigitsComing(ctx.Rest())
		if twoDigits {
			a, _ := ctx.Eat()
			b, _ := ctx.Eat()
			ctx.Push((a-'0')*10 + (b - '0') + 130)
		}
		if ctx.MaybeSwitchMode(0) {
			return
		}
		if twoDigits {
			continue
		}
		ch, ok := ctx.Eat()
		if !ok {
			return
		}
		if ch <= 127 {
			ctx.Push(ch + 1)
		} else {
			ctx.Push(UpperShift)
			ctx.Push(ch - 128 + 1)
		}
	}
}

// asciiEncodingSize returns the number of Ascii codewords rest would
// encode to, without emitting anything — used by the other modes'
// end-of-data rules to decide whether a short tail fits better as Ascii.
func asciiEncodingSize(rest []byte) int {
	count := 0
	for len(rest) > 0 {
		if twoDigitsComing(rest) {
			count++
			rest = rest[2:]
			continue
		}
		ch := rest[0]
		rest = rest[1:]
		if ch <= 127 {
			count++
		} else {
			count += 2
		}
	}
	return count
}
