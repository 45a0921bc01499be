package encmode

import (
	"bytes"
	"testing"

	"github.com/go-dmtx/dmtx/symbolsize"
)

func TestDecodeC40FromFixedCodewords(t *testing.T) {
	out, ecis, macro, err := DecodeCodewords([]byte{LatchC40, 91, 11})
	if err != nil {
		t.Fatalf("DecodeCodewords: %v", err)
	}
	if string(out) != "AIM" {
		t.Errorf("got %q, want %q", out, "AIM")
	}
	if len(ecis) != 0 || macro != 0 {
		t.Errorf("unexpected ecis=%v macro=%v", ecis, macro)
	}
}

func TestDecodeEdifactFromFixedCodewords(t *testing.T) {
	out, _, _, err := DecodeCodewords([]byte{LatchEdifact, 16, 21, 1})
	if err != nil {
		t.Fatalf("DecodeCodewords: %v", err)
	}
	if string(out) != "DATA" {
		t.Errorf("got %q, want %q", out, "DATA")
	}
}

func TestDecodeBase256FromFixedCodewords(t *testing.T) {
	out, _, _, err := DecodeCodewords([]byte{LatchBase256, 44, 108, 59, 226, 126, 1, 104})
	if err != nil {
		t.Fatalf("DecodeCodewords: %v", err)
	}
	want := []byte{0xab, 0xe4, 0xf6, 0xfc, 0xe9, 0xbb}
	if !bytes.Equal(out, want) {
		t.Errorf("got %v, want %v", out, want)
	}
}

func TestDecodeAsciiDigitsAndUpperShift(t *testing.T) {
	out, _, _, err := DecodeCodewords([]byte{66, 67, 68, 130, 235, 38})
	if err != nil {
		t.Fatalf("DecodeCodewords: %v", err)
	}
	want := []byte("ABC00\xa5")
	if !bytes.Equal(out, want) {
		t.Errorf("got %v, want %v", out, want)
	}
}

func largePolicy() symbolsize.Policy { return symbolsize.AllIncludingDMRE() }

func TestASCIIRoundTrip(t *testing.T) {
	input := []byte("Hello, World! 1234")
	ctx := NewContext(input, largePolicy(), nil)
	EncodeASCII(ctx)
	out, _, _, err := DecodeCodewords(ctx.Codewords())
	if err != nil {
		t.Fatalf("DecodeCodewords: %v", err)
	}
	if !bytes.Equal(out, input) {
		t.Errorf("got %q, want %q", out, input)
	}
}

// encodeLatched runs encode against a fresh Context that already has mode's
// latch codeword pushed, matching how the orchestrator threads the context
// across mode switches (the latch is part of the codeword stream before
// the mode's Encode function runs, which matters for Base256's
// position-dependent randomization). Like the orchestrator, it finishes in
// Ascii any tail the mode hands back, and ends the stream with an UNLATCH
// and a PAD while the smallest fitting symbol still has room.
func encodeLatched(t *testing.T, mode Mode, input []byte, encode func(*Context)) []byte {
	t.Helper()
	ctx := NewContext(input, largePolicy(), nil)
	ctx.Push(mode.LatchFrom())
	encode(ctx)
	if ctx.HasMoreCharacters() && ctx.Mode == Ascii {
		EncodeASCII(ctx)
	}
	if left, ok := ctx.SymbolSizeLeft(0); ok && left > 0 {
		if ctx.Mode != Ascii {
			ctx.Push(Unlatch)
			left--
		}
		if left > 0 {
			ctx.Push(Pad)
		}
	}
	return ctx.Codewords()
}

func TestC40RoundTrip(t *testing.T) {
	input := []byte("AIM DATA MATRIX 2026")
	full := encodeLatched(t, C40, input, EncodeC40)
	out, _, _, err := DecodeCodewords(full)
	if err != nil {
		t.Fatalf("DecodeCodewords: %v", err)
	}
	if !bytes.Equal(out, input) {
		t.Errorf("got %q, want %q", out, input)
	}
}

func TestTextRoundTrip(t *testing.T) {
	input := []byte("aim data matrix 2026")
	full := encodeLatched(t, Text, input, EncodeText)
	out, _, _, err := DecodeCodewords(full)
	if err != nil {
		t.Fatalf("DecodeCodewords: %v", err)
	}
	if !bytes.Equal(out, input) {
		t.Errorf("got %q, want %q", out, input)
	}
}

func TestX12RoundTrip(t *testing.T) {
	input := []byte("ABC 123*DEF>GHI")
	full := encodeLatched(t, X12, input, EncodeX12)
	out, _, _, err := DecodeCodewords(full)
	if err != nil {
		t.Fatalf("DecodeCodewords: %v", err)
	}
	if !bytes.Equal(out, input) {
		t.Errorf("got %q, want %q", out, input)
	}
}

func TestEdifactRoundTrip(t *testing.T) {
	input := []byte("DATA MATRIX CODE!")
	full := encodeLatched(t, Edifact, input, EncodeEdifact)
	out, _, _, err := DecodeCodewords(full)
	if err != nil {
		t.Fatalf("DecodeCodewords: %v", err)
	}
	if !bytes.Equal(out, input) {
		t.Errorf("got %q, want %q", out, input)
	}
}

func TestBase256RoundTrip(t *testing.T) {
	input := []byte{0x00, 0x01, 0xFF, 0x80, 0x7F, 0xAB, 0xE4}
	full := encodeLatched(t, Base256, input, EncodeBase256)
	out, _, _, err := DecodeCodewords(full)
	if err != nil {
		t.Fatalf("DecodeCodewords: %v", err)
	}
	if !bytes.Equal(out, input) {
		t.Errorf("got %v, want %v", out, input)
	}
}

func TestBase256LongRunTwoCodewordLength(t *testing.T) {
	input := make([]byte, 300)
	for i := range input {
		input[i] = byte(i)
	}
	full := encodeLatched(t, Base256, input, EncodeBase256)
	out, _, _, err := DecodeCodewords(full)
	if err != nil {
		t.Fatalf("DecodeCodewords: %v", err)
	}
	if !bytes.Equal(out, input) {
		t.Errorf("round trip mismatch over %d bytes", len(input))
	}
}

func TestECIRoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 3, 26, 126, 127, 16382, 16383, 999999} {
		ctx := &Context{}
		WriteECI(ctx, v)
		cw := ctx.Codewords()
		if cw[0] != ECI {
			t.Fatalf("value %d: expected ECI control codeword first", v)
		}
		got, consumed, err := ReadECI(cw[1:])
		if err != nil {
			t.Fatalf("value %d: ReadECI: %v", v, err)
		}
		if got != v {
			t.Errorf("value %d: got %d", v, got)
		}
		if consumed != len(cw)-1 {
			t.Errorf("value %d: consumed %d, codewords %d", v, consumed, len(cw)-1)
		}
	}
}

func TestMacroDetectAndExpand(t *testing.T) {
	full := append([]byte("[)>\x1E05\x1D"), append([]byte("hello"), []byte("\x1E\x04")...)...)
	cw, inner, ok := DetectMacro(full)
	if !ok || cw != Macro05 || string(inner) != "hello" {
		t.Fatalf("DetectMacro = %v %q %v", cw, inner, ok)
	}
	back, ok := ExpandMacro(cw, inner)
	if !ok || !bytes.Equal(back, full) {
		t.Fatalf("ExpandMacro = %q, want %q", back, full)
	}
}

func TestMacroNotDetectedWithoutEnvelope(t *testing.T) {
	if _, _, ok := DetectMacro([]byte("plain text")); ok {
		t.Fatal("expected no macro match")
	}
}
