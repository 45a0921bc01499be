package ecc

import (
	"testing"
)

func encodeBlock(data []byte, nb, ne int) []byte {
	full := make([]byte, len(data)+nb*ne)
	copy(full, data)
	copy(full[len(data):], Encode(data, nb, ne))
	return full
}

func TestEncodeDecodeSingleBlockNoErrors(t *testing.T) {
	data := []byte{1, 2, 3}
	full := encodeBlock(data, 1, 5)
	if err := Decode(append([]byte{}, full...), len(data), 1, 5); err != nil {
		t.Fatalf("Decode on clean input: %v", err)
	}
}

func TestEncodeDecodeCorrectsErrors(t *testing.T) {
	data := []byte{1, 2, 3}
	full := encodeBlock(data, 1, 5)
	received := append([]byte{}, full...)
	received[0] = 230
	received[len(full)-1] = 32

	if err := Decode(received, len(data), 1, 5); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	for i := range full {
		if received[i] != full[i] {
			t.Errorf("byte %d = %d, want %d", i, received[i], full[i])
		}
	}
}

func TestEncodeDecodeMultiBlockInterleaved(t *testing.T) {
	data := make([]byte, 22)
	for i := range data {
		data[i] = byte(i * 7 % 256)
	}
	const nb, ne = 2, 10
	full := encodeBlock(data, nb, ne)

	received := append([]byte{}, full...)
	received[0] = received[0] ^ 0xFF
	received[3] = received[3] ^ 0x11

	if err := Decode(received, len(data), nb, ne); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	for i := range full {
		if received[i] != full[i] {
			t.Errorf("byte %d = %d, want %d", i, received[i], full[i])
		}
	}
}

func TestDecodeMatchesReference(t *testing.T) {
	data := make([]byte, 44)
	for i := range data {
		data[i] = byte(i*13 + 3)
	}
	const nb, ne = 4, 12
	full := encodeBlock(data, nb, ne)

	a := append([]byte{}, full...)
	a[0] ^= 0xAA
	a[5] ^= 0x01
	b := append([]byte{}, a...)

	errA := Decode(a, len(data), nb, ne)
	errB := ReferenceDecode(b, len(data), nb, ne)
	if errA != nil || errB != nil {
		t.Fatalf("Decode err=%v ReferenceDecode err=%v", errA, errB)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("byte %d: Decode=%d ReferenceDecode=%d", i, a[i], b[i])
		}
	}
}

func TestDecodeTooManyErrorsPlausiblyFails(t *testing.T) {
	data := []byte{1, 2, 3}
	full := encodeBlock(data, 1, 5)
	received := append([]byte{}, full...)
	// 5 ECC codewords correct at most 2 errors; corrupt 3.
	for i := 0; i < 3; i++ {
		received[i] ^= 0xFF
	}
	err := Decode(received, len(data), 1, 5)
	if err == nil {
		ok := true
		for i := range full {
			if received[i] != full[i] {
				ok = false
			}
		}
		if ok {
			t.Fatal("expected decode to fail or silently diverge with 3 errors against 5 ECC codewords, got exact match with nil error")
		}
	}
}
