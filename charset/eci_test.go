package charset

import "testing"

func TestByValueKnownECIs(t *testing.T) {
	for _, v := range []int{0, 3, 9, 11, 13, 26, 27} {
		if _, err := ByValue(v); err != nil {
			t.Errorf("ByValue(%d) = %v, want a supported ECI", v, err)
		}
	}
}

func TestByValueZeroAndThreeAgree(t *testing.T) {
	zero, _ := ByValue(0)
	three, _ := ByValue(3)
	if zero != three {
		t.Error("ECI 0 and ECI 3 should resolve to the same ISO-8859-1 ECI")
	}
}

func TestByValueUnsupported(t *testing.T) {
	if _, err := ByValue(20); err != ErrUnsupportedECI {
		t.Errorf("ByValue(20) err = %v, want ErrUnsupportedECI", err)
	}
}

func TestASCIIRoundTrip(t *testing.T) {
	eci, _ := ByValue(27)
	encoded, err := eci.Encode("Hello")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := eci.Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded != "Hello" {
		t.Errorf("round trip = %q, want %q", decoded, "Hello")
	}
}

func TestASCIIRejectsHighBytes(t *testing.T) {
	eci, _ := ByValue(27)
	if _, err := eci.Decode([]byte{0xC3, 0xA9}); err == nil {
		t.Error("expected an error decoding a non-ASCII byte through the ASCII channel")
	}
}

func TestUTF8RoundTrip(t *testing.T) {
	eci, _ := ByValue(26)
	s := "héllo wörld"
	encoded, err := eci.Encode(s)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := eci.Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded != s {
		t.Errorf("round trip = %q, want %q", decoded, s)
	}
}

func TestISO8859_1RoundTrip(t *testing.T) {
	eci, _ := ByValue(3)
	s := "café"
	encoded, err := eci.Encode(s)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := eci.Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded != s {
		t.Errorf("round trip = %q, want %q", decoded, s)
	}
}
