package symbolsize

import "testing"

func TestInvariant(t *testing.T) {
	for i := range All {
		d := &All[i]
		pad := 0
		if d.HasPadding {
			pad = 4
		}
		if got, want := d.Wc*d.Hc, 8*(d.Nd+d.Nb*d.Ne)+pad; got != want {
			t.Errorf("descriptor %d: Wc*Hc=%d, want %d", d.Index, got, want)
		}
	}
}

func TestSquareVsRectangular(t *testing.T) {
	for i := range All {
		d := &All[i]
		if (d.W != d.H) != d.Rectangular {
			t.Errorf("descriptor %d: Rectangular=%v inconsistent with W=%d H=%d", d.Index, d.Rectangular, d.W, d.H)
		}
	}
}

func TestDMREBoundary(t *testing.T) {
	for i := range All {
		d := &All[i]
		want := d.Index >= 31
		if d.DMRE != want {
			t.Errorf("descriptor %d: DMRE=%v, want %v", d.Index, d.DMRE, want)
		}
	}
}

func TestRect20x64TypoCorrection(t *testing.T) {
	d, ok := ByDimensions(64, 20)
	if !ok {
		t.Fatal("expected a 64x20 descriptor")
	}
	if got, want := d.MaxInputCapacity(), 168; got != want {
		t.Errorf("Rect 20x64 MaxInputCapacity = %d, want %d (not the 186 typo)", got, want)
	}
}

func TestPolicySmallestOrdering(t *testing.T) {
	p := AllStandard()
	d, ok := p.Smallest(1)
	if !ok || d.Index != 1 {
		t.Fatalf("Smallest(1) = %+v, %v; want descriptor 1", d, ok)
	}
	d, ok = p.Smallest(1558)
	if !ok || d.W != 144 || d.H != 144 {
		t.Fatalf("Smallest(1558) = %+v; want the 144x144 square", d)
	}
	if _, ok = p.Smallest(1559); ok {
		t.Fatal("Smallest(1559) should fail without DMRE, 1558 is the largest standard symbol")
	}
}

func TestPolicyFilters(t *testing.T) {
	if sq := Square(); len(sq.Descriptors()) != 24 {
		t.Errorf("Square() = %d descriptors, want 24", len(sq.Descriptors()))
	}
	if rect := Rectangular(); len(rect.Descriptors()) != 24 {
		t.Errorf("Rectangular() = %d descriptors, want 24 (6 ISO 16022 + 18 DMRE)", len(rect.Descriptors()))
	}
	if all := AllIncludingDMRE(); len(all.Descriptors()) != 48 {
		t.Errorf("AllIncludingDMRE() = %d descriptors, want 48", len(all.Descriptors()))
	}
	if std := AllStandard(); len(std.Descriptors()) != 30 {
		t.Errorf("AllStandard() = %d descriptors, want 30", len(std.Descriptors()))
	}
}

func TestWhitelist(t *testing.T) {
	p := Whitelist(1, 3)
	if len(p.Descriptors()) != 2 {
		t.Fatalf("Whitelist(1,3) = %d descriptors, want 2", len(p.Descriptors()))
	}
}
