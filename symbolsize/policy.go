package symbolsize

import "sort"

// Policy is an ordered set of candidate symbol descriptors, sorted by Nd
// ascending then by W^2+H^2 ascending (the tie-break for same-capacity
// square vs. rectangular choices). The encoder picks the first descriptor
// in a Policy whose Nd is large enough to hold the produced codeword count.
type Policy struct {
	descriptors []Descriptor
}

func newPolicy(filter func(*Descriptor) bool) Policy {
	var out []Descriptor
	for i := range All {
		if filter == nil || filter(&All[i]) {
			out = append(out, All[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := &out[i], &out[j]
		if a.Nd != b.Nd {
			return a.Nd < b.Nd
		}
		return a.W*a.W+a.H*a.H < b.W*b.W+b.H*b.H
	})
	return Policy{descriptors: out}
}

// AllStandard returns every ISO/IEC 16022 size (24 square + 6 rectangular),
// excluding the ISO 21471 DMRE extensions.
func AllStandard() Policy {
	return newPolicy(func(d *Descriptor) bool { return !d.DMRE })
}

// AllIncludingDMRE returns the complete 48-entry catalog.
func AllIncludingDMRE() Policy {
	return newPolicy(nil)
}

// Whitelist returns a Policy restricted to the descriptors at the given
// catalog indices (1-based, see Descriptor.Index).
func Whitelist(indices ...int) Policy {
	allowed := make(map[int]bool, len(indices))
	for _, i := range indices {
		allowed[i] = true
	}
	return newPolicy(func(d *Descriptor) bool { return allowed[d.Index] })
}

// Square returns a Policy restricted to square descriptors (DMRE included;
// DMRE has no square members, so this is equivalent to AllStandard's square
// subset, but the filter is general in case the catalog grows).
func Square() Policy {
	return newPolicy(func(d *Descriptor) bool { return !d.Rectangular })
}

// Rectangular returns a Policy restricted to rectangular descriptors,
// including DMRE.
func Rectangular() Policy {
	return newPolicy(func(d *Descriptor) bool { return d.Rectangular })
}

// WidthRange returns a Policy restricted to descriptors whose W falls in
// [min, max] inclusive.
func WidthRange(min, max int) Policy {
	return newPolicy(func(d *Descriptor) bool { return d.W >= min && d.W <= max })
}

// HeightRange returns a Policy restricted to descriptors whose H falls in
// [min, max] inclusive.
func HeightRange(min, max int) Policy {
	return newPolicy(func(d *Descriptor) bool { return d.H >= min && d.H <= max })
}

// Filter returns a Policy containing exactly the receiver's descriptors for
// which keep returns true, preserving the existing Nd/size ordering. It lets
// callers compose ad hoc restrictions on top of the named constructors.
func (p Policy) Filter(keep func(*Descriptor) bool) Policy {
	var out []Descriptor
	for i := range p.descriptors {
		if keep(&p.descriptors[i]) {
			out = append(out, p.descriptors[i])
		}
	}
	return Policy{descriptors: out}
}

// Descriptors returns the policy's descriptors in their sorted order.
func (p Policy) Descriptors() []Descriptor { return p.descriptors }

// Empty returns true if the policy has no candidate descriptors.
func (p Policy) Empty() bool { return len(p.descriptors) == 0 }

// Smallest returns the first descriptor (in the policy's sort order) able to
// hold n data codewords, or false if none can.
func (p Policy) Smallest(n int) (Descriptor, bool) {
	for _, d := range p.descriptors {
		if d.Nd >= n {
			return d, true
		}
	}
	return Descriptor{}, false
}

// MaxCapacity returns the largest MaxInputCapacity among the policy's
// descriptors, used to reject inputs no descriptor could ever hold.
func (p Policy) MaxCapacity() int {
	max := 0
	for _, d := range p.descriptors {
		if c := d.MaxInputCapacity(); c > max {
			max = c
		}
	}
	return max
}
