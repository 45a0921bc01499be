package ecc

import (
	"errors"

	"github.com/go-dmtx/dmtx/gf256"
)

// Failure taxonomy for Decode, matching the spec's ECC decoder errors.
// The root package maps these onto its own sentinel errors at the
// orchestration boundary.
var (
	ErrTooManyErrors     = errors.New("ecc: too many errors to correct")
	ErrErrorsOutsideRange = errors.New("ecc: corrected error position outside received block")
	ErrMalfunction        = errors.New("ecc: error-locator polynomial failed its syndrome check")
)

// Decode corrects errors in codewords in place. codewords is the full
// symbol codeword vector (numData data codewords followed by nb*ne
// interleaved ECC codewords); it mirrors Encode's block/interleave layout.
func Decode(codewords []byte, numData, nb, ne int) error {
	data := codewords[:numData]
	errorPart := codewords[numData:]
	for block := 0; block < nb; block++ {
		if err := decodeBlock(data[block:], errorPart[block:], nb, ne); err != nil {
			return err
		}
	}
	return nil
}

func decodeBlock(data, errorPart []byte, stride, ne int) error {
	nData := ceilDiv(len(data), stride)
	nErr := ceilDiv(len(errorPart), stride)
	n := nData + nErr

	received := make([]byte, 0, n)
	for i := 0; i < len(data); i += stride {
		received = append(received, data[i])
	}
	for i := 0; i < len(errorPart); i += stride {
		received = append(received, errorPart[i])
	}

	syn := make([]byte, ne)
	if !primitiveElementEvaluation(received, syn) {
		return nil // clean block
	}

	lambda, err := findErrorLocatorLevinsonDurbin(syn)
	if err != nil {
		return err
	}
	invErrorLocations := chienSearch(lambda)
	if len(invErrorLocations) != len(lambda)-1 || invErrorLocations[0] == 0 {
		return ErrTooManyErrors
	}

	t := ne / 2
	v := len(lambda) - 1
	for j := t; j <= 2*t-v-1; j++ {
		var tj byte
		for k := 0; k < len(lambda) && j+k < len(syn); k++ {
			tj = gf256.Add(tj, gf256.Mul(syn[j+k], lambda[k]))
		}
		if tj != 0 {
			return ErrMalfunction
		}
	}

	findErrorValuesBP(invErrorLocations, syn)
	errorLocations, errorValues := invErrorLocations, syn

	for idx, loc := range errorLocations {
		i := gf256.Log(loc)
		if i >= n {
			return ErrErrorsOutsideRange
		}
		pos := (n - i - 1) * stride
		if pos < len(data) {
			data[pos] = gf256.Sub(data[pos], errorValues[idx])
		} else {
			pos -= len(data)
			errorPart[pos] = gf256.Sub(errorPart[pos], errorValues[idx])
		}
	}
	return nil
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }

// primitiveElementEvaluation evaluates the polynomial whose coefficients
// are c (c[0] is the highest-degree term, matching a received codeword
// block read in symbol order) at x = alpha^1, alpha^2, ..., alpha^len(out),
// writing the results to out. It reports whether any evaluation was
// nonzero.
func primitiveElementEvaluation(c []byte, out []byte) bool {
	if len(out) == 0 {
		return false
	}
	gamma := make([]byte, len(c))
	for i, v := range c {
		gamma[len(c)-1-i] = v
	}
	powers := make([]byte, len(gamma))
	for j := range powers {
		powers[j] = gf256.Exp(j)
	}
	haveNonZero := false
	for oi := range out {
		for j := range gamma {
			gamma[j] = gf256.Mul(gamma[j], powers[j])
		}
		var sum byte
		for _, g := range gamma {
			sum = gf256.Add(sum, g)
		}
		out[oi] = sum
		if sum != 0 {
			haveNonZero = true
		}
	}
	return haveNonZero
}

// chienSearch finds the zeros of the polynomial with ascending-degree
// coefficients c (c[0] is the constant term), by direct evaluation at every
// power of the primitive element, and returns their reciprocals (0 stands
// for a zero leading coefficient).
func chienSearch(c []byte) []byte {
	var out []byte
	if len(c) == 0 {
		return out
	}
	if c[len(c)-1] == 0 {
		out = append(out, 0)
	}
	if len(c) == 2 {
		if c[1] != 0 {
			out = append(out, gf256.Div(c[1], c[0]))
		}
		return out
	}
	gamma := make([]byte, len(c))
	for i, v := range c {
		gamma[len(c)-1-i] = v
	}
	powers := make([]byte, len(gamma))
	for j := range powers {
		powers[j] = gf256.Exp(j + 1)
	}
	for i := 0; i <= 254; i++ {
		var val byte
		for _, g := range gamma {
			val = gf256.Add(val, g)
		}
		if val == 0 {
			out = append(out, gf256.Exp(i))
		}
		for j := range gamma {
			gamma[j] = gf256.Mul(gamma[j], powers[j])
		}
	}
	return out
}

// findErrorValuesBP solves for the error magnitudes using the
// Björck-Pereyra algorithm, in two O(e^2) passes plus a diagonal divide.
// xLoc holds the Chien-search roots on entry and the inverted error
// locations on return; syn holds the syndromes on entry and the error
// values on return.
func findErrorValuesBP(xLoc, syn []byte) {
	e := len(xLoc)
	for i := range xLoc {
		xLoc[i] = gf256.Inverse(xLoc[i])
	}
	for k := 0; k < e-1; k++ {
		xLocK := xLoc[k]
		for j := e - 1; j >= k+1; j-- {
			tmp := syn[j-1]
			syn[j] = gf256.Sub(syn[j], gf256.Mul(xLocK, tmp))
		}
	}
	for k := e - 2; k >= 0; k-- {
		for j := k + 1; j < e; j++ {
			syn[j] = gf256.Div(syn[j], gf256.Sub(xLoc[j], xLoc[j-k-1]))
		}
		for j := k; j < e-1; j++ {
			tmp := syn[j+1]
			syn[j] = gf256.Sub(syn[j], tmp)
		}
	}
	for i := 0; i < e; i++ {
		syn[i] = gf256.Div(syn[i], xLoc[i])
	}
}

func dot(a, b []byte) byte {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var s byte
	for i := 0; i < n; i++ {
		s = gf256.Add(s, gf256.Mul(a[i], b[i]))
	}
	return s
}

func prepend(s []byte, v byte) []byte {
	out := make([]byte, len(s)+1)
	out[0] = v
	copy(out[1:], s)
	return out
}

// findErrorLocatorLevinsonDurbin finds the error-locator polynomial by
// exploiting that the syndrome matrix is a Hankel matrix: it solves
// H_v*y = e_v and H_v*w = h_v for growing v using the Schmidt-Fettweis
// recurrence, advancing by one in the regular case and by m+1 (probing for
// the smallest m with a nonzero discrepancy) in the singular case.
func findErrorLocatorLevinsonDurbin(syn []byte) ([]byte, error) {
	t := len(syn) / 2

	v := 1
	for v-1 < len(syn) && syn[v-1] == 0 {
		v++
	}

	y := make([]byte, v)
	y[0] = gf256.Div(1, syn[v-1])

	w := make([]byte, v)
	for i := 0; i < v; i++ {
		w[i] = syn[2*v-1-i]
	}
	for i := 0; i < v; i++ {
		for j := v - i; j < v; j++ {
			wj := w[j]
			w[v-1-i] = gf256.Sub(w[v-1-i], gf256.Mul(syn[i+j], wj))
		}
		w[v-1-i] = gf256.Div(w[v-1-i], syn[v-1])
	}

	for v < t {
		tmp := append(append([]byte{}, w...), 1) // [w..., -1]; -1 == 1 in characteristic 2

		epsV := dot(syn[v:2*v+1], tmp)
		if epsV != 0 {
			w = prepend(w, 0)
			for i := 0; i < v; i++ {
				w[i] = gf256.Sub(w[i], gf256.Mul(epsV, y[i]))
			}
			beta := gf256.Div(dot(syn[v+1:2*v+2], tmp), epsV)
			gammaVal := dot(syn[v:2*v], y)
			betaMinusGamma := gf256.Sub(beta, gammaVal)
			for i := range w {
				w[i] = gf256.Sub(w[i], gf256.Mul(betaMinusGamma, tmp[i]))
			}
			epsInv := gf256.Inverse(epsV)
			newY := make([]byte, v+1)
			for i := 0; i < v; i++ {
				newY[i] = gf256.Mul(tmp[i], epsInv)
			}
			newY[v] = epsInv // -eps_inv == eps_inv in characteristic 2
			y = newY
			v++
			continue
		}

		// Singular case: probe for the smallest m > 0 giving a nonzero
		// discrepancy.
		m := -1
		var sigmaM byte
		for i := 1; i < t-v; i++ {
			s := dot(syn[v+i:2*v+i+1], tmp)
			if s != 0 {
				m, sigmaM = i, s
				break
			}
		}
		if m < 0 {
			break
		}
		n := m + v

		sigma := make([]byte, m+1)
		sigma[0] = sigmaM
		for k := m + 1; k <= 2*m; k++ {
			sigma[k-m] = dot(syn[v+k:2*v+k+1], tmp)
		}

		tmp = tmp[:v] // drop the trailing -1: tmp is now w_v
		for k := 0; k <= m; k++ {
			rho := gf256.Sub(syn[2*v+k], dot(syn[v:2*v], tmp))
			eta := tmp[v-1]
			tmp = prepend(tmp[:v-1], 0)
			for i := range tmp {
				term := gf256.Add(gf256.Mul(rho, y[i]), gf256.Mul(eta, w[i]))
				tmp[i] = gf256.Add(tmp[i], term)
			}
		}

		sigmaMInv := gf256.Inverse(sigmaM)
		newY := make([]byte, n+1)
		for i := range w {
			newY[i] = gf256.Mul(w[i], sigmaMInv)
		}
		newY[len(w)] = sigmaMInv // -sigmaMInv == sigmaMInv
		y = newY

		gamma := make([]byte, m+1)
		for i := 0; i <= m; i++ {
			gamma[i] = gf256.Sub(syn[n+v+1+i], dot(syn[v+i:2*v+i], tmp))
		}
		for i := 0; i <= m; i++ {
			for j := 0; j < i; j++ {
				gj := gamma[j]
				gamma[i] = gf256.Sub(gamma[i], gf256.Mul(sigma[i-j], gj))
			}
			gamma[i] = gf256.Div(gamma[i], sigma[0])
		}

		newW := make([]byte, n+1)
		copy(newW, tmp)
		for i, gammaI := range gamma {
			for wi := 0; wi < len(w); wi++ {
				pos := m - i + wi
				newW[pos] = gf256.Add(newW[pos], gf256.Mul(gammaI, w[wi]))
			}
			newW[m-i+v] = gf256.Sub(newW[m-i+v], gammaI)
		}
		w = newW
		v = n + 1
	}

	return append(w, 1), nil
}
