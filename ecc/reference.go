package ecc

import "github.com/go-dmtx/dmtx/reedsolomon"

// ReferenceDecode corrects errors in codewords using the teacher's generic
// Euclidean-algorithm Reed-Solomon decoder instead of the Levinson-Durbin
// recurrence Decode uses. It exists purely as a cross-check: tests run both
// decoders over the same corrupted input and assert they agree, the way
// the design notes this codebase is modeled on keep an alternate decoder
// around for exactly that purpose.
func ReferenceDecode(codewords []byte, numData, nb, ne int) error {
	data := codewords[:numData]
	errorPart := codewords[numData:]
	dec := reedsolomon.NewDecoder(reedsolomon.DataMatrixField256)

	for block := 0; block < nb; block++ {
		blockData := deinterleave(data, block, nb)
		blockErr := deinterleave(errorPart, block, nb)
		received := make([]int, 0, len(blockData)+len(blockErr))
		for _, b := range blockData {
			received = append(received, int(b))
		}
		for _, b := range blockErr {
			received = append(received, int(b))
		}

		if _, err := dec.Decode(received, ne); err != nil {
			return err
		}

		reinterleave(data, block, nb, received[:len(blockData)])
		reinterleave(errorPart, block, nb, received[len(blockData):])
	}
	return nil
}

func deinterleave(codewords []byte, block, stride int) []byte {
	var out []byte
	for i := block; i < len(codewords); i += stride {
		out = append(out, codewords[i])
	}
	return out
}

func reinterleave(codewords []byte, block, stride int, values []int) {
	i, j := block, 0
	for i < len(codewords) {
		codewords[i] = byte(values[j])
		i += stride
		j++
	}
}
