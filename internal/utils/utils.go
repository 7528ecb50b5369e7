package utils

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Reverses the list in-place
func Reverse[K interface{}](list []K) {
	last := len(list) - 1
	for i := 0; i < len(list)/2; i++ {
		list[i], list[last-i] = list[last-i], list[i]
	}
}

// Tries to convert a big-endian byte slice to a field element.
// Returns an error if the byte slice was not a canonical representation
// of the field element.
// Canonical meaning that the big integer interpretation was less than
// the field's prime. ie it lies within the range [0, p-1] (inclusive)
func ReduceCanonical(serScalar []byte) (fr.Element, error) {
	var scalar fr.Element
	err := scalar.SetBytesCanonical(serScalar)
	return scalar, err
}

// Same as ReduceCanonical but the bytes are interpreted as little-endian.
// The input is not modified.
func ReduceCanonicalLE(serScalar []byte) (fr.Element, error) {
	tmp := make([]byte, len(serScalar))
	copy(tmp, serScalar)
	defer clear(tmp)

	Reverse(tmp)
	return ReduceCanonical(tmp)
}

// Interprets an arbitrary length little-endian byte slice as an integer
// and reduces it modulo the scalar field. Never fails.
//
// Callers that want a bias below 2^-128 should pass at least 48 bytes.
func ReduceWideLE(bytes []byte) fr.Element {
	tmp := make([]byte, len(bytes))
	copy(tmp, bytes)
	defer clear(tmp)

	// gnark interprets bytes as big-endian
	Reverse(tmp)

	var scalar fr.Element
	scalar.SetBytes(tmp)
	return scalar
}

// Serialises a field element into its canonical 32 byte little-endian form
func ScalarToLE(scalar *fr.Element) [fr.Bytes]byte {
	res := scalar.Bytes()
	Reverse(res[:])
	return res
}
