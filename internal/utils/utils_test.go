package utils

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"
)

func TestReverse(t *testing.T) {
	list := []int{1, 2, 3, 4, 5}
	Reverse(list)
	require.Equal(t, []int{5, 4, 3, 2, 1}, list)

	even := []byte{1, 2, 3, 4}
	Reverse(even)
	require.Equal(t, []byte{4, 3, 2, 1}, even)

	// Empty and single element lists are left untouched
	var empty []byte
	Reverse(empty)
	require.Empty(t, empty)

	single := []byte{7}
	Reverse(single)
	require.Equal(t, []byte{7}, single)
}

func TestCanonicalEncoding(t *testing.T) {
	x := randReducedBigInt()
	xPlusModulus := addModP(x)

	unreducedBytes := xPlusModulus.Bytes()

	// `SetBytes` will read the unreduced bytes and
	// return a field element. Does not matter if its canonical
	var reduced fr.Element
	reduced.SetBytes(unreducedBytes)

	// `Bytes` will return a canonical representation of the
	// field element, ie a reduced version
	reducedBytes := reduced.Bytes()

	// First we should check that the reduced version
	// is different to the unreduced version, incase one changes the
	// implementation in the future
	if bytes.Equal(unreducedBytes, reducedBytes[:]) {
		t.Error("unreduced representation of field element, is the same as the reduced representation")
	}

	// Reduce canonical should produce an error
	_, err := ReduceCanonical(unreducedBytes)
	require.Error(t, err)

	got, err := ReduceCanonical(reducedBytes[:])
	require.NoError(t, err)
	require.True(t, got.Equal(&reduced))
}

func TestLittleEndianRoundTrip(t *testing.T) {
	var scalar fr.Element
	scalar.SetUint64(0x0102030405060708)

	le := ScalarToLE(&scalar)
	// The low order byte comes first
	require.Equal(t, byte(0x08), le[0])
	require.Equal(t, byte(0x01), le[7])

	input := le
	got, err := ReduceCanonicalLE(le[:])
	require.NoError(t, err)
	require.True(t, got.Equal(&scalar))
	// The input must not be modified
	require.Equal(t, input, le)
}

func TestReduceCanonicalLERejectsModulus(t *testing.T) {
	modulus := fr.Modulus().Bytes()
	Reverse(modulus)
	_, err := ReduceCanonicalLE(modulus)
	require.Error(t, err)
}

func TestReduceWideLE(t *testing.T) {
	// 2^(8*47) is far larger than the modulus, so the result must be reduced
	wide := make([]byte, 48)
	wide[47] = 1

	got := ReduceWideLE(wide)

	var expectedInt big.Int
	expectedInt.Lsh(big.NewInt(1), 8*47)
	expectedInt.Mod(&expectedInt, fr.Modulus())

	var expected fr.Element
	expected.SetBigInt(&expectedInt)
	require.True(t, got.Equal(&expected))

	// Input is left as is
	require.Equal(t, byte(1), wide[47])
}

// Adds the modulus to the big integer
// we need to do it with a big.Int
// since an fr.Element will apply the
// reduction
func addModP(x big.Int) big.Int {
	modulus := fr.Modulus()

	var xPlusModulus big.Int
	xPlusModulus.Add(&x, modulus)

	return xPlusModulus
}

func randReducedBigInt() big.Int {
	var randFr fr.Element
	_, _ = randFr.SetRandom()

	var randBigInt big.Int
	randFr.BigInt(&randBigInt)

	if randBigInt.Cmp(fr.Modulus()) != -1 {
		panic("big integer is not reduced")
	}

	return randBigInt
}
