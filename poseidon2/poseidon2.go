// Package poseidon2 provides a duplex sponge over the BLS12-381 scalar
// field, using the Poseidon2 permutation from gnark-crypto.
package poseidon2

import (
	"fmt"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	gnarkposeidon2 "github.com/consensys/gnark-crypto/ecc/bls12-381/fr/poseidon2"
	"github.com/crate-crypto/go-spongefish/duplex"
	"github.com/crate-crypto/go-spongefish/internal/utils"
)

const (
	// Width is the number of field elements in the state
	Width = 3
	// Rate is the number of field elements absorbed or squeezed per permutation
	Rate = 2
	// FullRounds is the number of rounds applying the s-box to every element
	FullRounds = 8
	// PartialRounds is the number of rounds applying the s-box to one element
	PartialRounds = 56
)

// The round constants are derived once and shared by every sponge.
var permutation = sync.OnceValue(func() *gnarkposeidon2.Permutation {
	return gnarkposeidon2.NewPermutation(Width, FullRounds, PartialRounds)
})

// Permutation is a Poseidon2 state of Width field elements.
type Permutation struct {
	state [Width]fr.Element
}

var _ duplex.Permutation[fr.Element] = (*Permutation)(nil)

// Sponge is a duplex sponge over Poseidon2.
type Sponge = duplex.DuplexSponge[fr.Element, *Permutation]

// NewPermutation returns a state whose capacity element is iv, read as a
// little-endian integer and reduced modulo the field order.
func NewPermutation(iv [32]byte) *Permutation {
	p := &Permutation{}
	p.state[Rate] = utils.ReduceWideLE(iv[:])
	return p
}

// New returns a Poseidon2 duplex sponge seeded with iv.
func New(iv [32]byte) *Sponge {
	return duplex.New[fr.Element](NewPermutation(iv))
}

func (p *Permutation) Width() int { return Width }
func (p *Permutation) Rate() int { return Rate }
func (p *Permutation) State() []fr.Element { return p.state[:] }

// Clone returns a deep copy of the state, see duplex.DuplexSponge.Clone.
func (p *Permutation) Clone() *Permutation {
	c := *p
	return &c
}

func (p *Permutation) Permute() {
	// Only fails on a buffer of the wrong size
	if err := permutation().Permutation(p.state[:]); err != nil {
		panic(fmt.Errorf("poseidon2 permutation: %w", err))
	}
}

func (p *Permutation) String() string {
	return "Poseidon2(<redacted>)"
}

func (p *Permutation) GoString() string {
	return p.String()
}

func (p *Permutation) Format(f fmt.State, verb rune) {
	_, _ = f.Write([]byte(p.String()))
}
