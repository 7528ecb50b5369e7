// Package keccak provides a duplex sponge over the Keccak-f[1600] permutation.
//
// Warning: this is not SHA-3. It uses the same permutation, but the
// sponge runs in overwrite mode without padding, see package duplex.
package keccak

import (
	"encoding/binary"
	"fmt"

	"github.com/crate-crypto/go-spongefish/duplex"
)

const (
	// Width is the size of the Keccak-f[1600] state in bytes
	Width = 200
	// Rate is the number of bytes absorbed or squeezed per permutation
	Rate = 136
)

// F1600 is the Keccak-f[1600] permutation state: 25 64-bit lanes stored
// as 200 bytes in little-endian order.
type F1600 struct {
	state [Width]byte
}

var _ duplex.Permutation[byte] = (*F1600)(nil)

// Sponge is a duplex sponge over Keccak-f[1600].
type Sponge = duplex.DuplexSponge[byte, *F1600]

// NewF1600 returns a permutation state with iv in the capacity.
func NewF1600(iv [32]byte) *F1600 {
	p := &F1600{}
	copy(p.state[Rate:Rate+len(iv)], iv[:])
	return p
}

// New returns a Keccak duplex sponge seeded with iv.
func New(iv [32]byte) *Sponge {
	return duplex.New[byte](NewF1600(iv))
}

func (p *F1600) Width() int { return Width }
func (p *F1600) Rate() int { return Rate }
func (p *F1600) State() []byte { return p.state[:] }

func (p *F1600) Permute() {
	var lanes [25]uint64
	defer clear(lanes[:])

	for i := range lanes {
		lanes[i] = binary.LittleEndian.Uint64(p.state[8*i:])
	}
	keccakF1600(&lanes)
	for i := range lanes {
		binary.LittleEndian.PutUint64(p.state[8*i:], lanes[i])
	}
}

// Clone returns a deep copy of the state, see duplex.DuplexSponge.Clone.
func (p *F1600) Clone() *F1600 {
	c := *p
	return &c
}

// The state may hold secret material so it is never printed.

func (p *F1600) String() string {
	return "F1600(<redacted>)"
}

func (p *F1600) GoString() string {
	return p.String()
}

func (p *F1600) Format(f fmt.State, verb rune) {
	_, _ = f.Write([]byte(p.String()))
}
