package duplex

import "fmt"

// Permutation is the state of a cryptographic sponge of width Width()
// processing Rate() units at a time.
//
// For implementors:
//
//   - The first Rate() units of State() are the rate. The remaining
//     Width()-Rate() units are the capacity and are only touched by
//     Permute and by the constructor.
//   - The zero value of the state must be all zero units.
//   - Constructors taking a 32 byte IV write it in the capacity and
//     leave the rate zero.
type Permutation[U any] interface {
	// Width is the number of units in the state, N.
	Width() int
	// Rate is the number of units exposed to absorb and squeeze, R.
	Rate() int
	// State is a flat read/write view of all Width() units.
	State() []U
	// Permute transforms the full state in place.
	Permute()
}

func checkParameters[U any](p Permutation[U]) {
	n, r := p.Width(), p.Rate()
	if r < 1 || n <= r {
		panic(fmt.Errorf("%w: width %d, rate %d, capacity must be > 0", ErrInvalidParameters, n, r))
	}
	if len(p.State()) != n {
		panic(fmt.Errorf("%w: width %d, state %d", ErrInvalidParameters, n, len(p.State())))
	}
}
