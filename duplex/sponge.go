// Package duplex implements the duplex sponge construction that absorbs
// and squeezes units through a secure permutation.
//
// DuplexSponge works over any Permutation, in overwrite mode: absorbed
// units replace the rate instead of being added into it, and squeezed
// units are only ever read from a freshly permuted rate.
// DigestBridge offers the same Interface on top of a conventional
// fixed-output hash function.
package duplex

import (
	"runtime"
	"sync/atomic"
)

// Interface is the contract shared by every duplex construction.
//
// The unchecked operations do not record anything about the protocol
// being executed, callers are expected to do that themselves.
type Interface[U any] interface {
	// AbsorbUnchecked absorbs the input into the state.
	AbsorbUnchecked(input []U)
	// SqueezeUnchecked fills output with fresh units.
	SqueezeUnchecked(output []U)
	// RatchetUnchecked irreversibly forgets the rate of the state.
	RatchetUnchecked()
	// Zeroize wipes all state. The sponge must not be used afterwards.
	Zeroize()
}

// DuplexSponge is a duplex sponge in overwrite mode over the permutation P.
//
// The sponge owns its permutation: once the sponge is garbage collected
// the permutation state is wiped, whether or not Zeroize was called.
type DuplexSponge[U any, P Permutation[U]] struct {
	permutation P
	absorbPos   int
	// squeezePos == rate means the rate is stale and must be permuted
	// before it can be read.
	squeezePos int
}

var _ Interface[byte] = (*DuplexSponge[byte, Permutation[byte]])(nil)

// New creates a sponge over an already seeded permutation.
//
// Panics with an error wrapping ErrInvalidParameters if the permutation
// has no capacity.
func New[U any, P Permutation[U]](permutation P) *DuplexSponge[U, P] {
	checkParameters[U](permutation)

	return track(&DuplexSponge[U, P]{
		permutation: permutation,
		absorbPos:   0,
		squeezePos:  permutation.Rate(),
	})
}

// Called with the wiped state after a cleanup wiped an unreachable sponge.
var testHookWiped atomic.Pointer[func(any)]

func afterWipe(state any) {
	if hook := testHookWiped.Load(); hook != nil {
		(*hook)(state)
	}
}

func track[U any, P Permutation[U]](s *DuplexSponge[U, P]) *DuplexSponge[U, P] {
	runtime.AddCleanup(s, wipePermutation[U, P], s.permutation)
	return s
}

func wipePermutation[U any, P Permutation[U]](p P) {
	clear(p.State())
	afterWipe(p)
}

func (s *DuplexSponge[U, P]) AbsorbUnchecked(input []U) {
	rate := s.permutation.Rate()
	s.squeezePos = rate

	for len(input) > 0 {
		if s.absorbPos == rate {
			s.permutation.Permute()
			s.absorbPos = 0
			continue
		}

		chunkLen := min(len(input), rate-s.absorbPos)
		chunk, rest := input[:chunkLen], input[chunkLen:]

		copy(s.permutation.State()[s.absorbPos:s.absorbPos+chunkLen], chunk)
		s.absorbPos += chunkLen
		input = rest
	}
}

func (s *DuplexSponge[U, P]) SqueezeUnchecked(output []U) {
	if len(output) == 0 {
		return
	}
	rate := s.permutation.Rate()
	s.absorbPos = 0

	for len(output) > 0 {
		if s.squeezePos == rate {
			s.permutation.Permute()
			s.squeezePos = 0
		}

		chunkLen := min(len(output), rate-s.squeezePos)
		chunk, rest := output[:chunkLen], output[chunkLen:]

		copy(chunk, s.permutation.State()[s.squeezePos:s.squeezePos+chunkLen])
		s.squeezePos += chunkLen
		output = rest
	}
}

func (s *DuplexSponge[U, P]) RatchetUnchecked() {
	rate := s.permutation.Rate()

	s.permutation.Permute()
	clear(s.permutation.State()[:rate])
	s.squeezePos = rate
}

// Zeroize wipes the permutation state, capacity included.
func (s *DuplexSponge[U, P]) Zeroize() {
	clear(s.permutation.State())
	s.absorbPos = 0
	s.squeezePos = s.permutation.Rate()
}

// Permutation gives access to the underlying permutation.
//
// Reading its state breaks the security guarantees of the sponge and is only
// meant for tests and for formatting, which implementations redact.
func (s *DuplexSponge[U, P]) Permutation() P {
	return s.permutation
}

// Clone returns an independent copy of the sponge. clone must deep copy
// the permutation.
//
// Both copies continue from the same state and produce the same output for
// the same input, so a clone must never be used for two different
// transcripts.
func (s *DuplexSponge[U, P]) Clone(clone func(P) P) *DuplexSponge[U, P] {
	return track(&DuplexSponge[U, P]{
		permutation: clone(s.permutation),
		absorbPos:   s.absorbPos,
		squeezePos:  s.squeezePos,
	})
}
