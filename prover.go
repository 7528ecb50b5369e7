package spongefish

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"runtime"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/crate-crypto/go-spongefish/duplex"
	"github.com/crate-crypto/go-spongefish/internal/utils"
	"github.com/crate-crypto/go-spongefish/pattern"
	"github.com/crate-crypto/go-spongefish/unit"
)

// Number of squeezed bytes reduced into one challenge scalar, so that the
// bias from the modular reduction is below 2^-128.
const challengeScalarBytes = 48

// ProverState runs the prover side of a protocol described by an
// InteractionPattern.
//
// Every operation is checked against the pattern and panics with a
// *pattern.PlaybackError if it differs. Messages are absorbed into a
// sponge seeded with the pattern hash and appended to the proof.
//
// A prover that is garbage collected before Finalize or Abort has its
// partial proof wiped.
type ProverState struct {
	player *pattern.PatternPlayer
	sponge duplex.Interface[byte]
	*proof
}

// proof is allocated apart from its ProverState so that a cleanup can
// still reach it once the prover is unreachable.
type proof struct {
	narg     bytes.Buffer
	finished bool
}

func (p *proof) wipe() {
	buf := p.narg.Bytes()
	clear(buf[:cap(buf)])
	p.narg.Reset()
}

func (p *proof) wipeUnfinished() {
	if !p.finished {
		p.wipe()
	}
}

func NewProverState(p *pattern.InteractionPattern, opts ...Option) *ProverState {
	cfg := newConfig(opts)
	ps := &ProverState{
		player: pattern.NewPatternPlayer(p),
		sponge: cfg.newSponge(p.PatternHash()),
		proof:  &proof{},
	}
	runtime.AddCleanup(ps, (*proof).wipeUnfinished, ps.proof)
	return ps
}

func (ps *ProverState) BeginProtocol(label string) {
	beginProtocol(ps.player, label)
}

func (ps *ProverState) EndProtocol(label string) {
	endProtocol(ps.player, label)
}

// Public absorbs a value the verifier already knows. It is not part of
// the proof.
func (ps *ProverState) Public(label string, data []byte) {
	public(ps.player, label, len(data))
	ps.sponge.AbsorbUnchecked(data)
}

// Message absorbs data and appends it to the proof.
func (ps *ProverState) Message(label string, data []byte) {
	message(ps.player, label, len(data))
	ps.sponge.AbsorbUnchecked(data)
	must(unit.Bytes{}.Write(&ps.narg, data))
}

// MessageScalars absorbs the canonical encoding of scalars and appends it
// to the proof.
func (ps *ProverState) MessageScalars(label string, scalars []fr.Element) {
	messageScalars(ps.player, label, len(scalars))

	var encoded bytes.Buffer
	encoded.Grow(len(scalars) * unit.ScalarSize)
	must(unit.Scalars{}.Write(&encoded, scalars))

	ps.sponge.AbsorbUnchecked(encoded.Bytes())
	must(unit.Bytes{}.Write(&ps.narg, encoded.Bytes()))
}

// Hint appends data to the proof, prefixed with its length as a
// little-endian uint32. Hints are not absorbed.
func (ps *ProverState) Hint(label string, data []byte) {
	if uint64(len(data)) > math.MaxUint32 {
		panic(fmt.Errorf("%w: %d bytes", ErrHintTooLarge, len(data)))
	}
	hint(ps.player, label)

	var prefix [4]byte
	binary.LittleEndian.PutUint32(prefix[:], uint32(len(data)))
	must(unit.Bytes{}.Write(&ps.narg, prefix[:]))
	must(unit.Bytes{}.Write(&ps.narg, data))
}

// Challenge squeezes size bytes from the sponge.
func (ps *ProverState) Challenge(label string, size int) []byte {
	challenge(ps.player, label, size)
	return squeezeBytes(ps.sponge, size)
}

// ChallengeScalars squeezes count uniformly distributed scalars.
func (ps *ProverState) ChallengeScalars(label string, count int) []fr.Element {
	challengeScalars(ps.player, label, count)
	return squeezeScalars(ps.sponge, count)
}

// Ratchet irreversibly forgets the rate of the sponge.
func (ps *ProverState) Ratchet(label string) {
	ratchet(ps.player, label)
	ps.sponge.RatchetUnchecked()
}

// Finalize asserts that the whole pattern has been played and returns
// the proof. The sponge is wiped, and so is the partial proof if the
// pattern is not complete.
func (ps *ProverState) Finalize() []byte {
	if ps.finished {
		panic(pattern.ErrLifecycle)
	}
	ps.finished = true
	defer ps.sponge.Zeroize()

	complete := false
	defer func() {
		if !complete {
			ps.wipe()
		}
	}()

	ps.player.Finalize()
	complete = true
	return ps.narg.Bytes()
}

// Abort ends the proof without producing it. The sponge and the partial
// proof are wiped.
func (ps *ProverState) Abort() {
	if ps.finished {
		panic(pattern.ErrLifecycle)
	}
	ps.finished = true
	defer ps.sponge.Zeroize()

	ps.wipe()
	if !ps.player.Finalized() {
		ps.player.Abort()
	}
}

// Prove runs fn on a fresh ProverState and returns the proof.
//
// The prover is aborted if fn returns an error or panics.
func Prove(p *pattern.InteractionPattern, fn func(*ProverState) error, opts ...Option) ([]byte, error) {
	prover := NewProverState(p, opts...)
	defer func() {
		if !prover.finished {
			prover.Abort()
		}
	}()

	if err := fn(prover); err != nil {
		return nil, err
	}
	return prover.Finalize(), nil
}

func squeezeBytes(sponge duplex.Interface[byte], size int) []byte {
	out := make([]byte, size)
	sponge.SqueezeUnchecked(out)
	return out
}

func squeezeScalars(sponge duplex.Interface[byte], count int) []fr.Element {
	buf := make([]byte, count*challengeScalarBytes)
	defer clear(buf)
	sponge.SqueezeUnchecked(buf)

	scalars := make([]fr.Element, count)
	for i := range scalars {
		scalars[i] = utils.ReduceWideLE(buf[i*challengeScalarBytes : (i+1)*challengeScalarBytes])
	}
	return scalars
}

// Writes to a bytes.Buffer never fail.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
