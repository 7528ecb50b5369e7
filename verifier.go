package spongefish

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/crate-crypto/go-spongefish/duplex"
	"github.com/crate-crypto/go-spongefish/pattern"
	"github.com/crate-crypto/go-spongefish/unit"
)

// VerifierState runs the verifier side of a protocol described by an
// InteractionPattern, reading prover messages from a proof.
//
// Like ProverState, every operation is checked against the pattern.
// Malformed proofs are reported as errors.
type VerifierState struct {
	player   *pattern.PatternPlayer
	sponge   duplex.Interface[byte]
	narg     *bytes.Reader
	finished bool
}

func NewVerifierState(p *pattern.InteractionPattern, proof []byte, opts ...Option) *VerifierState {
	cfg := newConfig(opts)
	return &VerifierState{
		player: pattern.NewPatternPlayer(p),
		sponge: cfg.newSponge(p.PatternHash()),
		narg:   bytes.NewReader(proof),
	}
}

func (vs *VerifierState) BeginProtocol(label string) {
	beginProtocol(vs.player, label)
}

func (vs *VerifierState) EndProtocol(label string) {
	endProtocol(vs.player, label)
}

// Public absorbs a value both parties know.
func (vs *VerifierState) Public(label string, data []byte) {
	public(vs.player, label, len(data))
	vs.sponge.AbsorbUnchecked(data)
}

// Message reads size bytes from the proof and absorbs them.
func (vs *VerifierState) Message(label string, size int) ([]byte, error) {
	message(vs.player, label, size)

	data := make([]byte, size)
	if err := (unit.Bytes{}).Read(vs.narg, data); err != nil {
		return nil, fmt.Errorf("message %q: %w", label, err)
	}
	vs.sponge.AbsorbUnchecked(data)
	return data, nil
}

// MessageScalars reads count canonically encoded scalars from the proof
// and absorbs their encoding.
func (vs *VerifierState) MessageScalars(label string, count int) ([]fr.Element, error) {
	messageScalars(vs.player, label, count)

	encoded := make([]byte, count*unit.ScalarSize)
	defer clear(encoded)
	if err := (unit.Bytes{}).Read(vs.narg, encoded); err != nil {
		return nil, fmt.Errorf("message %q: %w", label, err)
	}

	scalars := make([]fr.Element, count)
	if err := (unit.Scalars{}).Read(bytes.NewReader(encoded), scalars); err != nil {
		return nil, fmt.Errorf("message %q: %w", label, err)
	}
	vs.sponge.AbsorbUnchecked(encoded)
	return scalars, nil
}

// Hint reads a length prefixed hint from the proof.
func (vs *VerifierState) Hint(label string) ([]byte, error) {
	hint(vs.player, label)

	var prefix [4]byte
	if err := (unit.Bytes{}).Read(vs.narg, prefix[:]); err != nil {
		return nil, fmt.Errorf("hint %q length: %w", label, err)
	}
	size := binary.LittleEndian.Uint32(prefix[:])
	if int64(size) > int64(vs.narg.Len()) {
		return nil, fmt.Errorf("hint %q: %d bytes, %d remaining: %w", label, size, vs.narg.Len(), io.ErrUnexpectedEOF)
	}

	data := make([]byte, size)
	if err := (unit.Bytes{}).Read(vs.narg, data); err != nil {
		return nil, fmt.Errorf("hint %q: %w", label, err)
	}
	return data, nil
}

// Challenge squeezes size bytes from the sponge.
func (vs *VerifierState) Challenge(label string, size int) []byte {
	challenge(vs.player, label, size)
	return squeezeBytes(vs.sponge, size)
}

// ChallengeScalars squeezes count uniformly distributed scalars.
func (vs *VerifierState) ChallengeScalars(label string, count int) []fr.Element {
	challengeScalars(vs.player, label, count)
	return squeezeScalars(vs.sponge, count)
}

// Ratchet irreversibly forgets the rate of the sponge.
func (vs *VerifierState) Ratchet(label string) {
	ratchet(vs.player, label)
	vs.sponge.RatchetUnchecked()
}

// Finalize asserts that the whole pattern has been played and the whole
// proof has been read. The sponge is wiped.
func (vs *VerifierState) Finalize() error {
	if vs.finished {
		panic(pattern.ErrLifecycle)
	}
	vs.finished = true
	defer vs.sponge.Zeroize()

	vs.player.Finalize()
	if vs.narg.Len() > 0 {
		return fmt.Errorf("%w: %d bytes", ErrTrailingBytes, vs.narg.Len())
	}
	return nil
}

// Abort ends the verification. The sponge is wiped.
func (vs *VerifierState) Abort() {
	if vs.finished {
		panic(pattern.ErrLifecycle)
	}
	vs.finished = true
	defer vs.sponge.Zeroize()

	if !vs.player.Finalized() {
		vs.player.Abort()
	}
}

// Verify runs fn on a fresh VerifierState over proof.
//
// The verifier is aborted if fn returns an error or panics.
func Verify(p *pattern.InteractionPattern, proof []byte, fn func(*VerifierState) error, opts ...Option) error {
	verifier := NewVerifierState(p, proof, opts...)
	defer func() {
		if !verifier.finished {
			verifier.Abort()
		}
	}()

	if err := fn(verifier); err != nil {
		return err
	}
	return verifier.Finalize()
}
