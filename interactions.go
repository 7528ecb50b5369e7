package spongefish

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/crate-crypto/go-spongefish/pattern"
)

// The interactions performed by ProverState and VerifierState. The
// Record helpers describe the same interactions on a PatternState.

func beginProtocol(p pattern.Pattern, label string) {
	pattern.BeginProtocol[struct{}](p, label)
}

func endProtocol(p pattern.Pattern, label string) {
	pattern.EndProtocol[struct{}](p, label)
}

func public(p pattern.Pattern, label string, size int) {
	pattern.Public[[]byte](p, label, pattern.LengthFixed(size))
}

func message(p pattern.Pattern, label string, size int) {
	pattern.Message[[]byte](p, label, pattern.LengthFixed(size))
}

func messageScalars(p pattern.Pattern, label string, count int) {
	pattern.Message[[]fr.Element](p, label, pattern.LengthFixed(count))
}

func hint(p pattern.Pattern, label string) {
	pattern.Hint[[]byte](p, label, pattern.LengthDynamic)
}

func challenge(p pattern.Pattern, label string, size int) {
	pattern.Challenge[[]byte](p, label, pattern.LengthFixed(size))
}

func challengeScalars(p pattern.Pattern, label string, count int) {
	pattern.Challenge[[]fr.Element](p, label, pattern.LengthFixed(count))
}

func ratchet(p pattern.Pattern, label string) {
	pattern.Atomic[struct{}](p, label, pattern.KindProtocol, pattern.LengthNone)
}

func RecordBeginProtocol(s *pattern.PatternState, label string) { beginProtocol(s, label) }
func RecordEndProtocol(s *pattern.PatternState, label string) { endProtocol(s, label) }

// RecordPublic records a public value of size bytes.
func RecordPublic(s *pattern.PatternState, label string, size int) { public(s, label, size) }

// RecordMessage records a prover message of size bytes.
func RecordMessage(s *pattern.PatternState, label string, size int) { message(s, label, size) }

// RecordMessageScalars records a prover message of count scalars.
func RecordMessageScalars(s *pattern.PatternState, label string, count int) {
	messageScalars(s, label, count)
}

// RecordHint records a hint. Hints have a dynamic length.
func RecordHint(s *pattern.PatternState, label string) { hint(s, label) }

// RecordChallenge records a challenge of size bytes.
func RecordChallenge(s *pattern.PatternState, label string, size int) { challenge(s, label, size) }

// RecordChallengeScalars records a challenge of count scalars.
func RecordChallengeScalars(s *pattern.PatternState, label string, count int) {
	challengeScalars(s, label, count)
}

// RecordRatchet records a ratchet of the sponge.
func RecordRatchet(s *pattern.PatternState, label string) { ratchet(s, label) }
