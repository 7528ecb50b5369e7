// Package spongefish provides Fiat-Shamir transcripts for interactive
// protocols, built on a duplex sponge and an interaction pattern.
//
// A protocol is first described once as an InteractionPattern, using the
// Record helpers of this package on a pattern.PatternState. The hash of
// the pattern seeds the sponge, so that every challenge is bound to the
// shape of the protocol. The prover then runs the protocol on a
// ProverState, which produces the proof, and the verifier replays it on
// a VerifierState, which consumes it. Both check each operation against
// the pattern.
//
// The packages under this module are:
//
//   - duplex: the generic duplex sponge and the digest bridge
//   - keccak: the Keccak-f[1600] permutation
//   - poseidon2: a sponge over the BLS12-381 scalar field
//   - pattern: interactions, patterns, recorders and players
//   - unit: codecs for bytes and scalars
package spongefish
