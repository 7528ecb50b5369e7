package spongefish

import (
	"github.com/crate-crypto/go-spongefish/duplex"
	"github.com/crate-crypto/go-spongefish/keccak"
)

// Option configures a ProverState or VerifierState.
type Option func(*config)

type config struct {
	newSponge func(iv [32]byte) duplex.Interface[byte]
}

func newConfig(opts []Option) config {
	cfg := config{newSponge: newKeccak}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func newKeccak(iv [32]byte) duplex.Interface[byte] {
	return keccak.New(iv)
}

// WithSponge selects the byte sponge seeded with the pattern hash.
// The prover and the verifier must use the same sponge. The default is
// the Keccak duplex sponge.
func WithSponge(newSponge func(iv [32]byte) duplex.Interface[byte]) Option {
	return func(cfg *config) {
		cfg.newSponge = newSponge
	}
}
