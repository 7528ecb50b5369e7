package spongefish_test

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/crate-crypto/go-spongefish"
	"github.com/crate-crypto/go-spongefish/pattern"
)

func Example() {
	// Describe the protocol once
	p, err := pattern.Record(func(s *pattern.PatternState) {
		spongefish.RecordBeginProtocol(s, "echo")
		spongefish.RecordMessage(s, "commitment", 4)
		spongefish.RecordChallenge(s, "challenge", 8)
		spongefish.RecordMessage(s, "response", 8)
		spongefish.RecordEndProtocol(s, "echo")
	})
	if err != nil {
		panic(err)
	}

	proof, err := spongefish.Prove(p, func(ps *spongefish.ProverState) error {
		ps.BeginProtocol("echo")
		ps.Message("commitment", []byte("ping"))
		challenge := ps.Challenge("challenge", 8)
		ps.Message("response", challenge)
		ps.EndProtocol("echo")
		return nil
	})
	if err != nil {
		panic(err)
	}

	err = spongefish.Verify(p, proof, func(vs *spongefish.VerifierState) error {
		vs.BeginProtocol("echo")
		if _, err := vs.Message("commitment", 4); err != nil {
			return err
		}
		challenge := vs.Challenge("challenge", 8)
		response, err := vs.Message("response", 8)
		if err != nil {
			return err
		}
		if !bytes.Equal(challenge, response) {
			return errors.New("wrong response")
		}
		vs.EndProtocol("echo")
		return nil
	})

	fmt.Println(len(proof), err)
	// Output: 12 <nil>
}
