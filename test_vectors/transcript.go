package main

import (
	"encoding/hex"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/crate-crypto/go-spongefish"
	"github.com/crate-crypto/go-spongefish/internal/utils"
	"github.com/crate-crypto/go-spongefish/pattern"
)

type TranscriptOperation struct {
	Op     string   `yaml:"op"`
	Label  string   `yaml:"label"`
	Data   *string  `yaml:"data,omitempty"`
	Length int      `yaml:"length,omitempty"`
	Count  int      `yaml:"count,omitempty"`
	Values []uint64 `yaml:"values,omitempty"`
}

type TranscriptVector struct {
	Name        string                `yaml:"name"`
	Operations  []TranscriptOperation `yaml:"operations"`
	PatternHash string                `yaml:"pattern_hash"`
	Proof       string                `yaml:"proof"`
	Challenges  []string              `yaml:"challenges"`
}

type TranscriptFile struct {
	Vectors []TranscriptVector `yaml:"vectors"`
}

func op(name, label string) TranscriptOperation {
	return TranscriptOperation{Op: name, Label: label}
}

func withData(name, label string, data []byte) TranscriptOperation {
	encoded := hex.EncodeToString(data)
	return TranscriptOperation{Op: name, Label: label, Data: &encoded}
}

func generateTranscripts() []TranscriptVector {
	vectors := []TranscriptVector{
		{Name: "schnorr_shape", Operations: []TranscriptOperation{
			op("begin_protocol", "schnorr"),
			withData("public", "statement", []byte("public key")),
			withData("message", "commitment", counting(32)),
			{Op: "challenge", Label: "challenge", Length: 32},
			withData("message", "response", repeat(0x42, 32)),
			op("end_protocol", "schnorr"),
		}},
		{Name: "hints_and_ratchet", Operations: []TranscriptOperation{
			withData("hint", "witness", []byte("out of band")),
			withData("message", "first", []byte("abc")),
			op("ratchet", "phase"),
			{Op: "challenge", Label: "after ratchet", Length: 200},
			withData("hint", "empty", nil),
			{Op: "challenge", Label: "again", Length: 1},
		}},
		{Name: "scalars", Operations: []TranscriptOperation{
			op("begin_protocol", "sumcheck"),
			{Op: "message_scalars", Label: "round polynomial", Values: []uint64{1, 2, 3}},
			{Op: "challenge_scalars", Label: "r", Count: 2},
			{Op: "message_scalars", Label: "claim", Values: []uint64{18446744073709551615}},
			{Op: "challenge_scalars", Label: "s", Count: 1},
			op("end_protocol", "sumcheck"),
		}},
	}

	for i := range vectors {
		runTranscript(&vectors[i])
	}
	return vectors
}

func runTranscript(vector *TranscriptVector) {
	p, err := pattern.Record(func(s *pattern.PatternState) {
		for _, op := range vector.Operations {
			switch op.Op {
			case "begin_protocol":
				spongefish.RecordBeginProtocol(s, op.Label)
			case "end_protocol":
				spongefish.RecordEndProtocol(s, op.Label)
			case "public":
				spongefish.RecordPublic(s, op.Label, len(op.data()))
			case "message":
				spongefish.RecordMessage(s, op.Label, len(op.data()))
			case "message_scalars":
				spongefish.RecordMessageScalars(s, op.Label, len(op.Values))
			case "hint":
				spongefish.RecordHint(s, op.Label)
			case "challenge":
				spongefish.RecordChallenge(s, op.Label, op.Length)
			case "challenge_scalars":
				spongefish.RecordChallengeScalars(s, op.Label, op.Count)
			case "ratchet":
				spongefish.RecordRatchet(s, op.Label)
			}
		}
	})
	if err != nil {
		panic(err)
	}
	hash := p.PatternHash()
	vector.PatternHash = hex.EncodeToString(hash[:])

	proof, err := spongefish.Prove(p, func(ps *spongefish.ProverState) error {
		for _, op := range vector.Operations {
			switch op.Op {
			case "begin_protocol":
				ps.BeginProtocol(op.Label)
			case "end_protocol":
				ps.EndProtocol(op.Label)
			case "public":
				ps.Public(op.Label, op.data())
			case "message":
				ps.Message(op.Label, op.data())
			case "message_scalars":
				scalars := make([]fr.Element, len(op.Values))
				for i, v := range op.Values {
					scalars[i].SetUint64(v)
				}
				ps.MessageScalars(op.Label, scalars)
			case "hint":
				ps.Hint(op.Label, op.data())
			case "challenge":
				vector.Challenges = append(vector.Challenges, hex.EncodeToString(ps.Challenge(op.Label, op.Length)))
			case "challenge_scalars":
				var encoded []byte
				for _, scalar := range ps.ChallengeScalars(op.Label, op.Count) {
					serScalar := utils.ScalarToLE(&scalar)
					encoded = append(encoded, serScalar[:]...)
				}
				vector.Challenges = append(vector.Challenges, hex.EncodeToString(encoded))
			case "ratchet":
				ps.Ratchet(op.Label)
			}
		}
		return nil
	})
	if err != nil {
		panic(err)
	}
	vector.Proof = hex.EncodeToString(proof)
}

func (op TranscriptOperation) data() []byte {
	if op.Data == nil {
		return nil
	}
	data, err := hex.DecodeString(*op.Data)
	if err != nil {
		panic(err)
	}
	return data
}

func counting(n int) []byte {
	res := make([]byte, n)
	for i := range res {
		res[i] = byte(i)
	}
	return res
}
