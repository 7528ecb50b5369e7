package spongefish

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/crate-crypto/go-spongefish/internal/utils"
	"github.com/crate-crypto/go-spongefish/pattern"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

type transcriptOperation struct {
	Op     string   `yaml:"op"`
	Label  string   `yaml:"label"`
	Data   string   `yaml:"data"`
	Length int      `yaml:"length"`
	Count  int      `yaml:"count"`
	Values []uint64 `yaml:"values"`
}

type transcriptVector struct {
	Name        string                `yaml:"name"`
	Operations  []transcriptOperation `yaml:"operations"`
	PatternHash string                `yaml:"pattern_hash"`
	Proof       string                `yaml:"proof"`
	Challenges  []string              `yaml:"challenges"`
}

func (op transcriptOperation) data(t *testing.T) []byte {
	data, err := hex.DecodeString(op.Data)
	require.NoError(t, err)
	return data
}

func (op transcriptOperation) scalars() []fr.Element {
	scalars := make([]fr.Element, len(op.Values))
	for i, v := range op.Values {
		scalars[i].SetUint64(v)
	}
	return scalars
}

func encodeScalars(scalars []fr.Element) string {
	var res []byte
	for i := range scalars {
		serScalar := utils.ScalarToLE(&scalars[i])
		res = append(res, serScalar[:]...)
	}
	return hex.EncodeToString(res)
}

func recordVector(t *testing.T, vector transcriptVector) *pattern.InteractionPattern {
	p, err := pattern.Record(func(s *pattern.PatternState) {
		for _, op := range vector.Operations {
			switch op.Op {
			case "begin_protocol":
				RecordBeginProtocol(s, op.Label)
			case "end_protocol":
				RecordEndProtocol(s, op.Label)
			case "public":
				RecordPublic(s, op.Label, len(op.data(t)))
			case "message":
				RecordMessage(s, op.Label, len(op.data(t)))
			case "message_scalars":
				RecordMessageScalars(s, op.Label, len(op.Values))
			case "hint":
				RecordHint(s, op.Label)
			case "challenge":
				RecordChallenge(s, op.Label, op.Length)
			case "challenge_scalars":
				RecordChallengeScalars(s, op.Label, op.Count)
			case "ratchet":
				RecordRatchet(s, op.Label)
			default:
				t.Fatalf("unknown operation %q", op.Op)
			}
		}
	})
	require.NoError(t, err)
	return p
}

func TestTranscriptVectors(t *testing.T) {
	type Test struct {
		Vectors []transcriptVector `yaml:"vectors"`
	}

	testFile, err := os.Open(filepath.Join("testdata", "transcript_vectors.yaml"))
	require.NoError(t, err)
	test := Test{}
	err = yaml.NewDecoder(testFile).Decode(&test)
	require.NoError(t, testFile.Close())
	require.NoError(t, err)
	require.NotEmpty(t, test.Vectors)

	for _, vector := range test.Vectors {
		t.Run(vector.Name, func(t *testing.T) {
			p := recordVector(t, vector)
			hash := p.PatternHash()
			require.Equal(t, vector.PatternHash, hex.EncodeToString(hash[:]))

			var challenges []string
			proof, err := Prove(p, func(ps *ProverState) error {
				for _, op := range vector.Operations {
					switch op.Op {
					case "begin_protocol":
						ps.BeginProtocol(op.Label)
					case "end_protocol":
						ps.EndProtocol(op.Label)
					case "public":
						ps.Public(op.Label, op.data(t))
					case "message":
						ps.Message(op.Label, op.data(t))
					case "message_scalars":
						ps.MessageScalars(op.Label, op.scalars())
					case "hint":
						ps.Hint(op.Label, op.data(t))
					case "challenge":
						challenges = append(challenges, hex.EncodeToString(ps.Challenge(op.Label, op.Length)))
					case "challenge_scalars":
						challenges = append(challenges, encodeScalars(ps.ChallengeScalars(op.Label, op.Count)))
					case "ratchet":
						ps.Ratchet(op.Label)
					}
				}
				return nil
			})
			require.NoError(t, err)
			require.Equal(t, vector.Proof, hex.EncodeToString(proof))
			require.Equal(t, vector.Challenges, challenges)

			challenges = nil
			err = Verify(p, proof, func(vs *VerifierState) error {
				for _, op := range vector.Operations {
					switch op.Op {
					case "begin_protocol":
						vs.BeginProtocol(op.Label)
					case "end_protocol":
						vs.EndProtocol(op.Label)
					case "public":
						vs.Public(op.Label, op.data(t))
					case "message":
						data, err := vs.Message(op.Label, len(op.data(t)))
						if err != nil {
							return err
						}
						require.Equal(t, op.data(t), data)
					case "message_scalars":
						scalars, err := vs.MessageScalars(op.Label, len(op.Values))
						if err != nil {
							return err
						}
						require.Equal(t, op.scalars(), scalars)
					case "hint":
						data, err := vs.Hint(op.Label)
						if err != nil {
							return err
						}
						require.Equal(t, op.data(t), data)
					case "challenge":
						challenges = append(challenges, hex.EncodeToString(vs.Challenge(op.Label, op.Length)))
					case "challenge_scalars":
						challenges = append(challenges, encodeScalars(vs.ChallengeScalars(op.Label, op.Count)))
					case "ratchet":
						vs.Ratchet(op.Label)
					}
				}
				return nil
			})
			require.NoError(t, err)
			require.Equal(t, vector.Challenges, challenges)
		})
	}
}
