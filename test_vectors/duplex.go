package main

import (
	"encoding/hex"

	"github.com/crate-crypto/go-spongefish/keccak"
)

type DuplexOperation struct {
	Op     string `yaml:"op"`
	Data   string `yaml:"data,omitempty"`
	Length int    `yaml:"length,omitempty"`
}

type DuplexVector struct {
	Name       string            `yaml:"name"`
	Tag        string            `yaml:"tag"`
	Operations []DuplexOperation `yaml:"operations"`
	Output     string            `yaml:"output"`
}

type DuplexFile struct {
	Vectors []DuplexVector `yaml:"vectors"`
}

func absorb(data []byte) DuplexOperation {
	return DuplexOperation{Op: "absorb", Data: hex.EncodeToString(data)}
}

func squeeze(n int) DuplexOperation {
	return DuplexOperation{Op: "squeeze", Length: n}
}

var ratchet = DuplexOperation{Op: "ratchet"}

func generateDuplex() []DuplexVector {
	const helloTag = "unit_tests_keccak_tag___________"
	hello := []byte("Hello, World!")

	vectors := []DuplexVector{
		{Name: "hello_world", Tag: helloTag, Operations: []DuplexOperation{absorb(hello), squeeze(64)}},
		{Name: "hello_world_split", Tag: helloTag, Operations: []DuplexOperation{absorb(hello[:5]), absorb(hello[5:]), squeeze(64)}},
		{Name: "absorb_empty_before", Tag: helloTag, Operations: []DuplexOperation{absorb(nil), absorb(hello), squeeze(64)}},
		{Name: "absorb_empty_after", Tag: helloTag, Operations: []DuplexOperation{absorb(hello), absorb(nil), squeeze(64)}},
		{Name: "squeeze_zero", Tag: helloTag, Operations: []DuplexOperation{squeeze(0), absorb(hello), squeeze(0), squeeze(64)}},
		{Name: "absorb_squeeze_absorb", Tag: "edge-case-test-domain-absorb0000", Operations: []DuplexOperation{
			absorb([]byte("first")), squeeze(32), absorb([]byte("second")), squeeze(32),
		}},
		{Name: "associativity", Tag: "absorb-associativity-domain-----", Operations: []DuplexOperation{
			absorb([]byte("hello")), absorb([]byte(" world")), squeeze(32),
		}},
		{Name: "tag_one", Tag: "domain-one-differs-here-00000000", Operations: []DuplexOperation{absorb([]byte("input")), squeeze(32)}},
		{Name: "tag_two", Tag: "domain-two-differs-here-00000000", Operations: []DuplexOperation{absorb([]byte("input")), squeeze(32)}},
		{Name: "multi_block", Tag: "multi-block-absorb-test_________", Operations: []DuplexOperation{absorb(repeat(0xab, 600)), squeeze(600)}},
		{Name: "ratchet", Tag: "ratchet-test-domain_____________", Operations: []DuplexOperation{
			absorb([]byte("before")), ratchet, absorb([]byte("after")), squeeze(48),
		}},
		{Name: "squeeze_only", Tag: "squeeze-without-absorb__________", Operations: []DuplexOperation{squeeze(keccak.Rate), squeeze(1)}},
	}

	for i := range vectors {
		vectors[i].Output = runDuplex(vectors[i])
	}
	return vectors
}

func runDuplex(vector DuplexVector) string {
	sponge := keccak.New([32]byte([]byte(vector.Tag)))
	defer sponge.Zeroize()

	var output []byte
	for _, op := range vector.Operations {
		switch op.Op {
		case "absorb":
			data, err := hex.DecodeString(op.Data)
			if err != nil {
				panic(err)
			}
			sponge.AbsorbUnchecked(data)
		case "squeeze":
			out := make([]byte, op.Length)
			sponge.SqueezeUnchecked(out)
			output = append(output, out...)
		case "ratchet":
			sponge.RatchetUnchecked()
		}
	}
	return hex.EncodeToString(output)
}
