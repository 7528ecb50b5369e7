// Command test_vectors regenerates the YAML test vectors checked by the
// keccak and spongefish packages.
package main

import (
	"os"

	"gopkg.in/yaml.v2"
)

func main() {
	saveAsYaml(DuplexFile{Vectors: generateDuplex()}, "duplex_vectors.yaml")
	saveAsYaml(TranscriptFile{Vectors: generateTranscripts()}, "transcript_vectors.yaml")
}

func saveAsYaml(data interface{}, fileName string) {
	file, err := yaml.Marshal(data)
	if err != nil {
		panic(err)
	}
	if err := os.WriteFile(fileName, file, 0644); err != nil {
		panic(err)
	}
}

func repeat(b byte, n int) []byte {
	res := make([]byte, n)
	for i := range res {
		res[i] = b
	}
	return res
}
