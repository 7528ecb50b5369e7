package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/crate-crypto/go-spongefish/pattern"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := CLI()
	app.Writer = &out
	err := app.Run(append([]string{"spongefish"}, args...))
	return out.String(), err
}

func TestPatternCommand(t *testing.T) {
	out, err := run(t, "pattern", "--file", filepath.Join("testdata", "golden.yaml"), "--canonical")
	require.NoError(t, err)
	require.Equal(t, "Spongefish Transcript (3 interactions)\n"+
		"0 Begin Protocol 4 test None\n"+
		"1   Atomic Message 12 test-message Scalar\n"+
		"2 End Protocol 4 test None\n"+
		"hash: 33daf542c95b80a2b01be277d9d0f9b6d5bee823c5c3a0dcca71e614a5a783e3\n", out)

	out, err = run(t, "--verbose", "pattern", "--file", filepath.Join("testdata", "golden.yaml"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "Spongefish Transcript (3 interactions)\n0 Begin Protocol test None int\n"))
}

func TestPatternCommandInvalid(t *testing.T) {
	_, err := run(t, "--json-logs", "pattern", "--file", filepath.Join("testdata", "mismatched.yaml"))
	require.ErrorIs(t, err, pattern.ErrMismatchedBeginEnd)
	require.ErrorContains(t, err, "at 2")

	_, err = run(t, "pattern")
	require.Error(t, err)
}

func TestSqueezeCommand(t *testing.T) {
	out, err := run(t, "squeeze", "--tag", "unit_tests_keccak_tag___________", "--input", "Hello, World!", "--length", "64")
	require.NoError(t, err)
	require.Equal(t, "73e4a040a956f57693fb2b2dde8a8ea2c14d39ff8830060cd0301d6de25b2097"+
		"ba858efedeeb89368eaf7c94a68f62835f932b5f0dd0ba376c48a0fdb5e21f0c\n", out)

	hexOut, err := run(t, "squeeze", "--tag", "unit_tests_keccak_tag___________", "--hex-input", "--input", "48656c6c6f2c20576f726c6421", "--length", "64")
	require.NoError(t, err)
	require.Equal(t, out, hexOut)

	for _, sponge := range []string{"sha3", "sha256", "blake2b"} {
		bridged, err := run(t, "squeeze", "--sponge", sponge, "--tag", "unit_tests_keccak_tag___________", "--input", "Hello, World!")
		require.NoError(t, err)
		require.Len(t, bridged, 65)
		require.NotEqual(t, out[:64], bridged[:64])
	}
}

func TestSqueezeCommandErrors(t *testing.T) {
	_, err := run(t, "squeeze", "--tag", "short")
	require.ErrorContains(t, err, "tag must be 32 bytes")

	_, err = run(t, "squeeze", "--tag", "unit_tests_keccak_tag___________", "--hex-input", "--input", "zz")
	require.ErrorContains(t, err, "decoding input")

	_, err = run(t, "squeeze", "--tag", "unit_tests_keccak_tag___________", "--sponge", "md5")
	require.ErrorContains(t, err, "unknown sponge")

	_, err = run(t, "squeeze", "--tag", "unit_tests_keccak_tag___________", "--length", "-1")
	require.ErrorContains(t, err, "must not be negative")
}
