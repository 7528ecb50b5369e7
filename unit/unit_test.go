package unit

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/crate-crypto/go-spongefish/internal/utils"
	"github.com/stretchr/testify/require"
)

var errSink = errors.New("sink is closed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errSink }

func TestBytesRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Bytes{}.Write(&buf, []byte("transcript")))

	got := make([]byte, len("transcript"))
	require.NoError(t, Bytes{}.Read(&buf, got))
	require.Equal(t, []byte("transcript"), got)
}

func TestBytesShortRead(t *testing.T) {
	got := make([]byte, 4)
	err := Bytes{}.Read(bytes.NewReader([]byte{1, 2}), got)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	// Nothing at all is still a short read
	err = Bytes{}.Read(bytes.NewReader(nil), got)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	// Reading nothing always succeeds
	require.NoError(t, Bytes{}.Read(bytes.NewReader(nil), nil))
}

func TestBytesWriteError(t *testing.T) {
	err := Bytes{}.Write(failingWriter{}, []byte{1})
	require.ErrorIs(t, err, errSink)
}

func TestScalarsRoundTrip(t *testing.T) {
	scalars := make([]fr.Element, 5)
	for i := range scalars {
		scalars[i].SetUint64(uint64(1000 + i))
	}
	scalars[4].SetRandom()

	var buf bytes.Buffer
	require.NoError(t, Scalars{}.Write(&buf, scalars))
	require.Equal(t, 5*ScalarSize, buf.Len())

	// little-endian on the wire
	require.Equal(t, byte(1000&0xff), buf.Bytes()[0])

	got := make([]fr.Element, 5)
	require.NoError(t, Scalars{}.Read(&buf, got))
	for i := range scalars {
		require.True(t, scalars[i].Equal(&got[i]))
	}
}

func TestScalarsRejectNonCanonical(t *testing.T) {
	modulus := fr.Modulus().Bytes()
	utils.Reverse(modulus)

	got := make([]fr.Element, 1)
	err := Scalars{}.Read(bytes.NewReader(modulus), got)
	require.ErrorIs(t, err, ErrNonCanonicalScalar)
}

func TestScalarsShortRead(t *testing.T) {
	got := make([]fr.Element, 2)
	err := Scalars{}.Read(bytes.NewReader(make([]byte, ScalarSize+3)), got)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.ErrorContains(t, err, "reading scalar 1")
}

func TestScalarsWriteError(t *testing.T) {
	err := Scalars{}.Write(failingWriter{}, make([]fr.Element, 1))
	require.ErrorIs(t, err, errSink)
}
