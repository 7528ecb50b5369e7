// Package unit provides the wire codecs for the units sponges operate on.
package unit

import (
	"errors"
	"fmt"
	"io"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/crate-crypto/go-spongefish/duplex"
	"github.com/crate-crypto/go-spongefish/internal/utils"
)

// ScalarSize is the number of bytes of a serialised scalar
const ScalarSize = fr.Bytes

var (
	_ duplex.Codec[byte]       = Bytes{}
	_ duplex.Codec[fr.Element] = Scalars{}
)

// Bytes is the codec of the canonical unit, a single byte.
type Bytes struct{}

func (Bytes) Write(w io.Writer, units []byte) error {
	if _, err := w.Write(units); err != nil {
		return fmt.Errorf("writing %d bytes: %w", len(units), err)
	}
	return nil
}

func (Bytes) Read(r io.Reader, units []byte) error {
	if _, err := io.ReadFull(r, units); err != nil {
		return fmt.Errorf("reading %d bytes: %w", len(units), shortRead(err))
	}
	return nil
}

// Scalars is the codec of BLS12-381 scalar field elements.
//
// Each element is written as 32 bytes in little-endian order. Reading
// rejects encodings that are not reduced modulo the field order.
type Scalars struct{}

func (Scalars) Write(w io.Writer, units []fr.Element) error {
	for i := range units {
		serScalar := utils.ScalarToLE(&units[i])
		_, err := w.Write(serScalar[:])
		clear(serScalar[:])
		if err != nil {
			return fmt.Errorf("writing scalar %d: %w", i, err)
		}
	}
	return nil
}

func (Scalars) Read(r io.Reader, units []fr.Element) error {
	var serScalar [ScalarSize]byte
	defer clear(serScalar[:])

	for i := range units {
		if _, err := io.ReadFull(r, serScalar[:]); err != nil {
			return fmt.Errorf("reading scalar %d: %w", i, shortRead(err))
		}
		scalar, err := utils.ReduceCanonicalLE(serScalar[:])
		if err != nil {
			return fmt.Errorf("reading scalar %d: %w", i, ErrNonCanonicalScalar)
		}
		units[i] = scalar
	}
	return nil
}

// A read that stops early is always unexpected, the caller sized the buffer.
func shortRead(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
