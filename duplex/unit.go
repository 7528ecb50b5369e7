package duplex

import "io"

// Codec reads and writes the units a sponge operates on.
//
// Units must be plain values whose zero value is the erased state,
// so that clear() over a slice of units securely wipes it.
type Codec[U any] interface {
	// Write serialises units to w.
	Write(w io.Writer, units []U) error
	// Read fills units from r. A short read is an error.
	Read(r io.Reader, units []U) error
}
