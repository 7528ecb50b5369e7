package unit

import "errors"

var ErrNonCanonicalScalar = errors.New("scalar is not canonical when interpreted as a little-endian integer")
