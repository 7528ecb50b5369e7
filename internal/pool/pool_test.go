package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type countingWiper struct {
	wiped int
}

func (c *countingWiper) Wipe() { c.wiped++ }

func TestPool_HappyPath(t *testing.T) {
	p := &sync.Pool{
		New: func() any {
			return NewBuffer(10)
		},
	}

	buf, err := Get[*Buffer](p)
	require.NoError(t, err)
	require.NotNil(t, buf)
	require.Len(t, buf.Bytes, 10)

	Put(p, buf)
}

func TestPool_PutWipes(t *testing.T) {
	p := &sync.Pool{
		New: func() any {
			return NewBuffer(4)
		},
	}

	buf, err := Get[*Buffer](p)
	require.NoError(t, err)
	copy(buf.Bytes, []byte{1, 2, 3, 4})

	Put(p, buf)
	require.Equal(t, []byte{0, 0, 0, 0}, buf.Bytes)
}

func TestPool_WrongType(t *testing.T) {
	p := &sync.Pool{
		New: func() any {
			return "wrong type"
		},
	}

	_, err := Get[*Buffer](p)
	require.ErrorIs(t, err, ErrPoolWrongType)
	require.ErrorContains(t, err, "expected *pool.Buffer, got string")
}

func TestPool_ReturnsNil(t *testing.T) {
	p := &sync.Pool{
		New: func() any {
			return nil
		},
	}

	_, err := Get[*Buffer](p)
	require.ErrorIs(t, err, ErrPoolReturnedNil)
}

func TestPool_NilPool(t *testing.T) {
	_, err := Get[*Buffer](nil)
	require.ErrorIs(t, err, ErrPoolIsNil)

	// Put should not panic with nil pool, but the value is still wiped
	w := &countingWiper{}
	require.NotPanics(t, func() {
		Put(nil, w)
	})
	require.Equal(t, 1, w.wiped)

	// Nil buffers are tolerated as well
	require.NotPanics(t, func() {
		Put[*Buffer](nil, nil)
	})
}
