// Package pool provides type-safe generic wrappers around sync.Pool
// for scratch values that may hold secret material.
//
// Every value handed back through Put is wiped before it re-enters
// the pool, so a later Get never observes bytes from a previous user.
//
// Example usage:
//
//	var blockPool = sync.Pool{
//	    New: func() any {
//	        return pool.NewBuffer(64)
//	    },
//	}
//
//	func squeezeBlock() error {
//	    buf, err := pool.Get[*pool.Buffer](&blockPool)
//	    if err != nil {
//	        return err
//	    }
//	    defer pool.Put(&blockPool, buf)
//
//	    // Use buf.Bytes...
//	    return nil
//	}
package pool

import (
	"fmt"
	"sync"
)

// Wiper is implemented by values that can erase their contents.
type Wiper interface {
	Wipe()
}

// Get retrieves a value from the pool with type safety.
// Returns an error if:
//   - the pool is nil
//   - the pool returns nil
//   - the pool returns a value of the wrong type
func Get[T Wiper](p *sync.Pool) (T, error) {
	var zero T

	if p == nil {
		return zero, ErrPoolIsNil
	}

	v := p.Get()
	if v == nil {
		return zero, ErrPoolReturnedNil
	}

	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: expected %T, got %T",
			ErrPoolWrongType, zero, v)
	}

	return typed, nil
}

// Put wipes v and returns it to the pool.
// Silently ignores nil pool to avoid panics in defer statements,
// the value is still wiped in that case.
func Put[T Wiper](p *sync.Pool, v T) {
	v.Wipe()
	if p == nil {
		return
	}
	p.Put(v)
}

// Buffer is a fixed size byte scratch buffer.
type Buffer struct {
	Bytes []byte
}

// NewBuffer allocates a Buffer of the given size.
func NewBuffer(size int) *Buffer {
	return &Buffer{Bytes: make([]byte, size)}
}

// Wipe zeroes the buffer contents. The length is kept.
func (b *Buffer) Wipe() {
	if b == nil {
		return
	}
	clear(b.Bytes)
}
