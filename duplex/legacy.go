package duplex

import (
	"crypto/sha256"
	"encoding/binary"
	"hash"
	"runtime"
	"sync"

	"github.com/crate-crypto/go-spongefish/internal/pool"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Domain separation bytes for the different hash invocations of the bridge
const (
	tagInit    byte = 0x00
	tagRestart byte = 0x01
	tagFinish  byte = 0x02
	tagSqueeze byte = 0x03
	tagRatchet byte = 0x04
)

type bridgeMode uint8

const (
	modeAbsorb bridgeMode = iota
	modeSqueeze
)

// tag byte followed by a little-endian u64 counter
const counterLen = 1 + 8

var counterPool = sync.Pool{
	New: func() any {
		return pool.NewBuffer(counterLen)
	},
}

// DigestBridge turns a conventional fixed-output hash function into a
// duplex construction.
//
// Absorbed bytes are streamed into the hash. The first squeeze after
// absorbing finalizes the hash into a chaining value, output is then
// produced in counter mode as H(0x03 || cv || counter). Absorbing after
// squeezing restarts the hash from the chaining value.
//
// The hash state, chaining value and buffered output are wiped once the
// bridge is garbage collected, whether or not Zeroize was called.
type DigestBridge struct {
	newHash func() hash.Hash
	mode    bridgeMode

	counter  uint64
	blockPos int
	*bridgeSecrets
}

// bridgeSecrets is allocated apart from its DigestBridge so that a
// cleanup can still reach it once the bridge is unreachable.
type bridgeSecrets struct {
	hasher hash.Hash
	cv     []byte
	block  []byte
}

func (s *bridgeSecrets) wipe() {
	clear(s.cv)
	clear(s.block)
	s.hasher.Reset()
	afterWipe(s)
}

var _ Interface[byte] = (*DigestBridge)(nil)

// NewDigestBridge seeds a bridge over the hash returned by newHash.
// The IV is absorbed first, zero padded to the block size of the hash.
func NewDigestBridge(newHash func() hash.Hash, iv [32]byte) *DigestBridge {
	hasher := newHash()

	prefix := make([]byte, max(hasher.BlockSize(), 1+len(iv)))
	prefix[0] = tagInit
	copy(prefix[1:], iv[:])
	hasher.Write(prefix)
	clear(prefix)

	b := &DigestBridge{
		newHash:       newHash,
		mode:          modeAbsorb,
		bridgeSecrets: &bridgeSecrets{hasher: hasher},
	}
	runtime.AddCleanup(b, (*bridgeSecrets).wipe, b.bridgeSecrets)
	return b
}

// NewSHA3Bridge is a DigestBridge over SHA3-256.
func NewSHA3Bridge(iv [32]byte) *DigestBridge {
	return NewDigestBridge(sha3.New256, iv)
}

// NewSHA256Bridge is a DigestBridge over SHA-256.
func NewSHA256Bridge(iv [32]byte) *DigestBridge {
	return NewDigestBridge(sha256.New, iv)
}

// NewBlake2bBridge is a DigestBridge over unkeyed BLAKE2b-256.
func NewBlake2bBridge(iv [32]byte) *DigestBridge {
	return NewDigestBridge(newBlake2b256, iv)
}

func newBlake2b256() hash.Hash {
	// Only fails for keys longer than 64 bytes
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(err)
	}
	return h
}

func (b *DigestBridge) AbsorbUnchecked(input []byte) {
	if b.mode == modeSqueeze {
		b.restart()
	}
	b.hasher.Write(input)
}

func (b *DigestBridge) SqueezeUnchecked(output []byte) {
	if len(output) == 0 {
		return
	}
	if b.mode == modeAbsorb {
		b.finish()
	}

	for len(output) > 0 {
		if b.blockPos == len(b.block) {
			b.nextBlock()
		}
		n := copy(output, b.block[b.blockPos:])
		b.blockPos += n
		output = output[n:]
	}
}

func (b *DigestBridge) RatchetUnchecked() {
	if b.mode == modeAbsorb {
		b.finish()
	}

	b.hasher.Reset()
	b.hasher.Write([]byte{tagRatchet})
	b.hasher.Write(b.cv)
	b.cv = b.hasher.Sum(b.cv[:0])
	b.hasher.Reset()

	b.discardBlock()
	b.counter = 0
}

// Zeroize wipes the chaining value and any buffered output.
func (b *DigestBridge) Zeroize() {
	clear(b.cv)
	b.discardBlock()
	b.counter = 0
	b.hasher.Reset()
	b.mode = modeAbsorb
}

// restart begins a new absorption bound to the current chaining value.
func (b *DigestBridge) restart() {
	b.hasher.Reset()
	b.hasher.Write([]byte{tagRestart})
	b.hasher.Write(b.cv)
	b.discardBlock()
	b.mode = modeAbsorb
}

// finish closes the current absorption into the chaining value.
func (b *DigestBridge) finish() {
	b.hasher.Write([]byte{tagFinish})
	clear(b.cv)
	b.cv = b.hasher.Sum(b.cv[:0])
	b.hasher.Reset()

	b.discardBlock()
	b.counter = 0
	b.mode = modeSqueeze
}

func (b *DigestBridge) nextBlock() {
	scratch, err := pool.Get[*pool.Buffer](&counterPool)
	if err != nil {
		scratch = pool.NewBuffer(counterLen)
	}
	defer pool.Put(&counterPool, scratch)

	scratch.Bytes[0] = tagSqueeze
	binary.LittleEndian.PutUint64(scratch.Bytes[1:], b.counter)

	b.hasher.Reset()
	b.hasher.Write(scratch.Bytes[:1])
	b.hasher.Write(b.cv)
	b.hasher.Write(scratch.Bytes[1:])
	b.block = b.hasher.Sum(b.block[:0])
	b.hasher.Reset()

	b.counter++
	b.blockPos = 0
}

func (b *DigestBridge) discardBlock() {
	clear(b.block)
	b.blockPos = len(b.block)
}
