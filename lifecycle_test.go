package spongefish

import (
	"bytes"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/crate-crypto/go-spongefish/pattern"
	"github.com/stretchr/testify/require"
)

func TestProverFinalizeWipesUnfinishedProof(t *testing.T) {
	prover := NewProverState(toyPattern(t))
	prover.BeginProtocol("toy")
	prover.Public("statement", []byte("hello"))
	prover.Message("commitment", bytes.Repeat([]byte{0xaa}, 32))
	written := prover.narg.Bytes()
	require.Len(t, written, 32)

	err := recoverError(func() { prover.Finalize() })
	require.ErrorIs(t, err, pattern.ErrPlaybackMismatch)
	require.Equal(t, make([]byte, 32), written)
	require.Equal(t, 0, prover.narg.Len())
	require.True(t, prover.finished)
}

func TestUnfinishedProofIsWiped(t *testing.T) {
	unfinished := &proof{}
	unfinished.narg.WriteString("partial")
	written := unfinished.narg.Bytes()
	unfinished.wipeUnfinished()
	require.Equal(t, make([]byte, len("partial")), written)
	require.Equal(t, 0, unfinished.narg.Len())

	// A finalized proof belongs to the caller
	finished := &proof{finished: true}
	finished.narg.WriteString("complete")
	finished.wipeUnfinished()
	require.Equal(t, "complete", finished.narg.String())
}

func TestDroppedProverIsReported(t *testing.T) {
	var (
		mu      sync.Mutex
		reports []string
	)
	previous := pattern.SetDropReporter(func(err error) {
		mu.Lock()
		defer mu.Unlock()
		reports = append(reports, err.Error())
	})
	defer pattern.SetDropReporter(previous)

	p, err := pattern.Record(func(s *pattern.PatternState) {
		RecordBeginProtocol(s, "abandoned")
		RecordMessage(s, "abandoned message", 1)
		RecordEndProtocol(s, "abandoned")
	})
	require.NoError(t, err)

	func() {
		prover := NewProverState(p)
		prover.BeginProtocol("abandoned")
	}()

	const expected = "dropped unfinalized transcript: playback expecting Atomic Message abandoned message Fixed(1) []uint8 at 1"
	require.Eventually(t, func() bool {
		runtime.GC()
		mu.Lock()
		defer mu.Unlock()
		for _, report := range reports {
			if strings.Contains(report, "abandoned message") {
				return report == expected
			}
		}
		return false
	}, 5*time.Second, 10*time.Millisecond)
}
