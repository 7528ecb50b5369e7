package pattern

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/crate-crypto/go-spongefish/internal/log"
)

var dropReporter atomic.Pointer[func(error)]

func init() {
	report := func(err error) {
		log.New(nil, log.ErrorLevel, false).Named("pattern").Errorw("transcript was garbage collected before Finalize or Abort", "err", err)
	}
	dropReporter.Store(&report)
}

// SetDropReporter replaces the function told about a PatternState or
// PatternPlayer that became unreachable before Finalize or Abort, and
// returns the previous one. The error wraps ErrDropped.
//
// The reporter runs on a runtime cleanup goroutine. The default one logs
// the error to stderr.
func SetDropReporter(report func(error)) func(error) {
	return *dropReporter.Swap(&report)
}

func reportDropped(err error) {
	(*dropReporter.Load())(err)
}

// recording is the mutable part of a PatternState. It is allocated on its
// own so that a cleanup can inspect it once the state is unreachable.
type recording struct {
	interactions []Interaction
	finalized    bool
}

func (r *recording) checkDropped() {
	if r.finalized {
		return
	}
	if position, begin, ok := r.lastOpenBegin(); ok {
		reportDropped(fmt.Errorf("%w: recording of %d interactions, %s at %d is still open", ErrDropped, len(r.interactions), begin, position))
		return
	}
	reportDropped(fmt.Errorf("%w: recording of %d interactions", ErrDropped, len(r.interactions)))
}

// playback is the mutable part of a PatternPlayer, see recording.
type playback struct {
	pattern   *InteractionPattern
	position  int
	finalized bool
}

func (p *playback) checkDropped() {
	if p.finalized {
		return
	}
	if p.position < len(p.pattern.interactions) {
		reportDropped(fmt.Errorf("%w: playback expecting %s at %d", ErrDropped, p.pattern.interactions[p.position], p.position))
		return
	}
	reportDropped(fmt.Errorf("%w: playback complete at %d but not finalized", ErrDropped, p.position))
}

func newPatternState() *PatternState {
	s := &PatternState{recording: &recording{}}
	runtime.AddCleanup(s, (*recording).checkDropped, s.recording)
	return s
}

func newPatternPlayer(pattern *InteractionPattern) *PatternPlayer {
	p := &PatternPlayer{playback: &playback{pattern: pattern}}
	runtime.AddCleanup(p, (*playback).checkDropped, p.playback)
	return p
}
