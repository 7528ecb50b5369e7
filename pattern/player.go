package pattern

// PatternPlayer plays back an InteractionPattern and checks that every
// interaction matches the recorded one.
//
// A mismatch is a programming error on one side of the protocol and
// panics. A PatternPlayer must end with exactly one call to Finalize or
// Abort, Replay does that on every path. A player that is garbage
// collected before either is reported, see SetDropReporter.
type PatternPlayer struct {
	*playback
}

var _ Pattern = (*PatternPlayer)(nil)

// NewPatternPlayer starts a playback of pattern. The pattern is only read
// and may be shared by many players.
func NewPatternPlayer(pattern *InteractionPattern) *PatternPlayer {
	return newPatternPlayer(pattern)
}

// Interact plays the next interaction.
//
// Panics with a *PlaybackError, and finalizes the player, if the
// interaction differs from the expected one or if none is expected.
// Panics with ErrLifecycle once the player is finalized or aborted.
func (p *PatternPlayer) Interact(interaction Interaction) {
	if p.finalized {
		panic(ErrLifecycle)
	}

	if p.position >= len(p.pattern.interactions) {
		p.finalized = true
		panic(&PlaybackError{Position: p.position, Received: &interaction})
	}
	expected := p.pattern.interactions[p.position]
	if expected != interaction {
		p.finalized = true
		panic(&PlaybackError{Position: p.position, Received: &interaction, Expected: &expected})
	}

	p.position++
}

// Finalize asserts that the whole pattern has been played.
//
// Panics with a *PlaybackError naming the next expected interaction if
// the playback is not finished, and with ErrLifecycle if called twice or
// after Abort.
func (p *PatternPlayer) Finalize() {
	if p.finalized {
		panic(ErrLifecycle)
	}
	p.finalized = true

	if p.position < len(p.pattern.interactions) {
		expected := p.pattern.interactions[p.position]
		panic(&PlaybackError{Position: p.position, Expected: &expected})
	}
}

// Abort ends the playback without checking that it is complete.
// Panics with ErrLifecycle if already finalized.
func (p *PatternPlayer) Abort() {
	if p.finalized {
		panic(ErrLifecycle)
	}
	p.finalized = true
}

// Finalized reports whether Finalize or Abort has been called, or a
// mismatch ended the playback.
func (p *PatternPlayer) Finalized() bool {
	return p.finalized
}

// Position is the number of interactions played so far.
func (p *PatternPlayer) Position() int {
	return p.position
}

// Pattern returns the pattern being played.
func (p *PatternPlayer) Pattern() *InteractionPattern {
	return p.pattern
}

// Replay runs fn on a fresh player of pattern and finalizes it.
//
// If fn panics the player is aborted before the panic propagates.
func Replay(pattern *InteractionPattern, fn func(*PatternPlayer)) {
	player := NewPatternPlayer(pattern)
	defer func() {
		if !player.finalized {
			player.Abort()
		}
	}()

	fn(player)
	player.Finalize()
}
