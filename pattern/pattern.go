// Package pattern describes interactive protocols as abstract sequences
// of prover-verifier interactions.
//
// A protocol is recorded once with a PatternState into an immutable
// InteractionPattern whose PatternHash binds a sponge to the shape of the
// protocol. While running the protocol, a PatternPlayer checks that both
// parties perform exactly the recorded interactions.
//
// The helpers in this package work on both recorders and players:
//
//	p, err := pattern.Record(func(s *pattern.PatternState) {
//		pattern.BeginProtocol[struct{}](s, "schnorr")
//		pattern.Message[[]byte](s, "commitment", pattern.LengthFixed(32))
//		pattern.Challenge[[]byte](s, "challenge", pattern.LengthFixed(32))
//		pattern.EndProtocol[struct{}](s, "schnorr")
//	})
package pattern

// Pattern is implemented by PatternState and PatternPlayer.
type Pattern interface {
	// Interact records or plays the next interaction.
	Interact(interaction Interaction)
	// Abort ends the transcript without finalizing it.
	Abort()
}

// Atomic performs a single interaction of the given kind.
func Atomic[T any](p Pattern, label string, kind Kind, length Length) {
	p.Interact(InteractionOf[T](HierarchyAtomic, kind, label, length))
}

// Begin opens a group of interactions of the given kind.
func Begin[T any](p Pattern, label string, kind Kind, length Length) {
	p.Interact(InteractionOf[T](HierarchyBegin, kind, label, length))
}

// End closes the group opened by the matching Begin.
func End[T any](p Pattern, label string, kind Kind, length Length) {
	p.Interact(InteractionOf[T](HierarchyEnd, kind, label, length))
}

func BeginProtocol[T any](p Pattern, label string) {
	Begin[T](p, label, KindProtocol, LengthNone)
}

func EndProtocol[T any](p Pattern, label string) {
	End[T](p, label, KindProtocol, LengthNone)
}

func BeginPublic[T any](p Pattern, label string, length Length) {
	Begin[T](p, label, KindPublic, length)
}

func EndPublic[T any](p Pattern, label string, length Length) {
	End[T](p, label, KindPublic, length)
}

func BeginMessage[T any](p Pattern, label string, length Length) {
	Begin[T](p, label, KindMessage, length)
}

func EndMessage[T any](p Pattern, label string, length Length) {
	End[T](p, label, KindMessage, length)
}

func BeginHint[T any](p Pattern, label string, length Length) {
	Begin[T](p, label, KindHint, length)
}

func EndHint[T any](p Pattern, label string, length Length) {
	End[T](p, label, KindHint, length)
}

func BeginChallenge[T any](p Pattern, label string, length Length) {
	Begin[T](p, label, KindChallenge, length)
}

func EndChallenge[T any](p Pattern, label string, length Length) {
	End[T](p, label, KindChallenge, length)
}

func Public[T any](p Pattern, label string, length Length) {
	Atomic[T](p, label, KindPublic, length)
}

func Message[T any](p Pattern, label string, length Length) {
	Atomic[T](p, label, KindMessage, length)
}

func Hint[T any](p Pattern, label string, length Length) {
	Atomic[T](p, label, KindHint, length)
}

func Challenge[T any](p Pattern, label string, length Length) {
	Atomic[T](p, label, KindChallenge, length)
}
