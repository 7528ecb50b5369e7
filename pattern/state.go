package pattern

// PatternState records an interaction pattern.
//
// Every interaction is checked against the innermost open group as it is
// recorded, so that a malformed protocol description fails where the
// offending interaction is made. A PatternState must end with exactly one
// call to Finalize or Abort, Record does that on every path. A state that
// is garbage collected before either is reported, see SetDropReporter.
type PatternState struct {
	*recording
}

var _ Pattern = (*PatternState)(nil)

func NewPatternState() *PatternState {
	return newPatternState()
}

// Interact records the next interaction.
//
// Panics with a *TranscriptError if the interaction is not of the kind of
// the innermost open group (unless that is KindProtocol), if it is an End
// that does not close that group, or if it is an End with no open group.
// Panics with a *TranscriptError wrapping ErrUnknownInteraction if the
// hierarchy or kind is not one of the declared constants.
// Panics with ErrLifecycle once the recording is finalized or aborted.
func (s *PatternState) Interact(interaction Interaction) {
	if s.finalized {
		panic(ErrLifecycle)
	}
	position := len(s.interactions)
	if !interaction.known() {
		panic(unknownInteraction(position, interaction))
	}

	if beginPosition, begin, ok := s.lastOpenBegin(); ok {
		if begin.kind != KindProtocol && begin.kind != interaction.kind {
			panic(invalidKind(beginPosition, begin, position, interaction))
		}
		if interaction.hierarchy == HierarchyEnd && !interaction.closes(begin) {
			panic(mismatchedBeginEnd(beginPosition, begin, position, interaction))
		}
	} else if interaction.hierarchy == HierarchyEnd {
		panic(missingBegin(position, interaction))
	}

	s.interactions = append(s.interactions, interaction)
}

// lastOpenBegin returns the innermost Begin that has not been closed yet.
func (r *recording) lastOpenBegin() (int, Interaction, bool) {
	depth := 0
	for position := len(r.interactions) - 1; position >= 0; position-- {
		switch r.interactions[position].hierarchy {
		case HierarchyEnd:
			depth++
		case HierarchyBegin:
			if depth == 0 {
				return position, r.interactions[position], true
			}
			depth--
		}
	}
	return 0, Interaction{}, false
}

// Finalize ends the recording and validates the complete sequence.
//
// The error, if any, is a *TranscriptError. The state is finalized
// either way. Panics with ErrLifecycle if called twice or after Abort.
func (s *PatternState) Finalize() (*InteractionPattern, error) {
	if s.finalized {
		panic(ErrLifecycle)
	}
	s.finalized = true

	return NewInteractionPattern(s.interactions)
}

// Abort ends the recording without producing a pattern.
// Panics with ErrLifecycle if already finalized.
func (s *PatternState) Abort() {
	if s.finalized {
		panic(ErrLifecycle)
	}
	s.finalized = true
	s.interactions = nil
}

// Finalized reports whether Finalize or Abort has been called.
func (s *PatternState) Finalized() bool {
	return s.finalized
}

// Record runs fn on a fresh PatternState and finalizes it.
//
// If fn panics the state is aborted before the panic propagates.
func Record(fn func(*PatternState)) (*InteractionPattern, error) {
	state := NewPatternState()
	defer func() {
		if !state.finalized {
			state.Abort()
		}
	}()

	fn(state)
	return state.Finalize()
}
