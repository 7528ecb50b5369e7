package pattern

import (
	"errors"
	"fmt"
)

var (
	ErrMissingBegin       = errors.New("missing begin")
	ErrInvalidKind        = errors.New("invalid kind")
	ErrMismatchedBeginEnd = errors.New("mismatched begin and end")
	ErrMissingEnd         = errors.New("missing end")
	ErrUnknownInteraction = errors.New("unknown hierarchy or kind")
	ErrPlaybackMismatch   = errors.New("interaction does not match the pattern")
	ErrLifecycle          = errors.New("transcript is already finalized")
	ErrDropped            = errors.New("dropped unfinalized transcript")
)

// TranscriptError is a structural error in a sequence of interactions.
//
// Err is one of ErrMissingBegin, ErrInvalidKind, ErrMismatchedBeginEnd,
// ErrMissingEnd or ErrUnknownInteraction. Begin is the zero Interaction
// for ErrMissingBegin and ErrUnknownInteraction, Interaction is the zero
// Interaction for ErrMissingEnd.
type TranscriptError struct {
	Err           error
	BeginPosition int
	Begin         Interaction
	Position      int
	Interaction   Interaction
}

func (e *TranscriptError) Error() string {
	switch e.Err {
	case ErrMissingBegin:
		return fmt.Sprintf("missing begin for %s at %d", e.Interaction, e.Position)
	case ErrInvalidKind:
		return fmt.Sprintf("invalid kind %s at %d for %s at %d", e.Interaction, e.Position, e.Begin, e.BeginPosition)
	case ErrMismatchedBeginEnd:
		return fmt.Sprintf("mismatched %s at %d for %s at %d", e.Begin, e.BeginPosition, e.Interaction, e.Position)
	case ErrMissingEnd:
		return fmt.Sprintf("missing end for %s at %d", e.Begin, e.BeginPosition)
	case ErrUnknownInteraction:
		return fmt.Sprintf("unknown interaction %s at %d", e.Interaction, e.Position)
	default:
		return fmt.Sprintf("%v at %d", e.Err, e.Position)
	}
}

func (e *TranscriptError) Unwrap() error {
	return e.Err
}

func missingBegin(position int, end Interaction) *TranscriptError {
	return &TranscriptError{Err: ErrMissingBegin, BeginPosition: -1, Position: position, Interaction: end}
}

func invalidKind(beginPosition int, begin Interaction, position int, interaction Interaction) *TranscriptError {
	return &TranscriptError{Err: ErrInvalidKind, BeginPosition: beginPosition, Begin: begin, Position: position, Interaction: interaction}
}

func mismatchedBeginEnd(beginPosition int, begin Interaction, position int, end Interaction) *TranscriptError {
	return &TranscriptError{Err: ErrMismatchedBeginEnd, BeginPosition: beginPosition, Begin: begin, Position: position, Interaction: end}
}

func missingEnd(beginPosition int, begin Interaction, length int) *TranscriptError {
	return &TranscriptError{Err: ErrMissingEnd, BeginPosition: beginPosition, Begin: begin, Position: length}
}

func unknownInteraction(position int, interaction Interaction) *TranscriptError {
	return &TranscriptError{Err: ErrUnknownInteraction, BeginPosition: -1, Position: position, Interaction: interaction}
}

// PlaybackError reports an interaction that diverges from the pattern
// being played back. It wraps ErrPlaybackMismatch.
//
// Received is nil when the transcript ended early, Expected is nil when
// no more interactions were expected.
type PlaybackError struct {
	Position int
	Received *Interaction
	Expected *Interaction
}

func (e *PlaybackError) Error() string {
	switch {
	case e.Received == nil:
		return fmt.Sprintf("transcript not finished, expecting %s at %d", e.Expected, e.Position)
	case e.Expected == nil:
		return fmt.Sprintf("received interaction %s at %d, but no more expected interactions", e.Received, e.Position)
	default:
		return fmt.Sprintf("received interaction %s at %d, but expected %s", e.Received, e.Position, e.Expected)
	}
}

func (e *PlaybackError) Unwrap() error {
	return ErrPlaybackMismatch
}
