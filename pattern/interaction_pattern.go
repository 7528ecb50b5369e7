package pattern

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/crypto/sha3"
)

// InteractionPattern is a validated, immutable sequence of interactions.
//
// It is safe to share a single pattern between goroutines, for instance
// between concurrent PatternPlayers.
type InteractionPattern struct {
	interactions []Interaction
	hash         [32]byte
}

// NewInteractionPattern validates interactions and returns the pattern.
//
// A valid pattern has matching Begin and End interactions forming a
// nested hierarchy. Atomic interactions nested in a group must be of the
// kind of the innermost Begin, unless it is KindProtocol which may hold
// any kind. Atomic interactions at the top level are unconstrained.
//
// The returned error is a *TranscriptError. The input slice is copied.
func NewInteractionPattern(interactions []Interaction) (*InteractionPattern, error) {
	if err := validate(interactions); err != nil {
		return nil, err
	}

	p := &InteractionPattern{interactions: slices.Clone(interactions)}
	p.hash = sha3.Sum256([]byte(p.Canonical()))
	return p, nil
}

func validate(interactions []Interaction) error {
	type openBegin struct {
		position    int
		interaction Interaction
	}
	var stack []openBegin

	for position, interaction := range interactions {
		if !interaction.known() {
			return unknownInteraction(position, interaction)
		}

		switch interaction.hierarchy {
		case HierarchyBegin:
			stack = append(stack, openBegin{position, interaction})
		case HierarchyEnd:
			if len(stack) == 0 {
				return missingBegin(position, interaction)
			}
			begin := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !interaction.closes(begin.interaction) {
				return mismatchedBeginEnd(begin.position, begin.interaction, position, interaction)
			}
		case HierarchyAtomic:
			if len(stack) == 0 {
				continue
			}
			begin := stack[len(stack)-1]
			if begin.interaction.kind != KindProtocol && begin.interaction.kind != interaction.kind {
				return invalidKind(begin.position, begin.interaction, position, interaction)
			}
		}
	}

	if len(stack) > 0 {
		begin := stack[len(stack)-1]
		return missingEnd(begin.position, begin.interaction, len(interactions))
	}
	return nil
}

// Interactions returns a copy of the interactions of the pattern.
func (p *InteractionPattern) Interactions() []Interaction {
	return slices.Clone(p.interactions)
}

// Len is the number of interactions in the pattern.
func (p *InteractionPattern) Len() int {
	return len(p.interactions)
}

// PatternHash is the SHA3-256 hash of the canonical form of the pattern.
// It identifies the protocol and is meant to seed the sponge IV.
func (p *InteractionPattern) PatternHash() [32]byte {
	return p.hash
}

// Canonical renders the pattern in the stable form that is hashed by
// PatternHash.
func (p *InteractionPattern) Canonical() string {
	return p.render(Interaction.Canonical)
}

// String renders the pattern for humans, including type names.
func (p *InteractionPattern) String() string {
	return p.render(Interaction.String)
}

// The interaction count goes first so that no prefix of a rendering is
// the rendering of another valid pattern.
func (p *InteractionPattern) render(line func(Interaction) string) string {
	length := len(p.interactions)
	width := len(strconv.Itoa(max(length-1, 0)))

	var b strings.Builder
	fmt.Fprintf(&b, "Spongefish Transcript (%d interactions)\n", length)

	indentation := 0
	for position, interaction := range p.interactions {
		fmt.Fprintf(&b, "%0*d ", width, position)
		if interaction.hierarchy == HierarchyEnd {
			indentation--
		}
		b.WriteString(strings.Repeat("  ", max(indentation, 0)))
		b.WriteString(line(interaction))
		b.WriteByte('\n')
		if interaction.hierarchy == HierarchyBegin {
			indentation++
		}
	}
	return b.String()
}
