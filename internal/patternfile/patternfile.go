// Package patternfile reads interaction patterns from YAML descriptions.
//
//	interactions:
//	  - hierarchy: begin
//	    kind: protocol
//	    label: example
//	    length: none
//	  - hierarchy: atomic
//	    kind: challenge
//	    label: nonce
//	    type: uint64
//	    length: fixed:8
//	  - hierarchy: end
//	    kind: protocol
//	    label: example
//	    length: none
package patternfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/crate-crypto/go-spongefish/pattern"
	"gopkg.in/yaml.v2"
)

var (
	ErrUnknownHierarchy = errors.New("unknown hierarchy")
	ErrUnknownKind      = errors.New("unknown kind")
	ErrInvalidLength    = errors.New("invalid length")
)

// File is the YAML form of a pattern.
type File struct {
	Interactions []Interaction `yaml:"interactions"`
}

// Interaction is the YAML form of a pattern.Interaction.
type Interaction struct {
	Hierarchy string `yaml:"hierarchy"`
	Kind      string `yaml:"kind"`
	Label     string `yaml:"label"`
	Type      string `yaml:"type,omitempty"`
	Length    string `yaml:"length"`
}

var hierarchies = map[string]pattern.Hierarchy{
	"atomic": pattern.HierarchyAtomic,
	"begin":  pattern.HierarchyBegin,
	"end":    pattern.HierarchyEnd,
}

var kinds = map[string]pattern.Kind{
	"protocol":  pattern.KindProtocol,
	"public":    pattern.KindPublic,
	"message":   pattern.KindMessage,
	"hint":      pattern.KindHint,
	"challenge": pattern.KindChallenge,
}

// ParseLength parses none, scalar, dynamic or fixed:<n>.
func ParseLength(s string) (pattern.Length, error) {
	switch s {
	case "", "none":
		return pattern.LengthNone, nil
	case "scalar":
		return pattern.LengthScalar, nil
	case "dynamic":
		return pattern.LengthDynamic, nil
	}

	size, ok := strings.CutPrefix(s, "fixed:")
	if !ok {
		return pattern.Length{}, fmt.Errorf("%w: %q", ErrInvalidLength, s)
	}
	n, err := strconv.Atoi(size)
	if err != nil || n < 0 {
		return pattern.Length{}, fmt.Errorf("%w: %q", ErrInvalidLength, s)
	}
	return pattern.LengthFixed(n), nil
}

// FormatLength is the inverse of ParseLength.
func FormatLength(l pattern.Length) string {
	if n, ok := l.Fixed(); ok {
		return "fixed:" + strconv.Itoa(n)
	}
	return strings.ToLower(l.String())
}

// ToInteraction converts the YAML form into an interaction.
func (i Interaction) ToInteraction() (pattern.Interaction, error) {
	hierarchy, ok := hierarchies[strings.ToLower(i.Hierarchy)]
	if !ok {
		return pattern.Interaction{}, fmt.Errorf("%w: %q", ErrUnknownHierarchy, i.Hierarchy)
	}
	kind, ok := kinds[strings.ToLower(i.Kind)]
	if !ok {
		return pattern.Interaction{}, fmt.Errorf("%w: %q", ErrUnknownKind, i.Kind)
	}
	length, err := ParseLength(strings.ToLower(i.Length))
	if err != nil {
		return pattern.Interaction{}, err
	}
	return pattern.NewInteraction(hierarchy, kind, i.Label, i.Type, length), nil
}

// FromInteraction converts an interaction into its YAML form.
func FromInteraction(interaction pattern.Interaction) Interaction {
	return Interaction{
		Hierarchy: strings.ToLower(interaction.Hierarchy().String()),
		Kind:      strings.ToLower(interaction.Kind().String()),
		Label:     interaction.Label(),
		Type:      interaction.TypeName(),
		Length:    FormatLength(interaction.Length()),
	}
}

// Decode reads a YAML description and validates it into a pattern.
// Structural errors are *pattern.TranscriptError.
func Decode(r io.Reader) (*pattern.InteractionPattern, error) {
	file := File{}
	decoder := yaml.NewDecoder(r)
	decoder.SetStrict(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("decoding pattern: %w", err)
	}

	interactions := make([]pattern.Interaction, len(file.Interactions))
	for position, i := range file.Interactions {
		interaction, err := i.ToInteraction()
		if err != nil {
			return nil, fmt.Errorf("interaction %d: %w", position, err)
		}
		interactions[position] = interaction
	}
	return pattern.NewInteractionPattern(interactions)
}

// Load reads the YAML description at path.
func Load(path string) (*pattern.InteractionPattern, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Decode(file)
}

// Encode writes the YAML description of p.
func Encode(w io.Writer, p *pattern.InteractionPattern) error {
	interactions := p.Interactions()
	file := File{Interactions: make([]Interaction, len(interactions))}
	for position, interaction := range interactions {
		file.Interactions[position] = FromInteraction(interaction)
	}

	encoder := yaml.NewEncoder(w)
	if err := encoder.Encode(&file); err != nil {
		return fmt.Errorf("encoding pattern: %w", err)
	}
	return encoder.Close()
}
