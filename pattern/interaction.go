package pattern

import (
	"fmt"
	"reflect"
	"strconv"
)

// Hierarchy is the position of an interaction in the nesting of groups.
type Hierarchy uint8

const (
	// HierarchyAtomic is a single interaction.
	HierarchyAtomic Hierarchy = iota
	// HierarchyBegin opens a group of interactions.
	HierarchyBegin
	// HierarchyEnd closes the innermost open group.
	HierarchyEnd
)

func (h Hierarchy) String() string {
	switch h {
	case HierarchyAtomic:
		return "Atomic"
	case HierarchyBegin:
		return "Begin"
	case HierarchyEnd:
		return "End"
	default:
		return "Hierarchy(" + strconv.Itoa(int(h)) + ")"
	}
}

// Kind is the kind of prover-verifier interaction.
type Kind uint8

const (
	// KindProtocol is a sub-protocol, it may contain any kind of interaction.
	KindProtocol Kind = iota
	// KindPublic is a value both parties already agree on.
	KindPublic
	// KindMessage is sent in-band from prover to verifier.
	KindMessage
	// KindHint is sent out-of-band from prover to verifier.
	KindHint
	// KindChallenge is issued by the verifier.
	KindChallenge
)

func (k Kind) String() string {
	switch k {
	case KindProtocol:
		return "Protocol"
	case KindPublic:
		return "Public"
	case KindMessage:
		return "Message"
	case KindHint:
		return "Hint"
	case KindChallenge:
		return "Challenge"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

type lengthKind uint8

const (
	lengthNone lengthKind = iota
	lengthScalar
	lengthFixed
	lengthDynamic
)

// Length describes how many values an interaction carries.
// The zero value is LengthNone.
type Length struct {
	kind lengthKind
	size int
}

var (
	// LengthNone carries no length information.
	LengthNone = Length{kind: lengthNone}
	// LengthScalar is a single value.
	LengthScalar = Length{kind: lengthScalar}
	// LengthDynamic is a number of values only known at runtime.
	LengthDynamic = Length{kind: lengthDynamic}
)

// LengthFixed is a fixed number of values.
func LengthFixed(size int) Length {
	return Length{kind: lengthFixed, size: size}
}

// Fixed returns the number of values and true if the length is fixed.
func (l Length) Fixed() (int, bool) {
	return l.size, l.kind == lengthFixed
}

func (l Length) String() string {
	switch l.kind {
	case lengthNone:
		return "None"
	case lengthScalar:
		return "Scalar"
	case lengthFixed:
		return "Fixed(" + strconv.Itoa(l.size) + ")"
	case lengthDynamic:
		return "Dynamic"
	default:
		return "Length(" + strconv.Itoa(int(l.kind)) + ")"
	}
}

// Interaction is a single abstract prover-verifier interaction.
//
// Interactions are comparable values, two interactions are the same
// interaction if they are ==.
type Interaction struct {
	hierarchy Hierarchy
	kind      Kind
	label     string
	// Name of the type of the value. It only serves as an additional
	// check and as debug information, distinct types may share a name.
	typeName string
	length   Length
}

// NewInteraction creates an interaction with an explicit type name.
func NewInteraction(hierarchy Hierarchy, kind Kind, label, typeName string, length Length) Interaction {
	return Interaction{
		hierarchy: hierarchy,
		kind:      kind,
		label:     label,
		typeName:  typeName,
		length:    length,
	}
}

// InteractionOf creates an interaction carrying values of type T.
func InteractionOf[T any](hierarchy Hierarchy, kind Kind, label string, length Length) Interaction {
	return NewInteraction(hierarchy, kind, label, TypeName[T](), length)
}

// TypeName returns the name recorded for values of type T.
func TypeName[T any]() string {
	return reflect.TypeFor[T]().String()
}

func (i Interaction) Hierarchy() Hierarchy { return i.hierarchy }
func (i Interaction) Kind() Kind { return i.kind }
func (i Interaction) Label() string { return i.label }
func (i Interaction) TypeName() string { return i.typeName }
func (i Interaction) Length() Length { return i.length }

// closes reports whether i is an End closing the Begin interaction begin.
func (i Interaction) closes(begin Interaction) bool {
	return i.hierarchy == HierarchyEnd &&
		begin.hierarchy == HierarchyBegin &&
		i.kind == begin.kind &&
		i.label == begin.label &&
		i.typeName == begin.typeName &&
		i.length == begin.length
}

// known reports whether the hierarchy and kind of i are among the
// declared constants.
func (i Interaction) known() bool {
	return i.hierarchy <= HierarchyEnd && i.kind <= KindChallenge
}

// Canonical is the stable unambiguous form used for domain separation.
// The label is length prefixed and the type name is left out.
func (i Interaction) Canonical() string {
	return fmt.Sprintf("%s %s %d %s %s", i.hierarchy, i.kind, len(i.label), i.label, i.length)
}

// String is the human readable form, including the type name.
func (i Interaction) String() string {
	return fmt.Sprintf("%s %s %s %s %s", i.hierarchy, i.kind, i.label, i.length, i.typeName)
}
