package types

// Nullability is the tri-state (plus "unspecified") nullness of a single type
// occurrence. It lives on the type use, not on the declaration: the same class
// can appear as both a nullable and a non-null occurrence.
type Nullability int

const (
	// NullabilityUndefined means the occurrence inherits its nullness from
	// context (for example, a type argument inside an already-annotated type)
	NullabilityUndefined Nullability = iota
	// NullabilityNonNull marks an occurrence known to never be null
	NullabilityNonNull
	// NullabilityNullable marks an occurrence that may be null
	NullabilityNullable
	// NullabilityPlatform is unknown nullness, typically from source that
	// carries no nullability annotations
	NullabilityPlatform
)

func (n Nullability) String() string {
	switch n {
	case NullabilityNonNull:
		return "nonnull"
	case NullabilityNullable:
		return "nullable"
	case NullabilityPlatform:
		return "platform"
	default:
		return "undefined"
	}
}

// Suffix returns the Kotlin-style rendering suffix for this nullness:
// "?" for nullable, "!" for platform, and nothing otherwise.
func (n Nullability) Suffix() string {
	switch n {
	case NullabilityNullable:
		return "?"
	case NullabilityPlatform:
		return "!"
	default:
		return ""
	}
}

// TypeModifiers is the modifier record attached to every type occurrence:
// its nullness plus any type-use annotations (by qualified annotation name).
type TypeModifiers struct {
	Nullability Nullability
	// Qualified names of type-use annotations, in source order
	Annotations []string
}

// Modifiers returns the modifier record itself. Every Type variant embeds
// TypeModifiers, so this single method satisfies the Type interface for all
// of them.
func (m TypeModifiers) Modifiers() TypeModifiers { return m }

// NonNullModifiers is the modifier record for types that can never be null,
// such as primitives.
func NonNullModifiers() TypeModifiers {
	return TypeModifiers{Nullability: NullabilityNonNull}
}

// PlatformModifiers is the modifier record for reference types read from
// un-annotated source.
func PlatformModifiers() TypeModifiers {
	return TypeModifiers{Nullability: NullabilityPlatform}
}
