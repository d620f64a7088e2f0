package model

// Visibility is a member's or class's access level, ordered from most to
// least restrictive
type Visibility int

const (
	VisibilityPrivate Visibility = iota
	VisibilityPackagePrivate
	VisibilityProtected
	VisibilityPublic
)

func (v Visibility) String() string {
	switch v {
	case VisibilityPrivate:
		return "private"
	case VisibilityProtected:
		return "protected"
	case VisibilityPublic:
		return "public"
	default:
		return "package-private"
	}
}

// Modifiers is the declaration-modifier record of a class or member
type Modifiers struct {
	Visibility Visibility
	Static     bool
	Abstract   bool
	Final      bool
	// Default is set on interface methods declared with the `default` keyword
	Default bool
	// Qualified names of declaration annotations, in source order
	Annotations []string
}

// Visible reports whether the declaration belongs to the API surface:
// public and protected members do, package-private and private ones do not
func (m Modifiers) Visible() bool {
	return m.Visibility >= VisibilityProtected
}

// HasAnnotation reports whether the declaration carries the given annotation
// by qualified name
func (m Modifiers) HasAnnotation(qualifiedName string) bool {
	for _, annotation := range m.Annotations {
		if annotation == qualifiedName {
			return true
		}
	}
	return false
}
