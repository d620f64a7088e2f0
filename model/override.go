package model

import "github.com/apilens/javamodel/types"

// RequiresOverride answers whether this inherited abstract or default method
// must be materialized as an explicit override in an emitted API surface for
// the surface to stay compilable.
//
// The policy: a concrete method never forces an override. An abstract (or
// default) method with no super methods forces one iff it is visible. One
// with super methods forces one iff it is visible, or every one of its super
// methods is either declared on java.lang.Object or itself forces an
// override. The recursion over super methods is memoized per method, since
// deep hierarchies revisit the same ancestors from many subclasses.
func (m *MethodItem) RequiresOverride() bool {
	if m.inheritedFrom != nil {
		return m.Origin().RequiresOverride()
	}
	if !m.requiresOverrideComputed {
		m.requiresOverride = m.computeRequiresOverride()
		m.requiresOverrideComputed = true
	}
	return m.requiresOverride
}

func (m *MethodItem) computeRequiresOverride() bool {
	if !m.Modifiers.Abstract && !m.Modifiers.Default {
		return false
	}
	supers := m.SuperMethods()
	if len(supers) == 0 {
		return m.Modifiers.Visible()
	}
	if m.Modifiers.Visible() {
		return true
	}
	for _, super := range supers {
		if super.ContainingClass != nil && super.ContainingClass.QualifiedName == types.JavaLangObject {
			continue
		}
		if !super.RequiresOverride() {
			return false
		}
	}
	return true
}

// HasOverrideEquivalentSignatures reports whether more than one abstract or
// default method in the super-interface hierarchy shares this method's
// erased signature. A class method in that position disambiguates otherwise
// ambiguous inherited defaults, so stub generation must keep it.
func (m *MethodItem) HasOverrideEquivalentSignatures() bool {
	origin := m.OriginatingClass()
	if origin == nil || !m.Origin().overridable() {
		return false
	}

	count := 0
	counted := make(map[*MethodItem]struct{})
	visited := make(map[*ClassItem]struct{})

	var walk func(iface *ClassItem)
	walk = func(iface *ClassItem) {
		if _, done := visited[iface]; done {
			return
		}
		visited[iface] = struct{}{}
		if match := m.Origin().findMatchIn(origin, iface); match != nil {
			if _, dup := counted[match]; !dup && (match.Modifiers.Abstract || match.Modifiers.Default) {
				counted[match] = struct{}{}
				count++
			}
		}
		for _, super := range iface.Interfaces() {
			walk(super)
		}
	}
	// Interfaces reachable through the superclass chain count too: the
	// ambiguity exists no matter which path the defaults arrive by
	for cls := origin; cls != nil; cls = cls.SuperClass() {
		for _, iface := range cls.Interfaces() {
			walk(iface)
		}
	}
	return count > 1
}
