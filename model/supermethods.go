package model

// SuperMethods returns the methods in super classes and interfaces that this
// method overrides: the first matching method walking up the superclass
// chain, followed by the shallowest match of each distinct interface branch,
// with diamond branches deduplicated. The set is computed once per method
// and cached; constructors and non-overridable methods always resolve to an
// empty set.
//
// A duplicate hosted by an heir class delegates to its original declaration,
// so the search always starts from the originating class.
func (m *MethodItem) SuperMethods() []*MethodItem {
	if m.inheritedFrom != nil {
		return m.Origin().SuperMethods()
	}
	if !m.superMethodsComputed {
		m.superMethods = m.computeSuperMethods()
		m.superMethodsComputed = true
	}
	return m.superMethods
}

func (m *MethodItem) computeSuperMethods() []*MethodItem {
	if !m.overridable() {
		return nil
	}
	origin := m.ContainingClass
	if origin == nil {
		return nil
	}

	var result []*MethodItem

	// The superclass chain contributes at most one method: the first match
	// found walking upwards. An unresolved superclass ends the walk early.
	for ancestor := origin.SuperClass(); ancestor != nil; ancestor = ancestor.SuperClass() {
		if match := m.findMatchIn(origin, ancestor); match != nil {
			result = append(result, match)
			break
		}
	}

	// The interface hierarchy is always searched, independently of whether a
	// superclass match was found
	for _, candidate := range dedupDiamondBranches(m.interfaceCandidates(origin)) {
		duplicate := false
		for _, existing := range result {
			if existing == candidate.method {
				duplicate = true
				break
			}
		}
		if !duplicate {
			result = append(result, candidate.method)
		}
	}
	return result
}

// findMatchIn looks for a method of ancestor whose erased signature, viewed
// through origin's type-variable bindings, matches m
func (m *MethodItem) findMatchIn(origin, ancestor *ClassItem) *MethodItem {
	bindings := origin.MapTypeVariables(ancestor)
	for _, candidate := range ancestor.Methods {
		if candidate.Constructor || candidate.Modifiers.Static {
			continue
		}
		if m.matchesErased(candidate, bindings) {
			return candidate
		}
	}
	return nil
}

// interfaceCandidate is one match found in the interface hierarchy, tagged
// with the interface it was found in so diamond branches can be compared
type interfaceCandidate struct {
	iface  *ClassItem
	method *MethodItem
}

// interfaceCandidates searches every directly implemented interface of
// origin. Each branch is descended only until its shallowest match: once an
// interface declares a matching method, its own super-interfaces are not
// searched on that branch.
func (m *MethodItem) interfaceCandidates(origin *ClassItem) []interfaceCandidate {
	var candidates []interfaceCandidate
	seen := make(map[*MethodItem]struct{})

	var search func(iface *ClassItem)
	search = func(iface *ClassItem) {
		if match := m.findMatchIn(origin, iface); match != nil {
			if _, dup := seen[match]; !dup {
				seen[match] = struct{}{}
				candidates = append(candidates, interfaceCandidate{iface: iface, method: match})
			}
			return
		}
		for _, super := range iface.Interfaces() {
			search(super)
		}
	}
	for _, iface := range origin.Interfaces() {
		search(iface)
	}
	return candidates
}

// dedupDiamondBranches discards every candidate whose interface is reachable
// from another candidate's interface: when a class sees both `B extends A`
// and `A`, only the match found via B (the leaf of that branch) survives.
// Candidates on genuinely independent branches are all kept, deliberately
// with no tie-break between them.
func dedupDiamondBranches(candidates []interfaceCandidate) []interfaceCandidate {
	if len(candidates) < 2 {
		return candidates
	}

	// Count how often each candidate interface appears across the
	// super-interface closures of all candidates (each closure includes the
	// candidate itself). A count above one means some other candidate
	// reaches it, making it a non-leaf of that branch.
	reachCount := make(map[*ClassItem]int, len(candidates))
	inCandidates := make(map[*ClassItem]struct{}, len(candidates))
	for _, candidate := range candidates {
		inCandidates[candidate.iface] = struct{}{}
	}
	for _, candidate := range candidates {
		visited := make(map[*ClassItem]struct{})
		var walk func(iface *ClassItem)
		walk = func(iface *ClassItem) {
			if _, done := visited[iface]; done {
				return
			}
			visited[iface] = struct{}{}
			if _, isCandidate := inCandidates[iface]; isCandidate {
				reachCount[iface]++
			}
			for _, super := range iface.Interfaces() {
				walk(super)
			}
		}
		walk(candidate.iface)
	}

	kept := candidates[:0]
	for _, candidate := range candidates {
		if reachCount[candidate.iface] == 1 {
			kept = append(kept, candidate)
		}
	}
	return kept
}
