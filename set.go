package heredity

// Set is an unordered collection of person names.
type Set map[string]bool

// NewSet builds a set from the given names.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, name := range names {
		s[name] = true
	}
	return s
}

// Has reports whether name is a member.
func (s Set) Has(name string) bool {
	return s[name]
}

// Powerset returns every subset of members, including the empty set and the
// full set, each exactly once. Zero members yields exactly the empty set.
// Subsets come out in bitmask order; callers only rely on completeness and
// uniqueness.
func Powerset(members []string) []Set {
	subsets := make([]Set, 0, 1<<len(members))
	for mask := 0; mask < 1<<len(members); mask++ {
		s := make(Set)
		for i, name := range members {
			if mask&(1<<i) != 0 {
				s[name] = true
			}
		}
		subsets = append(subsets, s)
	}
	return subsets
}

// without returns the members not present in s, preserving order.
func without(members []string, s Set) []string {
	rest := make([]string, 0, len(members))
	for _, name := range members {
		if !s.Has(name) {
			rest = append(rest, name)
		}
	}
	return rest
}
