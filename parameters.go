package sqltemplater

// Parameter is a distinct bind parameter found while templating.
type Parameter struct {
	Name        Identifier
	Index       int    // 1-based, in order of first appearance
	Replacement string // literal used at the first occurrence
	Occurrences int
}

type Parameters []Parameter

// Names returns the parameter names in index order.
func (ps Parameters) Names() (names []Identifier) {
	names = make([]Identifier, len(ps))
	for i, p := range ps {
		names[i] = p.Name
	}
	return names
}

// Lookup returns the parameter called name.
func (ps Parameters) Lookup(name Identifier) (p Parameter, ok bool) {
	for _, p = range ps {
		if p.Name == name {
			ok = true
			goto end
		}
	}
	p = Parameter{}
end:
	return p, ok
}
