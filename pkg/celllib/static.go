package celllib

// Static is a Classifier backed by a fixed set of register type names,
// for tools that already know their register cells and carry no library file.
type Static map[string]struct{}

// TableOf builds a Static classifier from register type names
func TableOf(registerTypes ...string) Static {
	t := make(Static, len(registerTypes))
	for _, name := range registerTypes {
		t[name] = struct{}{}
	}
	return t
}

// IsRegister reports whether the gate type names a stateful cell
func (s Static) IsRegister(cellType string) bool {
	_, ok := s[cellType]
	return ok
}
