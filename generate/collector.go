package generate

// TypeAliasSet is the ordered set of alias names derived while processing
// one schema. The zero value is empty and ready to use. A set belongs to a
// single generation and must not be shared.
type TypeAliasSet struct {
	names []string
	seen  map[string]bool
}

// CollectTypes runs the collector over functions with a fresh set.
func CollectTypes(functions []Member) *TypeAliasSet {
	set := &TypeAliasSet{}
	set.Collect(functions)
	return set
}

// Collect registers the alias of every input parameter type, in first-seen
// order. Parameters with empty names are scanned too.
func (s *TypeAliasSet) Collect(functions []Member) {
	for _, f := range functions {
		for _, p := range f.Inputs {
			s.Add(AliasName(p.Type))
		}
	}
}

// Add appends name unless it is empty or already present.
func (s *TypeAliasSet) Add(name string) bool {
	if name == "" || s.seen[name] {
		return false
	}
	if s.seen == nil {
		s.seen = map[string]bool{}
	}
	s.seen[name] = true
	s.names = append(s.names, name)
	return true
}

func (s *TypeAliasSet) Contains(name string) bool {
	return s.seen[name]
}

func (s *TypeAliasSet) Len() int {
	return len(s.names)
}

// Names returns a copy of the aliases in insertion order.
func (s *TypeAliasSet) Names() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}
