package schema

import "github.com/wippyai/xtp-cpp-bindgen/errors"

// Set is a normalized schema graph: named declarations plus the import and
// export signatures that use them. Names keeps declaration order.
type Set struct {
	Schemas map[string]*Schema
	Names   []string
	Imports []*Function
	Exports []*Function
}

// NewSet creates an empty set
func NewSet() *Set {
	return &Set{Schemas: make(map[string]*Schema)}
}

// Add registers a declaration. Names are unique within a set.
func (s *Set) Add(decl *Schema) error {
	if decl.Name == "" {
		return errors.InvalidInput(errors.PhaseIngest, "schema without a name")
	}
	if _, exists := s.Schemas[decl.Name]; exists {
		return errors.New(errors.PhaseIngest, errors.KindInvalidInput).
			Path(decl.Name).
			Detail("duplicate schema name").
			Build()
	}
	if s.Schemas == nil {
		s.Schemas = make(map[string]*Schema)
	}
	s.Schemas[decl.Name] = decl
	s.Names = append(s.Names, decl.Name)
	return nil
}

// MustAdd is Add for statically known declarations; it panics on error.
func (s *Set) MustAdd(decls ...*Schema) *Set {
	for _, d := range decls {
		if err := s.Add(d); err != nil {
			panic(err)
		}
	}
	return s
}

// Lookup returns the declaration with the given name.
func (s *Set) Lookup(name string) (*Schema, bool) {
	decl, ok := s.Schemas[name]
	return decl, ok
}

// Ordered returns the declarations in declaration order.
func (s *Set) Ordered() []*Schema {
	res := make([]*Schema, 0, len(s.Names))
	for _, n := range s.Names {
		res = append(res, s.Schemas[n])
	}
	return res
}

// Functions returns imports or exports depending on dir.
func (s *Set) Functions(dir Direction) []*Function {
	if dir == Import {
		return s.Imports
	}
	return s.Exports
}
