package schema

import "strings"

// Type is a node of the normalized type tree.
//
// Elem is set for arrays, Key and Value for maps. Objects and enums carry
// the declaration Name; object references also share the declaration's
// Properties so their size can be estimated without a lookup.
type Type struct {
	Elem       *Type
	Key        *Type
	Value      *Type
	Name       string
	Properties []*Property
	Kind       Kind
	Nullable   bool
}

func String() *Type   { return &Type{Kind: KindString} }
func Int32() *Type    { return &Type{Kind: KindInt32} }
func Int64() *Type    { return &Type{Kind: KindInt64} }
func Float() *Type    { return &Type{Kind: KindFloat} }
func Double() *Type   { return &Type{Kind: KindDouble} }
func Byte() *Type     { return &Type{Kind: KindByte} }
func DateTime() *Type { return &Type{Kind: KindDateTime} }
func Boolean() *Type  { return &Type{Kind: KindBoolean} }
func Buffer() *Type   { return &Type{Kind: KindBuffer} }

// Array returns an array of elem.
func Array(elem *Type) *Type {
	return &Type{Kind: KindArray, Elem: elem}
}

// Map returns a map from key to value.
func Map(key, value *Type) *Type {
	return &Type{Kind: KindMap, Key: key, Value: value}
}

// Object returns a reference to the named object with the given properties.
func Object(name string, props ...*Property) *Type {
	return &Type{Kind: KindObject, Name: name, Properties: props}
}

// UntypedObject returns an opaque JSON-like object.
func UntypedObject() *Type {
	return &Type{Kind: KindObject}
}

// Enum returns a reference to the named enum.
func Enum(name string) *Type {
	return &Type{Kind: KindEnum, Name: name}
}

// AsNullable returns a nullable shallow copy of t.
func (t *Type) AsNullable() *Type {
	c := *t
	c.Nullable = true
	return &c
}

// NonNull returns a shallow copy of t with the nullable flag cleared.
func (t *Type) NonNull() *Type {
	if !t.Nullable {
		return t
	}
	c := *t
	c.Nullable = false
	return &c
}

// IsUntyped reports whether t is an object without a name or properties.
func (t *Type) IsUntyped() bool {
	return t.Kind == KindObject && t.Name == "" && len(t.Properties) == 0
}

// Walk calls fn for t and every type nested in it, parents first. Object
// properties are not entered: they belong to the referenced declaration.
func (t *Type) Walk(fn func(*Type)) {
	if t == nil {
		return
	}
	fn(t)
	switch t.Kind {
	case KindArray:
		t.Elem.Walk(fn)
	case KindMap:
		t.Key.Walk(fn)
		t.Value.Walk(fn)
	}
}

func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	var b strings.Builder
	t.writeTo(&b)
	return b.String()
}

func (t *Type) writeTo(b *strings.Builder) {
	switch t.Kind {
	case KindArray:
		b.WriteString("array<")
		if t.Elem != nil {
			t.Elem.writeTo(b)
		}
		b.WriteByte('>')
	case KindMap:
		b.WriteString("map<")
		if t.Key != nil {
			t.Key.writeTo(b)
		}
		b.WriteString(", ")
		if t.Value != nil {
			t.Value.writeTo(b)
		}
		b.WriteByte('>')
	case KindObject, KindEnum:
		b.WriteString(t.Kind.String())
		if t.Name != "" {
			b.WriteByte(' ')
			b.WriteString(t.Name)
		}
	default:
		b.WriteString(t.Kind.String())
	}
	if t.Nullable {
		b.WriteByte('?')
	}
}

// Property is a named, typed field of an object or a boundary value of a
// function.
type Property struct {
	Type        *Type
	Required    *bool
	Name        string
	Description string
	ContentType ContentType
}

// Prop returns a required property.
func Prop(name string, t *Type) *Property {
	return &Property{Name: name, Type: t}
}

// OptionalProp returns a property marked as not required.
func OptionalProp(name string, t *Type) *Property {
	req := false
	return &Property{Name: name, Type: t, Required: &req}
}

// IsRequired reports the required flag, which defaults to true.
func (p *Property) IsRequired() bool {
	return p.Required == nil || *p.Required
}

// DeclKind distinguishes object and enum declarations.
type DeclKind uint8

const (
	DeclObject DeclKind = iota
	DeclEnum
)

// Schema is a named top-level declaration.
type Schema struct {
	Name        string
	Description string
	Properties  []*Property
	EnumCases   []string
	Kind        DeclKind
}

// IsEnum reports whether s declares an enum.
func (s *Schema) IsEnum() bool {
	return s.Kind == DeclEnum
}

// Type returns a non-nullable reference to the declaration.
func (s *Schema) Type() *Type {
	if s.IsEnum() {
		return Enum(s.Name)
	}
	return &Type{Kind: KindObject, Name: s.Name, Properties: s.Properties}
}

// Function is an import or export signature. Input and Output are optional.
type Function struct {
	Input       *Property
	Output      *Property
	Name        string
	Description string
}
