package witschema

import (
	"fmt"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/xtp-cpp-bindgen/errors"
	"github.com/wippyai/xtp-cpp-bindgen/schema"
)

// Converter builds a schema set from WIT types. Named records and enums
// become declarations of the set the first time they are seen.
type Converter struct {
	set      *schema.Set
	done     map[*wit.TypeDef]*schema.Type
	visiting map[*wit.TypeDef]bool
}

// New creates a converter with an empty set.
func New() *Converter {
	return &Converter{
		set:      schema.NewSet(),
		done:     make(map[*wit.TypeDef]*schema.Type),
		visiting: make(map[*wit.TypeDef]bool),
	}
}

// Set returns the schema set built so far.
func (c *Converter) Set() *schema.Set {
	return c.set
}

// AddFunction registers an import or export. A nil input or output means
// the function takes no argument or returns nothing.
func (c *Converter) AddFunction(dir schema.Direction, name string, input, output wit.Type) error {
	fn := &schema.Function{Name: name}

	if input != nil {
		t, err := c.Type(input)
		if err != nil {
			return withPath(err, name, "input")
		}
		fn.Input = &schema.Property{Name: "input", Type: t, ContentType: ContentType(t)}
	}
	if output != nil {
		t, err := c.Type(output)
		if err != nil {
			return withPath(err, name, "output")
		}
		fn.Output = &schema.Property{Name: "output", Type: t, ContentType: ContentType(t)}
	}

	if dir == schema.Import {
		c.set.Imports = append(c.set.Imports, fn)
	} else {
		c.set.Exports = append(c.set.Exports, fn)
	}
	return nil
}

// Type converts a WIT type.
func (c *Converter) Type(t wit.Type) (*schema.Type, error) {
	switch v := t.(type) {
	case wit.Bool:
		return schema.Boolean(), nil
	case wit.U8, wit.S8:
		return schema.Byte(), nil
	case wit.U16, wit.S16, wit.U32, wit.S32, wit.Char:
		return schema.Int32(), nil
	case wit.U64, wit.S64:
		return schema.Int64(), nil
	case wit.F32:
		return schema.Float(), nil
	case wit.F64:
		return schema.Double(), nil
	case wit.String:
		return schema.String(), nil
	case *wit.TypeDef:
		return c.typeDef(v)
	case nil:
		return nil, errors.UnsupportedType(errors.PhaseIngest, "<nil>")
	default:
		return nil, errors.UnsupportedType(errors.PhaseIngest, fmt.Sprintf("%T", t))
	}
}

func (c *Converter) typeDef(td *wit.TypeDef) (*schema.Type, error) {
	if t, ok := c.done[td]; ok {
		return t, nil
	}
	if c.visiting[td] {
		return nil, errors.CyclicReference(errors.PhaseIngest, []string{typeName(td)})
	}
	c.visiting[td] = true
	defer delete(c.visiting, td)

	switch kind := td.Kind.(type) {
	case *wit.Record:
		return c.record(td, kind)
	case *wit.Enum:
		return c.enum(td, kind)
	case *wit.List:
		return c.list(kind)
	case *wit.Option:
		inner, err := c.Type(kind.Type)
		if err != nil {
			return nil, err
		}
		return inner.AsNullable(), nil
	case *wit.Tuple, *wit.Variant, *wit.Flags, *wit.Result, *wit.Own, *wit.Borrow:
		return nil, errors.UnsupportedType(errors.PhaseIngest, witKindName(kind))
	case wit.Type:
		// type alias
		return c.Type(kind)
	default:
		return nil, errors.UnsupportedType(errors.PhaseIngest, fmt.Sprintf("%T", kind))
	}
}

func (c *Converter) record(td *wit.TypeDef, r *wit.Record) (*schema.Type, error) {
	if td.Name == nil {
		return nil, errors.New(errors.PhaseIngest, errors.KindUnsupportedType).
			Type("record").
			Detail("anonymous record").
			Build()
	}
	name := *td.Name

	props := make([]*schema.Property, 0, len(r.Fields))
	for _, f := range r.Fields {
		t, err := c.Type(f.Type)
		if err != nil {
			return nil, withPath(err, name, f.Name)
		}
		// option<T> fields may be omitted
		if t.Nullable {
			props = append(props, schema.OptionalProp(f.Name, t))
		} else {
			props = append(props, schema.Prop(f.Name, t))
		}
	}

	decl := &schema.Schema{Name: name, Properties: props}
	if err := c.set.Add(decl); err != nil {
		return nil, err
	}
	t := decl.Type()
	c.done[td] = t
	return t, nil
}

func (c *Converter) enum(td *wit.TypeDef, e *wit.Enum) (*schema.Type, error) {
	if td.Name == nil {
		return nil, errors.New(errors.PhaseIngest, errors.KindUnsupportedType).
			Type("enum").
			Detail("anonymous enum").
			Build()
	}
	decl := &schema.Schema{Name: *td.Name, Kind: schema.DeclEnum}
	for _, cs := range e.Cases {
		decl.EnumCases = append(decl.EnumCases, cs.Name)
	}
	if err := c.set.Add(decl); err != nil {
		return nil, err
	}
	t := decl.Type()
	c.done[td] = t
	return t, nil
}

// list maps list<u8> to a buffer and list<tuple<string, V>> to a map.
func (c *Converter) list(l *wit.List) (*schema.Type, error) {
	switch elem := l.Type.(type) {
	case wit.U8:
		return schema.Buffer(), nil
	case *wit.TypeDef:
		if tup, ok := elem.Kind.(*wit.Tuple); ok && len(tup.Types) == 2 {
			if _, isString := tup.Types[0].(wit.String); isString {
				value, err := c.Type(tup.Types[1])
				if err != nil {
					return nil, err
				}
				return schema.Map(schema.String(), value), nil
			}
		}
	}
	elem, err := c.Type(l.Type)
	if err != nil {
		return nil, err
	}
	return schema.Array(elem), nil
}

// ContentType picks the boundary encoding for a converted type: text for
// strings and enums, raw binary for buffers and numeric arrays, JSON for
// everything else.
func ContentType(t *schema.Type) schema.ContentType {
	switch t.Kind {
	case schema.KindString, schema.KindEnum:
		return schema.ContentText
	case schema.KindBuffer:
		return schema.ContentBinary
	case schema.KindArray:
		if t.Elem == nil {
			break
		}
		switch t.Elem.Kind {
		case schema.KindByte, schema.KindInt32, schema.KindInt64, schema.KindFloat, schema.KindDouble:
			return schema.ContentBinary
		}
	}
	return schema.ContentJSON
}

func typeName(td *wit.TypeDef) string {
	if td.Name != nil {
		return *td.Name
	}
	return witKindName(td.Kind)
}

func witKindName(kind wit.TypeDefKind) string {
	switch kind.(type) {
	case *wit.Record:
		return "record"
	case *wit.Enum:
		return "enum"
	case *wit.List:
		return "list"
	case *wit.Option:
		return "option"
	case *wit.Tuple:
		return "tuple"
	case *wit.Variant:
		return "variant"
	case *wit.Flags:
		return "flags"
	case *wit.Result:
		return "result"
	case *wit.Own:
		return "own"
	case *wit.Borrow:
		return "borrow"
	default:
		return fmt.Sprintf("%T", kind)
	}
}

func withPath(err error, path ...string) error {
	var e *errors.Error
	if errors.As(err, &e) {
		return e.WithPath(path...)
	}
	return err
}
