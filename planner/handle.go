package planner

import (
	"strings"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/xtp-cpp-bindgen/errors"
	"github.com/wippyai/xtp-cpp-bindgen/schema"
)

// Handle element types.
const (
	ElemText = "char"
	ElemByte = "std::byte"
)

// Accessor is the physical access category of a boundary handle.
type Accessor uint8

const (
	// AccessorText reads the handle as validated text.
	AccessorText Accessor = iota
	// AccessorBytes reads the handle as raw bytes.
	AccessorBytes
)

func (a Accessor) String() string {
	if a == AccessorBytes {
		return "bytes"
	}
	return "text"
}

// MarshalText encodes the accessor name.
func (a Accessor) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// numericElems lists the array element kinds that cross as binary without
// conversion.
var numericElems = map[schema.Kind]string{
	schema.KindByte:   TypeUint8,
	schema.KindInt32:  TypeInt32,
	schema.KindInt64:  TypeInt64,
	schema.KindFloat:  TypeFloat,
	schema.KindDouble: TypeDouble,
}

// HandleType returns the element type of the handle that carries prop
// across the host boundary.
func (p *Planner) HandleType(prop *schema.Property) (string, error) {
	if prop == nil || prop.Type == nil {
		return "", errors.UnsupportedEncoding("<nil>", "")
	}
	t := prop.Type

	switch prop.ContentType {
	case schema.ContentJSON:
		return ElemText, nil
	case schema.ContentText:
		switch t.Kind {
		case schema.KindEnum, schema.KindString, schema.KindBuffer:
			return ElemText, nil
		}
	case schema.ContentBinary:
		switch t.Kind {
		case schema.KindBuffer:
			return ElemByte, nil
		case schema.KindArray:
			if t.Elem != nil {
				if elem, ok := numericElems[t.Elem.Kind]; ok {
					return elem, nil
				}
			}
		}
	case schema.ContentNone:
	}
	return "", errors.UnsupportedEncoding(t.String(), prop.ContentType.String())
}

// HandleAccessor returns how the handle bytes of prop are read. Text
// content carried in a buffer is still read as bytes: the logical encoding
// and the physical representation are independent.
func (p *Planner) HandleAccessor(prop *schema.Property) (Accessor, error) {
	elem, err := p.HandleType(prop)
	if err != nil {
		return AccessorText, err
	}
	if elem != ElemText {
		return AccessorBytes, nil
	}
	if prop.ContentType == schema.ContentText && prop.Type.Kind == schema.KindBuffer {
		return AccessorBytes, nil
	}
	return AccessorText, nil
}

// Signature is the flat core WebAssembly signature of a boundary function.
type Signature struct {
	Params  []api.ValueType
	Results []api.ValueType
}

func (s Signature) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, t := range s.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(api.ValueTypeName(t))
	}
	b.WriteString(") -> ")
	switch len(s.Results) {
	case 0:
		b.WriteString("()")
	case 1:
		b.WriteString(api.ValueTypeName(s.Results[0]))
	default:
		b.WriteByte('(')
		for i, t := range s.Results {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(api.ValueTypeName(t))
		}
		b.WriteByte(')')
	}
	return b.String()
}

// CoreSignature returns the raw boundary signature of fn. Imports exchange
// i64 memory handles for their input and output; exports read their input
// from the host and return an i32 status code.
func CoreSignature(fn *schema.Function, dir schema.Direction) Signature {
	if dir == schema.Export {
		return Signature{Results: []api.ValueType{api.ValueTypeI32}}
	}
	var sig Signature
	if fn.Input != nil {
		sig.Params = []api.ValueType{api.ValueTypeI64}
	}
	if fn.Output != nil {
		sig.Results = []api.ValueType{api.ValueTypeI64}
	}
	return sig
}
