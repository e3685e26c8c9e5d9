package planner

import (
	"github.com/wippyai/xtp-cpp-bindgen/errors"
	"github.com/wippyai/xtp-cpp-bindgen/schema"
)

// Convention is a parameter passing convention.
type Convention uint8

const (
	// ByValue copies the value.
	ByValue Convention = iota
	// ByConstRef borrows for the duration of the call.
	ByConstRef
	// ByMove hands ownership of a value to the callee.
	ByMove
	// ByRawOptional borrows through a possibly null const pointer.
	ByRawOptional
	// ByOwning hands ownership of a heap allocation to the callee.
	ByOwning
	// ByView borrows a read-only view of contiguous data.
	ByView
)

var conventionNames = [...]string{
	ByValue:       "value",
	ByConstRef:    "const-ref",
	ByMove:        "move",
	ByRawOptional: "raw-optional",
	ByOwning:      "owning",
	ByView:        "view",
}

func (c Convention) String() string {
	if int(c) < len(conventionNames) {
		return conventionNames[c]
	}
	return "unknown"
}

// MarshalText encodes the convention name.
func (c Convention) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Target spellings of borrowed views.
const (
	TypeStringView = "std::string_view"
	TypeBufferView = "std::span<const std::byte>"
)

// Convention picks how a parameter of type t is passed in dir.
//
// Imports borrow their arguments, exports take ownership. Objects and
// enums no larger than a pointer are copied in either direction. A large
// nullable object is borrowed through a raw pointer on import so an absent
// value never allocates, and arrives already heap allocated on export.
func (p *Planner) Convention(t *schema.Type, dir schema.Direction) (Convention, error) {
	if t == nil {
		return ByValue, errors.UnsupportedType(errors.PhasePlan, "<nil>")
	}
	switch t.Kind {
	case schema.KindObject, schema.KindEnum:
		size, err := p.EstimateSize(t)
		if err != nil {
			return ByValue, err
		}
		if size <= p.opts.ByValueLimit {
			return ByValue, nil
		}
		if t.Kind == schema.KindObject && t.Nullable && size > p.opts.LargeThreshold {
			return pick(dir, ByRawOptional, ByOwning), nil
		}
		return pick(dir, ByConstRef, ByMove), nil
	case schema.KindString, schema.KindDateTime, schema.KindBuffer:
		return pick(dir, ByView, ByMove), nil
	case schema.KindArray, schema.KindMap:
		return pick(dir, ByConstRef, ByMove), nil
	case schema.KindInt32, schema.KindInt64, schema.KindFloat, schema.KindDouble,
		schema.KindByte, schema.KindBoolean:
		return ByValue, nil
	}
	return ByValue, errors.UnsupportedType(errors.PhasePlan, t.Kind.String())
}

func pick(dir schema.Direction, imp, exp Convention) Convention {
	if dir == schema.Import {
		return imp
	}
	return exp
}

// ParamType returns the parameter type of t in dir.
func (p *Planner) ParamType(t *schema.Type, dir schema.Direction) (string, error) {
	conv, err := p.Convention(t, dir)
	if err != nil {
		return "", err
	}
	return p.spell(t, dir, conv)
}

func (p *Planner) spell(t *schema.Type, dir schema.Direction, conv Convention) (string, error) {
	ns := p.opts.Namespace(dir)
	switch conv {
	case ByRawOptional, ByOwning:
		base, err := p.RenderType(t.NonNull(), ns)
		if err != nil {
			return "", err
		}
		if conv == ByOwning {
			return uniquePtr(base), nil
		}
		return "const " + base + "*", nil
	case ByView:
		view := TypeStringView
		if t.Kind == schema.KindBuffer {
			view = TypeBufferView
		}
		if t.Nullable {
			return WrapOptional(view), nil
		}
		return view, nil
	}

	name, err := p.RenderType(t, ns)
	if err != nil {
		return "", err
	}
	switch conv {
	case ByConstRef:
		return "const " + name + "&", nil
	case ByMove:
		return name + "&&", nil
	}
	return name, nil
}
