package planner

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/wippyai/xtp-cpp-bindgen/errors"
	"github.com/wippyai/xtp-cpp-bindgen/schema"
)

// Target spellings.
const (
	TypeString    = "std::string"
	TypeInt32     = "int32_t"
	TypeInt64     = "int64_t"
	TypeFloat     = "float"
	TypeDouble    = "double"
	TypeUint8     = "uint8_t"
	TypeBool      = "bool"
	TypeBuffer    = "std::vector<std::byte>"
	TypeJSONValue = "jsoncons::json"

	optionalPrefix = "std::optional<"
)

// RenderType returns the value type of t. Object and enum names are
// PascalCased and prefixed with ns. Nullable types are wrapped in
// std::optional exactly once.
func (p *Planner) RenderType(t *schema.Type, ns string) (string, error) {
	if t == nil {
		return "", errors.UnsupportedType(errors.PhaseRender, "<nil>")
	}
	base, err := p.renderBase(t, ns)
	if err != nil {
		return "", err
	}
	if t.Nullable {
		return WrapOptional(base), nil
	}
	return base, nil
}

func (p *Planner) renderBase(t *schema.Type, ns string) (string, error) {
	if !t.Kind.Valid() {
		return "", unknownKind(errors.PhaseRender, t.Kind)
	}
	switch t.Kind {
	case schema.KindString, schema.KindDateTime:
		return TypeString, nil
	case schema.KindInt32:
		return TypeInt32, nil
	case schema.KindInt64:
		return TypeInt64, nil
	case schema.KindFloat:
		return TypeFloat, nil
	case schema.KindDouble:
		return TypeDouble, nil
	case schema.KindByte:
		return TypeUint8, nil
	case schema.KindBoolean:
		return TypeBool, nil
	case schema.KindBuffer:
		return TypeBuffer, nil
	case schema.KindArray:
		elem, err := p.RenderType(t.Elem, ns)
		if err != nil {
			return "", withPath(err, "items")
		}
		return "std::vector<" + elem + ">", nil
	case schema.KindMap:
		key, err := p.RenderType(t.Key, ns)
		if err != nil {
			return "", withPath(err, "key")
		}
		val, err := p.RenderType(t.Value, ns)
		if err != nil {
			return "", withPath(err, "value")
		}
		return "std::unordered_map<" + key + ", " + val + ">", nil
	case schema.KindObject:
		if t.IsUntyped() {
			return TypeJSONValue, nil
		}
		if t.Name == "" {
			return "", errors.New(errors.PhaseRender, errors.KindUnsupportedType).
				Type(t.String()).
				Detail("anonymous object with properties").
				Build()
		}
		return ns + PascalCase(t.Name), nil
	case schema.KindEnum:
		if t.Name == "" {
			return "", errors.New(errors.PhaseRender, errors.KindUnsupportedType).
				Type(t.String()).
				Detail("enum without a name").
				Build()
		}
		return ns + PascalCase(t.Name), nil
	}
	return "", errors.UnsupportedType(errors.PhaseRender, t.Kind.String())
}

// WrapOptional wraps name in std::optional unless it already is one.
func WrapOptional(name string) string {
	if strings.HasPrefix(name, optionalPrefix) {
		return name
	}
	return optionalPrefix + name + ">"
}

// PascalCase upper-cases the first letter of every segment separated by
// '-', '_', '.' or a space and joins them. Existing capitals are kept, so
// "writeParams" becomes "WriteParams" and "ghost-gang" becomes "GhostGang".
func PascalCase(name string) string {
	caser := cases.Title(language.Und, cases.NoLower)
	segs := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == '.' || r == ' '
	})
	var b strings.Builder
	b.Grow(len(name))
	for _, seg := range segs {
		b.WriteString(caser.String(seg))
	}
	return b.String()
}
