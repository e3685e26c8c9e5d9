package planner

import (
	"github.com/wippyai/xtp-cpp-bindgen/errors"
	"github.com/wippyai/xtp-cpp-bindgen/schema"
)

// TypeVoid is the bare no-value marker.
const TypeVoid = "void"

// ReturnType wraps the storage type of out in std::expected with the error
// type of dir.
func (p *Planner) ReturnType(out *schema.Type, dir schema.Direction) (string, error) {
	storage, err := p.StorageType(out, p.opts.Namespace(dir))
	if err != nil {
		return "", err
	}
	return p.expected(storage, dir), nil
}

// FunctionReturnType returns the return type of fn's wrapper in dir.
// An import without input or output cannot fail and returns void; any other
// function without output returns std::expected<void, E>.
func (p *Planner) FunctionReturnType(fn *schema.Function, dir schema.Direction) (string, error) {
	if fn.Output == nil {
		if fn.Input == nil && dir == schema.Import {
			return TypeVoid, nil
		}
		return p.expected(TypeVoid, dir), nil
	}
	if fn.Output.Type == nil {
		return "", errors.UnsupportedType(errors.PhasePlan, "<nil>").WithPath(fn.Name, "output")
	}
	ret, err := p.ReturnType(fn.Output.Type, dir)
	if err != nil {
		return "", withPath(err, fn.Name, "output")
	}
	return ret, nil
}

func (p *Planner) expected(value string, dir schema.Direction) string {
	return "std::expected<" + value + ", " + p.opts.ErrorType(dir) + ">"
}
