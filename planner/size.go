package planner

import (
	"github.com/wippyai/xtp-cpp-bindgen/errors"
	"github.com/wippyai/xtp-cpp-bindgen/schema"
)

// EstimateSize returns the heuristic in-memory size of t in bytes.
//
// A typed object is the sum of its properties without padding. An object
// without properties is an opaque blob. Objects that contain themselves
// fail with a cyclic reference error. Named objects are sized once per
// call, or once per Plan run.
func (p *Planner) EstimateSize(t *schema.Type) (int, error) {
	memo := p.sizes
	if memo == nil {
		memo = make(map[string]int)
	}
	return p.estimate(t, nil, memo)
}

func (p *Planner) estimate(t *schema.Type, visiting []string, memo map[string]int) (int, error) {
	if t == nil {
		return 0, errors.UnsupportedType(errors.PhaseSize, "<nil>")
	}

	if !t.Kind.Valid() {
		return 0, unknownKind(errors.PhaseSize, t.Kind)
	}
	if t.Kind != schema.KindObject {
		size, ok := p.opts.Sizes.fixed(t.Kind)
		if !ok {
			return 0, errors.UnsupportedType(errors.PhaseSize, t.Kind.String())
		}
		return size, nil
	}

	if len(t.Properties) == 0 {
		return p.opts.Sizes.UntypedObject, nil
	}

	if t.Name != "" {
		if size, ok := memo[t.Name]; ok {
			return size, nil
		}
		for _, name := range visiting {
			if name == t.Name {
				return 0, errors.CyclicReference(errors.PhaseSize, append(visiting, t.Name))
			}
		}
		visiting = append(visiting, t.Name)
	}

	total := 0
	for _, prop := range t.Properties {
		if prop == nil {
			return 0, errors.UnsupportedType(errors.PhaseSize, "<nil>").WithPath(t.Name)
		}
		size, err := p.estimate(prop.Type, visiting, memo)
		if err != nil {
			return 0, withPath(err, t.Name, prop.Name)
		}
		total += size
	}
	if t.Name != "" {
		memo[t.Name] = total
	}
	return total, nil
}
