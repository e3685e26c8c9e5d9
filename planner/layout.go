package planner

import (
	"sort"

	"github.com/wippyai/xtp-cpp-bindgen/errors"
	"github.com/wippyai/xtp-cpp-bindgen/schema"
)

// FieldOrder returns props sorted by descending estimated size, keeping
// declaration order between fields of equal size. Larger fields first
// leaves less padding under natural alignment. props is not modified.
func (p *Planner) FieldOrder(props []*schema.Property) ([]*schema.Property, error) {
	sizes := make(map[*schema.Property]int, len(props))
	for _, prop := range props {
		if prop == nil {
			return nil, errors.UnsupportedType(errors.PhaseSize, "<nil>")
		}
		size, err := p.EstimateSize(prop.Type)
		if err != nil {
			return nil, withPath(err, prop.Name)
		}
		sizes[prop] = size
	}

	res := make([]*schema.Property, len(props))
	copy(res, props)
	sort.SliceStable(res, func(i, j int) bool {
		return sizes[res[i]] > sizes[res[j]]
	})
	return res, nil
}

// InitOrder returns required properties before optional ones, each group
// in declaration order. It drives constructor parameter order only and is
// independent of the physical FieldOrder. props must not contain nil.
func InitOrder(props []*schema.Property) []*schema.Property {
	res := make([]*schema.Property, 0, len(props))
	for _, prop := range props {
		if prop.IsRequired() {
			res = append(res, prop)
		}
	}
	for _, prop := range props {
		if !prop.IsRequired() {
			res = append(res, prop)
		}
	}
	return res
}
