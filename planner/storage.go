package planner

import "github.com/wippyai/xtp-cpp-bindgen/schema"

// IsLarge reports whether t is estimated above the large threshold.
func (p *Planner) IsLarge(t *schema.Type) (bool, error) {
	size, err := p.EstimateSize(t)
	if err != nil {
		return false, err
	}
	return size > p.opts.LargeThreshold, nil
}

// StorageType returns how a value of t is held. Large values live behind
// std::unique_ptr, where an empty pointer stands in for a missing nullable
// value; everything else is stored as its rendered value type.
func (p *Planner) StorageType(t *schema.Type, ns string) (string, error) {
	large, err := p.IsLarge(t)
	if err != nil {
		return "", err
	}
	if !large {
		return p.RenderType(t, ns)
	}
	base, err := p.RenderType(t.NonNull(), ns)
	if err != nil {
		return "", err
	}
	return uniquePtr(base), nil
}

func uniquePtr(name string) string {
	return "std::unique_ptr<" + name + ">"
}
