package planner

import (
	"sort"

	"go.uber.org/zap"

	"github.com/wippyai/xtp-cpp-bindgen/errors"
	"github.com/wippyai/xtp-cpp-bindgen/schema"
)

// OrderObjects splits the declarations of set into objects and enums.
// Objects come out in dependency order: an object is placed after every
// object its properties reference. Unrelated objects keep declaration
// order. Objects that reference each other, directly or through others,
// fail with a cyclic reference error.
func (p *Planner) OrderObjects(set *schema.Set) (objects, enums []*schema.Schema, err error) {
	var decls []*schema.Schema
	index := make(map[string]int)
	for _, decl := range set.Ordered() {
		if decl.IsEnum() {
			enums = append(enums, decl)
			continue
		}
		index[decl.Name] = len(decls)
		decls = append(decls, decl)
	}

	// edges[i] lists the objects that reference object i
	n := len(decls)
	edges := make([][]int, n)
	inDegree := make([]int, n)
	for i, decl := range decls {
		deps, err := references(set, decl)
		if err != nil {
			return nil, nil, err
		}
		for _, name := range deps {
			j, ok := index[name]
			if !ok {
				continue
			}
			edges[j] = append(edges[j], i)
			inDegree[i]++
		}
	}

	// ready is kept sorted so ties resolve to declaration order
	var ready []int
	for i := 0; i < n; i++ {
		if inDegree[i] == 0 {
			ready = append(ready, i)
		}
	}

	objects = make([]*schema.Schema, 0, n)
	for len(ready) > 0 {
		node := ready[0]
		ready = ready[1:]
		objects = append(objects, decls[node])

		for _, dependent := range edges[node] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				at := sort.SearchInts(ready, dependent)
				ready = append(ready, 0)
				copy(ready[at+1:], ready[at:])
				ready[at] = dependent
			}
		}
	}

	if len(objects) != n {
		var cyclic []string
		for i, decl := range decls {
			if inDegree[i] > 0 {
				cyclic = append(cyclic, decl.Name)
			}
		}
		return nil, nil, errors.CyclicReference(errors.PhaseOrder, cyclic)
	}

	names := make([]string, len(objects))
	for i, o := range objects {
		names[i] = o.Name
	}
	p.log.Debug("ordered objects", zap.Strings("order", names))
	return objects, enums, nil
}

// references returns the distinct declaration names decl's properties
// refer to, in first-use order. Every name must be declared in set.
func references(set *schema.Set, decl *schema.Schema) ([]string, error) {
	var names []string
	seen := make(map[string]bool)
	var missing error
	for _, prop := range decl.Properties {
		if prop == nil {
			continue
		}
		prop.Type.Walk(func(t *schema.Type) {
			if !t.Kind.IsReference() || t.Name == "" || seen[t.Name] {
				return
			}
			seen[t.Name] = true
			if _, ok := set.Lookup(t.Name); !ok && missing == nil {
				missing = errors.NotFound(errors.PhaseOrder, "schema", t.Name).WithPath(decl.Name, prop.Name)
			}
			names = append(names, t.Name)
		})
	}
	if missing != nil {
		return nil, missing
	}
	return names, nil
}
