// Package planner maps normalized schema types onto C++ binding types.
//
// Every decision is a pure function of a schema node and the planner
// Options, driven by an estimated in-memory size:
//
//	EstimateSize   heuristic byte size, recursive for objects
//	RenderType     value type: int32_t, std::vector<T>, std::optional<T>, ns::Name
//	StorageType    value type, or std::unique_ptr<T> above LargeThreshold
//	ParamType      by value, const&, &&, const T*, unique_ptr or view by direction
//	ReturnType     std::expected<storage, error type of the direction>
//	FieldOrder     members by descending size, stable
//	InitOrder      required members before optional ones
//	HandleType     element type of the boundary handle for a content type
//	OrderObjects   objects after the objects they reference
//
// Imports borrow their arguments from the caller and exports take
// ownership, so the same type can be passed differently depending on the
// schema.Direction.
//
// Plan runs all of the above once over a schema.Set:
//
//	p := planner.NewWithDefaults()
//	plan, err := p.Plan(set)
//	if err != nil {
//	    // unsupported type, unsupported encoding or cyclic reference
//	}
//	for _, fn := range plan.Imports {
//	    fmt.Println(fn.Return, fn.Name, "(", fn.Param, ")")
//	}
//
// Any error is fatal to the run and no partial plan is returned.
package planner
