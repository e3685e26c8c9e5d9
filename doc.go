// Package bindgen plans C++ bindings for XTP plugin schemas.
//
// Given a normalized schema graph of named objects, enums and the host
// import and guest export signatures that use them, the planner decides
// how every value is spelled, stored, passed and returned in C++, how
// struct members are laid out, how values cross the WebAssembly host
// boundary, and in which order declarations must be emitted.
//
// # Architecture Overview
//
//	bindgen/
//	├── schema/          Normalized schema graph and its JSON decoder
//	├── witschema/       WIT types to schema graph conversion
//	├── planner/         Size, type, storage, passing, layout, boundary and order decisions
//	├── errors/          Structured error types for debugging
//	└── cmd/xtpplan/     Command line planner with an interactive browser
//
// # Quick Start
//
// Plan a decoded schema:
//
//	set, err := schema.Decode(data)
//	if err != nil {
//		return err
//	}
//	plan, err := planner.NewWithDefaults().Plan(set)
//
// Individual decisions are available as queries:
//
//	p := planner.NewWithDefaults()
//	p.RenderType(schema.Array(schema.Int32()), "")   // std::vector<int32_t>
//	p.ParamType(schema.String(), schema.Import)       // std::string_view
//	p.ReturnType(schema.Boolean(), schema.Export)     // std::expected<bool, pdk::Error>
//
// # Error Handling
//
// Errors are returned as *errors.Error carrying the phase, kind and the
// path to the offending declaration. Sentinels match by kind:
//
//	if errors.Is(err, errors.ErrUnsupportedEncoding) { ... }
//
// # Logging
//
// Planner logging uses zap and is disabled by default. Set a logger
// globally with planner.SetLogger or per planner through Options.Logger.
package bindgen
