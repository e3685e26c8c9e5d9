// Package witschema converts WebAssembly Interface Types into the schema
// graph consumed by the planner.
//
// Primitive mapping:
//
//	bool                  boolean
//	u8, s8                byte
//	u16, s16, u32, s32    int32
//	char                  int32
//	u64, s64              int64
//	f32, f64              float, double
//	string                string
//	list<u8>              buffer
//	list<tuple<string,V>> map<string, V>
//	list<T>               array<T>
//	option<T>             nullable T
//	record, enum          named object, enum declarations
//
// Variants, flags, results, tuples and resource handles have no
// counterpart and fail with an unsupported type error.
package witschema
