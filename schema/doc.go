// Package schema defines the normalized interface schema the planner
// consumes.
//
// A Set holds named object and enum declarations plus the import and export
// signatures that use them. Every value shape is a *Type, a tagged union
// over Kind:
//
//	string, int32, int64, float, double, byte, date-time, boolean,
//	array<T>, buffer, object, enum, map<K, V>
//
// Any type may be nullable. An object with neither a name nor properties is
// untyped: an opaque JSON value.
//
// Object references are name based. A reference type shares the property
// list of its declaration, so ownership never flows along a reference and
// the graph is treated as read-only once built.
//
// Decode reads a JSON dump of an already-normalized graph; parsing interface
// description documents is left to the ingestion tooling that produces it.
package schema
