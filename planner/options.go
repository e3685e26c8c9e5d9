package planner

import (
	"go.uber.org/zap"

	"github.com/wippyai/xtp-cpp-bindgen/schema"
)

// Estimated in-memory sizes in bytes. Collections model a pointer plus
// length header regardless of their element type.
const (
	SizeString        = 16
	SizeDateTime      = 14
	SizeInt32         = 4
	SizeInt64         = 8
	SizeFloat         = 4
	SizeDouble        = 8
	SizeByte          = 1
	SizeBoolean       = 1
	SizeArray         = 16
	SizeBuffer        = 16
	SizeMap           = 16
	SizeEnum          = 5
	SizeUntypedObject = 64
)

const (
	// DefaultLargeThreshold is the size above which a value is heap allocated.
	DefaultLargeThreshold = 128

	// DefaultByValueLimit is the largest object or enum passed by value,
	// the size of a native pointer.
	DefaultByValueLimit = 8
)

// Sizes holds the per-kind size estimates. Objects are not listed: a typed
// object is the sum of its properties.
type Sizes struct {
	String        int
	DateTime      int
	Int32         int
	Int64         int
	Float         int
	Double        int
	Byte          int
	Boolean       int
	Array         int
	Buffer        int
	Map           int
	Enum          int
	UntypedObject int
}

// DefaultSizes returns the estimates the conventions are tuned for.
func DefaultSizes() Sizes {
	return Sizes{
		String:        SizeString,
		DateTime:      SizeDateTime,
		Int32:         SizeInt32,
		Int64:         SizeInt64,
		Float:         SizeFloat,
		Double:        SizeDouble,
		Byte:          SizeByte,
		Boolean:       SizeBoolean,
		Array:         SizeArray,
		Buffer:        SizeBuffer,
		Map:           SizeMap,
		Enum:          SizeEnum,
		UntypedObject: SizeUntypedObject,
	}
}

func (s Sizes) fixed(k schema.Kind) (int, bool) {
	switch k {
	case schema.KindString:
		return s.String, true
	case schema.KindDateTime:
		return s.DateTime, true
	case schema.KindInt32:
		return s.Int32, true
	case schema.KindInt64:
		return s.Int64, true
	case schema.KindFloat:
		return s.Float, true
	case schema.KindDouble:
		return s.Double, true
	case schema.KindByte:
		return s.Byte, true
	case schema.KindBoolean:
		return s.Boolean, true
	case schema.KindArray:
		return s.Array, true
	case schema.KindBuffer:
		return s.Buffer, true
	case schema.KindMap:
		return s.Map, true
	case schema.KindEnum:
		return s.Enum, true
	}
	return 0, false
}

// Options configures planner behavior.
type Options struct {
	// Logger overrides the package logger.
	Logger *zap.Logger

	// ImportNamespace prefixes object and enum names in import signatures.
	// Import wrappers live next to the generated types, so it is empty by default.
	ImportNamespace string

	// ExportNamespace prefixes object and enum names in export signatures.
	ExportNamespace string

	// ImportError is the error type of fallible import wrappers.
	ImportError string

	// ExportError is the error type of fallible export implementations.
	ExportError string

	Sizes Sizes

	// LargeThreshold is exclusive: a value is large when its size exceeds it.
	LargeThreshold int

	// ByValueLimit is inclusive: objects and enums up to this size are
	// passed by value.
	ByValueLimit int
}

// DefaultOptions returns default planner configuration.
func DefaultOptions() Options {
	return Options{
		ImportNamespace: "",
		ExportNamespace: "pdk::",
		ImportError:     "Error",
		ExportError:     "pdk::Error",
		Sizes:           DefaultSizes(),
		LargeThreshold:  DefaultLargeThreshold,
		ByValueLimit:    DefaultByValueLimit,
	}
}

// Namespace returns the reference prefix for the given direction.
func (o Options) Namespace(dir schema.Direction) string {
	if dir == schema.Import {
		return o.ImportNamespace
	}
	return o.ExportNamespace
}

// ErrorType returns the error type for the given direction.
func (o Options) ErrorType(dir schema.Direction) string {
	if dir == schema.Import {
		return o.ImportError
	}
	return o.ExportError
}
