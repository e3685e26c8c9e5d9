package schema

type Kind uint8

const (
	KindString Kind = iota
	KindInt32
	KindInt64
	KindFloat
	KindDouble
	KindByte
	KindDateTime
	KindBoolean
	KindArray
	KindBuffer
	KindObject
	KindEnum
	KindMap
	kindCount
)

var kindNames = [...]string{
	KindString:   "string",
	KindInt32:    "int32",
	KindInt64:    "int64",
	KindFloat:    "float",
	KindDouble:   "double",
	KindByte:     "byte",
	KindDateTime: "date-time",
	KindBoolean:  "boolean",
	KindArray:    "array",
	KindBuffer:   "buffer",
	KindObject:   "object",
	KindEnum:     "enum",
	KindMap:      "map",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "unknown"
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k < kindCount
}

// IsReference reports whether values of k name a schema declaration.
func (k Kind) IsReference() bool {
	return k == KindObject || k == KindEnum
}

// ParseKind returns the kind with the given name.
func ParseKind(s string) (Kind, bool) {
	for i, n := range kindNames {
		if n == s {
			return Kind(i), true
		}
	}
	return 0, false
}

// ContentType is the declared encoding of a value crossing the host boundary.
type ContentType uint8

const (
	ContentNone ContentType = iota
	ContentJSON
	ContentText
	ContentBinary
)

var contentNames = [...]string{
	ContentNone:   "",
	ContentJSON:   "application/json",
	ContentText:   "text/plain; charset=utf-8",
	ContentBinary: "application/x-binary",
}

func (c ContentType) String() string {
	if int(c) < len(contentNames) {
		return contentNames[c]
	}
	return "unknown"
}

// ParseContentType maps a media type to a ContentType. Parameters other
// than the base type are ignored, so "text/plain" and
// "text/plain; charset=utf-8" both yield ContentText.
func ParseContentType(s string) (ContentType, bool) {
	base := s
	for i := 0; i < len(s); i++ {
		if s[i] == ';' {
			base = s[:i]
			break
		}
	}
	switch base {
	case "":
		return ContentNone, true
	case "application/json":
		return ContentJSON, true
	case "text/plain":
		return ContentText, true
	case "application/x-binary", "application/octet-stream":
		return ContentBinary, true
	}
	return ContentNone, false
}

// Direction tells which side of the host boundary owns a function.
type Direction uint8

const (
	// Import is a host-provided capability the guest calls into.
	Import Direction = iota
	// Export is a guest capability the host calls.
	Export
)

func (d Direction) String() string {
	switch d {
	case Import:
		return "import"
	case Export:
		return "export"
	}
	return "unknown"
}

// MarshalText encodes the kind name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// MarshalText encodes the media type.
func (c ContentType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// MarshalText encodes the direction name.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
