package witschema

import (
	"testing"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/xtp-cpp-bindgen/errors"
	"github.com/wippyai/xtp-cpp-bindgen/planner"
	"github.com/wippyai/xtp-cpp-bindgen/schema"
)

func named(name string, kind wit.TypeDefKind) *wit.TypeDef {
	return &wit.TypeDef{Name: &name, Kind: kind}
}

func TestPrimitives(t *testing.T) {
	tests := []struct {
		typ  wit.Type
		want schema.Kind
	}{
		{wit.Bool{}, schema.KindBoolean},
		{wit.U8{}, schema.KindByte},
		{wit.S8{}, schema.KindByte},
		{wit.U16{}, schema.KindInt32},
		{wit.S32{}, schema.KindInt32},
		{wit.Char{}, schema.KindInt32},
		{wit.U64{}, schema.KindInt64},
		{wit.S64{}, schema.KindInt64},
		{wit.F32{}, schema.KindFloat},
		{wit.F64{}, schema.KindDouble},
		{wit.String{}, schema.KindString},
	}
	for _, tc := range tests {
		t.Run(tc.want.String(), func(t *testing.T) {
			got, err := New().Type(tc.typ)
			if err != nil {
				t.Fatal(err)
			}
			if got.Kind != tc.want {
				t.Errorf("got %v, want %v", got.Kind, tc.want)
			}
		})
	}
}

func TestContainers(t *testing.T) {
	tests := []struct {
		name string
		typ  wit.Type
		want string
	}{
		{"bytes", &wit.TypeDef{Kind: &wit.List{Type: wit.U8{}}}, "buffer"},
		{"list", &wit.TypeDef{Kind: &wit.List{Type: wit.U32{}}}, "array<int32>"},
		{"option", &wit.TypeDef{Kind: &wit.Option{Type: wit.String{}}}, "string?"},
		{"alias", named("count", wit.U64{}), "int64"},
		{
			"map",
			&wit.TypeDef{Kind: &wit.List{Type: &wit.TypeDef{Kind: &wit.Tuple{Types: []wit.Type{wit.String{}, wit.F64{}}}}}},
			"map<string, double>",
		},
		{
			"pairs_without_string_key",
			&wit.TypeDef{Kind: &wit.List{Type: &wit.TypeDef{Kind: &wit.Tuple{Types: []wit.Type{wit.U32{}, wit.U32{}}}}}},
			"",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := New().Type(tc.typ)
			if tc.want == "" {
				if !errors.Is(err, errors.ErrUnsupportedType) {
					t.Errorf("got %v, want unsupported type", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got.String() != tc.want {
				t.Errorf("got %q, want %q", got.String(), tc.want)
			}
		})
	}
}

func TestRecordAndEnum(t *testing.T) {
	fruit := named("fruit", &wit.Enum{Cases: []wit.EnumCase{{Name: "apple"}, {Name: "banana"}}})
	params := named("write-params", &wit.Record{Fields: []wit.Field{
		{Name: "key", Type: wit.String{}},
		{Name: "value", Type: &wit.TypeDef{Kind: &wit.List{Type: wit.U8{}}}},
		{Name: "fruit", Type: &wit.TypeDef{Kind: &wit.Option{Type: fruit}}},
	}})

	c := New()
	got, err := c.Type(params)
	if err != nil {
		t.Fatal(err)
	}
	if got.Kind != schema.KindObject || got.Name != "write-params" {
		t.Fatalf("got %v, want object write-params", got)
	}

	// the same definition is declared once
	again, err := c.Type(params)
	if err != nil {
		t.Fatal(err)
	}
	if again != got {
		t.Error("second conversion should reuse the declaration")
	}

	set := c.Set()
	if len(set.Names) != 2 || set.Names[0] != "fruit" || set.Names[1] != "write-params" {
		t.Fatalf("got declarations %v, want [fruit write-params]", set.Names)
	}
	enum, _ := set.Lookup("fruit")
	if !enum.IsEnum() || len(enum.EnumCases) != 2 {
		t.Errorf("got %+v, want enum with 2 cases", enum)
	}
	decl, _ := set.Lookup("write-params")
	if decl.Properties[2].IsRequired() || !decl.Properties[2].Type.Nullable {
		t.Error("option field should be optional and nullable")
	}
	if !decl.Properties[0].IsRequired() {
		t.Error("plain field should be required")
	}
}

func TestUnsupported(t *testing.T) {
	tests := []struct {
		name string
		typ  wit.Type
	}{
		{"nil", nil},
		{"tuple", &wit.TypeDef{Kind: &wit.Tuple{Types: []wit.Type{wit.U32{}}}}},
		{"flags", named("perms", &wit.Flags{Flags: []wit.Flag{{Name: "read"}}})},
		{"result", &wit.TypeDef{Kind: &wit.Result{OK: wit.U32{}, Err: wit.String{}}}},
		{"variant", named("shape", &wit.Variant{Cases: []wit.Case{{Name: "circle", Type: wit.F32{}}}})},
		{"anonymous_record", &wit.TypeDef{Kind: &wit.Record{Fields: []wit.Field{{Name: "a", Type: wit.U8{}}}}}},
		{"anonymous_enum", &wit.TypeDef{Kind: &wit.Enum{Cases: []wit.EnumCase{{Name: "a"}}}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New().Type(tc.typ); !errors.Is(err, errors.ErrUnsupportedType) {
				t.Errorf("got %v, want unsupported type", err)
			}
		})
	}
}

func TestUnsupportedFieldPath(t *testing.T) {
	rec := named("holder", &wit.Record{Fields: []wit.Field{
		{Name: "res", Type: &wit.TypeDef{Kind: &wit.Result{OK: wit.U32{}}}},
	}})
	_, err := New().Type(rec)
	var e *errors.Error
	if !errors.As(err, &e) {
		t.Fatalf("got %v, want *errors.Error", err)
	}
	if len(e.Path) != 2 || e.Path[0] != "holder" || e.Path[1] != "res" {
		t.Errorf("path: got %v, want [holder res]", e.Path)
	}
}

func TestRecursiveRecord(t *testing.T) {
	node := named("node", nil)
	node.Kind = &wit.Record{Fields: []wit.Field{
		{Name: "next", Type: &wit.TypeDef{Kind: &wit.Option{Type: node}}},
	}}
	if _, err := New().Type(node); !errors.Is(err, errors.ErrCyclicReference) {
		t.Errorf("got %v, want cyclic reference", err)
	}
}

func TestContentType(t *testing.T) {
	tests := []struct {
		typ  *schema.Type
		want schema.ContentType
	}{
		{schema.String(), schema.ContentText},
		{schema.Enum("Fruit"), schema.ContentText},
		{schema.Buffer(), schema.ContentBinary},
		{schema.Array(schema.Float()), schema.ContentBinary},
		{schema.Array(schema.String()), schema.ContentJSON},
		{schema.Boolean(), schema.ContentJSON},
		{schema.Object("P", schema.Prop("a", schema.Int32())), schema.ContentJSON},
	}
	for _, tc := range tests {
		if got := ContentType(tc.typ); got != tc.want {
			t.Errorf("ContentType(%s) = %v, want %v", tc.typ, got, tc.want)
		}
	}
}

func TestPlanConverted(t *testing.T) {
	fruit := named("fruit", &wit.Enum{Cases: []wit.EnumCase{{Name: "apple"}}})
	params := named("write-params", &wit.Record{Fields: []wit.Field{
		{Name: "key", Type: wit.String{}},
		{Name: "value", Type: &wit.TypeDef{Kind: &wit.List{Type: wit.U8{}}}},
	}})

	c := New()
	if err := c.AddFunction(schema.Import, "kv-write", params, nil); err != nil {
		t.Fatal(err)
	}
	if err := c.AddFunction(schema.Import, "kv-read", wit.String{}, &wit.TypeDef{Kind: &wit.List{Type: wit.U8{}}}); err != nil {
		t.Fatal(err)
	}
	if err := c.AddFunction(schema.Export, "eat", fruit, wit.Bool{}); err != nil {
		t.Fatal(err)
	}

	plan, err := planner.NewWithDefaults().Plan(c.Set())
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if got := plan.Objects[0].TypeName; got != "WriteParams" {
		t.Errorf("got %q, want WriteParams", got)
	}
	if got := plan.Imports[0].Param; got != "const WriteParams&" {
		t.Errorf("kv-write param: got %q", got)
	}
	if got := plan.Imports[1].Return; got != "std::expected<std::vector<std::byte>, Error>" {
		t.Errorf("kv-read return: got %q", got)
	}
	if got := plan.Exports[0].Param; got != "pdk::Fruit" {
		t.Errorf("eat param: got %q", got)
	}
}

func TestAddFunctionError(t *testing.T) {
	c := New()
	err := c.AddFunction(schema.Export, "call", &wit.TypeDef{Kind: &wit.Result{OK: wit.U32{}}}, nil)
	var e *errors.Error
	if !errors.As(err, &e) || e.Kind != errors.KindUnsupportedType {
		t.Fatalf("got %v, want unsupported type", err)
	}
	if len(e.Path) != 2 || e.Path[0] != "call" || e.Path[1] != "input" {
		t.Errorf("path: got %v, want [call input]", e.Path)
	}
	if len(c.Set().Exports) != 0 {
		t.Error("failed function should not be registered")
	}
}
