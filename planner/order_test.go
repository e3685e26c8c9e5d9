package planner

import (
	"testing"

	"github.com/wippyai/xtp-cpp-bindgen/errors"
	"github.com/wippyai/xtp-cpp-bindgen/schema"
)

func object(name string, props ...*schema.Property) *schema.Schema {
	return &schema.Schema{Name: name, Properties: props}
}

func ref(name string) *schema.Type {
	return &schema.Type{Kind: schema.KindObject, Name: name}
}

func declNames(decls []*schema.Schema) []string {
	res := make([]string, len(decls))
	for i, d := range decls {
		res[i] = d.Name
	}
	return res
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestOrderObjects(t *testing.T) {
	tests := []struct {
		name  string
		decls []*schema.Schema
		want  []string
	}{
		{
			name: "dependencies_first",
			decls: []*schema.Schema{
				object("C", schema.Prop("b", ref("B"))),
				object("B", schema.Prop("a", ref("A"))),
				object("A", schema.Prop("n", schema.Int32())),
			},
			want: []string{"A", "B", "C"},
		},
		{
			name: "independent_keep_declaration_order",
			decls: []*schema.Schema{
				object("Z", schema.Prop("n", schema.Int32())),
				object("M", schema.Prop("s", schema.String())),
				object("A", schema.Prop("b", schema.Boolean())),
			},
			want: []string{"Z", "M", "A"},
		},
		{
			name: "through_containers",
			decls: []*schema.Schema{
				object("List", schema.Prop("items", schema.Array(ref("Item")))),
				object("Index", schema.Prop("byKey", schema.Map(schema.String(), ref("Item")))),
				object("Maybe", schema.Prop("item", ref("Item").AsNullable())),
				object("Item", schema.Prop("n", schema.Int32())),
			},
			want: []string{"Item", "List", "Index", "Maybe"},
		},
		{
			name: "ties_by_declaration_order",
			decls: []*schema.Schema{
				object("X", schema.Prop("n", schema.Int32())),
				object("C", schema.Prop("b", ref("B"))),
				object("B", schema.Prop("a", ref("A"))),
				object("A", schema.Prop("n", schema.Int32())),
			},
			want: []string{"X", "A", "B", "C"},
		},
		{
			name: "diamond",
			decls: []*schema.Schema{
				object("Top", schema.Prop("l", ref("Left")), schema.Prop("r", ref("Right"))),
				object("Left", schema.Prop("b", ref("Base"))),
				object("Right", schema.Prop("b", ref("Base"))),
				object("Base", schema.Prop("n", schema.Int32())),
			},
			want: []string{"Base", "Left", "Right", "Top"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			set := schema.NewSet().MustAdd(tc.decls...)
			objects, enums, err := NewWithDefaults().OrderObjects(set)
			if err != nil {
				t.Fatalf("OrderObjects: %v", err)
			}
			if len(enums) != 0 {
				t.Errorf("got %d enums, want 0", len(enums))
			}
			if got := declNames(objects); !equalStrings(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestOrderObjectsEnums(t *testing.T) {
	set := schema.NewSet().MustAdd(
		&schema.Schema{Name: "Fruit", Kind: schema.DeclEnum, EnumCases: []string{"apple", "orange"}},
		object("Basket", schema.Prop("fruit", schema.Enum("Fruit"))),
		&schema.Schema{Name: "Color", Kind: schema.DeclEnum, EnumCases: []string{"red"}},
	)

	objects, enums, err := NewWithDefaults().OrderObjects(set)
	if err != nil {
		t.Fatal(err)
	}
	if got := declNames(objects); !equalStrings(got, []string{"Basket"}) {
		t.Errorf("objects: got %v, want [Basket]", got)
	}
	if got := declNames(enums); !equalStrings(got, []string{"Fruit", "Color"}) {
		t.Errorf("enums: got %v, want [Fruit Color]", got)
	}
}

func TestOrderObjectsCycles(t *testing.T) {
	tests := []struct {
		name   string
		decls  []*schema.Schema
		detail string
	}{
		{
			name: "mutual",
			decls: []*schema.Schema{
				object("A", schema.Prop("b", ref("B"))),
				object("B", schema.Prop("a", ref("A"))),
			},
			detail: "objects reference each other: A, B",
		},
		{
			name: "self",
			decls: []*schema.Schema{
				object("Node", schema.Prop("next", ref("Node").AsNullable())),
			},
			detail: "objects reference each other: Node",
		},
		{
			name: "cycle_blocks_dependents",
			decls: []*schema.Schema{
				object("Free", schema.Prop("n", schema.Int32())),
				object("A", schema.Prop("b", ref("B"))),
				object("B", schema.Prop("a", schema.Array(ref("A")))),
			},
			detail: "objects reference each other: A, B",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			set := schema.NewSet().MustAdd(tc.decls...)
			objects, _, err := NewWithDefaults().OrderObjects(set)
			if !errors.Is(err, errors.ErrCyclicReference) {
				t.Fatalf("got %v, want cyclic reference", err)
			}
			if objects != nil {
				t.Errorf("got %v, want no partial order", declNames(objects))
			}
			var e *errors.Error
			if !errors.As(err, &e) {
				t.Fatalf("got %T, want *errors.Error", err)
			}
			if e.Detail != tc.detail {
				t.Errorf("detail: got %q, want %q", e.Detail, tc.detail)
			}
		})
	}
}

func TestOrderObjectsUndeclared(t *testing.T) {
	set := schema.NewSet().MustAdd(
		object("Holder", schema.Prop("missing", ref("Ghost"))),
	)
	_, _, err := NewWithDefaults().OrderObjects(set)

	var e *errors.Error
	if !errors.As(err, &e) || e.Kind != errors.KindNotFound {
		t.Fatalf("got %v, want not found", err)
	}
	if !equalStrings(e.Path, []string{"Holder", "missing"}) {
		t.Errorf("path: got %v, want [Holder missing]", e.Path)
	}
}
