package schema

import (
	"github.com/tidwall/gjson"

	"github.com/wippyai/xtp-cpp-bindgen/errors"
)

// Decode reads a JSON dump of an already-normalized schema graph:
//
//	{
//	  "schemas": [
//	    {"name": "Fruit", "enum": ["apple", "orange"]},
//	    {"name": "WriteParams", "properties": [
//	      {"name": "key", "type": {"kind": "string"}},
//	      {"name": "value", "type": {"kind": "buffer"}, "required": false}
//	    ]}
//	  ],
//	  "imports": [
//	    {"name": "kv_write", "input": {"type": {"$ref": "WriteParams"}, "contentType": "application/json"}}
//	  ],
//	  "exports": []
//	}
//
// Types are {"kind": k} with "items" for arrays, "key"/"value" for maps and
// "name" for objects and enums; {"$ref": name} refers to a declaration.
// Object references share the declaration's property list.
func Decode(data []byte) (*Set, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.InvalidInput(errors.PhaseIngest, "malformed JSON")
	}
	root := gjson.ParseBytes(data)
	d := &decoder{set: NewSet()}

	decls := root.Get("schemas").Array()
	for _, v := range decls {
		decl := &Schema{
			Name:        v.Get("name").String(),
			Description: v.Get("description").String(),
		}
		if cases := v.Get("enum"); cases.Exists() {
			decl.Kind = DeclEnum
			for _, c := range cases.Array() {
				decl.EnumCases = append(decl.EnumCases, c.String())
			}
		}
		if err := d.set.Add(decl); err != nil {
			return nil, err
		}
	}

	for _, v := range decls {
		decl := d.set.Schemas[v.Get("name").String()]
		if decl.IsEnum() {
			continue
		}
		props, err := d.properties(v.Get("properties"), decl.Name)
		if err != nil {
			return nil, err
		}
		decl.Properties = props
	}

	var err error
	if d.set.Imports, err = d.functions(root.Get("imports"), "imports"); err != nil {
		return nil, err
	}
	if d.set.Exports, err = d.functions(root.Get("exports"), "exports"); err != nil {
		return nil, err
	}

	// references were created before every declaration had its properties
	for _, ref := range d.refs {
		ref.Properties = d.set.Schemas[ref.Name].Properties
	}
	return d.set, nil
}

type decoder struct {
	set  *Set
	refs []*Type
}

func (d *decoder) properties(v gjson.Result, path ...string) ([]*Property, error) {
	var props []*Property
	for _, pv := range v.Array() {
		p, err := d.property(pv, append(path, pv.Get("name").String())...)
		if err != nil {
			return nil, err
		}
		props = append(props, p)
	}
	return props, nil
}

func (d *decoder) property(v gjson.Result, path ...string) (*Property, error) {
	p := &Property{
		Name:        v.Get("name").String(),
		Description: v.Get("description").String(),
	}
	if req := v.Get("required"); req.Exists() {
		b := req.Bool()
		p.Required = &b
	}
	if ct := v.Get("contentType"); ct.Exists() {
		c, ok := ParseContentType(ct.String())
		if !ok {
			return nil, errors.New(errors.PhaseIngest, errors.KindInvalidInput).
				Path(path...).
				ContentType(ct.String()).
				Detail("unknown content type").
				Build()
		}
		p.ContentType = c
	}
	t, err := d.typ(v.Get("type"), path...)
	if err != nil {
		return nil, err
	}
	p.Type = t
	return p, nil
}

func (d *decoder) functions(v gjson.Result, path string) ([]*Function, error) {
	var fns []*Function
	for _, fv := range v.Array() {
		fn := &Function{
			Name:        fv.Get("name").String(),
			Description: fv.Get("description").String(),
		}
		if in := fv.Get("input"); in.Exists() {
			p, err := d.property(in, path, fn.Name, "input")
			if err != nil {
				return nil, err
			}
			fn.Input = p
		}
		if out := fv.Get("output"); out.Exists() {
			p, err := d.property(out, path, fn.Name, "output")
			if err != nil {
				return nil, err
			}
			fn.Output = p
		}
		fns = append(fns, fn)
	}
	return fns, nil
}

func (d *decoder) typ(v gjson.Result, path ...string) (*Type, error) {
	if !v.IsObject() {
		return nil, errors.New(errors.PhaseIngest, errors.KindInvalidInput).
			Path(path...).
			Detail("missing type").
			Build()
	}
	nullable := v.Get("nullable").Bool()

	if ref := v.Get("$ref"); ref.Exists() {
		t, err := d.ref(ref.String(), path)
		if err != nil {
			return nil, err
		}
		t.Nullable = nullable
		return t, nil
	}

	name := v.Get("kind").String()
	kind, ok := ParseKind(name)
	if !ok {
		return nil, errors.UnsupportedType(errors.PhaseIngest, name).WithPath(path...)
	}

	t := &Type{Kind: kind, Nullable: nullable}
	switch kind {
	case KindArray:
		elem, err := d.typ(v.Get("items"), append(path, "items")...)
		if err != nil {
			return nil, err
		}
		t.Elem = elem
	case KindMap:
		t.Key = String()
		if kv := v.Get("key"); kv.Exists() {
			key, err := d.typ(kv, append(path, "key")...)
			if err != nil {
				return nil, err
			}
			t.Key = key
		}
		val, err := d.typ(v.Get("value"), append(path, "value")...)
		if err != nil {
			return nil, err
		}
		t.Value = val
	case KindObject, KindEnum:
		if n := v.Get("name").String(); n != "" {
			ref, err := d.ref(n, path)
			if err != nil {
				return nil, err
			}
			if ref.Kind != kind {
				return nil, errors.New(errors.PhaseIngest, errors.KindInvalidInput).
					Path(path...).
					Type(ref.String()).
					Detail("declared as %s", kind).
					Build()
			}
			ref.Nullable = nullable
			return ref, nil
		}
		if kind == KindEnum {
			return nil, errors.New(errors.PhaseIngest, errors.KindInvalidInput).
				Path(path...).
				Detail("enum reference without a name").
				Build()
		}
		// only declarations may carry properties; inline shapes must be named
		if v.Get("properties").Exists() {
			return nil, errors.New(errors.PhaseIngest, errors.KindUnsupportedType).
				Path(path...).
				Type("object").
				Detail("anonymous object with properties").
				Build()
		}
	}
	return t, nil
}

func (d *decoder) ref(name string, path []string) (*Type, error) {
	decl, ok := d.set.Lookup(name)
	if !ok {
		return nil, errors.NotFound(errors.PhaseIngest, "schema", name).WithPath(path...)
	}
	t := decl.Type()
	if t.Kind == KindObject {
		d.refs = append(d.refs, t)
	}
	return t, nil
}
