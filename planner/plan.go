package planner

import (
	"go.uber.org/zap"

	"github.com/wippyai/xtp-cpp-bindgen/errors"
	"github.com/wippyai/xtp-cpp-bindgen/schema"
)

// Plan is the complete set of decisions for one schema graph.
type Plan struct {
	Objects  []ObjectPlan   `json:"objects"`
	Enums    []EnumPlan     `json:"enums"`
	Imports  []FunctionPlan `json:"imports"`
	Exports  []FunctionPlan `json:"exports"`
	Features Features       `json:"features"`
}

// ObjectPlan describes one struct. Fields is the physical member order,
// Init the constructor parameter order.
type ObjectPlan struct {
	Name        string      `json:"name"`
	TypeName    string      `json:"typeName"`
	Description string      `json:"description,omitempty"`
	Fields      []FieldPlan `json:"fields"`
	Init        []FieldPlan `json:"init"`
	Size        int         `json:"size"`
	Large       bool        `json:"large"`
}

// FieldPlan describes one struct member.
type FieldPlan struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Member      string `json:"member"`
	Size        int    `json:"size"`
	Required    bool   `json:"required"`
	Nullable    bool   `json:"nullable"`
	Large       bool   `json:"large"`
}

// EnumPlan describes one enum.
type EnumPlan struct {
	Name        string   `json:"name"`
	TypeName    string   `json:"typeName"`
	Description string   `json:"description,omitempty"`
	Cases       []string `json:"cases"`
}

// FunctionPlan describes the generated wrapper of an import or export.
type FunctionPlan struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Direction   schema.Direction `json:"direction"`
	Param       string           `json:"param,omitempty"`
	Convention  *Convention      `json:"convention,omitempty"`
	Return      string           `json:"return"`
	Input       *HandlePlan      `json:"input,omitempty"`
	Output      *HandlePlan      `json:"output,omitempty"`
	Core        Signature        `json:"-"`
	Signature   string           `json:"signature"`
}

// HandlePlan describes how a value crosses the host boundary.
type HandlePlan struct {
	Type        string             `json:"type"`
	Element     string             `json:"element"`
	Accessor    Accessor           `json:"accessor"`
	ContentType schema.ContentType `json:"contentType"`
}

// Features tells the renderer which optional support code is needed.
type Features struct {
	// HasBufferField is set when an object member holds a buffer.
	HasBufferField bool `json:"hasBufferField"`
	// NeedsJSONValue is set when an untyped object appears anywhere.
	NeedsJSONValue bool `json:"needsJsonValue"`
	// UsesJSONEncoding is set when a boundary value is JSON encoded.
	UsesJSONEncoding bool `json:"usesJsonEncoding"`
	// UsesBufferEncoding is set when a boundary value is a buffer.
	UsesBufferEncoding bool `json:"usesBufferEncoding"`
	HasEnums           bool `json:"hasEnums"`
}

// Plan orders and lays out every declaration of set and plans every import
// and export. The first error aborts the run; no partial plan is returned.
func (p *Planner) Plan(set *schema.Set) (*Plan, error) {
	run := &Planner{log: p.log, opts: p.opts, sizes: make(map[string]int)}
	plan, err := run.plan(set)
	if err != nil {
		p.log.Warn("plan failed", zap.Error(err))
		return nil, err
	}
	return plan, nil
}

func (p *Planner) plan(set *schema.Set) (*Plan, error) {
	if set == nil {
		return nil, errors.InvalidInput(errors.PhasePlan, "nil schema set")
	}

	objects, enums, err := p.OrderObjects(set)
	if err != nil {
		return nil, err
	}

	plan := &Plan{}
	for _, decl := range objects {
		op, err := p.planObject(decl, &plan.Features)
		if err != nil {
			return nil, err
		}
		plan.Objects = append(plan.Objects, op)
	}

	for _, decl := range enums {
		name, err := p.RenderType(decl.Type(), "")
		if err != nil {
			return nil, withPath(err, decl.Name)
		}
		plan.Enums = append(plan.Enums, EnumPlan{
			Name:        decl.Name,
			TypeName:    name,
			Description: decl.Description,
			Cases:       decl.EnumCases,
		})
	}
	plan.Features.HasEnums = len(plan.Enums) > 0

	for _, dir := range []schema.Direction{schema.Import, schema.Export} {
		for _, fn := range set.Functions(dir) {
			fp, err := p.planFunction(fn, dir, &plan.Features)
			if err != nil {
				return nil, err
			}
			if dir == schema.Import {
				plan.Imports = append(plan.Imports, fp)
			} else {
				plan.Exports = append(plan.Exports, fp)
			}
		}
	}
	return plan, nil
}

func (p *Planner) planObject(decl *schema.Schema, feat *Features) (ObjectPlan, error) {
	t := decl.Type()
	op := ObjectPlan{
		Name:        decl.Name,
		Description: decl.Description,
	}

	var err error
	if op.TypeName, err = p.RenderType(t, ""); err != nil {
		return op, withPath(err, decl.Name)
	}
	if op.Size, err = p.EstimateSize(t); err != nil {
		return op, err
	}
	op.Large = op.Size > p.opts.LargeThreshold

	fields := make(map[*schema.Property]FieldPlan, len(decl.Properties))
	for _, prop := range decl.Properties {
		fp, err := p.planField(prop)
		if err != nil {
			return op, withPath(err, decl.Name)
		}
		fields[prop] = fp
		prop.Type.Walk(func(t *schema.Type) {
			if t.Kind == schema.KindBuffer {
				feat.HasBufferField = true
			}
			if t.IsUntyped() {
				feat.NeedsJSONValue = true
			}
		})
	}

	physical, err := p.FieldOrder(decl.Properties)
	if err != nil {
		return op, withPath(err, decl.Name)
	}
	for _, prop := range physical {
		op.Fields = append(op.Fields, fields[prop])
	}
	for _, prop := range InitOrder(decl.Properties) {
		op.Init = append(op.Init, fields[prop])
	}
	return op, nil
}

func (p *Planner) planField(prop *schema.Property) (FieldPlan, error) {
	if prop == nil {
		return FieldPlan{}, errors.UnsupportedType(errors.PhasePlan, "<nil>")
	}
	fp := FieldPlan{
		Name:        prop.Name,
		Description: prop.Description,
		Required:    prop.IsRequired(),
	}
	if prop.Type == nil {
		return fp, errors.UnsupportedType(errors.PhasePlan, "<nil>").WithPath(prop.Name)
	}
	fp.Nullable = prop.Type.Nullable

	var err error
	if fp.Size, err = p.EstimateSize(prop.Type); err != nil {
		return fp, withPath(err, prop.Name)
	}
	fp.Large = fp.Size > p.opts.LargeThreshold
	if fp.Member, err = p.StorageType(prop.Type, ""); err != nil {
		return fp, withPath(err, prop.Name)
	}
	return fp, nil
}

func (p *Planner) planFunction(fn *schema.Function, dir schema.Direction, feat *Features) (FunctionPlan, error) {
	fp := FunctionPlan{
		Name:        fn.Name,
		Description: fn.Description,
		Direction:   dir,
	}
	var err error

	if fn.Input != nil {
		if fn.Input.Type == nil {
			return fp, errors.UnsupportedType(errors.PhasePlan, "<nil>").WithPath(fn.Name, "input")
		}
		conv, err := p.Convention(fn.Input.Type, dir)
		if err != nil {
			return fp, withPath(err, fn.Name, "input")
		}
		if fp.Param, err = p.spell(fn.Input.Type, dir, conv); err != nil {
			return fp, withPath(err, fn.Name, "input")
		}
		fp.Convention = &conv
		if fp.Input, err = p.planHandle(fn.Input, dir, feat); err != nil {
			return fp, withPath(err, fn.Name, "input")
		}
	}

	if fp.Return, err = p.FunctionReturnType(fn, dir); err != nil {
		return fp, err
	}

	if fn.Output != nil {
		if fp.Output, err = p.planHandle(fn.Output, dir, feat); err != nil {
			return fp, withPath(err, fn.Name, "output")
		}
	}

	fp.Core = CoreSignature(fn, dir)
	fp.Signature = fp.Core.String()

	p.log.Debug("planned function",
		zap.String("name", fn.Name),
		zap.Stringer("direction", dir),
		zap.String("param", fp.Param),
		zap.String("return", fp.Return),
		zap.String("signature", fp.Signature))
	return fp, nil
}

func (p *Planner) planHandle(prop *schema.Property, dir schema.Direction, feat *Features) (*HandlePlan, error) {
	elem, err := p.HandleType(prop)
	if err != nil {
		return nil, err
	}
	acc, err := p.HandleAccessor(prop)
	if err != nil {
		return nil, err
	}
	name, err := p.RenderType(prop.Type, p.opts.Namespace(dir))
	if err != nil {
		return nil, err
	}

	if prop.ContentType == schema.ContentJSON {
		feat.UsesJSONEncoding = true
	}
	prop.Type.Walk(func(t *schema.Type) {
		if t.IsUntyped() {
			feat.NeedsJSONValue = true
		}
	})
	if prop.Type.Kind == schema.KindBuffer {
		feat.UsesBufferEncoding = true
	}

	return &HandlePlan{
		Type:        name,
		Element:     elem,
		Accessor:    acc,
		ContentType: prop.ContentType,
	}, nil
}
