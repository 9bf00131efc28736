package plan

import (
	"fmt"
	"strings"

	"vkstruct-generator/internal/analyze"
	"vkstruct-generator/internal/common"
	"vkstruct-generator/internal/config"
	"vkstruct-generator/internal/diagnostic"
	"vkstruct-generator/internal/match"
)

// charType is the base type whose pointers stay pointers (C strings).
const charType = "char"

// Resolver performs pass 2 against a finished NameTable.
type Resolver struct {
	table *NameTable
	cfg   *config.Config
	diags diagnostic.Diagnostics
}

// NewResolver creates a Resolver. The table must be complete.
func NewResolver(table *NameTable, cfg *config.Config) *Resolver {
	return &Resolver{table: table, cfg: cfg}
}

// Run executes both passes and returns the plan. Diagnostics from pass 1 are
// carried into the plan; under config.CollisionReject a collision is
// returned as an error together with the diagnostics collected so far.
func Run(structs []analyze.StructSpec, cfg *config.Config) (*ResolvedPlan, error) {
	var diags diagnostic.Diagnostics

	table, err := BuildNameTable(structs, cfg, &diags)
	if err != nil {
		return &ResolvedPlan{Diagnostics: diags}, err
	}

	p := NewResolver(table, cfg).Resolve(structs)
	diags.Merge(p.Diagnostics)
	p.Diagnostics = diags

	return p, nil
}

// Resolve resolves every structure, keeping their order.
func (r *Resolver) Resolve(structs []analyze.StructSpec) *ResolvedPlan {
	r.diags = diagnostic.Diagnostics{}

	p := &ResolvedPlan{
		Structs: make([]ResolvedStruct, 0, len(structs)),
		Table:   r.table,
	}

	for i := range structs {
		p.Structs = append(p.Structs, r.resolveStruct(&structs[i]))
	}

	p.Diagnostics = r.diags

	return p
}

func (r *Resolver) resolveStruct(spec *analyze.StructSpec) ResolvedStruct {
	surface, ok := r.table.Lookup(spec.NativeName)
	if !ok {
		surface = StructSurfaceName(spec.NativeName, r.cfg.Naming)
	}

	rs := ResolvedStruct{
		NativeName:  spec.NativeName,
		SurfaceName: surface,
		Tag:         spec.Tag,
		Fields:      make([]ResolvedField, 0, len(spec.Fields)),
		Line:        spec.Line,
	}

	for _, f := range spec.Fields {
		rs.Fields = append(rs.Fields, r.resolveField(spec.NativeName, f))
	}

	if len(rs.BuilderFields()) == 0 {
		r.diags.AddInfo(diagnostic.CodeEmptyBuilder, "no member is part of the builder", spec.NativeName, "")
	}

	return rs
}

func (r *Resolver) resolveField(structName string, f analyze.FieldSpec) ResolvedField {
	rf := ResolvedField{FieldSpec: f}
	if !f.Role.InBuilder() {
		return rf
	}

	base, resolved := r.table.Lookup(f.Type.Base)
	if !resolved {
		base = f.Type.Base
		r.checkUnresolved(structName, f)
	}

	rf.SurfaceName = FieldSurfaceName(f.NativeName)
	rf.Resolved = resolved
	rf.Surface = surfaceType(f, base)

	return rf
}

// surfaceType picks the builder shape of a member whose base type resolved to base.
func surfaceType(f analyze.FieldSpec, base string) *SurfaceType {
	switch {
	case f.Role == analyze.RoleArray && f.Type.IsStringArray():
		return &SurfaceType{Kind: SurfaceStringSequence, Elem: "const char *"}
	case f.Role == analyze.RoleArray:
		return &SurfaceType{Kind: SurfaceSequence, Elem: base}
	case f.Type.IsPointer() && f.Type.Base != charType:
		return &SurfaceType{Kind: SurfaceReference, Elem: common.JoinNonEmpty(f.Type.Prefix, base)}
	default:
		return &SurfaceType{Kind: SurfacePlain, Elem: common.JoinNonEmpty(f.Type.Prefix, base, f.Type.Suffix)}
	}
}

// checkUnresolved reports base types that look like qualifying structures but
// are not in the table. Scalars, handles and enums stay silent.
func (r *Resolver) checkUnresolved(structName string, f analyze.FieldSpec) {
	base := f.Type.Base
	if !strings.HasPrefix(base, r.cfg.Naming.NativePrefix) || !strings.Contains(base, r.cfg.Selection.NameContains) {
		return
	}

	prefix := r.cfg.Naming.NativePrefix
	suggestions := match.Suggest(base, r.table.Natives(),
		func(s string) string { return match.NormalizeTypeName(s, prefix) },
		match.DefaultMaxSuggestions, match.DefaultMinScore)

	r.diags.Add(diagnostic.Diagnostic{
		Severity:    diagnostic.DiagnosticInfo,
		Code:        diagnostic.CodeUnresolvedType,
		Message:     fmt.Sprintf("%s is not a generated structure, kept as is", base),
		Struct:      structName,
		Field:       f.NativeName,
		Suggestions: suggestions,
	})
}
