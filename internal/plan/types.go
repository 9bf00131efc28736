package plan

import (
	"vkstruct-generator/internal/analyze"
	"vkstruct-generator/internal/common"
	"vkstruct-generator/internal/diagnostic"
)

// SurfaceKind is the closed set of shapes a builder member can take.
type SurfaceKind int

const (
	// SurfacePlain is a value copied as declared, e.g. "uint32_t" or "const char *".
	SurfacePlain SurfaceKind = iota
	// SurfaceReference is a non-owning reference replacing a single pointer.
	SurfaceReference
	// SurfaceSequence is an owned dynamic sequence replacing a count + pointer pair.
	SurfaceSequence
	// SurfaceStringSequence is an owned dynamic sequence of C strings.
	SurfaceStringSequence
)

// String returns a human-readable representation of the SurfaceKind.
func (k SurfaceKind) String() string {
	switch k {
	case SurfacePlain:
		return "plain"
	case SurfaceReference:
		return "reference"
	case SurfaceSequence:
		return "sequence"
	case SurfaceStringSequence:
		return "string-sequence"
	default:
		return common.UnknownStr
	}
}

// SurfaceType is the resolved type of a builder member.
type SurfaceType struct {
	Kind SurfaceKind
	// Elem is the referenced or element type; for SurfacePlain the whole type.
	// Qualifiers are included where they survive ("const VulkanFooBuilder").
	Elem string
}

// Render returns the C++ spelling of the surface type.
func (t SurfaceType) Render() string {
	switch t.Kind {
	case SurfaceReference:
		return t.Elem + " &"
	case SurfaceSequence, SurfaceStringSequence:
		return "std::vector<" + t.Elem + ">"
	default:
		return t.Elem
	}
}

// ResolvedField is a member with its builder name and type.
type ResolvedField struct {
	analyze.FieldSpec
	// SurfaceName is empty when the member is not part of the builder.
	SurfaceName string
	// Surface is nil when the member is not part of the builder.
	Surface *SurfaceType
	// Resolved is true when the base type named a generated structure.
	Resolved bool
}

// InBuilder reports whether the member is part of the builder.
func (f *ResolvedField) InBuilder() bool {
	return f.SurfaceName != ""
}

// ResolvedStruct is a structure ready for emission.
type ResolvedStruct struct {
	NativeName  string
	SurfaceName string
	Tag         string
	Fields      []ResolvedField
	Line        int
}

// BuilderFields returns the members that are part of the builder, in declaration order.
func (s *ResolvedStruct) BuilderFields() []*ResolvedField {
	var out []*ResolvedField

	for i := range s.Fields {
		if s.Fields[i].InBuilder() {
			out = append(out, &s.Fields[i])
		}
	}

	return out
}

// ResolvedPlan is the output of resolution, consumed by code generation.
type ResolvedPlan struct {
	// Structs in registry document order.
	Structs []ResolvedStruct
	// Table is the pass 1 name table the plan was resolved against.
	Table *NameTable
	// Diagnostics contains all warnings and errors from resolution.
	Diagnostics diagnostic.Diagnostics
}
