package analyze

import (
	"vkstruct-generator/internal/common"
)

//go:generate go tool stringer -type=Role -trimprefix=Role -output=role_string.go

// Role is the part a member plays in the builder form of its structure.
type Role int

const (
	RolePlain Role = iota // copied to the builder as is
	RoleCount             // length of the array that follows; absorbed into it
	RoleArray             // pointer measured by the preceding count member
	RoleSkip              // bookkeeping member, never part of the builder
)

// InBuilder reports whether members with this role appear in the builder.
func (r Role) InBuilder() bool {
	return r == RolePlain || r == RoleArray
}

// TypeDescriptor is a C type split around its base type name.
type TypeDescriptor struct {
	Prefix string // e.g. "const"
	Base   string // e.g. "VkApplicationInfo"
	Suffix string // e.g. "*", "* const*"
}

// String returns the C spelling of the type, e.g. "const char * const*".
func (d TypeDescriptor) String() string {
	return common.JoinNonEmpty(d.Prefix, d.Base, d.Suffix)
}

// IsPointer reports whether the suffix is exactly one pointer level.
func (d TypeDescriptor) IsPointer() bool {
	return d.Suffix == "*"
}

// IsStringArray reports whether the suffix denotes an array of string pointers.
func (d TypeDescriptor) IsStringArray() bool {
	return d.Suffix == "* const*"
}

// FieldSpec is a classified structure member.
type FieldSpec struct {
	NativeName string
	Type       TypeDescriptor
	Extent     string // fixed array extent, e.g. "[4]"; empty for scalars
	Role       Role
	Optional   bool
	Len        string // registry "len" attribute, informational
}

// NativeType returns the C type of the member as declared.
func (f *FieldSpec) NativeType() string {
	return f.Type.String()
}

// StructSpec is a classified qualifying structure.
type StructSpec struct {
	NativeName string
	Tag        string // sType discriminant value
	Fields     []FieldSpec
	Line       int
}

// FieldsWithRole returns the fields carrying the given role, in declaration order.
func (s *StructSpec) FieldsWithRole(role Role) []*FieldSpec {
	var out []*FieldSpec

	for i := range s.Fields {
		if s.Fields[i].Role == role {
			out = append(out, &s.Fields[i])
		}
	}

	return out
}
