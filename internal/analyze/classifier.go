package analyze

import (
	"fmt"
	"strings"

	"vkstruct-generator/internal/common"
	"vkstruct-generator/internal/diagnostic"
	"vkstruct-generator/internal/registry"
)

// CountSuffix marks a member as the length of the member declared after it.
const CountSuffix = "Count"

// ScanState is the look-back state of the member scan.
type ScanState int

const (
	// ScanIdle: the previous member does not affect the current one.
	ScanIdle ScanState = iota
	// ScanAfterCount: the previous member was a count, the current one is its array.
	ScanAfterCount
	// ScanAfterArray: the previous member was an array; consumed by the current member.
	ScanAfterArray
)

// Classifier assigns roles to the members of registry structures.
type Classifier struct {
	skip  map[string]struct{}
	diags *diagnostic.Diagnostics
}

// NewClassifier creates a Classifier. Members named in skip get RoleSkip.
// Diagnostics may be nil.
func NewClassifier(skip map[string]struct{}, diags *diagnostic.Diagnostics) *Classifier {
	if diags == nil {
		diags = &diagnostic.Diagnostics{}
	}

	return &Classifier{skip: skip, diags: diags}
}

// ClassifyAll classifies every structure, keeping their order.
func (c *Classifier) ClassifyAll(structs []registry.RawStruct) []StructSpec {
	out := make([]StructSpec, 0, len(structs))
	for _, rs := range structs {
		out = append(out, c.Classify(rs))
	}

	return out
}

// Classify converts a raw structure into a StructSpec.
func (c *Classifier) Classify(rs registry.RawStruct) StructSpec {
	spec := StructSpec{
		NativeName: rs.Name,
		Tag:        rs.Tag,
		Fields:     make([]FieldSpec, 0, len(rs.Members)),
		Line:       rs.Line,
	}

	state := ScanIdle

	for _, m := range rs.Members {
		field := FieldSpec{
			NativeName: m.Name,
			Type:       Decompose(m.Leading, m.Type, m.Trailing),
			Extent:     m.Extent,
			Optional:   strings.HasPrefix(m.Optional, "true"),
			Len:        m.Len,
		}

		field.Role, state = c.step(state, m.Name)

		if field.Role == RoleArray && field.Type.Suffix == "" && field.Extent == "" {
			c.diags.AddWarning(diagnostic.CodeDanglingCount,
				fmt.Sprintf("member following a count is not a pointer (%s)", field.NativeType()),
				rs.Name, m.Name)
		}

		spec.Fields = append(spec.Fields, field)
	}

	if last, ok := common.Last(spec.Fields); ok && state == ScanAfterCount {
		c.diags.AddWarning(diagnostic.CodeDanglingCount,
			"count member is the last member, nothing to measure", rs.Name, last.NativeName)
	}

	return spec
}

// step returns the role of the current member and the state for the next one.
//
// The count suffix wins over everything: a count right after another count
// is still a count and arms the member after it. Skip names win over array
// promotion.
func (c *Classifier) step(state ScanState, name string) (Role, ScanState) {
	promoted := state == ScanAfterCount

	next := ScanIdle
	if promoted {
		next = ScanAfterArray
	}

	if strings.HasSuffix(name, CountSuffix) {
		return RoleCount, ScanAfterCount
	}

	if _, ok := c.skip[name]; ok {
		return RoleSkip, next
	}

	if promoted {
		return RoleArray, next
	}

	return RolePlain, next
}
