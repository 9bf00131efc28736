package plan

import (
	"errors"
	"fmt"

	"vkstruct-generator/internal/analyze"
	"vkstruct-generator/internal/config"
	"vkstruct-generator/internal/diagnostic"
)

// ErrNameCollision is returned by BuildNameTable under config.CollisionReject
// when two structures derive the same builder name or a native name repeats.
var ErrNameCollision = errors.New("builder name collision")

// NameTable maps native structure names to builder names.
// It is built once by BuildNameTable and never modified afterwards.
type NameTable struct {
	byNative map[string]string
	natives  []string // first-seen order
}

// Lookup returns the builder name of a native structure name.
func (t *NameTable) Lookup(native string) (string, bool) {
	if t == nil {
		return "", false
	}

	name, ok := t.byNative[native]

	return name, ok
}

// Len returns the number of native names in the table.
func (t *NameTable) Len() int {
	if t == nil {
		return 0
	}

	return len(t.natives)
}

// Natives returns the native names in the order they were first seen.
func (t *NameTable) Natives() []string {
	if t == nil {
		return nil
	}

	return append([]string(nil), t.natives...)
}

// BuildNameTable runs pass 1 over all structures.
//
// Under config.CollisionLastWins a repeated native name takes the later
// definition and every collision is recorded as a NAME_COLLISION warning.
// Under config.CollisionReject the first collision aborts with ErrNameCollision.
func BuildNameTable(structs []analyze.StructSpec, cfg *config.Config, diags *diagnostic.Diagnostics) (*NameTable, error) {
	if diags == nil {
		diags = &diagnostic.Diagnostics{}
	}

	t := &NameTable{byNative: make(map[string]string, len(structs))}
	bySurface := make(map[string]string, len(structs))

	for i := range structs {
		native := structs[i].NativeName
		surface := StructSurfaceName(native, cfg.Naming)

		var msg string

		if _, dup := t.byNative[native]; dup {
			msg = fmt.Sprintf("structure %s is defined more than once", native)
		} else if other, taken := bySurface[surface]; taken {
			msg = fmt.Sprintf("%s and %s both derive builder name %s", other, native, surface)
		}

		if msg != "" {
			if cfg.CollisionPolicy == config.CollisionReject {
				diags.AddError(diagnostic.CodeNameCollision, msg, native, "")
				return nil, fmt.Errorf("%w: %s", ErrNameCollision, msg)
			}

			diags.AddWarning(diagnostic.CodeNameCollision, msg+", keeping the later definition", native, "")
		}

		if _, dup := t.byNative[native]; !dup {
			t.natives = append(t.natives, native)
		}

		t.byNative[native] = surface
		bySurface[surface] = native
	}

	return t, nil
}
