package analyze

import "strings"

// Decompose splits a member type into prefix, base and suffix. Each part is
// trimmed and inner whitespace runs are collapsed; the order of qualifier
// tokens is kept, so "const" before and "* const*" after the base survive
// exactly as declared.
func Decompose(leading, base, trailing string) TypeDescriptor {
	return TypeDescriptor{
		Prefix: collapseSpaces(leading),
		Base:   collapseSpaces(base),
		Suffix: collapseSpaces(trailing),
	}
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
