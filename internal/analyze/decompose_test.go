package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		leading, base, trailing string
		expected                TypeDescriptor
		native                  string
	}{
		{"", "uint32_t", "", TypeDescriptor{Base: "uint32_t"}, "uint32_t"},
		{"const", "void", "*", TypeDescriptor{Prefix: "const", Base: "void", Suffix: "*"}, "const void *"},
		{" const ", "char", "*  const*", TypeDescriptor{Prefix: "const", Base: "char", Suffix: "* const*"}, "const char * const*"},
		{"struct", "wl_display", "*", TypeDescriptor{Prefix: "struct", Base: "wl_display", Suffix: "*"}, "struct wl_display *"},
		{"", "void", "*", TypeDescriptor{Base: "void", Suffix: "*"}, "void *"},
	}

	for _, tt := range tests {
		t.Run(tt.native, func(t *testing.T) {
			d := Decompose(tt.leading, tt.base, tt.trailing)
			assert.Equal(t, tt.expected, d)
			assert.Equal(t, tt.native, d.String())
		})
	}
}

func TestTypeDescriptor_Predicates(t *testing.T) {
	assert.True(t, TypeDescriptor{Base: "VkFoo", Suffix: "*"}.IsPointer())
	assert.False(t, TypeDescriptor{Base: "char", Suffix: "* const*"}.IsPointer())
	assert.True(t, TypeDescriptor{Base: "char", Suffix: "* const*"}.IsStringArray())
	assert.False(t, TypeDescriptor{Base: "uint32_t"}.IsStringArray())
}
