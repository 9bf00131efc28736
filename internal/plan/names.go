package plan

import (
	"strings"
	"unicode"

	"vkstruct-generator/internal/config"
	"vkstruct-generator/internal/match"
)

// StructSurfaceName derives the builder name of a structure.
// With the default naming, VkSwapchainCreateInfoKHR -> VulkanSwapchainBuilder.
func StructSurfaceName(native string, n config.Naming) string {
	name := match.TrimVendorSuffix(native)
	name = strings.TrimPrefix(name, n.NativePrefix)
	name = strings.TrimSuffix(name, n.StripSuffix)

	return n.BuilderPrefix + name + n.BuilderSuffix
}

// FieldSurfaceName derives the builder member name from a native member name.
//
// A "pp" or "p" prefix is dropped only when an upper-case letter follows it,
// so pNext -> Next and ppEnabledLayerNames -> EnabledLayerNames, while
// presentMode keeps its "p". The first remaining letter is upper-cased.
func FieldSurfaceName(native string) string {
	name := native

	switch {
	case hasPointerPrefix(name, "pp"):
		name = name[2:]
	case hasPointerPrefix(name, "p"):
		name = name[1:]
	}

	return capitalize(name)
}

func hasPointerPrefix(name, prefix string) bool {
	if !strings.HasPrefix(name, prefix) || len(name) == len(prefix) {
		return false
	}

	return unicode.IsUpper(rune(name[len(prefix)]))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}
