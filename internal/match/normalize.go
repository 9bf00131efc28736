package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent normalizes an identifier for fuzzy matching.
// The normalization pipeline:
// 1. Tokenize CamelCase and separators.
// 2. Case-fold to lower.
// 3. Join without separators.
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// NormalizeTypeName normalizes a registry type name, dropping the namespace
// prefix and a trailing vendor tag before tokenizing.
// Example: ("VkSwapchainCreateInfoKHR", "Vk") -> "swapchaincreateinfo".
func NormalizeTypeName(s, namespacePrefix string) string {
	s = strings.TrimPrefix(s, namespacePrefix)
	s = TrimVendorSuffix(s)

	return NormalizeIdent(s)
}

// TrimVendorSuffix removes a trailing run of upper-case letters, the way
// registry names carry vendor tags (KHR, EXT, NV).
// A name made only of upper-case letters is returned empty.
func TrimVendorSuffix(s string) string {
	return strings.TrimRightFunc(s, unicode.IsUpper)
}

// TokenizeIdent splits an identifier into normalized lowercase tokens.
// Examples:
//   - "VkImageViewCreateInfo" -> ["vk", "image", "view", "create", "info"]
//   - "pQueueFamilyIndices" -> ["p", "queue", "family", "indices"]
//   - "VK_UUID_SIZE" -> ["vk", "uuid", "size"]
func TokenizeIdent(s string) []string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

// tokenizeCamelCase splits a CamelCase or camelCase string into tokens.
// Examples:
//   - "ImageID" -> ["Image", "ID"]
//   - "enabledLayerCount" -> ["enabled", "Layer", "Count"]
//   - "UUIDSize" -> ["UUID", "Size"]
func tokenizeCamelCase(s string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]

	if isSeparator(prev) || !unicode.IsUpper(r) {
		return false
	}

	// "imageView" -> split before 'V'; digits close a word too ("Vulkan11Features")
	if !unicode.IsUpper(prev) {
		return true
	}

	// End of acronym: "UUIDSize" -> "UUID" + "Size"
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
