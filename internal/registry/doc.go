// Package registry loads structure definitions from the Vulkan API registry (vk.xml).
//
// Only discriminant-tagged object-creation structures are kept: a <type>
// element qualifies when its category is "struct", it is not an alias, its
// name contains the configured selection substring and its first <member>
// carries a "values" attribute (the sType tag).
//
// Each member is kept verbatim, split around its inner <type> element:
//
//	<member>const <type>char</type>* const* <name>ppEnabledLayerNames</name></member>
//
// yields Leading "const", Type "char", Trailing "* const*".
package registry
