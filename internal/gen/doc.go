// Package gen renders resolved structures as C++ declarations and drives the
// whole generator run.
//
// Every structure yields two blocks, each aligned on its own widest type:
//
//	struct VkInstanceCreateInfo
//	{
//		VkStructureType          sType;
//		...
//	};
//
//	struct VulkanInstanceBuilder
//	{
//		const VkApplicationInfo & ApplicationInfo;
//		...
//	};
//
// Output is deterministic: the same registry always yields the same bytes.
package gen
