// Package config holds the generator configuration.
//
// The configuration is a small YAML document. Every key is optional; missing
// keys fall back to the defaults that reproduce the stock Vulkan registry
// conventions:
//
//	version: "1"
//	selection:
//	  name_contains: CreateInfo   # only object-creation structures qualify
//	  exclude_apis: [vulkansc]    # members tagged with these api variants are dropped
//	naming:
//	  native_prefix: Vk           # stripped from structure names
//	  strip_suffix: CreateInfo    # stripped from structure names
//	  builder_prefix: Vulkan      # VkFooCreateInfo -> VulkanFooBuilder
//	  builder_suffix: Builder
//	skip_fields: [sType, flags, pNext]
//	collision_policy: last-wins   # or "reject"
//	header: "// generated by vkstruct-generator, do not edit"
//
// Environment variables (optionally read from a .env file) supply defaults
// for the command-line flags, see Env.
package config
