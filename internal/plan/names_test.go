package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vkstruct-generator/internal/config"
)

func TestStructSurfaceName(t *testing.T) {
	naming := config.Default().Naming

	tests := []struct {
		native   string
		expected string
	}{
		{"VkInstanceCreateInfo", "VulkanInstanceBuilder"},
		{"VkSwapchainCreateInfoKHR", "VulkanSwapchainBuilder"},
		{"VkDebugUtilsMessengerCreateInfoEXT", "VulkanDebugUtilsMessengerBuilder"},
		{"VkPipelineShaderStageCreateInfo", "VulkanPipelineShaderStageBuilder"},
		{"VkRenderPassCreateInfo2", "VulkanRenderPassCreateInfo2Builder"},
		{"VkImportMemoryFdInfoKHR", "VulkanImportMemoryFdInfoBuilder"},
	}

	for _, tt := range tests {
		t.Run(tt.native, func(t *testing.T) {
			assert.Equal(t, tt.expected, StructSurfaceName(tt.native, naming))
		})
	}
}

func TestStructSurfaceName_CustomNaming(t *testing.T) {
	naming := config.Default().Naming
	naming.BuilderPrefix = ""

	assert.Equal(t, "AttachmentBuilder", StructSurfaceName("VkAttachmentCreateInfo", naming))

	naming.BuilderSuffix = "Desc"
	naming.NativePrefix = "Xr"
	assert.Equal(t, "SessionDesc", StructSurfaceName("XrSessionCreateInfo", naming))
}

func TestFieldSurfaceName(t *testing.T) {
	tests := []struct {
		native   string
		expected string
	}{
		{"pApplicationInfo", "ApplicationInfo"},
		{"ppEnabledLayerNames", "EnabledLayerNames"},
		{"pNext", "Next"},
		{"presentMode", "PresentMode"},
		{"pfnCallback", "PfnCallback"},
		{"ppfoo", "Ppfoo"},
		{"p", "P"},
		{"pp", "Pp"},
		{"queueFamilyIndex", "QueueFamilyIndex"},
		{"module", "Module"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.native, func(t *testing.T) {
			assert.Equal(t, tt.expected, FieldSurfaceName(tt.native))
		})
	}
}
