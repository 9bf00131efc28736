package gen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vkstruct-generator/internal/config"
	"vkstruct-generator/internal/diagnostic"
	"vkstruct-generator/internal/registry"
)

var subsetPath = filepath.Join("..", "registry", "testdata", "vk_subset.xml")

func newTestPipeline(cfg *config.Config) *Pipeline {
	return NewPipeline(cfg, zap.NewNop().Sugar())
}

func TestPipeline_Golden(t *testing.T) {
	res, err := newTestPipeline(nil).RunFile(subsetPath)
	require.NoError(t, err)

	golden, err := os.ReadFile(filepath.Join("testdata", "vk_subset.golden"))
	require.NoError(t, err)

	if !assert.Equal(t, string(golden), string(res.File.Content)) {
		t.Log(spew.Sdump(res.Plan.Structs[0]))
	}

	assert.Equal(t, 10, res.Scanned)
}

func TestPipeline_Deterministic(t *testing.T) {
	first, err := newTestPipeline(nil).RunFile(subsetPath)
	require.NoError(t, err)

	second, err := newTestPipeline(nil).RunFile(subsetPath)
	require.NoError(t, err)

	assert.Equal(t, first.File.Content, second.File.Content)
}

func TestPipeline_NativeMirrorKeepsEveryMember(t *testing.T) {
	cfg := config.Default()

	reg, err := registry.LoadFile(subsetPath, cfg.Selection)
	require.NoError(t, err)

	res, err := newTestPipeline(cfg).RunFile(subsetPath)
	require.NoError(t, err)
	require.Len(t, res.Plan.Structs, len(reg.Structs))

	gen := NewGenerator(DefaultGeneratorConfig())

	for i := range res.Plan.Structs {
		rs := &res.Plan.Structs[i]

		native, err := gen.NativeMirror(rs)
		require.NoError(t, err)
		assert.Equal(t, len(reg.Structs[i].Members), strings.Count(native, ";")-1, rs.NativeName)

		builder, err := gen.Builder(rs)
		require.NoError(t, err)
		assert.Equal(t, len(rs.BuilderFields()), strings.Count(builder, ";")-1, rs.SurfaceName)
		assert.NotContains(t, builder, " Next;")

		for _, f := range rs.Fields {
			if f.Role.InBuilder() {
				assert.Contains(t, builder, " "+f.SurfaceName+f.Extent+";")
			}
		}
	}
}

func TestPipeline_Diagnostics(t *testing.T) {
	res, err := newTestPipeline(nil).RunFile(subsetPath)
	require.NoError(t, err)

	// minImageCount is followed by a plain enum member.
	dangling := res.Diagnostics.ByCode(diagnostic.CodeDanglingCount)
	require.Len(t, dangling, 1)
	assert.Equal(t, "VkSwapchainCreateInfoKHR", dangling[0].Struct)
	assert.Equal(t, "imageSharingMode", dangling[0].Field)
	assert.True(t, res.Diagnostics.IsValid())
}

func TestPipeline_EmptyRegistry(t *testing.T) {
	res, err := newTestPipeline(nil).Run(strings.NewReader(`<registry><types/></registry>`))
	require.NoError(t, err)

	assert.Empty(t, res.File.Content)
	assert.Empty(t, res.Plan.Structs)
	assert.Len(t, res.Diagnostics.ByCode(diagnostic.CodeNoQualifyingSet), 1)
}

func TestPipeline_ParseErrorHasNoOutput(t *testing.T) {
	res, err := newTestPipeline(nil).Run(strings.NewReader(`<registry><types>
<type category="struct" name="VkFooCreateInfo">
  <member values="VK_STRUCTURE_TYPE_FOO_CREATE_INFO"><type>VkStructureType</type> <name>sType</name></member>
  <member>uint32_t <name>broken</name></member>
</type>
</types></registry>`))

	require.ErrorIs(t, err, registry.ErrSchemaParse)
	assert.Nil(t, res)
}

func TestPipeline_RejectCollision(t *testing.T) {
	cfg := config.Default()
	cfg.CollisionPolicy = config.CollisionReject

	doc := `<registry><types>
<type category="struct" name="VkFooCreateInfoKHR">
  <member values="VK_STRUCTURE_TYPE_FOO_CREATE_INFO_KHR"><type>VkStructureType</type> <name>sType</name></member>
</type>
<type category="struct" name="VkFooCreateInfoEXT">
  <member values="VK_STRUCTURE_TYPE_FOO_CREATE_INFO_EXT"><type>VkStructureType</type> <name>sType</name></member>
</type>
</types></registry>`

	res, err := newTestPipeline(cfg).Run(strings.NewReader(doc))
	require.Error(t, err)
	assert.Nil(t, res)

	cfg.CollisionPolicy = config.CollisionLastWins
	res, err = newTestPipeline(cfg).Run(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Len(t, res.Diagnostics.ByCode(diagnostic.CodeNameCollision), 1)
}

func TestPipeline_Header(t *testing.T) {
	cfg := config.Default()
	cfg.Header = "// generated by vkstruct-generator, do not edit"

	res, err := newTestPipeline(cfg).RunFile(subsetPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(res.File.Content), cfg.Header+"\n\nstruct VkInstanceCreateInfo\n"))
}

func TestPipeline_MissingFile(t *testing.T) {
	_, err := NewPipeline(nil, nil).RunFile(filepath.Join(t.TempDir(), "vk.xml"))
	require.Error(t, err)
}
