package gen

import (
	"bytes"
	"fmt"
	"strings"

	"vkstruct-generator/internal/common"
	"vkstruct-generator/internal/plan"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Filename is the name reported for the generated file.
	Filename string
	// Header is written above the first block, verbatim. Empty means none.
	Header string
	// Indent prefixes every member declaration.
	Indent string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Filename: "vulkan_structs.h",
		Indent:   "\t",
	}
}

// GeneratedFile represents the generated output.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "vulkan_structs.h").
	Filename string
	// Content is the generated source text.
	Content []byte
}

// Generator renders native mirrors and builders.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// Generate renders every structure of the plan in plan order: the native
// mirror, a blank line, the builder, and a blank line before the next
// structure. A plan without structures renders to empty content.
func (g *Generator) Generate(p *plan.ResolvedPlan) (*GeneratedFile, error) {
	file := &GeneratedFile{Filename: g.config.Filename}
	if len(p.Structs) == 0 {
		return file, nil
	}

	var buf bytes.Buffer

	if g.config.Header != "" {
		if err := headerTemplate.Execute(&buf, struct{ Header string }{strings.TrimRight(g.config.Header, "\n")}); err != nil {
			return nil, fmt.Errorf("executing header template: %w", err)
		}

		buf.WriteString("\n")
	}

	for i := range p.Structs {
		rs := &p.Structs[i]

		if i > 0 {
			buf.WriteString("\n\n")
		}

		if err := g.writeBlock(&buf, g.nativeBlock(rs)); err != nil {
			return nil, fmt.Errorf("generating %s: %w", rs.NativeName, err)
		}

		buf.WriteString("\n\n")

		if err := g.writeBlock(&buf, g.builderBlock(rs)); err != nil {
			return nil, fmt.Errorf("generating %s: %w", rs.SurfaceName, err)
		}
	}

	buf.WriteString("\n")
	file.Content = buf.Bytes()

	return file, nil
}

// NativeMirror renders the native mirror of a single structure.
func (g *Generator) NativeMirror(rs *plan.ResolvedStruct) (string, error) {
	var buf bytes.Buffer
	err := g.writeBlock(&buf, g.nativeBlock(rs))

	return buf.String(), err
}

// Builder renders the builder of a single structure.
func (g *Generator) Builder(rs *plan.ResolvedStruct) (string, error) {
	var buf bytes.Buffer
	err := g.writeBlock(&buf, g.builderBlock(rs))

	return buf.String(), err
}

func (g *Generator) writeBlock(buf *bytes.Buffer, block structBlock) error {
	if err := structTemplate.Execute(buf, block); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}

	return nil
}

// nativeBlock lists every member, aligned on the widest native type.
func (g *Generator) nativeBlock(rs *plan.ResolvedStruct) structBlock {
	types := make([]string, len(rs.Fields))
	names := make([]string, len(rs.Fields))

	for i := range rs.Fields {
		f := &rs.Fields[i]
		types[i] = f.NativeType()
		names[i] = f.NativeName + f.Extent
	}

	return g.alignedBlock(rs.NativeName, types, names)
}

// builderBlock lists builder members only; skipped members never affect the width.
func (g *Generator) builderBlock(rs *plan.ResolvedStruct) structBlock {
	fields := rs.BuilderFields()
	types := make([]string, len(fields))
	names := make([]string, len(fields))

	for i, f := range fields {
		types[i] = f.Surface.Render()
		names[i] = f.SurfaceName + f.Extent
	}

	return g.alignedBlock(rs.SurfaceName, types, names)
}

func (g *Generator) alignedBlock(name string, types, names []string) structBlock {
	width := common.MaxWidth(types...)

	block := structBlock{Name: name, Indent: g.config.Indent, Rows: make([]row, len(types))}
	for i := range types {
		block.Rows[i] = row{Type: common.PadRight(types[i], width), Name: names[i]}
	}

	return block
}
