package plan

import (
	"gopkg.in/yaml.v3"
)

// ExportFile is the reviewable YAML form of a resolved plan.
type ExportFile struct {
	Version string         `yaml:"version"`
	Structs []ExportStruct `yaml:"structs"`
}

// ExportStruct describes one structure and its builder.
type ExportStruct struct {
	Native  string        `yaml:"native"`
	Builder string        `yaml:"builder"`
	Tag     string        `yaml:"tag"`
	Fields  []ExportField `yaml:"fields"`
}

// ExportField describes one member. Builder-side keys are empty for members
// that are not part of the builder.
type ExportField struct {
	Native      string `yaml:"native"`
	NativeType  string `yaml:"native_type"`
	Role        string `yaml:"role"`
	Builder     string `yaml:"builder,omitempty"`
	BuilderType string `yaml:"builder_type,omitempty"`
	Kind        string `yaml:"kind,omitempty"`
	Len         string `yaml:"len,omitempty"`
}

// Export converts a resolved plan into its export form.
func Export(p *ResolvedPlan) *ExportFile {
	ef := &ExportFile{
		Version: "1",
		Structs: make([]ExportStruct, 0, len(p.Structs)),
	}

	for i := range p.Structs {
		ef.Structs = append(ef.Structs, exportStruct(&p.Structs[i]))
	}

	return ef
}

// ExportYAML serializes a resolved plan to YAML.
func ExportYAML(p *ResolvedPlan) ([]byte, error) {
	return yaml.Marshal(Export(p))
}

func exportStruct(rs *ResolvedStruct) ExportStruct {
	es := ExportStruct{
		Native:  rs.NativeName,
		Builder: rs.SurfaceName,
		Tag:     rs.Tag,
		Fields:  make([]ExportField, 0, len(rs.Fields)),
	}

	for i := range rs.Fields {
		f := &rs.Fields[i]

		ef := ExportField{
			Native:     f.NativeName + f.Extent,
			NativeType: f.NativeType(),
			Role:       f.Role.String(),
			Len:        f.Len,
		}

		if f.InBuilder() {
			ef.Builder = f.SurfaceName + f.Extent
			ef.BuilderType = f.Surface.Render()
			ef.Kind = f.Surface.Kind.String()
		}

		es.Fields = append(es.Fields, ef)
	}

	return es
}
