package gen

import "text/template"

// structTemplate renders one struct block from pre-aligned rows.
var structTemplate = template.Must(template.New("struct").Parse(
	`struct {{.Name}}
{
{{- range .Rows}}
{{$.Indent}}{{.Type}} {{.Name}};
{{- end}}
};`))

// headerTemplate renders the optional banner above all blocks.
var headerTemplate = template.Must(template.New("header").Parse(
	`{{.Header}}
`))

// structBlock is the template data of one struct block.
type structBlock struct {
	Name   string
	Indent string
	Rows   []row
}

// row is one member declaration; Type is already padded.
type row struct {
	Type string
	Name string
}
