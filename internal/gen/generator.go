package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"path"
	"text/template"

	"resource-mapper/internal/common"
	"resource-mapper/internal/match"
	"resource-mapper/mapping"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package. A schema file that
	// names its package overrides it.
	PackageName string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// ModulePath is the import path prefix of the mapping and resource packages.
	ModulePath string
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName:      "resources",
		OutputDir:        "./generated",
		ModulePath:       "resource-mapper",
		GenerateComments: true,
	}
}

// Generator generates Go declarations from a schema file.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "territory_availability_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

type importSpec struct {
	Alias string
	Path  string
}

type fileData struct {
	PackageName      string
	Imports          []importSpec
	GenerateComments bool
	MappingPkg       string
	ResourcePkg      string
}

// resourceData holds everything the resource template needs.
type resourceData struct {
	fileData

	Name      string
	TypeID    string
	Pairs     []mapping.Pair
	Constants []constantData
}

type constantData struct {
	Name      string
	Attribute string
	Values    []constantValue
}

type constantValue struct {
	Ident string
	Value string
}

type registryData struct {
	fileData

	Types []string
}

// Generate validates sf and returns one file per resource type plus a
// registry file, in schema order.
func (g *Generator) Generate(sf *mapping.SchemaFile) ([]GeneratedFile, error) {
	if diags := mapping.Validate(sf); diags.HasErrors() {
		return nil, fmt.Errorf("invalid schema: %w", diags.Error())
	}

	base := g.fileData(sf)
	idents := map[string]string{}

	files := make([]GeneratedFile, 0, len(sf.Resources)+1)
	names := make([]string, 0, len(sf.Resources))

	for i := range sf.Resources {
		data, err := g.buildResourceData(base, &sf.Resources[i], idents)
		if err != nil {
			return nil, err
		}

		file, err := g.render(resourceTemplate, match.SnakeCase(data.Name)+"_gen.go", data)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", data.TypeID, err)
		}

		files = append(files, *file)
		names = append(names, data.Name+"Type")
	}

	base.Imports = []importSpec{{Path: path.Join(g.config.ModulePath, "resource")}}

	file, err := g.render(registryTemplate, "registry_gen.go", &registryData{fileData: base, Types: names})
	if err != nil {
		return nil, fmt.Errorf("generating registry: %w", err)
	}

	return append(files, *file), nil
}

func (g *Generator) fileData(sf *mapping.SchemaFile) fileData {
	pkgName := g.config.PackageName
	if sf.Package != "" {
		pkgName = sf.Package
	}

	mappingPath := path.Join(g.config.ModulePath, "mapping")
	resourcePath := path.Join(g.config.ModulePath, "resource")

	return fileData{
		PackageName:      pkgName,
		Imports:          []importSpec{{Path: mappingPath}, {Path: resourcePath}},
		GenerateComments: g.config.GenerateComments,
		MappingPkg:       common.PkgAlias(mappingPath),
		ResourcePkg:      common.PkgAlias(resourcePath),
	}
}

// buildResourceData derives Go identifiers for def and records them in
// idents so clashes across the whole schema are reported.
func (g *Generator) buildResourceData(base fileData, def *mapping.ResourceDef, idents map[string]string) (*resourceData, error) {
	data := &resourceData{
		fileData: base,
		Name:     def.Name,
		TypeID:   def.Type,
		Pairs:    def.Attributes,
	}

	if data.Name == "" {
		data.Name = match.GoIdent(def.Type)
	}

	claim := func(ident, origin string) error {
		if prev, ok := idents[ident]; ok {
			return fmt.Errorf("identifier %s generated for both %s and %s", ident, prev, origin)
		}

		idents[ident] = origin

		return nil
	}

	if err := claim(data.Name+"Type", def.Type); err != nil {
		return nil, err
	}

	for _, c := range def.Constants {
		cd := constantData{Name: c.Name, Attribute: c.Attribute}

		if err := claim(c.Name, def.Type+"."+c.Attribute); err != nil {
			return nil, err
		}

		if err := claim(c.Name+"Set", def.Type+"."+c.Attribute); err != nil {
			return nil, err
		}

		for _, v := range c.Values {
			ident := c.Name + match.GoIdent(v)
			if err := claim(ident, fmt.Sprintf("%s %q", c.Name, v)); err != nil {
				return nil, err
			}

			cd.Values = append(cd.Values, constantValue{Ident: ident, Value: v})
		}

		data.Constants = append(data.Constants, cd)
	}

	return data, nil
}

func (g *Generator) render(tmpl *template.Template, filename string, data any) (*GeneratedFile, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid debugging.
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Filename: filename,
		Content:  formatted,
	}, nil
}

var resourceTemplate = template.Must(template.New("resource").Parse(`// Code generated by resource-mapper. DO NOT EDIT.

package {{.PackageName}}

import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{range .Constants}}{{$set := .}}
{{if $.GenerateComments}}// {{.Name}} is a known value of the {{$.TypeID}} {{.Attribute}} attribute.
{{end}}type {{.Name}} string

const (
{{range .Values}}	{{.Ident}} {{$set.Name}} = {{printf "%q" .Value}}
{{end}})

{{if $.GenerateComments}}// {{.Name}}Set holds every known {{.Name}}.
{{end}}var {{.Name}}Set = {{$.MappingPkg}}.MustConstantSet({{printf "%q" .Name}},
{{range .Values}}	string({{.Ident}}),
{{end}})
{{end}}
{{if .GenerateComments}}// {{.Name}}Type describes the {{.TypeID}} resource.
{{end}}var {{.Name}}Type = {{.ResourcePkg}}.MustType({{printf "%q" .TypeID}},
	{{.MappingPkg}}.MustTable({{printf "%q" .TypeID}},
{{range .Pairs}}		{{$.MappingPkg}}.P({{printf "%q" .Wire}}, {{printf "%q" .Local}}),
{{end}}	),
{{range .Constants}}	{{$.ResourcePkg}}.WithConstants({{printf "%q" .Attribute}}, {{.Name}}Set),
{{end}})
`))

var registryTemplate = template.Must(template.New("registry").Parse(`// Code generated by resource-mapper. DO NOT EDIT.

package {{.PackageName}}

import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})

{{if .GenerateComments}}// NewRegistry returns a registry holding every generated resource type.
{{end}}func NewRegistry() *{{.ResourcePkg}}.Registry {
	return {{.ResourcePkg}}.MustRegistry(
{{range .Types}}		{{.}},
{{end}}	)
}
`))
