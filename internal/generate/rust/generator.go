package rustgen

import (
	"bytes"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/cockroachdb/errors"

	"github.com/jptrs93/proxygen/internal/generate"
	"github.com/jptrs93/proxygen/internal/generate/templates"
	"github.com/jptrs93/proxygen/internal/ir"
)

const (
	DefaultSuffix = "_proxy.rs"
	stdinStem     = "stdin"
)

type Generator struct{}

func (g Generator) Name() string {
	return "rust"
}

func (g Generator) Generate(files []ir.File, options generate.Options) ([]generate.OutputFile, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	if options.OutDir == "" {
		var decls []ir.Declaration
		for _, file := range files {
			decls = append(decls, file.Declarations...)
		}
		var buf bytes.Buffer
		if err := tmpl.ExecuteTemplate(&buf, "module", buildTraits(decls)); err != nil {
			return nil, errors.Wrap(err, "render module")
		}
		return []generate.OutputFile{{Content: buf.Bytes()}}, nil
	}

	suffix := options.Suffix
	if suffix == "" {
		suffix = DefaultSuffix
	}
	var outputs []generate.OutputFile
	seen := make(map[string]string)
	for _, file := range files {
		if len(file.Declarations) == 0 {
			continue
		}
		outPath := filepath.Join(options.OutDir, stem(file.Path)+suffix)
		if prev, ok := seen[outPath]; ok {
			return nil, errors.WithHintf(
				errors.Newf("%s and %s both generate %s", prev, file.Path, outPath),
				"rename one of the inputs or generate them into separate directories",
			)
		}
		seen[outPath] = file.Path

		var buf bytes.Buffer
		source := file.Path
		if source == "" {
			source = stdinStem
		}
		if err := tmpl.ExecuteTemplate(&buf, "banner", bannerData{Source: source}); err != nil {
			return nil, errors.Wrapf(err, "render banner for %s", source)
		}
		if err := tmpl.ExecuteTemplate(&buf, "module", buildTraits(file.Declarations)); err != nil {
			return nil, errors.Wrapf(err, "render module for %s", source)
		}
		outputs = append(outputs, generate.OutputFile{
			Path:    outPath,
			Content: buf.Bytes(),
		})
	}
	return outputs, nil
}

// Render emits the auto_impl module holding one proxy trait per declaration.
func Render(decls []ir.Declaration) (string, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "module", buildTraits(decls)); err != nil {
		return "", errors.Wrap(err, "render module")
	}
	return buf.String(), nil
}

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("proxy").
		Option("missingkey=error").
		Funcs(sprig.TxtFuncMap()).
		ParseFS(templates.FS, "proxy_rs.tmpl")
	if err != nil {
		return nil, errors.Wrap(err, "parse templates")
	}
	return tmpl, nil
}

type bannerData struct {
	Source string
}

type rustTrait struct {
	Name      string
	TraitName string
	Fields    []rustField
}

type rustField struct {
	Name    string
	Type    string
	Getter  string
	Setter  string
	ByValue bool
}

func buildTraits(decls []ir.Declaration) []rustTrait {
	traits := make([]rustTrait, 0, len(decls))
	for _, decl := range decls {
		traits = append(traits, buildTrait(decl))
	}
	return traits
}

func buildTrait(decl ir.Declaration) rustTrait {
	out := rustTrait{
		Name:      decl.Name,
		TraitName: ir.TraitName(decl),
	}
	for _, field := range decl.Fields {
		out.Fields = append(out.Fields, rustField{
			Name:    field.Name,
			Type:    field.Type,
			Getter:  ir.GetterName(field),
			Setter:  ir.SetterName(field),
			ByValue: field.Kind() == ir.KindValue,
		})
	}
	return out
}

func stem(path string) string {
	if path == "" {
		return stdinStem
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
