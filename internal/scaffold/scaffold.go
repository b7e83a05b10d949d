// Package scaffold generates new extension package skeletons from templates.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/go-playground/validator/v10"
)

// DefaultModulePath is the SDK import path written into generated files.
const DefaultModulePath = "github.com/medics-dev/MedICS-Extension-Base"

// Categories are the extension categories accepted by the generator.
var Categories = []string{
	"Analysis",
	"Segmentation",
	"Visualization",
	"Processing",
	"Import/Export",
	"Workflow",
	"Utilities",
	"Research",
	"General",
}

// Options configures a generation run.
type Options struct {
	// Name is the extension display name, e.g. "Image Segmentation".
	Name string `validate:"required"`
	// Author is the extension author or organization.
	Author string `validate:"required"`
	// Category must be one of Categories.
	Category string `validate:"required,oneof=Analysis Segmentation Visualization Processing Import/Export Workflow Utilities Research General"`
	// OutputDir is the directory the extension package is created under.
	OutputDir string `validate:"required"`
	// ModulePath overrides the SDK import path in generated files.
	ModulePath string
}

// Result describes what was generated.
type Result struct {
	Dir         string
	PackageName string
	TypeName    string
	Files       []string
}

var validate = validator.New()

// PackageName derives the Go package name from a display name:
// "Image Segmentation" -> "image_segmentation". Unlike identifier
// normalization, disallowed characters are dropped rather than replaced, so
// package names stay free of filler underscores.
func PackageName(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TypeName derives the exported Go type name from a display name:
// "image segmentation" -> "ImageSegmentation".
func TypeName(name string) string {
	s := strings.ReplaceAll(name, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	var b strings.Builder
	for _, word := range strings.Fields(s) {
		cleaned := strings.Map(func(r rune) rune {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
				return r
			}
			return -1
		}, word)
		if cleaned == "" {
			continue
		}
		b.WriteString(strings.ToUpper(cleaned[:1]))
		b.WriteString(cleaned[1:])
	}
	return b.String()
}

// templateData is what the file templates render against.
type templateData struct {
	Name        string
	NameLower   string
	Author      string
	Category    string
	Package     string
	Type        string
	ModulePath  string
	ConfSection string
}

// Generate creates the extension skeleton: doc.go, the extension file, a
// test file, README.md, config.ini, and an icons directory.
func Generate(opts Options) (*Result, error) {
	if opts.ModulePath == "" {
		opts.ModulePath = DefaultModulePath
	}
	if err := validate.Struct(opts); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	pkg := PackageName(opts.Name)
	if pkg == "" {
		return nil, fmt.Errorf("name %q yields an empty package name", opts.Name)
	}
	typeName := TypeName(opts.Name)

	dir := filepath.Join(opts.OutputDir, pkg)
	if err := os.MkdirAll(filepath.Join(dir, "icons"), 0o755); err != nil {
		return nil, fmt.Errorf("create extension directory: %w", err)
	}

	data := templateData{
		Name:        opts.Name,
		NameLower:   strings.ToLower(opts.Name),
		Author:      opts.Author,
		Category:    opts.Category,
		Package:     pkg,
		Type:        typeName,
		ModulePath:  opts.ModulePath,
		ConfSection: pkg,
	}

	files := map[string]string{
		"doc.go":         docTemplate,
		pkg + ".go":      extensionTemplate,
		pkg + "_test.go": testTemplate,
		"README.md":      readmeTemplate,
		"config.ini":     configTemplate,
		"icons/.gitkeep": "",
	}

	result := &Result{Dir: dir, PackageName: pkg, TypeName: typeName}
	for name, tmpl := range files {
		path := filepath.Join(dir, name)
		if err := renderFile(path, name, tmpl, data); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, path)
	}
	return result, nil
}

func renderFile(path, name, tmpl string, data templateData) error {
	if tmpl == "" {
		return os.WriteFile(path, nil, 0o644)
	}
	t, err := template.New(name).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("parse template %s: %w", name, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := t.Execute(f, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}
