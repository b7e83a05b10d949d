package scaffold

const docTemplate = `// Package {{.Package}} provides the {{.Name}} extension for the MedICS
// platform.
package {{.Package}}
`

const extensionTemplate = `package {{.Package}}

import (
	"{{.ModulePath}}/pkg/extension"
	"{{.ModulePath}}/pkg/host"
	"{{.ModulePath}}/pkg/ui"
)

// {{.Type}} provides {{.NameLower}} functionality for the MedICS platform.
type {{.Type}} struct {
	*extension.BaseExtension
}

// New creates the {{.Name}} extension.
func New(parent ui.Widget) *{{.Type}} {
	return &{{.Type}}{
		BaseExtension: extension.NewBaseExtension(parent, "{{.Name}}", "{{.Author}}"),
	}
}

func (e *{{.Type}}) Version() string {
	return "1.0.0"
}

func (e *{{.Type}}) Description() string {
	return "Provides {{.NameLower}} functionality for medical image analysis"
}

func (e *{{.Type}}) Category() string {
	return "{{.Category}}"
}

// OnInitialize runs after the host context is bound.
func (e *{{.Type}}) OnInitialize(ctx host.Context) error {
	e.SetConfigValue("{{.ConfSection}}", "threshold", 0.5)
	e.SetConfigValue("{{.ConfSection}}", "method", "default")
	e.LogMessage("{{.Name}} initialized")
	return nil
}

// CreateWidget builds the extension's visual surface. Replace the stub with
// your toolkit widget.
func (e *{{.Type}}) CreateWidget(parent ui.Widget) (ui.Widget, error) {
	return &ui.NopWidget{}, nil
}

// API exposes the extension's programmatic operations to other extensions.
func (e *{{.Type}}) API() extension.Descriptor {
	return extension.Descriptor{
		ExtensionName: "{{.Name}}",
		API: extension.DotMap{
			"process_data": e.ProcessData,
		},
		Docs:    "process_data(): run {{.NameLower}} processing and return results",
		Version: "1.0.0",
	}
}

// ProcessData runs the extension's main analysis.
func (e *{{.Type}}) ProcessData() (map[string]any, error) {
	threshold := e.GetConfigValue("{{.ConfSection}}", "threshold", 0.5)
	method := e.GetConfigValue("{{.ConfSection}}", "method", "default")

	result := map[string]any{
		"status":    "completed",
		"threshold": threshold,
		"method":    method,
	}

	e.SendEvent("{{.ConfSection}}_completed", map[string]any{
		"extension": e.Name(),
		"result":    result,
	})
	return result, nil
}
`

const testTemplate = `package {{.Package}}

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"{{.ModulePath}}/pkg/extension"
	"{{.ModulePath}}/pkg/host"
)

func TestIdentity(t *testing.T) {
	ext := New(nil)
	assert.Equal(t, "{{.Name}}", ext.Name())
	assert.Equal(t, "{{.Author}}", ext.Author())
	assert.NotEmpty(t, extension.IdentityOf(ext).ID())
}

func TestInitializeAndProcess(t *testing.T) {
	ext := New(nil)
	ctx := host.NewRegistry(nil)
	ctx.SetConfig(host.NewMemoryConfig())

	require.True(t, extension.Initialize(ext, ctx))

	result, err := ext.ProcessData()
	require.NoError(t, err)
	assert.Equal(t, "completed", result["status"])
}
`

const readmeTemplate = `# {{.Name}}

A MedICS extension for {{.NameLower}} functionality.

## Description

{{.Name}} provides {{.NameLower}} capabilities for medical image analysis
within the MedICS platform.

## Installation

1. Build this package into your MedICS extensions module
2. Register the extension with the host's extension manager
3. Restart MedICS; the extension is discovered and loaded automatically

## Configuration

The extension reads the following keys from the ` + "`{{.ConfSection}}`" + ` section:

- ` + "`threshold`" + `: processing threshold (default: 0.5)
- ` + "`method`" + `: processing method (default: "default")

## API

Other extensions can discover and call the public API:

- ` + "`process_data()`" + `: run {{.NameLower}} processing and return results

## Author

{{.Author}}

## Version

1.0.0
`

const configTemplate = `; Configuration for the {{.Name}} extension

[{{.ConfSection}}]
; Processing threshold (0.0 - 1.0)
threshold = 0.5

; Processing method
method = default

; Enable debug mode
debug = false

; Output format
output_format = json
`
