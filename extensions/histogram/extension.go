// Package histogram is a complete example extension: it computes intensity
// histograms and shows how to wire a widget, configuration, eventing, and a
// public API through the SDK.
package histogram

import (
	"fmt"
	"sort"

	"github.com/medics-dev/MedICS-Extension-Base/pkg/extension"
	"github.com/medics-dev/MedICS-Extension-Base/pkg/host"
	"github.com/medics-dev/MedICS-Extension-Base/pkg/ui"
)

// Extension computes intensity histograms over image data supplied by the
// host workspace.
type Extension struct {
	*extension.BaseExtension

	results []Result
}

// Result is one histogram computation.
type Result struct {
	Bins   int
	Counts []int
}

// New creates the histogram extension.
func New(parent ui.Widget) *Extension {
	return &Extension{
		BaseExtension: extension.NewBaseExtension(parent, "Histogram", "MedICS Team"),
	}
}

func (e *Extension) Version() string { return "1.2.0" }

func (e *Extension) Description() string {
	return "Computes intensity histograms for medical image analysis"
}

func (e *Extension) Category() string { return "Analysis" }

// OnInitialize seeds the default configuration.
func (e *Extension) OnInitialize(ctx host.Context) error {
	e.SetConfigValue("histogram", "bins", 64)
	e.LogMessage("Histogram extension initialized")
	return nil
}

// CreateWidget builds the histogram panel.
func (e *Extension) CreateWidget(parent ui.Widget) (ui.Widget, error) {
	return &Widget{ext: e}, nil
}

// API exposes histogram computation to other extensions.
func (e *Extension) API() extension.Descriptor {
	return extension.Descriptor{
		ExtensionName: "Histogram",
		API: extension.DotMap{
			"compute":     e.Compute,
			"get_results": e.Results,
			"clear":       e.Clear,
		},
		Docs: `Histogram Extension API:
- compute(values): compute an intensity histogram over the given values
- get_results(): list previous computations
- clear(): drop stored results`,
		Version: "1.2.0",
	}
}

// Compute builds a histogram over values using the configured bin count.
func (e *Extension) Compute(values []float64) (Result, error) {
	if len(values) == 0 {
		return Result{}, fmt.Errorf("no values to compute histogram over")
	}

	bins := 64
	if v, ok := e.GetConfigValue("histogram", "bins", 64).(int); ok && v > 0 {
		bins = v
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	lo, hi := sorted[0], sorted[len(sorted)-1]
	width := (hi - lo) / float64(bins)
	if width == 0 {
		width = 1
	}

	counts := make([]int, bins)
	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}

	result := Result{Bins: bins, Counts: counts}
	e.results = append(e.results, result)

	e.SendEvent("histogram_completed", map[string]any{
		"extension": e.Name(),
		"bins":      bins,
		"samples":   len(values),
	})
	return result, nil
}

// Results returns previous computations.
func (e *Extension) Results() []Result { return e.results }

// Clear drops stored results.
func (e *Extension) Clear() {
	e.results = nil
	e.LogMessage("Results cleared")
}

// Widget is the histogram panel surface. It holds its context per the
// widget contract and releases state on close.
type Widget struct {
	ext *Extension
	ctx host.Context

	visible bool
	closed  bool
}

func (w *Widget) Show()     { w.visible = true }
func (w *Widget) Raise()    {}
func (w *Widget) Activate() {}

// SetContext receives the app context right after creation.
func (w *Widget) SetContext(ctx host.Context) { w.ctx = ctx }

// Close releases the panel.
func (w *Widget) Close() error {
	w.visible = false
	w.closed = true
	return nil
}
