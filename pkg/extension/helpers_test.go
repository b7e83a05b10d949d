package extension

import (
	"os"
	"testing"

	"github.com/medics-dev/MedICS-Extension-Base/pkg/host"
	"github.com/medics-dev/MedICS-Extension-Base/pkg/ui"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte{0}, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// testExt is a minimal widget-based extension used across the tests.
type testExt struct {
	*BaseExtension

	factoryCalls int
	factory      func(parent ui.Widget) (ui.Widget, error)
	lastParent   ui.Widget
}

func newTestExt(name, author string) *testExt {
	return &testExt{BaseExtension: NewBaseExtension(nil, name, author)}
}

func (e *testExt) Version() string     { return "1.0.0" }
func (e *testExt) Description() string { return "test extension" }

func (e *testExt) CreateWidget(parent ui.Widget) (ui.Widget, error) {
	e.factoryCalls++
	e.lastParent = parent
	if e.factory != nil {
		return e.factory(parent)
	}
	return &ui.NopWidget{}, nil
}

// bareExt keeps every base default, including the widget factory.
type bareExt struct {
	*BaseExtension
}

func (e *bareExt) Version() string     { return "0.1.0" }
func (e *bareExt) Description() string { return "bare extension" }

// hookExt adds a failure-prone initialization hook.
type hookExt struct {
	*testExt

	hookErr   error
	hookPanic string
	hookCtx   host.Context
}

func (e *hookExt) OnInitialize(ctx host.Context) error {
	e.hookCtx = ctx
	if e.hookPanic != "" {
		panic(e.hookPanic)
	}
	return e.hookErr
}

// shadowExt tries to override the identity accessors.
type shadowExt struct {
	*testExt
}

func (e *shadowExt) ID() string   { return "shadowed" }
func (e *shadowExt) Name() string { return "Shadowed" }

// closableWidget counts close calls.
type closableWidget struct {
	ui.NopWidget

	closeErr   error
	closeCalls int
}

func (w *closableWidget) Close() error {
	w.closeCalls++
	return w.closeErr
}

// cleanableWidget supports cleanup but not close.
type cleanableWidget struct {
	ui.NopWidget

	cleanupCalls int
}

func (w *cleanableWidget) Cleanup() { w.cleanupCalls++ }

// awareWidget records the context handed to it.
type awareWidget struct {
	ui.NopWidget

	ctx host.Context
}

func (w *awareWidget) SetContext(ctx host.Context) { w.ctx = ctx }

// stubUIManager is an in-memory tab manager implementing host.UIManager and
// host.MainWindowProvider.
type stubUIManager struct {
	tabs       []ui.Widget
	titles     []string
	icons      map[int]string
	current    int
	mainWindow ui.Widget
	addFails   bool
}

func newStubUIManager() *stubUIManager {
	return &stubUIManager{icons: make(map[int]string), current: -1}
}

func (m *stubUIManager) FindTab(w ui.Widget) int {
	for i, t := range m.tabs {
		if t == w {
			return i
		}
	}
	return -1
}

func (m *stubUIManager) AddTab(w ui.Widget, title string) int {
	if m.addFails {
		return -1
	}
	m.tabs = append(m.tabs, w)
	m.titles = append(m.titles, title)
	return len(m.tabs) - 1
}

func (m *stubUIManager) SetCurrentTab(index int)           { m.current = index }
func (m *stubUIManager) SetTabIcon(index int, path string) { m.icons[index] = path }
func (m *stubUIManager) NewAction(title string) ui.Action  { return ui.NewSimpleAction(title) }
func (m *stubUIManager) MainWindow() ui.Widget             { return m.mainWindow }
