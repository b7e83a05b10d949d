package extension

import (
	"fmt"

	"github.com/medics-dev/MedICS-Extension-Base/pkg/host"
	"github.com/medics-dev/MedICS-Extension-Base/pkg/ui"
)

// Lifecycle drivers. They are package-level so they always operate on the
// sealed base state while still dispatching overridable behavior (the
// widget factory, the optional hooks) through the Extension value.

// Initialize binds the host context and runs the optional Initializer hook.
// The context is bound before the hook runs, so a failing hook leaves the
// extension bound and otherwise usable. A hook error or panic is caught,
// logged, and reported as false — this function never panics, by contract
// with the host's plugin loader.
func Initialize(ext Extension, ctx host.Context) bool {
	b := ext.base()
	b.appContext = ctx

	hook, ok := ext.(Initializer)
	if !ok {
		return true
	}
	if err := runInitHook(hook, ctx); err != nil {
		b.logLocal("failed to initialize: " + err.Error())
		return false
	}
	return true
}

func runInitHook(hook Initializer, ctx host.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("initialize hook panicked: %v", r)
		}
	}()
	return hook.OnInitialize(ctx)
}

// CreateInstance returns the extension's widget, creating it on first call.
// It is idempotent: once a widget exists it is returned as-is and the
// factory is not invoked again. The parent container resolves as explicit
// argument, else the construction-time parent, else the bound context's
// main window. A factory error or panic is wrapped in *CreateError with the
// original cause preserved.
func CreateInstance(ext Extension, parent ui.Widget) (ui.Widget, error) {
	b := ext.base()
	if b.widget != nil {
		return b.widget, nil
	}

	if parent == nil {
		parent = b.parent
	}
	if parent == nil && b.appContext != nil {
		parent = b.GetMainWindow()
	}

	w, err := runFactory(ext, parent)
	if err != nil {
		return nil, &CreateError{Extension: ext.Name(), Err: err}
	}
	b.widget = w

	// The widget contract supplies the context at construction time.
	if aware, ok := w.(host.ContextAware); ok && b.appContext != nil {
		aware.SetContext(b.appContext)
	}
	return w, nil
}

func runFactory(ext Extension, parent ui.Widget) (w ui.Widget, err error) {
	defer func() {
		if r := recover(); r != nil {
			w, err = nil, fmt.Errorf("widget factory panicked: %v", r)
		}
	}()
	return ext.CreateWidget(parent)
}

// Show presents the extension, creating the widget first if needed. With a
// UI manager, the widget is attached as a tab — reusing the existing tab
// when already attached — and selected; without one, the widget is shown as
// a standalone window. Failures are logged, never returned.
func Show(ext Extension) {
	b := ext.base()
	if b.widget == nil {
		if _, err := CreateInstance(ext, nil); err != nil {
			b.logLocal("cannot show: " + err.Error())
			return
		}
	}

	var um host.UIManager
	if b.appContext != nil {
		um = b.appContext.UIManager()
	}
	if um == nil {
		b.widget.Show()
		b.widget.Raise()
		b.widget.Activate()
		return
	}

	if index := um.FindTab(b.widget); index >= 0 {
		um.SetCurrentTab(index)
		return
	}
	index := um.AddTab(b.widget, ext.Name())
	if index < 0 {
		return
	}
	if iconPath := b.IconPath(); iconPath != "" {
		um.SetTabIcon(index, iconPath)
	}
	um.SetCurrentTab(index)
}

// Cleanup tears down the extension's widget. The close operation is
// preferred, a cleanup operation is the fallback, and a widget supporting
// neither is silently left alone. Errors and panics are logged, never
// propagated, and the widget reference is cleared unconditionally — teardown
// always completes. Cleanup without a created widget is a no-op.
func Cleanup(ext Extension) {
	b := ext.base()
	if b.widget == nil {
		return
	}
	b.guard("cleanup", func() {
		switch w := b.widget.(type) {
		case ui.Closer:
			if err := w.Close(); err != nil {
				b.logLocal("close error: " + err.Error())
			}
		case ui.Cleaner:
			w.Cleanup()
		}
	})
	b.widget = nil
}

// MainAction lazily creates the launcher action for the extension: tooltip
// from the description, icon when one resolves, trigger wired to Show. It
// returns nil when no UI manager is available, and caches the action once
// created.
func MainAction(ext Extension) ui.Action {
	b := ext.base()
	if b.mainAction != nil {
		return b.mainAction
	}
	if b.appContext == nil {
		return nil
	}
	um := b.appContext.UIManager()
	if um == nil {
		return nil
	}
	action := um.NewAction(ext.Name())
	if action == nil {
		return nil
	}
	action.SetToolTip(ext.Description())
	if iconPath := b.IconPath(); iconPath != "" {
		action.SetIcon(iconPath)
	}
	action.OnTrigger(func() { Show(ext) })
	b.mainAction = action
	return action
}
