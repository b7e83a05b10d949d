// Package ui defines the capability interfaces an extension's visual surface
// must satisfy. The SDK core depends only on these interfaces; the concrete
// GUI toolkit lives in the host application and is never imported here, so
// extensions can be built and tested without any toolkit present.
package ui

// Widget is the minimal surface the extension lifecycle needs from a
// toolkit window or panel.
type Widget interface {
	// Show presents the widget as a standalone window.
	Show()
	// Raise brings the widget above sibling windows.
	Raise()
	// Activate gives the widget input focus.
	Activate()
}

// Closer is an optional upgrade for widgets that release resources through
// a close operation. The lifecycle prefers Close over Cleanup during
// teardown.
type Closer interface {
	Close() error
}

// Cleaner is an optional upgrade for widgets that expose a cleanup
// operation instead of Close.
type Cleaner interface {
	Cleanup()
}

// Action is a menu or toolbar entry the host renders for launching an
// extension.
type Action interface {
	SetToolTip(text string)
	SetIcon(path string)
	// OnTrigger registers the callback invoked when the user activates
	// the action.
	OnTrigger(fn func())
	// Trigger fires the registered callback, if any.
	Trigger()
}
