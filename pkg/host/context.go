// Package host defines the application-context capability interfaces through
// which an extension reaches MedICS platform services, plus reference
// implementations hosts and tests can use directly.
//
// Every getter on Context is optional: a nil return means the host does not
// provide that capability, and callers are expected to degrade gracefully
// rather than fail.
package host

import (
	"github.com/rs/zerolog"

	"github.com/medics-dev/MedICS-Extension-Base/pkg/ui"
)

// Context is the injected capability object an extension receives during
// initialization. It replaces duck-typed attribute probing with typed
// getters; each may return nil when the host lacks the capability.
type Context interface {
	// Logger returns the platform logger, or nil.
	Logger() *zerolog.Logger
	// Config returns the platform configuration manager, or nil.
	Config() ConfigManager
	// Events returns the platform event bus, or nil.
	Events() EventBus
	// UIManager returns the window/tab manager, or nil.
	UIManager() UIManager
	// MainWindow returns the application main window, or nil.
	MainWindow() ui.Widget
	// Component looks up a named platform component.
	Component(name string) (any, bool)
}

// ConfigManager provides section/key access to the host configuration store.
type ConfigManager interface {
	// Get returns the value for section/key, or def when unset.
	Get(section, key string, def any) any
	// Set stores a value for section/key.
	Set(section, key string, value any) error
}

// EventHandler receives events emitted on the bus.
type EventHandler func(name string, data map[string]any)

// EventBus is the platform eventing capability.
type EventBus interface {
	Emit(name string, data map[string]any)
	// Subscribe registers a handler for an event name and returns a token
	// for Unsubscribe.
	Subscribe(name string, handler EventHandler) string
	Unsubscribe(token string)
}

// UIManager is the host's window-management capability. Extensions attach
// their widgets as tabs through it; when absent, widgets are shown as
// standalone windows instead.
type UIManager interface {
	// FindTab returns the index of the tab holding the widget, or -1.
	FindTab(w ui.Widget) int
	// AddTab attaches the widget as a new tab and returns its index, or a
	// negative index on failure.
	AddTab(w ui.Widget, title string) int
	SetCurrentTab(index int)
	SetTabIcon(index int, iconPath string)
	// NewAction creates a launcher action, or nil when the host cannot
	// render actions.
	NewAction(title string) ui.Action
}

// MainWindowProvider is an optional upgrade for UI managers that can hand
// out the main window when the context itself does not.
type MainWindowProvider interface {
	MainWindow() ui.Widget
}

// ContextAware widgets receive the app context right after creation. This is
// part of the widget contract: the context is supplied at construction time,
// never patched in later.
type ContextAware interface {
	SetContext(ctx Context)
}
