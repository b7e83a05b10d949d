package host

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/medics-dev/MedICS-Extension-Base/pkg/ui"
)

// Well-known component names resolvable through Component in addition to the
// typed getters. They match the names extensions historically looked up.
const (
	ComponentConfigManager = "config_manager"
	ComponentEventBus      = "event_bus"
	ComponentUIManager     = "ui_manager"
	ComponentMainWindow    = "main_window"
	ComponentLogger        = "logger"
)

// Registry is the reference Context implementation: a mutex-guarded
// component map plus typed slots for the core capabilities. Hosts assemble
// one at startup and hand it to every extension.
type Registry struct {
	mu         sync.RWMutex
	logger     *zerolog.Logger
	config     ConfigManager
	events     EventBus
	uiManager  UIManager
	mainWindow ui.Widget
	components map[string]any
}

// NewRegistry creates an empty registry. The logger may be nil for hosts
// that do not expose logging to extensions.
func NewRegistry(logger *zerolog.Logger) *Registry {
	return &Registry{
		logger:     logger,
		components: make(map[string]any),
	}
}

func (r *Registry) Logger() *zerolog.Logger { return r.logger }

func (r *Registry) Config() ConfigManager {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.config
}

func (r *Registry) Events() EventBus {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.events
}

func (r *Registry) UIManager() UIManager {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.uiManager
}

func (r *Registry) MainWindow() ui.Widget {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.mainWindow
}

// SetConfig installs the configuration capability.
func (r *Registry) SetConfig(cfg ConfigManager) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.config = cfg
}

// SetEvents installs the eventing capability.
func (r *Registry) SetEvents(bus EventBus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = bus
}

// SetUIManager installs the window-management capability.
func (r *Registry) SetUIManager(um UIManager) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.uiManager = um
}

// SetMainWindow installs the application main window.
func (r *Registry) SetMainWindow(w ui.Widget) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mainWindow = w
}

// RegisterComponent adds a named component. Registering the same name twice
// is an error so hosts notice wiring mistakes early.
func (r *Registry) RegisterComponent(name string, component any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.components[name]; exists {
		return fmt.Errorf("component %q already registered", name)
	}
	r.components[name] = component
	if r.logger != nil {
		r.logger.Info().Str("component", name).Msg("Host component registered")
	}
	return nil
}

// Component resolves a named component. The well-known capability names fall
// back to the typed slots when no explicit component was registered.
func (r *Registry) Component(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if c, ok := r.components[name]; ok {
		return c, true
	}
	switch name {
	case ComponentConfigManager:
		if r.config != nil {
			return r.config, true
		}
	case ComponentEventBus:
		if r.events != nil {
			return r.events, true
		}
	case ComponentUIManager:
		if r.uiManager != nil {
			return r.uiManager, true
		}
	case ComponentMainWindow:
		if r.mainWindow != nil {
			return r.mainWindow, true
		}
	case ComponentLogger:
		if r.logger != nil {
			return r.logger, true
		}
	}
	return nil, false
}
