package extension

import (
	"fmt"

	"github.com/medics-dev/MedICS-Extension-Base/pkg/host"
	"github.com/medics-dev/MedICS-Extension-Base/pkg/ui"
)

// Host-service accessors. They all follow one pattern: with no bound
// context, perform a safe local fallback; with a context, look up the
// capability and shield the caller from anything the host does wrong. None
// of them ever panic or propagate a host-side failure.

// LogMessage logs through the host logger when available, otherwise through
// the local fallback logger.
func (b *BaseExtension) LogMessage(message string) {
	if b.appContext == nil {
		fallbackLogger.Info().Str("extension", b.identity.Name()).Msg(message + " (no context)")
		return
	}
	if !b.guard("log", func() {
		logger := b.appContext.Logger()
		if logger == nil {
			fallbackLogger.Info().Str("extension", b.identity.Name()).Msg(message)
			return
		}
		logger.Info().Str("extension", b.identity.Name()).Msg(message)
	}) {
		fallbackLogger.Info().Str("extension", b.identity.Name()).Msg(message)
	}
}

// GetConfigValue fetches a configuration value through the host config
// manager, returning def when the context, the capability, or the key is
// missing.
func (b *BaseExtension) GetConfigValue(section, key string, def any) any {
	if b.appContext == nil {
		return def
	}
	result := def
	b.guard("config get", func() {
		cfg := b.appContext.Config()
		if cfg == nil {
			return
		}
		result = cfg.Get(section, key, def)
	})
	return result
}

// SetConfigValue stores a configuration value through the host config
// manager. It reports success; every failure mode collapses to false.
func (b *BaseExtension) SetConfigValue(section, key string, value any) bool {
	if b.appContext == nil {
		return false
	}
	ok := false
	b.guard("config set", func() {
		cfg := b.appContext.Config()
		if cfg == nil {
			return
		}
		if err := cfg.Set(section, key, value); err != nil {
			b.logLocal("config set error: " + err.Error())
			return
		}
		ok = true
	})
	return ok
}

// SendEvent emits an event through the host event bus. A missing bus or a
// bus failure is logged locally and otherwise ignored.
func (b *BaseExtension) SendEvent(name string, data map[string]any) {
	if b.appContext == nil {
		return
	}
	b.guard("event", func() {
		bus := b.appContext.Events()
		if bus == nil {
			return
		}
		bus.Emit(name, data)
	})
}

// GetComponent fetches a named component from the host context, or nil.
func (b *BaseExtension) GetComponent(name string) any {
	if b.appContext == nil {
		return nil
	}
	var component any
	b.guard("component", func() {
		if c, ok := b.appContext.Component(name); ok {
			component = c
		}
	})
	return component
}

// GetMainWindow returns the host main window: directly from the context
// when it has one, else from a UI manager that can provide it, else nil.
func (b *BaseExtension) GetMainWindow() ui.Widget {
	if b.appContext == nil {
		return nil
	}
	var w ui.Widget
	b.guard("main window", func() {
		if mw := b.appContext.MainWindow(); mw != nil {
			w = mw
			return
		}
		if um := b.appContext.UIManager(); um != nil {
			if provider, ok := um.(host.MainWindowProvider); ok {
				w = provider.MainWindow()
			}
		}
	})
	return w
}

// guard runs fn, converting any panic from the host side into a local log
// line. It reports whether fn completed.
func (b *BaseExtension) guard(op string, fn func()) (completed bool) {
	defer func() {
		if r := recover(); r != nil {
			b.logLocal(fmt.Sprintf("%s error: %v", op, r))
			completed = false
		}
	}()
	fn()
	return true
}

func (b *BaseExtension) logLocal(message string) {
	fallbackLogger.Warn().Str("extension", b.identity.Name()).Msg(message)
}
