package extension

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/medics-dev/MedICS-Extension-Base/pkg/host"
)

// Manager is the host-side loader for extensions. It registers them under
// their sealed identifier, drives the never-throw initialization contract,
// and tears everything down best-effort. Unlike the single-threaded
// extension contract, the manager is safe for concurrent use since hosts
// may consult it from multiple goroutines.
type Manager struct {
	logger zerolog.Logger
	ctx    host.Context

	mu         sync.RWMutex
	extensions map[string]Extension
}

// NewManager creates a manager bound to the host context handed to every
// extension during initialization.
func NewManager(logger zerolog.Logger, ctx host.Context) *Manager {
	return &Manager{
		logger:     logger.With().Str("component", "extensions").Logger(),
		ctx:        ctx,
		extensions: make(map[string]Extension),
	}
}

// Register adds an extension under its sealed identifier. Duplicate
// identifiers are rejected.
func (m *Manager) Register(ext Extension) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := IdentityOf(ext).ID()
	if _, exists := m.extensions[id]; exists {
		return fmt.Errorf("extension %q already registered", id)
	}
	m.extensions[id] = ext
	m.logger.Info().Str("id", id).Str("name", ext.Name()).Msg("Registered extension")
	return nil
}

// Get returns an extension by identifier.
func (m *Manager) Get(id string) (Extension, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ext, ok := m.extensions[id]
	return ext, ok
}

// List returns all registered extensions.
func (m *Manager) List() []Extension {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]Extension, 0, len(m.extensions))
	for _, ext := range m.extensions {
		result = append(result, ext)
	}
	return result
}

// Descriptors returns the API descriptor of every registered extension.
func (m *Manager) Descriptors() []Descriptor {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]Descriptor, 0, len(m.extensions))
	for _, ext := range m.extensions {
		result = append(result, ext.API())
	}
	return result
}

// InitializeAll initializes every registered extension with the manager's
// context, continuing past failures, and returns the identifiers that
// reported failure.
func (m *Manager) InitializeAll() []string {
	m.mu.RLock()
	exts := make([]Extension, 0, len(m.extensions))
	for _, ext := range m.extensions {
		exts = append(exts, ext)
	}
	m.mu.RUnlock()

	var failed []string
	for _, ext := range exts {
		id := IdentityOf(ext).ID()
		if !Initialize(ext, m.ctx) {
			m.logger.Warn().Str("id", id).Msg("Extension failed to initialize")
			failed = append(failed, id)
			continue
		}
		m.logger.Info().Str("id", id).Msg("Extension initialized")
	}
	return failed
}

// CleanupAll tears down every registered extension. Teardown is best-effort
// and always completes.
func (m *Manager) CleanupAll() {
	m.mu.RLock()
	exts := make([]Extension, 0, len(m.extensions))
	for _, ext := range m.extensions {
		exts = append(exts, ext)
	}
	m.mu.RUnlock()

	for _, ext := range exts {
		Cleanup(ext)
	}
}
