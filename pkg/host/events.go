package host

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Bus is an in-memory EventBus. Handlers run synchronously on the emitting
// goroutine; a panicking handler is isolated and logged so one misbehaving
// extension cannot take down the emitter.
type Bus struct {
	mu       sync.RWMutex
	logger   zerolog.Logger
	handlers map[string]map[string]EventHandler
	tokens   map[string]string // token -> event name
}

// NewBus creates an empty event bus.
func NewBus(logger zerolog.Logger) *Bus {
	return &Bus{
		logger:   logger.With().Str("component", "eventbus").Logger(),
		handlers: make(map[string]map[string]EventHandler),
		tokens:   make(map[string]string),
	}
}

// Subscribe registers a handler for an event name and returns an
// unsubscribe token.
func (b *Bus) Subscribe(name string, handler EventHandler) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	token := uuid.NewString()
	if b.handlers[name] == nil {
		b.handlers[name] = make(map[string]EventHandler)
	}
	b.handlers[name][token] = handler
	b.tokens[token] = name
	return token
}

// Unsubscribe removes the handler registered under token. Unknown tokens
// are ignored.
func (b *Bus) Unsubscribe(token string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	name, ok := b.tokens[token]
	if !ok {
		return
	}
	delete(b.tokens, token)
	delete(b.handlers[name], token)
	if len(b.handlers[name]) == 0 {
		delete(b.handlers, name)
	}
}

// Emit delivers the event to every handler subscribed to its name.
func (b *Bus) Emit(name string, data map[string]any) {
	b.mu.RLock()
	registered := make([]EventHandler, 0, len(b.handlers[name]))
	for _, h := range b.handlers[name] {
		registered = append(registered, h)
	}
	b.mu.RUnlock()

	for _, h := range registered {
		b.dispatch(name, data, h)
	}
}

func (b *Bus) dispatch(name string, data map[string]any, h EventHandler) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error().Str("event", name).Interface("panic", r).Msg("Event handler panicked")
		}
	}()
	h(name, data)
}
