package provider

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/scribepipe/scribepipe/constants"
	"github.com/scribepipe/scribepipe/internal/common"
)

// Factory creates an adapter instance from credentials config.
type Factory[T any] func(cfg common.ProvidersConfig, logger *slog.Logger) (T, error)

// Registry holds named factories for creating instances of T.
type Registry[T any] struct {
	mu        sync.RWMutex
	factories map[string]Factory[T]
}

// NewRegistry creates a new empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		factories: make(map[string]Factory[T]),
	}
}

// Register adds a named factory to the registry.
func (r *Registry[T]) Register(name string, factory Factory[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Create instantiates T using the named factory. An unknown name is a
// validation error so the API boundary can reject it up front; a
// missing credential surfaces as a configuration error from the
// factory itself.
func (r *Registry[T]) Create(name string, cfg common.ProvidersConfig, logger *slog.Logger) (T, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()

	if !ok {
		var zero T
		return zero, common.InvalidInputError(fmt.Sprintf("unknown backend %q", name), nil)
	}

	return factory(cfg, logger)
}

// Has returns true if the named factory exists.
func (r *Registry[T]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// List returns all registered factory names, sorted.
func (r *Registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Registries bundles the transcriber and translator registries that a
// deployment exposes.
type Registries struct {
	Transcribers *Registry[Transcriber]
	Translators  *Registry[Translator]
}

// DefaultRegistries returns registries populated with every built-in
// backend.
func DefaultRegistries() *Registries {
	tr := NewRegistry[Transcriber]()
	tr.Register(constants.BackendDeepgram, func(cfg common.ProvidersConfig, logger *slog.Logger) (Transcriber, error) {
		return NewDeepgram(cfg, logger)
	})
	tr.Register(constants.BackendWhisper, func(cfg common.ProvidersConfig, logger *slog.Logger) (Transcriber, error) {
		return NewWhisper(cfg, logger)
	})
	tr.Register(constants.BackendAssemblyAI, func(cfg common.ProvidersConfig, logger *slog.Logger) (Transcriber, error) {
		return NewAssemblyAI(cfg, logger)
	})

	tl := NewRegistry[Translator]()
	tl.Register(constants.BackendGoogle, func(cfg common.ProvidersConfig, logger *slog.Logger) (Translator, error) {
		return NewGoogleTranslate(cfg, logger)
	})
	tl.Register(constants.BackendOpenAI, func(cfg common.ProvidersConfig, logger *slog.Logger) (Translator, error) {
		return NewOpenAITranslator(cfg, logger)
	})
	tl.Register(constants.BackendDeepSeek, func(cfg common.ProvidersConfig, logger *slog.Logger) (Translator, error) {
		return NewDeepSeek(cfg, logger)
	})

	return &Registries{Transcribers: tr, Translators: tl}
}
