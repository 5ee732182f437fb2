package assistant

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/tbourn/holistiq/internal/config"
)

// ProviderFactory builds a provider from configuration. It returns
// ErrNotConfigured when required settings (a credential) are missing.
type ProviderFactory func(cfg config.AssistantConfig) (Provider, error)

// Registry maps provider names to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]ProviderFactory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]ProviderFactory)}
}

func (r *Registry) Register(name string, f ProviderFactory) {
	name = strings.ToLower(strings.TrimSpace(name))
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = f
}

func (r *Registry) Get(name string, cfg config.AssistantConfig) (Provider, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown assistant provider: %s", name)
	}
	return f(cfg)
}

// DefaultRegistry knows the "openai" and "ollama" providers.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	reg.Register("openai", func(cfg config.AssistantConfig) (Provider, error) {
		if strings.TrimSpace(cfg.OpenAIKey) == "" {
			return nil, ErrNotConfigured
		}
		maxWords := cfg.MaxWords
		if maxWords <= 0 {
			maxWords = defaultMaxWords
		}
		return NewOpenAIProvider(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, maxWords*2), nil
	})
	reg.Register("ollama", func(cfg config.AssistantConfig) (Provider, error) {
		if strings.TrimSpace(cfg.OllamaBaseURL) == "" {
			return nil, ErrNotConfigured
		}
		return NewOllamaProvider(cfg.OllamaBaseURL, cfg.OllamaModel), nil
	})
	return reg
}

// New selects the responder named by cfg.Provider using the default registry.
func New(cfg config.AssistantConfig) (Responder, error) {
	return NewFromRegistry(DefaultRegistry(), cfg)
}

// NewFromRegistry selects the responder named by cfg.Provider. "rules" (or
// empty) is the keyword table. A remote provider whose credential is missing
// still yields a Responder; it answers every call with ErrNotConfigured.
func NewFromRegistry(reg *Registry, cfg config.AssistantConfig) (Responder, error) {
	name := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if name == "" || name == "rules" {
		return NewRules(), nil
	}
	p, err := reg.Get(name, cfg)
	switch {
	case errors.Is(err, ErrNotConfigured):
		return NewRemote(name, nil, cfg.Timeout, cfg.MaxWords), nil
	case err != nil:
		return nil, err
	}
	return NewRemote(name, p, cfg.Timeout, cfg.MaxWords), nil
}
