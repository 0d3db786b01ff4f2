package layout

import (
	"strings"
	"sync"
)

// Provider supplies the input sets for one locale.
type Provider interface {
	// Locale is the BCP 47 language tag the provider serves.
	Locale() string

	// AlphabeticInputSet is the letter layout.
	AlphabeticInputSet() InputSet

	// NumericInputSet is the number layout.
	NumericInputSet() InputSet

	// SymbolicInputSet is the symbol layout.
	SymbolicInputSet() InputSet
}

// Registry resolves providers by locale. Lookup falls back from the full
// tag to its language component to the registry's fallback provider, so
// "en-GB" resolves to an "en" provider when no exact match is registered.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
	fallback  Provider
}

// NewRegistry creates a registry with the given fallback provider.
func NewRegistry(fallback Provider) *Registry {
	r := &Registry{
		providers: make(map[string]Provider),
		fallback:  fallback,
	}
	if fallback != nil {
		r.providers[normalizeLocale(fallback.Locale())] = fallback
	}
	return r
}

// Register adds or replaces the provider for its locale.
func (r *Registry) Register(p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[normalizeLocale(p.Locale())] = p
}

// For returns the provider for the given locale, falling back to the
// language component and then to the registry fallback.
func (r *Registry) For(locale string) Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key := normalizeLocale(locale)
	if p, ok := r.providers[key]; ok {
		return p
	}
	if lang, _, found := strings.Cut(key, "-"); found {
		if p, ok := r.providers[lang]; ok {
			return p
		}
	}
	return r.fallback
}

// Locales returns the registered locale tags.
func (r *Registry) Locales() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.providers))
	for k := range r.providers {
		out = append(out, k)
	}
	return out
}

func normalizeLocale(locale string) string {
	return strings.ToLower(strings.ReplaceAll(locale, "_", "-"))
}

// StaticProvider is a Provider backed by fixed input sets.
type StaticProvider struct {
	Lang       string
	Alphabetic InputSet
	Numeric    InputSet
	Symbolic   InputSet
}

// Locale returns the provider's locale tag.
func (p StaticProvider) Locale() string { return p.Lang }

// AlphabeticInputSet returns the letter layout.
func (p StaticProvider) AlphabeticInputSet() InputSet { return p.Alphabetic }

// NumericInputSet returns the number layout.
func (p StaticProvider) NumericInputSet() InputSet { return p.Numeric }

// SymbolicInputSet returns the symbol layout.
func (p StaticProvider) SymbolicInputSet() InputSet { return p.Symbolic }
