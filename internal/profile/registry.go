package profile

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotFound is returned when a profile lookup uses an unknown assistant id.
var ErrNotFound = errors.New("profile not found")

// Registry is a read-only lookup of assistant profiles. It is built once at
// startup and shared across concurrent turns without synchronization.
type Registry struct {
	profiles map[string]*Profile
	order    []string
}

// NewRegistry builds a registry from the given profiles, applying defaults to
// unset tuning fields and validating required ones.
func NewRegistry(profiles []Profile) (*Registry, error) {
	r := &Registry{
		profiles: make(map[string]*Profile, len(profiles)),
		order:    make([]string, 0, len(profiles)),
	}

	for i := range profiles {
		p := profiles[i]
		if p.ID == "" {
			return nil, fmt.Errorf("profile %d: id is required", i)
		}
		if p.SystemPrompt == "" {
			return nil, fmt.Errorf("profile %q: system prompt is required", p.ID)
		}
		if p.CorpusNamespace == "" {
			return nil, fmt.Errorf("profile %q: corpus namespace is required", p.ID)
		}
		if _, dup := r.profiles[p.ID]; dup {
			return nil, fmt.Errorf("profile %q: duplicate id", p.ID)
		}

		if p.MatchThreshold == 0 {
			p.MatchThreshold = DefaultMatchThreshold
		}
		if p.MatchThreshold < 0 || p.MatchThreshold > 1 {
			return nil, fmt.Errorf("profile %q: match threshold %v out of range [0,1]", p.ID, p.MatchThreshold)
		}
		if p.MatchCount == 0 {
			p.MatchCount = DefaultMatchCount
		}
		if p.MatchCount < 0 {
			return nil, fmt.Errorf("profile %q: match count must be positive", p.ID)
		}
		if p.RerankSkipThreshold == 0 {
			p.RerankSkipThreshold = DefaultRerankSkipThreshold
		}

		r.profiles[p.ID] = &p
		r.order = append(r.order, p.ID)
	}

	return r, nil
}

// NewDefaultRegistry builds a registry from the built-in assistant set.
func NewDefaultRegistry() (*Registry, error) {
	return NewRegistry(defaultProfiles())
}

// Lookup returns the profile for the given assistant id.
func (r *Registry) Lookup(id string) (*Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return p, nil
}

// List returns all profiles in registration order.
func (r *Registry) List() []*Profile {
	out := make([]*Profile, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.profiles[id])
	}
	return out
}

// IDs returns the registered assistant ids, sorted.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	sort.Strings(ids)
	return ids
}
