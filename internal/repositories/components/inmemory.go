package components

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/spellcraft/internal/domain/spell"
	spellerr "github.com/KirkDiggler/spellcraft/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu      sync.RWMutex
	options map[spell.ComponentKey]spell.ComponentOption
}

// NewInMemoryRepository creates a new in-memory component repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		options: make(map[spell.ComponentKey]spell.ComponentOption),
	}
}

// Put stores a copy of the option
func (r *inMemoryRepository) Put(ctx context.Context, option *spell.ComponentOption) error {
	if option == nil {
		return spellerr.InvalidArgument("component option cannot be nil")
	}
	if err := option.Check(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.options[option.Key] = *option
	return nil
}

// Get retrieves a copy of an option
func (r *inMemoryRepository) Get(ctx context.Context, key spell.ComponentKey) (*spell.ComponentOption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	option, exists := r.options[key]
	if !exists {
		return nil, spellerr.NotFoundf("component %s not found", key).WithComponent(key.String())
	}

	return &option, nil
}

// List retrieves copies of all options
func (r *inMemoryRepository) List(ctx context.Context) ([]*spell.ComponentOption, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*spell.ComponentOption, 0, len(r.options))
	for _, option := range r.options {
		optionCopy := option
		result = append(result, &optionCopy)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Key < result[j].Key })

	return result, nil
}

// Delete removes an option
func (r *inMemoryRepository) Delete(ctx context.Context, key spell.ComponentKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.options[key]; !exists {
		return spellerr.NotFoundf("component %s not found", key).WithComponent(key.String())
	}

	delete(r.options, key)
	return nil
}
