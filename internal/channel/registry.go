package channel

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds the registered channel adapters keyed by type.
type Registry struct {
	mu       sync.RWMutex
	adapters map[ChannelType]Adapter
}

func NewRegistry() *Registry {
	return &Registry{adapters: make(map[ChannelType]Adapter)}
}

// Register adds an adapter. Registering the same type twice is an error.
func (r *Registry) Register(adapter Adapter) error {
	if adapter == nil {
		return fmt.Errorf("adapter is required")
	}
	channelType := adapter.Type()
	if channelType == "" {
		return fmt.Errorf("adapter type is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.adapters[channelType]; ok {
		return fmt.Errorf("adapter already registered: %s", channelType)
	}
	r.adapters[channelType] = adapter
	return nil
}

// MustRegister registers an adapter and panics on conflict. Intended for
// process wiring where a duplicate registration is a programming error.
func (r *Registry) MustRegister(adapter Adapter) {
	if err := r.Register(adapter); err != nil {
		panic(err)
	}
}

// Get returns the adapter for a channel type.
func (r *Registry) Get(channelType ChannelType) (Adapter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	adapter, ok := r.adapters[channelType]
	return adapter, ok
}

// Types lists registered channel types in stable order.
func (r *Registry) Types() []ChannelType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]ChannelType, 0, len(r.adapters))
	for channelType := range r.adapters {
		types = append(types, channelType)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
