package contractgen

import "sync"

// Registry fans request failures out to the registered handlers. It is
// owned by whoever composes the generated contracts and passed to them
// through a Session.
type Registry struct {
	mu       sync.RWMutex
	handlers []ErrorHandler
}

func NewRegistry(handlers ...ErrorHandler) *Registry {
	r := &Registry{}
	for _, h := range handlers {
		r.Register(h)
	}
	return r
}

func (r *Registry) Register(handler ErrorHandler) {
	if handler == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers = append(r.handlers, handler)
}

// Dispatch hands err to every handler in registration order.
func (r *Registry) Dispatch(err error) {
	if r == nil || err == nil {
		return
	}
	r.mu.RLock()
	handlers := make([]ErrorHandler, len(r.handlers))
	copy(handlers, r.handlers)
	r.mu.RUnlock()

	for _, h := range handlers {
		h.HandleError(err)
	}
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers)
}
