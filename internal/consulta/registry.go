package consulta

import "sync"

// Registry hands out one Orchestrator per user. Each user's route, busy
// flag, and result slot are independent; two analysts never see each
// other's searches.
type Registry struct {
	api  API
	opts []Option

	mu    sync.Mutex
	users map[string]*Orchestrator
}

// NewRegistry creates a Registry. The options are applied to every
// Orchestrator it creates.
func NewRegistry(api API, opts ...Option) *Registry {
	return &Registry{
		api:   api,
		opts:  opts,
		users: make(map[string]*Orchestrator),
	}
}

// For returns the Orchestrator of the given user, creating it on first use.
func (r *Registry) For(username string) *Orchestrator {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.users[username]
	if !ok {
		o = New(r.api, r.opts...)
		r.users[username] = o
	}
	return o
}
