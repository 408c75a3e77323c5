package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/emberworks/forgefront-backend/internal/cart"
	"github.com/emberworks/forgefront-backend/internal/checkout"
	"github.com/emberworks/forgefront-backend/internal/configurator"
	"github.com/emberworks/forgefront-backend/pkg/logger"
	"github.com/emberworks/forgefront-backend/pkg/metrics"
)

// State is one visitor's storefront: their cart, their customization spec, and
// their checkout coordinator. Each has exactly one writer path; Do serializes
// it so two mutations never interleave.
type State struct {
	ID          uuid.UUID
	Cart        *cart.Store
	Spec        *configurator.Spec
	Coordinator *checkout.Coordinator

	mu       sync.Mutex
	lastSeen time.Time
}

// Do runs fn while holding the session lock.
func (s *State) Do(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

// Registry tracks live sessions and evicts idle ones.
type Registry struct {
	mu        sync.Mutex
	sessions  map[uuid.UUID]*State
	ttl       time.Duration
	fulfiller checkout.Fulfiller
	metrics   *metrics.StorefrontMetrics
}

func NewRegistry(ttl time.Duration, fulfiller checkout.Fulfiller, m *metrics.StorefrontMetrics) (*Registry, error) {
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive")
	}
	if fulfiller == nil {
		return nil, fmt.Errorf("fulfiller required")
	}
	return &Registry{
		sessions:  map[uuid.UUID]*State{},
		ttl:       ttl,
		fulfiller: fulfiller,
		metrics:   m,
	}, nil
}

// Create starts a fresh session with an empty cart and a default spec.
func (r *Registry) Create() (*State, error) {
	store := cart.NewStore()
	coordinator, err := checkout.NewCoordinator(store, r.fulfiller)
	if err != nil {
		return nil, err
	}

	state := &State{
		ID:          uuid.New(),
		Cart:        store,
		Spec:        configurator.NewSpec(),
		Coordinator: coordinator,
		lastSeen:    time.Now(),
	}

	r.mu.Lock()
	r.sessions[state.ID] = state
	count := len(r.sessions)
	r.mu.Unlock()

	r.metrics.SetActiveSessions(count)
	return state, nil
}

// Get returns the session and refreshes its idle clock.
func (r *Registry) Get(id uuid.UUID) (*State, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	state, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	state.lastSeen = time.Now()
	return state, true
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep evicts sessions idle past the TTL and returns how many were dropped.
func (r *Registry) Sweep(now time.Time) int {
	r.mu.Lock()
	evicted := 0
	for id, state := range r.sessions {
		if now.Sub(state.lastSeen) > r.ttl {
			delete(r.sessions, id)
			evicted++
		}
	}
	count := len(r.sessions)
	r.mu.Unlock()

	if evicted > 0 {
		r.metrics.SetActiveSessions(count)
	}
	return evicted
}

// StartSweeper runs Sweep on the given interval until the context ends.
func (r *Registry) StartSweeper(ctx context.Context, interval time.Duration, logg *logger.Logger) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if evicted := r.Sweep(now); evicted > 0 && logg != nil {
					logCtx := logg.WithField(ctx, "evicted", evicted)
					logg.Info(logCtx, "session.sweep")
				}
			}
		}
	}()
}
