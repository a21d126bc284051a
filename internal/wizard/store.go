package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"potteryloop/config"
	"potteryloop/shared"
	"potteryloop/shared/cache"
)

const (
	stateNamespace = "bookingFlow"

	stateKeyStep      = "currentStep"
	stateKeyDraft     = "formData"
	stateKeyErrors    = "errors"
	stateKeySubmitted = "isSubmitted"
)

// State is everything the wizard needs to resume mid-flow after a reload.
type State struct {
	Draft     Draft  `json:"formData"`
	Step      int    `json:"currentStep"`
	Errors    Errors `json:"errors"`
	Submitted bool   `json:"isSubmitted"`
}

// StateStore persists wizard state between visits. Implementations are free
// to expire state; a missing state simply restarts the flow.
type StateStore interface {
	Save(ctx context.Context, sessionID string, state State) error
	Load(ctx context.Context, sessionID string) (State, bool, error)
	Clear(ctx context.Context, sessionID string) error
}

// MemoryStateStore keeps state in-process. Used by tests and single-instance
// deployments.
type MemoryStateStore struct {
	mu     sync.RWMutex
	states map[string]State
}

func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{
		states: make(map[string]State),
	}
}

func (m *MemoryStateStore) Save(_ context.Context, sessionID string, state State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.states[sessionID] = state

	return nil
}

func (m *MemoryStateStore) Load(_ context.Context, sessionID string) (State, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	state, ok := m.states[sessionID]

	return state, ok, nil
}

func (m *MemoryStateStore) Clear(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.states, sessionID)

	return nil
}

// RedisStateStore mirrors the flow state into Redis under one key per state
// facet, namespaced by session.
type RedisStateStore struct {
	cache cache.RedisCache
	ttl   int
}

func NewRedisStateStore(cfg *config.Config, cache cache.RedisCache) *RedisStateStore {
	return &RedisStateStore{
		cache: cache,
		ttl:   cfg.Cache.TTL,
	}
}

func (r *RedisStateStore) Save(ctx context.Context, sessionID string, state State) error {
	facets := map[string]any{
		stateKeyStep:      state.Step,
		stateKeyDraft:     state.Draft,
		stateKeyErrors:    state.Errors,
		stateKeySubmitted: state.Submitted,
	}

	for facet, value := range facets {
		if err := r.cache.Save(ctx, r.key(sessionID, facet), value, r.ttl); err != nil {
			return fmt.Errorf("failed to save flow state %s: %w", facet, err)
		}
	}

	return nil
}

func (r *RedisStateStore) Load(ctx context.Context, sessionID string) (state State, found bool, err error) {
	err = r.cache.Get(ctx, r.key(sessionID, stateKeyDraft), &state.Draft)
	if err != nil {
		if errors.Is(err, cache.Nil) {
			return state, false, nil
		}

		return state, false, fmt.Errorf("failed to load flow state: %w", err)
	}

	// The remaining facets default to zero values when absent.
	_ = r.cache.Get(ctx, r.key(sessionID, stateKeyStep), &state.Step)
	_ = r.cache.Get(ctx, r.key(sessionID, stateKeyErrors), &state.Errors)
	_ = r.cache.Get(ctx, r.key(sessionID, stateKeySubmitted), &state.Submitted)

	return state, true, nil
}

func (r *RedisStateStore) Clear(ctx context.Context, sessionID string) error {
	for _, facet := range []string{stateKeyStep, stateKeyDraft, stateKeyErrors, stateKeySubmitted} {
		if err := r.cache.Delete(ctx, r.key(sessionID, facet)); err != nil {
			return fmt.Errorf("failed to clear flow state %s: %w", facet, err)
		}
	}

	return nil
}

func (r *RedisStateStore) key(sessionID, facet string) string {
	return shared.BuildCacheKey(stateNamespace, sessionID, facet)
}
