package theme

import (
	"encoding/json"
	"sync"
	"time"
)

// Pref is a persisted preference value. It merges concurrent writes by
// last-write-wins on the update timestamp and is safe for concurrent use.
type Pref[T any] struct {
	key      string
	fallback T

	mu        sync.RWMutex
	value     T
	updatedAt time.Time

	subsMu sync.Mutex
	subs   map[uint64]func(T)
	nextID uint64

	// persist, when set, is called after every local write so the
	// host application can store the value (cookie, file, database).
	persist func(key string, value T, updatedAt time.Time)
}

// NewPref creates a preference with the given key and default value.
func NewPref[T any](key string, fallback T) *Pref[T] {
	return &Pref[T]{
		key:      key,
		fallback: fallback,
		value:    fallback,
		subs:     make(map[uint64]func(T)),
	}
}

// Key returns the preference key.
func (p *Pref[T]) Key() string { return p.key }

// Get returns the current value.
func (p *Pref[T]) Get() T {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.value
}

// UpdatedAt returns when the preference last changed.
func (p *Pref[T]) UpdatedAt() time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.updatedAt
}

// Set writes a new value, stamps it, persists it, and notifies
// subscribers.
func (p *Pref[T]) Set(value T) {
	p.mu.Lock()
	p.value = value
	p.updatedAt = time.Now()
	at := p.updatedAt
	persist := p.persist
	p.mu.Unlock()

	if persist != nil {
		persist(p.key, value, at)
	}
	p.notify(value)
}

// Reset restores the default value.
func (p *Pref[T]) Reset() {
	p.Set(p.fallback)
}

// ApplyRemote merges a value written elsewhere. The newer write wins;
// an older remote write is discarded. It reports whether the remote
// value was taken.
func (p *Pref[T]) ApplyRemote(value T, updatedAt time.Time) bool {
	p.mu.Lock()
	if !updatedAt.After(p.updatedAt) {
		p.mu.Unlock()
		return false
	}
	p.value = value
	p.updatedAt = updatedAt
	p.mu.Unlock()

	p.notify(value)
	return true
}

// Subscribe registers a callback fired after every accepted write.
// The returned function removes the subscription.
func (p *Pref[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	p.subsMu.Lock()
	p.nextID++
	id := p.nextID
	p.subs[id] = fn
	p.subsMu.Unlock()

	return func() {
		p.subsMu.Lock()
		delete(p.subs, id)
		p.subsMu.Unlock()
	}
}

// OnPersist installs the persistence hook invoked after local writes.
func (p *Pref[T]) OnPersist(fn func(key string, value T, updatedAt time.Time)) {
	p.mu.Lock()
	p.persist = fn
	p.mu.Unlock()
}

func (p *Pref[T]) notify(value T) {
	p.subsMu.Lock()
	subs := make([]func(T), 0, len(p.subs))
	for _, fn := range p.subs {
		subs = append(subs, fn)
	}
	p.subsMu.Unlock()

	for _, fn := range subs {
		fn(value)
	}
}

// MarshalJSON encodes the key, value and timestamp for persistence.
func (p *Pref[T]) MarshalJSON() ([]byte, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return json.Marshal(struct {
		Key       string    `json:"key"`
		Value     T         `json:"value"`
		UpdatedAt time.Time `json:"updated_at"`
	}{p.key, p.value, p.updatedAt})
}

// UnmarshalJSON restores a persisted preference.
func (p *Pref[T]) UnmarshalJSON(data []byte) error {
	var tmp struct {
		Key       string    `json:"key"`
		Value     T         `json:"value"`
		UpdatedAt time.Time `json:"updated_at"`
	}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if tmp.Key != "" {
		p.key = tmp.Key
	}
	p.value = tmp.Value
	p.updatedAt = tmp.UpdatedAt
	return nil
}
