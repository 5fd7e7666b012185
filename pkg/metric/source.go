package metric

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Source produces the current metric set. Fetch may block (network,
// simulated delay) and may fail.
type Source interface {
	Fetch() ([]Metric, error)
}

// cacheKey is the single key used in the fetch cache.
const cacheKey = "metrics"

// MockSource is an in-memory Source simulating a slow metrics API.
// It is safe for concurrent use.
type MockSource struct {
	mu      sync.Mutex
	metrics []Metric
	delay   time.Duration
	failErr error

	// cache holds the last fetch result for the configured TTL, so
	// rapid page loads don't pay the simulated delay every time.
	cache *gocache.Cache
	ttl   time.Duration
}

// MockOption configures a MockSource.
type MockOption func(*MockSource)

// WithDelay sets the simulated network delay per uncached fetch.
func WithDelay(d time.Duration) MockOption {
	return func(s *MockSource) { s.delay = d }
}

// WithMetrics replaces the default metric set.
func WithMetrics(ms []Metric) MockOption {
	return func(s *MockSource) { s.metrics = ms }
}

// WithTTL enables caching of fetch results for the given duration.
func WithTTL(ttl time.Duration) MockOption {
	return func(s *MockSource) { s.ttl = ttl }
}

// NewMockSource creates a mock source with marketing-page defaults.
func NewMockSource(opts ...MockOption) *MockSource {
	s := &MockSource{
		metrics: []Metric{
			{ID: "users", Label: "Active Users", Value: 1247},
			{ID: "requests", Label: "Requests Served", Value: 1_800_000},
			{ID: "regions", Label: "Regions", Value: 12},
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.ttl > 0 {
		s.cache = gocache.New(s.ttl, 2*s.ttl)
	}
	return s
}

// Fetch returns a copy of the metric set after the simulated delay.
// A cached result (within TTL) skips the delay. Failure injection via
// FailWith takes effect on the next uncached fetch.
func (s *MockSource) Fetch() ([]Metric, error) {
	if s.cache != nil {
		if v, ok := s.cache.Get(cacheKey); ok {
			return v.([]Metric), nil
		}
	}

	s.mu.Lock()
	delay := s.delay
	failErr := s.failErr
	s.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	if failErr != nil {
		return nil, failErr
	}

	s.mu.Lock()
	out := make([]Metric, len(s.metrics))
	copy(out, s.metrics)
	s.mu.Unlock()

	if s.cache != nil {
		s.cache.Set(cacheKey, out, gocache.DefaultExpiration)
	}
	return out, nil
}

// FailWith makes subsequent uncached fetches fail with err.
func (s *MockSource) FailWith(err error) {
	s.mu.Lock()
	s.failErr = err
	s.mu.Unlock()
}

// Recover clears failure injection.
func (s *MockSource) Recover() {
	s.mu.Lock()
	s.failErr = nil
	s.mu.Unlock()
}

// SetValue updates a single metric's value, for demos and live streams.
// The cache is dropped so the next fetch observes the new value.
func (s *MockSource) SetValue(id string, value float64) {
	s.mu.Lock()
	for i := range s.metrics {
		if s.metrics[i].ID == id {
			s.metrics[i].Value = value
		}
	}
	s.mu.Unlock()

	if s.cache != nil {
		s.cache.Delete(cacheKey)
	}
}
