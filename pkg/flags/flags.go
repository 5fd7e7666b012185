package flags

import (
	"sort"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/atrium-ui/atrium/internal/errors"
)

// Flag is a single feature toggle, optionally carrying a targeting rule.
type Flag struct {
	// Key identifies the flag.
	Key string

	// Enabled is the master toggle. A disabled flag is off regardless
	// of its rule.
	Enabled bool

	// Rule is an optional expr-lang expression. When set, the flag is
	// on for a given environment only if the rule evaluates to true.
	Rule string
}

// Store holds named flags. It is passed explicitly to components that
// read it and is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	flags    map[string]Flag
	programs map[string]*vm.Program

	subsMu sync.Mutex
	subs   map[uint64]func(Flag)
	nextID uint64
}

// New creates an empty flag store.
func New() *Store {
	return &Store{
		flags:    make(map[string]Flag),
		programs: make(map[string]*vm.Program),
		subs:     make(map[uint64]func(Flag)),
	}
}

// Set defines or updates a plain toggle without a rule.
func (s *Store) Set(key string, enabled bool) {
	f := Flag{Key: key, Enabled: enabled}

	s.mu.Lock()
	s.flags[key] = f
	delete(s.programs, key)
	s.mu.Unlock()

	s.notify(f)
}

// Define adds a flag, compiling its rule if present.
func (s *Store) Define(f Flag) error {
	var program *vm.Program
	if f.Rule != "" {
		var err error
		program, err = expr.Compile(f.Rule, expr.AsBool(), expr.AllowUndefinedVariables())
		if err != nil {
			return errors.Newf(errors.CategoryConfig, "flag %q has an invalid rule: %v", f.Key, err)
		}
	}

	s.mu.Lock()
	s.flags[f.Key] = f
	if program != nil {
		s.programs[f.Key] = program
	} else {
		delete(s.programs, f.Key)
	}
	s.mu.Unlock()

	s.notify(f)
	return nil
}

// Toggle flips a flag's master toggle and returns the new state.
// Toggling an undefined key defines it as enabled.
func (s *Store) Toggle(key string) bool {
	s.mu.Lock()
	f, ok := s.flags[key]
	if !ok {
		f = Flag{Key: key}
	}
	f.Enabled = !f.Enabled
	s.flags[key] = f
	enabled := f.Enabled
	s.mu.Unlock()

	s.notify(f)
	return enabled
}

// Enabled reports the master toggle. Rules are ignored; use EnabledFor
// to evaluate targeting.
func (s *Store) Enabled(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.flags[key].Enabled
}

// EnabledFor reports whether the flag is on for the given environment.
// A flag with a rule must both be enabled and have its rule evaluate to
// true. Rule errors fail closed.
func (s *Store) EnabledFor(key string, env map[string]any) bool {
	s.mu.RLock()
	f, ok := s.flags[key]
	program := s.programs[key]
	s.mu.RUnlock()

	if !ok || !f.Enabled {
		return false
	}
	if program == nil {
		return true
	}

	out, err := expr.Run(program, env)
	if err != nil {
		return false
	}
	result, ok := out.(bool)
	return ok && result
}

// Keys returns all defined flag keys, sorted.
func (s *Store) Keys() []string {
	s.mu.RLock()
	keys := make([]string, 0, len(s.flags))
	for k := range s.flags {
		keys = append(keys, k)
	}
	s.mu.RUnlock()

	sort.Strings(keys)
	return keys
}

// Subscribe registers a callback invoked after every flag change.
// The returned function removes the subscription.
func (s *Store) Subscribe(fn func(Flag)) (unsubscribe func()) {
	s.subsMu.Lock()
	s.nextID++
	id := s.nextID
	s.subs[id] = fn
	s.subsMu.Unlock()

	return func() {
		s.subsMu.Lock()
		delete(s.subs, id)
		s.subsMu.Unlock()
	}
}

// notify invokes subscribers without holding the flag lock.
func (s *Store) notify(f Flag) {
	s.subsMu.Lock()
	subs := make([]func(Flag), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subsMu.Unlock()

	for _, fn := range subs {
		fn(f)
	}
}
