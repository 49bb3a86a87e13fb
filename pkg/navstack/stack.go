package navstack

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/ledgerline/backtrail/pkg/types"
)

// StackKey is the store key holding the serialized stack for a session.
// The version suffix invalidates stored data across format changes: bumping
// it makes old entries unreadable, and hydration treats them as absent.
const StackKey = "navigation-stack:v1"

// Entry represents a single visited route on the navigation stack.
// Entries are immutable once created; the stack owns them exclusively.
type Entry struct {
	Path string `json:"path"`
}

// Option configures a Stack.
type Option func(*Stack)

// WithLogger sets the logger used to report swallowed storage errors.
// Without it the stack is silent.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Stack) {
		s.logger = logger
	}
}

// Stack is an ordered navigation history, newest entry last. It is
// synchronized with a types.Store: hydrated once from stored state and
// persisted after every mutation. Storage failures never surface to
// callers; the in-memory state stays authoritative for the session.
//
// Mutations notify subscribers so independently rendered consumers observe
// the same state. All methods are safe for concurrent use.
type Stack struct {
	mu       sync.Mutex
	store    types.Store
	session  string
	entries  []Entry
	hydrated bool
	logger   *slog.Logger

	subs    map[int]func()
	nextSub int
}

// New creates an empty Stack bound to the given store and session.
// A nil store yields a purely in-memory stack.
func New(store types.Store, session string, opts ...Option) *Stack {
	s := &Stack{
		store:   store,
		session: session,
		entries: make([]Entry, 0),
		subs:    make(map[int]func()),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Hydrate populates the stack from stored state, oldest first. It runs at
// most once per Stack lifetime; later calls are no-ops. Missing, malformed,
// or unreadable stored data yields an empty stack.
func (s *Stack) Hydrate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hydrated {
		return
	}
	s.hydrated = true

	if s.store == nil {
		return
	}

	data, err := s.store.Get(s.session, StackKey)
	if err != nil {
		if !errors.Is(err, types.ErrKeyNotFound) {
			s.logStorage("hydrate navigation stack", err)
		}
		return
	}

	var paths []string
	if err := json.Unmarshal(data, &paths); err != nil {
		// Malformed stored data counts as absent.
		s.logStorage("decode stored navigation stack", err)
		return
	}

	entries := make([]Entry, 0, len(paths))
	for _, p := range paths {
		entries = append(entries, Entry{Path: p})
	}
	s.entries = entries
}

// Push appends a new entry for path unless the top entry already has the
// same path. Consecutive duplicates never grow the stack.
func (s *Stack) Push(path string) {
	s.mu.Lock()
	if n := len(s.entries); n > 0 && s.entries[n-1].Path == path {
		s.mu.Unlock()
		return
	}
	s.entries = append(s.entries, Entry{Path: path})
	s.persistLocked()
	s.mu.Unlock()

	s.notify()
}

// Pop removes and returns the top entry, or nil when the stack is empty.
// Pop mutates navigation state; call it from event handlers, never while
// resolving link targets during render (use Peek there).
func (s *Stack) Pop() *Entry {
	s.mu.Lock()
	if len(s.entries) == 0 {
		s.mu.Unlock()
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	s.persistLocked()
	s.mu.Unlock()

	s.notify()
	return &entry
}

// Peek returns the top entry without removing it, or nil when the stack is
// empty. currentPath is call-site bookkeeping only: Peek returns the top
// unconditionally and never filters on it. Callers that must not treat the
// current location as its own back target compare the result themselves, as
// Resolver.BackDestination does.
func (s *Stack) Peek(currentPath string) *Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	return &entry
}

// Size returns the current entry count.
func (s *Stack) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Entries returns a snapshot of the stored paths, oldest first.
func (s *Stack) Entries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pathsLocked()
}

// Clear removes all entries and persists the empty stack.
func (s *Stack) Clear() {
	s.mu.Lock()
	if len(s.entries) == 0 {
		s.mu.Unlock()
		return
	}
	s.entries = s.entries[:0]
	s.persistLocked()
	s.mu.Unlock()

	s.notify()
}

// Subscribe registers fn to run after every mutation. The returned cancel
// function removes the subscription.
func (s *Stack) Subscribe(fn func()) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// pathsLocked returns the entry paths oldest first. Caller holds s.mu.
func (s *Stack) pathsLocked() []string {
	paths := make([]string, len(s.entries))
	for i, e := range s.entries {
		paths[i] = e.Path
	}
	return paths
}

// persistLocked writes the full stack to the store as a JSON array of path
// strings, oldest first. Failures are logged and dropped; the in-memory
// stack remains the source of truth. Caller holds s.mu.
func (s *Stack) persistLocked() {
	if s.store == nil {
		return
	}

	data, err := json.Marshal(s.pathsLocked())
	if err != nil {
		s.logStorage("encode navigation stack", err)
		return
	}
	if err := s.store.Set(s.session, StackKey, data); err != nil {
		s.logStorage("persist navigation stack", err)
	}
}

// notify runs subscribers outside the lock so they may read the stack.
func (s *Stack) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func (s *Stack) logStorage(msg string, err error) {
	if s.logger != nil {
		s.logger.Debug(msg, "session", s.session, "error", err)
	}
}
