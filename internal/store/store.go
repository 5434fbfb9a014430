// Package store composes the slice reducers into a single state tree with
// one mutation entry point. Dispatch is serialized by a mutex: the moral
// equivalent of the single-threaded UI event loop the design assumes.
package store

import (
	"context"
	"sync"

	"github.com/grocerly/appcore/internal/state"
	"github.com/grocerly/appcore/pkg/logger"
)

// Listener observes every state transition. It is invoked outside the store
// lock with the post-dispatch snapshot.
type Listener func(state.RootState)

type Store struct {
	mu        sync.Mutex
	current   state.RootState
	epoch     uint64
	nextSubID int
	subs      map[int]Listener
	logg      *logger.Logger
}

func New(logg *logger.Logger) *Store {
	return &Store{
		current: state.NewRootState(),
		epoch:   1,
		subs:    map[int]Listener{},
		logg:    logg,
	}
}

// Epoch returns the current session epoch. Action creators capture it when an
// authenticated operation launches and stamp their result signals with it.
func (s *Store) Epoch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.epoch
}

// State returns a snapshot of the tree. Slices inside the snapshot are shared
// with the store and must be treated as read-only; reducers replace rather
// than mutate them, so a held snapshot never changes underneath the caller.
func (s *Store) State() state.RootState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Dispatch applies the signal through the root reducer. Signals fenced to a
// stale session epoch are discarded: a late-arriving response for a
// since-logged-out session must not write its data into the new session.
func (s *Store) Dispatch(ctx context.Context, sig state.Signal) {
	s.mu.Lock()

	if sig.Epoch != 0 && sig.Epoch != s.epoch {
		s.mu.Unlock()
		if s.logg != nil {
			ctx = s.logg.WithOperation(ctx, string(sig.Op))
			s.logg.Warn(ctx, "discarding signal from stale session epoch")
		}
		return
	}

	s.current = state.Reduce(s.current, sig)

	if bumpsEpoch(sig) {
		s.epoch++
	}

	snapshot := s.current
	listeners := make([]Listener, 0, len(s.subs))
	for _, fn := range s.subs {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}

// Subscribe registers a listener and returns its unsubscribe func.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// bumpsEpoch reports whether the signal changes the session identity:
// a fresh login/signup or a logout invalidates everything launched before it.
func bumpsEpoch(sig state.Signal) bool {
	if sig.Op == state.OpLogout {
		return true
	}
	if (sig.Op == state.OpLogin || sig.Op == state.OpSignup) && sig.Phase == state.PhaseSuccess {
		return true
	}
	return false
}
