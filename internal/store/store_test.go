package store

import (
	"context"
	"sync"
	"testing"

	"github.com/grocerly/appcore/internal/state"
	"github.com/grocerly/appcore/pkg/types"
)

func TestDispatch_AdvancesState(t *testing.T) {
	s := New(nil)
	ctx := context.Background()

	s.Dispatch(ctx, state.Success(state.OpLogin, types.User{ID: 7}))

	snap := s.State()
	if !snap.Session.IsLoggedIn || snap.Session.User.ID != 7 {
		t.Fatalf("unexpected session: %+v", snap.Session)
	}
}

func TestEpoch_BumpsOnAuthBoundaries(t *testing.T) {
	s := New(nil)
	ctx := context.Background()

	if s.Epoch() != 1 {
		t.Fatalf("expected initial epoch 1, got %d", s.Epoch())
	}

	s.Dispatch(ctx, state.Request(state.OpLogin))
	if s.Epoch() != 1 {
		t.Fatalf("a request must not bump the epoch")
	}

	s.Dispatch(ctx, state.Success(state.OpLogin, types.User{ID: 7}))
	if s.Epoch() != 2 {
		t.Fatalf("login success must bump the epoch, got %d", s.Epoch())
	}

	s.Dispatch(ctx, state.Apply(state.OpLogout, nil))
	if s.Epoch() != 3 {
		t.Fatalf("logout must bump the epoch, got %d", s.Epoch())
	}
}

func TestDispatch_DropsStaleEpochSignals(t *testing.T) {
	s := New(nil)
	ctx := context.Background()

	s.Dispatch(ctx, state.Success(state.OpLogin, types.User{ID: 7}))
	stale := s.Epoch()

	// The session ends while a fetch launched under `stale` is in flight.
	s.Dispatch(ctx, state.Apply(state.OpLogout, nil))

	late := state.Success(state.OpFetchCart, []types.CartItem{{CartID: 1}}).WithEpoch(stale)
	s.Dispatch(ctx, late)

	if items := s.State().Cart.Items; len(items) != 0 {
		t.Fatalf("stale-epoch signal must be discarded, cart has %+v", items)
	}
}

func TestDispatch_UnfencedSignalsAlwaysApply(t *testing.T) {
	s := New(nil)
	ctx := context.Background()

	s.Dispatch(ctx, state.Apply(state.OpLogout, nil))
	s.Dispatch(ctx, state.Success(state.OpSearchProducts, []types.Product{{ProductID: 1}}).WithKey("4"))

	if len(s.State().Products.Lists["4"]) != 1 {
		t.Fatalf("unfenced signal should apply regardless of epoch")
	}
}

func TestSubscribe_NotifiesAndUnsubscribes(t *testing.T) {
	s := New(nil)
	ctx := context.Background()

	var mu sync.Mutex
	calls := 0
	unsubscribe := s.Subscribe(func(state.RootState) {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	s.Dispatch(ctx, state.Request(state.OpLogin))
	unsubscribe()
	s.Dispatch(ctx, state.Request(state.OpLogin))

	mu.Lock()
	defer mu.Unlock()
	if calls != 1 {
		t.Fatalf("expected exactly one notification, got %d", calls)
	}
}

func TestDispatch_SerializesConcurrentWriters(t *testing.T) {
	s := New(nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int64) {
			defer wg.Done()
			s.Dispatch(ctx, state.Success(state.OpSearchProducts, []types.Product{{ProductID: n}}).WithKey("4"))
		}(int64(i))
	}
	wg.Wait()

	// Whichever dispatch ran last wins; the list must be exactly one of the
	// dispatched payloads, never a torn mix.
	list := s.State().Products.Lists["4"]
	if len(list) != 1 {
		t.Fatalf("expected a single coherent payload, got %+v", list)
	}
}
