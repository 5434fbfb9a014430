package state

import (
	"testing"

	pkgerrors "github.com/grocerly/appcore/pkg/errors"
	"github.com/grocerly/appcore/pkg/types"
)

func cartWithItems(items ...types.CartItem) CartState {
	s := NewCartState()
	s.Items = items
	return s
}

func TestReduceCart_Lifecycle(t *testing.T) {
	s := NewCartState()

	s = ReduceCart(s, Request(OpFetchCart))
	if !s.Loading || s.Err != nil {
		t.Fatalf("request phase: loading=%v err=%v", s.Loading, s.Err)
	}

	items := []types.CartItem{{CartID: 1, ProductID: 10, Quantity: 2}}
	s = ReduceCart(s, Success(OpFetchCart, items))
	if s.Loading || s.Err != nil || len(s.Items) != 1 {
		t.Fatalf("success phase: %+v", s)
	}

	s = ReduceCart(s, Failure(OpFetchCart, pkgerrors.New(pkgerrors.KindTransport, "offline")))
	if s.Loading || s.Err == nil {
		t.Fatalf("failure phase: %+v", s)
	}
	if len(s.Items) != 0 {
		t.Fatalf("failure must reset items, got %+v", s.Items)
	}
}

func TestReduceCart_AdjustQuantityClampsAtOne(t *testing.T) {
	s := cartWithItems(
		types.CartItem{CartID: 1, ProductID: 10, Quantity: 2},
		types.CartItem{CartID: 2, ProductID: 20, Quantity: 5},
	)

	s = ReduceCart(s, Apply(OpAdjustCartQuantity, AdjustCartQuantityPayload{ProductID: 10, Delta: -7}))

	if s.Items[0].Quantity != 1 {
		t.Fatalf("expected clamp to one, got %d", s.Items[0].Quantity)
	}
	if s.Items[1].Quantity != 5 {
		t.Fatalf("other lines must be untouched, got %d", s.Items[1].Quantity)
	}
}

func TestReduceCart_AdjustQuantityIncrements(t *testing.T) {
	s := cartWithItems(types.CartItem{CartID: 1, ProductID: 10, Quantity: 1})

	s = ReduceCart(s, Apply(OpAdjustCartQuantity, AdjustCartQuantityPayload{ProductID: 10, Delta: 3}))

	if s.Items[0].Quantity != 4 {
		t.Fatalf("expected quantity 4, got %d", s.Items[0].Quantity)
	}
}

func TestReduceCart_AdjustQuantityDoesNotMutateOldSlice(t *testing.T) {
	original := cartWithItems(types.CartItem{CartID: 1, ProductID: 10, Quantity: 2})
	held := original.Items

	_ = ReduceCart(original, Apply(OpAdjustCartQuantity, AdjustCartQuantityPayload{ProductID: 10, Delta: 1}))

	if held[0].Quantity != 2 {
		t.Fatalf("reducer mutated a held snapshot: %+v", held)
	}
}

func TestReduceCart_DropItemFiltersByCartID(t *testing.T) {
	s := cartWithItems(
		types.CartItem{CartID: 1, ProductID: 10},
		types.CartItem{CartID: 2, ProductID: 20},
	)

	s = ReduceCart(s, Apply(OpDropCartItem, DropCartItemPayload{CartID: 1}))

	if len(s.Items) != 1 || s.Items[0].CartID != 2 {
		t.Fatalf("unexpected items after drop: %+v", s.Items)
	}
}

func TestReduceCart_LogoutResets(t *testing.T) {
	s := cartWithItems(types.CartItem{CartID: 1})
	s.Err = pkgerrors.New(pkgerrors.KindTransport, "x")

	s = ReduceCart(s, Apply(OpLogout, nil))

	if len(s.Items) != 0 || s.Err != nil || s.Loading {
		t.Fatalf("logout must reset the slice, got %+v", s)
	}
}

func TestReduceCart_IgnoresForeignOps(t *testing.T) {
	s := cartWithItems(types.CartItem{CartID: 1})

	next := ReduceCart(s, Request(OpFetchOrders))

	if next.Loading || len(next.Items) != 1 {
		t.Fatalf("foreign op must leave the slice unchanged: %+v", next)
	}
}
