package state

import (
	pkgerrors "github.com/grocerly/appcore/pkg/errors"
	"github.com/grocerly/appcore/pkg/types"
)

// CartState is the server-owned cart snapshot. Mutations are optimistic at
// most until the authoritative re-fetch lands.
type CartState struct {
	Loading bool
	Err     *pkgerrors.Error
	Items   []types.CartItem
}

func NewCartState() CartState {
	return CartState{Items: []types.CartItem{}}
}

func ReduceCart(s CartState, sig Signal) CartState {
	switch sig.Op {
	case OpAddToCart, OpFetchCart, OpUpdateCartQuantity, OpRemoveCartItem:
		switch sig.Phase {
		case PhaseRequest:
			s.Loading = true
			s.Err = nil
		case PhaseSuccess:
			s.Loading = false
			s.Err = nil
			if items, ok := sig.Payload.([]types.CartItem); ok {
				s.Items = items
			}
		case PhaseFailure:
			s.Loading = false
			s.Err = sig.Err
			s.Items = []types.CartItem{}
		}
	case OpAdjustCartQuantity:
		payload, ok := sig.Payload.(AdjustCartQuantityPayload)
		if !ok {
			return s
		}
		next := make([]types.CartItem, len(s.Items))
		for i, item := range s.Items {
			if item.ProductID == payload.ProductID {
				item.Quantity = clampQuantity(item.Quantity + payload.Delta)
			}
			next[i] = item
		}
		s.Items = next
	case OpDropCartItem:
		payload, ok := sig.Payload.(DropCartItemPayload)
		if !ok {
			return s
		}
		next := make([]types.CartItem, 0, len(s.Items))
		for _, item := range s.Items {
			if item.CartID != payload.CartID {
				next = append(next, item)
			}
		}
		s.Items = next
	case OpLogout:
		return NewCartState()
	}
	return s
}

func clampQuantity(q int) int {
	if q < 1 {
		return 1
	}
	return q
}
