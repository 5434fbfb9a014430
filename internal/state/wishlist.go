package state

import (
	pkgerrors "github.com/grocerly/appcore/pkg/errors"
	"github.com/grocerly/appcore/pkg/types"
)

// WishlistState tracks the add-to-wishlist mutation status only; the fetched
// list lives in WishlistDataState.
type WishlistState struct {
	Loading bool
	Err     *pkgerrors.Error
	Message string
}

func NewWishlistState() WishlistState {
	return WishlistState{}
}

func ReduceWishlist(s WishlistState, sig Signal) WishlistState {
	if sig.Op != OpAddToWishlist {
		return s
	}
	switch sig.Phase {
	case PhaseRequest:
		s.Loading = true
		s.Err = nil
	case PhaseSuccess:
		s.Loading = false
		s.Err = nil
		if msg, ok := sig.Payload.(string); ok {
			s.Message = msg
		}
	case PhaseFailure:
		s.Loading = false
		s.Err = sig.Err
	}
	return s
}

// WishlistDataState holds the fetched wishlist items.
type WishlistDataState struct {
	Loading bool
	Err     *pkgerrors.Error
	Items   []types.WishlistItem
}

func NewWishlistDataState() WishlistDataState {
	return WishlistDataState{Items: []types.WishlistItem{}}
}

func ReduceWishlistData(s WishlistDataState, sig Signal) WishlistDataState {
	switch sig.Op {
	case OpFetchWishlist:
		switch sig.Phase {
		case PhaseRequest:
			s.Loading = true
			s.Err = nil
		case PhaseSuccess:
			items, ok := sig.Payload.([]types.WishlistItem)
			if !ok {
				return s
			}
			s.Loading = false
			s.Err = nil
			s.Items = items
		case PhaseFailure:
			s.Loading = false
			s.Err = sig.Err
			s.Items = []types.WishlistItem{}
		}
	case OpRemoveFromWishlist:
		switch sig.Phase {
		case PhaseRequest:
			s.Loading = true
			s.Err = nil
		case PhaseSuccess:
			// Eager local filter by product identity; no re-fetch needed for
			// this one path.
			productID, ok := sig.Payload.(int64)
			if !ok {
				return s
			}
			next := make([]types.WishlistItem, 0, len(s.Items))
			for _, item := range s.Items {
				if item.ProductID != productID {
					next = append(next, item)
				}
			}
			s.Loading = false
			s.Err = nil
			s.Items = next
		case PhaseFailure:
			s.Loading = false
			s.Err = sig.Err
			s.Items = []types.WishlistItem{}
		}
	case OpLogout:
		return NewWishlistDataState()
	}
	return s
}
