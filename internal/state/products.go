package state

import (
	pkgerrors "github.com/grocerly/appcore/pkg/errors"
	"github.com/grocerly/appcore/pkg/types"
)

// ProductsState caches catalog lists keyed by category id (decimal string)
// or the free-text search sentinel. Keys are disjoint: a fetch for one key
// only ever replaces that key's list.
type ProductsState struct {
	Loading bool
	Err     *pkgerrors.Error
	Lists   map[string][]types.Product
}

func NewProductsState() ProductsState {
	return ProductsState{Lists: map[string][]types.Product{}}
}

func ReduceProducts(s ProductsState, sig Signal) ProductsState {
	if sig.Op != OpSearchProducts {
		return s
	}
	switch sig.Phase {
	case PhaseRequest:
		s.Loading = true
		s.Err = nil
	case PhaseSuccess:
		list, ok := sig.Payload.([]types.Product)
		if !ok {
			return s
		}
		next := make(map[string][]types.Product, len(s.Lists)+1)
		for k, v := range s.Lists {
			next[k] = v
		}
		next[sig.Key] = list
		s.Lists = next
		s.Loading = false
		s.Err = nil
	case PhaseFailure:
		// Other keys keep their data; a failed category fetch must not blank
		// out unrelated, already-loaded categories.
		s.Loading = false
		s.Err = sig.Err
	}
	return s
}
