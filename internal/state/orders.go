package state

import (
	pkgerrors "github.com/grocerly/appcore/pkg/errors"
	"github.com/grocerly/appcore/pkg/types"
)

// OrdersState keeps two independent loading/error pairs: the history list and
// the single-slot detail cache can be in flight at the same time without one
// clobbering the other's status.
type OrdersState struct {
	ListLoading bool
	ListErr     *pkgerrors.Error
	List        []types.OrderSummary

	DetailsLoading bool
	DetailsErr     *pkgerrors.Error
	Details        *types.OrderDetails
}

func NewOrdersState() OrdersState {
	return OrdersState{List: []types.OrderSummary{}}
}

func ReduceOrders(s OrdersState, sig Signal) OrdersState {
	switch sig.Op {
	case OpFetchOrders, OpPlaceOrder:
		switch sig.Phase {
		case PhaseRequest:
			s.ListLoading = true
			s.ListErr = nil
		case PhaseSuccess:
			s.ListLoading = false
			s.ListErr = nil
			if list, ok := sig.Payload.([]types.OrderSummary); ok {
				s.List = list
			}
		case PhaseFailure:
			s.ListLoading = false
			s.ListErr = sig.Err
			if sig.Op == OpFetchOrders {
				s.List = []types.OrderSummary{}
			}
		}
	case OpFetchOrderDetails:
		switch sig.Phase {
		case PhaseRequest:
			s.DetailsLoading = true
			s.DetailsErr = nil
		case PhaseSuccess:
			details, ok := sig.Payload.(types.OrderDetails)
			if !ok {
				return s
			}
			s.DetailsLoading = false
			s.DetailsErr = nil
			s.Details = &details
		case PhaseFailure:
			s.DetailsLoading = false
			s.DetailsErr = sig.Err
			s.Details = nil
		}
	case OpLogout:
		return NewOrdersState()
	}
	return s
}
