package state

import (
	"testing"

	pkgerrors "github.com/grocerly/appcore/pkg/errors"
	"github.com/grocerly/appcore/pkg/types"
)

func TestReduceOrders_ListAndDetailsAreIndependent(t *testing.T) {
	s := NewOrdersState()

	s = ReduceOrders(s, Request(OpFetchOrders))
	s = ReduceOrders(s, Request(OpFetchOrderDetails))
	if !s.ListLoading || !s.DetailsLoading {
		t.Fatalf("both reads should be in flight: %+v", s)
	}

	s = ReduceOrders(s, Success(OpFetchOrders, []types.OrderSummary{{OrderID: 1}}))
	if s.ListLoading || !s.DetailsLoading {
		t.Fatalf("list completion must not settle the details read: %+v", s)
	}

	s = ReduceOrders(s, Failure(OpFetchOrderDetails, pkgerrors.New(pkgerrors.KindTransport, "offline")))
	if s.DetailsLoading || s.DetailsErr == nil {
		t.Fatalf("details failure not recorded: %+v", s)
	}
	if s.ListErr != nil || len(s.List) != 1 {
		t.Fatalf("details failure must not touch the list: %+v", s)
	}
}

func TestReduceOrders_DetailsSuccessReplacesSlot(t *testing.T) {
	s := NewOrdersState()

	s = ReduceOrders(s, Success(OpFetchOrderDetails, types.OrderDetails{OrderID: 3}))
	if s.Details == nil || s.Details.OrderID != 3 {
		t.Fatalf("expected details stored: %+v", s.Details)
	}

	s = ReduceOrders(s, Success(OpFetchOrderDetails, types.OrderDetails{OrderID: 9}))
	if s.Details.OrderID != 9 {
		t.Fatalf("the detail cache is single-slot, expected replacement: %+v", s.Details)
	}

	s = ReduceOrders(s, Failure(OpFetchOrderDetails, pkgerrors.New(pkgerrors.KindApplication, "order not found")))
	if s.Details != nil {
		t.Fatalf("details failure must clear the slot")
	}
}

func TestReduceOrders_PlaceOrderFailureKeepsHistory(t *testing.T) {
	s := NewOrdersState()
	s = ReduceOrders(s, Success(OpFetchOrders, []types.OrderSummary{{OrderID: 1}}))

	s = ReduceOrders(s, Failure(OpPlaceOrder, pkgerrors.New(pkgerrors.KindTransport, "offline")))

	if s.ListErr == nil {
		t.Fatalf("expected failure recorded")
	}
	if len(s.List) != 1 {
		t.Fatalf("a failed placement must not blank already-loaded history: %+v", s.List)
	}
}

func TestReduceOrders_LogoutResets(t *testing.T) {
	s := NewOrdersState()
	s = ReduceOrders(s, Success(OpFetchOrders, []types.OrderSummary{{OrderID: 1}}))
	s = ReduceOrders(s, Success(OpFetchOrderDetails, types.OrderDetails{OrderID: 1}))

	s = ReduceOrders(s, Apply(OpLogout, nil))

	if len(s.List) != 0 || s.Details != nil {
		t.Fatalf("logout must reset the slice: %+v", s)
	}
}
