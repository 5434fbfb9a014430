package state

import (
	"testing"

	pkgerrors "github.com/grocerly/appcore/pkg/errors"
	"github.com/grocerly/appcore/pkg/types"
)

func TestReduceProducts_KeysAreIndependent(t *testing.T) {
	s := NewProductsState()

	s = ReduceProducts(s, Success(OpSearchProducts, []types.Product{{ProductID: 1, Name: "Bananas"}}).WithKey("4"))
	s = ReduceProducts(s, Success(OpSearchProducts, []types.Product{{ProductID: 2, Name: "Milk"}}).WithKey(types.SearchResultsKey))

	if len(s.Lists["4"]) != 1 || s.Lists["4"][0].Name != "Bananas" {
		t.Fatalf("category list clobbered: %+v", s.Lists)
	}
	if len(s.Lists[types.SearchResultsKey]) != 1 || s.Lists[types.SearchResultsKey][0].Name != "Milk" {
		t.Fatalf("search list wrong: %+v", s.Lists)
	}

	// A refresh of one key replaces only that key.
	s = ReduceProducts(s, Success(OpSearchProducts, []types.Product{{ProductID: 3, Name: "Apples"}}).WithKey("4"))
	if s.Lists["4"][0].Name != "Apples" {
		t.Fatalf("expected category refresh, got %+v", s.Lists["4"])
	}
	if s.Lists[types.SearchResultsKey][0].Name != "Milk" {
		t.Fatalf("search results must survive a category refresh")
	}
}

func TestReduceProducts_FailureKeepsLoadedLists(t *testing.T) {
	s := NewProductsState()
	s = ReduceProducts(s, Success(OpSearchProducts, []types.Product{{ProductID: 1}}).WithKey("4"))

	s = ReduceProducts(s, Failure(OpSearchProducts, pkgerrors.New(pkgerrors.KindTransport, "offline")).WithKey("9"))

	if s.Err == nil || s.Loading {
		t.Fatalf("failure status not recorded: %+v", s)
	}
	if len(s.Lists["4"]) != 1 {
		t.Fatalf("failure for one key must not blank other keys: %+v", s.Lists)
	}
}

func TestReduceProducts_SuccessDoesNotMutateOldMap(t *testing.T) {
	s := NewProductsState()
	s = ReduceProducts(s, Success(OpSearchProducts, []types.Product{{ProductID: 1}}).WithKey("4"))
	held := s.Lists

	_ = ReduceProducts(s, Success(OpSearchProducts, []types.Product{{ProductID: 2}}).WithKey("4"))

	if held["4"][0].ProductID != 1 {
		t.Fatalf("reducer mutated a held snapshot map")
	}
}
