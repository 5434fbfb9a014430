// Package state holds the application state tree and the pure reducers that
// advance it. Reducers never perform I/O, never read the clock, and never
// panic; a signal they do not recognize leaves the slice unchanged.
package state

import (
	pkgerrors "github.com/grocerly/appcore/pkg/errors"
)

// Op names an operation whose lifecycle flows through the store.
type Op string

const (
	OpSignup      Op = "signup"
	OpLogin       Op = "login"
	OpEditProfile Op = "edit_profile"

	OpSearchProducts Op = "search_products"

	OpAddToCart          Op = "add_to_cart"
	OpFetchCart          Op = "fetch_cart"
	OpUpdateCartQuantity Op = "update_cart_quantity"
	OpRemoveCartItem     Op = "remove_cart_item"

	OpAddToWishlist      Op = "add_to_wishlist"
	OpFetchWishlist      Op = "fetch_wishlist"
	OpRemoveFromWishlist Op = "remove_from_wishlist"

	OpPlaceOrder        Op = "place_order"
	OpFetchOrders       Op = "fetch_orders"
	OpFetchOrderDetails Op = "fetch_order_details"

	OpSubmitContact Op = "submit_contact"

	OpFetchAdminUsers    Op = "fetch_admin_users"
	OpFetchAdminProducts Op = "fetch_admin_products"
	OpFetchAdminContacts Op = "fetch_admin_contacts"

	// Synchronous ops applied in a single dispatch, no network lifecycle.
	OpLogout             Op = "logout"
	OpAdjustCartQuantity Op = "adjust_cart_quantity"
	OpDropCartItem       Op = "drop_cart_item"
)

// Phase is the lifecycle stage of a signal.
type Phase string

const (
	PhaseRequest Phase = "request"
	PhaseSuccess Phase = "success"
	PhaseFailure Phase = "failure"
	// PhaseApply marks synchronous signals that carry their whole effect in
	// one dispatch.
	PhaseApply Phase = "apply"
)

// Signal is a named, payload-carrying event dispatched into the store.
// Epoch is the session epoch captured when the operation was launched;
// zero means the signal is not fenced to a session.
type Signal struct {
	Op      Op
	Phase   Phase
	Key     string
	Payload any
	Err     *pkgerrors.Error
	Epoch   uint64
}

func Request(op Op) Signal {
	return Signal{Op: op, Phase: PhaseRequest}
}

func Success(op Op, payload any) Signal {
	return Signal{Op: op, Phase: PhaseSuccess, Payload: payload}
}

func Failure(op Op, err *pkgerrors.Error) Signal {
	return Signal{Op: op, Phase: PhaseFailure, Err: err}
}

func Apply(op Op, payload any) Signal {
	return Signal{Op: op, Phase: PhaseApply, Payload: payload}
}

// WithKey pins the signal to a product-cache key.
func (s Signal) WithKey(key string) Signal {
	s.Key = key
	return s
}

// WithEpoch fences the signal to the session epoch it was launched under.
func (s Signal) WithEpoch(epoch uint64) Signal {
	s.Epoch = epoch
	return s
}

// AdjustCartQuantityPayload asks the cart slice to shift one item's quantity
// by Delta, clamped to the floor of one.
type AdjustCartQuantityPayload struct {
	ProductID int64
	Delta     int
}

// DropCartItemPayload removes one line from the cart slice by cart identity.
type DropCartItemPayload struct {
	CartID int64
}
