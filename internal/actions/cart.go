package actions

import (
	"context"

	"github.com/grocerly/appcore/internal/state"
	pkgerrors "github.com/grocerly/appcore/pkg/errors"
)

// AddToCart puts qty of the product into the signed-in user's cart. Both
// identifiers are required before any network call. The returned effects
// re-fetch the authoritative cart; run them with Run.
func (d *Dispatcher) AddToCart(ctx context.Context, productID int64, qty int) ([]Effect, error) {
	epoch := d.store.Epoch()
	userID := d.sessionUserID()
	if productID == 0 {
		return nil, d.fail(ctx, state.OpAddToCart, epoch,
			pkgerrors.New(pkgerrors.KindValidation, "a product is required"))
	}
	if userID == 0 {
		return nil, d.fail(ctx, state.OpAddToCart, epoch,
			pkgerrors.New(pkgerrors.KindValidation, "please sign in to add items to your cart"))
	}
	if qty < 1 {
		qty = 1
	}

	d.store.Dispatch(ctx, state.Request(state.OpAddToCart).WithEpoch(epoch))

	result, err := d.api.AddToCart(ctx, userID, productID, qty)
	if err != nil {
		return nil, d.fail(ctx, state.OpAddToCart, epoch, pkgerrors.Normalize(pkgerrors.KindTransport, err))
	}
	// "exists" means the product was already in the cart; idempotent success.
	if !result.Succeeded() {
		return nil, d.fail(ctx, state.OpAddToCart, epoch, pkgerrors.New(pkgerrors.KindApplication, result.Message))
	}

	d.store.Dispatch(ctx, state.Success(state.OpAddToCart, result.Message).WithEpoch(epoch))
	return []Effect{FetchCartEffect{UserID: userID}}, nil
}

// FetchCart loads the authoritative cart snapshot into the cart slice.
func (d *Dispatcher) FetchCart(ctx context.Context, userID int64) error {
	epoch := d.store.Epoch()
	if userID == 0 {
		return d.fail(ctx, state.OpFetchCart, epoch,
			pkgerrors.New(pkgerrors.KindValidation, "a signed-in user is required to load the cart"))
	}

	d.store.Dispatch(ctx, state.Request(state.OpFetchCart).WithEpoch(epoch))

	result, err := d.api.FetchCart(ctx, userID)
	if err != nil {
		return d.fail(ctx, state.OpFetchCart, epoch, pkgerrors.Normalize(pkgerrors.KindTransport, err))
	}
	if !result.Succeeded() {
		return d.fail(ctx, state.OpFetchCart, epoch, pkgerrors.New(pkgerrors.KindApplication, result.Message))
	}

	d.store.Dispatch(ctx, state.Success(state.OpFetchCart, result.Payload).WithEpoch(epoch))
	return nil
}

// UpdateCartItemQuantity shifts one cart line's quantity by delta. The local
// slice is adjusted eagerly (clamped at one); the server mutation plus the
// returned re-fetch effect are authoritative.
func (d *Dispatcher) UpdateCartItemQuantity(ctx context.Context, productID int64, delta int) ([]Effect, error) {
	epoch := d.store.Epoch()
	userID := d.sessionUserID()
	if productID == 0 || userID == 0 {
		return nil, d.fail(ctx, state.OpUpdateCartQuantity, epoch,
			pkgerrors.New(pkgerrors.KindValidation, "a signed-in user and product are required"))
	}

	d.store.Dispatch(ctx, state.Apply(state.OpAdjustCartQuantity, state.AdjustCartQuantityPayload{
		ProductID: productID,
		Delta:     delta,
	}).WithEpoch(epoch))
	d.store.Dispatch(ctx, state.Request(state.OpUpdateCartQuantity).WithEpoch(epoch))

	result, err := d.api.UpdateCartQuantity(ctx, userID, productID, delta)
	if err != nil {
		return nil, d.fail(ctx, state.OpUpdateCartQuantity, epoch, pkgerrors.Normalize(pkgerrors.KindTransport, err))
	}
	if !result.Succeeded() {
		return nil, d.fail(ctx, state.OpUpdateCartQuantity, epoch, pkgerrors.New(pkgerrors.KindApplication, result.Message))
	}

	d.store.Dispatch(ctx, state.Success(state.OpUpdateCartQuantity, result.Message).WithEpoch(epoch))
	return []Effect{FetchCartEffect{UserID: userID}}, nil
}

// RemoveCartItem drops one cart line by cart identity, locally first, then on
// the server, then via the returned authoritative re-fetch.
func (d *Dispatcher) RemoveCartItem(ctx context.Context, cartID int64) ([]Effect, error) {
	epoch := d.store.Epoch()
	userID := d.sessionUserID()
	if cartID == 0 || userID == 0 {
		return nil, d.fail(ctx, state.OpRemoveCartItem, epoch,
			pkgerrors.New(pkgerrors.KindValidation, "a signed-in user and cart item are required"))
	}

	d.store.Dispatch(ctx, state.Apply(state.OpDropCartItem, state.DropCartItemPayload{CartID: cartID}).WithEpoch(epoch))
	d.store.Dispatch(ctx, state.Request(state.OpRemoveCartItem).WithEpoch(epoch))

	result, err := d.api.RemoveCartItem(ctx, userID, cartID)
	if err != nil {
		return nil, d.fail(ctx, state.OpRemoveCartItem, epoch, pkgerrors.Normalize(pkgerrors.KindTransport, err))
	}
	if !result.Succeeded() {
		return nil, d.fail(ctx, state.OpRemoveCartItem, epoch, pkgerrors.New(pkgerrors.KindApplication, result.Message))
	}

	d.store.Dispatch(ctx, state.Success(state.OpRemoveCartItem, result.Message).WithEpoch(epoch))
	return []Effect{FetchCartEffect{UserID: userID}}, nil
}
