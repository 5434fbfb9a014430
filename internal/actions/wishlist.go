package actions

import (
	"context"

	"github.com/grocerly/appcore/internal/state"
	pkgerrors "github.com/grocerly/appcore/pkg/errors"
)

// AddToWishlist saves a product to the signed-in user's wishlist. An "exists"
// response counts as success so re-tapping the heart is harmless.
func (d *Dispatcher) AddToWishlist(ctx context.Context, productID int64) ([]Effect, error) {
	epoch := d.store.Epoch()
	userID := d.sessionUserID()
	if productID == 0 || userID == 0 {
		return nil, d.fail(ctx, state.OpAddToWishlist, epoch,
			pkgerrors.New(pkgerrors.KindValidation, "please sign in to save items to your wishlist"))
	}

	d.store.Dispatch(ctx, state.Request(state.OpAddToWishlist).WithEpoch(epoch))

	result, err := d.api.AddToWishlist(ctx, userID, productID)
	if err != nil {
		return nil, d.fail(ctx, state.OpAddToWishlist, epoch, pkgerrors.Normalize(pkgerrors.KindTransport, err))
	}
	if !result.Succeeded() {
		return nil, d.fail(ctx, state.OpAddToWishlist, epoch, pkgerrors.New(pkgerrors.KindApplication, result.Message))
	}

	d.store.Dispatch(ctx, state.Success(state.OpAddToWishlist, result.Message).WithEpoch(epoch))
	return []Effect{FetchWishlistEffect{UserID: userID}}, nil
}

// FetchWishlist loads the user's saved items into the wishlist data slice.
func (d *Dispatcher) FetchWishlist(ctx context.Context, userID int64) error {
	epoch := d.store.Epoch()
	if userID == 0 {
		return d.fail(ctx, state.OpFetchWishlist, epoch,
			pkgerrors.New(pkgerrors.KindValidation, "a signed-in user is required to load the wishlist"))
	}

	d.store.Dispatch(ctx, state.Request(state.OpFetchWishlist).WithEpoch(epoch))

	result, err := d.api.FetchWishlist(ctx, userID)
	if err != nil {
		return d.fail(ctx, state.OpFetchWishlist, epoch, pkgerrors.Normalize(pkgerrors.KindTransport, err))
	}
	if !result.Succeeded() {
		return d.fail(ctx, state.OpFetchWishlist, epoch, pkgerrors.New(pkgerrors.KindApplication, result.Message))
	}

	d.store.Dispatch(ctx, state.Success(state.OpFetchWishlist, result.Payload).WithEpoch(epoch))
	return nil
}

// RemoveFromWishlist deletes a saved item. The success payload is the product
// id so the slice can drop the entry eagerly; the returned effect re-fetches
// the authoritative list.
func (d *Dispatcher) RemoveFromWishlist(ctx context.Context, wishlistID, productID int64) ([]Effect, error) {
	epoch := d.store.Epoch()
	userID := d.sessionUserID()
	if wishlistID == 0 || userID == 0 {
		return nil, d.fail(ctx, state.OpRemoveFromWishlist, epoch,
			pkgerrors.New(pkgerrors.KindValidation, "a signed-in user and wishlist item are required"))
	}

	d.store.Dispatch(ctx, state.Request(state.OpRemoveFromWishlist).WithEpoch(epoch))

	result, err := d.api.RemoveFromWishlist(ctx, userID, wishlistID)
	if err != nil {
		return nil, d.fail(ctx, state.OpRemoveFromWishlist, epoch, pkgerrors.Normalize(pkgerrors.KindTransport, err))
	}
	if !result.Succeeded() {
		return nil, d.fail(ctx, state.OpRemoveFromWishlist, epoch, pkgerrors.New(pkgerrors.KindApplication, result.Message))
	}

	d.store.Dispatch(ctx, state.Success(state.OpRemoveFromWishlist, productID).WithEpoch(epoch))
	return []Effect{FetchWishlistEffect{UserID: userID}}, nil
}
