package actions

import (
	"context"

	"github.com/grocerly/appcore/internal/apiclient"
	"github.com/grocerly/appcore/internal/state"
	pkgerrors "github.com/grocerly/appcore/pkg/errors"
	"github.com/shopspring/decimal"
)

// CheckoutInput carries the delivery fields of a place-order submission; the
// purchased lines come from the cart slice at the moment of dispatch.
type CheckoutInput struct {
	Address string `json:"address" validate:"required"`
	Pincode string `json:"pincode" validate:"required"`
}

// PlaceOrder submits the current cart as an order and returns the server's
// order number. The cart is re-fetched afterwards via the returned effect
// because the server empties it as part of the order.
func (d *Dispatcher) PlaceOrder(ctx context.Context, input CheckoutInput) (string, []Effect, error) {
	epoch := d.store.Epoch()
	if err := checkInput(input); err != nil {
		return "", nil, d.fail(ctx, state.OpPlaceOrder, epoch, err)
	}
	userID := d.sessionUserID()
	if userID == 0 {
		return "", nil, d.fail(ctx, state.OpPlaceOrder, epoch,
			pkgerrors.New(pkgerrors.KindValidation, "please sign in to place an order"))
	}

	items := d.store.State().Cart.Items
	if len(items) == 0 {
		return "", nil, d.fail(ctx, state.OpPlaceOrder, epoch,
			pkgerrors.New(pkgerrors.KindValidation, "your cart is empty"))
	}

	total := decimal.Zero
	lines := make([]apiclient.OrderLineForm, 0, len(items))
	for _, item := range items {
		lines = append(lines, apiclient.OrderLineForm{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	d.store.Dispatch(ctx, state.Request(state.OpPlaceOrder).WithEpoch(epoch))

	result, err := d.api.PlaceOrder(ctx, apiclient.PlaceOrderForm{
		UserID:  userID,
		Address: input.Address,
		Pincode: input.Pincode,
		Total:   total,
		Lines:   lines,
	})
	if err != nil {
		return "", nil, d.fail(ctx, state.OpPlaceOrder, epoch, pkgerrors.Normalize(pkgerrors.KindTransport, err))
	}
	if !result.Succeeded() {
		return "", nil, d.fail(ctx, state.OpPlaceOrder, epoch, pkgerrors.New(pkgerrors.KindApplication, result.Message))
	}

	d.store.Dispatch(ctx, state.Success(state.OpPlaceOrder, result.Payload).WithEpoch(epoch))
	return result.Payload, []Effect{FetchCartEffect{UserID: userID}}, nil
}

// FetchOrders loads the order-history list for the signed-in user.
func (d *Dispatcher) FetchOrders(ctx context.Context) error {
	epoch := d.store.Epoch()
	userID := d.sessionUserID()
	if userID == 0 {
		return d.fail(ctx, state.OpFetchOrders, epoch,
			pkgerrors.New(pkgerrors.KindValidation, "please sign in to view your orders"))
	}

	d.store.Dispatch(ctx, state.Request(state.OpFetchOrders).WithEpoch(epoch))

	result, err := d.api.FetchOrders(ctx, userID)
	if err != nil {
		return d.fail(ctx, state.OpFetchOrders, epoch, pkgerrors.Normalize(pkgerrors.KindTransport, err))
	}
	if !result.Succeeded() {
		return d.fail(ctx, state.OpFetchOrders, epoch, pkgerrors.New(pkgerrors.KindApplication, result.Message))
	}

	d.store.Dispatch(ctx, state.Success(state.OpFetchOrders, result.Payload).WithEpoch(epoch))
	return nil
}

// FetchOrderDetails loads one order into the single detail slot. The order
// list's own loading flag is untouched; the two reads track independently.
func (d *Dispatcher) FetchOrderDetails(ctx context.Context, orderID int64) error {
	epoch := d.store.Epoch()
	userID := d.sessionUserID()
	if orderID == 0 || userID == 0 {
		return d.fail(ctx, state.OpFetchOrderDetails, epoch,
			pkgerrors.New(pkgerrors.KindValidation, "a signed-in user and order are required"))
	}

	d.store.Dispatch(ctx, state.Request(state.OpFetchOrderDetails).WithEpoch(epoch))

	result, err := d.api.FetchOrderDetails(ctx, orderID, userID)
	if err != nil {
		return d.fail(ctx, state.OpFetchOrderDetails, epoch, pkgerrors.Normalize(pkgerrors.KindTransport, err))
	}
	if !result.Succeeded() {
		return d.fail(ctx, state.OpFetchOrderDetails, epoch, pkgerrors.New(pkgerrors.KindApplication, result.Message))
	}

	d.store.Dispatch(ctx, state.Success(state.OpFetchOrderDetails, result.Payload).WithEpoch(epoch))
	return nil
}
