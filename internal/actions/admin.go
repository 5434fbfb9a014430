package actions

import (
	"context"

	"github.com/grocerly/appcore/internal/state"
	pkgerrors "github.com/grocerly/appcore/pkg/errors"
)

// FetchAdminUsers replaces the back-office user list wholesale.
func (d *Dispatcher) FetchAdminUsers(ctx context.Context) error {
	d.store.Dispatch(ctx, state.Request(state.OpFetchAdminUsers))

	result, err := d.api.AdminUsers(ctx)
	if err != nil {
		return d.fail(ctx, state.OpFetchAdminUsers, 0, pkgerrors.Normalize(pkgerrors.KindTransport, err))
	}
	if !result.Succeeded() {
		return d.fail(ctx, state.OpFetchAdminUsers, 0, pkgerrors.New(pkgerrors.KindApplication, result.Message))
	}

	d.store.Dispatch(ctx, state.Success(state.OpFetchAdminUsers, result.Payload))
	return nil
}

// FetchAdminProducts replaces the back-office product list wholesale.
func (d *Dispatcher) FetchAdminProducts(ctx context.Context) error {
	d.store.Dispatch(ctx, state.Request(state.OpFetchAdminProducts))

	result, err := d.api.AdminProducts(ctx)
	if err != nil {
		return d.fail(ctx, state.OpFetchAdminProducts, 0, pkgerrors.Normalize(pkgerrors.KindTransport, err))
	}
	if !result.Succeeded() {
		return d.fail(ctx, state.OpFetchAdminProducts, 0, pkgerrors.New(pkgerrors.KindApplication, result.Message))
	}

	d.store.Dispatch(ctx, state.Success(state.OpFetchAdminProducts, result.Payload))
	return nil
}

// FetchAdminContacts replaces the back-office contact-message list wholesale.
func (d *Dispatcher) FetchAdminContacts(ctx context.Context) error {
	d.store.Dispatch(ctx, state.Request(state.OpFetchAdminContacts))

	result, err := d.api.AdminContacts(ctx)
	if err != nil {
		return d.fail(ctx, state.OpFetchAdminContacts, 0, pkgerrors.Normalize(pkgerrors.KindTransport, err))
	}
	if !result.Succeeded() {
		return d.fail(ctx, state.OpFetchAdminContacts, 0, pkgerrors.New(pkgerrors.KindApplication, result.Message))
	}

	d.store.Dispatch(ctx, state.Success(state.OpFetchAdminContacts, result.Payload))
	return nil
}
