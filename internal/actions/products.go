package actions

import (
	"context"
	"strconv"
	"strings"

	"github.com/grocerly/appcore/internal/apiclient"
	"github.com/grocerly/appcore/internal/state"
	pkgerrors "github.com/grocerly/appcore/pkg/errors"
)

// SearchProducts loads a catalog list. A numeric term is a category id and
// the results are cached under that id; any other non-empty term is a
// free-text search cached under the search sentinel. The server does the
// filtering in both cases.
func (d *Dispatcher) SearchProducts(ctx context.Context, term string) error {
	term = strings.TrimSpace(term)
	if term == "" {
		err := pkgerrors.New(pkgerrors.KindValidation, "a category or search term is required")
		d.store.Dispatch(ctx, state.Failure(state.OpSearchProducts, err))
		return err
	}

	query := apiclient.CatalogQuery{Search: term}
	if id, convErr := strconv.ParseInt(term, 10, 64); convErr == nil {
		query = apiclient.CatalogQuery{CategoryID: &id}
	}
	key := query.CacheKey()

	d.store.Dispatch(ctx, state.Request(state.OpSearchProducts).WithKey(key))

	result, err := d.api.SearchProducts(ctx, query)
	if err != nil {
		normalized := pkgerrors.Normalize(pkgerrors.KindTransport, err)
		d.store.Dispatch(ctx, state.Failure(state.OpSearchProducts, normalized).WithKey(key))
		return normalized
	}
	if !result.Succeeded() {
		appErr := pkgerrors.New(pkgerrors.KindApplication, result.Message)
		d.store.Dispatch(ctx, state.Failure(state.OpSearchProducts, appErr).WithKey(key))
		return appErr
	}

	d.store.Dispatch(ctx, state.Success(state.OpSearchProducts, result.Payload).WithKey(key))
	return nil
}
