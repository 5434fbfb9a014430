// Package actions is the async command layer: it translates UI intents into
// input validation, lifecycle signals, one HTTP call, and explicit follow-up
// effects. All collaborators are passed in; there is no process-wide
// singleton.
package actions

import (
	"context"
	"fmt"

	"github.com/grocerly/appcore/internal/apiclient"
	"github.com/grocerly/appcore/internal/state"
	"github.com/grocerly/appcore/internal/store"
	pkgerrors "github.com/grocerly/appcore/pkg/errors"
	"github.com/grocerly/appcore/pkg/logger"
	"github.com/grocerly/appcore/pkg/types"
	"go.uber.org/multierr"
)

// StorefrontAPI is the remote boundary the dispatcher drives.
type StorefrontAPI interface {
	Signup(ctx context.Context, form apiclient.SignupForm) (apiclient.Result[types.User], error)
	Login(ctx context.Context, form apiclient.LoginForm) (apiclient.Result[types.User], error)
	EditProfile(ctx context.Context, form apiclient.ProfileForm) (apiclient.Result[types.User], error)
	SearchProducts(ctx context.Context, query apiclient.CatalogQuery) (apiclient.Result[[]types.Product], error)
	AddToCart(ctx context.Context, userID, productID int64, qty int) (apiclient.Result[string], error)
	FetchCart(ctx context.Context, userID int64) (apiclient.Result[[]types.CartItem], error)
	UpdateCartQuantity(ctx context.Context, userID, productID int64, delta int) (apiclient.Result[string], error)
	RemoveCartItem(ctx context.Context, userID, cartID int64) (apiclient.Result[string], error)
	AddToWishlist(ctx context.Context, userID, productID int64) (apiclient.Result[string], error)
	FetchWishlist(ctx context.Context, userID int64) (apiclient.Result[[]types.WishlistItem], error)
	RemoveFromWishlist(ctx context.Context, userID, wishlistID int64) (apiclient.Result[string], error)
	PlaceOrder(ctx context.Context, form apiclient.PlaceOrderForm) (apiclient.Result[string], error)
	FetchOrders(ctx context.Context, userID int64) (apiclient.Result[[]types.OrderSummary], error)
	FetchOrderDetails(ctx context.Context, orderID, userID int64) (apiclient.Result[types.OrderDetails], error)
	SubmitContact(ctx context.Context, form apiclient.ContactSubmission) (apiclient.Result[string], error)
	AdminUsers(ctx context.Context) (apiclient.Result[[]types.User], error)
	AdminProducts(ctx context.Context) (apiclient.Result[[]types.Product], error)
	AdminContacts(ctx context.Context) (apiclient.Result[[]types.ContactMessage], error)
	SetToken(token string)
	ClearToken()
}

// ProfileCache is the on-device store for the cached user identity.
type ProfileCache interface {
	SaveUser(ctx context.Context, user types.User) error
	CachedUserID(ctx context.Context) (int64, error)
	Clear(ctx context.Context) error
}

// Dispatcher owns every action creator. It holds the store, the API
// boundary, and the device cache, so handlers never reach for globals.
type Dispatcher struct {
	api   StorefrontAPI
	store *store.Store
	cache ProfileCache
	logg  *logger.Logger
}

// New builds a dispatcher with the required collaborators. The device cache
// and logger are optional.
func New(api StorefrontAPI, st *store.Store, cache ProfileCache, logg *logger.Logger) (*Dispatcher, error) {
	if api == nil {
		return nil, fmt.Errorf("storefront api required")
	}
	if st == nil {
		return nil, fmt.Errorf("store required")
	}
	return &Dispatcher{
		api:   api,
		store: st,
		cache: cache,
		logg:  logg,
	}, nil
}

// Store exposes the state tree for UI consumers.
func (d *Dispatcher) Store() *store.Store {
	return d.store
}

// Effect is a follow-up read a mutation action asks for, returned explicitly
// so the chaining is visible and independently testable instead of buried in
// an async body.
type Effect interface {
	Name() string
	run(ctx context.Context, d *Dispatcher) error
}

// FetchCartEffect re-reads the authoritative cart after a cart mutation.
type FetchCartEffect struct {
	UserID int64
}

func (e FetchCartEffect) Name() string { return "fetch_cart" }

func (e FetchCartEffect) run(ctx context.Context, d *Dispatcher) error {
	return d.FetchCart(ctx, e.UserID)
}

// FetchWishlistEffect re-reads the wishlist after a wishlist mutation.
type FetchWishlistEffect struct {
	UserID int64
}

func (e FetchWishlistEffect) Name() string { return "fetch_wishlist" }

func (e FetchWishlistEffect) run(ctx context.Context, d *Dispatcher) error {
	return d.FetchWishlist(ctx, e.UserID)
}

// Run executes follow-up effects best-effort: a failing follow-up is logged
// and reported but never reverts the mutation success that requested it.
func (d *Dispatcher) Run(ctx context.Context, effects ...Effect) error {
	var combined error
	for _, effect := range effects {
		if effect == nil {
			continue
		}
		if err := effect.run(ctx, d); err != nil {
			if d.logg != nil {
				d.logg.Warn(d.logg.WithOperation(ctx, effect.Name()), "follow-up fetch failed")
			}
			combined = multierr.Append(combined, err)
		}
	}
	return combined
}

// sessionUserID reads the logged-in user id from the store, zero when there
// is no session.
func (d *Dispatcher) sessionUserID() int64 {
	session := d.store.State().Session
	if !session.IsLoggedIn || session.User == nil {
		return 0
	}
	return session.User.ID
}

// fail dispatches the failure signal and returns the error it carried.
func (d *Dispatcher) fail(ctx context.Context, op state.Op, epoch uint64, err *pkgerrors.Error) error {
	d.store.Dispatch(ctx, state.Failure(op, err).WithEpoch(epoch))
	return err
}
