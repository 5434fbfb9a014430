package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	pkgerrors "github.com/grocerly/appcore/pkg/errors"
	"github.com/grocerly/appcore/pkg/types"
	"github.com/shopspring/decimal"
)

// Endpoint paths of the legacy storefront API.
const (
	pathSignup        = "/signup"
	pathLogin         = "/login"
	pathEditProfile   = "/edit_profile"
	pathProducts      = "/products"
	pathCartAdd       = "/cart/add"
	pathCart          = "/cart"
	pathCartUpdate    = "/cart/update_quantity"
	pathCartRemove    = "/cart/remove"
	pathWishlistAdd   = "/wishlist/add"
	pathWishlist      = "/wishlist"
	pathWishlistDrop  = "/wishlist/remove"
	pathOrderPlace    = "/orders/place"
	pathOrders        = "/orders"
	pathOrderDetails  = "/order_details"
	pathContact       = "/contact"
	pathAdminUsers    = "/admin/users"
	pathAdminProducts = "/admin/products"
	pathAdminContacts = "/admin/contacts"
)

// SignupForm carries the fields of the registration request.
type SignupForm struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// LoginForm carries the credential fields of the sign-in request.
type LoginForm struct {
	Email    string
	Password string
}

// ProfileForm carries an edit-profile submission. Zero-valued fields are
// omitted so the server merges rather than blanks them.
type ProfileForm struct {
	UserID  int64
	Name    string
	Email   string
	Phone   string
	Address string
	Pincode string
	Photo   string
}

// OrderLineForm is one purchased line inside a place-order submission.
type OrderLineForm struct {
	ProductID int64           `json:"p_id"`
	Quantity  int             `json:"qty"`
	Price     decimal.Decimal `json:"price"`
}

// PlaceOrderForm is the place-order submission; Lines is serialized to a
// JSON string inside the multipart form, matching the legacy contract.
type PlaceOrderForm struct {
	UserID  int64
	Address string
	Pincode string
	Total   decimal.Decimal
	Lines   []OrderLineForm
}

// ContactSubmission carries a contact-form request.
type ContactSubmission struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// CatalogQuery selects either a numeric category or a free-text search.
type CatalogQuery struct {
	CategoryID *int64
	Search     string
}

// CacheKey computes the product-cache key this query's results land under.
func (q CatalogQuery) CacheKey() string {
	if q.CategoryID != nil {
		return strconv.FormatInt(*q.CategoryID, 10)
	}
	return types.SearchResultsKey
}

type authEnvelope struct {
	statusEnvelope
	UserData *rawUser `json:"user_data"`
}

// Signup registers a new account. On success the returned user record is the
// new session identity.
func (c *Client) Signup(ctx context.Context, form SignupForm) (Result[types.User], error) {
	body, err := multipartBody(map[string]string{
		"name":     form.Name,
		"email":    form.Email,
		"password": form.Password,
		"phone":    form.Phone,
	})
	if err != nil {
		return Result[types.User]{}, pkgerrors.Wrap(pkgerrors.KindTransport, err, "could not encode signup form")
	}
	return c.authCall(ctx, "signup", pathSignup, body)
}

// Login exchanges credentials for the user record and auth token.
func (c *Client) Login(ctx context.Context, form LoginForm) (Result[types.User], error) {
	body, err := multipartBody(map[string]string{
		"email":    form.Email,
		"password": form.Password,
	})
	if err != nil {
		return Result[types.User]{}, pkgerrors.Wrap(pkgerrors.KindTransport, err, "could not encode login form")
	}
	return c.authCall(ctx, "login", pathLogin, body)
}

// EditProfile submits changed profile fields and returns the merged record.
func (c *Client) EditProfile(ctx context.Context, form ProfileForm) (Result[types.User], error) {
	fields := map[string]string{
		"user_id": strconv.FormatInt(form.UserID, 10),
	}
	for key, value := range map[string]string{
		"name":    form.Name,
		"email":   form.Email,
		"phone":   form.Phone,
		"address": form.Address,
		"pincode": form.Pincode,
		"photo":   form.Photo,
	} {
		if value != "" {
			fields[key] = value
		}
	}
	body, err := multipartBody(fields)
	if err != nil {
		return Result[types.User]{}, pkgerrors.Wrap(pkgerrors.KindTransport, err, "could not encode profile form")
	}
	return c.authCall(ctx, "edit_profile", pathEditProfile, body)
}

func (c *Client) authCall(ctx context.Context, endpoint, path string, body requestBody) (Result[types.User], error) {
	var envelope authEnvelope
	if err := c.send(ctx, endpoint, http.MethodPost, path, nil, &body, &envelope); err != nil {
		return Result[types.User]{}, err
	}
	status := statusFromWire(envelope.Status)
	if status == StatusError || envelope.UserData == nil {
		return failed[types.User](StatusError, envelope.Message), nil
	}
	return ok(envelope.UserData.toUser(), envelope.Message), nil
}

type productsEnvelope struct {
	statusEnvelope
	Products []rawProduct `json:"products"`
}

// SearchProducts lists a category or runs a free-text search; the server does
// the filtering either way.
func (c *Client) SearchProducts(ctx context.Context, query CatalogQuery) (Result[[]types.Product], error) {
	params := url.Values{}
	if query.CategoryID != nil {
		params.Set("c_id", strconv.FormatInt(*query.CategoryID, 10))
	} else if query.Search != "" {
		params.Set("search", query.Search)
	}

	var envelope productsEnvelope
	if err := c.send(ctx, "search_products", http.MethodGet, pathProducts, params, nil, &envelope); err != nil {
		return Result[[]types.Product]{}, err
	}
	if statusFromWire(envelope.Status) == StatusError {
		return failed[[]types.Product](StatusError, envelope.Message), nil
	}
	products := make([]types.Product, 0, len(envelope.Products))
	for _, raw := range envelope.Products {
		products = append(products, raw.toProduct())
	}
	return ok(products, envelope.Message), nil
}

// AddToCart adds qty of a product to the user's cart. The server reports
// "exists" when the product is already there; both count as success.
func (c *Client) AddToCart(ctx context.Context, userID, productID int64, qty int) (Result[string], error) {
	return c.mutationCall(ctx, "add_to_cart", pathCartAdd, map[string]string{
		"user_id": strconv.FormatInt(userID, 10),
		"p_id":    strconv.FormatInt(productID, 10),
		"qty":     strconv.Itoa(qty),
	})
}

type cartEnvelope struct {
	statusEnvelope
	CartItems []rawCartItem `json:"cart_items"`
}

// FetchCart loads the authoritative cart snapshot for the user.
func (c *Client) FetchCart(ctx context.Context, userID int64) (Result[[]types.CartItem], error) {
	params := url.Values{}
	params.Set("user_id", strconv.FormatInt(userID, 10))

	var envelope cartEnvelope
	if err := c.send(ctx, "fetch_cart", http.MethodGet, pathCart, params, nil, &envelope); err != nil {
		return Result[[]types.CartItem]{}, err
	}
	if statusFromWire(envelope.Status) == StatusError {
		return failed[[]types.CartItem](StatusError, envelope.Message), nil
	}
	items := make([]types.CartItem, 0, len(envelope.CartItems))
	for _, raw := range envelope.CartItems {
		items = append(items, raw.toCartItem())
	}
	return ok(items, envelope.Message), nil
}

// UpdateCartQuantity shifts a cart line's quantity by delta on the server.
func (c *Client) UpdateCartQuantity(ctx context.Context, userID, productID int64, delta int) (Result[string], error) {
	return c.mutationCall(ctx, "update_cart_quantity", pathCartUpdate, map[string]string{
		"user_id": strconv.FormatInt(userID, 10),
		"p_id":    strconv.FormatInt(productID, 10),
		"delta":   strconv.Itoa(delta),
	})
}

// RemoveCartItem deletes a cart line by its cart identity.
func (c *Client) RemoveCartItem(ctx context.Context, userID, cartID int64) (Result[string], error) {
	return c.mutationCall(ctx, "remove_cart_item", pathCartRemove, map[string]string{
		"user_id": strconv.FormatInt(userID, 10),
		"cart_id": strconv.FormatInt(cartID, 10),
	})
}

// AddToWishlist saves a product to the user's wishlist.
func (c *Client) AddToWishlist(ctx context.Context, userID, productID int64) (Result[string], error) {
	return c.mutationCall(ctx, "add_to_wishlist", pathWishlistAdd, map[string]string{
		"user_id": strconv.FormatInt(userID, 10),
		"p_id":    strconv.FormatInt(productID, 10),
	})
}

type wishlistEnvelope struct {
	statusEnvelope
	Wishlist []rawWishlistItem `json:"wishlist"`
}

// FetchWishlist loads the user's saved products.
func (c *Client) FetchWishlist(ctx context.Context, userID int64) (Result[[]types.WishlistItem], error) {
	params := url.Values{}
	params.Set("user_id", strconv.FormatInt(userID, 10))

	var envelope wishlistEnvelope
	if err := c.send(ctx, "fetch_wishlist", http.MethodGet, pathWishlist, params, nil, &envelope); err != nil {
		return Result[[]types.WishlistItem]{}, err
	}
	if statusFromWire(envelope.Status) == StatusError {
		return failed[[]types.WishlistItem](StatusError, envelope.Message), nil
	}
	items := make([]types.WishlistItem, 0, len(envelope.Wishlist))
	for _, raw := range envelope.Wishlist {
		items = append(items, raw.toWishlistItem())
	}
	return ok(items, envelope.Message), nil
}

// RemoveFromWishlist deletes a wishlist entry by its wishlist identity.
func (c *Client) RemoveFromWishlist(ctx context.Context, userID, wishlistID int64) (Result[string], error) {
	return c.mutationCall(ctx, "remove_from_wishlist", pathWishlistDrop, map[string]string{
		"user_id": strconv.FormatInt(userID, 10),
		"w_id":    strconv.FormatInt(wishlistID, 10),
	})
}

type placeOrderEnvelope struct {
	statusEnvelope
	OrderNumber string `json:"order_number"`
}

// PlaceOrder submits the order; line items travel as one JSON-stringified
// multipart field.
func (c *Client) PlaceOrder(ctx context.Context, form PlaceOrderForm) (Result[string], error) {
	lines, err := json.Marshal(form.Lines)
	if err != nil {
		return Result[string]{}, pkgerrors.Wrap(pkgerrors.KindTransport, err, "could not encode order lines")
	}
	body, err := multipartBody(map[string]string{
		"user_id":  strconv.FormatInt(form.UserID, 10),
		"address":  form.Address,
		"pincode":  form.Pincode,
		"total":    form.Total.String(),
		"products": string(lines),
	})
	if err != nil {
		return Result[string]{}, pkgerrors.Wrap(pkgerrors.KindTransport, err, "could not encode order form")
	}

	var envelope placeOrderEnvelope
	if err := c.send(ctx, "place_order", http.MethodPost, pathOrderPlace, nil, &body, &envelope); err != nil {
		return Result[string]{}, err
	}
	if statusFromWire(envelope.Status) == StatusError {
		return failed[string](StatusError, envelope.Message), nil
	}
	return ok(envelope.OrderNumber, envelope.Message), nil
}

type ordersEnvelope struct {
	statusEnvelope
	Orders []rawOrderSummary `json:"orders"`
}

// FetchOrders loads the user's order history.
func (c *Client) FetchOrders(ctx context.Context, userID int64) (Result[[]types.OrderSummary], error) {
	params := url.Values{}
	params.Set("user_id", strconv.FormatInt(userID, 10))

	var envelope ordersEnvelope
	if err := c.send(ctx, "fetch_orders", http.MethodGet, pathOrders, params, nil, &envelope); err != nil {
		return Result[[]types.OrderSummary]{}, err
	}
	if statusFromWire(envelope.Status) == StatusError {
		return failed[[]types.OrderSummary](StatusError, envelope.Message), nil
	}
	orders := make([]types.OrderSummary, 0, len(envelope.Orders))
	for _, raw := range envelope.Orders {
		orders = append(orders, raw.toOrderSummary())
	}
	return ok(orders, envelope.Message), nil
}

type orderDetailsEnvelope struct {
	statusEnvelope
	Order *rawOrderDetails `json:"order_details"`
}

// FetchOrderDetails loads one order with its nested line items.
func (c *Client) FetchOrderDetails(ctx context.Context, orderID, userID int64) (Result[types.OrderDetails], error) {
	params := url.Values{}
	params.Set("o_id", strconv.FormatInt(orderID, 10))
	params.Set("user_id", strconv.FormatInt(userID, 10))

	var envelope orderDetailsEnvelope
	if err := c.send(ctx, "fetch_order_details", http.MethodGet, pathOrderDetails, params, nil, &envelope); err != nil {
		return Result[types.OrderDetails]{}, err
	}
	if statusFromWire(envelope.Status) == StatusError || envelope.Order == nil {
		return failed[types.OrderDetails](StatusError, envelope.Message), nil
	}
	return ok(envelope.Order.toOrderDetails(), envelope.Message), nil
}

// SubmitContact posts a contact-form submission, form-urlencoded per the
// legacy contract.
func (c *Client) SubmitContact(ctx context.Context, form ContactSubmission) (Result[string], error) {
	fields := url.Values{}
	fields.Set("name", form.Name)
	fields.Set("email", form.Email)
	fields.Set("phone", form.Phone)
	fields.Set("subject", form.Subject)
	fields.Set("message", form.Message)
	body := formBody(fields)

	var envelope statusEnvelope
	if err := c.send(ctx, "submit_contact", http.MethodPost, pathContact, nil, &body, &envelope); err != nil {
		return Result[string]{}, err
	}
	if statusFromWire(envelope.Status) == StatusError {
		return failed[string](StatusError, envelope.Message), nil
	}
	return ok(envelope.Message, envelope.Message), nil
}

type adminUsersEnvelope struct {
	statusEnvelope
	Data []rawUser `json:"data"`
}

// AdminUsers loads the back-office user list wholesale.
func (c *Client) AdminUsers(ctx context.Context) (Result[[]types.User], error) {
	var envelope adminUsersEnvelope
	if err := c.send(ctx, "fetch_admin_users", http.MethodGet, pathAdminUsers, nil, nil, &envelope); err != nil {
		return Result[[]types.User]{}, err
	}
	if statusFromWire(envelope.Status) == StatusError {
		return failed[[]types.User](StatusError, envelope.Message), nil
	}
	users := make([]types.User, 0, len(envelope.Data))
	for _, raw := range envelope.Data {
		users = append(users, raw.toUser())
	}
	return ok(users, envelope.Message), nil
}

type adminProductsEnvelope struct {
	statusEnvelope
	Data []rawProduct `json:"data"`
}

// AdminProducts loads the back-office product list wholesale.
func (c *Client) AdminProducts(ctx context.Context) (Result[[]types.Product], error) {
	var envelope adminProductsEnvelope
	if err := c.send(ctx, "fetch_admin_products", http.MethodGet, pathAdminProducts, nil, nil, &envelope); err != nil {
		return Result[[]types.Product]{}, err
	}
	if statusFromWire(envelope.Status) == StatusError {
		return failed[[]types.Product](StatusError, envelope.Message), nil
	}
	products := make([]types.Product, 0, len(envelope.Data))
	for _, raw := range envelope.Data {
		products = append(products, raw.toProduct())
	}
	return ok(products, envelope.Message), nil
}

type adminContactsEnvelope struct {
	statusEnvelope
	Data []rawContactMessage `json:"data"`
}

// AdminContacts loads the back-office contact-message list wholesale.
func (c *Client) AdminContacts(ctx context.Context) (Result[[]types.ContactMessage], error) {
	var envelope adminContactsEnvelope
	if err := c.send(ctx, "fetch_admin_contacts", http.MethodGet, pathAdminContacts, nil, nil, &envelope); err != nil {
		return Result[[]types.ContactMessage]{}, err
	}
	if statusFromWire(envelope.Status) == StatusError {
		return failed[[]types.ContactMessage](StatusError, envelope.Message), nil
	}
	messages := make([]types.ContactMessage, 0, len(envelope.Data))
	for _, raw := range envelope.Data {
		messages = append(messages, raw.toContactMessage())
	}
	return ok(messages, envelope.Message), nil
}

// mutationCall is the shared shape of the POST endpoints that only return a
// status and message.
func (c *Client) mutationCall(ctx context.Context, endpoint, path string, fields map[string]string) (Result[string], error) {
	body, err := multipartBody(fields)
	if err != nil {
		return Result[string]{}, pkgerrors.Wrap(pkgerrors.KindTransport, err, "could not encode request form")
	}
	var envelope statusEnvelope
	if err := c.send(ctx, endpoint, http.MethodPost, path, nil, &body, &envelope); err != nil {
		return Result[string]{}, err
	}
	status := statusFromWire(envelope.Status)
	if status == StatusError {
		return failed[string](StatusError, envelope.Message), nil
	}
	return Result[string]{Status: status, Payload: envelope.Message, Message: envelope.Message}, nil
}
