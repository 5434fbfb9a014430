package state

// RootState is the whole application state tree, one field per slice.
type RootState struct {
	Session       SessionState
	Products      ProductsState
	Cart          CartState
	Wishlist      WishlistState
	WishlistData  WishlistDataState
	Orders        OrdersState
	Contact       ContactState
	AdminUsers    AdminUsersState
	AdminProducts AdminProductsState
	AdminContacts AdminContactsState
}

func NewRootState() RootState {
	return RootState{
		Session:       NewSessionState(),
		Products:      NewProductsState(),
		Cart:          NewCartState(),
		Wishlist:      NewWishlistState(),
		WishlistData:  NewWishlistDataState(),
		Orders:        NewOrdersState(),
		Contact:       NewContactState(),
		AdminUsers:    NewAdminUsersState(),
		AdminProducts: NewAdminProductsState(),
		AdminContacts: NewAdminContactsState(),
	}
}

// Reduce routes the signal through every slice reducer. Slices ignore ops
// that are not theirs, so the composition is a plain fan-out.
func Reduce(s RootState, sig Signal) RootState {
	s.Session = ReduceSession(s.Session, sig)
	s.Products = ReduceProducts(s.Products, sig)
	s.Cart = ReduceCart(s.Cart, sig)
	s.Wishlist = ReduceWishlist(s.Wishlist, sig)
	s.WishlistData = ReduceWishlistData(s.WishlistData, sig)
	s.Orders = ReduceOrders(s.Orders, sig)
	s.Contact = ReduceContact(s.Contact, sig)
	s.AdminUsers = ReduceAdminUsers(s.AdminUsers, sig)
	s.AdminProducts = ReduceAdminProducts(s.AdminProducts, sig)
	s.AdminContacts = ReduceAdminContacts(s.AdminContacts, sig)
	return s
}
