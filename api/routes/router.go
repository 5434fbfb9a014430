package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/grocerly/appcore/api/controllers"
	"github.com/grocerly/appcore/api/middleware"
	"github.com/grocerly/appcore/internal/backoffice"
	"github.com/grocerly/appcore/pkg/config"
	"github.com/grocerly/appcore/pkg/logger"
)

// NewRouter assembles the mock storefront API: the legacy endpoint surface
// plus health and metrics. Auth and admin guards run only where the legacy
// contract expects a token.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	repo *backoffice.Repository,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Get("/health", controllers.HealthLive(cfg))
	if registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Post("/signup", controllers.Signup(repo, cfg, logg))
	r.Post("/login", controllers.Login(repo, cfg, logg))
	r.Get("/products", controllers.Products(repo, logg))
	r.Post("/contact", controllers.Contact(repo, logg))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))

		r.Post("/edit_profile", controllers.EditProfile(repo, logg))

		r.Post("/cart/add", controllers.CartAdd(repo, logg))
		r.Get("/cart", controllers.Cart(repo, logg))
		r.Post("/cart/update_quantity", controllers.CartUpdateQuantity(repo, logg))
		r.Post("/cart/remove", controllers.CartRemove(repo, logg))

		r.Post("/wishlist/add", controllers.WishlistAdd(repo, logg))
		r.Get("/wishlist", controllers.Wishlist(repo, logg))
		r.Post("/wishlist/remove", controllers.WishlistRemove(repo, logg))

		r.Post("/orders/place", controllers.OrdersPlace(repo, logg))
		r.Get("/orders", controllers.Orders(repo, logg))
		r.Get("/order_details", controllers.OrderDetails(repo, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin(logg))
			r.Get("/admin/users", controllers.AdminUsers(repo, logg))
			r.Get("/admin/products", controllers.AdminProducts(repo, logg))
			r.Get("/admin/contacts", controllers.AdminContacts(repo, logg))
		})
	})

	return r
}
