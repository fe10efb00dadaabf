package routes

import (
	"github.com/shashiranjanraj/dinein/app/controllers"
	"github.com/shashiranjanraj/dinein/app/repositories"
	"github.com/shashiranjanraj/dinein/app/services"
	"github.com/shashiranjanraj/dinein/pkg/ctx"
	"github.com/shashiranjanraj/dinein/pkg/router"
)

// Deps are the stores and codecs the API is built on.
type Deps struct {
	Users    repositories.UserRepository
	Bookings repositories.BookingRepository
	Menu     repositories.MenuRepository
	Cart     repositories.CartRepository
	Hasher   services.PasswordHasher
	Health   controllers.Pinger
}

func RegisterAPI(r *router.Router, d Deps) {
	auth := controllers.NewAuthController(services.NewAuthService(d.Users, d.Hasher))
	bookings := controllers.NewBookingController(services.NewBookingService(d.Bookings))
	menu := controllers.NewMenuController(services.NewMenuService(d.Menu))
	cart := controllers.NewCartController(services.NewCartService(d.Users, d.Menu, d.Cart))

	r.Post("/book", "bookings.store", ctx.Wrap(bookings.Store))
	r.Post("/signup", "auth.signup", ctx.Wrap(auth.Signup))
	r.Post("/login", "auth.login", ctx.Wrap(auth.Login))
	r.Post("/add-to-cart", "cart.store", ctx.Wrap(cart.Store))

	api := r.Group("/api")
	api.Get("/menu", "menu.index", ctx.Wrap(menu.Index))
	api.Get("/cart/{userId}", "cart.index", ctx.Wrap(cart.Index))
	api.Delete("/cart/{userId}/{itemId}", "cart.destroy", ctx.Wrap(cart.Destroy))
	api.Patch("/cart/{userId}/{itemId}", "cart.update", ctx.Wrap(cart.Update))

	r.Get("/health", "health", ctx.Wrap(controllers.NewHealthController(d.Health).Show))
}
