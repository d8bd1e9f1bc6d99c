package http

import (
	"net/http"

	"camrent-backend/internal/authz"
	"camrent-backend/internal/cart"
	"camrent-backend/internal/service"
	"camrent-backend/internal/session"
	"camrent-backend/internal/storage"

	"github.com/gorilla/mux"
)

// Services bundles everything the HTTP layer depends on. All fields are
// required.
type Services struct {
	Auth          service.AuthService
	Equipment     service.EquipmentService
	Checkout      service.CheckoutService
	Orders        service.OrderService
	Users         service.UserService
	Suggestions   service.SuggestionService
	Notifications service.NotificationService
	Carts         *cart.Store
	Sessions      *session.Manager
	Images        *storage.ImageStore
}

// NewRouter builds the full route table. Every route carries an explicit
// access requirement; public routes say so with RequireNone.
func NewRouter(s Services) *mux.Router {
	gate := NewAuthMiddleware(s.Sessions)

	authHandler := NewAuthHandler(s.Auth)
	equipmentHandler := NewEquipmentHandler(s.Equipment)
	cartHandler := NewCartHandler(s.Carts, s.Equipment)
	checkoutHandler := NewCheckoutHandler(s.Checkout, s.Carts)
	orderHandler := NewOrderHandler(s.Orders)
	userHandler := NewUserHandler(s.Users)
	suggestionHandler := NewSuggestionHandler(s.Suggestions)
	notificationHandler := NewNotificationHandler(s.Notifications)
	imageHandler := NewImageHandler(s.Images)

	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Auth.
	api.HandleFunc("/auth/signup", authHandler.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)
	api.HandleFunc("/auth/me", gate.Require(authz.RequireAuthenticated, authHandler.Me)).Methods(http.MethodGet)

	// Public storefront catalog.
	api.HandleFunc("/equipment", equipmentHandler.ListAvailable).Methods(http.MethodGet)
	api.HandleFunc("/equipment/{id}", equipmentHandler.Get).Methods(http.MethodGet)

	// Catalog management.
	api.HandleFunc("/admin/equipment", gate.Require(authz.RequireAdmin, equipmentHandler.List)).Methods(http.MethodGet)
	api.HandleFunc("/admin/equipment", gate.Require(authz.RequireAdmin, equipmentHandler.Create)).Methods(http.MethodPost)
	api.HandleFunc("/admin/equipment/{id}", gate.Require(authz.RequireAdmin, equipmentHandler.Update)).Methods(http.MethodPut)
	api.HandleFunc("/admin/equipment/{id}", gate.Require(authz.RequireAdmin, equipmentHandler.Delete)).Methods(http.MethodDelete)

	// Cart. Anyone can build a cart; only checkout is role gated.
	api.HandleFunc("/cart", cartHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/cart/items", cartHandler.Add).Methods(http.MethodPost)
	api.HandleFunc("/cart/items/{id}", cartHandler.UpdateQuantity).Methods(http.MethodPut)
	api.HandleFunc("/cart/items/{id}", cartHandler.Remove).Methods(http.MethodDelete)
	api.HandleFunc("/cart", cartHandler.Clear).Methods(http.MethodDelete)

	// Checkout is reserved for staff and admins.
	api.HandleFunc("/checkout", gate.Require(authz.RequireStaff, checkoutHandler.Checkout)).Methods(http.MethodPost)

	// Orders back office.
	api.HandleFunc("/orders", gate.Require(authz.RequireStaff, orderHandler.List)).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}", gate.Require(authz.RequireStaff, orderHandler.Get)).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}/status", gate.Require(authz.RequireStaff, orderHandler.UpdateStatus)).Methods(http.MethodPut)

	// Users.
	api.HandleFunc("/users", gate.Require(authz.RequireAdmin, userHandler.List)).Methods(http.MethodGet)
	api.HandleFunc("/users/me", gate.Require(authz.RequireAuthenticated, userHandler.UpdateProfile)).Methods(http.MethodPut)
	api.HandleFunc("/users/{id}", gate.Require(authz.RequireAdmin, userHandler.Get)).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/role", gate.Require(authz.RequireAdmin, userHandler.ReassignRole)).Methods(http.MethodPut)

	// Suggestions: anyone may submit, staff review, admins prune.
	api.HandleFunc("/suggestions", suggestionHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/suggestions", gate.Require(authz.RequireStaff, suggestionHandler.List)).Methods(http.MethodGet)
	api.HandleFunc("/suggestions/{id}/status", gate.Require(authz.RequireStaff, suggestionHandler.UpdateStatus)).Methods(http.MethodPut)
	api.HandleFunc("/suggestions/{id}", gate.Require(authz.RequireAdmin, suggestionHandler.Delete)).Methods(http.MethodDelete)

	// Notifications for the signed-in user.
	api.HandleFunc("/notifications", gate.Require(authz.RequireAuthenticated, notificationHandler.List)).Methods(http.MethodGet)
	api.HandleFunc("/notifications/{id}/read", gate.Require(authz.RequireAuthenticated, notificationHandler.MarkAsRead)).Methods(http.MethodPut)

	// Equipment images.
	api.HandleFunc("/images", gate.Require(authz.RequireAdmin, imageHandler.Upload)).Methods(http.MethodPost)
	api.HandleFunc("/images/{key}", imageHandler.Download).Methods(http.MethodGet)

	return r
}
