package routes

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/mvdbroek/go-jewelry/app/configs"
	"github.com/mvdbroek/go-jewelry/app/handlers"
	"github.com/mvdbroek/go-jewelry/app/handlers/admin"
	"github.com/mvdbroek/go-jewelry/app/middlewares"
	"github.com/mvdbroek/go-jewelry/app/repositories"
	"github.com/mvdbroek/go-jewelry/app/services"
	"github.com/mvdbroek/go-jewelry/app/utils/renderer"
	"github.com/mvdbroek/go-jewelry/app/utils/sessions"
	"gorm.io/gorm"
)

// NewRouter wires repositories, services and handlers onto the mux
// router. CSRF protection covers every mutating route; the upload
// credential endpoint lives in its own server, not here.
func NewRouter(db *gorm.DB, keys *configs.SessionKeys) http.Handler {
	sessionStore := sessions.NewCookieSessionStore(keys.AuthKey, keys.EncKey)
	render := renderer.New()
	validate := validator.New()

	productRepo := repositories.NewProductRepository(db)
	specialRepo := repositories.NewSpecialEditionRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	userRepo := repositories.NewUserRepository(db)
	valuationRepo := repositories.NewValuationRepository(db)
	attractRepo := repositories.NewAttractImageRepository(db)

	catalogSvc := services.NewCatalogService(productRepo, specialRepo)
	cartStore := services.NewCartStore(sessionStore)
	checkoutSvc := services.NewCheckoutService(orderRepo)
	imageKit := services.NewImageKitService()

	homeHandler := handlers.NewHomeHandler(catalogSvc, attractRepo, render)
	shopHandler := handlers.NewShopHandler(productRepo, catalogSvc, render)
	cartHandler := handlers.NewCartHandler(productRepo, specialRepo, cartStore, render)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutSvc, cartStore, render)
	orderHandler := handlers.NewOrderHandler(orderRepo, render)
	authHandler := handlers.NewAuthHandler(userRepo, sessionStore, validate, render)
	valuationHandler := handlers.NewValuationHandler(valuationRepo, imageKit, validate, render)

	adminHandler := admin.NewAdminHandler(
		productRepo, specialRepo, orderRepo, valuationRepo, attractRepo,
		catalogSvc, imageKit, validate, render,
	)

	router := mux.NewRouter()
	router.Use(middlewares.RequestLogger)
	router.Use(middlewares.SessionUserMiddleware(sessionStore))

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/home", homeHandler.Home).Methods(http.MethodGet)
	api.HandleFunc("/products", shopHandler.Products).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", shopHandler.ProductDetail).Methods(http.MethodGet)

	api.HandleFunc("/cart", cartHandler.GetCart).Methods(http.MethodGet)
	api.HandleFunc("/cart/items", cartHandler.AddItem).Methods(http.MethodPost)
	api.HandleFunc("/cart/items/{id}", cartHandler.RemoveItem).Methods(http.MethodDelete)
	api.HandleFunc("/checkout", checkoutHandler.Checkout).Methods(http.MethodPost)

	api.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)
	api.HandleFunc("/me", authHandler.Me).Methods(http.MethodGet)

	api.HandleFunc("/valuations", valuationHandler.Submit).Methods(http.MethodPost)

	authed := api.NewRoute().Subrouter()
	authed.Use(middlewares.RequireAuth)
	authed.HandleFunc("/orders", orderHandler.MyOrders).Methods(http.MethodGet)

	adminRouter := api.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middlewares.AdminAuthMiddleware(userRepo))

	adminRouter.HandleFunc("/dashboard", adminHandler.Dashboard).Methods(http.MethodGet)

	adminRouter.HandleFunc("/products", adminHandler.ListProducts).Methods(http.MethodGet)
	adminRouter.HandleFunc("/products", adminHandler.CreateProduct).Methods(http.MethodPost)
	adminRouter.HandleFunc("/products/{id}", adminHandler.GetProduct).Methods(http.MethodGet)
	adminRouter.HandleFunc("/products/{id}", adminHandler.UpdateProduct).Methods(http.MethodPut)
	adminRouter.HandleFunc("/products/{id}", adminHandler.DeleteProduct).Methods(http.MethodDelete)

	adminRouter.HandleFunc("/special-editions", adminHandler.ListSpecialEditions).Methods(http.MethodGet)
	adminRouter.HandleFunc("/special-editions", adminHandler.CreateSpecialEdition).Methods(http.MethodPost)
	adminRouter.HandleFunc("/special-editions/{id}", adminHandler.GetSpecialEdition).Methods(http.MethodGet)
	adminRouter.HandleFunc("/special-editions/{id}", adminHandler.UpdateSpecialEdition).Methods(http.MethodPut)
	adminRouter.HandleFunc("/special-editions/{id}", adminHandler.DeleteSpecialEdition).Methods(http.MethodDelete)

	adminRouter.HandleFunc("/orders", adminHandler.ListOrders).Methods(http.MethodGet)
	adminRouter.HandleFunc("/orders/{id}", adminHandler.GetOrder).Methods(http.MethodGet)
	adminRouter.HandleFunc("/orders/{id}/status", adminHandler.UpdateOrderStatus).Methods(http.MethodPatch)
	adminRouter.HandleFunc("/orders/{id}", adminHandler.DeleteOrder).Methods(http.MethodDelete)

	adminRouter.HandleFunc("/valuations", adminHandler.ListValuations).Methods(http.MethodGet)

	adminRouter.HandleFunc("/attract-images", adminHandler.ListAttractImages).Methods(http.MethodGet)
	adminRouter.HandleFunc("/attract-images", adminHandler.UploadAttractImages).Methods(http.MethodPost)
	adminRouter.HandleFunc("/attract-images", adminHandler.DeleteAttractImage).Methods(http.MethodDelete)

	adminRouter.HandleFunc("/uploads", adminHandler.UploadImages).Methods(http.MethodPost)

	csrfMiddleware := csrf.Protect(
		keys.AuthKey,
		csrf.Secure(configs.LoadENV.AppEnv == "production"),
		csrf.Path("/"),
	)
	return csrfMiddleware(router)
}
