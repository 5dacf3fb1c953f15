// Package devserver is a fixture-backed implementation of the storefront
// backend's endpoint surface. It exists so the client, its integration
// tests, and the CLI run without infrastructure; it is not the production
// backend.
package devserver

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Server wraps the HTTP server setup.
type Server struct {
	httpServer *http.Server
	logger     *log.Logger
}

// New builds a Server over the given state.
func New(addr string, state *State, logger *log.Logger) *Server {
	router := NewRouter(state, logger)

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		httpServer: httpSrv,
		logger:     logger,
	}
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// NewRouter wires all routes. Exported so tests can mount it on httptest.
func NewRouter(state *State, logger *log.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	h := &handlers{state: state, logger: logger}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.POST("/Auth/Login", h.login)
	router.POST("/Auth/Register", h.register)
	router.POST("/Auth/ForgotPassword", h.forgotPassword)
	router.POST("/Auth/ResendConfirmationEmail", h.resendConfirmation)

	router.GET("/Category/GetAll", h.listCategories)
	router.GET("/Product/GetAll", h.listProducts)
	router.GET("/Product/Get/:id", h.getProduct)
	router.GET("/Product/GetByCategory/:id", h.productsByCategory)
	router.POST("/Product/Search", h.searchProducts)
	router.POST("/Product/SearchByImage", h.searchByImage)

	router.GET("/Coupon/GetAll", h.listCoupons)
	router.POST("/Coupon/Validate", h.validateCoupon)
	router.GET("/Commission/GetAll", h.listCommissions)
	router.GET("/ShippingTax/GetAll", h.listShippingRates)
	router.POST("/SupportProblem/Create", h.createProblem)

	authed := router.Group("", h.requireAuth)
	authed.GET("/Cart", h.getCart)
	authed.POST("/Cart/Add", h.addToCart)
	authed.PUT("/Cart/UpdateQuantity", h.updateCartQuantity)
	authed.DELETE("/Cart/Remove/:id", h.removeFromCart)

	authed.GET("/Favorite", h.getFavorite)
	authed.POST("/Favorite/AddItem/:id", h.addFavoriteItem)
	authed.DELETE("/Favorite/RemoveItem/:id", h.removeFavoriteItem)
	authed.POST("/Favorite/AddSaller/:id", h.addFavoriteSeller)
	authed.DELETE("/Favorite/RemoveSaller/:id", h.removeFavoriteSeller)

	authed.POST("/Order/Create", h.createOrder)
	authed.GET("/Order/GetAll", h.listOrders)
	authed.GET("/Order/Get/:id", h.getOrder)
	authed.PATCH("/Order/UpdateStatus/:id", h.updateOrderStatus)

	authed.GET("/Profile", h.getProfile)
	authed.PUT("/Profile/Update", h.updateProfile)
	authed.GET("/Address/GetAll", h.listAddresses)
	authed.POST("/Address/Add", h.addAddress)
	authed.DELETE("/Address/Remove/:id", h.removeAddress)
	authed.GET("/BankAccount/GetAll", h.listBankAccounts)
	authed.POST("/BankAccount/Add", h.addBankAccount)
	authed.DELETE("/BankAccount/Remove/:id", h.removeBankAccount)

	return router
}

type handlers struct {
	state  *State
	logger *log.Logger
}
