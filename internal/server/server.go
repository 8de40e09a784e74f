package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"goatgrids/internal/config"
	"goatgrids/internal/handler"
	"goatgrids/internal/middleware"
	"goatgrids/internal/service"
	"goatgrids/internal/upload"
)

type Server struct {
	echo *echo.Echo
}

type Services struct {
	Auth     service.AuthService
	Member   service.MemberService
	Catalog  service.CatalogService
	Order    service.OrderService
	Shipping service.ShippingService
	Travel   service.TravelService
}

func NewServer(cfg *config.Config, svcs Services) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	// Uploaded files are served back as static files.
	e.Static("/uploads", cfg.UploadsPath)

	saver := upload.NewSaver(cfg.UploadsPath)

	authHandler := handler.NewAuthHandler(svcs.Auth)
	memberHandler := handler.NewMemberHandler(svcs.Member)
	productHandler := handler.NewProductHandler(svcs.Catalog, saver)
	galleryHandler := handler.NewGalleryHandler(svcs.Catalog, saver)
	orderHandler := handler.NewOrderHandler(svcs.Order, cfg.BaseURL)
	webhookHandler := handler.NewWebhookHandler(svcs.Order)
	shippingHandler := handler.NewShippingHandler(svcs.Shipping)
	travelHandler := handler.NewTravelHandler(svcs.Travel, saver)

	staffAuth := middleware.StaffAuth(cfg.Auth.StaffSecret)
	memberAuth := middleware.MemberAuth(cfg.Auth.MemberSecret)

	api := e.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// -------- staff auth --------
	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.GET("/verify", authHandler.Verify, staffAuth)
	auth.POST("/change-password", authHandler.ChangePassword, staffAuth)

	// -------- products --------
	products := api.Group("/products")
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create, staffAuth)
	products.PUT("/:id", productHandler.Update, staffAuth)
	products.DELETE("/:id", productHandler.Delete, staffAuth)
	products.PATCH("/:id/stock", productHandler.ToggleStock, staffAuth)

	// -------- gallery --------
	gallery := api.Group("/gallery")
	gallery.GET("", galleryHandler.List)
	gallery.POST("", galleryHandler.Add, staffAuth)
	gallery.PUT("/reorder", galleryHandler.Reorder, staffAuth)
	gallery.PUT("/:id", galleryHandler.Update, staffAuth)
	gallery.DELETE("/:id", galleryHandler.Delete, staffAuth)

	// -------- orders --------
	orders := api.Group("/orders")
	orders.POST("", orderHandler.Create)
	orders.GET("", orderHandler.List, staffAuth)
	orders.GET("/:id/status", orderHandler.Status)
	orders.POST("/:id/payment-link", orderHandler.CreatePaymentLink)
	orders.GET("/:id", orderHandler.Get, staffAuth)
	orders.PATCH("/:id/status", orderHandler.UpdateStatus, staffAuth)
	orders.DELETE("/:id", orderHandler.Delete, staffAuth)

	// -------- shipping --------
	shipping := api.Group("/shipping")
	shipping.POST("/quote", shippingHandler.Quote)
	shipping.POST("/create-shipment", shippingHandler.CreateShipment, staffAuth)
	shipping.GET("/track/:waybill", shippingHandler.Track)

	// -------- webhooks --------
	api.POST("/webhooks/yoco", webhookHandler.Yoco)

	// -------- members --------
	members := api.Group("/members")
	members.POST("/register", memberHandler.Register)
	members.POST("/login", memberHandler.Login)
	members.GET("/verify", memberHandler.Verify, memberAuth)
	members.GET("/profile", memberHandler.Profile, memberAuth)
	members.PUT("/profile", memberHandler.UpdateProfile, memberAuth)
	members.POST("/change-password", memberHandler.ChangePassword, memberAuth)
	members.GET("/:id/public", memberHandler.PublicProfile)

	// -------- travel posts --------
	travels := api.Group("/travels")
	travels.GET("", travelHandler.Feed)
	travels.GET("/map", travelHandler.MapPins)
	travels.GET("/member/:memberId", travelHandler.ByMember)
	travels.GET("/:id", travelHandler.Get)
	travels.POST("", travelHandler.Create, memberAuth)
	travels.PUT("/:id", travelHandler.Update, memberAuth)
	travels.DELETE("/:id", travelHandler.Delete, memberAuth)

	return &Server{echo: e}
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}

// Echo exposes the underlying router for handler tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}
