package main

import (
	"catalog-service/internal/handler"
	mid "catalog-service/internal/middleware"
	"catalog-service/pkg/config"
	"catalog-service/pkg/database"
	"catalog-service/pkg/logger"
	"catalog-service/pkg/render"
	"catalog-service/pkg/session"
	"catalog-service/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration (reads .env when present)
	appConfig, err := config.Load("catalog-service")
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting catalog-service", appConfig.LogConfig()...)

	// Initialize the admin session cookie signer
	session.Initialize(&appConfig.Session)
	log.Info("Session signer initialized")

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database. A failure here is fatal: the site is useless
	// without its catalog.
	if err := database.InitDB(appConfig); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	// Seed the initial admin account when configured
	if err := database.SeedAdmin(database.GetDB(), &appConfig.Admin); err != nil {
		log.Fatal("Failed to seed admin account", zap.Error(err))
	}

	// Configure the upload directory for product images
	handler.SetUploadDir(appConfig.Upload.Dir)

	// Initialize Echo instance
	e := echo.New()

	renderer, err := render.New("web/templates/*.html")
	if err != nil {
		log.Fatal("Failed to parse templates", zap.Error(err))
	}
	e.Renderer = renderer

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(logger.Middleware(log))
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", handler.Health)

	// Uploaded product images
	e.Static("/static/uploads", appConfig.Upload.Dir)

	// Public catalog routes
	e.GET("/", handler.Home)
	e.GET("/about", handler.About)
	e.GET("/contact", handler.ContactForm)
	e.POST("/contact", handler.SubmitContact)
	e.GET("/category/:id", handler.CategoryProducts)
	e.GET("/product/:id", handler.ProductDetail)
	e.GET("/inquiry/:id", handler.InquiryForm)
	e.POST("/inquiry/:id", handler.SubmitInquiry)

	// Admin auth routes stay outside the session gate
	e.GET("/admin/login", handler.LoginForm)
	e.POST("/admin/login", handler.Login)
	e.GET("/admin/logout", handler.Logout)

	// Session-gated admin routes
	adminPages := e.Group("/admin", mid.AdminRequired)
	adminPages.GET("/dashboard", handler.Dashboard)
	adminPages.GET("/inquiries", handler.ListInquiries)
	adminPages.GET("/add-product", handler.AddProductForm)
	adminPages.POST("/add-product", handler.AddProduct)
	adminPages.GET("/delete-product/:id", handler.DeleteProduct)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
