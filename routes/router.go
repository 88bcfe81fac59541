package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bicudoweb/galeria/config"
	"github.com/bicudoweb/galeria/controllers"
	"github.com/bicudoweb/galeria/middleware"
	"github.com/bicudoweb/galeria/services"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST"},
		AllowHeaders:    []string{"Content-Type"},
		MaxAge:          12 * time.Hour,
	}))

	// Record public gallery views after each request
	r.Use(middleware.PageViewRecorder(db))

	r.LoadHTMLGlob("templates/*.html")

	// Raw blob retrieval by exact stored filename
	r.Static("/uploads", cfg.UploadDir)

	galleryService := services.NewGalleryService(db)
	uploadService := services.NewUploadService(db, cfg.UploadDir)

	galleryController := controllers.NewGalleryController(galleryService)
	authController := controllers.NewAuthController()
	adminController := controllers.NewAdminController(galleryService, uploadService)

	// Public pages
	r.GET("/", galleryController.Home)
	r.GET("/galeria/:turma", galleryController.Galeria)
	r.GET("/health", galleryController.Health)

	// Access gate
	r.GET("/auth", authController.Form)
	r.POST("/auth", authController.Authenticate)
	r.GET("/sair", authController.Logout)

	// Management area, admin session required
	admin := r.Group("")
	admin.Use(middleware.AdminRequired())
	admin.GET("/admin", adminController.Listing)
	admin.GET("/upload", adminController.UploadForm)
	admin.POST("/upload", middleware.BodySizeLimit(cfg.MaxUploadSize), adminController.Upload)
	admin.POST("/delete/:id", adminController.Delete)

	r.NoRoute(func(ctx *gin.Context) {
		ctx.String(http.StatusNotFound, "página não encontrada")
	})

	return r
}
