package router

import (
	"time"

	"eleostock/internal/config"
	"eleostock/internal/handler"
	"eleostock/internal/infra"
	"eleostock/internal/middleware"
	"eleostock/internal/repository"
	"eleostock/internal/service"
	"eleostock/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, images *infra.ImageStore) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	clientRepo := repository.NewClientRepository(db)
	processRepo := repository.NewProcessRepository(db)
	commandeRepo := repository.NewCommandeRepository(db)
	livraisonRepo := repository.NewLivraisonRepository(db)
	productionRepo := repository.NewProductionRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	resetSvc := service.NewPasswordResetService(userRepo, rdb, dispatcher, cfg.OTPExpiryMinutes)
	clientSvc := service.NewClientService(clientRepo, commandeRepo)
	processSvc := service.NewProcessService(processRepo)
	articleSvc := service.NewArticleService(articleRepo, clientRepo, processRepo, commandeRepo, livraisonRepo, productionRepo)
	commandeSvc := service.NewCommandeService(commandeRepo, articleRepo, clientRepo, livraisonRepo)
	livraisonSvc := service.NewLivraisonService(livraisonRepo, articleRepo, clientRepo, commandeRepo)
	productionSvc := service.NewProductionService(productionRepo, articleRepo)
	exportSvc := service.NewExportService(articleRepo, clientRepo, processRepo, commandeSvc, commandeRepo, livraisonRepo, productionRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc, resetSvc)
	articlesH := handler.NewArticlesHandler(articleSvc, exportSvc, images)
	clientsH := handler.NewClientsHandler(clientSvc, exportSvc)
	processH := handler.NewProcessHandler(processSvc, exportSvc)
	commandesH := handler.NewCommandesHandler(commandeSvc, exportSvc)
	livraisonsH := handler.NewLivraisonsHandler(livraisonSvc, livraisonRepo, exportSvc)
	productionsH := handler.NewProductionsHandler(productionSvc, exportSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/api/auth")
	{
		auth.POST("/signup", authH.Signup)
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
		auth.POST("/forgot-password", authH.ForgotPassword)
		auth.POST("/verify-otp", authH.VerifyOTP)
		auth.POST("/reset-password", authH.ResetPassword)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	api := r.Group("/api", jwtMW)
	{
		api.PUT("/users/profile", authH.UpdateProfile)
		api.POST("/users/change-password", authH.ChangePassword)

		articles := api.Group("/articles")
		{
			articles.POST("", articlesH.Creer)
			articles.GET("", articlesH.Lister)
			articles.GET("/export", articlesH.Exporter)
			articles.GET("/distinct/:champ", articlesH.ValeursDistinctes)
			articles.GET("/ref/:ref", articlesH.GetByRef)
			articles.GET("/:id", articlesH.GetByID)
			articles.PUT("/:id", articlesH.MettreAJour)
			articles.DELETE("/:id", articlesH.Supprimer)
			articles.POST("/:id/image", articlesH.UploadImage)
			articles.GET("/:id/image", articlesH.GetImage)
			articles.DELETE("/:id/image", articlesH.DeleteImage)
		}

		clients := api.Group("/clients")
		{
			clients.POST("", clientsH.Creer)
			clients.GET("", clientsH.Lister)
			clients.GET("/export", clientsH.Exporter)
			clients.GET("/simple", clientsH.ListerSimple)
			clients.GET("/noms", clientsH.NomsDistincts)
			clients.GET("/:id", clientsH.GetByID)
			clients.PUT("/:id", clientsH.MettreAJour)
			clients.DELETE("/:id", clientsH.Supprimer)
		}

		process := api.Group("/process")
		{
			process.POST("", processH.Creer)
			process.GET("", processH.Lister)
			process.GET("/export", processH.Exporter)
			process.GET("/simple", processH.ListerSimple)
			process.GET("/:id", processH.GetByID)
			process.PUT("/:id", processH.MettreAJour)
			process.DELETE("/:id", processH.Supprimer)
		}

		commandes := api.Group("/commandes")
		{
			commandes.POST("", commandesH.Creer)
			commandes.GET("", commandesH.Lister)
			commandes.GET("/summary", commandesH.Resumer)
			commandes.GET("/export", commandesH.Exporter)
			commandes.GET("/:id", commandesH.GetByID)
			commandes.PUT("/:id", commandesH.MettreAJour)
			commandes.DELETE("/:id", commandesH.Supprimer)
		}

		livraisons := api.Group("/livraisons")
		{
			livraisons.POST("", livraisonsH.Creer)
			livraisons.GET("", livraisonsH.Lister)
			livraisons.GET("/export", livraisonsH.Exporter)
			livraisons.GET("/:id", livraisonsH.GetByID)
			livraisons.GET("/:id/bl.pdf", livraisonsH.BonDeLivraison)
			livraisons.PUT("/:id", livraisonsH.MettreAJour)
			livraisons.DELETE("/:id", livraisonsH.Supprimer)
		}

		productions := api.Group("/productions")
		{
			productions.POST("", productionsH.Creer)
			productions.GET("", productionsH.Lister)
			productions.GET("/export", productionsH.Exporter)
			productions.GET("/:id", productionsH.GetByID)
			productions.PUT("/:id", productionsH.MettreAJour)
			productions.DELETE("/:id", productionsH.Supprimer)
		}
	}

	return r
}
