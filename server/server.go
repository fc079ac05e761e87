package server

import (
	"billscan-server/confs"
	"billscan-server/db"
	httpHandler "billscan-server/handlers/http"
	"billscan-server/repositories"
	"billscan-server/usecases"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app *gin.Engine
	db  db.Database
	cfg *confs.Config
}

func NewServer(database db.Database, cfg *confs.Config) *Server {
	return &Server{
		app: gin.Default(),
		db:  database,
		cfg: cfg,
	}
}

func (s *Server) Start() {
	s.Setup()

	if err := s.app.Run(s.cfg.ListenAddr); err != nil {
		panic(err)
	}
}

// Setup wires middleware, handlers and routes onto the engine.
func (s *Server) Setup() {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	tokenRepo := repositories.NewResetTokenPgRepository(s.db)
	billRepo := repositories.NewBillPgRepository(s.db)
	categoryRepo := repositories.NewCategoryPgRepository(s.db)
	settingsRepo := repositories.NewSettingsPgRepository(s.db)

	// Initialize use cases
	authUseCase := usecases.NewAuthUseCase(userRepo, tokenRepo, settingsRepo, []byte(s.cfg.JWTSecret))
	userUseCase := usecases.NewUserUseCase(userRepo)
	billUseCase := usecases.NewBillUseCase(billRepo, categoryRepo)
	categoryUseCase := usecases.NewCategoryUseCase(categoryRepo)
	settingsUseCase := usecases.NewSettingsUseCase(settingsRepo)

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(authUseCase)
	userHandler := httpHandler.NewUserHandler(userUseCase)
	billHandler := httpHandler.NewBillHandler(billUseCase)
	categoryHandler := httpHandler.NewCategoryHandler(categoryUseCase)
	settingsHandler := httpHandler.NewSettingsHandler(settingsUseCase)

	// Setup API routes
	api := s.app.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/forgot-password", authHandler.ForgotPassword)
			auth.POST("/reset-password", authHandler.ResetPassword)
		}

		api.GET("/users/:id", userHandler.GetUser)

		api.GET("/bills/:user_id", billHandler.ListBills)
		api.POST("/bills", billHandler.CreateBill)

		api.GET("/categories", categoryHandler.ListCategories)

		api.GET("/settings/:user_id", settingsHandler.GetSettings)
		api.PUT("/settings/:user_id", settingsHandler.UpdateSettings)

		api.GET("/health", s.healthCheck)
	}
}

// Engine exposes the configured router, mainly for tests.
func (s *Server) Engine() *gin.Engine { return s.app }

// healthCheck answers GET /api/health with a database round trip. The raw
// error string goes out on failure; this endpoint is internal diagnostics.
func (s *Server) healthCheck(c *gin.Context) {
	err := s.db.GetDB().WithContext(c.Request.Context()).Exec("SELECT 1").Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}
