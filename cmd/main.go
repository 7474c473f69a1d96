package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"dayflow-app/dayflow/config"
	"dayflow-app/dayflow/database"
	"dayflow-app/dayflow/middleware"
	"dayflow-app/dayflow/routes"
	"dayflow-app/dayflow/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	db, err := database.Setup(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Initialize authentication service
	authService := services.NewAuthService(cfg.JWTSecret, cfg.JWTExpirationHours)
	services.AuthServiceInstance = authService

	// Initialize user service with auth service dependency
	userService := services.NewUserService(authService)
	services.UserServiceInstance = userService

	// Aggregation view over the item stores and the category registry
	dashboardService := services.NewDashboardService(
		services.NoteServiceInstance,
		services.TodoServiceInstance,
		services.ReminderServiceInstance,
		services.CategoryServiceInstance,
	)
	services.DashboardServiceInstance = dashboardService

	router := gin.Default()
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	api := router.Group("/api")

	// Credential endpoints are open but throttled per client IP
	limiter := middleware.NewRateLimiter(cfg.AuthRateLimitRPS, cfg.AuthRateLimitBurst)
	public := api.Group("", middleware.RateLimitMiddleware(limiter))
	routes.RegisterAuthRoutes(public, db, authService, userService)

	// Everything else sits behind the authorization gate
	protected := api.Group("", middleware.AuthMiddleware(authService))
	routes.RegisterCategoryRoutes(protected, db, services.CategoryServiceInstance)
	routes.RegisterNoteRoutes(protected, db, services.NoteServiceInstance)
	routes.RegisterTodoRoutes(protected, db, services.TodoServiceInstance)
	routes.RegisterReminderRoutes(protected, db, services.ReminderServiceInstance)
	routes.RegisterDashboardRoutes(protected, db, dashboardService, services.TodoServiceInstance, services.ReminderServiceInstance)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down server...")
		db.Close()
		os.Exit(0)
	}()

	log.Printf("API server is running on port %s", cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
