package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/codetrackr/adapters/event"
	httpAdapter "github.com/khoahotran/codetrackr/adapters/http"
	"github.com/khoahotran/codetrackr/adapters/persistence"
	"github.com/khoahotran/codetrackr/internal/application/service"
	activityUC "github.com/khoahotran/codetrackr/internal/application/usecase/activity"
	authUC "github.com/khoahotran/codetrackr/internal/application/usecase/auth"
	dashboardUC "github.com/khoahotran/codetrackr/internal/application/usecase/dashboard"
	profileUC "github.com/khoahotran/codetrackr/internal/application/usecase/profile"
	projectUC "github.com/khoahotran/codetrackr/internal/application/usecase/project"
	questionUC "github.com/khoahotran/codetrackr/internal/application/usecase/question"
	"github.com/khoahotran/codetrackr/internal/config"
	"github.com/khoahotran/codetrackr/pkg/auth"
	"github.com/khoahotran/codetrackr/pkg/logger"
)

func main() {
	fmt.Println("Start CodeTrackr API Server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	// Initialize dependencies
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Postgres: %v", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Redis: %v", err)
	}
	defer redisClient.Close()

	// Kafka is optional: without brokers the API runs, it just publishes
	// no activity events.
	var publisher service.EventPublisher
	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		appLogger.Warn("Kafka unavailable, activity events disabled", zap.Error(err))
	} else {
		defer kafkaClient.Close()
		publisher = kafkaClient
	}

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool, appLogger)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	questionRepo := persistence.NewPostgresQuestionRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	activityRepo := persistence.NewPostgresActivityRepo(dbPool, appLogger)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	tokenStore := persistence.NewRedisTokenStore(redisClient)
	txManager := persistence.NewTxManager(dbPool)

	// Use Cases
	registerUseCase := authUC.NewRegisterUseCase(userRepo, profileRepo, txManager, appLogger)
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, tokenStore, cfg.Auth.RefreshTokenLifespan, appLogger)
	refreshUseCase := authUC.NewRefreshUseCase(jwtSvc, tokenStore, cfg.Auth.RefreshTokenLifespan, appLogger)
	profileUseCase := profileUC.NewProfileUseCase(profileRepo)
	createQuestionUseCase := questionUC.NewCreateQuestionUseCase(questionRepo, activityRepo, txManager, publisher, appLogger)
	listQuestionsUseCase := questionUC.NewListQuestionsUseCase(questionRepo, appLogger)
	getQuestionUseCase := questionUC.NewGetQuestionUseCase(questionRepo)
	updateQuestionUseCase := questionUC.NewUpdateQuestionUseCase(questionRepo, activityRepo, txManager, publisher, appLogger)
	deleteQuestionUseCase := questionUC.NewDeleteQuestionUseCase(questionRepo)
	createProjectUseCase := projectUC.NewCreateProjectUseCase(projectRepo, activityRepo, txManager, publisher, appLogger)
	listProjectsUseCase := projectUC.NewListProjectsUseCase(projectRepo, appLogger)
	getProjectUseCase := projectUC.NewGetProjectUseCase(projectRepo)
	updateProjectUseCase := projectUC.NewUpdateProjectUseCase(projectRepo, activityRepo, txManager, publisher, appLogger)
	deleteProjectUseCase := projectUC.NewDeleteProjectUseCase(projectRepo)
	listActivitiesUseCase := activityUC.NewListActivitiesUseCase(activityRepo, appLogger)
	getStatsUseCase := dashboardUC.NewGetStatsUseCase(questionRepo, projectRepo, activityRepo)

	// HTTP Handlers
	authHandler := httpAdapter.NewAuthHandler(registerUseCase, loginUseCase, refreshUseCase, appLogger)
	profileHandler := httpAdapter.NewProfileHandler(profileUseCase, appLogger)
	questionHandler := httpAdapter.NewQuestionHandler(
		createQuestionUseCase,
		listQuestionsUseCase,
		getQuestionUseCase,
		updateQuestionUseCase,
		deleteQuestionUseCase,
		appLogger,
	)
	projectHandler := httpAdapter.NewProjectHandler(
		createProjectUseCase,
		listProjectsUseCase,
		getProjectUseCase,
		updateProjectUseCase,
		deleteProjectUseCase,
		appLogger,
	)
	activityHandler := httpAdapter.NewActivityHandler(listActivitiesUseCase, appLogger)
	dashboardHandler := httpAdapter.NewDashboardHandler(getStatsUseCase, appLogger)

	// Middleware
	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc)
	errorMiddleware := httpAdapter.ErrorMiddleware(appLogger)

	// Setup Gin router
	router := gin.Default()
	router.Use(errorMiddleware)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/signup", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
		}

		private := api.Group("/")
		private.Use(authMiddleware)
		{
			private.GET("/profile", profileHandler.GetProfile)
			private.PUT("/profile", profileHandler.UpdateProfile)

			questions := private.Group("/questions")
			{
				questions.GET("", questionHandler.ListQuestions)
				questions.POST("", questionHandler.CreateQuestion)
				questions.GET("/:id", questionHandler.GetQuestion)
				questions.PUT("/:id", questionHandler.UpdateQuestion)
				questions.DELETE("/:id", questionHandler.DeleteQuestion)
			}

			projects := private.Group("/projects")
			{
				projects.GET("", projectHandler.ListProjects)
				projects.POST("", projectHandler.CreateProject)
				projects.GET("/:id", projectHandler.GetProject)
				projects.PUT("/:id", projectHandler.UpdateProject)
				projects.DELETE("/:id", projectHandler.DeleteProject)
			}

			private.GET("/activities", activityHandler.ListActivities)
			private.GET("/dashboard/stats", dashboardHandler.GetStats)
		}
	}

	log.Printf("Server running on port %s", cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Cannot run server: %v", err)
	}
}
