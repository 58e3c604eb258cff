package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/baonguyen/folio-api/adapters/event"
	httpAdapter "github.com/baonguyen/folio-api/adapters/http"
	"github.com/baonguyen/folio-api/adapters/media_storage"
	"github.com/baonguyen/folio-api/adapters/persistence"
	aboutUC "github.com/baonguyen/folio-api/internal/application/usecase/about"
	authUC "github.com/baonguyen/folio-api/internal/application/usecase/auth"
	experienceUC "github.com/baonguyen/folio-api/internal/application/usecase/experience"
	projectUC "github.com/baonguyen/folio-api/internal/application/usecase/project"
	skillUC "github.com/baonguyen/folio-api/internal/application/usecase/skill"
	"github.com/baonguyen/folio-api/internal/config"
	"github.com/baonguyen/folio-api/pkg/auth"
	"github.com/baonguyen/folio-api/pkg/logger"
	"github.com/baonguyen/folio-api/pkg/tracing"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting Folio API server...")

	if cfg.Tracing.Enabled {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "folio-api")
		if err != nil {
			appLogger.Fatal("cannot init tracer", err)
		}
		defer tp.Shutdown(context.Background())
	}

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	uploader, err := media_storage.NewCloudinaryAdapter(cfg)
	if err != nil {
		appLogger.Fatal("cannot init uploader", err)
	}

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool)
	skillRepo := persistence.NewPostgresSkillRepo(dbPool)
	experienceRepo := persistence.NewPostgresExperienceRepo(dbPool)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool)
	aboutRepo := persistence.NewPostgresAboutRepo(dbPool)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	cache := persistence.NewRedisCache(redisClient)
	cookies := httpAdapter.NewCookieManager(cfg.Auth.CookieDomain, cfg.Auth.CookieSecure)

	// Use Cases
	registerUseCase := authUC.NewRegisterUseCase(userRepo, jwtSvc, appLogger)
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	getMeUseCase := authUC.NewGetMeUseCase(userRepo)
	skillUseCase := skillUC.NewSkillUseCase(skillRepo, uploader, kafkaClient, cache, appLogger)
	experienceUseCase := experienceUC.NewExperienceUseCase(experienceRepo, kafkaClient, cache, appLogger)
	createProjectUseCase := projectUC.NewCreateProjectUseCase(projectRepo, uploader, kafkaClient, cache, appLogger)
	listProjectsUseCase := projectUC.NewListProjectsUseCase(projectRepo, cache, appLogger)
	updateProjectUseCase := projectUC.NewUpdateProjectUseCase(projectRepo, uploader, kafkaClient, cache, appLogger)
	deleteProjectUseCase := projectUC.NewDeleteProjectUseCase(projectRepo, kafkaClient, cache, appLogger)
	aboutUseCase := aboutUC.NewAboutUseCase(aboutRepo, uploader, kafkaClient, cache, appLogger)

	// HTTP Handlers
	authHandler := httpAdapter.NewAuthHandler(registerUseCase, loginUseCase, getMeUseCase, jwtSvc, cookies, appLogger)
	skillHandler := httpAdapter.NewSkillHandler(skillUseCase, appLogger)
	experienceHandler := httpAdapter.NewExperienceHandler(experienceUseCase, appLogger)
	projectHandler := httpAdapter.NewProjectHandler(
		createProjectUseCase,
		listProjectsUseCase,
		updateProjectUseCase,
		deleteProjectUseCase,
		appLogger,
	)
	aboutHandler := httpAdapter.NewAboutHandler(aboutUseCase, appLogger)

	// Middleware
	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc)
	errorMiddleware := httpAdapter.ErrorMiddleware(appLogger)

	httpAdapter.InitValidation()

	router := gin.Default()
	router.Use(errorMiddleware)

	api := router.Group("/api/v1")
	{
		user := api.Group("/user")
		{
			user.POST("/register", authHandler.Register)
			user.POST("/login", authHandler.Login)
			user.POST("/logout", authHandler.Logout)
			user.GET("/me", authMiddleware, authHandler.Me)
		}

		skill := api.Group("/skill")
		{
			skill.GET("", skillHandler.ListSkills)
			skill.POST("", authMiddleware, skillHandler.CreateSkill)
			skill.PUT("/:id", authMiddleware, skillHandler.UpdateSkill)
			skill.DELETE("/:id", authMiddleware, skillHandler.DeleteSkill)
		}

		experience := api.Group("/experience")
		{
			experience.GET("", experienceHandler.ListExperiences)
			experience.POST("", authMiddleware, experienceHandler.CreateExperience)
			experience.PUT("/:id", authMiddleware, experienceHandler.UpdateExperience)
			experience.DELETE("/:id", authMiddleware, experienceHandler.DeleteExperience)
		}

		project := api.Group("/project")
		{
			project.GET("", projectHandler.ListProjects)
			project.POST("", authMiddleware, projectHandler.CreateProject)
			project.PUT("/:id", authMiddleware, projectHandler.UpdateProject)
			project.DELETE("/:id", authMiddleware, projectHandler.DeleteProject)
		}

		about := api.Group("/about")
		{
			about.GET("", aboutHandler.GetAbout)
			about.POST("", authMiddleware, aboutHandler.CreateAbout)
			about.PUT("/:id", authMiddleware, aboutHandler.UpdateAbout)
		}
	}

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("cannot run server", err)
	}
}
