package v1

import (
	"refernet/internal/config"
	"refernet/internal/database"
	"refernet/internal/delivery/http/handler"
	"refernet/internal/delivery/http/middleware"
	"refernet/internal/infrastructure/cache"
	"refernet/internal/infrastructure/persistence/postgres"
	"refernet/internal/infrastructure/storage"
	"refernet/internal/pkg/jwt"
	"refernet/internal/pkg/logging"
	"refernet/internal/repository"
	"refernet/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Store  *storage.LocalStore
	Logger *logging.Logger
}

func Register(r fiber.Router, deps Deps) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		deps.Config.JWT.AccessSecret,
		deps.Config.JWT.RefreshSecret,
		deps.Config.JWT.AccessExpiresIn,
		deps.Config.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc, deps.Cache)

	userRepo := postgres.NewUserRepository(deps.DB)
	seekerRepo := repository.NewPostgresJobSeekerProfileRepository(deps.DB)
	referrerRepo := repository.NewPostgresReferrerProfileRepository(deps.DB)
	requestRepo := repository.NewPostgresReferralRequestRepository(deps.DB)
	vocabRepo := repository.NewPostgresVocabularyRepository(deps.DB)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc, deps.Cache)
	userUC := usecase.NewUserUsecase(userRepo)
	seekerProfileUC := usecase.NewJobSeekerProfileUsecase(seekerRepo)
	referrerProfileUC := usecase.NewReferrerProfileUsecase(referrerRepo)
	directoryUC := usecase.NewDirectoryUsecase(userRepo, seekerRepo, referrerRepo, deps.Cache, deps.Config.Redis.TTL)
	referralUC := usecase.NewReferralUsecase(requestRepo)
	dashboardUC := usecase.NewDashboardUsecase(requestRepo)
	vocabUC := usecase.NewVocabularyUsecase(vocabRepo)

	authHandler := handler.NewAuthHandler(authUC)
	userHandler := handler.NewUserHandler(userUC)
	seekerProfileHandler := handler.NewJobSeekerProfileHandler(seekerProfileUC)
	referrerProfileHandler := handler.NewReferrerProfileHandler(referrerProfileUC)
	directoryHandler := handler.NewDirectoryHandler(directoryUC, userUC)
	referralHandler := handler.NewReferralHandler(referralUC, userUC)
	dashboardHandler := handler.NewDashboardHandler(dashboardUC, userUC)
	vocabHandler := handler.NewVocabularyHandler(vocabUC)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	protected := r.Group("", authMw.Middleware())

	authHandler.RegisterProtectedRoutes(protected.Group("/auth"))
	userHandler.RegisterRoutes(protected.Group("/users"))
	seekerProfileHandler.RegisterRoutes(protected.Group("/profiles/job-seeker"))
	referrerProfileHandler.RegisterRoutes(protected.Group("/profiles/referrer"))
	directoryHandler.RegisterRoutes(protected.Group("/directory"))
	referralHandler.RegisterRoutes(protected.Group("/referrals"))
	dashboardHandler.RegisterRoutes(protected.Group("/dashboard"))
	vocabHandler.RegisterRoutes(protected.Group("/vocabulary"))

	if deps.Store != nil {
		uploadHandler := handler.NewUploadHandler(deps.Store, userUC)
		uploadHandler.RegisterRoutes(protected.Group("/uploads"))
	}
}
