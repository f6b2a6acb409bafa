package v1

import (
	"job-board/internal/config"
	"job-board/internal/database"
	"job-board/internal/delivery/http/handler"
	"job-board/internal/delivery/http/middleware"
	"job-board/internal/infrastructure/cache"
	"job-board/internal/pkg/jwt"
	"job-board/internal/repository"
	"job-board/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
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

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(deps.DB)
	jobRepo := repository.NewPostgresJobRepository(deps.DB)
	appRepo := repository.NewPostgresApplicationRepository(deps.DB)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	userUC := usecase.NewUserUsecase(userRepo)
	jobUC := usecase.NewJobUsecase(jobRepo, appRepo, deps.Cache, deps.Config.Jobs)
	appUC := usecase.NewApplicationUsecase(appRepo, jobRepo, userRepo)

	authHandler := handler.NewAuthHandler(authUC)
	userHandler := handler.NewUserHandler(userUC)
	jobHandler := handler.NewJobHandler(jobUC)
	appHandler := handler.NewApplicationHandler(appUC)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	// Browsing the catalog needs no session.
	publicJobs := r.Group("/jobs")
	jobHandler.RegisterPublicRoutes(publicJobs)

	protected := r.Group("", authMw.Middleware())

	usersGroup := protected.Group("/users")
	userHandler.RegisterRoutes(usersGroup)

	jobsGroup := protected.Group("/jobs")
	jobHandler.RegisterProtectedRoutes(jobsGroup)
	appHandler.RegisterJobRoutes(jobsGroup)

	appsGroup := protected.Group("/applications")
	appHandler.RegisterRoutes(appsGroup)
}
