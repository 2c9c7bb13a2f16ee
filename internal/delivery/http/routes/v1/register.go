package v1

import (
	"log"

	"career-compass/internal/config"
	"career-compass/internal/database"
	"career-compass/internal/delivery/http/handler"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/infrastructure/cache"
	"career-compass/internal/infrastructure/youtube"
	"career-compass/internal/pkg/jwt"
	"career-compass/internal/repository"
	"career-compass/internal/usecase"
	"career-compass/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Config  config.Config
	DB      database.DB
	Cache   *cache.Redis
	YouTube *youtube.Client
	Hub     *ws.Hub
	Logger  *log.Logger
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
	notifier := ws.NewNotifier(deps.Hub)

	userRepo := repository.NewPostgresUserRepository(deps.DB)
	profileStore := repository.NewPostgresProfileStore(deps.DB)
	jobRepo := repository.NewPostgresJobRepository(deps.DB)
	mentorshipRepo := repository.NewPostgresMentorshipRepository(deps.DB)

	// The cache pointer may be a degraded (nil-client) instance; usecases
	// treat a nil interface as "no cache" so only pass it when live.
	var recCache usecase.RecommendationCache
	var draftStore usecase.DraftStore
	if deps.Cache != nil {
		recCache = deps.Cache
		draftStore = deps.Cache
	}

	authUC := usecase.NewAuthUsecase(userRepo, profileStore, jwtSvc, deps.Logger)
	profileUC := usecase.NewProfileUsecase(profileStore)
	skillsUC := usecase.NewSkillSetUsecase(profileStore, notifier)
	recommendationUC := usecase.NewRecommendationUsecase(profileStore, deps.YouTube, recCache, deps.Logger)
	savedUC := usecase.NewSavedItemsUsecase(profileStore, notifier)
	jobsUC := usecase.NewJobBoardUsecase(jobRepo)
	mentorshipUC := usecase.NewMentorshipUsecase(mentorshipRepo)
	careerUC := usecase.NewCareerUsecase(profileStore, deps.Logger)
	dashboardUC := usecase.NewDashboardUsecase(profileStore)

	authHandler := handler.NewAuthHandler(authUC)
	profileHandler := handler.NewProfileHandler(profileUC)
	skillsHandler := handler.NewSkillsHandler(skillsUC)
	recommendationHandler := handler.NewRecommendationHandler(recommendationUC)
	savedHandler := handler.NewSavedCoursesHandler(savedUC)
	jobsHandler := handler.NewJobsHandler(jobsUC)
	mentorshipHandler := handler.NewMentorshipHandler(mentorshipUC)
	careerHandler := handler.NewCareerHandler(careerUC)
	dashboardHandler := handler.NewDashboardHandler(dashboardUC)
	wsHandler := ws.NewHandler(deps.Hub, jwtSvc, deps.Logger)

	authHandler.RegisterRoutes(r.Group("/auth"))
	jobsHandler.RegisterRoutes(r.Group("/jobs"))

	protected := r.Group("", authMw.Middleware())

	profileHandler.RegisterRoutes(protected.Group("/profile"))
	skillsHandler.RegisterRoutes(protected.Group("/skills"))
	recommendationHandler.RegisterRoutes(protected.Group("/recommendations"))
	savedHandler.RegisterRoutes(protected.Group("/saved-courses"))
	mentorshipHandler.RegisterRoutes(protected.Group("/mentorship"))
	careerHandler.RegisterRoutes(protected.Group("/career"))
	dashboardHandler.RegisterRoutes(protected.Group("/dashboard"))

	if draftStore != nil {
		draftHandler := handler.NewDraftHandler(usecase.NewDraftUsecase(draftStore))
		draftHandler.RegisterRoutes(protected.Group("/resume/draft"))
	}

	// Websocket auth happens inside the handler via the token query
	// parameter, so it stays outside the bearer middleware.
	r.Get("/ws/dashboard", wsHandler.HandleDashboardWS)
}
