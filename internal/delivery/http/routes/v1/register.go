package v1

import (
	"staffing-engine/internal/config"
	"staffing-engine/internal/database"
	"staffing-engine/internal/delivery/http/handler"
	"staffing-engine/internal/delivery/http/middleware"
	"staffing-engine/internal/infrastructure/cache"
	"staffing-engine/internal/infrastructure/persistence/postgres"
	"staffing-engine/internal/pkg/jwt"
	"staffing-engine/internal/repository"
	"staffing-engine/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, redis *cache.Redis) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := postgres.NewUserRepository(db)
	skillRepo := repository.NewPostgresSkillRepository(db)
	employeeRepo := repository.NewPostgresEmployeeRepository(db)
	grantRepo := repository.NewPostgresEmployeeSkillRepository(db)
	requirementRepo := repository.NewPostgresRequirementRepository(db)
	phaseRepo := repository.NewPostgresPhaseRepository(db)
	assignmentRepo := repository.NewPostgresAssignmentRepository(db)
	demandRepo := repository.NewPostgresDemandRepository(db)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	skillUC := usecase.NewSkillUsecase(skillRepo)
	employeeSkillUC := usecase.NewEmployeeSkillUsecase(employeeRepo, grantRepo, skillRepo, redis)
	qualificationUC := usecase.NewQualificationUsecase(requirementRepo, employeeRepo, skillRepo)
	suggestionUC := usecase.NewSuggestionUsecase(phaseRepo, demandRepo, employeeRepo, redis)
	assignmentUC := usecase.NewAssignmentUsecase(employeeRepo, phaseRepo, assignmentRepo)

	authHandler := handler.NewAuthHandler(authUC)
	skillHandler := handler.NewSkillHandler(skillUC)
	employeeHandler := handler.NewEmployeeHandler(employeeSkillUC, assignmentUC)
	equipmentHandler := handler.NewEquipmentHandler(qualificationUC)
	eventHandler := handler.NewEventHandler(suggestionUC, assignmentUC)
	assignmentHandler := handler.NewAssignmentHandler(assignmentUC)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	protected := r.Group("", authMw.Middleware())

	skillHandler.RegisterRoutes(protected)
	employeeHandler.RegisterRoutes(protected)
	equipmentHandler.RegisterRoutes(protected)
	eventHandler.RegisterRoutes(protected)
	assignmentHandler.RegisterRoutes(protected)
}
