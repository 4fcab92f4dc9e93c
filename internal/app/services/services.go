package services

import (
	"github.com/ravenlog/ravenlog/internal/app/repositories"
	"github.com/ravenlog/ravenlog/internal/db"
	"github.com/ravenlog/ravenlog/internal/pkg/auth"
)

// Services holds all the service instances
type Services struct {
	AuthService          *AuthService
	UserService          *UserService
	ApplicationService   *ApplicationService
	ReferenceService     *ReferenceService
	PersonnelService     *PersonnelService
	QualificationService *QualificationService
	EventService         *EventService
}

// NewServices wires all services onto the repositories and database
func NewServices(repos *repositories.Repositories, database *db.PostgresDB, jwtService *auth.JWTService) *Services {
	return &Services{
		AuthService: NewAuthService(repos.UserRepository, repos.TokenRepository, jwtService),
		UserService: NewUserService(repos.UserRepository),
		ApplicationService: NewApplicationService(
			repos.ApplicationRepository,
			repos.FormRepository,
			repos.RankRepository,
			repos.UnitRepository,
			repos.PositionRepository,
			repos.PersonnelRepository,
			repos.UserRepository,
			database,
		),
		ReferenceService: NewReferenceService(
			repos.RankRepository,
			repos.UnitRepository,
			repos.PositionRepository,
			repos.FormRepository,
		),
		PersonnelService: NewPersonnelService(
			repos.PersonnelRepository,
			repos.RankRepository,
			repos.UnitRepository,
			repos.PositionRepository,
			repos.AwardRepository,
		),
		QualificationService: NewQualificationService(
			repos.QualificationRepository,
			repos.PersonnelRepository,
		),
		EventService: NewEventService(
			repos.EventRepository,
			repos.UnitRepository,
		),
	}
}
