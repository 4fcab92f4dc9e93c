package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository          *UserRepository
	TokenRepository         *TokenRepository
	ApplicationRepository   *ApplicationRepository
	FormRepository          *FormRepository
	RankRepository          *RankRepository
	UnitRepository          *UnitRepository
	PositionRepository      *PositionRepository
	PersonnelRepository     *PersonnelRepository
	AwardRepository         *AwardRepository
	QualificationRepository *QualificationRepository
	EventRepository         *EventRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:          NewUserRepository(db),
		TokenRepository:         NewTokenRepository(db),
		ApplicationRepository:   NewApplicationRepository(db),
		FormRepository:          NewFormRepository(db),
		RankRepository:          NewRankRepository(db),
		UnitRepository:          NewUnitRepository(db),
		PositionRepository:      NewPositionRepository(db),
		PersonnelRepository:     NewPersonnelRepository(db),
		AwardRepository:         NewAwardRepository(db),
		QualificationRepository: NewQualificationRepository(db),
		EventRepository:         NewEventRepository(db),
	}
}
