package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/ravenlog/ravenlog/internal/app/models"
	appRepos "github.com/ravenlog/ravenlog/internal/app/repositories"
	"github.com/ravenlog/ravenlog/internal/pkg/apperrors"
	"github.com/ravenlog/ravenlog/internal/pkg/auth"
)

// CreateDefaultData seeds the rank ladder, a starter unit with positions,
// a basic recruitment form and the default admin account. Everything here
// is idempotent: existing rows are left untouched.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	rankRepo := appRepos.NewRankRepository(dbPool)
	unitRepo := appRepos.NewUnitRepository(dbPool)
	positionRepo := appRepos.NewPositionRepository(dbPool)
	formRepo := appRepos.NewFormRepository(dbPool)
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	// --- Rank ladder ---
	ranks, err := rankRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(ranks) == 0 {
		defaults := []appModels.Rank{
			{Name: "Airman", Abbreviation: "Amn", SortOrder: 1},
			{Name: "Senior Airman", Abbreviation: "SrA", SortOrder: 2},
			{Name: "Staff Sergeant", Abbreviation: "SSgt", SortOrder: 3},
			{Name: "Second Lieutenant", Abbreviation: "2Lt", SortOrder: 4},
			{Name: "First Lieutenant", Abbreviation: "1Lt", SortOrder: 5},
			{Name: "Captain", Abbreviation: "Capt", SortOrder: 6},
		}
		for i := range defaults {
			if err := rankRepo.Create(ctx, &defaults[i]); err != nil {
				lgr.Error().Err(err).Str("rank", defaults[i].Name).Msg("Error creating default rank")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	// --- Starter unit with positions ---
	units, err := unitRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(units) == 0 {
		callsign := "Raven"
		unit := &appModels.Unit{Name: "1st Training Squadron", UnitType: "squadron", Callsign: &callsign}
		if err := unitRepo.Create(ctx, unit); err != nil {
			lgr.Error().Err(err).Msg("Error creating default unit")
			finalErr = errors.Join(finalErr, err)
		} else {
			positions := []appModels.UnitPosition{
				{UnitID: unit.ID, Name: "Squadron Leader", Color: "#d4af37", IsLeadership: true},
				{UnitID: unit.ID, Name: "Flight Lead", Color: "#8888ff", IsLeadership: true},
				{UnitID: unit.ID, Name: "Wingman", Color: "#cccccc"},
			}
			for i := range positions {
				if err := positionRepo.Create(ctx, &positions[i]); err != nil {
					lgr.Error().Err(err).Str("position", positions[i].Name).Msg("Error creating default position")
					finalErr = errors.Join(finalErr, err)
				}
			}
		}
	}

	// --- Basic recruitment form ---
	forms, err := formRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(forms) == 0 {
		form := &appModels.RecruitmentForm{
			Title: "Standard Application",
			Fields: []appModels.FormField{
				{Label: "Why do you want to join?", FieldType: "textarea", Required: true},
				{Label: "Previous experience", FieldType: "textarea"},
				{Label: "Preferred role", FieldType: "text", Required: true},
			},
		}
		if err := formRepo.Create(ctx, form); err != nil {
			lgr.Error().Err(err).Msg("Error creating default recruitment form")
			finalErr = errors.Join(finalErr, err)
		}
	}

	// --- Default admin account ---
	_, err = userRepo.GetByEmail(ctx, "admin@ravenlog.local")
	if errors.Is(err, apperrors.ErrUserNotFound) {
		lgr.Info().Msg("Creating default admin user...")
		hashed, hashErr := auth.HashPassword("Admin123!")
		if hashErr != nil {
			finalErr = errors.Join(finalErr, hashErr)
		} else {
			admin := &appModels.User{
				Email:     "admin@ravenlog.local",
				Password:  hashed,
				FirstName: "System",
				LastName:  "Admin",
				Role:      appModels.RoleAdmin,
				IsActive:  true,
			}
			if createErr := userRepo.Create(ctx, admin); createErr != nil {
				lgr.Error().Err(createErr).Msg("Error creating default admin user")
				finalErr = errors.Join(finalErr, createErr)
			}
		}
	} else if err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}
