package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/ravenlog/ravenlog/internal/app/models"
	"github.com/ravenlog/ravenlog/internal/app/models/dto"
	"github.com/ravenlog/ravenlog/internal/pkg/apperrors"
)

type qualificationStore interface {
	GetAll(ctx context.Context) ([]*models.Qualification, error)
	GetByID(ctx context.Context, id int64) (*models.Qualification, error)
	Create(ctx context.Context, qualification *models.Qualification) error
	Delete(ctx context.Context, id int64) error
	UpsertProgress(ctx context.Context, personnelID uuid.UUID, qualificationID int64, progress int) (*models.PersonnelQualification, error)
	ListForPersonnel(ctx context.Context, personnelID uuid.UUID) ([]*models.PersonnelQualification, error)
}

type personnelFinder interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Personnel, error)
}

// QualificationService manages the qualification catalog and per-person
// training progress
type QualificationService struct {
	qualifications qualificationStore
	personnel      personnelFinder
}

// NewQualificationService creates a new qualification service
func NewQualificationService(qualifications qualificationStore, personnel personnelFinder) *QualificationService {
	return &QualificationService{
		qualifications: qualifications,
		personnel:      personnel,
	}
}

// ListQualifications returns the catalog grouped by category
func (s *QualificationService) ListQualifications(ctx context.Context) ([]*models.Qualification, error) {
	return s.qualifications.GetAll(ctx)
}

// CreateQualification adds a qualification definition
func (s *QualificationService) CreateQualification(ctx context.Context, req *dto.CreateQualificationRequest) (*models.Qualification, error) {
	qualification := &models.Qualification{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
	}
	if err := s.qualifications.Create(ctx, qualification); err != nil {
		return nil, err
	}
	return qualification, nil
}

// DeleteQualification removes a qualification nobody is tracked against
func (s *QualificationService) DeleteQualification(ctx context.Context, id int64) error {
	return s.qualifications.Delete(ctx, id)
}

// UpdateProgress sets a person's progress toward a qualification. Progress
// of 100 marks the qualification as awarded.
func (s *QualificationService) UpdateProgress(ctx context.Context, personnelID uuid.UUID, req *dto.UpdateProgressRequest) (*models.PersonnelQualification, error) {
	if req.Progress < 0 || req.Progress > 100 {
		return nil, apperrors.ErrInvalidProgress
	}

	if _, err := s.personnel.GetByID(ctx, personnelID); err != nil {
		return nil, err
	}
	if _, err := s.qualifications.GetByID(ctx, req.QualificationID); err != nil {
		return nil, err
	}

	return s.qualifications.UpsertProgress(ctx, personnelID, req.QualificationID, req.Progress)
}

// ListPersonnelQualifications returns a service record's tracked progress
func (s *QualificationService) ListPersonnelQualifications(ctx context.Context, personnelID uuid.UUID) ([]*models.PersonnelQualification, error) {
	if _, err := s.personnel.GetByID(ctx, personnelID); err != nil {
		return nil, err
	}
	return s.qualifications.ListForPersonnel(ctx, personnelID)
}
