package services

import (
	"context"
	"time"

	"portfolioapi/models"
	repository "portfolioapi/repositories"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ExperienceService interface {
	Create(ctx context.Context, experience *models.Experience) (*models.Experience, error)
	GetAll(ctx context.Context) ([]models.Experience, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Experience, error)
	Update(ctx context.Context, id primitive.ObjectID, update *models.ExperienceUpdate) (*models.Experience, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type experienceService struct {
	repo repository.ExperienceRepository
}

func NewExperienceService(repo repository.ExperienceRepository) ExperienceService {
	return &experienceService{
		repo: repo,
	}
}

func (s *experienceService) Create(ctx context.Context, experience *models.Experience) (*models.Experience, error) {
	now := time.Now()
	experience.CreatedAt = now
	experience.UpdatedAt = now

	if experience.Type == "" {
		experience.Type = models.ExperienceTypeFullTime
	}

	if err := s.repo.Create(ctx, experience); err != nil {
		return nil, err
	}

	return experience, nil
}

func (s *experienceService) GetAll(ctx context.Context) ([]models.Experience, error) {
	return s.repo.GetAll(ctx)
}

func (s *experienceService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Experience, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *experienceService) Update(ctx context.Context, id primitive.ObjectID, update *models.ExperienceUpdate) (*models.Experience, error) {
	set := bson.M{}

	if update.Role != nil {
		set["role"] = *update.Role
	}
	if update.Company != nil {
		set["company"] = *update.Company
	}
	if update.Duration != nil {
		set["duration"] = *update.Duration
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Type != nil {
		set["type"] = *update.Type
	}
	set["updatedAt"] = time.Now()

	return s.repo.Update(ctx, id, set)
}

func (s *experienceService) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.repo.Delete(ctx, id)
	return err
}
