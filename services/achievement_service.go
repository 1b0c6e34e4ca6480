package services

import (
	"context"
	"time"

	"portfolioapi/models"
	repository "portfolioapi/repositories"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AchievementService interface {
	Create(ctx context.Context, achievement *models.Achievement) (*models.Achievement, error)
	GetAll(ctx context.Context) ([]models.Achievement, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Achievement, error)
	Update(ctx context.Context, id primitive.ObjectID, update *models.AchievementUpdate) (*models.Achievement, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type achievementService struct {
	repo repository.AchievementRepository
}

func NewAchievementService(repo repository.AchievementRepository) AchievementService {
	return &achievementService{
		repo: repo,
	}
}

func (s *achievementService) Create(ctx context.Context, achievement *models.Achievement) (*models.Achievement, error) {
	now := time.Now()
	achievement.CreatedAt = now
	achievement.UpdatedAt = now

	if err := s.repo.Create(ctx, achievement); err != nil {
		return nil, err
	}

	return achievement, nil
}

func (s *achievementService) GetAll(ctx context.Context) ([]models.Achievement, error) {
	return s.repo.GetAll(ctx)
}

func (s *achievementService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Achievement, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *achievementService) Update(ctx context.Context, id primitive.ObjectID, update *models.AchievementUpdate) (*models.Achievement, error) {
	set := bson.M{}

	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Date != nil {
		set["date"] = *update.Date
	}
	if update.Organization != nil {
		set["organization"] = *update.Organization
	}
	if update.CredentialLink != nil {
		set["credentialLink"] = *update.CredentialLink
	}
	if update.CertificateImage != nil {
		set["certificateImage"] = *update.CertificateImage
	}
	if update.CertificateImagePublicID != nil {
		set["certificateImagePublicId"] = *update.CertificateImagePublicID
	}
	set["updatedAt"] = time.Now()

	return s.repo.Update(ctx, id, set)
}

func (s *achievementService) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.repo.Delete(ctx, id)
	return err
}
