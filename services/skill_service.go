package services

import (
	"context"
	"time"

	"portfolioapi/models"
	repository "portfolioapi/repositories"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SkillService interface {
	Create(ctx context.Context, skill *models.Skill) (*models.Skill, error)
	GetAll(ctx context.Context) ([]models.Skill, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Skill, error)
	Update(ctx context.Context, id primitive.ObjectID, update *models.SkillUpdate) (*models.Skill, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type skillService struct {
	repo repository.SkillRepository
}

func NewSkillService(repo repository.SkillRepository) SkillService {
	return &skillService{
		repo: repo,
	}
}

func (s *skillService) Create(ctx context.Context, skill *models.Skill) (*models.Skill, error) {
	now := time.Now()
	skill.CreatedAt = now
	skill.UpdatedAt = now

	if err := s.repo.Create(ctx, skill); err != nil {
		return nil, err
	}

	return skill, nil
}

func (s *skillService) GetAll(ctx context.Context) ([]models.Skill, error) {
	return s.repo.GetAll(ctx)
}

func (s *skillService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Skill, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *skillService) Update(ctx context.Context, id primitive.ObjectID, update *models.SkillUpdate) (*models.Skill, error) {
	set := bson.M{}

	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Category != nil {
		set["category"] = *update.Category
	}
	if update.Level != nil {
		set["level"] = *update.Level
	}
	if update.Icon != nil {
		set["icon"] = *update.Icon
	}
	set["updatedAt"] = time.Now()

	return s.repo.Update(ctx, id, set)
}

func (s *skillService) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.repo.Delete(ctx, id)
	return err
}
