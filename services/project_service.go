package services

import (
	"context"
	"time"

	"portfolioapi/models"
	repository "portfolioapi/repositories"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProjectService interface {
	Create(ctx context.Context, project *models.Project) (*models.Project, error)
	GetAll(ctx context.Context) ([]models.Project, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error)
	Update(ctx context.Context, id primitive.ObjectID, update *models.ProjectUpdate) (*models.Project, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type projectService struct {
	repo repository.ProjectRepository
}

func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &projectService{
		repo: repo,
	}
}

func (s *projectService) Create(ctx context.Context, project *models.Project) (*models.Project, error) {
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

func (s *projectService) GetAll(ctx context.Context) ([]models.Project, error) {
	return s.repo.GetAll(ctx)
}

func (s *projectService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	return s.repo.GetByID(ctx, id)
}

// Update writes only the fields present in the request; omitted fields keep
// their stored values.
func (s *projectService) Update(ctx context.Context, id primitive.ObjectID, update *models.ProjectUpdate) (*models.Project, error) {
	set := bson.M{}

	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Technologies != nil {
		set["technologies"] = update.Technologies
	}
	if update.LiveLink != nil {
		set["liveLink"] = *update.LiveLink
	}
	if update.RepoLink != nil {
		set["repoLink"] = *update.RepoLink
	}
	if update.Image != nil {
		set["image"] = *update.Image
	}
	if update.ImagePublicID != nil {
		set["imagePublicId"] = *update.ImagePublicID
	}
	if update.Featured != nil {
		set["featured"] = *update.Featured
	}
	set["updatedAt"] = time.Now()

	return s.repo.Update(ctx, id, set)
}

func (s *projectService) Delete(ctx context.Context, id primitive.ObjectID) error {
	// Deleting an id that is already gone is still a success.
	_, err := s.repo.Delete(ctx, id)
	return err
}
