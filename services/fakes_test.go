package services

import (
	"context"

	"portfolioapi/models"
	repository "portfolioapi/repositories"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory stand-ins for the mongo repositories.

type fakeProjectRepo struct {
	created      []*models.Project
	lastSet      bson.M
	updateResult *models.Project
	updateErr    error
	deleted      []primitive.ObjectID
}

func (f *fakeProjectRepo) Create(ctx context.Context, project *models.Project) error {
	project.ID = primitive.NewObjectID()
	f.created = append(f.created, project)
	return nil
}

func (f *fakeProjectRepo) GetAll(ctx context.Context) ([]models.Project, error) {
	all := []models.Project{}
	for _, p := range f.created {
		all = append(all, *p)
	}
	return all, nil
}

func (f *fakeProjectRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	for _, p := range f.created {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeProjectRepo) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Project, error) {
	f.lastSet = set
	return f.updateResult, f.updateErr
}

func (f *fakeProjectRepo) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	f.deleted = append(f.deleted, id)
	return false, nil
}

type fakeContactRepo struct {
	created   []*models.Contact
	createErr error
	lastSet   bson.M
}

func (f *fakeContactRepo) Create(ctx context.Context, contact *models.Contact) error {
	if f.createErr != nil {
		return f.createErr
	}
	contact.ID = primitive.NewObjectID()
	f.created = append(f.created, contact)
	return nil
}

func (f *fakeContactRepo) GetAll(ctx context.Context) ([]models.Contact, error) {
	all := []models.Contact{}
	for _, c := range f.created {
		all = append(all, *c)
	}
	return all, nil
}

func (f *fakeContactRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Contact, error) {
	for _, c := range f.created {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeContactRepo) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Contact, error) {
	f.lastSet = set
	for _, c := range f.created {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeContactRepo) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return false, nil
}

// fakeSender records notifications and signals each attempt, so tests can
// wait for the fire-and-forget goroutine.
type fakeSender struct {
	err  error
	sent chan *models.Contact
}

func newFakeSender(err error) *fakeSender {
	return &fakeSender{
		err:  err,
		sent: make(chan *models.Contact, 1),
	}
}

func (f *fakeSender) SendContactNotification(contact *models.Contact) error {
	f.sent <- contact
	return f.err
}
