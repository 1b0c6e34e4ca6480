package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"portfolioapi/models"
	repository "portfolioapi/repositories"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ContactService interface {
	// Submit persists the message and notifies the site owner.
	Submit(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	GetAll(ctx context.Context) ([]models.Contact, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Contact, error)
	Update(ctx context.Context, id primitive.ObjectID, update *models.ContactUpdate) (*models.Contact, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type contactService struct {
	repo   repository.ContactRepository
	sender EmailSender
	// blocking makes Submit wait for the notification and report its
	// failure to the caller; otherwise dispatch is fire-and-forget.
	blocking bool
}

func NewContactService(repo repository.ContactRepository, sender EmailSender, blocking bool) ContactService {
	return &contactService{
		repo:     repo,
		sender:   sender,
		blocking: blocking,
	}
}

func (s *contactService) Submit(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	contact.Name = strings.TrimSpace(contact.Name)
	contact.Email = strings.ToLower(strings.TrimSpace(contact.Email))
	contact.Subject = strings.TrimSpace(contact.Subject)
	contact.Message = strings.TrimSpace(contact.Message)
	contact.Read = false
	contact.SubmittedAt = time.Now()

	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, err
	}

	if s.blocking {
		if err := s.sender.SendContactNotification(contact); err != nil {
			return nil, fmt.Errorf("message saved, but failed to send email: %w", err)
		}
		return contact, nil
	}

	// The client already has its answer once the document is stored; a
	// flaky mail provider only shows up in the logs.
	notify := *contact
	go func() {
		if err := s.sender.SendContactNotification(&notify); err != nil {
			log.Printf("contact notification failed for %s: %v", notify.Email, err)
		}
	}()

	return contact, nil
}

func (s *contactService) GetAll(ctx context.Context) ([]models.Contact, error) {
	return s.repo.GetAll(ctx)
}

func (s *contactService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Contact, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *contactService) Update(ctx context.Context, id primitive.ObjectID, update *models.ContactUpdate) (*models.Contact, error) {
	set := bson.M{}

	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Email != nil {
		set["email"] = strings.ToLower(*update.Email)
	}
	if update.Subject != nil {
		set["subject"] = *update.Subject
	}
	if update.Message != nil {
		set["message"] = *update.Message
	}
	if update.Read != nil {
		set["read"] = *update.Read
	}

	return s.repo.Update(ctx, id, set)
}

func (s *contactService) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.repo.Delete(ctx, id)
	return err
}
