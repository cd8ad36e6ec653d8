package service

import (
	"context"
	"errors"
	"reflect"

	"github.com/northwestmeats/storefront/internal/apperr"
	"github.com/northwestmeats/storefront/internal/infra/repository"
	"github.com/northwestmeats/storefront/internal/model"
)

type ContactUpdateParams struct {
	Status     *string
	AdminNotes *string
}

// IContactService handles public inquiry intake and admin inquiry management.
type IContactService interface {
	Submit(ctx context.Context, name, email, message string) (*model.ContactInquiry, error)
	List(ctx context.Context) ([]model.ContactInquiry, error)
	Update(ctx context.Context, id string, params ContactUpdateParams) (*model.ContactInquiry, error)
	Delete(ctx context.Context, id string) error
}

type ContactService struct {
	contacts repository.ContactRepository
	notifier INotificationService
}

func NewContactService(contacts repository.ContactRepository, notifier INotificationService) IContactService {
	if reflect.ValueOf(contacts).IsNil() {
		panic("contact service initialization failed: contacts cannot be nil")
	}
	if reflect.ValueOf(notifier).IsNil() {
		panic("contact service initialization failed: notifier cannot be nil")
	}
	return &ContactService{contacts: contacts, notifier: notifier}
}

func (s *ContactService) Submit(ctx context.Context, name, email, message string) (*model.ContactInquiry, error) {
	if name == "" || email == "" || message == "" {
		return nil, apperr.New(apperr.BadRequestCode, "please provide name, email, and message")
	}

	inquiry := &model.ContactInquiry{
		Name:    name,
		Email:   email,
		Message: message,
		Status:  model.InquiryStatusNew,
	}
	if err := s.contacts.Create(ctx, inquiry); err != nil {
		return nil, apperr.New(apperr.InternalErrorCode, err.Error())
	}

	s.notifier.NotifyInquiryReceived(inquiry)
	return inquiry, nil
}

func (s *ContactService) List(ctx context.Context) ([]model.ContactInquiry, error) {
	inquiries, err := s.contacts.List(ctx)
	if err != nil {
		return nil, apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return inquiries, nil
}

// Update mutates status and adminNotes independently; either may be provided
// on its own, and adminNotes may be cleared with an empty string.
func (s *ContactService) Update(ctx context.Context, id string, params ContactUpdateParams) (*model.ContactInquiry, error) {
	update := repository.ContactUpdate{AdminNotes: params.AdminNotes}
	if params.Status != nil {
		if !model.IsValidInquiryStatus(*params.Status) {
			return nil, apperr.New(apperr.BadRequestCode, "invalid status. Must be 'new', 'read' or 'responded'")
		}
		status := model.InquiryStatus(*params.Status)
		update.Status = &status
	}

	inquiry, err := s.contacts.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.NotFoundCode, "inquiry not found")
		}
		return nil, apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return inquiry, nil
}

func (s *ContactService) Delete(ctx context.Context, id string) error {
	if err := s.contacts.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.New(apperr.NotFoundCode, "inquiry not found")
		}
		return apperr.New(apperr.InternalErrorCode, err.Error())
	}
	return nil
}
