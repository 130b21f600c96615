package service

import (
	"context"

	"personalblog/internal/notifier"
)

type ContactService interface {
	SendMessage(ctx context.Context, msg notifier.ContactMessage) error
}

type contactService struct {
	notifier notifier.Notifier
}

func NewContactService(notifier notifier.Notifier) ContactService {
	return &contactService{notifier: notifier}
}

func (s *contactService) SendMessage(ctx context.Context, msg notifier.ContactMessage) error {
	err := s.notifier.SendContactMessage(ctx, msg)
	if err != nil {
		return err
	}

	return nil
}
