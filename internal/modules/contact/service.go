package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/espace-agenda/core/internal/models"
	"github.com/espace-agenda/core/internal/pkg/mail"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

// Store persists contact submissions.
type Store interface {
	Insert(ctx context.Context, sub *models.ContactSubmission) error
	List(ctx context.Context, limit, skip int64) ([]models.ContactSubmission, error)
}

// Mailer dispatches contact notification emails.
type Mailer interface {
	SendContactNotify(data mail.ContactNotifyData) error
	SendContactConfirm(to, name string) error
}

// Service handles contact form business logic.
type Service struct {
	store  Store
	mailer Mailer
	logger *zap.Logger
}

func NewService(store Store, mailer Mailer, logger *zap.Logger) *Service {
	return &Service{store: store, mailer: mailer, logger: logger}
}

// Submit persists a new submission, then dispatches the team alert and
// the customer confirmation. Persistence failure is a hard failure;
// email failure never is — the lead is already captured.
func (s *Service) Submit(ctx context.Context, dto *CreateContactDTO) (*models.ContactSubmission, error) {
	sub := &models.ContactSubmission{
		ID:        uuid.New().String(),
		Name:      dto.Name,
		Email:     dto.Email,
		Phone:     dto.Phone,
		Subject:   dto.Subject,
		Message:   dto.Message,
		Status:    models.ContactStatusNew,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.Insert(ctx, sub); err != nil {
		return nil, fmt.Errorf("insert contact: %w", err)
	}
	s.logger.Info("new contact submission",
		zap.String("id", sub.ID),
		zap.String("name", sub.Name),
	)

	go s.notify(sub)

	return sub, nil
}

// List returns submissions ordered by creation time, newest first.
func (s *Service) List(ctx context.Context, limit, skip int64) ([]models.ContactSubmission, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if skip < 0 {
		skip = 0
	}
	return s.store.List(ctx, limit, skip)
}

// notify sends both emails off the request path. Failures are logged and
// swallowed.
func (s *Service) notify(sub *models.ContactSubmission) {
	if s.mailer == nil {
		return
	}

	phone := ""
	if sub.Phone != nil {
		phone = *sub.Phone
	}
	if err := s.mailer.SendContactNotify(mail.ContactNotifyData{
		Name:    sub.Name,
		Email:   sub.Email,
		Phone:   phone,
		Subject: sub.Subject,
		Message: sub.Message,
	}); err != nil {
		s.logger.Warn("contact notification email failed",
			zap.String("id", sub.ID), zap.Error(err))
	}

	if err := s.mailer.SendContactConfirm(sub.Email, sub.Name); err != nil {
		s.logger.Warn("contact confirmation email failed",
			zap.String("id", sub.ID), zap.Error(err))
	}
}
