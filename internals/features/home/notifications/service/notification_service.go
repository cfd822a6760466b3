package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"aptfee_backend/internals/features/home/notifications/dto"
	"aptfee_backend/internals/features/home/notifications/model"
	"aptfee_backend/internals/features/home/notifications/repository"
	residentRepo "aptfee_backend/internals/features/users/residents/repository"
	helper "aptfee_backend/internals/helpers"
)

type NotificationService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{DB: db, Now: time.Now}
}

// Create sends a message to every listed resident; one unknown id rejects the whole request.
func (s *NotificationService) Create(ctx context.Context, req dto.CreateNotificationRequest) (*model.Notification, error) {
	msg := strings.TrimSpace(req.Message)
	if msg == "" {
		return nil, helper.ErrInvalidKey.WithMessage("message is required")
	}

	seen := make(map[uuid.UUID]struct{}, len(req.ResidentIDs))
	ids := make([]uuid.UUID, 0, len(req.ResidentIDs))
	for _, id := range req.ResidentIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	n := &model.Notification{Message: msg}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := residentRepo.CountByIDs(ctx, tx, ids)
		if err != nil {
			return err
		}
		if found != int64(len(ids)) {
			return helper.ErrResidentNotExisted
		}
		for _, id := range ids {
			n.Residents = append(n.Residents, model.NotificationResident{ResidentID: id})
		}
		return repository.Create(ctx, tx, n)
	})
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (s *NotificationService) Get(ctx context.Context, id uuid.UUID) (*model.Notification, error) {
	return repository.FindByID(ctx, s.DB, id)
}

func (s *NotificationService) List(ctx context.Context, p helper.Paging) ([]model.Notification, int64, error) {
	return repository.List(ctx, s.DB, p)
}

// Inbox lists the notifications addressed to the resident with this email.
func (s *NotificationService) Inbox(ctx context.Context, email string, p helper.Paging) ([]repository.InboxRow, int64, error) {
	r, err := residentRepo.FindByEmail(ctx, s.DB, email)
	if err != nil {
		return nil, 0, err
	}
	return repository.ListForResident(ctx, s.DB, r.ID, p)
}

func (s *NotificationService) MarkRead(ctx context.Context, email string, id uuid.UUID) error {
	r, err := residentRepo.FindByEmail(ctx, s.DB, email)
	if err != nil {
		return err
	}
	ok, err := repository.MarkRead(ctx, s.DB, id, r.ID, s.Now())
	if err != nil {
		return err
	}
	if !ok {
		return helper.ErrNotificationNotFound
	}
	return nil
}
