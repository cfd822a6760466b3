package dto

import (
	"time"

	"github.com/google/uuid"

	"aptfee_backend/internals/features/home/notifications/model"
	"aptfee_backend/internals/features/home/notifications/repository"
)

type CreateNotificationRequest struct {
	Message     string      `json:"message" validate:"required,max=2000"`
	ResidentIDs []uuid.UUID `json:"resident_ids" validate:"required,min=1,dive,required"`
}

type NotificationResponse struct {
	ID          uuid.UUID   `json:"id"`
	Message     string      `json:"message"`
	ResidentIDs []uuid.UUID `json:"resident_ids"`
	CreatedAt   time.Time   `json:"created_at"`
}

type InboxResponse struct {
	ID        uuid.UUID  `json:"id"`
	Message   string     `json:"message"`
	CreatedAt time.Time  `json:"created_at"`
	Read      bool       `json:"read"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
}

func FromModel(m *model.Notification) NotificationResponse {
	ids := make([]uuid.UUID, 0, len(m.Residents))
	for _, r := range m.Residents {
		ids = append(ids, r.ResidentID)
	}
	return NotificationResponse{ID: m.ID, Message: m.Message, ResidentIDs: ids, CreatedAt: m.CreatedAt}
}

func FromModels(rows []model.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}

func FromInbox(rows []repository.InboxRow) []InboxResponse {
	out := make([]InboxResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, InboxResponse{ID: r.ID, Message: r.Message, CreatedAt: r.CreatedAt, Read: r.ReadAt != nil, ReadAt: r.ReadAt})
	}
	return out
}
