package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"aptfee_backend/internals/features/home/notifications/model"
	helper "aptfee_backend/internals/helpers"
)

func FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.Notification, error) {
	var n model.Notification
	err := db.WithContext(ctx).Preload("Residents").First(&n, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrNotificationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// Create inserts the notification together with its recipient rows.
func Create(ctx context.Context, db *gorm.DB, n *model.Notification) error {
	return db.WithContext(ctx).Create(n).Error
}

func List(ctx context.Context, db *gorm.DB, p helper.Paging) ([]model.Notification, int64, error) {
	var (
		rows  []model.Notification
		total int64
	)
	q := db.WithContext(ctx).Model(&model.Notification{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Preload("Residents").Order("created_at DESC").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error
	return rows, total, err
}

// Inbox row: a notification as seen by one resident.
type InboxRow struct {
	ID        uuid.UUID
	Message   string
	CreatedAt time.Time
	ReadAt    *time.Time
}

func ListForResident(ctx context.Context, db *gorm.DB, residentID uuid.UUID, p helper.Paging) ([]InboxRow, int64, error) {
	var (
		rows  []InboxRow
		total int64
	)
	q := db.WithContext(ctx).
		Table("notifications AS n").
		Joins("JOIN notification_residents AS nr ON nr.notification_id = n.id").
		Where("nr.resident_id = ?", residentID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Select("n.id, n.message, n.created_at, nr.read_at").
		Order("n.created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Scan(&rows).Error
	return rows, total, err
}

// MarkRead stamps read_at once; it reports false when the resident is not a recipient.
func MarkRead(ctx context.Context, db *gorm.DB, notificationID, residentID uuid.UUID, at time.Time) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&model.NotificationResident{}).
		Where("notification_id = ? AND resident_id = ?", notificationID, residentID).
		Count(&count).Error; err != nil {
		return false, err
	}
	if count == 0 {
		return false, nil
	}
	err := db.WithContext(ctx).Model(&model.NotificationResident{}).
		Where("notification_id = ? AND resident_id = ? AND read_at IS NULL", notificationID, residentID).
		Update("read_at", at).Error
	return true, err
}
