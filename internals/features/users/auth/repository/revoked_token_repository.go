package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authModel "aptfee_backend/internals/features/users/auth/model"
)

/* ====================== REVOCATION LIST ====================== */

// Revoke records jti as unusable. Revoking the same jti twice is a no-op; inserted
// reports whether this call was the one that revoked it.
func Revoke(ctx context.Context, db *gorm.DB, jti string, expiry time.Time) (inserted bool, err error) {
	res := db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&authModel.RevokedToken{TokenID: jti, ExpiryDate: expiry.UTC()})
	return res.RowsAffected > 0, res.Error
}

func IsRevoked(ctx context.Context, db *gorm.DB, jti string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&authModel.RevokedToken{}).
		Where("token_id = ?", jti).
		Count(&n).Error
	return n > 0, err
}

// CleanupExpired deletes entries whose token would be rejected as expired anyway.
func CleanupExpired(ctx context.Context, db *gorm.DB, now time.Time) (int64, error) {
	res := db.WithContext(ctx).
		Where("expiry_date <= ?", now.UTC()).
		Delete(&authModel.RevokedToken{})
	return res.RowsAffected, res.Error
}
