package model

import "time"

// RevokedToken is one entry of the revocation list, keyed by the token's jti.
type RevokedToken struct {
	TokenID    string    `gorm:"column:token_id;primaryKey;size:64" json:"token_id"`
	ExpiryDate time.Time `gorm:"column:expiry_date;not null;index:idx_revoked_tokens_expiry" json:"expiry_date"`
}

func (RevokedToken) TableName() string {
	return "revoked_tokens"
}
