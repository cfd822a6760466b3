package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	authRepo "aptfee_backend/internals/features/users/auth/repository"
)

// StartRevokedTokenCleanup purges revocation entries whose tokens have expired on their own.
// The returned cron must be stopped on shutdown.
func StartRevokedTokenCleanup(db *gorm.DB, spec string) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger)))
	if _, err := c.AddFunc(spec, func() { RunCleanup(db) }); err != nil {
		return nil, err
	}
	c.Start()
	log.Printf("[INFO] revoked token cleanup scheduled (%s)", spec)
	return c, nil
}

func RunCleanup(db *gorm.DB) int64 {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := authRepo.CleanupExpired(ctx, db, time.Now())
	if err != nil {
		log.Printf("[CLEANUP ERROR] revoked_tokens: %v", err)
		return 0
	}
	if n > 0 {
		log.Printf("[CLEANUP] %d expired revoked tokens removed", n)
	}
	return n
}
