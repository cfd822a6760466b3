package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	database "aptfee_backend/internals/databases"
	authModel "aptfee_backend/internals/features/users/auth/model"
	authRepo "aptfee_backend/internals/features/users/auth/repository"
)

func TestRunCleanupRemovesOnlyExpired(t *testing.T) {
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	ctx := context.Background()

	_, err = authRepo.Revoke(ctx, db, "old", time.Now().Add(-time.Hour))
	require.NoError(t, err)
	_, err = authRepo.Revoke(ctx, db, "fresh", time.Now().Add(time.Hour))
	require.NoError(t, err)

	assert.Equal(t, int64(1), RunCleanup(db))

	var left []authModel.RevokedToken
	require.NoError(t, db.Find(&left).Error)
	require.Len(t, left, 1)
	assert.Equal(t, "fresh", left[0].TokenID)
}

func TestStartRevokedTokenCleanupRejectsBadSpec(t *testing.T) {
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)

	_, err = StartRevokedTokenCleanup(db, "not a cron spec")
	assert.Error(t, err)

	c, err := StartRevokedTokenCleanup(db, "@daily")
	require.NoError(t, err)
	c.Stop()
}
