package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	database "aptfee_backend/internals/databases"
	"aptfee_backend/internals/features/home/notifications/dto"
	residentModel "aptfee_backend/internals/features/users/residents/model"
	helper "aptfee_backend/internals/helpers"
)

func TestNotificationLifecycle(t *testing.T) {
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	ctx := context.Background()

	ana := &residentModel.Resident{FullName: "Ana", Email: "ana@example.com", Password: "x", Role: "resident"}
	bo := &residentModel.Resident{FullName: "Bo", Email: "bo@example.com", Password: "x", Role: "resident"}
	require.NoError(t, db.Create(ana).Error)
	require.NoError(t, db.Create(bo).Error)

	svc := NewNotificationService(db)
	svc.Now = func() time.Time { return time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC) }

	n, err := svc.Create(ctx, dto.CreateNotificationRequest{
		Message:     "Water shut-off on Friday",
		ResidentIDs: []uuid.UUID{ana.ID, bo.ID, ana.ID},
	})
	require.NoError(t, err)
	assert.Len(t, n.Residents, 2)

	got, err := svc.Get(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, "Water shut-off on Friday", got.Message)
	assert.ElementsMatch(t, []uuid.UUID{ana.ID, bo.ID}, dto.FromModel(got).ResidentIDs)

	p := helper.Paging{Page: 1, PerPage: 10, Limit: 10}
	inbox, total, err := svc.Inbox(ctx, "ana@example.com", p)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, inbox, 1)
	assert.Nil(t, inbox[0].ReadAt)

	require.NoError(t, svc.MarkRead(ctx, "ana@example.com", n.ID))
	inbox, _, err = svc.Inbox(ctx, "ana@example.com", p)
	require.NoError(t, err)
	require.NotNil(t, inbox[0].ReadAt)

	assert.ErrorIs(t, svc.MarkRead(ctx, "ana@example.com", uuid.New()), helper.ErrNotificationNotFound)
}

func TestCreateNotificationUnknownResidentRejectsAll(t *testing.T) {
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	ctx := context.Background()

	ana := &residentModel.Resident{FullName: "Ana", Email: "ana@example.com", Password: "x", Role: "resident"}
	require.NoError(t, db.Create(ana).Error)

	svc := NewNotificationService(db)
	_, err = svc.Create(ctx, dto.CreateNotificationRequest{Message: "hello", ResidentIDs: []uuid.UUID{ana.ID, uuid.New()}})
	assert.ErrorIs(t, err, helper.ErrResidentNotExisted)

	_, total, err := svc.List(ctx, helper.Paging{Page: 1, PerPage: 10, Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, total)

	_, err = svc.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, helper.ErrNotificationNotFound)
}
