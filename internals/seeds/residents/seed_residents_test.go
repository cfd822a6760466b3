package residents

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	database "aptfee_backend/internals/databases"
	"aptfee_backend/internals/features/users/residents/model"
)

func TestSeedAdminIsIdempotent(t *testing.T) {
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)

	created, err := SeedAdmin(db, " Admin@Example.com ", "Secret123")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = SeedAdmin(db, "admin@example.com", "Other123")
	require.NoError(t, err)
	assert.False(t, created)

	var r model.Resident
	require.NoError(t, db.First(&r, "email = ?", "admin@example.com").Error)
	assert.Equal(t, "admin", r.Role)
	assert.NotEqual(t, "Secret123", r.Password)

	created, err = SeedAdmin(db, "", "")
	require.NoError(t, err)
	assert.False(t, created)
}

func TestSeedResidentsFromJSON(t *testing.T) {
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "residents.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"full_name":"Ana","email":"ana@example.com","password":"Secret123"},
		{"full_name":"Ana again","email":"ANA@example.com","password":"Secret123"}
	]`), 0o600))

	require.NoError(t, SeedResidentsFromJSON(db, path))

	var n int64
	require.NoError(t, db.Model(&model.Resident{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)

	assert.Error(t, SeedResidentsFromJSON(db, filepath.Join(t.TempDir(), "missing.json")))
}
