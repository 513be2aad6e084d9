package users

import (
	"context"
	"testing"

	"github.com/carewell-health/carewell-backend/pkg/db"
	"github.com/carewell-health/carewell-backend/pkg/enums"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupUsersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
  name TEXT NOT NULL,
  age INTEGER NOT NULL DEFAULT 0,
  email TEXT NOT NULL,
  phone TEXT NOT NULL DEFAULT '',
  address TEXT,
  aadhar_card TEXT NOT NULL,
  photo_url TEXT,
  role TEXT NOT NULL DEFAULT 'patient',
  steps_goal INTEGER NOT NULL DEFAULT 8000,
  active_time_goal INTEGER NOT NULL DEFAULT 30,
  sleep_goal REAL NOT NULL DEFAULT 7,
  water_goal REAL NOT NULL DEFAULT 2.5,
  annual_blood_test_date DATETIME,
  allergies TEXT,
  current_medications TEXT,
  healthcare_provider_id TEXT,
  compliance_status TEXT NOT NULL DEFAULT 'Pending',
  password_hash TEXT NOT NULL,
  consent INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);
CREATE UNIQUE INDEX IF NOT EXISTS ux_users_email ON users (email);
CREATE UNIQUE INDEX IF NOT EXISTS ux_users_aadhar_card ON users (aadhar_card);`
	require.NoError(t, conn.Exec(schema).Error)
	return conn
}

func createPatient(t *testing.T, repo *Repository, email, aadhar string) uuid.UUID {
	t.Helper()
	user, err := repo.Create(context.Background(), CreateUserDTO{
		Name:         "Asha Rao",
		Age:          34,
		Email:        email,
		Phone:        "9876543210",
		AadharCard:   aadhar,
		PasswordHash: "$argon2id$hash",
		Consent:      true,
	})
	require.NoError(t, err)
	return user.ID
}

func TestCreateAppliesGoalDefaults(t *testing.T) {
	conn := setupUsersTestDB(t)
	repo := NewRepository(conn)

	id := createPatient(t, repo, "asha@example.com", "123412341234")

	user, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 8000, user.StepsGoal)
	assert.Equal(t, 30, user.ActiveTimeGoal)
	assert.Equal(t, 7.0, user.SleepGoal)
	assert.Equal(t, 2.5, user.WaterGoal)
	assert.Equal(t, enums.RolePatient, user.Role)
	assert.Equal(t, enums.CompliancePending, user.ComplianceStatus)
}

func TestCreateDuplicateEmail(t *testing.T) {
	conn := setupUsersTestDB(t)
	repo := NewRepository(conn)

	createPatient(t, repo, "asha@example.com", "123412341234")

	_, err := repo.Create(context.Background(), CreateUserDTO{
		Name:         "Other",
		Email:        "asha@example.com",
		AadharCard:   "999999999999",
		PasswordHash: "$argon2id$hash",
	})
	require.Error(t, err)
	assert.True(t, db.IsUniqueViolation(err, "ux_users_email"))
}

func TestUpdateFieldsPartial(t *testing.T) {
	conn := setupUsersTestDB(t)
	repo := NewRepository(conn)

	id := createPatient(t, repo, "asha@example.com", "123412341234")

	updated, err := repo.UpdateFields(context.Background(), id, map[string]any{
		"steps_goal": 12000,
		"name":       "Asha R.",
	})
	require.NoError(t, err)
	assert.Equal(t, 12000, updated.StepsGoal)
	assert.Equal(t, "Asha R.", updated.Name)
	assert.Equal(t, 2.5, updated.WaterGoal)
}

func TestSetProviderAndListByProvider(t *testing.T) {
	conn := setupUsersTestDB(t)
	repo := NewRepository(conn)

	patientID := createPatient(t, repo, "asha@example.com", "123412341234")
	providerID := uuid.New()

	require.NoError(t, repo.SetProvider(context.Background(), patientID, providerID))

	patients, err := repo.ListByProvider(context.Background(), providerID)
	require.NoError(t, err)
	require.Len(t, patients, 1)
	assert.Equal(t, patientID, patients[0].ID)
}

func TestSetComplianceStatus(t *testing.T) {
	conn := setupUsersTestDB(t)
	repo := NewRepository(conn)

	patientID := createPatient(t, repo, "asha@example.com", "123412341234")

	require.NoError(t, repo.SetComplianceStatus(context.Background(), patientID, enums.ComplianceGoalMet))

	user, err := repo.FindByID(context.Background(), patientID)
	require.NoError(t, err)
	assert.Equal(t, enums.ComplianceGoalMet, user.ComplianceStatus)
}
