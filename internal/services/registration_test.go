package services

import (
	"testing"

	"github.com/rayagrigorova/pawfinder/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func addCode(t *testing.T, db *gorm.DB, code, username string, activated bool) {
	t.Helper()
	require.NoError(t, db.Create(&models.RegistrationCode{
		Code:        code,
		Username:    username,
		IsActivated: activated,
	}).Error)
}

func TestRegisterOrdinaryUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRegistrationService(db)

	user, fieldErrs, err := svc.Register(models.RegisterRequest{
		Username: "ordinaryuser",
		Password: "testpassword123",
		Role:     models.RoleOrdinary,
	})
	require.NoError(t, err)
	require.False(t, fieldErrs.HasErrors())
	require.NotNil(t, user)

	assert.Equal(t, models.RoleOrdinary, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("testpassword123")))

	// No shelter profile for ordinary accounts.
	var count int64
	db.Model(&models.Shelter{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Zero(t, count)
}

func TestRegisterOrdinaryUserIgnoresCode(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRegistrationService(db)
	addCode(t, db, "validcode123", "someoneelse", false)

	user, fieldErrs, err := svc.Register(models.RegisterRequest{
		Username:         "ordinaryuser",
		Password:         "testpassword123",
		Role:             models.RoleOrdinary,
		RegistrationCode: "validcode123",
	})
	require.NoError(t, err)
	require.False(t, fieldErrs.HasErrors())
	require.NotNil(t, user)

	var code models.RegistrationCode
	require.NoError(t, db.Where("code = ?", "validcode123").First(&code).Error)
	assert.False(t, code.IsActivated, "ordinary registration must not burn a code")
}

func TestRegisterShelterUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRegistrationService(db)
	addCode(t, db, "validcode123", "shelteruser", false)

	user, fieldErrs, err := svc.Register(models.RegisterRequest{
		Username:         "shelteruser",
		Password:         "testpassword123",
		Role:             models.RoleShelter,
		RegistrationCode: "validcode123",
	})
	require.NoError(t, err)
	require.False(t, fieldErrs.HasErrors())
	require.NotNil(t, user)

	var code models.RegistrationCode
	require.NoError(t, db.Where("code = ?", "validcode123").First(&code).Error)
	assert.True(t, code.IsActivated)

	// Exactly one paired shelter row, queryable by the account.
	var shelters []models.Shelter
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&shelters).Error)
	assert.Len(t, shelters, 1)
}

func TestRegisterShelterCodeSingleUse(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRegistrationService(db)
	addCode(t, db, "validcode123", "shelteruser", false)

	_, fieldErrs, err := svc.Register(models.RegisterRequest{
		Username:         "shelteruser",
		Password:         "testpassword123",
		Role:             models.RoleShelter,
		RegistrationCode: "validcode123",
	})
	require.NoError(t, err)
	require.False(t, fieldErrs.HasErrors())

	// The code is burned; any reuse fails with the generic message. The
	// second attempt also picks a fresh username so the code check is what
	// it exercises.
	_, fieldErrs, err = svc.Register(models.RegisterRequest{
		Username:         "shelteruser2",
		Password:         "testpassword123",
		Role:             models.RoleShelter,
		RegistrationCode: "validcode123",
	})
	require.NoError(t, err)
	require.True(t, fieldErrs.HasErrors())
	assert.Equal(t, []string{MsgCodeInvalid}, fieldErrs["registration_code"])
}

func TestRegisterShelterWithActivatedCode(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRegistrationService(db)
	addCode(t, db, "activatedcode123", "shelteruser2", true)

	_, fieldErrs, err := svc.Register(models.RegisterRequest{
		Username:         "shelteruser2",
		Password:         "testpassword123",
		Role:             models.RoleShelter,
		RegistrationCode: "activatedcode123",
	})
	require.NoError(t, err)
	require.True(t, fieldErrs.HasErrors())
	assert.Equal(t, []string{MsgCodeInvalid}, fieldErrs["registration_code"])
}

func TestRegisterShelterWithCodeBelongingToOther(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRegistrationService(db)
	addCode(t, db, "validcode123", "shelteruser", false)

	// The code itself is valid and unactivated, but bound to someone else.
	_, fieldErrs, err := svc.Register(models.RegisterRequest{
		Username:         "not_shelteruser",
		Password:         "123456",
		Role:             models.RoleShelter,
		RegistrationCode: "validcode123",
	})
	require.NoError(t, err)
	require.True(t, fieldErrs.HasErrors())
	assert.Equal(t, []string{MsgCodeInvalid}, fieldErrs["registration_code"])

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Zero(t, count, "no account should be created")
}

func TestRegisterShelterWithoutCode(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRegistrationService(db)

	_, fieldErrs, err := svc.Register(models.RegisterRequest{
		Username: "shelteruser3",
		Password: "testpassword123",
		Role:     models.RoleShelter,
	})
	require.NoError(t, err)
	require.True(t, fieldErrs.HasErrors())
	assert.Contains(t, fieldErrs["registration_code"], MsgCodeRequired)
}

func TestRegisterDuplicateUsernameTakesPrecedence(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRegistrationService(db)
	createUser(t, db, "existinguser", models.RoleOrdinary)
	addCode(t, db, "code123456", "existinguser", false)

	_, fieldErrs, err := svc.Register(models.RegisterRequest{
		Username:         "existinguser",
		Password:         "testpassword123",
		Role:             models.RoleShelter,
		RegistrationCode: "code123456",
	})
	require.NoError(t, err)
	require.True(t, fieldErrs.HasErrors())
	assert.Equal(t, []string{MsgUsernameTaken}, fieldErrs["username"])
	assert.NotContains(t, fieldErrs, "registration_code")

	// The valid code must not be burned by the failed attempt.
	var code models.RegistrationCode
	require.NoError(t, db.Where("code = ?", "code123456").First(&code).Error)
	assert.False(t, code.IsActivated)
}
