package services

import (
	"errors"

	"github.com/rayagrigorova/pawfinder/internal/metrics"
	"github.com/rayagrigorova/pawfinder/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Messages reported against individual registration fields.
const (
	MsgUsernameTaken = "A user with that username already exists."
	MsgCodeRequired  = "This field is required for shelters."
	MsgCodeInvalid   = "Invalid registration code for this username or code already activated."
)

// RegistrationService creates accounts. Shelter signups are gated by a
// one-time registration code bound to the username.
type RegistrationService struct {
	db *gorm.DB
}

func NewRegistrationService(db *gorm.DB) *RegistrationService {
	return &RegistrationService{db: db}
}

// Register validates the request and creates the account. For shelter
// accounts the whole flow runs in one transaction: validate the code, create
// the account, mark the code activated and create the paired shelter profile.
// A failure at any step rolls everything back so a code is never burned
// without a matching account.
//
// A non-nil FieldErrors result means the input was rejected; the error return
// is reserved for storage failures.
func (s *RegistrationService) Register(req models.RegisterRequest) (*models.User, FieldErrors, error) {
	fieldErrs := FieldErrors{}
	var user *models.User

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("username = ?", req.Username).Count(&count).Error; err != nil {
			return err
		}
		// Username uniqueness takes precedence over code validation.
		if count > 0 {
			fieldErrs.Add("username", MsgUsernameTaken)
			return errValidation
		}

		var code models.RegistrationCode
		if req.Role == models.RoleShelter {
			if req.RegistrationCode == "" {
				fieldErrs.Add("registration_code", MsgCodeRequired)
				return errValidation
			}
			err := tx.Where("code = ? AND username = ? AND is_activated = ?",
				req.RegistrationCode, req.Username, false).First(&code).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				fieldErrs.Add("registration_code", MsgCodeInvalid)
				return errValidation
			}
			if err != nil {
				return err
			}
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user = &models.User{
			Username: req.Username,
			Password: string(hashed),
			Role:     req.Role,
		}
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		if req.Role == models.RoleShelter {
			code.IsActivated = true
			if err := tx.Save(&code).Error; err != nil {
				return err
			}
			// Every shelter account gets exactly one shelter profile,
			// created atomically with it.
			if err := tx.Create(&models.Shelter{UserID: user.ID}).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if errors.Is(err, errValidation) {
		return nil, fieldErrs, nil
	}
	if err != nil {
		return nil, nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues(user.Role).Inc()
	return user, nil, nil
}
