package services

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/lgalvis/horario/internal/models"
	"github.com/lgalvis/horario/internal/security"
	"gorm.io/gorm"
)

var (
	ErrEmptyUsername    = errors.New("username must not be empty")
	ErrEmptyPassword    = errors.New("password must not be empty")
	ErrPasswordMismatch = errors.New("password confirmation does not match")
	ErrUsernameTaken    = errors.New("username already registered")
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidRole      = errors.New("role must be admin or member")
	ErrLastAdmin        = errors.New("cannot remove the last remaining admin")
	ErrSelfDelete       = errors.New("cannot delete the currently authenticated account")
)

type CredentialRepository interface {
	CountUsers() (int64, error)
	CountAdmins() (int64, error)
	FindByUsername(username string) (models.User, error)
	ExistsByUsername(username string) (bool, error)
	Create(user *models.User) error
	UpdatePassword(username string, passwordRecord string) error
	UpdateByUsername(username string, updates map[string]any) error
	Delete(username string) error
	List() ([]models.User, error)
}

// RegistrationInput is the self-registration form. AsAdmin must be set
// explicitly; it is ignored on the bootstrap path, where the first account
// always becomes the admin.
type RegistrationInput struct {
	Username    string `validate:"required"`
	Password    string `validate:"required"`
	Confirm     string `validate:"required,eqfield=Password"`
	DisplayName string
	AsAdmin     bool
}

// CredentialService owns the username -> (password record, role, display
// name) registry. The mutex serialises read-then-write sequences so two
// sessions in one process cannot lose updates.
type CredentialService struct {
	mu          sync.Mutex
	users       CredentialRepository
	validate    *validator.Validate
	decoyRecord string
}

func NewCredentialService(users CredentialRepository) (*CredentialService, error) {
	// A throwaway record so Verify burns a full derivation for unknown
	// usernames instead of returning early.
	decoy, err := security.TemporaryPassword(24)
	if err != nil {
		return nil, fmt.Errorf("generate decoy password: %w", err)
	}
	decoyRecord, err := security.HashPassword(decoy)
	if err != nil {
		return nil, fmt.Errorf("hash decoy password: %w", err)
	}

	return &CredentialService{
		users:       users,
		validate:    validator.New(),
		decoyRecord: decoyRecord,
	}, nil
}

func (service *CredentialService) Create(username string, password string, role string, displayName string) error {
	service.mu.Lock()
	defer service.mu.Unlock()
	return service.createLocked(username, password, role, displayName)
}

func (service *CredentialService) createLocked(username string, password string, role string, displayName string) error {
	if username == "" {
		return ErrEmptyUsername
	}
	if password == "" {
		return ErrEmptyPassword
	}
	if !models.IsValidRole(role) {
		return ErrInvalidRole
	}

	taken, err := service.users.ExistsByUsername(username)
	if err != nil {
		return fmt.Errorf("check username: %w", err)
	}
	if taken {
		return ErrUsernameTaken
	}

	record, err := security.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username:       username,
		PasswordRecord: record,
		Role:           role,
		DisplayName:    displayName,
	}
	if err := service.users.Create(&user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Register applies the bootstrap and self-registration rules: the first
// account in an empty registry is always created as admin; afterwards the
// role defaults to member unless AsAdmin was set explicitly.
func (service *CredentialService) Register(input RegistrationInput) (models.User, error) {
	if err := service.validate.Struct(input); err != nil {
		return models.User{}, mapRegistrationValidationError(err)
	}

	service.mu.Lock()
	defer service.mu.Unlock()

	count, err := service.users.CountUsers()
	if err != nil {
		return models.User{}, fmt.Errorf("count users: %w", err)
	}

	role := models.RoleMember
	if count == 0 || input.AsAdmin {
		role = models.RoleAdmin
	}

	if err := service.createLocked(input.Username, input.Password, role, input.DisplayName); err != nil {
		return models.User{}, err
	}
	return service.Lookup(input.Username)
}

// Verify reports whether the password matches the stored record. Unknown
// usernames verify false without surfacing an error, and still cost a full
// key derivation so timing does not leak account existence.
func (service *CredentialService) Verify(username string, password string) bool {
	user, err := service.users.FindByUsername(username)
	if err != nil {
		security.VerifyPassword(service.decoyRecord, password)
		return false
	}
	return security.VerifyPassword(user.PasswordRecord, password)
}

func (service *CredentialService) Lookup(username string) (models.User, error) {
	user, err := service.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("load user: %w", err)
	}
	return user, nil
}

// UpdatePassword replaces the credential record with one derived from a
// fresh salt.
func (service *CredentialService) UpdatePassword(username string, newPassword string) error {
	if newPassword == "" {
		return ErrEmptyPassword
	}

	service.mu.Lock()
	defer service.mu.Unlock()

	if _, err := service.Lookup(username); err != nil {
		return err
	}

	record, err := security.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := service.users.UpdatePassword(username, record); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// UpdateProfile changes role and/or display name. Nil fields are left
// untouched.
func (service *CredentialService) UpdateProfile(username string, role *string, displayName *string) error {
	service.mu.Lock()
	defer service.mu.Unlock()

	user, err := service.Lookup(username)
	if err != nil {
		return err
	}

	updates := map[string]any{}
	if role != nil {
		if !models.IsValidRole(*role) {
			return ErrInvalidRole
		}
		if user.IsAdmin() && *role != models.RoleAdmin {
			admins, err := service.users.CountAdmins()
			if err != nil {
				return fmt.Errorf("count admins: %w", err)
			}
			if admins <= 1 {
				return ErrLastAdmin
			}
		}
		updates["role"] = *role
	}
	if displayName != nil {
		updates["display_name"] = *displayName
	}
	if len(updates) == 0 {
		return nil
	}

	if err := service.users.UpdateByUsername(username, updates); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// Delete removes a user. Refuses to delete the acting identity and refuses
// to remove the last remaining admin.
func (service *CredentialService) Delete(username string, actingUsername string) error {
	service.mu.Lock()
	defer service.mu.Unlock()

	user, err := service.Lookup(username)
	if err != nil {
		return err
	}
	if username == actingUsername {
		return ErrSelfDelete
	}
	if user.IsAdmin() {
		admins, err := service.users.CountAdmins()
		if err != nil {
			return fmt.Errorf("count admins: %w", err)
		}
		if admins <= 1 {
			return ErrLastAdmin
		}
	}

	if err := service.users.Delete(username); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (service *CredentialService) List() ([]models.User, error) {
	return service.users.List()
}

func mapRegistrationValidationError(err error) error {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}
	for _, fieldError := range fieldErrors {
		switch {
		case fieldError.Field() == "Username":
			return ErrEmptyUsername
		case fieldError.Field() == "Password":
			return ErrEmptyPassword
		case fieldError.Field() == "Confirm" && fieldError.Tag() == "eqfield":
			return ErrPasswordMismatch
		case fieldError.Field() == "Confirm":
			return ErrPasswordMismatch
		}
	}
	return err
}
