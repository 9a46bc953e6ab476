package services

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/wicaksana/hadir/internal/models"
)

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrAuthCredentialsInvalid = errors.New("auth credentials invalid")
)

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	FindByHandleOrNIK(token string) (models.User, bool, error)
	Create(user *models.User) error
	UpdatePassword(userID uint, passwordHash string) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

func (service *AuthService) RegistrationEmailExists(email string) (bool, error) {
	return service.users.ExistsByNormalizedEmail(email)
}

func (service *AuthService) CreateUser(user *models.User) error {
	return service.users.Create(user)
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

func (service *AuthService) FindByNormalizedEmail(email string) (models.User, error) {
	return service.users.FindByNormalizedEmail(email)
}

func (service *AuthService) UpdatePassword(userID uint, passwordHash string) error {
	return service.users.UpdatePassword(userID, passwordHash)
}

// ResolveLoginUser maps a login token (email, handle, or NIK) to the
// account it authenticates. Handle and NIK tokens that match zero or
// more than one user fail with ErrUserNotFound before any password is
// checked.
func (service *AuthService) ResolveLoginUser(token string) (models.User, error) {
	kind, normalized := ClassifyLoginToken(token)
	if normalized == "" {
		return models.User{}, ErrUserNotFound
	}

	if kind == LoginTokenEmail {
		user, err := service.users.FindByNormalizedEmail(normalized)
		if err != nil {
			return models.User{}, ErrUserNotFound
		}
		return user, nil
	}

	user, found, err := service.users.FindByHandleOrNIK(normalized)
	if err != nil {
		return models.User{}, err
	}
	if !found {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func NormalizeAuthEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ""
	}
	return email
}

func NormalizeCredentialsInput(emailRaw string, passwordRaw string) (string, string, error) {
	email := NormalizeAuthEmail(emailRaw)
	password := strings.TrimSpace(passwordRaw)
	if email == "" || password == "" {
		return "", "", ErrAuthCredentialsInvalid
	}
	return email, password, nil
}
