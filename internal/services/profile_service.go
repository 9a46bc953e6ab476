package services

import "github.com/wicaksana/hadir/internal/models"

type ProfileUserRepository interface {
	FindByID(userID uint) (models.User, error)
	IdentifierTaken(column string, value string, excludeUserID uint) (bool, error)
	UpdateByID(userID uint, updates map[string]any) error
}

type ProfileDepartmentSource interface {
	Departments() ([]string, error)
}

type ProfileService struct {
	users       ProfileUserRepository
	departments ProfileDepartmentSource
}

func NewProfileService(users ProfileUserRepository, departments ProfileDepartmentSource) *ProfileService {
	return &ProfileService{users: users, departments: departments}
}

func (service *ProfileService) Load(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

// Update validates and persists a profile edit. Duplicate handles and
// NIKs are rejected here, at save time, so ambiguous identifiers can
// never reach the login path.
func (service *ProfileService) Update(userID uint, update ProfileUpdate) error {
	update = NormalizeProfileUpdate(update)

	departments, err := service.departments.Departments()
	if err != nil {
		departments = nil
	}
	if err := ValidateProfileUpdate(update, departments); err != nil {
		return err
	}

	if update.Handle != "" {
		taken, err := service.users.IdentifierTaken("handle", update.Handle, userID)
		if err != nil {
			return err
		}
		if taken {
			return ErrHandleTaken
		}
	}
	if update.NIK != "" {
		taken, err := service.users.IdentifierTaken("nik", update.NIK, userID)
		if err != nil {
			return err
		}
		if taken {
			return ErrNIKTaken
		}
	}

	updates := map[string]any{
		"full_name":  update.FullName,
		"handle":     update.Handle,
		"nik":        update.NIK,
		"phone":      update.Phone,
		"department": update.Department,
		"position":   update.Position,
		"location":   update.Location,
		"gender":     update.Gender,
	}
	if update.BirthDate != nil {
		updates["birth_date"] = *update.BirthDate
	}
	return service.users.UpdateByID(userID, updates)
}
