package db

import (
	"github.com/wicaksana/hadir/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("lower(trim(email)) = ?", email).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("lower(trim(email)) = ?", email).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

// FindByHandleOrNIK resolves a non-email login token. The boolean reports
// whether exactly one user matched; zero and multiple matches are both
// treated as not found so login cannot probe which identifiers exist.
func (repo *UserRepository) FindByHandleOrNIK(token string) (models.User, bool, error) {
	users := make([]models.User, 0, 2)
	if err := repo.database.
		Where("handle = ? OR nik = ?", token, token).
		Limit(2).
		Find(&users).Error; err != nil {
		return models.User{}, false, err
	}
	if len(users) != 1 {
		return models.User{}, false, nil
	}
	return users[0], true, nil
}

// IdentifierTaken reports whether another user already claims the handle
// or NIK value in the given column.
func (repo *UserRepository) IdentifierTaken(column string, value string, excludeUserID uint) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where(column+" = ? AND id <> ?", value, excludeUserID).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) Save(user *models.User) error {
	return repo.database.Save(user).Error
}

func (repo *UserRepository) UpdateByID(userID uint, updates map[string]any) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error
}

func (repo *UserRepository) UpdatePassword(userID uint, passwordHash string) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Update("password_hash", passwordHash).Error
}
