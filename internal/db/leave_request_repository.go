package db

import (
	"github.com/wicaksana/hadir/internal/models"
	"gorm.io/gorm"
)

type LeaveRequestRepository struct {
	database *gorm.DB
}

func NewLeaveRequestRepository(database *gorm.DB) *LeaveRequestRepository {
	return &LeaveRequestRepository{database: database}
}

func (repo *LeaveRequestRepository) Create(request *models.LeaveRequest) error {
	return repo.database.Create(request).Error
}

func (repo *LeaveRequestRepository) ListRecentByUser(userID uint, limit int) ([]models.LeaveRequest, error) {
	requests := make([]models.LeaveRequest, 0, limit)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}
