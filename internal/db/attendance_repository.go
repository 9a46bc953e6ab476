package db

import (
	"time"

	"github.com/wicaksana/hadir/internal/models"
	"gorm.io/gorm"
)

type AttendanceRepository struct {
	database *gorm.DB
}

func NewAttendanceRepository(database *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{database: database}
}

func (repo *AttendanceRepository) Create(record *models.AttendanceRecord) error {
	return repo.database.Create(record).Error
}

func (repo *AttendanceRepository) ListRecentByUser(userID uint, limit int) ([]models.AttendanceRecord, error) {
	records := make([]models.AttendanceRecord, 0, limit)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("timestamp DESC, id DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// LatestInRange returns the newest record for the user whose timestamp
// falls inside [dayStart, dayEnd). The boolean reports whether one exists.
func (repo *AttendanceRepository) LatestInRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.AttendanceRecord, bool, error) {
	record := models.AttendanceRecord{}
	result := repo.database.
		Where("user_id = ? AND timestamp >= ? AND timestamp < ?", userID, dayStart, dayEnd).
		Order("timestamp DESC, id DESC").
		Limit(1).
		Find(&record)
	if result.Error != nil {
		return models.AttendanceRecord{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.AttendanceRecord{}, false, nil
	}
	return record, true, nil
}
