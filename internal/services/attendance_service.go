package services

import (
	"errors"
	"time"

	"github.com/wicaksana/hadir/internal/models"
)

var ErrAttendanceKindInvalid = errors.New("attendance kind invalid")

// DefaultAttendanceLocation labels records captured from the device's
// current position.
const DefaultAttendanceLocation = "Current Location"

const attendanceHistoryLimit = 10

type AttendanceRepositoryAPI interface {
	Create(record *models.AttendanceRecord) error
	ListRecentByUser(userID uint, limit int) ([]models.AttendanceRecord, error)
	LatestInRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.AttendanceRecord, bool, error)
}

type AttendanceLeaveSource interface {
	ListRecentByUser(userID uint, limit int) ([]models.LeaveRequest, error)
}

type AttendanceService struct {
	records  AttendanceRepositoryAPI
	leaves   AttendanceLeaveSource
	location *time.Location
}

func NewAttendanceService(records AttendanceRepositoryAPI, leaves AttendanceLeaveSource, location *time.Location) *AttendanceService {
	if location == nil {
		location = time.Local
	}
	return &AttendanceService{
		records:  records,
		leaves:   leaves,
		location: location,
	}
}

// RecordEvent appends one attendance event. Records are immutable
// history; concurrent check-ins from two clients both land.
func (service *AttendanceService) RecordEvent(userID uint, kind string, position Position) (models.AttendanceRecord, error) {
	if kind != models.AttendanceCheckIn && kind != models.AttendanceCheckOut {
		return models.AttendanceRecord{}, ErrAttendanceKindInvalid
	}

	latitude := position.Latitude
	longitude := position.Longitude
	record := models.AttendanceRecord{
		UserID:    userID,
		Kind:      kind,
		Timestamp: time.Now().In(service.location),
		Location:  DefaultAttendanceLocation,
		Latitude:  &latitude,
		Longitude: &longitude,
		Status:    models.AttendanceStatusVerified,
	}
	if err := service.records.Create(&record); err != nil {
		return models.AttendanceRecord{}, err
	}
	return record, nil
}

// CurrentlyCheckedIn derives the user's status from the kind of the
// newest record timestamped today; no record means checked out.
func (service *AttendanceService) CurrentlyCheckedIn(userID uint, now time.Time) (bool, error) {
	dayStart, dayEnd := DayRange(now, service.location)
	record, found, err := service.records.LatestInRange(userID, dayStart, dayEnd)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	return record.Kind == models.AttendanceCheckIn, nil
}

// Overview returns the dashboard history slices, newest first.
func (service *AttendanceService) Overview(userID uint) ([]models.AttendanceRecord, []models.LeaveRequest, error) {
	records, err := service.records.ListRecentByUser(userID, attendanceHistoryLimit)
	if err != nil {
		return nil, nil, err
	}
	requests, err := service.leaves.ListRecentByUser(userID, attendanceHistoryLimit)
	if err != nil {
		return nil, nil, err
	}
	return records, requests, nil
}

func DayRange(moment time.Time, location *time.Location) (time.Time, time.Time) {
	if location == nil {
		location = time.Local
	}
	local := moment.In(location)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, location)
	return start, start.AddDate(0, 0, 1)
}
