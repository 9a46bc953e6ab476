package services

import (
	"strings"
	"time"

	"github.com/wicaksana/hadir/internal/models"
)

type LeaveRepository interface {
	Create(request *models.LeaveRequest) error
	ListRecentByUser(userID uint, limit int) ([]models.LeaveRequest, error)
}

type LeaveService struct {
	leaves   LeaveRepository
	location *time.Location
}

func NewLeaveService(leaves LeaveRepository, location *time.Location) *LeaveService {
	if location == nil {
		location = time.Local
	}
	return &LeaveService{leaves: leaves, location: location}
}

// Submit validates and persists a leave request. The stored row always
// starts as pending; this service never transitions it afterwards.
// Identical resubmissions create independent rows.
func (service *LeaveService) Submit(user *models.User, input LeaveRequestInput) (models.LeaveRequest, error) {
	start, end, err := ValidateLeaveRequestInput(input, user != nil, service.location)
	if err != nil {
		return models.LeaveRequest{}, err
	}

	request := models.LeaveRequest{
		UserID:            user.ID,
		Department:        strings.TrimSpace(input.Department),
		LeaveType:         strings.TrimSpace(input.LeaveType),
		Reason:            strings.TrimSpace(input.Reason),
		StartDate:         start,
		EndDate:           end,
		AdditionalDetails: strings.TrimSpace(input.AdditionalDetails),
		Status:            models.LeaveStatusPending,
		CreatedAt:         time.Now().In(service.location),
	}
	if err := service.leaves.Create(&request); err != nil {
		return models.LeaveRequest{}, err
	}
	return request, nil
}

func (service *LeaveService) RecentForUser(userID uint, limit int) ([]models.LeaveRequest, error) {
	return service.leaves.ListRecentByUser(userID, limit)
}

// ApplicantDisplayName picks the name embedded in the notification:
// profile full name, then the account email, then a placeholder.
func ApplicantDisplayName(user *models.User) string {
	if user == nil {
		return "N/A"
	}
	if name := strings.TrimSpace(user.FullName); name != "" {
		return name
	}
	if email := strings.TrimSpace(user.Email); email != "" {
		return email
	}
	return "N/A"
}
