package models

import "time"

const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

type LeaveRequest struct {
	ID                uint      `gorm:"primaryKey"`
	UserID            uint      `gorm:"not null;index"`
	Department        string    `gorm:"not null"`
	LeaveType         string    `gorm:"not null"`
	Reason            string    `gorm:"not null"`
	StartDate         time.Time `gorm:"type:date;not null"`
	EndDate           time.Time `gorm:"type:date;not null"`
	AdditionalDetails string
	Status            string `gorm:"not null;default:pending"`
	CreatedAt         time.Time
}

// Leave type and reason codes stored on LeaveRequest rows. The API keeps
// the codes; human-readable labels come from the locale tables.
func LeaveTypeCodes() []string {
	return []string{
		"AnnualLeave",
		"SickLeave",
		"PersonalLeave",
		"MaternityPaternityLeave",
		"EmergencyLeave",
		"BereavementLeave",
		"StudyLeave",
	}
}

func LeaveReasonCodes() []string {
	return []string{
		"Vacation",
		"Medicalappointment",
		"Familyemergency",
		"Personalmatters",
		"Wedding",
		"Funeral",
		"EducationTraining",
		"Other",
	}
}
