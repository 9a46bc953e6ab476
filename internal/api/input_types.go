package api

import "github.com/go-playground/validator/v10"

var validate = validator.New()

type registerInput struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
	FullName string `json:"full_name" form:"full_name" validate:"required"`
}

type loginInput struct {
	Identifier string `json:"identifier" form:"identifier" validate:"required"`
	Password   string `json:"password" form:"password" validate:"required"`
	Remember   bool   `json:"remember" form:"remember"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password" form:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" form:"new_password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password" validate:"required"`
}

type forgotPasswordInput struct {
	Email string `json:"email" form:"email" validate:"required,email"`
}

type resetPasswordInput struct {
	Token           string `json:"token" form:"token" validate:"required"`
	NewPassword     string `json:"new_password" form:"new_password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password" validate:"required"`
}

type profileInput struct {
	FullName   string `json:"full_name" form:"full_name" validate:"required"`
	Handle     string `json:"handle" form:"handle"`
	NIK        string `json:"nik" form:"nik"`
	Phone      string `json:"phone" form:"phone"`
	Department string `json:"department" form:"department"`
	Position   string `json:"position" form:"position"`
	Location   string `json:"location" form:"location"`
	Gender     string `json:"gender" form:"gender"`
	BirthDate  string `json:"birth_date" form:"birth_date"`
}

type leaveInput struct {
	LeaveType         string `json:"leave_type" form:"leave_type"`
	StartDate         string `json:"start_date" form:"start_date"`
	EndDate           string `json:"end_date" form:"end_date"`
	Reason            string `json:"reason" form:"reason"`
	Department        string `json:"department" form:"department"`
	AdditionalDetails string `json:"additional_details" form:"additional_details"`
}

type attendanceInput struct {
	Latitude  *float64 `json:"latitude" form:"latitude"`
	Longitude *float64 `json:"longitude" form:"longitude"`
}

type userSettingsInput struct {
	Language             string `json:"language" validate:"required"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
	EmailNotifications   bool   `json:"email_notifications"`
	LocationTracking     bool   `json:"location_tracking"`
	DarkMode             bool   `json:"dark_mode"`
	Timezone             string `json:"timezone"`
	AutoCheckout         bool   `json:"auto_checkout"`
}

type emailRecipientsInput struct {
	Attendance   []string `json:"attendance"`
	LeaveRequest []string `json:"leave_request"`
}

type smtpSettingsInput struct {
	Host     string `json:"host" validate:"required"`
	Port     int    `json:"port" validate:"required"`
	Secure   bool   `json:"secure"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type appSettingsInput struct {
	Departments     *[]string             `json:"departments"`
	EmailRecipients *emailRecipientsInput `json:"email_recipients"`
	SMTPSettings    *smtpSettingsInput    `json:"smtp_settings"`
}

type leaveNoticeInput struct {
	ApplicantName     string `json:"applicantName"`
	ApplicantEmail    string `json:"applicantEmail"`
	Department        string `json:"department"`
	LeaveType         string `json:"leaveType" validate:"required"`
	StartDate         string `json:"startDate" validate:"required"`
	EndDate           string `json:"endDate" validate:"required"`
	Reason            string `json:"reason"`
	AdditionalDetails string `json:"additionalDetails"`
}
