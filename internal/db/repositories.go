package db

import "gorm.io/gorm"

type Repositories struct {
	Users         *UserRepository
	Attendance    *AttendanceRepository
	LeaveRequests *LeaveRequestRepository
	UserSettings  *UserSettingsRepository
	AppSettings   *AppSettingsRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(database),
		Attendance:    NewAttendanceRepository(database),
		LeaveRequests: NewLeaveRequestRepository(database),
		UserSettings:  NewUserSettingsRepository(database),
		AppSettings:   NewAppSettingsRepository(database),
	}
}
