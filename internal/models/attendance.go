package models

import "time"

const (
	AttendanceCheckIn  = "check-in"
	AttendanceCheckOut = "check-out"

	AttendanceStatusVerified = "verified"
	AttendanceStatusPending  = "pending"
)

// AttendanceRecord is an append-only event: rows are never updated or
// deleted, and "currently checked in" is derived from the newest record
// of the current day rather than stored.
type AttendanceRecord struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	Kind      string    `gorm:"column:kind;not null"`
	Timestamp time.Time `gorm:"not null;index"`
	Location  string
	Latitude  *float64
	Longitude *float64
	Status    string `gorm:"not null;default:pending"`
	CreatedAt time.Time
}
