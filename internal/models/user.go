package models

import "time"

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

type User struct {
	ID           uint      `gorm:"primaryKey"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	FullName     string    `gorm:"not null"`
	Handle       string    `gorm:"column:handle"`
	NIK          string    `gorm:"column:nik"`
	Phone        string
	Department   string
	Position     string
	Location     string
	Gender       string
	BirthDate    *time.Time `gorm:"type:date"`
	CreatedAt    time.Time  `gorm:"not null"`
	UpdatedAt    time.Time
}
