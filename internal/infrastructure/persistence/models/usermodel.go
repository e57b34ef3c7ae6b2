package models

import "time"

// UserModel represents the database persistence model for users.
// This is the anti-corruption layer between domain and database.
type UserModel struct {
	ID           uint    `gorm:"primarykey"`
	Email        string  `gorm:"uniqueIndex;not null;size:255"`
	Username     string  `gorm:"uniqueIndex;not null;size:100"`
	FullName     *string `gorm:"size:255"`
	PasswordHash string  `gorm:"not null;size:255"`
	IsActive     bool    `gorm:"not null;default:true"`
	IsAdmin      bool    `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}
