package models

import "time"

type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text;not null"`
	Priority    string `gorm:"size:20;not null;index"`
	Status      string `gorm:"size:20;not null;index"`
	CreatorID   uint   `gorm:"not null;index"`
	AssigneeID  *uint  `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ResolvedAt  *time.Time

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type CommentModel struct {
	ID        uint      `gorm:"primaryKey"`
	TicketID  uint      `gorm:"not null;index"`
	AuthorID  uint      `gorm:"not null;index"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

func (CommentModel) TableName() string {
	return "comments"
}
