package ticket

import (
	"fmt"
	"time"
	"unicode/utf8"

	"helpdesk/internal/shared/biztime"
)

const commentMaxLength = 5000

// Comment is an append-only child record of a ticket. Comments are never
// updated or deleted on their own; they are removed only as a cascade of
// their parent ticket's deletion.
type Comment struct {
	id        uint
	ticketID  uint
	authorID  uint
	content   string
	createdAt time.Time
	updatedAt time.Time
}

func NewComment(
	ticketID uint,
	authorID uint,
	content string,
) (*Comment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content cannot be empty")
	}
	if utf8.RuneCountInString(content) > commentMaxLength {
		return nil, fmt.Errorf("content exceeds maximum length of %d characters", commentMaxLength)
	}

	now := biztime.NowUTC()
	return &Comment{
		ticketID:  ticketID,
		authorID:  authorID,
		content:   content,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructComment(
	id uint,
	ticketID uint,
	authorID uint,
	content string,
	createdAt, updatedAt time.Time,
) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	return &Comment{
		id:        id,
		ticketID:  ticketID,
		authorID:  authorID,
		content:   content,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (c *Comment) ID() uint {
	return c.id
}

func (c *Comment) TicketID() uint {
	return c.ticketID
}

func (c *Comment) AuthorID() uint {
	return c.authorID
}

func (c *Comment) Content() string {
	return c.content
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
