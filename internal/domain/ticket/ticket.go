package ticket

import (
	"fmt"
	"time"
	"unicode/utf8"

	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/biztime"
)

const (
	titleMinLength       = 5
	titleMaxLength       = 255
	descriptionMinLength = 10
	descriptionMaxLength = 5000
)

type Ticket struct {
	id          uint
	title       string
	description string
	priority    vo.Priority
	status      vo.TicketStatus
	creatorID   uint
	assigneeID  *uint
	createdAt   time.Time
	updatedAt   time.Time
	resolvedAt  *time.Time
}

func NewTicket(
	title string,
	description string,
	priority vo.Priority,
	creatorID uint,
) (*Ticket, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validateDescription(description); err != nil {
		return nil, err
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	now := biztime.NowUTC()
	return &Ticket{
		title:       title,
		description: description,
		priority:    priority,
		status:      vo.StatusOpen,
		creatorID:   creatorID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	title string,
	description string,
	priority vo.Priority,
	status vo.TicketStatus,
	creatorID uint,
	assigneeID *uint,
	createdAt, updatedAt time.Time,
	resolvedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		priority:    priority,
		status:      status,
		creatorID:   creatorID,
		assigneeID:  assigneeID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		resolvedAt:  resolvedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) CreatorID() uint {
	return t.creatorID
}

func (t *Ticket) AssigneeID() *uint {
	return t.assigneeID
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) ResolvedAt() *time.Time {
	return t.resolvedAt
}

// GetOwnerID implements authorization.OwnedResource. The creator reference
// is immutable after creation and is the ticket's owner for permission checks.
func (t *Ticket) GetOwnerID() uint {
	return t.creatorID
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) UpdateTitle(title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	t.title = title
	t.Touch()
	return nil
}

func (t *Ticket) UpdateDescription(description string) error {
	if err := validateDescription(description); err != nil {
		return err
	}
	t.description = description
	t.Touch()
	return nil
}

// ChangeStatus assigns a new status. Entering resolved stamps resolvedAt to
// the current instant even when the ticket was already resolved; leaving
// resolved deliberately keeps the old resolvedAt value.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	t.status = newStatus
	t.Touch()

	if newStatus.IsResolved() {
		now := biztime.NowUTC()
		t.resolvedAt = &now
	}

	return nil
}

func (t *Ticket) ChangePriority(newPriority vo.Priority) error {
	if !newPriority.IsValid() {
		return fmt.Errorf("invalid priority: %s", newPriority)
	}

	t.priority = newPriority
	t.Touch()
	return nil
}

func (t *Ticket) AssignTo(assigneeID uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}

	t.assigneeID = &assigneeID
	t.Touch()
	return nil
}

// Touch stamps updatedAt. Every successful update stamps the ticket, even
// one that changed no individual field.
func (t *Ticket) Touch() {
	t.updatedAt = biztime.NowUTC()
}

// Length bounds count characters, not bytes, matching the request binding.
func validateTitle(title string) error {
	length := utf8.RuneCountInString(title)
	if length < titleMinLength {
		return fmt.Errorf("title must be at least %d characters", titleMinLength)
	}
	if length > titleMaxLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", titleMaxLength)
	}
	return nil
}

func validateDescription(description string) error {
	length := utf8.RuneCountInString(description)
	if length < descriptionMinLength {
		return fmt.Errorf("description must be at least %d characters", descriptionMinLength)
	}
	if length > descriptionMaxLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", descriptionMaxLength)
	}
	return nil
}
