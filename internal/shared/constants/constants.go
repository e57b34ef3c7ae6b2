package constants

// Context keys set by the auth middleware after identity resolution.
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
)

// Pagination bounds for ticket listing.
const (
	DefaultListLimit = 10
	MaxListLimit     = 100
)

// Field length bounds shared between request binding and domain validation.
const (
	TitleMinLen       = 5
	TitleMaxLen       = 255
	DescriptionMinLen = 10
	DescriptionMaxLen = 5000
	CommentMaxLen     = 5000
	UsernameMinLen    = 3
	UsernameMaxLen    = 100
	PasswordMinLen    = 8
)
