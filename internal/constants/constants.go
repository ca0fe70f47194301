package constants

// Context keys shared between middleware and handlers
const (
	ContextKeyClaims = "auth_claims"
)

// MinPasswordLength is the minimum accepted password length for registration
// and password changes.
const MinPasswordLength = 6

// DateKeyLayout is the calendar-day key format attendance records are stored
// and queried under.
const DateKeyLayout = "2006-01-02"

// Pagination bounds
const (
	MinPage         = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)
