package services

import "errors"

// Shared error values used across services and the HTTP mapping.
var (
	ErrNotFound = errors.New("requested resource not found")

	// Validation and business rules
	ErrValidationFailed     = errors.New("validation failed")
	ErrPasswordTooShort     = errors.New("password is too short")
	ErrNameRequired         = errors.New("name is required")
	ErrTeamNameRequired     = errors.New("team name is required")
	ErrStadiumNameRequired  = errors.New("stadium name is required")
	ErrMatchTeamsIdentical  = errors.New("a match requires two distinct teams")
	ErrMatchDateRequired    = errors.New("match date is required")
	ErrScoreNegative        = errors.New("scores must not be negative")
	ErrInvalidRole          = errors.New("invalid role")
	ErrInvalidMatchStatus   = errors.New("invalid match status")
	ErrPlayerNotInTeam      = errors.New("player not found in team")
	ErrUploadContentInvalid = errors.New("unsupported upload content type")

	// Conflicts
	ErrUserEmailConflict    = errors.New("email address is already in use")
	ErrUserUsernameConflict = errors.New("username is already in use")
	ErrTeamNameConflict     = errors.New("team name is already in use")

	// Authentication and authorization
	ErrAuthInvalidCredentials = errors.New("invalid email or password")
	ErrForbiddenOperation     = errors.New("operation not allowed for the current user")

	// Entity-specific not-found errors
	ErrUserNotFound    = errors.New("user not found")
	ErrTeamNotFound    = errors.New("team not found")
	ErrPlayerNotFound  = errors.New("player not found")
	ErrStadiumNotFound = errors.New("stadium not found")
	ErrMatchNotFound   = errors.New("match not found")
)
