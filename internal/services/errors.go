// Package services holds the domain logic behind the HTTP handlers.
package services

import "errors"

var (
	// ErrEmailTaken signals a registration with an already-used email.
	ErrEmailTaken = errors.New("email already exists")
	// ErrUsernameTaken signals a registration with an already-used username.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrInvalidCredentials signals a failed login.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrWrongPassword signals a password change with a bad current password.
	ErrWrongPassword = errors.New("current password is incorrect")
	// ErrUserNotFound signals a missing account.
	ErrUserNotFound = errors.New("user not found")

	// ErrTeamExists signals a team name conflict.
	ErrTeamExists = errors.New("team already exists")
	// ErrTeamNotFound signals a missing team, or one the caller cannot see.
	ErrTeamNotFound = errors.New("team not found")
	// ErrNotTeamMember signals an operation requiring active membership.
	ErrNotTeamMember = errors.New("not an active member of this team")
	// ErrNotTeamAdmin signals an operation requiring the admin role.
	ErrNotTeamAdmin = errors.New("only team admins may verify predictions")

	// ErrCardExists signals a duplicate (user, team, year) card.
	ErrCardExists = errors.New("bingo card already exists for this team and year")
	// ErrCardNotFound signals a missing card, or one owned by someone else.
	ErrCardNotFound = errors.New("bingo card not found")
	// ErrCardFinalized signals a structural edit after finalization.
	ErrCardFinalized = errors.New("card is already finalized")
	// ErrYearOutOfRange signals a card year outside the supported range.
	ErrYearOutOfRange = errors.New("year must be between 2025 and 2100")

	// ErrPredictionNotFound signals a missing slot or prediction id.
	ErrPredictionNotFound = errors.New("prediction not found")
	// ErrInvalidCategory signals a category outside the four real categories.
	ErrInvalidCategory = errors.New("invalid category")
	// ErrInvalidPeriod signals a target period outside Q2-Q4.
	ErrInvalidPeriod = errors.New("invalid target period")

	// ErrExcludedPeriod signals a finalize attempt with a Q1 prediction.
	ErrExcludedPeriod = errors.New("predictions may not target the excluded period")
	// ErrQuotaNotMet signals a finalize attempt below the category quota.
	ErrQuotaNotMet = errors.New("category quota not met")
)
