package services

import "errors"

var (
	// ErrNotFound is the error returned by services when
	// the requested object could not be found
	ErrNotFound = errors.New("requested object could not be found")
	// ErrMissingCredentials is the error returned by SessionService
	// when the email or the password was not provided
	ErrMissingCredentials = errors.New("email and password are required")
	// ErrMalformedEmail is the error returned by SessionService
	// when the email does not contain an @
	ErrMalformedEmail = errors.New("email is malformed")
	// ErrInvalidCredentials is the error returned by SessionService
	// when the email and password don't match any account.
	// It is returned for unknown emails and wrong passwords alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrProfileNameRequired is the error returned by ProfileService
	// when the name or the surname is blank
	ErrProfileNameRequired = errors.New("name and surname are required")
	// ErrPasswordFieldsRequired is the error returned by ProfileService
	// when any of the password change fields is blank
	ErrPasswordFieldsRequired = errors.New("all password fields are required")
	// ErrPasswordTooShort is the error returned by ProfileService
	// when the new password is shorter than the minimum length
	ErrPasswordTooShort = errors.New("new password is too short")
	// ErrPasswordMismatch is the error returned by ProfileService
	// when the new password and its confirmation differ
	ErrPasswordMismatch = errors.New("new password and confirmation don't match")
)
