package auth

import "github.com/goliatone/go-errors"

// Token verification failures. The authentication middleware absorbs
// these, they never surface to a caller on their own.
var (
	// ErrTokenExpired is returned when the expiration claim is in the past
	ErrTokenExpired = errors.New("authentication token is expired", errors.CategoryAuth).
			WithTextCode("TOKEN_EXPIRED").
			WithCode(errors.CodeUnauthorized)

	// ErrTokenSignatureInvalid is returned when the signature does not verify
	ErrTokenSignatureInvalid = errors.New("authentication token signature is invalid", errors.CategoryAuth).
					WithTextCode("TOKEN_SIGNATURE_INVALID").
					WithCode(errors.CodeUnauthorized)

	// ErrTokenMalformed is returned when the token cannot be parsed
	ErrTokenMalformed = errors.New("authentication token is malformed", errors.CategoryAuth).
				WithTextCode("TOKEN_MALFORMED").
				WithCode(errors.CodeUnauthorized)
)

// Credential failures surfaced by login and registration.
var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. The message must not reveal which check failed.
	ErrInvalidCredentials = errors.New("invalid email or password", errors.CategoryAuth).
				WithTextCode("INVALID_CREDENTIALS").
				WithCode(errors.CodeUnauthorized)

	// ErrAccountInactive is returned for a valid credential pair on a
	// deactivated account
	ErrAccountInactive = errors.New("account is not active", errors.CategoryAuth).
				WithTextCode("ACCOUNT_INACTIVE").
				WithCode(errors.CodeForbidden)

	// ErrDuplicateEmail is returned when registering an email that exists
	ErrDuplicateEmail = errors.New("email is already registered", errors.CategoryConflict).
				WithTextCode("DUPLICATE_EMAIL").
				WithCode(errors.CodeConflict)
)

// Authorization failures produced by the policy gate.
var (
	// ErrUnauthenticated is the deny for anonymous requests on protected routes
	ErrUnauthenticated = errors.New("authentication required", errors.CategoryAuth).
				WithTextCode("UNAUTHENTICATED").
				WithCode(errors.CodeUnauthorized)

	// ErrInsufficientRole is the deny for authenticated requests that fail
	// the role or ownership test
	ErrInsufficientRole = errors.New("access denied", errors.CategoryAuthz).
				WithTextCode("INSUFFICIENT_ROLE").
				WithCode(errors.CodeForbidden)
)

// Password hashing failures.
var (
	ErrNoEmptyPassword           = errors.New("password must not be empty", errors.CategoryBadInput).WithCode(errors.CodeBadRequest)
	ErrMismatchedHashAndPassword = errors.New("password does not match", errors.CategoryAuth).WithCode(errors.CodeUnauthorized)
)
