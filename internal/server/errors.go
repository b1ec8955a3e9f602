package server

import (
	"fmt"

	"github.com/goliatone/go-errors"
)

// badRequest wraps a payload parse or validation failure
func badRequest(err error) error {
	return errors.Wrap(err, errors.CategoryValidation, err.Error()).
		WithTextCode("INVALID_PAYLOAD").
		WithCode(errors.CodeBadRequest)
}

func errDuplicateTitle(title string) error {
	return errors.New(fmt.Sprintf("article with title %q already exists", title), errors.CategoryConflict).
		WithTextCode("DUPLICATE_TITLE").
		WithCode(errors.CodeConflict)
}

func errContentLength() error {
	return errors.New("content has to be between 5 and 10 characters", errors.CategoryBadInput).
		WithTextCode("CONTENT_LENGTH").
		WithCode(errors.CodeBadRequest)
}

func errAuthorRequired() error {
	return errors.New("an author is required to save an article", errors.CategoryBadInput).
		WithTextCode("AUTHOR_REQUIRED").
		WithCode(errors.CodeBadRequest)
}

func errAuthorAlreadyAssigned(articleID, authorID int64) error {
	return errors.New(fmt.Sprintf("author %d is already assigned to article %d", authorID, articleID), errors.CategoryConflict).
		WithTextCode("AUTHOR_ALREADY_ASSIGNED").
		WithCode(errors.CodeConflict)
}

func errStateAlreadySet(id int64, active bool) error {
	state := "inactive"
	if active {
		state = "active"
	}
	return errors.New(fmt.Sprintf("article %d is already %s", id, state), errors.CategoryConflict).
		WithTextCode("STATE_ALREADY_SET").
		WithCode(errors.CodeConflict)
}

func errDuplicateAuthorEmail(email string) error {
	return errors.New(fmt.Sprintf("author with email %q already exists", email), errors.CategoryConflict).
		WithTextCode("DUPLICATE_EMAIL").
		WithCode(errors.CodeConflict)
}

func errActiveFlagRequired() error {
	return errors.New("the active flag is required", errors.CategoryBadInput).
		WithTextCode("ACTIVE_FLAG_REQUIRED").
		WithCode(errors.CodeBadRequest)
}

func errPasswordRequired() error {
	return errors.New("a password is required", errors.CategoryBadInput).
		WithTextCode("PASSWORD_REQUIRED").
		WithCode(errors.CodeBadRequest)
}
