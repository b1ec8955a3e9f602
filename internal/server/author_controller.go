package server

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"

	"github.com/taha-arar/blog/internal/auth"
	"github.com/taha-arar/blog/internal/model"
	"github.com/taha-arar/blog/internal/repository"
)

// AuthorController serves the author routes
type AuthorController struct {
	Authors repository.Authors
	Logger  auth.Logger
}

// AuthorPayload is the create and update request body
type AuthorPayload struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Biography string `json:"biography"`
	Domain    string `json:"domain"`
	Active    *bool  `json:"active"`
}

// Validate will validate the payload
func (p AuthorPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.FirstName, validation.Required, validation.Length(2, 100)),
		validation.Field(&p.LastName, validation.Required, validation.Length(2, 100)),
		validation.Field(&p.Email, validation.Required, is.Email),
		validation.Field(&p.Biography, validation.Length(0, 500)),
	)
}

// Create saves a new author. New authors are active unless the payload
// says otherwise.
func (a *AuthorController) Create(c *fiber.Ctx) error {
	payload := new(AuthorPayload)

	if err := c.BodyParser(payload); err != nil {
		return badRequest(err)
	}
	if err := payload.Validate(); err != nil {
		return badRequest(err)
	}

	ctx := c.UserContext()

	taken, err := a.Authors.ExistsByEmail(ctx, payload.Email)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to check author email")
	}
	if taken {
		return errDuplicateAuthorEmail(payload.Email)
	}

	author := &model.Author{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
		Biography: payload.Biography,
		Domain:    payload.Domain,
		IsActive:  true,
	}
	if payload.Active != nil {
		author.IsActive = *payload.Active
	}

	created, err := a.Authors.Create(ctx, author)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update replaces the profile of an existing author
func (a *AuthorController) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	payload := new(AuthorPayload)
	if err := c.BodyParser(payload); err != nil {
		return badRequest(err)
	}
	if err := payload.Validate(); err != nil {
		return badRequest(err)
	}

	ctx := c.UserContext()

	author, err := a.Authors.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if payload.Email != author.Email {
		taken, err := a.Authors.ExistsByEmail(ctx, payload.Email)
		if err != nil {
			return errors.Wrap(err, errors.CategoryInternal, "failed to check author email")
		}
		if taken {
			return errDuplicateAuthorEmail(payload.Email)
		}
	}

	author.FirstName = payload.FirstName
	author.LastName = payload.LastName
	author.Email = payload.Email
	author.Biography = payload.Biography
	author.Domain = payload.Domain
	if payload.Active != nil {
		author.IsActive = *payload.Active
	}

	updated, err := a.Authors.Update(ctx, author)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

// Delete removes an author
func (a *AuthorController) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := a.Authors.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetActive flips the active flag. Unlike articles, asking for the
// state the author is already in is not an error, the handler answers
// with a message saying so.
func (a *AuthorController) SetActive(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	active, err := activeParam(c)
	if err != nil {
		return err
	}

	ctx := c.UserContext()

	author, err := a.Authors.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if author.IsActive == active {
		state := "inactive"
		if active {
			state = "active"
		}
		return c.JSON(fiber.Map{
			"message": fmt.Sprintf("author %d is already %s", id, state),
		})
	}

	author.IsActive = active
	updated, err := a.Authors.Update(ctx, author)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

// Get returns a single author
func (a *AuthorController) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	author, err := a.Authors.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(author)
}

// List returns every author
func (a *AuthorController) List(c *fiber.Ctx) error {
	records, err := a.Authors.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(records)
}

// Page returns a page of authors
func (a *AuthorController) Page(c *fiber.Ctx) error {
	page, size := pagingParams(c)

	result, err := a.Authors.PageList(c.UserContext(), page, size)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// PageSearch returns a page of authors matching the criteria
func (a *AuthorController) PageSearch(c *fiber.Ctx) error {
	page, size := pagingParams(c)

	result, err := a.Authors.PageSearch(c.UserContext(), c.Query("criteria"), page, size)
	if err != nil {
		return err
	}
	return c.JSON(result)
}
