package server

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"

	"github.com/taha-arar/blog/internal/auth"
	"github.com/taha-arar/blog/internal/model"
	"github.com/taha-arar/blog/internal/repository"
)

// UserController serves the user management routes
type UserController struct {
	Users  repository.Users
	Logger auth.Logger
}

// UserPayload is the create and update request body. Password is
// required on create and optional on update.
type UserPayload struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	Biography string `json:"biography"`
	Domain    string `json:"domain"`
	Active    *bool  `json:"active"`
}

// Validate will validate the payload
func (p UserPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.FirstName, validation.Required, validation.Length(2, 100)),
		validation.Field(&p.LastName, validation.Required, validation.Length(2, 100)),
		validation.Field(&p.Email, validation.Required, is.Email),
		validation.Field(&p.Biography, validation.Length(0, 500)),
	)
}

func (p UserPayload) role() (model.Role, error) {
	if p.Role == "" {
		return model.RoleVisitor, nil
	}
	role, ok := model.ParseRole(p.Role)
	if !ok {
		return "", errors.New("unknown role "+p.Role, errors.CategoryBadInput).
			WithTextCode("UNKNOWN_ROLE").
			WithCode(errors.CodeBadRequest)
	}
	return role, nil
}

// Create saves a new user with a hashed password. New users are active
// unless the payload says otherwise.
func (u *UserController) Create(c *fiber.Ctx) error {
	payload := new(UserPayload)

	if err := c.BodyParser(payload); err != nil {
		return badRequest(err)
	}
	if err := payload.Validate(); err != nil {
		return badRequest(err)
	}
	if payload.Password == "" {
		return errPasswordRequired()
	}

	role, err := payload.role()
	if err != nil {
		return err
	}

	ctx := c.UserContext()

	taken, err := u.Users.ExistsByEmail(ctx, payload.Email)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to check user email")
	}
	if taken {
		return auth.ErrDuplicateEmail
	}

	hash, err := auth.HashPassword(payload.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		FirstName:    payload.FirstName,
		LastName:     payload.LastName,
		Email:        payload.Email,
		PasswordHash: hash,
		Role:         role,
		Biography:    payload.Biography,
		Domain:       payload.Domain,
		IsActive:     true,
	}
	if payload.Active != nil {
		user.IsActive = *payload.Active
	}

	created, err := u.Users.Create(ctx, user)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update replaces the profile of an existing user. The password is only
// rehashed when the payload carries one.
func (u *UserController) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	payload := new(UserPayload)
	if err := c.BodyParser(payload); err != nil {
		return badRequest(err)
	}
	if err := payload.Validate(); err != nil {
		return badRequest(err)
	}

	role, err := payload.role()
	if err != nil {
		return err
	}

	ctx := c.UserContext()

	user, err := u.Users.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if payload.Email != user.Email {
		taken, err := u.Users.ExistsByEmail(ctx, payload.Email)
		if err != nil {
			return errors.Wrap(err, errors.CategoryInternal, "failed to check user email")
		}
		if taken {
			return auth.ErrDuplicateEmail
		}
	}

	user.FirstName = payload.FirstName
	user.LastName = payload.LastName
	user.Email = payload.Email
	user.Biography = payload.Biography
	user.Domain = payload.Domain
	if payload.Role != "" {
		user.Role = role
	}
	if payload.Active != nil {
		user.IsActive = *payload.Active
	}
	if payload.Password != "" {
		hash, err := auth.HashPassword(payload.Password)
		if err != nil {
			return err
		}
		user.PasswordHash = hash
	}

	updated, err := u.Users.Update(ctx, user)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

// Delete removes a user
func (u *UserController) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := u.Users.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List returns every user
func (u *UserController) List(c *fiber.Ctx) error {
	records, err := u.Users.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(records)
}

// PageSearch returns a page of users matching the criteria
func (u *UserController) PageSearch(c *fiber.Ctx) error {
	page, size := pagingParams(c)

	result, err := u.Users.PageSearch(c.UserContext(), c.Query("criteria"), page, size)
	if err != nil {
		return err
	}
	return c.JSON(result)
}
