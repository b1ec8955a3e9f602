package server

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"

	"github.com/taha-arar/blog/internal/auth"
	"github.com/taha-arar/blog/internal/model"
	"github.com/taha-arar/blog/internal/repository"
)

// AuthController serves the login, registration and session routes
type AuthController struct {
	Auth    *auth.Authenticator
	Cookies *auth.CookieTransport
	Users   repository.Users
	Logger  auth.Logger
}

// AuthResponse is the principal projection returned by the auth routes.
// The password hash never leaves the server.
type AuthResponse struct {
	ID        int64      `json:"id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Email     string     `json:"email"`
	Role      model.Role `json:"role"`
	Active    bool       `json:"active"`
}

func toAuthResponse(user *model.User) AuthResponse {
	return AuthResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      user.Role,
		Active:    user.IsActive,
	}
}

// RegisterPayload is the registration request body
type RegisterPayload struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Biography string `json:"biography"`
	Domain    string `json:"domain"`
	Active    *bool  `json:"active"`
}

// Validate will validate the payload
func (r RegisterPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Required, validation.Length(2, 100)),
		validation.Field(&r.LastName, validation.Required, validation.Length(2, 100)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 100)),
		validation.Field(&r.Biography, validation.Length(0, 500)),
	)
}

// Register creates an account and logs it in right away
func (a *AuthController) Register(c *fiber.Ctx) error {
	payload := new(RegisterPayload)

	if err := c.BodyParser(payload); err != nil {
		return badRequest(err)
	}
	if err := payload.Validate(); err != nil {
		return badRequest(err)
	}

	user, token, err := a.Auth.Register(c.UserContext(), auth.RegisterInput{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
		Password:  payload.Password,
		Biography: payload.Biography,
		Domain:    payload.Domain,
		Active:    payload.Active,
	})
	if err != nil {
		return err
	}

	c.Cookie(a.Cookies.SessionCookie(token))
	return c.Status(fiber.StatusCreated).JSON(toAuthResponse(user))
}

// LoginPayload is the login request body
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate will validate the payload
func (r LoginPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// Login verifies a credential pair and sets the session cookie
func (a *AuthController) Login(c *fiber.Ctx) error {
	payload := new(LoginPayload)

	if err := c.BodyParser(payload); err != nil {
		return badRequest(err)
	}
	if err := payload.Validate(); err != nil {
		return badRequest(err)
	}

	user, token, err := a.Auth.Login(c.UserContext(), payload.Email, payload.Password)
	if err != nil {
		return err
	}

	c.Cookie(a.Cookies.SessionCookie(token))
	return c.JSON(toAuthResponse(user))
}

// Logout clears the session cookie. It is unconditionally safe to call,
// no existing token is required or validated.
func (a *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(a.Cookies.ClearCookie())
	return c.SendStatus(fiber.StatusNoContent)
}

// Me returns the principal behind the current request
func (a *AuthController) Me(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFrom(c)
	if !ok {
		return auth.ErrUnauthenticated
	}

	user, err := a.Users.GetByEmail(c.UserContext(), identity.Email)
	if err != nil {
		return err
	}

	return c.JSON(toAuthResponse(user))
}
