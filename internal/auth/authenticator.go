package auth

import (
	"context"
	"time"

	"github.com/goliatone/go-errors"

	"github.com/taha-arar/blog/internal/model"
)

// storeTimeout bounds the blocking store calls made during credential
// verification.
const storeTimeout = 5 * time.Second

// UserStore is the persistence surface the authenticator needs
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *model.User) (*model.User, error)
}

// RegisterInput carries the fields accepted at registration
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Biography string
	Domain    string
	Active    *bool
}

// Authenticator verifies credentials and registers accounts. It issues
// tokens through the TokenService but holds no session state, being
// authenticated is recomputed on every request.
type Authenticator struct {
	store  UserStore
	tokens TokenService
	logger Logger
}

// NewAuthenticator returns a new Authenticator
func NewAuthenticator(store UserStore, tokens TokenService) *Authenticator {
	return &Authenticator{
		store:  store,
		tokens: tokens,
		logger: defLogger{},
	}
}

func (a *Authenticator) WithLogger(logger Logger) *Authenticator {
	a.logger = logger
	return a
}

// Login checks the submitted email and password pair against the stored
// credentials. An unknown email and a wrong password produce the same
// error. Returns the principal and a freshly issued token.
func (a *Authenticator) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	user, err := a.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.IsNotFound(err) {
			a.logger.Warn("login attempt for unknown email", "email", email)
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", errors.Wrap(err, errors.CategoryInternal, "failed to retrieve user during login")
	}

	if err := ComparePasswordAndHash(password, user.PasswordHash); err != nil {
		a.logger.Warn("login attempt with wrong password", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	if !user.IsActive {
		a.logger.Warn("login blocked for inactive account", "email", email)
		return nil, "", ErrAccountInactive
	}

	token, err := a.tokens.Generate(a.IdentityOf(user))
	if err != nil {
		return nil, "", err
	}

	a.logger.Info("user authenticated", "email", email)
	return user, token, nil
}

// Register creates a new account and issues a token for it right away.
// The role always defaults to the lowest privilege role, the active
// flag defaults to false unless explicitly supplied.
func (a *Authenticator) Register(ctx context.Context, input RegisterInput) (*model.User, string, error) {
	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	exists, err := a.store.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, "", errors.Wrap(err, errors.CategoryInternal, "failed to check for existing email")
	}
	if exists {
		a.logger.Warn("registration attempt with duplicate email", "email", input.Email)
		return nil, "", ErrDuplicateEmail
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, "", err
	}

	active := false
	if input.Active != nil {
		active = *input.Active
	}

	user := &model.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: hash,
		Biography:    input.Biography,
		Domain:       input.Domain,
		Role:         model.RoleVisitor,
		IsActive:     active,
	}

	saved, err := a.store.Create(ctx, user)
	if err != nil {
		return nil, "", errors.Wrap(err, errors.CategoryInternal, "failed to persist user")
	}

	token, err := a.tokens.Generate(a.IdentityOf(saved))
	if err != nil {
		return nil, "", err
	}

	a.logger.Info("user registered", "email", saved.Email)
	return saved, token, nil
}

// IdentityOf projects a user record into a request identity
func (a *Authenticator) IdentityOf(user *model.User) Identity {
	return Identity{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	}
}
