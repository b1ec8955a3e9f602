package repository

import (
	"context"
	"testing"

	"github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taha-arar/blog/internal/model"
)

func seedUser(t *testing.T, repo Users, email string) *model.User {
	t.Helper()

	user, err := repo.Create(context.Background(), &model.User{
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		PasswordHash: "not-a-real-hash",
		Role:         model.RoleVisitor,
		IsActive:     true,
	})
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	return user
}

func TestUsers_CreateAndGet(t *testing.T) {
	repo := NewUsers(newTestDB(t))
	ctx := context.Background()

	created := seedUser(t, repo, "alice@example.com")

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", byID.Email)

	byEmail, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
}

func TestUsers_GetMissing(t *testing.T) {
	repo := NewUsers(newTestDB(t))

	_, err := repo.GetByID(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	_, err = repo.GetByEmail(context.Background(), "nobody@example.com")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestUsers_ExistsByEmail(t *testing.T) {
	repo := NewUsers(newTestDB(t))
	ctx := context.Background()

	seedUser(t, repo, "alice@example.com")

	exists, err := repo.ExistsByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUsers_Update(t *testing.T) {
	repo := NewUsers(newTestDB(t))
	ctx := context.Background()

	user := seedUser(t, repo, "alice@example.com")
	user.FirstName = "Alicia"
	user.Role = model.RoleAdmin

	_, err := repo.Update(ctx, user)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alicia", got.FirstName)
	assert.Equal(t, model.RoleAdmin, got.Role)
}

func TestUsers_UpdateMissing(t *testing.T) {
	repo := NewUsers(newTestDB(t))

	_, err := repo.Update(context.Background(), &model.User{ID: 999, Email: "ghost@example.com"})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestUsers_Delete(t *testing.T) {
	repo := NewUsers(newTestDB(t))
	ctx := context.Background()

	user := seedUser(t, repo, "alice@example.com")
	require.NoError(t, repo.Delete(ctx, user.ID))

	_, err := repo.GetByID(ctx, user.ID)
	assert.True(t, errors.IsNotFound(err))

	err = repo.Delete(ctx, user.ID)
	assert.True(t, errors.IsNotFound(err))
}

func TestUsers_PageSearch(t *testing.T) {
	repo := NewUsers(newTestDB(t))
	ctx := context.Background()

	alice := seedUser(t, repo, "alice@example.com")
	seedUser(t, repo, "bob@example.com")
	seedUser(t, repo, "carol@example.com")

	page, err := repo.PageSearch(ctx, "alice", 0, 10)
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, alice.ID, page.Content[0].ID)
	assert.Equal(t, 1, page.TotalElements)

	// a numeric criteria also matches on id
	page, err = repo.PageSearch(ctx, "1", 0, 10)
	require.NoError(t, err)
	require.NotEmpty(t, page.Content)

	// empty criteria pages the full collection
	page, err = repo.PageSearch(ctx, "", 0, 2)
	require.NoError(t, err)
	assert.Len(t, page.Content, 2)
	assert.Equal(t, 3, page.TotalElements)
	assert.Equal(t, 2, page.TotalPages)
}
