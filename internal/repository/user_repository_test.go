package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/chart0729-create/hany1/internal/model"
)

func newUserStore(t *testing.T) *UserRepository {
	t.Helper()
	return NewUserRepository(filepath.Join(t.TempDir(), "users.json"))
}

func TestSeedAdminIsIdempotent(t *testing.T) {
	repo := newUserStore(t)
	ctx := context.Background()

	require.NoError(t, repo.SeedAdmin(ctx, "secret1"))
	admin, err := repo.FindByID(ctx, AdminID)
	require.NoError(t, err)
	require.Equal(t, model.RoleAdmin, admin.Role)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("secret1")))

	// A second seed with a different password must not touch the
	// existing account.
	require.NoError(t, repo.SeedAdmin(ctx, "other"))
	again, err := repo.FindByID(ctx, AdminID)
	require.NoError(t, err)
	require.Equal(t, admin.Password, again.Password)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
}

func TestCreateRejectsDuplicateNickname(t *testing.T) {
	repo := newUserStore(t)
	ctx := context.Background()

	alice := model.User{ID: "alice", Password: "x", Role: model.RoleUser}
	require.NoError(t, repo.Create(ctx, &alice))

	dup := model.User{ID: "alice", Password: "y", Role: model.RoleUser}
	require.ErrorIs(t, repo.Create(ctx, &dup), ErrDuplicate)
}

func TestCreateRejectsDuplicatePhone(t *testing.T) {
	repo := newUserStore(t)
	ctx := context.Background()

	first := model.User{ID: "alice", Phone: "010-1234-5678", Password: "x"}
	require.NoError(t, repo.Create(ctx, &first))

	second := model.User{ID: "bob", Phone: "010-1234-5678", Password: "y"}
	require.ErrorIs(t, repo.Create(ctx, &second), ErrDuplicate)

	// Empty phones never collide with each other.
	third := model.User{ID: "carol", Password: "z"}
	require.NoError(t, repo.Create(ctx, &third))
	fourth := model.User{ID: "dave", Password: "w"}
	require.NoError(t, repo.Create(ctx, &fourth))
}

func TestNicknamesAreCaseSensitive(t *testing.T) {
	repo := newUserStore(t)
	ctx := context.Background()

	lower := model.User{ID: "alice", Password: "x"}
	require.NoError(t, repo.Create(ctx, &lower))

	upper := model.User{ID: "Alice", Password: "y"}
	require.NoError(t, repo.Create(ctx, &upper))

	_, err := repo.FindByID(ctx, "ALICE")
	require.ErrorIs(t, err, ErrNotFound)
}
